package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "besctl",
		Short:         "Terminal client for the AirbnBES rental marketplace",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the client config file")

	cmd.AddCommand(newLoginCommand(&configPath))
	cmd.AddCommand(newRegisterCommand(&configPath))
	cmd.AddCommand(newLogoutCommand(&configPath))
	cmd.AddCommand(newWhoamiCommand(&configPath))
	cmd.AddCommand(newPropertiesCommand(&configPath))
	cmd.AddCommand(newRentalsCommand(&configPath))
	cmd.AddCommand(newDashboardCommand(&configPath))
	return cmd
}
