package main

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"airbnbes/pkg/api"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

func newLoginCommand(configPath *string) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate against the marketplace",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, configPath, func(ctx context.Context, a *app) error {
				if err := validateCredentials(email, password); err != nil {
					return err
				}

				user, err := a.session.Login(ctx, email, password)
				if err != nil {
					a.logger.Printf("login failed: %v", err)
					return errors.New("invalid credentials, try again")
				}

				fmt.Printf("Logged in as %s <%s>\n", user.Name, user.Email)
				if user.IsAdmin() {
					fmt.Println("Administrator session. Start with: besctl dashboard")
				} else {
					fmt.Println("Browse listings with: besctl properties list")
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newRegisterCommand(configPath *string) *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a marketplace account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, configPath, func(ctx context.Context, a *app) error {
				if strings.TrimSpace(name) == "" {
					return errors.New("name is required")
				}
				if err := validateCredentials(email, password); err != nil {
					return err
				}

				if err := a.session.Register(ctx, name, email, password); err != nil {
					a.logger.Printf("register failed: %v", err)
					if errors.Is(err, api.ErrConflict) {
						return errors.New("an account with this email already exists")
					}
					if msg := api.Message(err); msg != "" {
						return errors.New(msg)
					}
					return errors.New("could not create the account, try again")
				}

				fmt.Println("Account created. Log in with: besctl login")
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Full name")
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, configPath, func(ctx context.Context, a *app) error {
				if err := a.session.Logout(); err != nil {
					return err
				}
				fmt.Println("Logged out.")
				return nil
			})
		},
	}
}

func newWhoamiCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, configPath, func(ctx context.Context, a *app) error {
				user, ok := a.session.Current()
				if !ok {
					fmt.Println("Not logged in.")
					return nil
				}
				fmt.Printf("%s <%s> role=%s\n", user.Name, user.Email, user.Role)
				return nil
			})
		},
	}
}

// validateCredentials runs the pre-network field checks; malformed input
// never reaches the backend.
func validateCredentials(email, password string) error {
	if !emailPattern.MatchString(email) {
		return errors.New("invalid email address")
	}
	if password == "" {
		return errors.New("password is required")
	}
	return nil
}
