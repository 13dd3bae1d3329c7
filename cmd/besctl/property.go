package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"airbnbes/pkg/api"
	"airbnbes/pkg/booking"
)

func newPropertiesCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "properties",
		Short: "Browse rental listings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newPropertiesListCommand(configPath))
	cmd.AddCommand(newPropertiesShowCommand(configPath))
	return cmd
}

func newPropertiesListCommand(configPath *string) *cobra.Command {
	var (
		location string
		minPrice float64
		maxPrice float64
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List properties, optionally filtered by location and price",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, configPath, func(ctx context.Context, a *app) error {
				minSet := cmd.Flags().Changed("min-price")
				maxSet := cmd.Flags().Changed("max-price")
				if minSet != maxSet {
					return errors.New("--min-price and --max-price must be used together")
				}

				filters := api.PropertyFilters{Location: location}
				if minSet {
					filters.MinPrice = &minPrice
					filters.MaxPrice = &maxPrice
				}

				props, err := a.client.FilterProperties(ctx, filters)
				if err != nil {
					return err
				}
				if len(props) == 0 {
					fmt.Println("No properties match the given filters.")
					return nil
				}

				w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tNAME\tLOCATION\tDAILY RATE\tMAX GUESTS\tOWNER")
				for _, p := range props {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
						p.ID, p.Name, p.Location, formatMoney(p.DailyRate), p.MaxGuests, p.OwnerName)
				}
				return w.Flush()
			})
		},
	}

	cmd.Flags().StringVar(&location, "location", "", "Filter by location")
	cmd.Flags().Float64Var(&minPrice, "min-price", 0, "Lower price bound")
	cmd.Flags().Float64Var(&maxPrice, "max-price", 0, "Upper price bound")
	return cmd
}

func newPropertiesShowCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show <property-id>",
		Short: "Show a property and its reservation calendar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, configPath, func(ctx context.Context, a *app) error {
				prop, err := a.client.PropertyByID(ctx, args[0])
				if err != nil {
					return err
				}

				fmt.Printf("%s (%s)\n", prop.Name, prop.Location)
				fmt.Printf("  %s\n", prop.Description)
				fmt.Printf("  Daily rate: %s  Max guests: %d  Owner: %s\n",
					formatMoney(prop.DailyRate), prop.MaxGuests, prop.OwnerName)

				rentals, err := a.client.RentalsByProperty(ctx, prop.ID)
				if err != nil {
					return err
				}

				reserved := 0
				for _, r := range rentals {
					if r.Status() != booking.StatusConfirmed {
						continue
					}
					if reserved == 0 {
						fmt.Println("  Reserved periods:")
					}
					reserved++
					fmt.Printf("    %s .. %s\n", r.StartDate, r.EndDate)
				}
				if reserved == 0 {
					fmt.Println("  No confirmed reservations.")
				}
				return nil
			})
		},
	}
}
