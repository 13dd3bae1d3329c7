package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"airbnbes/pkg/api"
	"airbnbes/pkg/booking"
)

const defaultCancelReason = "Cancelado pelo inquilino"

func newRentalsCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rentals",
		Short: "Request and manage rentals",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newRentalsRequestCommand(configPath))
	cmd.AddCommand(newRentalsListCommand(configPath))
	cmd.AddCommand(newRentalsConfirmCommand(configPath))
	cmd.AddCommand(newRentalsDenyCommand(configPath))
	cmd.AddCommand(newRentalsCancelCommand(configPath))
	cmd.AddCommand(newRentalsDeleteCommand(configPath))
	return cmd
}

func newRentalsRequestCommand(configPath *string) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "request <property-id>",
		Short: "Request a rental for a date range",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, configPath, func(ctx context.Context, a *app) error {
				if _, err := a.requireUser(); err != nil {
					return err
				}

				start, err := booking.ParseDate(from)
				if err != nil {
					return fmt.Errorf("invalid --from date %q (use YYYY-MM-DD)", from)
				}
				end, err := booking.ParseDate(to)
				if err != nil {
					return fmt.Errorf("invalid --to date %q (use YYYY-MM-DD)", to)
				}

				prop, err := a.client.PropertyByID(ctx, args[0])
				if err != nil {
					return err
				}
				existing, err := a.client.RentalsByProperty(ctx, prop.ID)
				if err != nil {
					return err
				}

				reservations := make([]booking.Reservation, 0, len(existing))
				for _, r := range existing {
					res, err := r.Reservation()
					if err != nil {
						a.logger.Printf("skipping malformed rental: %v", err)
						continue
					}
					reservations = append(reservations, res)
				}

				// Advisory check only; the backend re-validates on submit.
				if !booking.ValidateRange(start, end, reservations) {
					return errors.New("check the selected dates: the range is invalid or conflicts with a confirmed reservation")
				}

				total := booking.Price(prop.DailyRate, start, end)
				rental, err := a.client.CreateRental(ctx, api.CreateRentalRequest{
					PropertyID: prop.ID,
					StartDate:  from,
					EndDate:    to,
				})
				if err != nil {
					return err
				}

				fmt.Printf("Rental request sent for %s: %d night(s), total %s.\n",
					prop.Name, booking.Nights(start, end), formatMoney(total))
				fmt.Printf("Status: %s. Track it with: besctl rentals list\n", rental.Status().Label())
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Check-in date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Check-out date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func newRentalsListCommand(configPath *string) *cobra.Command {
	var (
		all     bool
		ownerID string
		status  string
		search  string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your rentals, or every rental with --all",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, configPath, func(ctx context.Context, a *app) error {
				if all {
					return listAllRentals(ctx, a, ownerID, status, search)
				}
				return listTenantRentals(ctx, a)
			})
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "List every rental (administration view)")
	cmd.Flags().StringVar(&ownerID, "owner", "", "With --all, narrow to one property owner")
	cmd.Flags().StringVar(&status, "status", "", "With --all, filter by status (PENDENTE, CONFIRMADO, RECUSADO, CANCELADO)")
	cmd.Flags().StringVar(&search, "search", "", "With --all, match tenant, property, or rental id")
	return cmd
}

// listTenantRentals mirrors the tenant's rentals page: requests still in
// play first, finished ones after.
func listTenantRentals(ctx context.Context, a *app) error {
	user, err := a.requireUser()
	if err != nil {
		return err
	}

	rentals, err := a.client.RentalsByTenant(ctx, user.ID)
	if err != nil {
		return err
	}
	if len(rentals) == 0 {
		fmt.Println("No rentals yet. Find a property with: besctl properties list")
		return nil
	}

	now := time.Now()
	var active, past []api.Rental
	for _, r := range rentals {
		if rentalOngoing(r, now) {
			active = append(active, r)
		} else {
			past = append(past, r)
		}
	}

	if len(active) > 0 {
		fmt.Println("Active:")
		printRentals(active)
	}
	if len(past) > 0 {
		fmt.Println("Past:")
		printRentals(past)
	}
	return nil
}

// rentalOngoing reports whether a rental still belongs in the active list:
// pending requests always, confirmed ones until their end date has started.
func rentalOngoing(r api.Rental, now time.Time) bool {
	switch r.Status() {
	case booking.StatusPending:
		return true
	case booking.StatusConfirmed:
		end, err := booking.ParseDate(r.EndDate)
		return err == nil && !end.Before(now)
	default:
		return false
	}
}

func listAllRentals(ctx context.Context, a *app, ownerID, status, search string) error {
	if _, err := a.requireAdmin(); err != nil {
		return err
	}

	rentals, err := a.client.Rentals(ctx, ownerID)
	if err != nil {
		return err
	}

	if status != "" {
		want := booking.Status(strings.ToUpper(status))
		filtered := rentals[:0]
		for _, r := range rentals {
			if r.Status() == want {
				filtered = append(filtered, r)
			}
		}
		rentals = filtered
	}

	if search != "" {
		query := strings.ToLower(search)
		filtered := rentals[:0]
		for _, r := range rentals {
			if strings.Contains(strings.ToLower(r.TenantName), query) ||
				strings.Contains(strings.ToLower(r.PropertyName), query) ||
				strings.Contains(strings.ToLower(r.ID), query) {
				filtered = append(filtered, r)
			}
		}
		rentals = filtered
	}

	if len(rentals) == 0 {
		fmt.Println("No rentals match.")
		return nil
	}
	printRentals(rentals)
	return nil
}

func printRentals(rentals []api.Rental) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPROPERTY\tTENANT\tPERIOD\tTOTAL\tSTATUS")
	for _, r := range rentals {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s .. %s\t%s\t%s\n",
			r.ID, r.PropertyName, r.TenantName, r.StartDate, r.EndDate,
			formatMoney(r.TotalPrice), r.Status().Label())
	}
	_ = w.Flush()
}

func newRentalsConfirmCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "confirm <rental-id>",
		Short: "Approve a pending rental as the property owner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, configPath, func(ctx context.Context, a *app) error {
				if _, err := a.requireAdmin(); err != nil {
					return err
				}
				rental, err := a.client.ConfirmRental(ctx, args[0])
				if err != nil {
					return err
				}
				fmt.Printf("Rental %s: %s\n", rental.ID, rental.Status().Label())
				return nil
			})
		},
	}
}

func newRentalsDenyCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "deny <rental-id>",
		Short: "Refuse a pending rental as the property owner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, configPath, func(ctx context.Context, a *app) error {
				if _, err := a.requireAdmin(); err != nil {
					return err
				}
				rental, err := a.client.DenyRental(ctx, args[0])
				if err != nil {
					return err
				}
				fmt.Printf("Rental %s: %s\n", rental.ID, rental.Status().Label())
				return nil
			})
		},
	}
}

func newRentalsCancelCommand(configPath *string) *cobra.Command {
	var (
		asOwner    bool
		cancelDate string
		reason     string
	)

	cmd := &cobra.Command{
		Use:   "cancel <rental-id>",
		Short: "Cancel a rental as tenant, or as owner with --as-owner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, configPath, func(ctx context.Context, a *app) error {
				var (
					rental api.Rental
					err    error
				)
				if asOwner {
					if _, err := a.requireAdmin(); err != nil {
						return err
					}
					rental, err = a.client.CancelRentalAsOwner(ctx, args[0], cancelDate)
				} else {
					if _, err := a.requireUser(); err != nil {
						return err
					}
					rental, err = a.client.CancelRentalAsTenant(ctx, args[0], reason)
				}
				if err != nil {
					return err
				}
				fmt.Printf("Rental %s: %s\n", rental.ID, rental.Status().Label())
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asOwner, "as-owner", false, "Cancel as the property owner")
	cmd.Flags().StringVar(&cancelDate, "date", "", "With --as-owner, cancel from this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&reason, "reason", defaultCancelReason, "Cancellation reason recorded for the owner")
	return cmd
}

func newRentalsDeleteCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <rental-id>",
		Short: "Remove a rental record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, configPath, func(ctx context.Context, a *app) error {
				if _, err := a.requireAdmin(); err != nil {
					return err
				}
				if err := a.client.DeleteRental(ctx, args[0]); err != nil {
					return err
				}
				fmt.Printf("Rental %s deleted.\n", args[0])
				return nil
			})
		},
	}
}
