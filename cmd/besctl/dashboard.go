package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/360EntSecGroup-Skylar/excelize/v2"
	"github.com/spf13/cobra"

	"airbnbes/pkg/api"
	"airbnbes/pkg/booking"
)

const headerStyle = `{"font":{"bold":true},"fill":{"type":"pattern","pattern":1,"color":["#d9e2f3"]}}`

func newDashboardCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Summary statistics for administrators",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, configPath, func(ctx context.Context, a *app) error {
				if _, err := a.requireAdmin(); err != nil {
					return err
				}

				props, err := a.client.Properties(ctx)
				if err != nil {
					return err
				}
				rentals, err := a.client.Rentals(ctx, "")
				if err != nil {
					return err
				}

				pending := 0
				for _, r := range rentals {
					if r.Status() == booking.StatusPending {
						pending++
					}
				}

				fmt.Printf("Properties: %d\n", len(props))
				fmt.Printf("Rentals:    %d\n", len(rentals))
				fmt.Printf("Pending:    %d\n", pending)

				if len(rentals) > 0 {
					recent := rentals
					if len(recent) > 5 {
						recent = recent[:5]
					}
					fmt.Println("\nRecent rentals:")
					printRentals(recent)
				}
				return nil
			})
		},
	}

	cmd.AddCommand(newDashboardExportCommand(configPath))
	return cmd
}

func newDashboardExportCommand(configPath *string) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the rental ledger as a spreadsheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, configPath, func(ctx context.Context, a *app) error {
				if _, err := a.requireAdmin(); err != nil {
					return err
				}

				rentals, err := a.client.Rentals(ctx, "")
				if err != nil {
					return err
				}
				if len(rentals) == 0 {
					return errors.New("no rentals to export")
				}

				if output == "" {
					output = fmt.Sprintf("rentals_%s.xlsx", time.Now().Format("20060102_150405"))
				}
				if err := writeRentalsWorkbook(output, rentals); err != nil {
					return err
				}

				fmt.Printf("Wrote %d rental(s) to %s\n", len(rentals), output)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&output, "output", "", "Destination .xlsx file")
	return cmd
}

func writeRentalsWorkbook(path string, rentals []api.Rental) error {
	f := excelize.NewFile()

	sheet := "Rentals"
	f.NewSheet(sheet)
	f.DeleteSheet("Sheet1")

	if err := f.SetColWidth(sheet, "A", "G", 24); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}

	header, err := f.NewStyle(headerStyle)
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return fmt.Errorf("create stream writer: %w", err)
	}

	if err := sw.SetRow("A1", []interface{}{
		excelize.Cell{StyleID: header, Value: "ID"},
		excelize.Cell{StyleID: header, Value: "Property"},
		excelize.Cell{StyleID: header, Value: "Tenant"},
		excelize.Cell{StyleID: header, Value: "Start"},
		excelize.Cell{StyleID: header, Value: "End"},
		excelize.Cell{StyleID: header, Value: "Status"},
		excelize.Cell{StyleID: header, Value: "Total"}}); err != nil {
		return fmt.Errorf("write header row: %w", err)
	}

	for n, r := range rentals {
		row := []interface{}{
			r.ID,
			r.PropertyName,
			r.TenantName,
			r.StartDate,
			r.EndDate,
			r.Status().Label(),
			formatMoney(r.TotalPrice),
		}
		cell, _ := excelize.CoordinatesToCellName(1, n+2)
		if err := sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("write row %d: %w", n+2, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("flush workbook: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}
