package main

import (
	"testing"
	"time"

	"airbnbes/pkg/api"
)

func TestRentalOngoing(t *testing.T) {
	// Noon on the 15th: a confirmed rental ending that day is already past.
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		rental api.Rental
		want   bool
	}{
		{"pending ongoing", api.Rental{State: "PENDING", EndDate: "2024-06-01"}, true},
		{"pending ongoing without dates", api.Rental{State: "PENDING"}, true},
		{"confirmed ending tomorrow", api.Rental{State: "CONFIRMED", EndDate: "2024-06-16"}, true},
		{"confirmed ending today is past", api.Rental{State: "CONFIRMED", EndDate: "2024-06-15"}, false},
		{"confirmed ended yesterday", api.Rental{State: "CONFIRMED", EndDate: "2024-06-14"}, false},
		{"confirmed with bad end date", api.Rental{State: "CONFIRMED", EndDate: "15/06/2024"}, false},
		{"cancelled", api.Rental{State: "CANCELLED", EndDate: "2024-06-20"}, false},
		{"denied", api.Rental{State: "DENIED", EndDate: "2024-06-20"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rentalOngoing(tt.rental, now); got != tt.want {
				t.Fatalf("rentalOngoing(%+v) = %v, want %v", tt.rental, got, tt.want)
			}
		})
	}
}
