package booking

import (
	"testing"
	"time"
)

func TestDateReserved(t *testing.T) {
	reservations := []Reservation{
		{Start: mustDate("2024-06-10"), End: mustDate("2024-06-15"), Status: StatusConfirmed},
		{Start: mustDate("2024-07-01"), End: mustDate("2024-07-05"), Status: StatusPending},
		{Start: mustDate("2024-08-01"), End: mustDate("2024-08-05"), Status: StatusCancelled},
		{Start: mustDate("2024-09-01"), End: mustDate("2024-09-05"), Status: StatusDenied},
	}

	tests := []struct {
		name string
		date string
		want bool
	}{
		{"inside confirmed range", "2024-06-12", true},
		{"first day of range", "2024-06-10", true},
		{"last day of range", "2024-06-15", true},
		{"day before range", "2024-06-09", false},
		{"day after range", "2024-06-16", false},
		{"pending never blocks", "2024-07-03", false},
		{"cancelled never blocks", "2024-08-03", false},
		{"denied never blocks", "2024-09-03", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DateReserved(mustDate(tt.date), reservations); got != tt.want {
				t.Fatalf("DateReserved(%s) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}

func TestValidateRange(t *testing.T) {
	reservations := []Reservation{
		{Start: mustDate("2024-06-10"), End: mustDate("2024-06-15"), Status: StatusConfirmed},
	}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"missing start", time.Time{}, mustDate("2024-06-20"), false},
		{"missing end", mustDate("2024-06-20"), time.Time{}, false},
		{"inverted range", mustDate("2024-06-20"), mustDate("2024-06-18"), false},
		{"inside reservation", mustDate("2024-06-12"), mustDate("2024-06-13"), false},
		{"touches reservation start", mustDate("2024-06-08"), mustDate("2024-06-10"), false},
		{"touches reservation end", mustDate("2024-06-15"), mustDate("2024-06-18"), false},
		{"spans reservation", mustDate("2024-06-05"), mustDate("2024-06-20"), false},
		{"disjoint before", mustDate("2024-06-05"), mustDate("2024-06-09"), true},
		{"disjoint after", mustDate("2024-06-16"), mustDate("2024-06-18"), true},
		{"single free day", mustDate("2024-06-16"), mustDate("2024-06-16"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateRange(tt.start, tt.end, reservations); got != tt.want {
				t.Fatalf("ValidateRange() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidateRangeEmptyCalendar(t *testing.T) {
	if !ValidateRange(mustDate("2024-06-01"), mustDate("2024-06-30"), nil) {
		t.Fatal("a range with no reservations must be valid")
	}
}

func TestNightsAndPrice(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		rate       float64
		wantNights int
		wantPrice  float64
	}{
		{"single day is one night", "2024-06-16", "2024-06-16", 100, 1, 100},
		{"week is seven nights", "2024-06-10", "2024-06-16", 100, 7, 700},
		{"three-day stay", "2024-06-16", "2024-06-18", 150, 3, 450},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := mustDate(tt.start), mustDate(tt.end)
			if got := Nights(start, end); got != tt.wantNights {
				t.Fatalf("Nights() = %d, want %d", got, tt.wantNights)
			}
			if got := Price(tt.rate, start, end); got != tt.wantPrice {
				t.Fatalf("Price() = %v, want %v", got, tt.wantPrice)
			}
		})
	}
}

func TestPriceDegenerateRanges(t *testing.T) {
	if got := Price(100, mustDate("2024-06-18"), mustDate("2024-06-16")); got != 0 {
		t.Fatalf("Price() on an inverted range = %v, want 0", got)
	}
	if got := Price(100, time.Time{}, mustDate("2024-06-16")); got != 0 {
		t.Fatalf("Price() with a missing date = %v, want 0", got)
	}
}

func mustDate(s string) time.Time {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}
