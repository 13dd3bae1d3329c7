package booking

import "time"

// DateLayout is the backend's wire format for calendar dates.
const DateLayout = "2006-01-02"

// Reservation is the slice of a rental the availability check cares about:
// an inclusive calendar-date range plus the status that decides whether it
// occupies the calendar.
type Reservation struct {
	Start  time.Time
	End    time.Time
	Status Status
}

// ParseDate parses a calendar date in the backend's YYYY-MM-DD format.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// DateReserved reports whether date falls inside any confirmed reservation.
// Pending, denied, and cancelled entries never mark a date as reserved.
func DateReserved(date time.Time, reservations []Reservation) bool {
	day := midnight(date)
	for _, r := range reservations {
		if r.Status != StatusConfirmed {
			continue
		}
		if !day.Before(midnight(r.Start)) && !day.After(midnight(r.End)) {
			return true
		}
	}
	return false
}

// ValidateRange reports whether the inclusive range [start, end] can be
// requested: both dates present, start not after end, and every day of the
// range free of confirmed reservations. The check is advisory; the backend
// remains authoritative at submission time.
func ValidateRange(start, end time.Time, reservations []Reservation) bool {
	if start.IsZero() || end.IsZero() {
		return false
	}
	s, e := midnight(start), midnight(end)
	if s.After(e) {
		return false
	}
	for day := s; !day.After(e); day = day.AddDate(0, 0, 1) {
		if DateReserved(day, reservations) {
			return false
		}
	}
	return true
}

// Nights returns the inclusive day count of [start, end]. A single-day stay
// counts as one night. Zero when either date is absent or the range is
// inverted.
func Nights(start, end time.Time) int {
	if start.IsZero() || end.IsZero() {
		return 0
	}
	s, e := midnight(start), midnight(end)
	if s.After(e) {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}

// Price computes the total for the range: daily rate times the inclusive
// day count.
func Price(dailyRate float64, start, end time.Time) float64 {
	return dailyRate * float64(Nights(start, end))
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
