package booking

// Status is the canonical rental status used throughout the client. The
// backend reports English state codes on the wire; the marketplace UI
// vocabulary is the Portuguese set below.
type Status string

const (
	StatusPending   Status = "PENDENTE"
	StatusConfirmed Status = "CONFIRMADO"
	StatusDenied    Status = "RECUSADO"
	StatusCancelled Status = "CANCELADO"
)

// StatusFromAPI maps a backend state code onto the canonical status set.
// Expired rentals collapse into cancelled; unknown codes are treated as
// pending.
func StatusFromAPI(state string) Status {
	switch state {
	case "PENDING":
		return StatusPending
	case "CONFIRMED":
		return StatusConfirmed
	case "DENIED":
		return StatusDenied
	case "CANCELLED", "EXPIRED":
		return StatusCancelled
	default:
		return StatusPending
	}
}

// Label returns the human-readable form of a status.
func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "Pendente"
	case StatusConfirmed:
		return "Confirmado"
	case StatusDenied:
		return "Recusado"
	case StatusCancelled:
		return "Cancelado"
	default:
		return string(s)
	}
}
