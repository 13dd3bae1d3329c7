package booking

import "testing"

func TestStatusFromAPI(t *testing.T) {
	tests := []struct {
		state string
		want  Status
	}{
		{"PENDING", StatusPending},
		{"CONFIRMED", StatusConfirmed},
		{"DENIED", StatusDenied},
		{"CANCELLED", StatusCancelled},
		{"EXPIRED", StatusCancelled},
		{"SOMETHING_NEW", StatusPending},
		{"", StatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.state, func(t *testing.T) {
			if got := StatusFromAPI(tt.state); got != tt.want {
				t.Fatalf("StatusFromAPI(%q) = %s, want %s", tt.state, got, tt.want)
			}
		})
	}
}

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusPending, "Pendente"},
		{StatusConfirmed, "Confirmado"},
		{StatusDenied, "Recusado"},
		{StatusCancelled, "Cancelado"},
		{Status("OUTRO"), "OUTRO"},
	}

	for _, tt := range tests {
		if got := tt.status.Label(); got != tt.want {
			t.Fatalf("Label(%s) = %q, want %q", tt.status, got, tt.want)
		}
	}
}
