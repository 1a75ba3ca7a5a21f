package invoice

import "fmt"

// ===============================
// Invoice Status
// ===============================

type Status string

const (
	StatusDraft     Status = "draft"
	StatusSent      Status = "sent"
	StatusPaid      Status = "paid"
	StatusOverdue   Status = "overdue"
	StatusCancelled Status = "cancelled"
)

// ParseStatus validates a caller-supplied status against the closed
// set. Empty input falls back to the default.
func ParseStatus(s string) (Status, error) {
	if s == "" {
		return InitialStatus(), nil
	}

	switch Status(s) {
	case StatusDraft, StatusSent, StatusPaid, StatusOverdue, StatusCancelled:
		return Status(s), nil
	}

	return "", fmt.Errorf("invalid invoice status %q", s)
}

func InitialStatus() Status {
	return StatusDraft
}
