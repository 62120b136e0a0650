package appointment

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/carwash-scheduler/internal/models"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

// ParseStatus accepts any letter case; stored values are lowercase.
func ParseStatus(s string) (Status, bool) {
	switch st := Status(strings.ToLower(strings.TrimSpace(s))); st {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return st, true
	}
	return "", false
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// IsActive reports whether an appointment in this status holds its slot.
func (s Status) IsActive() bool {
	return s != StatusCancelled
}

// InitialStatus is the status given to a freshly created appointment.
func InitialStatus(autoConfirm bool) Status {
	if autoConfirm {
		return StatusConfirmed
	}
	return StatusPending
}

// ===============================
// Validations
// ===============================

// CanTransition reports whether from -> to is a legal edge.
func CanTransition(from, to Status) error {
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return &IllegalTransitionError{From: from, To: to}
}

// ===============================
// Domain Actions
// ===============================

// Transition returns a copy of ap moved to target, stamping the matching
// timestamp. ap itself is never modified.
func Transition(ap models.Appointment, target Status, now time.Time) (models.Appointment, error) {
	if err := CanTransition(Status(ap.Status), target); err != nil {
		return ap, err
	}

	ap.Status = string(target)
	switch target {
	case StatusConfirmed:
		ap.ConfirmedAt = &now
	case StatusCompleted:
		ap.CompletedAt = &now
	case StatusCancelled:
		ap.CancelledAt = &now
	}
	return ap, nil
}
