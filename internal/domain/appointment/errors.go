package appointment

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrNotFound = errors.New("appointment_not_found")

// FieldError describes one rejected field of a candidate appointment.
type FieldError struct {
	Field string `json:"field"`
	Code  string `json:"code"`
}

// ValidationErrors collects every field rejected by Validate.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		parts = append(parts, fe.Field+": "+fe.Code)
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Has reports whether field was rejected.
func (v ValidationErrors) Has(field string) bool {
	for _, fe := range v {
		if fe.Field == field {
			return true
		}
	}
	return false
}

type SlotConflictError struct {
	Date time.Time
	Time string
}

func (e *SlotConflictError) Error() string {
	if e.Date.IsZero() {
		return "time_conflict"
	}
	return fmt.Sprintf("time_conflict: slot %s %s is taken", FormatDate(e.Date), e.Time)
}

type IllegalTransitionError struct {
	From Status
	To   Status
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("illegal_transition: %s -> %s", e.From, e.To)
}
