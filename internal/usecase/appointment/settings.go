package appointment

import (
	"time"

	domain "github.com/BruksfildServices01/carwash-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/carwash-scheduler/internal/timezone"
)

// Settings carries the scheduling configuration shared by the use cases.
type Settings struct {
	Hours       domain.BusinessHours
	AutoConfirm bool
	WeekStart   time.Weekday
	Clock       *timezone.Clock
}

// Actor identifies who triggered a use case, for auditing.
type Actor struct {
	UserID    *uint
	RequestID string
}
