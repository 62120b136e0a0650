package appointment

import (
	"context"

	"github.com/BruksfildServices01/carwash-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/carwash-scheduler/internal/domain/appointment"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute removes the appointment, freeing its slot.
func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	actor Actor,
	id uint,
) error {

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteAppointment(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:    actor.UserID,
		RequestID: actor.RequestID,
		Action:    "appointment_deleted",
		Entity:    "appointment",
		EntityID:  &id,
		Metadata: map[string]any{
			"date":   domain.FormatDate(ap.Date),
			"time":   ap.Time,
			"status": ap.Status,
		},
	})

	return nil
}
