package appointment

import (
	"context"

	"github.com/BruksfildServices01/carwash-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/carwash-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/carwash-scheduler/internal/models"
)

// TransitionAppointment moves an appointment along the status machine
// (confirm, cancel, complete).
type TransitionAppointment struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	settings Settings
}

func NewTransitionAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	settings Settings,
) *TransitionAppointment {
	return &TransitionAppointment{
		repo:     repo,
		audit:    audit,
		settings: settings,
	}
}

func (uc *TransitionAppointment) Execute(
	ctx context.Context,
	actor Actor,
	id uint,
	target domain.Status,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	from := ap.Status

	updated, err := domain.Transition(*ap, target, uc.settings.Clock.Now())
	if err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, &updated); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:    actor.UserID,
		RequestID: actor.RequestID,
		Action:    "appointment_" + string(target),
		Entity:    "appointment",
		EntityID:  &updated.ID,
		Metadata:  map[string]any{"from": from},
	})

	return &updated, nil
}
