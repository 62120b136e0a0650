package appointment

import (
	"context"

	"github.com/BruksfildServices01/carwash-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/carwash-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/carwash-scheduler/internal/httperr"
	"github.com/BruksfildServices01/carwash-scheduler/internal/models"
)

type UpdateAppointmentInput struct {
	Actor
	ID uint
	domain.Candidate
}

// UpdateAppointment replaces every editable field of an appointment.
// Status is not editable here; see TransitionAppointment.
type UpdateAppointment struct {
	repo     domain.Repository
	catalog  domain.Catalog
	audit    *audit.Dispatcher
	settings Settings
}

func NewUpdateAppointment(
	repo domain.Repository,
	catalog domain.Catalog,
	audit *audit.Dispatcher,
	settings Settings,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:     repo,
		catalog:  catalog,
		audit:    audit,
		settings: settings,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	washTypes, err := uc.catalog.List(ctx)
	if err != nil {
		return nil, err
	}

	norm, err := domain.Validator{Catalog: washTypes}.Validate(in.Candidate)
	if err != nil {
		return nil, err
	}

	moved := !domain.SameDay(norm.Date, ap.Date) || norm.Time != ap.Time
	if moved {
		if norm.Date.Before(uc.settings.Clock.Today()) {
			return nil, domain.ValidationErrors{{Field: "date", Code: "in_past"}}
		}
		if !uc.settings.Hours.Contains(norm.Time) {
			return nil, httperr.ErrBusinessMsg("outside_business_hours", "Fuera del horario de atención.")
		}

		if domain.Status(ap.Status).IsActive() {
			day, err := uc.repo.ListAppointmentsForDay(ctx, norm.Date)
			if err != nil {
				return nil, err
			}
			if !domain.CheckAvailabilityExcept(norm.Date, norm.Time, day, ap.ID) {
				return nil, &domain.SlotConflictError{Date: norm.Date, Time: norm.Time}
			}
		}
	}

	if norm.Phone != ap.Phone {
		client, err := uc.repo.GetOrCreateClient(ctx, norm.ClientName, norm.Phone, norm.Email, norm.VehicleModel)
		if err != nil {
			return nil, err
		}
		ap.ClientID = client.ID
	}

	ap.ClientName = norm.ClientName
	ap.Phone = norm.Phone
	ap.Email = norm.Email
	ap.Date = norm.Date
	ap.Time = norm.Time
	ap.WashTypeID = norm.WashType.ID
	ap.WashType = norm.WashType
	ap.VehicleModel = norm.VehicleModel
	ap.Notes = norm.Notes

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:    in.UserID,
		RequestID: in.RequestID,
		Action:    "appointment_updated",
		Entity:    "appointment",
		EntityID:  &ap.ID,
		Metadata:  map[string]any{"moved": moved},
	})

	return ap, nil
}
