package appointment

import (
	"context"

	"github.com/BruksfildServices01/carwash-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/carwash-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/carwash-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/carwash-scheduler/internal/httperr"
	"github.com/BruksfildServices01/carwash-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	Actor
	domain.Candidate
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo     domain.Repository
	catalog  domain.Catalog
	audit    *audit.Dispatcher
	settings Settings
}

func NewCreateAppointment(
	repo domain.Repository,
	catalog domain.Catalog,
	audit *audit.Dispatcher,
	settings Settings,
) *CreateAppointment {
	return &CreateAppointment{
		repo:     repo,
		catalog:  catalog,
		audit:    audit,
		settings: settings,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Catálogo (só tipos ativos aceitam novas citas)
	// --------------------------------------------------
	washTypes, err := uc.catalog.List(ctx)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. Validação e normalização
	// --------------------------------------------------
	norm, err := domain.Validator{
		Catalog: catalog.Active(washTypes),
		Today:   uc.settings.Clock.Today(),
	}.Validate(in.Candidate)
	if err != nil {
		return nil, err
	}

	if !uc.settings.Hours.Contains(norm.Time) {
		return nil, httperr.ErrBusinessMsg("outside_business_hours", "Fuera del horario de atención.")
	}

	// --------------------------------------------------
	// 3. Conflito de horário (o índice do banco decide no commit)
	// --------------------------------------------------
	day, err := uc.repo.ListAppointmentsForDay(ctx, norm.Date)
	if err != nil {
		return nil, err
	}
	if !domain.CheckAvailability(norm.Date, norm.Time, day) {
		return nil, &domain.SlotConflictError{Date: norm.Date, Time: norm.Time}
	}

	// --------------------------------------------------
	// 4. Cliente (get or create)
	// --------------------------------------------------
	client, err := uc.repo.GetOrCreateClient(
		ctx,
		norm.ClientName,
		norm.Phone,
		norm.Email,
		norm.VehicleModel,
	)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5. Criação
	// --------------------------------------------------
	status := domain.InitialStatus(uc.settings.AutoConfirm)

	ap := &models.Appointment{
		ClientID:     client.ID,
		ClientName:   norm.ClientName,
		Phone:        norm.Phone,
		Email:        norm.Email,
		Date:         norm.Date,
		Time:         norm.Time,
		WashTypeID:   norm.WashType.ID,
		VehicleModel: norm.VehicleModel,
		Notes:        norm.Notes,
		Status:       string(status),
	}
	if status == domain.StatusConfirmed {
		now := uc.settings.Clock.Now()
		ap.ConfirmedAt = &now
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}
	ap.WashType = norm.WashType

	// --------------------------------------------------
	// 6. Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		UserID:    in.UserID,
		RequestID: in.RequestID,
		Action:    "appointment_created",
		Entity:    "appointment",
		EntityID:  &ap.ID,
		Metadata: map[string]any{
			"date": domain.FormatDate(ap.Date),
			"time": ap.Time,
		},
	})

	return ap, nil
}
