package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/carwash-scheduler/internal/models"
)

// Repository is the appointment store. Implementations must enforce the
// one-active-appointment-per-slot rule and report it as *SlotConflictError.
type Repository interface {
	// -------- Client --------
	GetOrCreateClient(
		ctx context.Context,
		name string,
		phone string,
		email string,
		vehicleModel string,
	) (*models.Client, error)

	// -------- Appointment (read) --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	ListAppointments(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Appointment, error)

	ListAppointmentsForDay(
		ctx context.Context,
		date time.Time,
	) ([]models.Appointment, error)

	ListAppointmentsForPeriod(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// -------- Appointment (write) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id uint,
	) error
}

// Catalog resolves wash types referenced by appointments.
type Catalog interface {
	List(ctx context.Context) ([]models.WashType, error)
}

// ListFilter narrows ListAppointments. Zero values mean "no filter".
type ListFilter struct {
	Status Status
	Query  string
	From   time.Time
	To     time.Time
}
