package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/carwash-scheduler/internal/domain/appointment"
)

type GetAvailability struct {
	repo     domain.Repository
	settings Settings
}

func NewGetAvailability(repo domain.Repository, settings Settings) *GetAvailability {
	return &GetAvailability{repo: repo, settings: settings}
}

// Execute lists the free slots of the requested day. Days in the past have none.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	date := domain.DayOf(in.Date)
	if date.Before(uc.settings.Clock.Today()) {
		return []domain.TimeSlot{}, nil
	}

	appointments, err := uc.repo.ListAppointmentsForDay(ctx, date)
	if err != nil {
		return nil, err
	}

	return domain.AvailableTimeSlots(date, appointments, uc.settings.Hours), nil
}
