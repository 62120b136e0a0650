package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/carwash-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/carwash-scheduler/internal/dto"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
}

func NewListAppointmentsByDate(
	repo domain.Repository,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo: repo,
	}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	date time.Time,
) ([]dto.AppointmentDTO, error) {

	appointments, err := uc.repo.ListAppointmentsForDay(ctx, domain.DayOf(date))
	if err != nil {
		return nil, err
	}

	domain.SortByTime(appointments)
	return dto.FromAppointments(appointments), nil
}
