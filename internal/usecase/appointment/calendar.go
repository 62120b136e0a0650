package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/carwash-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/carwash-scheduler/internal/dto"
)

type GetCalendarMonth struct {
	repo     domain.Repository
	settings Settings
}

func NewGetCalendarMonth(
	repo domain.Repository,
	settings Settings,
) *GetCalendarMonth {
	return &GetCalendarMonth{
		repo:     repo,
		settings: settings,
	}
}

// Execute builds the 6x7 month grid with the appointments of each day of month.
func (uc *GetCalendarMonth) Execute(
	ctx context.Context,
	year int,
	month time.Month,
) (*dto.CalendarMonthDTO, error) {

	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	appointments, err := uc.repo.ListAppointmentsForPeriod(ctx, start, end)
	if err != nil {
		return nil, err
	}

	days := domain.GroupByDay(appointments, year, month)
	grid := domain.MonthGrid(year, month, uc.settings.WeekStart)

	out := &dto.CalendarMonthDTO{
		Year:      year,
		Month:     int(month),
		WeekStart: uc.settings.WeekStart.String(),
		Cells:     make([]dto.CalendarCellDTO, 0, len(grid)),
	}

	for _, cell := range grid {
		c := dto.CalendarCellDTO{
			Date:         domain.FormatDate(cell.Date),
			Day:          cell.Date.Day(),
			InMonth:      cell.InMonth,
			Appointments: []dto.AppointmentDTO{},
		}
		if cell.InMonth {
			c.Appointments = dto.FromAppointments(days[cell.Date.Day()])
			out.Total += len(c.Appointments)
		}
		out.Cells = append(out.Cells, c)
	}

	return out, nil
}
