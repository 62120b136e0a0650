package appointment

import (
	"sort"
	"time"

	"github.com/BruksfildServices01/carwash-scheduler/internal/models"
)

const gridCells = 42

// DayCell is one square of the month grid.
type DayCell struct {
	Date    time.Time `json:"date"`
	InMonth bool      `json:"in_month"`
}

// SortByTime orders appointments by clock, keeping the input order on ties.
func SortByTime(aps []models.Appointment) {
	sort.SliceStable(aps, func(i, j int) bool {
		return aps[i].Time < aps[j].Time
	})
}

// GroupByDay buckets the appointments of year/month by day of month.
// Cancelled appointments are kept.
func GroupByDay(aps []models.Appointment, year int, month time.Month) map[int][]models.Appointment {
	days := make(map[int][]models.Appointment)
	for _, ap := range aps {
		if ap.Date.Year() != year || ap.Date.Month() != month {
			continue
		}
		days[ap.Date.Day()] = append(days[ap.Date.Day()], ap)
	}

	for _, list := range days {
		SortByTime(list)
	}
	return days
}

// FirstDayOffset is the column of the 1st of month in a week starting at weekStart.
func FirstDayOffset(year int, month time.Month, weekStart time.Weekday) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return (int(first.Weekday()) - int(weekStart) + 7) % 7
}

// MonthGrid lays out six full weeks around year/month.
func MonthGrid(year int, month time.Month, weekStart time.Weekday) []DayCell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	start := first.AddDate(0, 0, -FirstDayOffset(year, month, weekStart))

	cells := make([]DayCell, gridCells)
	for i := range cells {
		d := start.AddDate(0, 0, i)
		cells[i] = DayCell{Date: d, InMonth: d.Month() == month && d.Year() == year}
	}
	return cells
}
