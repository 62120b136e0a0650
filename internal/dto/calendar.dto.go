package dto

type CalendarCellDTO struct {
	Date         string           `json:"date"`
	Day          int              `json:"day"`
	InMonth      bool             `json:"in_month"`
	Appointments []AppointmentDTO `json:"appointments"`
}

type CalendarMonthDTO struct {
	Year      int               `json:"year"`
	Month     int               `json:"month"`
	WeekStart string            `json:"week_start"`
	Cells     []CalendarCellDTO `json:"cells"`
	Total     int               `json:"total"`
}
