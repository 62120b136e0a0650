package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/carwash-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/carwash-scheduler/internal/models"
)

type AppointmentDTO struct {
	ID           uint             `json:"id"`
	ClientID     uint             `json:"client_id"`
	ClientName   string           `json:"client_name"`
	Phone        string           `json:"phone"`
	Email        string           `json:"email"`
	Date         string           `json:"date"`
	Time         string           `json:"time"`
	WashTypeID   uint             `json:"wash_type_id"`
	WashTypeName string           `json:"wash_type_name,omitempty"`
	Price        *decimal.Decimal `json:"price,omitempty"`
	VehicleModel string           `json:"vehicle_model"`
	Notes        string           `json:"notes"`
	Status       string           `json:"status"`
	ConfirmedAt  *time.Time       `json:"confirmed_at,omitempty"`
	CancelledAt  *time.Time       `json:"cancelled_at,omitempty"`
	CompletedAt  *time.Time       `json:"completed_at,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
}

func FromAppointment(ap models.Appointment) AppointmentDTO {
	out := AppointmentDTO{
		ID:           ap.ID,
		ClientID:     ap.ClientID,
		ClientName:   ap.ClientName,
		Phone:        ap.Phone,
		Email:        ap.Email,
		Date:         appointment.FormatDate(ap.Date),
		Time:         ap.Time,
		WashTypeID:   ap.WashTypeID,
		VehicleModel: ap.VehicleModel,
		Notes:        ap.Notes,
		Status:       ap.Status,
		ConfirmedAt:  ap.ConfirmedAt,
		CancelledAt:  ap.CancelledAt,
		CompletedAt:  ap.CompletedAt,
		CreatedAt:    ap.CreatedAt,
	}

	if ap.WashType.ID != 0 {
		price := ap.WashType.Price
		out.WashTypeName = ap.WashType.Name
		out.Price = &price
	}

	return out
}

func FromAppointments(aps []models.Appointment) []AppointmentDTO {
	out := make([]AppointmentDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, FromAppointment(ap))
	}
	return out
}
