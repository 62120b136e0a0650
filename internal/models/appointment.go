package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	ClientName string `gorm:"size:100;not null" json:"client_name"`
	Phone      string `gorm:"size:20;not null" json:"phone"`
	Email      string `gorm:"size:100" json:"email"`

	// Date is a calendar day at UTC midnight; Time is "HH:MM".
	Date time.Time `gorm:"type:date;not null;index" json:"date"`
	Time string    `gorm:"size:5;not null" json:"time"`

	WashTypeID uint     `gorm:"not null" json:"wash_type_id"`
	WashType   WashType `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	VehicleModel string `gorm:"size:100;not null" json:"vehicle_model"`
	Notes        string `gorm:"size:255" json:"notes"`

	Status string `gorm:"size:20;default:'pending';index" json:"status"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
