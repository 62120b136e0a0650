package models

import "time"

// Setting is a namespaced key/value pair used for per-user UI preferences.
type Setting struct {
	Key       string    `gorm:"primaryKey;size:150" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
