package appointment

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/BruksfildServices01/carwash-scheduler/internal/models"
	"github.com/BruksfildServices01/carwash-scheduler/internal/validators"
)

const minPhoneDigits = 9

// Column sizes of the appointments table, counted in characters.
const (
	maxNameLen    = 100
	maxPhoneLen   = 20
	maxEmailLen   = 100
	maxVehicleLen = 100
	maxNotesLen   = 255
)

// Candidate is an appointment as submitted by a client, before validation.
type Candidate struct {
	ClientName   string
	Phone        string
	Email        string
	Date         string
	Time         string
	WashTypeID   uint
	VehicleModel string
	Notes        string
}

// Normalized is a candidate that passed validation.
type Normalized struct {
	ClientName   string
	Phone        string
	Email        string
	Date         time.Time
	Time         string
	WashType     models.WashType
	VehicleModel string
	Notes        string
}

// Validator checks candidates against the wash catalog.
// A zero Today disables the "not in the past" rule.
type Validator struct {
	Catalog []models.WashType
	Today   time.Time
}

func (v Validator) Validate(c Candidate) (Normalized, error) {
	var errs ValidationErrors
	reject := func(field, code string) {
		errs = append(errs, FieldError{Field: field, Code: code})
	}

	out := Normalized{
		ClientName:   strings.TrimSpace(c.ClientName),
		Phone:        validators.DigitsOnly(c.Phone),
		Email:        strings.ToLower(strings.TrimSpace(c.Email)),
		VehicleModel: strings.TrimSpace(c.VehicleModel),
		Notes:        strings.TrimSpace(c.Notes),
	}

	tooLong := func(s string, max int) bool {
		return utf8.RuneCountInString(s) > max
	}

	if out.ClientName == "" {
		reject("client_name", "required")
	} else if tooLong(out.ClientName, maxNameLen) {
		reject("client_name", "too_long")
	}

	if len(out.Phone) < minPhoneDigits {
		reject("phone", "too_short")
	} else if len(out.Phone) > maxPhoneLen {
		reject("phone", "too_long")
	}

	if tooLong(out.Email, maxEmailLen) {
		reject("email", "too_long")
	} else if !validators.IsEmailFormatValid(out.Email) {
		reject("email", "invalid")
	}

	if strings.TrimSpace(c.Date) == "" {
		reject("date", "required")
	} else if d, err := ParseDate(c.Date); err != nil {
		reject("date", "invalid")
	} else if !v.Today.IsZero() && d.Before(DayOf(v.Today)) {
		reject("date", "in_past")
	} else {
		out.Date = d
	}

	if strings.TrimSpace(c.Time) == "" {
		reject("time", "required")
	} else if clock, err := ParseClock(c.Time); err != nil {
		reject("time", "invalid")
	} else {
		out.Time = clock
	}

	if c.WashTypeID == 0 {
		reject("wash_type", "required")
	} else if wt, ok := v.lookup(c.WashTypeID); !ok {
		reject("wash_type", "unknown")
	} else {
		out.WashType = wt
	}

	if out.VehicleModel == "" {
		reject("vehicle_model", "required")
	} else if tooLong(out.VehicleModel, maxVehicleLen) {
		reject("vehicle_model", "too_long")
	}

	if tooLong(out.Notes, maxNotesLen) {
		reject("notes", "too_long")
	}

	if len(errs) > 0 {
		return Normalized{}, errs
	}
	return out, nil
}

func (v Validator) lookup(id uint) (models.WashType, bool) {
	for _, wt := range v.Catalog {
		if wt.ID == id {
			return wt, true
		}
	}
	return models.WashType{}, false
}
