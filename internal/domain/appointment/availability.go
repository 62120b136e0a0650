package appointment

import (
	"errors"
	"time"

	"github.com/BruksfildServices01/carwash-scheduler/internal/models"
)

// BusinessHours is the opening window of the wash, split into fixed slots.
type BusinessHours struct {
	Opening             string `json:"opening_time"`
	Closing             string `json:"closing_time"`
	SlotDurationMinutes int    `json:"slot_duration_minutes"`
}

func (h BusinessHours) Validate() error {
	open, err := minutesOf(h.Opening)
	if err != nil {
		return err
	}
	closing, err := minutesOf(h.Closing)
	if err != nil {
		return err
	}
	if closing <= open {
		return errors.New("closing time must be after opening time")
	}
	if h.SlotDurationMinutes <= 0 {
		return errors.New("slot duration must be positive")
	}
	return nil
}

// Slots lists every slot start between opening (inclusive) and closing (exclusive).
func (h BusinessHours) Slots() []string {
	if h.Validate() != nil {
		return []string{}
	}

	open, _ := minutesOf(h.Opening)
	closing, _ := minutesOf(h.Closing)

	slots := make([]string, 0, (closing-open)/h.SlotDurationMinutes+1)
	for m := open; m < closing; m += h.SlotDurationMinutes {
		slots = append(slots, clockOf(m))
	}
	return slots
}

// Contains reports whether clock is one of the slot starts.
func (h BusinessHours) Contains(clock string) bool {
	for _, s := range h.Slots() {
		if s == clock {
			return true
		}
	}
	return false
}

type AvailabilityInput struct {
	Date time.Time
}

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// AvailableSlots returns the slot starts of date not held by an active appointment,
// in ascending order.
func AvailableSlots(date time.Time, existing []models.Appointment, hours BusinessHours) []string {
	taken := takenOn(date, existing, 0)

	free := make([]string, 0)
	for _, s := range hours.Slots() {
		if !taken[s] {
			free = append(free, s)
		}
	}
	return free
}

// AvailableTimeSlots is AvailableSlots with the end of each slot attached.
func AvailableTimeSlots(date time.Time, existing []models.Appointment, hours BusinessHours) []TimeSlot {
	starts := AvailableSlots(date, existing, hours)

	out := make([]TimeSlot, 0, len(starts))
	for _, s := range starts {
		m, _ := minutesOf(s)
		out = append(out, TimeSlot{Start: s, End: clockOf(m + hours.SlotDurationMinutes)})
	}
	return out
}

// CheckAvailability is true iff no active appointment occupies (date, clock).
func CheckAvailability(date time.Time, clock string, existing []models.Appointment) bool {
	return CheckAvailabilityExcept(date, clock, existing, 0)
}

// CheckAvailabilityExcept ignores the appointment with id ignoreID, so that a
// record being edited does not collide with itself.
func CheckAvailabilityExcept(date time.Time, clock string, existing []models.Appointment, ignoreID uint) bool {
	return !takenOn(date, existing, ignoreID)[clock]
}

func takenOn(date time.Time, existing []models.Appointment, ignoreID uint) map[string]bool {
	taken := make(map[string]bool)
	for _, ap := range existing {
		if ignoreID != 0 && ap.ID == ignoreID {
			continue
		}
		if !Status(ap.Status).IsActive() || !SameDay(ap.Date, date) {
			continue
		}
		taken[ap.Time] = true
	}
	return taken
}
