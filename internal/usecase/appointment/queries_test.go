package appointment

import (
	"context"
	"testing"
	"time"

	domain "github.com/BruksfildServices01/carwash-scheduler/internal/domain/appointment"
)

func TestGetAvailability(t *testing.T) {
	h := newHarness()
	h.create("2025-03-10", "09:00")
	h.create("2025-03-10", "18:30")

	slots, err := NewGetAvailability(h.repo, h.settings).
		Execute(context.Background(), domain.AvailabilityInput{Date: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(slots) != 18 {
		t.Fatalf("expected 18 slots, got %d", len(slots))
	}
	if slots[0].Start != "09:30" || slots[len(slots)-1].Start != "18:00" {
		t.Fatalf("unexpected bounds %+v .. %+v", slots[0], slots[len(slots)-1])
	}
}

func TestGetAvailability_PastDayIsEmpty(t *testing.T) {
	h := newHarness()

	slots, err := NewGetAvailability(h.repo, h.settings).
		Execute(context.Background(), domain.AvailabilityInput{Date: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)})
	if err != nil || len(slots) != 0 {
		t.Fatalf("expected no slots, got %v (%v)", slots, err)
	}
}

func TestListAppointmentsByDate_SortedByTime(t *testing.T) {
	h := newHarness()
	h.create("2025-03-10", "15:00")
	h.create("2025-03-10", "09:00")
	h.create("2025-03-11", "09:00:00")

	out, err := NewListAppointmentsByDate(h.repo).Execute(context.Background(), time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 || out[0].Time != "09:00" || out[1].Time != "15:00" {
		t.Fatalf("unexpected list %+v", out)
	}
	if out[0].Date != "2025-03-10" {
		t.Fatalf("date not formatted: %s", out[0].Date)
	}
}

func TestGetCalendarMonth(t *testing.T) {
	h := newHarness()
	h.create("2025-03-10", "15:00")
	h.create("2025-03-10", "09:00")
	h.create("2025-03-31", "10:00")
	h.create("2025-04-01", "10:00")

	cal, err := NewGetCalendarMonth(h.repo, h.settings).Execute(context.Background(), 2025, time.March)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cal.Cells) != 42 || cal.Total != 3 || cal.WeekStart != "Monday" {
		t.Fatalf("unexpected calendar header %+v", cal)
	}

	// 1 March 2025 is a Saturday: Monday-first grid starts on 24 Feb.
	tenth := cal.Cells[5+9]
	if tenth.Date != "2025-03-10" || len(tenth.Appointments) != 2 {
		t.Fatalf("unexpected cell %+v", tenth)
	}
	if tenth.Appointments[0].Time != "09:00" {
		t.Fatal("appointments of a day must be sorted by time")
	}

	for _, c := range cal.Cells {
		if !c.InMonth && len(c.Appointments) != 0 {
			t.Fatalf("filler cell %s should carry no appointments", c.Date)
		}
	}
}
