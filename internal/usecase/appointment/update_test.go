package appointment

import (
	"context"
	"errors"
	"testing"

	domain "github.com/BruksfildServices01/carwash-scheduler/internal/domain/appointment"
)

func TestUpdateAppointment_MoveToFreeSlot(t *testing.T) {
	h := newHarness()
	ap := h.create("2025-03-10", "10:00")

	c := candidateAt("2025-03-10", "11:00")
	c.Notes = "cliente llega tarde"

	updated, err := NewUpdateAppointment(h.repo, testWashTypes, h.dispatch, h.settings).
		Execute(context.Background(), UpdateAppointmentInput{ID: ap.ID, Candidate: c})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Time != "11:00" || updated.Notes != "cliente llega tarde" {
		t.Fatalf("update not applied: %+v", updated)
	}

	free := domain.AvailableSlots(updated.Date, h.repo.items, h.settings.Hours)
	if !containsSlot(free, "10:00") || containsSlot(free, "11:00") {
		t.Fatalf("slots not moved: %v", free)
	}
}

func TestUpdateAppointment_KeepSlot(t *testing.T) {
	h := newHarness()
	ap := h.create("2025-03-10", "10:00")

	c := candidateAt("2025-03-10", "10:00")
	c.VehicleModel = "Renault Clio"

	if _, err := NewUpdateAppointment(h.repo, testWashTypes, h.dispatch, h.settings).
		Execute(context.Background(), UpdateAppointmentInput{ID: ap.ID, Candidate: c}); err != nil {
		t.Fatalf("editing without moving must not conflict with itself: %v", err)
	}
}

func TestUpdateAppointment_MoveIntoTakenSlot(t *testing.T) {
	h := newHarness()
	h.create("2025-03-10", "10:00")
	other := h.create("2025-03-10", "12:00")

	_, err := NewUpdateAppointment(h.repo, testWashTypes, h.dispatch, h.settings).
		Execute(context.Background(), UpdateAppointmentInput{ID: other.ID, Candidate: candidateAt("2025-03-10", "10:00")})

	var conflict *domain.SlotConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected SlotConflictError, got %v", err)
	}
}

func TestUpdateAppointment_RevalidatesFields(t *testing.T) {
	h := newHarness()
	ap := h.create("2025-03-10", "10:00")

	c := candidateAt("2025-03-10", "10:00")
	c.Email = "broken"

	_, err := NewUpdateAppointment(h.repo, testWashTypes, h.dispatch, h.settings).
		Execute(context.Background(), UpdateAppointmentInput{ID: ap.ID, Candidate: c})

	var verrs domain.ValidationErrors
	if !errors.As(err, &verrs) || !verrs.Has("email") {
		t.Fatalf("expected email validation error, got %v", err)
	}
}

func TestUpdateAppointment_MoveIntoPast(t *testing.T) {
	h := newHarness()
	ap := h.create("2025-03-10", "10:00")

	_, err := NewUpdateAppointment(h.repo, testWashTypes, h.dispatch, h.settings).
		Execute(context.Background(), UpdateAppointmentInput{ID: ap.ID, Candidate: candidateAt("2025-03-01", "10:00")})

	var verrs domain.ValidationErrors
	if !errors.As(err, &verrs) || !verrs.Has("date") {
		t.Fatalf("expected date validation error, got %v", err)
	}
}

func TestDeleteAppointment(t *testing.T) {
	h := newHarness()
	ap := h.create("2025-03-10", "10:00")
	uc := NewDeleteAppointment(h.repo, h.dispatch)

	if err := uc.Execute(context.Background(), Actor{}, ap.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uc.Execute(context.Background(), Actor{}, ap.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}

	h.create("2025-03-10", "10:00")
}

func containsSlot(slots []string, s string) bool {
	for _, v := range slots {
		if v == s {
			return true
		}
	}
	return false
}

func TestUpdateAppointment_StoreRejectsRacingMove(t *testing.T) {
	h := newHarness()
	h.create("2025-03-10", "10:00")
	other := h.create("2025-03-10", "12:00")

	_, err := NewUpdateAppointment(staleDayRepo{h.repo}, testWashTypes, h.dispatch, h.settings).
		Execute(context.Background(), UpdateAppointmentInput{ID: other.ID, Candidate: candidateAt("2025-03-10", "10:00")})

	var conflict *domain.SlotConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected SlotConflictError from the store, got %v", err)
	}

	stored, _ := h.repo.GetAppointment(context.Background(), other.ID)
	if stored.Time != "12:00" {
		t.Fatalf("appointment must keep its slot, got %s", stored.Time)
	}
}

func TestUpdateAppointment_CancelledMayMoveOntoTakenSlot(t *testing.T) {
	h := newHarness()
	h.create("2025-03-10", "10:00")
	other := h.create("2025-03-10", "12:00")

	if _, err := NewTransitionAppointment(h.repo, h.dispatch, h.settings).
		Execute(context.Background(), Actor{}, other.ID, domain.StatusCancelled); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	updated, err := NewUpdateAppointment(h.repo, testWashTypes, h.dispatch, h.settings).
		Execute(context.Background(), UpdateAppointmentInput{ID: other.ID, Candidate: candidateAt("2025-03-10", "10:00")})
	if err != nil {
		t.Fatalf("a cancelled appointment holds no slot: %v", err)
	}
	if updated.Time != "10:00" || updated.Status != string(domain.StatusCancelled) {
		t.Fatalf("unexpected result %+v", updated)
	}

	day, _ := h.repo.ListAppointmentsForDay(context.Background(), updated.Date)
	if domain.CheckAvailability(updated.Date, "10:00", day) {
		t.Fatal("10:00 must still be held by the active appointment")
	}
}
