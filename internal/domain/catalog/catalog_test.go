package catalog

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/carwash-scheduler/internal/httperr"
	"github.com/BruksfildServices01/carwash-scheduler/internal/models"
)

func TestCheckFields(t *testing.T) {
	if err := CheckFields("Exterior", decimal.RequireFromString("9.90"), 20); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !httperr.IsBusiness(CheckFields(" ", decimal.Zero, 0), "invalid_name") {
		t.Fatal("expected invalid_name")
	}
	if !httperr.IsBusiness(CheckFields("x", decimal.RequireFromString("-1"), 0), "invalid_price") {
		t.Fatal("expected invalid_price")
	}
	if !httperr.IsBusiness(CheckFields("x", decimal.Zero, -5), "invalid_duration") {
		t.Fatal("expected invalid_duration")
	}
}

func TestActive(t *testing.T) {
	items := []models.WashType{{ID: 1, Active: true}, {ID: 2}, {ID: 3, Active: true}}

	got := Active(items)
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("unexpected active list %+v", got)
	}
}
