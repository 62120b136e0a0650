package appointment

import (
	"testing"
	"time"

	"github.com/BruksfildServices01/carwash-scheduler/internal/models"
)

func TestMonthGrid_AlwaysSixWeeks(t *testing.T) {
	for year := 2024; year <= 2026; year++ {
		for m := time.January; m <= time.December; m++ {
			for _, ws := range []time.Weekday{time.Monday, time.Sunday} {
				cells := MonthGrid(year, m, ws)
				if len(cells) != 42 {
					t.Fatalf("%d-%02d: expected 42 cells, got %d", year, m, len(cells))
				}

				offset := FirstDayOffset(year, m, ws)
				first := cells[offset]
				if !first.InMonth || first.Date.Day() != 1 {
					t.Fatalf("%d-%02d: cell %d should be the 1st, got %+v", year, m, offset, first)
				}
				if cells[0].Date.Weekday() != ws {
					t.Fatalf("%d-%02d: grid should start on %s", year, m, ws)
				}
			}
		}
	}
}

func TestMonthGrid_March2025(t *testing.T) {
	// 1 March 2025 is a Saturday.
	cells := MonthGrid(2025, time.March, time.Monday)

	if FirstDayOffset(2025, time.March, time.Monday) != 5 {
		t.Fatalf("expected offset 5")
	}
	if FormatDate(cells[0].Date) != "2025-02-24" || cells[0].InMonth {
		t.Fatalf("unexpected first cell %+v", cells[0])
	}

	inMonth := 0
	for _, c := range cells {
		if c.InMonth {
			inMonth++
		}
	}
	if inMonth != 31 {
		t.Fatalf("expected 31 days of March, got %d", inMonth)
	}

	last := cells[41]
	if FormatDate(last.Date) != "2025-04-06" || last.InMonth {
		t.Fatalf("unexpected last cell %+v", last)
	}
}

func TestGroupByDay_FiltersAndSorts(t *testing.T) {
	aps := []models.Appointment{
		{ID: 1, Date: day("2025-03-10"), Time: "11:00", Status: "pending"},
		{ID: 2, Date: day("2025-03-10"), Time: "09:30", Status: "cancelled"},
		{ID: 3, Date: day("2025-03-10"), Time: "09:30", Status: "confirmed"},
		{ID: 4, Date: day("2025-04-10"), Time: "10:00", Status: "pending"},
		{ID: 5, Date: day("2025-03-31"), Time: "18:30", Status: "pending"},
	}

	days := GroupByDay(aps, 2025, time.March)

	if len(days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(days))
	}

	tenth := days[10]
	if len(tenth) != 3 {
		t.Fatalf("expected 3 appointments on the 10th, got %d", len(tenth))
	}
	gotIDs := []uint{tenth[0].ID, tenth[1].ID, tenth[2].ID}
	wantIDs := []uint{2, 3, 1}
	for i := range wantIDs {
		if gotIDs[i] != wantIDs[i] {
			t.Fatalf("expected order %v, got %v", wantIDs, gotIDs)
		}
	}

	if len(days[31]) != 1 || days[31][0].ID != 5 {
		t.Fatalf("unexpected 31st bucket %+v", days[31])
	}
	if _, ok := days[4]; ok {
		t.Fatal("April appointment leaked into March")
	}
}

func TestGroupByDay_DoesNotReorderInput(t *testing.T) {
	aps := []models.Appointment{
		{ID: 1, Date: day("2025-03-10"), Time: "11:00"},
		{ID: 2, Date: day("2025-03-10"), Time: "09:00"},
	}

	GroupByDay(aps, 2025, time.March)

	if aps[0].ID != 1 {
		t.Fatal("input slice should be left untouched")
	}
}
