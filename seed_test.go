package tabiplan

import (
	"slices"
	"testing"
)

func TestSeedIsWellFormed(t *testing.T) {
	it := Seed()

	seen := make(map[string]bool)
	for _, c := range it.Cards() {
		if seen[c.ID] {
			t.Errorf("duplicate seed id %q", c.ID)
		}
		seen[c.ID] = true
		if err := c.Validate(); err != nil {
			t.Errorf("seed card %q is invalid: %v", c.ID, err)
		}
		if c.IsDeleted {
			t.Errorf("seed card %q starts soft-deleted", c.ID)
		}
	}

	expected := []int{0, 1, 2, 3, 4, 5}
	if got := it.Days(); !slices.Equal(got, expected) {
		t.Errorf("Days() = %v, want %v", got, expected)
	}
}

func TestSeedAccommodation(t *testing.T) {
	// Days 1 to 3 carry a lodging card, the last day does not.
	for _, day := range []int{1, 2, 3} {
		if _, ok := Seed().Accommodation(day); !ok {
			t.Errorf("Accommodation(%d) found no card", day)
		}
	}
	if _, ok := Seed().Accommodation(5); ok {
		t.Errorf("Accommodation(5) found a card, want none on the return day")
	}
}

func TestSeedFlights(t *testing.T) {
	it := Seed()

	out := it.Card("seed-003")
	if out == nil || !out.IsFlight() || out.FlightInfo.FlightNumber != "JX824" {
		t.Fatalf("outbound flight missing or malformed: %+v", out)
	}
	if got := out.Arrival(); got != "12:50" {
		t.Errorf("outbound Arrival() = %q, want 12:50", got)
	}

	back := it.Card("seed-015")
	if back == nil || !back.IsFlight() || back.FlightInfo.Destination != "TPE" {
		t.Fatalf("return flight missing or malformed: %+v", back)
	}
}

func TestSeedDayTotals(t *testing.T) {
	it := Seed()
	tests := []struct {
		day      int
		expected Money
	}{
		{1, M(10850, "JPY")}, // 8200 + 1250 + 1400
		{2, M(4300, "JPY")},  // 500 + 3800
		{3, M(34140, "JPY")}, // 6140 + 28000
		{4, M(4600, "JPY")},
		{5, M(0, "JPY")},
	}
	for _, tt := range tests {
		if got := it.DayTotal(tt.day); !got.Equal(tt.expected) {
			t.Errorf("DayTotal(%d) = %s, want %s", tt.day, got, tt.expected)
		}
	}
}
