package tabiplan

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"2025-01-17", NewDate(2025, time.January, 17), false},
		{"2025-1-17", NewDate(2025, time.January, 17), false}, // permissive read
		{"17-01-2025", Date{}, true},
		{"not a date", Date{}, true},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.input)
		if (err != nil) != tt.err {
			t.Errorf("ParseDate(%q) error = %v, want error = %v", tt.input, err, tt.err)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseDate(%q) = %s, want %s", tt.input, got, tt.expected)
		}
	}
}

func TestDateAdd(t *testing.T) {
	start := NewDate(2025, time.January, 17)
	tests := []struct {
		days     int
		expected string
	}{
		{0, "2025-01-17"},
		{1, "2025-01-18"},
		{15, "2025-02-01"}, // month rollover
		{-17, "2024-12-31"},
	}
	for _, tt := range tests {
		if got := start.Add(tt.days).String(); got != tt.expected {
			t.Errorf("Add(%d) = %s, want %s", tt.days, got, tt.expected)
		}
	}
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2025, time.January, 17)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() returned an unexpected error: %v", err)
	}
	if string(data) != `"2025-01-17"` {
		t.Errorf("Marshal() = %s, want \"2025-01-17\"", data)
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() returned an unexpected error: %v", err)
	}
	if back != d {
		t.Errorf("round-trip = %s, want %s", back, d)
	}
}

func TestDateWeekday(t *testing.T) {
	// 2025-01-17 was a Friday.
	if got := NewDate(2025, time.January, 17).Weekday(); got != time.Friday {
		t.Errorf("Weekday() = %s, want Friday", got)
	}
}
