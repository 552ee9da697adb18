package tabiplan

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestEncodeDecodeItinerary(t *testing.T) {
	it := NewItinerary("2025 名古屋高山之旅", NewDate(2025, time.January, 17), "JPY")
	it.Append(
		TravelCard{ID: "c1", Day: 1, Time: "09:20", Title: "台北 → 名古屋", Category: Hub,
			FlightInfo: &FlightInfo{FlightNumber: "JX824", Origin: "TPE", Destination: "NGO", ArrivalTime: "12:50"},
			Expenses:   []Expense{{ID: "e1", Item: "機票", Amount: decimal.NewFromInt(8200)}}},
		TravelCard{ID: "c2", Day: 1, Time: "15:30", Title: "王子大飯店", Category: Logistics, IsDeleted: true},
	)

	var buf bytes.Buffer
	if err := EncodeItinerary(&buf, it); err != nil {
		t.Fatalf("EncodeItinerary() returned an unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("EncodeItinerary() wrote %d lines, want header + 2 cards", len(lines))
	}
	expectedHeader := `{"format":"itinerary/1","title":"2025 名古屋高山之旅","start":"2025-01-17","currency":"JPY"}`
	if lines[0] != expectedHeader {
		t.Errorf("header line\n Got: %s\nwant: %s", lines[0], expectedHeader)
	}

	got, err := DecodeItinerary(&buf)
	if err != nil {
		t.Fatalf("DecodeItinerary() returned an unexpected error: %v", err)
	}
	if got.Title() != it.Title() || got.Currency() != it.Currency() || got.Start() != it.Start() {
		t.Errorf("round-trip lost trip metadata: %q %q %s", got.Title(), got.Currency(), got.Start())
	}
	if got.Len() != 2 {
		t.Fatalf("round-trip decoded %d cards, want 2", got.Len())
	}

	c1 := got.Card("c1")
	if c1 == nil || !c1.IsFlight() || c1.FlightInfo.FlightNumber != "JX824" {
		t.Errorf("round-trip lost the flight payload: %+v", c1)
	}
	if !c1.Total().Equal(decimal.NewFromInt(8200)) {
		t.Errorf("round-trip changed the expense total: %s", c1.Total())
	}
	if c2 := got.Card("c2"); c2 == nil || !c2.IsDeleted {
		t.Errorf("round-trip lost the soft-delete flag: %+v", c2)
	}
}

func TestDecodeLegacyLayout(t *testing.T) {
	// Files written before the header was introduced start directly with a card.
	jsonl := `
{"id":"c1","day":1,"time":"09:00","title":"名古屋城","category":"activity","isDeleted":false,"expenses":[],"notes":[]}

{"id":"c2","day":2,"time":"12:00","title":"鰻魚飯","category":"food","isDeleted":false,"expenses":[{"id":"e1","item":"午餐","amount":3800}],"notes":[]}
`
	it, err := DecodeItinerary(strings.NewReader(jsonl))
	if err != nil {
		t.Fatalf("DecodeItinerary() returned an unexpected error: %v", err)
	}
	if it.Len() != 2 {
		t.Fatalf("decoded %d cards, want 2 (empty lines skipped)", it.Len())
	}
	if it.Title() != "" {
		t.Errorf("legacy layout has no title, got %q", it.Title())
	}
	if got := it.DayTotal(2); !got.Equal(M(3800, "JPY")) {
		t.Errorf("DayTotal(2) = %s, want ¥3,800 (default currency applies)", got)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		jsonl string
	}{
		{"malformed line", `{"id":"c1","day":1,`},
		{"card without id", `{"day":1,"time":"09:00","title":"x","category":"food"}`},
		{"duplicate id", `{"id":"c1","day":1,"time":"09:00","title":"x","category":"food"}
{"id":"c1","day":2,"time":"10:00","title":"y","category":"food"}`},
		{"unsupported format", `{"format":"itinerary/9"}`},
		{"malformed card after header", `{"format":"itinerary/1","currency":"JPY"}
not json`},
	}
	for _, tt := range tests {
		if _, err := DecodeItinerary(strings.NewReader(tt.jsonl)); err == nil {
			t.Errorf("%s: DecodeItinerary() accepted corrupt input", tt.name)
		}
	}
}

func TestEncodeCardCanonicalOrder(t *testing.T) {
	var buf bytes.Buffer
	card := TravelCard{ID: "c1", Day: 1, Time: "09:00", Title: "x", SubTitle: "sub", Category: Food,
		LocationKeyword: "kw"}
	if err := EncodeCard(&buf, card); err != nil {
		t.Fatalf("EncodeCard() returned an unexpected error: %v", err)
	}
	expected := `{"id":"c1","day":1,"time":"09:00","title":"x","subTitle":"sub","category":"food","locationKeyword":"kw","isDeleted":false,"expenses":[],"notes":[]}` + "\n"
	if buf.String() != expected {
		t.Errorf("EncodeCard()\n Got: %s\nwant: %s", buf.String(), expected)
	}
}
