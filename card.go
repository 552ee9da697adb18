package tabiplan

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Category classifies an itinerary entry. It drives filtering and styling,
// not rendering: a card renders as a flight when FlightInfo is present,
// whatever its category says.
type Category string

const (
	Hub       Category = "hub"
	Transport Category = "transport"
	Activity  Category = "activity"
	Food      Category = "food"
	Logistics Category = "logistics"
	Scouting  Category = "scouting"
)

// Categories lists all valid categories in display order.
var Categories = []Category{Hub, Transport, Activity, Food, Logistics, Scouting}

// ParseCategory parses a string into a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	switch c {
	case Hub, Transport, Activity, Food, Logistics, Scouting:
		return c, nil
	default:
		return "", fmt.Errorf("unknown category: %q", s)
	}
}

// Expense is a single cost item attached to a card. Amount is expressed in
// the trip's currency major unit.
type Expense struct {
	ID     string          `json:"id"`
	Item   string          `json:"item"`
	Amount decimal.Decimal `json:"amount"`
}

// FlightInfo is the optional flight payload of a card.
type FlightInfo struct {
	FlightNumber     string   `json:"flightNumber"`
	ConfirmationCode string   `json:"confirmationCode,omitempty"`
	Origin           string   `json:"origin"`
	Destination      string   `json:"destination"`
	ArrivalTime      string   `json:"arrivalTime,omitempty"`
	PassengerNames   []string `json:"passengerNames,omitempty"`
	Class            string   `json:"class,omitempty"`
	Duration         string   `json:"duration,omitempty"`
}

// TravelCard is one itinerary entry: a flight, an activity, a meal, or
// lodging, scoped to a trip day.
//
// Day 0 is the pre-trip bucket; positive days are trip days in chronological
// order. Time is a fixed-width "HH:MM" wall-clock string, which sorts
// lexicographically in chronological order within a day.
type TravelCard struct {
	ID              string      `json:"id"`
	Day             int         `json:"day"`
	Time            string      `json:"time"`
	EndTime         string      `json:"endTime,omitempty"`
	Title           string      `json:"title"`
	SubTitle        string      `json:"subTitle,omitempty"`
	Description     string      `json:"description,omitempty"`
	Category        Category    `json:"category"`
	LocationKeyword string      `json:"locationKeyword,omitempty"`
	IsDeleted       bool        `json:"isDeleted"`
	Expenses        []Expense   `json:"expenses"`
	Notes           []string    `json:"notes"`
	ImageURL        string      `json:"imageUrl,omitempty"`
	FlightInfo      *FlightInfo `json:"flightInfo,omitempty"`
}

// IsFlight reports whether the card renders as a flight. The presence of the
// flight payload decides, not the category.
func (c TravelCard) IsFlight() bool { return c.FlightInfo != nil }

// Arrival returns the best known arrival time for a flight card: the flight's
// own arrival time, falling back to the card's end time. Empty when neither
// is known.
func (c TravelCard) Arrival() string {
	if c.FlightInfo != nil && c.FlightInfo.ArrivalTime != "" {
		return c.FlightInfo.ArrivalTime
	}
	return c.EndTime
}

// Total sums the card's expenses.
func (c TravelCard) Total() decimal.Decimal {
	var sum decimal.Decimal
	for _, e := range c.Expenses {
		sum = sum.Add(e.Amount)
	}
	return sum
}

const mapSearchEndpoint = "https://www.google.com/maps/search/"

// MapURL builds a Google Maps search link for the card, percent-encoding the
// location keyword and falling back to the title when no keyword is set.
func (c TravelCard) MapURL() string {
	keyword := c.LocationKeyword
	if keyword == "" {
		keyword = c.Title
	}
	q := url.Values{}
	q.Set("api", "1")
	q.Set("query", keyword)
	return mapSearchEndpoint + "?" + q.Encode()
}

// lodgingMarkers are the title fragments that mark a logistics card as the
// day's accommodation.
var lodgingMarkers = []string{"飯店", "住宿", "Hotel", "Stay"}

// IsLodging reports whether the card is an accommodation card: it must be a
// logistics card AND its title must contain one of the lodging markers. The
// category restriction applies to every marker.
func IsLodging(c TravelCard) bool {
	if c.Category != Logistics {
		return false
	}
	for _, marker := range lodgingMarkers {
		if strings.Contains(c.Title, marker) {
			return true
		}
	}
	return false
}

// ValidTime reports whether s is a well-formed 24-hour "HH:MM" string.
func ValidTime(s string) bool {
	if len(s) != 5 {
		return false
	}
	_, err := time.Parse("15:04", s)
	return err == nil
}

// Validate checks a card for structural correctness.
func (c TravelCard) Validate() error {
	if c.ID == "" {
		return errors.New("card id is missing")
	}
	if c.Title == "" {
		return errors.New("card title is missing")
	}
	if c.Day < 0 {
		return fmt.Errorf("card day must not be negative, got %d", c.Day)
	}
	if !ValidTime(c.Time) {
		return fmt.Errorf("card time %q is not a valid HH:MM time", c.Time)
	}
	if _, err := ParseCategory(string(c.Category)); err != nil {
		return err
	}
	for _, e := range c.Expenses {
		if e.Amount.IsNegative() {
			return fmt.Errorf("expense %q has a negative amount %s", e.Item, e.Amount)
		}
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for TravelCard. Keys
// are emitted in a fixed order so the persisted form is canonical and
// diff-friendly.
func (c TravelCard) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", c.ID)
	w.Append("day", c.Day)
	w.Append("time", c.Time)
	w.Optional("endTime", c.EndTime)
	w.Append("title", c.Title)
	w.Optional("subTitle", c.SubTitle)
	w.Optional("description", c.Description)
	w.Append("category", c.Category)
	w.Optional("locationKeyword", c.LocationKeyword)
	w.Append("isDeleted", c.IsDeleted)
	expenses := c.Expenses
	if expenses == nil {
		expenses = []Expense{}
	}
	w.Append("expenses", expenses)
	notes := c.Notes
	if notes == nil {
		notes = []string{}
	}
	w.Append("notes", notes)
	w.Optional("imageUrl", c.ImageURL)
	if c.FlightInfo != nil {
		w.Append("flightInfo", c.FlightInfo)
	}
	return w.MarshalJSON()
}
