package tabiplan

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"slices"
	"sort"

	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when an operation names a card id that is not in
// the itinerary.
var ErrNotFound = errors.New("card not found")

// Itinerary is the canonical collection of travel cards for one trip. It is
// the single source of truth every view derives from.
//
// Cards are appended, never removed; the only mutation to an existing card is
// the soft-delete flip and expense additions. Soft-deleted cards stay in the
// collection (and in storage) but are excluded from every per-day view.
type Itinerary struct {
	title    string
	start    Date // calendar date of day 1 minus one day; day 0 is pre-trip
	currency string
	cards    []TravelCard
}

// NewItinerary creates an empty itinerary with the given trip metadata.
func NewItinerary(title string, start Date, currency string) *Itinerary {
	if currency == "" {
		currency = "JPY"
	}
	return &Itinerary{
		title:    title,
		start:    start,
		currency: currency,
		cards:    make([]TravelCard, 0),
	}
}

func (it *Itinerary) Title() string    { return it.title }
func (it *Itinerary) Start() Date      { return it.start }
func (it *Itinerary) Currency() string { return it.currency }
func (it *Itinerary) Len() int         { return len(it.cards) }

// DayDate returns the calendar date of a trip day. Day 0 (pre-trip) maps to
// the start date itself.
func (it *Itinerary) DayDate(day int) Date {
	if day <= 0 {
		return it.start
	}
	return it.start.Add(day)
}

// Card returns the card with the given id, or nil if unknown. The returned
// pointer aliases the collection; callers must not hold it across mutations.
func (it *Itinerary) Card(id string) *TravelCard {
	for i := range it.cards {
		if it.cards[i].ID == id {
			return &it.cards[i]
		}
	}
	return nil
}

// Append appends cards to the itinerary, preserving insertion order. Within a
// day, insertion order is the tie-breaker for equal times.
func (it *Itinerary) Append(cards ...TravelCard) {
	it.cards = append(it.cards, cards...)
}

// ToggleDeleted flips the soft-delete flag of the card with the given id. No
// other field of any card is touched. Returns ErrNotFound for an unknown id.
func (it *Itinerary) ToggleDeleted(id string) error {
	card := it.Card(id)
	if card == nil {
		return fmt.Errorf("toggle %q: %w", id, ErrNotFound)
	}
	card.IsDeleted = !card.IsDeleted
	return nil
}

// AddExpense appends an expense to the card with the given id.
func (it *Itinerary) AddExpense(id string, e Expense) error {
	card := it.Card(id)
	if card == nil {
		return fmt.Errorf("expense on %q: %w", id, ErrNotFound)
	}
	if e.Amount.IsNegative() {
		return fmt.Errorf("expense %q has a negative amount %s", e.Item, e.Amount)
	}
	card.Expenses = append(card.Expenses, e)
	return nil
}

// Cards returns an iterator that yields each card in insertion order.
// Without filters every card is yielded; with filters a card is yielded when
// any filter accepts it.
func (it *Itinerary) Cards(filters ...func(TravelCard) bool) iter.Seq2[int, TravelCard] {
	return func(yield func(int, TravelCard) bool) {
		for i, c := range it.cards {
			accept := len(filters) == 0
			for _, filter := range filters {
				if filter(c) {
					accept = true
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, c) {
				return
			}
		}
	}
}

// AcceptAll accepts every card.
func AcceptAll(TravelCard) bool { return true }

// ByDay returns a predicate that accepts non-deleted cards of a given day.
func ByDay(day int) func(TravelCard) bool {
	return func(c TravelCard) bool { return !c.IsDeleted && c.Day == day }
}

// Days returns the distinct day numbers across ALL cards, soft-deleted ones
// included, sorted ascending. A day stays in the selector even when every
// card on it has been soft-deleted.
func (it *Itinerary) Days() []int {
	set := make(map[int]struct{})
	for _, c := range it.cards {
		set[c.Day] = struct{}{}
	}
	days := slices.Collect(maps.Keys(set))
	slices.Sort(days)
	return days
}

// ActiveCards returns the non-deleted cards of a day, sorted by time. The
// sort is stable and compares the fixed-width "HH:MM" strings
// lexicographically, which is chronological order within a day; cards with
// equal times keep their insertion order.
func (it *Itinerary) ActiveCards(day int) []TravelCard {
	var active []TravelCard
	for _, c := range it.cards {
		if !c.IsDeleted && c.Day == day {
			active = append(active, c)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].Time < active[j].Time
	})
	return active
}

// Accommodation returns the day's accommodation card: the first active card,
// in time order, satisfying IsLodging. At most one card is surfaced even if
// several qualify.
func (it *Itinerary) Accommodation(day int) (TravelCard, bool) {
	for _, c := range it.ActiveCards(day) {
		if IsLodging(c) {
			return c, true
		}
	}
	return TravelCard{}, false
}

// DayTotal sums the expenses of all active cards of a day. Soft-deleted cards
// never contribute. The result is exact: amounts are decimals, not floats.
func (it *Itinerary) DayTotal(day int) Money {
	var sum decimal.Decimal
	for _, c := range it.ActiveCards(day) {
		sum = sum.Add(c.Total())
	}
	return M(sum, it.currency)
}
