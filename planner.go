package tabiplan

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Enrichment is the optional supplementary record an Enricher produces for a
// new card. Absent fields stay empty; a positive SuggestedBudget seeds the
// card with one estimate expense.
type Enrichment struct {
	SubTitle        string          `json:"subTitle"`
	Description     string          `json:"description"`
	LocationKeyword string          `json:"locationKeyword"`
	SuggestedBudget decimal.Decimal `json:"suggestedBudget"`
}

// Enricher produces supplementary descriptive fields and a suggested budget
// for a new itinerary entry. Returning (nil, nil) signals "no data"; any
// error is treated the same way by the planner.
type Enricher interface {
	Enrich(ctx context.Context, title string, category Category) (*Enrichment, error)
}

// Storage is the persistence port: the whole collection is the unit of
// persistence, stored as one serialized value under one fixed location.
type Storage interface {
	Load() (*Itinerary, error)
	Save(*Itinerary) error
}

// estimateItem labels the expense entry seeded from a suggested budget.
const estimateItem = "預估支出"

// defaultEnrichTimeout bounds how long an add may wait for enrichment.
const defaultEnrichTimeout = 30 * time.Second

// NewCard is a request to add a card to the itinerary.
type NewCard struct {
	Title    string   `json:"title"`
	Day      int      `json:"day"`
	Time     string   `json:"time"`
	Category Category `json:"category"`
}

// Validate rejects a request before it can reach the store.
func (n NewCard) Validate() error {
	if n.Title == "" {
		return fmt.Errorf("title is required")
	}
	if n.Day < 0 {
		return fmt.Errorf("day must not be negative, got %d", n.Day)
	}
	if !ValidTime(n.Time) {
		return fmt.Errorf("time %q is not a valid HH:MM time", n.Time)
	}
	if _, err := ParseCategory(string(n.Category)); err != nil {
		return err
	}
	return nil
}

// Planner owns the mutable itinerary and its two collaborator ports. Every
// mutation writes the full collection back through the storage port.
//
// Reads go through Itinerary(); there is exactly one writer context, so no
// locking is needed at this level.
type Planner struct {
	it       *Itinerary
	storage  Storage
	enricher Enricher
	timeout  time.Duration
}

// NewPlanner loads the itinerary through the storage port and persists the
// initial population, so a first run materializes the seed trip on disk.
// The enricher may be nil; cards are then created unenriched.
func NewPlanner(storage Storage, enricher Enricher) (*Planner, error) {
	it, err := storage.Load()
	if err != nil {
		return nil, fmt.Errorf("could not load itinerary: %w", err)
	}
	p := &Planner{it: it, storage: storage, enricher: enricher, timeout: defaultEnrichTimeout}
	if err := p.save(); err != nil {
		return nil, err
	}
	return p, nil
}

// Itinerary returns the canonical collection for reads and projections.
func (p *Planner) Itinerary() *Itinerary { return p.it }

// AddCard validates the request, asks the enricher for supplementary data,
// then appends a fully formed card and persists.
//
// The operation is two-phase on purpose: phase 1 awaits enrichment without
// touching the collection, phase 2 appends the complete card synchronously.
// Any enrichment failure, timeout, or malformed response collapses to "no
// data" at this boundary; the card is still created with empty optional
// fields and the add never fails because of the enricher.
func (p *Planner) AddCard(ctx context.Context, n NewCard) (string, error) {
	if err := n.Validate(); err != nil {
		return "", fmt.Errorf("invalid card: %w", err)
	}

	// Phase 1: enrich. No store mutation happens before this completes.
	var enr *Enrichment
	if p.enricher != nil {
		ectx, cancel := context.WithTimeout(ctx, p.timeout)
		var err error
		enr, err = p.enricher.Enrich(ectx, n.Title, n.Category)
		cancel()
		if err != nil {
			log.Printf("enrichment unavailable for %q: %v", n.Title, err)
			enr = nil
		}
	}

	// Phase 2: build and append the complete card in one synchronous step.
	card := TravelCard{
		ID:              uuid.NewString(),
		Day:             n.Day,
		Time:            n.Time,
		Title:           n.Title,
		Category:        n.Category,
		LocationKeyword: n.Title,
		Expenses:        []Expense{},
		Notes:           []string{},
	}
	if enr != nil {
		card.SubTitle = enr.SubTitle
		card.Description = enr.Description
		if enr.LocationKeyword != "" {
			card.LocationKeyword = enr.LocationKeyword
		}
		if enr.SuggestedBudget.IsPositive() {
			card.Expenses = []Expense{{ID: uuid.NewString(), Item: estimateItem, Amount: enr.SuggestedBudget}}
		}
	}

	p.it.Append(card)
	if err := p.save(); err != nil {
		return "", err
	}
	return card.ID, nil
}

// ToggleDeleted flips the soft-delete flag of a card and persists.
func (p *Planner) ToggleDeleted(id string) error {
	if err := p.it.ToggleDeleted(id); err != nil {
		return err
	}
	return p.save()
}

// AddExpense records a cost item on a card and persists.
func (p *Planner) AddExpense(id, item string, amount decimal.Decimal) error {
	e := Expense{ID: uuid.NewString(), Item: item, Amount: amount}
	if err := p.it.AddExpense(id, e); err != nil {
		return err
	}
	return p.save()
}

func (p *Planner) save() error {
	if err := p.storage.Save(p.it); err != nil {
		return fmt.Errorf("could not save itinerary: %w", err)
	}
	return nil
}
