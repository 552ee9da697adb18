package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/tkumagai/tabiplan"
	"github.com/tkumagai/tabiplan/gemini"
)

type addCmd struct {
	day      int
	time     string
	category string
	noEnrich bool
	file     string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a new entry to the itinerary" }
func (*addCmd) Usage() string {
	return `tabi add [-d <day>] [-t <HH:MM>] [-c <category>] [-no-enrich] <title>

  Adds a card to the given day. Unless -no-enrich is set, Gemini supplies a
  subtitle, a description, a map keyword and a budget estimate; when the
  enrichment is unavailable the card is created without it.

Usage Examples:
$ tabi add -d 2 -t 10:00 -c activity 熱田神宮
`
}

func (p *addCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.day, "d", 1, "Trip day for the new entry (0 for pre-trip).")
	f.StringVar(&p.time, "t", "09:00", "Departure time, 24-hour HH:MM.")
	f.StringVar(&p.category, "c", "activity", "Category (hub, transport, activity, food, logistics, scouting).")
	f.BoolVar(&p.noEnrich, "no-enrich", false, "Skip the Gemini enrichment call.")
	f.StringVar(&p.file, "f", "", "Itinerary file to use.")
}

func (p *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	title := strings.TrimSpace(strings.Join(f.Args(), " "))
	if title == "" {
		fmt.Fprintln(os.Stderr, "Error: a title is required.")
		return subcommands.ExitUsageError
	}
	category, err := tabiplan.ParseCategory(p.category)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	var enricher tabiplan.Enricher
	if !p.noEnrich {
		svc, err := gemini.New(ctx)
		if err != nil {
			fmt.Fprintln(os.Stderr, "warning, enrichment disabled:", err)
		} else {
			enricher = svc
		}
	}

	planner, err := openPlanner(p.file, enricher)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	id, err := planner.AddCard(ctx, tabiplan.NewCard{
		Title:    title,
		Day:      p.day,
		Time:     p.time,
		Category: category,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	card := planner.Itinerary().Card(id)
	fmt.Printf("Added %q to day %d as %s\n", card.Title, card.Day, id)
	if card.SubTitle != "" {
		fmt.Println(" ", card.SubTitle)
	}
	if len(card.Expenses) > 0 {
		fmt.Printf("  %s %s\n", card.Expenses[0].Item, tabiplan.M(card.Expenses[0].Amount, planner.Itinerary().Currency()))
	}
	return subcommands.ExitSuccess
}
