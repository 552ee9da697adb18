package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type mapCmd struct {
	file string
}

func (*mapCmd) Name() string     { return "map" }
func (*mapCmd) Synopsis() string { return "print the Google Maps link of a card" }
func (*mapCmd) Usage() string {
	return `tabi map <id>...

  Prints the Google Maps search link for each card, built from the card's
  location keyword (or its title when no keyword is set).
`
}

func (p *mapCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.file, "f", "", "Itinerary file to use.")
}

func (p *mapCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one card id is required.")
		return subcommands.ExitUsageError
	}
	planner, err := openPlanner(p.file, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	status := subcommands.ExitSuccess
	for _, id := range f.Args() {
		card := planner.Itinerary().Card(id)
		if card == nil {
			fmt.Fprintf(os.Stderr, "Error: no card %q\n", id)
			status = subcommands.ExitFailure
			continue
		}
		fmt.Println(card.MapURL())
	}
	return status
}
