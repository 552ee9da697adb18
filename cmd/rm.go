package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmCmd struct {
	file string
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "toggle the soft-delete flag of cards" }
func (*rmCmd) Usage() string {
	return `tabi rm <id>...

  Soft-deletes the given cards, or restores them if they were already
  deleted. Deleted cards stay in storage and keep their day in the day
  selector, but disappear from every schedule and total.
`
}

func (p *rmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.file, "f", "", "Itinerary file to use.")
}

func (p *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
		if err := planner.ToggleDeleted(id); err != nil {
			fmt.Fprintln(os.Stderr, err)
			status = subcommands.ExitFailure
			continue
		}
		card := planner.Itinerary().Card(id)
		if card.IsDeleted {
			fmt.Printf("Deleted %q\n", card.Title)
		} else {
			fmt.Printf("Restored %q\n", card.Title)
		}
	}
	return status
}
