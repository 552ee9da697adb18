package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/tkumagai/tabiplan/renderer"
)

type budgetCmd struct {
	day  int
	file string
}

func (*budgetCmd) Name() string     { return "budget" }
func (*budgetCmd) Synopsis() string { return "break down a day's expenses" }
func (*budgetCmd) Usage() string {
	return `tabi budget [-d <day>] [-f <file>]

  Lists every expense of the day's active cards and the exact total.
  Soft-deleted cards are excluded.
`
}

func (p *budgetCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.day, "d", 1, "Trip day to break down (0 for pre-trip).")
	f.StringVar(&p.file, "f", "", "Itinerary file to use.")
}

func (p *budgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.day < 0 {
		fmt.Fprintln(os.Stderr, "Error: day must not be negative.")
		return subcommands.ExitUsageError
	}
	planner, err := openPlanner(p.file, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Budget(planner.Itinerary(), p.day))
	return subcommands.ExitSuccess
}
