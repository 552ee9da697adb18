package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/tkumagai/tabiplan/renderer"
)

type daysCmd struct {
	file string
}

func (*daysCmd) Name() string     { return "days" }
func (*daysCmd) Synopsis() string { return "list the trip days" }
func (*daysCmd) Usage() string {
	return `tabi days [-f <file>]

  Lists every distinct day of the trip with its date, active card count and
  expense total. A day stays listed even when all its cards are soft-deleted.
`
}

func (p *daysCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.file, "f", "", "Itinerary file to use.")
}

func (p *daysCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	planner, err := openPlanner(p.file, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Days(planner.Itinerary()))
	return subcommands.ExitSuccess
}
