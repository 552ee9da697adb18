package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/tkumagai/tabiplan"
)

type expenseCmd struct {
	file string
}

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "record an expense on a card" }
func (*expenseCmd) Usage() string {
	return `tabi expense <card-id> <item> <amount>

  Appends an expense to a card. The amount is in the trip's currency major
  unit and must not be negative.

Usage Examples:
$ tabi expense seed-007 午餐 1200
`
}

func (p *expenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.file, "f", "", "Itinerary file to use.")
}

func (p *expenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 3 {
		fmt.Fprintln(os.Stderr, "Error: expected <card-id> <item> <amount>.")
		return subcommands.ExitUsageError
	}
	id, item := f.Arg(0), f.Arg(1)
	amount, err := decimal.NewFromString(f.Arg(2))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid amount %q: %v\n", f.Arg(2), err)
		return subcommands.ExitUsageError
	}

	planner, err := openPlanner(p.file, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := planner.AddExpense(id, item, amount); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	card := planner.Itinerary().Card(id)
	fmt.Printf("Recorded %s %s on %q (day %d total %s)\n",
		item, tabiplan.M(amount, planner.Itinerary().Currency()), card.Title, card.Day,
		planner.Itinerary().DayTotal(card.Day))
	return subcommands.ExitSuccess
}
