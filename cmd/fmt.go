package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct {
	file string
}

func (*fmtCmd) Name() string     { return "fmt" }
func (*fmtCmd) Synopsis() string { return "rewrite the itinerary in canonical form" }
func (*fmtCmd) Usage() string {
	return `tabi fmt [-f <file>]

  Loads the itinerary and writes it back in canonical form: a header line
  followed by one card per line, keys in fixed order. Files written before
  the header was introduced are migrated in place.
`
}

func (p *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.file, "f", "", "Itinerary file to use.")
}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	storage := openStorage(p.file)
	it, err := storage.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := storage.Save(it); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Formatted %q: %d cards\n", it.Title(), it.Len())
	return subcommands.ExitSuccess
}
