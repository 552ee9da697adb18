package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/tkumagai/tabiplan"
)

type initCmd struct {
	file  string
	force bool
}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "create an itinerary from the built-in trip" }
func (*initCmd) Usage() string {
	return `tabi init [-force] [-f <file>]

  Writes the built-in sample trip to storage. Refuses to overwrite an
  existing itinerary unless -force is set.
`
}

func (p *initCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.force, "force", false, "Overwrite an existing itinerary.")
	f.StringVar(&p.file, "f", "", "Itinerary file to use.")
}

func (p *initCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	file := p.file
	if file == "" {
		file = Env().File
	}
	if !p.force && Env().RedisAddr == "" {
		if _, err := os.Stat(file); err == nil {
			fmt.Fprintf(os.Stderr, "Error: %q already exists, use -force to overwrite.\n", file)
			return subcommands.ExitFailure
		}
	}
	it := tabiplan.Seed()
	if err := openStorage(p.file).Save(it); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Created %q: %d cards\n", it.Title(), it.Len())
	return subcommands.ExitSuccess
}
