package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"

	"github.com/tkumagai/tabiplan/cmd"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	sub := make(map[string]*complete.Command)
	for _, c := range cmd.Commands {
		commander.Register(c, "")
		sub[c.Name()] = &complete.Command{}
	}
	// Shell completion; a no-op outside a completion invocation.
	(&complete.Command{Sub: sub}).Complete("tabi")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
