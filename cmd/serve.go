package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/google/subcommands"

	"github.com/tkumagai/tabiplan"
	"github.com/tkumagai/tabiplan/api"
	"github.com/tkumagai/tabiplan/gemini"
)

type serveCmd struct {
	addr     string
	file     string
	noEnrich bool
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the itinerary over HTTP" }
func (*serveCmd) Usage() string {
	return `tabi serve [-addr <addr>] [-no-enrich] [-f <file>]

  Serves the JSON API under /api/v1. Card creation goes through the same
  enrichment as "tabi add": when Gemini is unavailable cards are simply
  created without enrichment.
`
}

func (p *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.addr, "addr", ":8787", "Address to listen on.")
	f.BoolVar(&p.noEnrich, "no-enrich", false, "Skip the Gemini enrichment on card creation.")
	f.StringVar(&p.file, "f", "", "Itinerary file to use.")
}

func (p *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	log.Printf("serving %q on %s", planner.Itinerary().Title(), p.addr)
	if err := http.ListenAndServe(p.addr, api.NewServer(planner).Router()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
