package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/subcommands"

	"github.com/tkumagai/tabiplan"
	"github.com/tkumagai/tabiplan/renderer"
)

type dayCmd struct {
	day       int
	file      string
	noWeather bool
}

func (*dayCmd) Name() string     { return "day" }
func (*dayCmd) Synopsis() string { return "show one day's schedule, accommodation and budget" }
func (*dayCmd) Usage() string {
	return `tabi day [-d <day>] [-no-weather] [-f <file>]

  Shows the day's active cards in time order, the day's accommodation,
  the expense total, and (for trip days) the weather forecast.
  Day 0 is the pre-trip bucket.
`
}

func (p *dayCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.day, "d", 1, "Trip day to show (0 for pre-trip).")
	f.BoolVar(&p.noWeather, "no-weather", false, "Skip the weather forecast.")
	f.StringVar(&p.file, "f", "", "Itinerary file to use.")
}

func (p *dayCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.day < 0 {
		fmt.Fprintln(os.Stderr, "Error: day must not be negative.")
		return subcommands.ExitUsageError
	}
	planner, err := openPlanner(p.file, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	it := planner.Itinerary()

	var fc *tabiplan.Forecast
	if !p.noWeather && p.day > 0 {
		env := Env()
		fc, err = tabiplan.DailyForecast(tabiplan.Daily(), env.Latitude, env.Longitude, it.DayDate(p.day))
		if err != nil {
			// The view renders without the widget.
			log.Printf("forecast unavailable: %v", err)
			fc = nil
		}
	}

	printMarkdown(renderer.Day(it, p.day, fc))
	return subcommands.ExitSuccess
}
