// Package cmd implements the CLI application to manage a trip itinerary.
package cmd

import (
	"fmt"
	"log"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/tkumagai/tabiplan"
	"github.com/tkumagai/tabiplan/redisstore"
)

// Commands lists every subcommand. A main package registers them on a
// commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&dayCmd{},
	&daysCmd{},
	&addCmd{},
	&rmCmd{},
	&expenseCmd{},
	&budgetCmd{},
	&mapCmd{},
	&fmtCmd{},
	&initCmd{},
	&serveCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

// Settings are the environment-driven defaults; per-command flags override
// the itinerary file.
type Settings struct {
	File      string  `envconfig:"TABI_FILE" default:"itinerary.jsonl"`
	RedisAddr string  `envconfig:"TABI_REDIS"`
	Latitude  float64 `envconfig:"TABI_LAT" default:"35.1815"`  // Nagoya
	Longitude float64 `envconfig:"TABI_LON" default:"136.9066"` // Nagoya
}

var (
	settings     Settings
	settingsOnce sync.Once
)

// Env returns the process settings, loading .env and the environment once.
func Env() Settings {
	settingsOnce.Do(func() {
		_ = godotenv.Load()
		if err := envconfig.Process("", &settings); err != nil {
			log.Printf("warning, could not read environment settings: %v", err)
		}
	})
	return settings
}

// openStorage picks the storage backend: Redis when TABI_REDIS is set,
// otherwise the itinerary file. An empty file argument falls back to the
// environment default.
func openStorage(file string) tabiplan.Storage {
	if addr := Env().RedisAddr; addr != "" {
		return redisstore.New(addr)
	}
	if file == "" {
		file = Env().File
	}
	return tabiplan.NewFileStore(file)
}

// openPlanner loads the itinerary behind the selected storage backend.
func openPlanner(file string, enricher tabiplan.Enricher) (*tabiplan.Planner, error) {
	return tabiplan.NewPlanner(openStorage(file), enricher)
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// source when the terminal renderer is unavailable.
func printMarkdown(source string) {
	out, err := glamour.Render(source, "auto")
	if err != nil {
		fmt.Print(source)
		return
	}
	fmt.Print(out)
}
