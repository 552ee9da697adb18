package tabiplan

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreMissingFileFallsBackToSeed(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "itinerary.jsonl"))
	it, err := store.Load()
	if err != nil {
		t.Fatalf("Load() on a missing file returned an error: %v", err)
	}
	if it.Title() != Seed().Title() || it.Len() != Seed().Len() {
		t.Errorf("Load() on a missing file = %q with %d cards, want the seed trip", it.Title(), it.Len())
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trips", "itinerary.jsonl")
	store := NewFileStore(path)

	if err := store.Save(Seed()); err != nil {
		t.Fatalf("Save() returned an unexpected error: %v", err)
	}

	it, err := store.Load()
	if err != nil {
		t.Fatalf("Load() returned an unexpected error: %v", err)
	}
	if it.Title() != "2025 名古屋高山之旅" || it.Len() != Seed().Len() {
		t.Errorf("round-trip = %q with %d cards, want the seed trip intact", it.Title(), it.Len())
	}
	if got := it.DayTotal(1); !got.Equal(Seed().DayTotal(1)) {
		t.Errorf("round-trip changed day 1 total: %s", got)
	}
}

func TestFileStoreCorruptFileIsAnError(t *testing.T) {
	// A malformed file must surface as an error, never silently reset to the seed.
	path := filepath.Join(t.TempDir(), "itinerary.jsonl")
	if err := os.WriteFile(path, []byte("{broken\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFileStore(path).Load(); err == nil {
		t.Errorf("Load() accepted a corrupt file")
	}
}
