package tabiplan

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// FileStore persists the itinerary as a single JSONL file. A missing file
// falls back to the seed trip; a malformed file is a load error, never a
// silent reset.
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed store for the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the itinerary file. When the file does not exist yet, the fixed
// seed itinerary is returned instead; it is not persisted until the first
// save.
func (s *FileStore) Load() (*Itinerary, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("no itinerary at %q, starting from the seed trip", s.path)
		return Seed(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open itinerary file %q: %w", s.path, err)
	}
	defer f.Close()

	it, err := DecodeItinerary(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode itinerary file %q: %w", s.path, err)
	}
	return it, nil
}

// Save writes the whole collection back to the file in canonical form.
func (s *FileStore) Save(it *Itinerary) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create directory for %q: %w", s.path, err)
		}
	}
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("error opening itinerary file %q for writing: %w", s.path, err)
	}
	defer f.Close()

	return EncodeItinerary(f, it)
}
