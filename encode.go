package tabiplan

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// FormatV1 identifies the versioned persisted layout. A stream whose first
// line carries this format is read as header + cards; a stream whose first
// line is a card is read as the legacy unversioned layout (cards only).
const FormatV1 = "itinerary/1"

// header is the first JSONL line of the versioned layout, carrying trip
// metadata next to the card stream.
type header struct {
	Format   string `json:"format"`
	Title    string `json:"title,omitempty"`
	Start    Date   `json:"start,omitempty"`
	Currency string `json:"currency,omitempty"`
}

func (h header) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("format", h.Format)
	w.Optional("title", h.Title)
	if !h.Start.IsZero() {
		w.Append("start", h.Start)
	}
	w.Optional("currency", h.Currency)
	return w.MarshalJSON()
}

// DecodeItinerary reads an itinerary from a stream of JSONL data: an optional
// header line followed by one card per line. Malformed lines and duplicate
// card ids are decode errors; they are never silently dropped.
func DecodeItinerary(r io.Reader) (*Itinerary, error) {
	it := NewItinerary("", Date{}, "")
	seen := make(map[string]struct{})
	scanner := bufio.NewScanner(r)

	first := true
	line := 0
	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		if first {
			first = false
			var probe struct {
				Format string `json:"format"`
			}
			if err := json.Unmarshal(lineBytes, &probe); err != nil {
				return nil, fmt.Errorf("could not parse line %d %q: %w", line, string(lineBytes), err)
			}
			if probe.Format != "" {
				if probe.Format != FormatV1 {
					return nil, fmt.Errorf("unsupported itinerary format %q", probe.Format)
				}
				var h header
				if err := json.Unmarshal(lineBytes, &h); err != nil {
					return nil, fmt.Errorf("could not parse itinerary header: %w", err)
				}
				it.title = h.Title
				it.start = h.Start
				if h.Currency != "" {
					it.currency = h.Currency
				}
				continue
			}
			// No header: legacy layout, the first line is already a card.
		}

		var card TravelCard
		if err := json.Unmarshal(lineBytes, &card); err != nil {
			return nil, fmt.Errorf("could not parse card on line %d %q: %w", line, string(lineBytes), err)
		}
		if card.ID == "" {
			return nil, fmt.Errorf("card on line %d has no id", line)
		}
		if _, dup := seen[card.ID]; dup {
			return nil, fmt.Errorf("duplicate card id %q on line %d", card.ID, line)
		}
		seen[card.ID] = struct{}{}
		it.Append(card)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return it, nil
}

// EncodeCard marshals a single card to JSON and writes it to the writer,
// followed by a newline, in JSONL format.
func EncodeCard(w io.Writer, card TravelCard) error {
	decimal.MarshalJSONWithoutQuotes = true
	data, err := json.Marshal(card)
	if err != nil {
		return fmt.Errorf("failed to marshal card %q: %w", card.ID, err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write card %q: %w", card.ID, err)
	}
	return nil
}

// EncodeItinerary persists the whole collection to an io.Writer in JSONL
// format: a versioned header line, then one card per line in insertion order.
// JSON keys within each line are emitted in canonical order.
func EncodeItinerary(w io.Writer, it *Itinerary) error {
	decimal.MarshalJSONWithoutQuotes = true

	h := header{Format: FormatV1, Title: it.title, Start: it.start, Currency: it.currency}
	data, err := json.Marshal(h)
	if err != nil {
		return fmt.Errorf("failed to marshal itinerary header: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write itinerary header: %w", err)
	}

	for _, card := range it.cards {
		if err := EncodeCard(w, card); err != nil {
			return err
		}
	}
	return nil
}
