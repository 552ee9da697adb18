// Package redisstore persists the itinerary in Redis as a single serialized
// value under one fixed key.
package redisstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/tkumagai/tabiplan"
)

// Key is the fixed key the whole collection lives under.
const Key = "itinerary/v2"

// Store is a Redis-backed tabiplan.Storage.
type Store struct {
	client *redis.Client
	key    string
}

// New connects to the Redis instance at addr (host:port).
func New(addr string) *Store {
	return &Store{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		key:    Key,
	}
}

// Load reads the itinerary blob. A missing key falls back to the seed trip;
// a malformed blob is a load error.
func (s *Store) Load() (*tabiplan.Itinerary, error) {
	val, err := s.client.Get(context.Background(), s.key).Result()
	if errors.Is(err, redis.Nil) {
		log.Printf("no itinerary under %q, starting from the seed trip", s.key)
		return tabiplan.Seed(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read itinerary key %q: %w", s.key, err)
	}
	it, err := tabiplan.DecodeItinerary(strings.NewReader(val))
	if err != nil {
		return nil, fmt.Errorf("could not decode itinerary key %q: %w", s.key, err)
	}
	return it, nil
}

// Save serializes the full collection and writes it back under the same key.
func (s *Store) Save(it *tabiplan.Itinerary) error {
	var buf bytes.Buffer
	if err := tabiplan.EncodeItinerary(&buf, it); err != nil {
		return err
	}
	if err := s.client.Set(context.Background(), s.key, buf.Bytes(), 0).Err(); err != nil {
		return fmt.Errorf("could not write itinerary key %q: %w", s.key, err)
	}
	return nil
}
