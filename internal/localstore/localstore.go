// Package localstore persists small slices of client state in a local
// Pebble database. Entries are JSON values under stable string keys and
// survive process restarts; corrupt or missing entries degrade to a
// default instead of failing.
package localstore

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"
)

// KeyFavoritePostIDs names the persisted favorite set.
const KeyFavoritePostIDs = "favoritePostIds"

// Store wraps a Pebble database handle.
type Store struct {
	db *pebble.DB
}

// Open opens (or creates) the database at path.
func Open(path string) (*Store, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("open local store: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// GetInts reads an integer slice stored under key. A missing or corrupt
// entry yields nil rather than an error.
func (s *Store) GetInts(key string) []int {
	if s == nil || s.db == nil {
		return nil
	}
	value, closer, err := s.db.Get([]byte(key))
	if err != nil {
		if !errors.Is(err, pebble.ErrNotFound) {
			// Unreadable entry degrades to the default.
			return nil
		}
		return nil
	}
	defer func() { _ = closer.Close() }()

	var ids []int
	if err := json.Unmarshal(value, &ids); err != nil {
		return nil
	}
	return ids
}

// SetInts stores an integer slice under key. The write is synced, so a
// following GetInts in the same process observes it.
func (s *Store) SetInts(key string, ids []int) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("local store not opened")
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.db.Set([]byte(key), data, pebble.Sync); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
