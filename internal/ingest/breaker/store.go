package breaker

import (
	"encoding/json"
	"fmt"
	"time"

	badger "github.com/dgraph-io/badger/v4"
)

const keyPrefix = "breaker:state:"

// persisted is the on-disk snapshot of a Breaker's state, keyed by source
// name. Stored so an orchestrator restart doesn't forget a tripped
// breaker and hammer a source that just failed it.
type persisted struct {
	State            State     `json:"state"`
	ConsecutiveFails int       `json:"consecutive_fails"`
	OpenedAt         time.Time `json:"opened_at"`
}

// Store persists Breaker state to BadgerDB, the same key-prefixed-value
// pattern services/trace/graph/snapshot.go uses for snapshot metadata.
type Store struct {
	db *badger.DB
}

// NewStore wraps an already-open Badger handle; callers own its lifecycle.
func NewStore(db *badger.DB) *Store {
	return &Store{db: db}
}

// Save persists b's current state under source.
func (s *Store) Save(source string, b *Breaker) error {
	b.mu.Lock()
	snap := persisted{
		State:            b.state,
		ConsecutiveFails: b.consecutiveFails,
		OpenedAt:         b.openedAt,
	}
	b.mu.Unlock()

	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("breaker: marshal state for %s: %w", source, err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPrefix+source), data)
	})
	if err != nil {
		return fmt.Errorf("breaker: persist state for %s: %w", source, err)
	}
	return nil
}

// Restore loads previously persisted state into b, if any exists for
// source. A missing key is not an error: a new adapter simply starts
// closed.
func (s *Store) Restore(source string, b *Breaker) error {
	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefix + source))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(v []byte) error {
			data = append([]byte{}, v...)
			return nil
		})
	})
	if err != nil {
		return fmt.Errorf("breaker: restore state for %s: %w", source, err)
	}
	if data == nil {
		return nil
	}

	var snap persisted
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("breaker: unmarshal state for %s: %w", source, err)
	}

	b.mu.Lock()
	b.state = snap.State
	b.consecutiveFails = snap.ConsecutiveFails
	b.openedAt = snap.OpenedAt
	b.mu.Unlock()
	return nil
}
