// Package cache implements the content-hash idempotence guard the
// EmbeddingIndexer checks before calling the provider, grounded on
// services/trace/agent/routing/router_cache.go's BadgerDB-backed
// corpus-hash cache.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"
)

const keyPrefix = "embedding:cache:"

// Entry is what the cache stores per content hash: the vector itself plus
// the hash it was computed for, so a Get can double-check it wasn't
// served a collision.
type Entry struct {
	Hash      string    `json:"hash"`
	Vector    []float32 `json:"vector"`
}

// Cache wraps a BadgerDB handle.
type Cache struct {
	db *badger.DB
}

// New wraps an already-open Badger handle; callers own its lifecycle.
func New(db *badger.DB) *Cache {
	return &Cache{db: db}
}

// HashText returns the content hash cache lookups are keyed on.
func HashText(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// Get returns the cached vector for hash, if present.
func (c *Cache) Get(hash string) ([]float32, bool, error) {
	var data []byte
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefix + hash))
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
		return nil, false, fmt.Errorf("cache: get %s: %w", hash, err)
	}
	if data == nil {
		return nil, false, nil
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false, fmt.Errorf("cache: decode %s: %w", hash, err)
	}
	return entry.Vector, true, nil
}

// Put stores vector under hash.
func (c *Cache) Put(hash string, vector []float32) error {
	data, err := json.Marshal(Entry{Hash: hash, Vector: vector})
	if err != nil {
		return fmt.Errorf("cache: encode %s: %w", hash, err)
	}
	err = c.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPrefix+hash), data)
	})
	if err != nil {
		return fmt.Errorf("cache: put %s: %w", hash, err)
	}
	return nil
}
