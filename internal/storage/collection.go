package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// KeyPrefix namespaces every collection key so the substrate can be shared
// with other app data. It must not change across versions: the on-disk keys
// are part of the persisted format.
const KeyPrefix = "namibia_hockey_"

// Collection persists a named sequence of records as one JSON value under a
// single substrate key. Every mutation is a full read-modify-write cycle
// serialized by a per-collection mutex, so two in-flight writes against the
// same collection cannot lose each other's changes. Writes across different
// collections are still not atomic.
type Collection[T any] struct {
	key string
	kv  KV
	id  func(*T) string
	log zerolog.Logger

	mu sync.Mutex
}

// NewCollection binds a collection name to the substrate. id extracts a
// record's identifier for Get/Update/Remove matching.
func NewCollection[T any](kv KV, log zerolog.Logger, name string, id func(*T) string) *Collection[T] {
	return &Collection[T]{
		key: Key(name),
		kv:  kv,
		id:  id,
		log: log.With().Str("collection", name).Logger(),
	}
}

// Key returns the namespaced substrate key.
func (c *Collection[T]) Key() string {
	return c.key
}

// List returns every record in the collection. Reads never fail outward: an
// absent key, a substrate error, or a corrupt value all surface as an empty
// slice, with non-absence failures logged for diagnostics.
func (c *Collection[T]) List(ctx context.Context) []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	records, err := c.load(ctx)
	if err != nil {
		c.log.Error().Err(err).Str("key", c.key).Msg("collection read degraded to empty")
		return []T{}
	}
	return records
}

// Filter returns the records matching pred, in collection order.
func (c *Collection[T]) Filter(ctx context.Context, pred func(T) bool) []T {
	matched := []T{}
	for _, rec := range c.List(ctx) {
		if pred(rec) {
			matched = append(matched, rec)
		}
	}
	return matched
}

// Get returns the first record whose id matches.
func (c *Collection[T]) Get(ctx context.Context, id string) (T, bool) {
	for _, rec := range c.List(ctx) {
		if c.id(&rec) == id {
			return rec, true
		}
	}
	var zero T
	return zero, false
}

// Seed writes records if and only if the collection key is absent. Calling
// it against an existing collection, even an empty one, is a no-op.
func (c *Collection[T]) Seed(ctx context.Context, records []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := c.kv.Get(ctx, c.key)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrKeyNotFound) {
		return fmt.Errorf("%w: seed check %s: %v", ErrSubstrateFailure, c.key, err)
	}
	if records == nil {
		records = []T{}
	}
	return c.save(ctx, records)
}

// Append adds a record at the end of the collection.
func (c *Collection[T]) Append(ctx context.Context, record T) error {
	return c.insert(ctx, record, false)
}

// Prepend adds a record at the front of the collection. Feed collections
// (news, announcements, notifications) are kept newest-first.
func (c *Collection[T]) Prepend(ctx context.Context, record T) error {
	return c.insert(ctx, record, true)
}

// Update locates a record by id and replaces it with merge(current),
// writing the whole collection back. Returns ErrRecordNotFound when the id
// matches nothing.
func (c *Collection[T]) Update(ctx context.Context, id string, merge func(T) T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	records, err := c.load(ctx)
	if err != nil {
		return zero, fmt.Errorf("%w: load %s: %v", ErrSubstrateFailure, c.key, err)
	}

	for i := range records {
		if c.id(&records[i]) != id {
			continue
		}
		records[i] = merge(records[i])
		if err := c.save(ctx, records); err != nil {
			return zero, err
		}
		return records[i], nil
	}
	return zero, ErrRecordNotFound
}

// Remove deletes the record with the given id. Returns ErrRecordNotFound
// when the collection is left unchanged.
func (c *Collection[T]) Remove(ctx context.Context, id string) error {
	removed, err := c.RemoveWhere(ctx, func(rec T) bool {
		return c.id(&rec) == id
	})
	if err != nil {
		return err
	}
	if removed == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// RemoveWhere deletes every record matching pred and reports how many were
// removed. Matching nothing is not an error; cascades use this to clear
// dependents that may not exist.
func (c *Collection[T]) RemoveWhere(ctx context.Context, pred func(T) bool) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.load(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: load %s: %v", ErrSubstrateFailure, c.key, err)
	}

	kept := records[:0]
	for _, rec := range records {
		if !pred(rec) {
			kept = append(kept, rec)
		}
	}
	removed := len(records) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	if err := c.save(ctx, kept); err != nil {
		return 0, err
	}
	return removed, nil
}

func (c *Collection[T]) insert(ctx context.Context, record T, front bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.load(ctx)
	if err != nil {
		return fmt.Errorf("%w: load %s: %v", ErrSubstrateFailure, c.key, err)
	}
	if front {
		records = append([]T{record}, records...)
	} else {
		records = append(records, record)
	}
	return c.save(ctx, records)
}

// load reads and decodes the collection. An absent key decodes as empty.
func (c *Collection[T]) load(ctx context.Context) ([]T, error) {
	raw, err := c.kv.Get(ctx, c.key)
	if errors.Is(err, ErrKeyNotFound) {
		return []T{}, nil
	}
	if err != nil {
		return nil, err
	}
	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.key, err)
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

func (c *Collection[T]) save(ctx context.Context, records []T) error {
	if records == nil {
		records = []T{}
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrSubstrateFailure, c.key, err)
	}
	if err := c.kv.Set(ctx, c.key, raw); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrSubstrateFailure, c.key, err)
	}
	return nil
}
