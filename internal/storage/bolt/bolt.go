// Package bolt provides the BoltDB-backed substrate used in production.
package bolt

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.etcd.io/bbolt"

	"hockey-union/backend/internal/storage"
)

const collectionsBucket = "collections"

// Store is a bbolt-backed key-value substrate. All collection values live
// in a single bucket keyed by their namespaced collection key.
type Store struct {
	db *bbolt.DB
}

// Open opens (creating if needed) the database file at the provided path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	db, err := bbolt.Open(filepath.Clean(path), 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open storage db: %w", err)
	}

	store := &Store{db: db}
	if err := store.ensureBucket(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Get fetches the value stored under key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("%w: storage is not configured", storage.ErrSubstrateFailure)
	}

	var value []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(collectionsBucket))
		if bucket == nil {
			return fmt.Errorf("%w: collections bucket is missing", storage.ErrSubstrateFailure)
		}
		v := bucket.Get([]byte(key))
		if v == nil {
			return storage.ErrKeyNotFound
		}
		value = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Set writes value under key, replacing any previous value.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.db == nil {
		return fmt.Errorf("%w: storage is not configured", storage.ErrSubstrateFailure)
	}
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("%w: key is required", storage.ErrSubstrateFailure)
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(collectionsBucket))
		if bucket == nil {
			return fmt.Errorf("collections bucket is missing")
		}
		return bucket.Put([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("%w: %v", storage.ErrSubstrateFailure, err)
	}
	return nil
}

// Remove deletes key. Removing an absent key is not an error.
func (s *Store) Remove(ctx context.Context, key string) error {
	return s.RemoveMany(ctx, []string{key})
}

// RemoveMany deletes every key in a single transaction.
func (s *Store) RemoveMany(ctx context.Context, keys []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.db == nil {
		return fmt.Errorf("%w: storage is not configured", storage.ErrSubstrateFailure)
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(collectionsBucket))
		if bucket == nil {
			return fmt.Errorf("collections bucket is missing")
		}
		for _, key := range keys {
			if err := bucket.Delete([]byte(key)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", storage.ErrSubstrateFailure, err)
	}
	return nil
}

func (s *Store) ensureBucket() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(collectionsBucket))
		if err != nil {
			return fmt.Errorf("create collections bucket: %w", err)
		}
		return nil
	})
}
