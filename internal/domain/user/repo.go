package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"hockey-union/backend/internal/storage"
)

// currentUserKey is the singleton key holding the active session. It sits
// in the same namespace as the collections for parity with the persisted
// format but never holds more than one record.
var currentUserKey = storage.Key("current_user")

type Repo struct {
	users *storage.Collection[User]
	kv    storage.KV
	log   zerolog.Logger
}

func NewRepo(kv storage.KV, log zerolog.Logger) *Repo {
	return &Repo{
		users: storage.NewCollection(kv, log, "users", func(u *User) string { return u.ID }),
		kv:    kv,
		log:   log.With().Str("collection", "current_user").Logger(),
	}
}

// Seed writes the default users on first run only.
func (r *Repo) Seed(ctx context.Context, users []User) error {
	return r.users.Seed(ctx, users)
}

// List returns every account; degraded reads surface as an empty slice.
func (r *Repo) List(ctx context.Context) []User {
	return r.users.List(ctx)
}

// FindByUsername returns the first account matching the exact username.
func (r *Repo) FindByUsername(ctx context.Context, username string) (*User, error) {
	for _, u := range r.users.List(ctx) {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, username)
}

// Create assigns a fresh ID and appends the account.
func (r *Repo) Create(ctx context.Context, u User) (*User, error) {
	u.ID = uuid.NewString()
	if err := r.users.Append(ctx, u); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &u, nil
}

// SaveSession persists the active session under the singleton key.
func (r *Repo) SaveSession(ctx context.Context, s Session) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("%w: encode session: %v", storage.ErrSubstrateFailure, err)
	}
	if err := r.kv.Set(ctx, currentUserKey, raw); err != nil {
		return fmt.Errorf("%w: write session: %v", storage.ErrSubstrateFailure, err)
	}
	return nil
}

// LoadSession returns the active session, or nil when logged out. Like
// collection reads, failures degrade to "logged out" and are only logged.
func (r *Repo) LoadSession(ctx context.Context) *Session {
	raw, err := r.kv.Get(ctx, currentUserKey)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		r.log.Error().Err(err).Msg("session read degraded to logged out")
		return nil
	}
	var s Session
	if err := json.Unmarshal(raw, &s); err != nil {
		r.log.Error().Err(err).Msg("session decode degraded to logged out")
		return nil
	}
	return &s
}

// ClearSession removes the singleton key. Clearing an absent session is a
// no-op.
func (r *Repo) ClearSession(ctx context.Context) error {
	if err := r.kv.Remove(ctx, currentUserKey); err != nil {
		return fmt.Errorf("%w: clear session: %v", storage.ErrSubstrateFailure, err)
	}
	return nil
}
