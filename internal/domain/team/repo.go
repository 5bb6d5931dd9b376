package team

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"hockey-union/backend/internal/storage"
)

type Repo struct {
	teams *storage.Collection[Team]
}

func NewRepo(kv storage.KV, log zerolog.Logger) *Repo {
	return &Repo{
		teams: storage.NewCollection(kv, log, "teams", func(t *Team) string { return t.ID }),
	}
}

// Seed writes the default teams on first run only.
func (r *Repo) Seed(ctx context.Context, teams []Team) error {
	return r.teams.Seed(ctx, teams)
}

// List returns every team; degraded reads surface as an empty slice.
func (r *Repo) List(ctx context.Context) []Team {
	return r.teams.List(ctx)
}

// Get retrieves a team by ID.
func (r *Repo) Get(ctx context.Context, teamID string) (*Team, error) {
	t, ok := r.teams.Get(ctx, teamID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, teamID)
	}
	return &t, nil
}

// Create assigns a fresh ID and appends the team.
func (r *Repo) Create(ctx context.Context, t Team) (*Team, error) {
	t.ID = uuid.NewString()
	if err := r.teams.Append(ctx, t); err != nil {
		return nil, fmt.Errorf("create team: %w", err)
	}
	return &t, nil
}

// Update merges the stored team with merge and writes the collection back.
func (r *Repo) Update(ctx context.Context, teamID string, merge func(Team) Team) (*Team, error) {
	t, err := r.teams.Update(ctx, teamID, merge)
	if errors.Is(err, storage.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, teamID)
	}
	if err != nil {
		return nil, fmt.Errorf("update team: %w", err)
	}
	return &t, nil
}

// Delete removes the team record only; the cascade to dependent
// collections belongs to the service.
func (r *Repo) Delete(ctx context.Context, teamID string) error {
	err := r.teams.Remove(ctx, teamID)
	if errors.Is(err, storage.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, teamID)
	}
	if err != nil {
		return fmt.Errorf("delete team: %w", err)
	}
	return nil
}
