package player

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"hockey-union/backend/internal/storage"
)

type Repo struct {
	players *storage.Collection[Player]
}

func NewRepo(kv storage.KV, log zerolog.Logger) *Repo {
	return &Repo{
		players: storage.NewCollection(kv, log, "players", func(p *Player) string { return p.ID }),
	}
}

// Seed writes the default players on first run only.
func (r *Repo) Seed(ctx context.Context, players []Player) error {
	return r.players.Seed(ctx, players)
}

// List returns every player; degraded reads surface as an empty slice.
func (r *Repo) List(ctx context.Context) []Player {
	return r.players.List(ctx)
}

// ListByTeam returns the players referencing teamID.
func (r *Repo) ListByTeam(ctx context.Context, teamID string) []Player {
	return r.players.Filter(ctx, func(p Player) bool { return p.TeamID == teamID })
}

// Get retrieves a player by ID.
func (r *Repo) Get(ctx context.Context, playerID string) (*Player, error) {
	p, ok := r.players.Get(ctx, playerID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, playerID)
	}
	return &p, nil
}

// Create assigns a fresh ID and appends the player.
func (r *Repo) Create(ctx context.Context, p Player) (*Player, error) {
	p.ID = uuid.NewString()
	if err := r.players.Append(ctx, p); err != nil {
		return nil, fmt.Errorf("create player: %w", err)
	}
	return &p, nil
}

// Update merges the stored player with merge and writes the collection back.
func (r *Repo) Update(ctx context.Context, playerID string, merge func(Player) Player) (*Player, error) {
	p, err := r.players.Update(ctx, playerID, merge)
	if errors.Is(err, storage.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, playerID)
	}
	if err != nil {
		return nil, fmt.Errorf("update player: %w", err)
	}
	return &p, nil
}

// Delete removes a single player. Nothing cascades from a player.
func (r *Repo) Delete(ctx context.Context, playerID string) error {
	err := r.players.Remove(ctx, playerID)
	if errors.Is(err, storage.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, playerID)
	}
	if err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	return nil
}

// RemoveByTeam clears every player referencing teamID. Used by the team
// delete cascade; matching nobody is fine.
func (r *Repo) RemoveByTeam(ctx context.Context, teamID string) (int, error) {
	removed, err := r.players.RemoveWhere(ctx, func(p Player) bool { return p.TeamID == teamID })
	if err != nil {
		return 0, fmt.Errorf("remove players of team %s: %w", teamID, err)
	}
	return removed, nil
}
