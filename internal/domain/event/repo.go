package event

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"hockey-union/backend/internal/storage"
)

// Repo owns two collections: events and their registrations. They share a
// package because a registration has no meaning outside its event.
type Repo struct {
	events        *storage.Collection[Event]
	registrations *storage.Collection[Registration]
}

func NewRepo(kv storage.KV, log zerolog.Logger) *Repo {
	return &Repo{
		events:        storage.NewCollection(kv, log, "events", func(e *Event) string { return e.ID }),
		registrations: storage.NewCollection(kv, log, "event_registrations", func(r *Registration) string { return r.ID }),
	}
}

// Seed writes the default events and registrations on first run only.
func (r *Repo) Seed(ctx context.Context, events []Event, registrations []Registration) error {
	if err := r.events.Seed(ctx, events); err != nil {
		return err
	}
	return r.registrations.Seed(ctx, registrations)
}

// List returns every event; degraded reads surface as an empty slice.
func (r *Repo) List(ctx context.Context) []Event {
	return r.events.List(ctx)
}

// Get retrieves an event by ID.
func (r *Repo) Get(ctx context.Context, eventID string) (*Event, error) {
	e, ok := r.events.Get(ctx, eventID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, eventID)
	}
	return &e, nil
}

// Create assigns a fresh ID and appends the event.
func (r *Repo) Create(ctx context.Context, e Event) (*Event, error) {
	e.ID = uuid.NewString()
	if err := r.events.Append(ctx, e); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return &e, nil
}

// Update merges the stored event with merge and writes the collection back.
func (r *Repo) Update(ctx context.Context, eventID string, merge func(Event) Event) (*Event, error) {
	e, err := r.events.Update(ctx, eventID, merge)
	if errors.Is(err, storage.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, eventID)
	}
	if err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	return &e, nil
}

// Delete removes an event record.
func (r *Repo) Delete(ctx context.Context, eventID string) error {
	err := r.events.Remove(ctx, eventID)
	if errors.Is(err, storage.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, eventID)
	}
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

// CreateRegistration assigns a fresh ID and appends the registration.
func (r *Repo) CreateRegistration(ctx context.Context, reg Registration) (*Registration, error) {
	reg.ID = uuid.NewString()
	if err := r.registrations.Append(ctx, reg); err != nil {
		return nil, fmt.Errorf("create registration: %w", err)
	}
	return &reg, nil
}

// ListRegistrations returns every registration.
func (r *Repo) ListRegistrations(ctx context.Context) []Registration {
	return r.registrations.List(ctx)
}

// ListRegistrationsByEvent returns the registrations for one event.
func (r *Repo) ListRegistrationsByEvent(ctx context.Context, eventID string) []Registration {
	return r.registrations.Filter(ctx, func(reg Registration) bool { return reg.EventID == eventID })
}

// ListRegistrationsByTeam returns the registrations entered by one team.
func (r *Repo) ListRegistrationsByTeam(ctx context.Context, teamID string) []Registration {
	return r.registrations.Filter(ctx, func(reg Registration) bool { return reg.TeamID == teamID })
}

// RemoveRegistrationsByTeam clears every registration referencing teamID.
// Used by the team delete cascade; matching nothing is fine.
func (r *Repo) RemoveRegistrationsByTeam(ctx context.Context, teamID string) (int, error) {
	removed, err := r.registrations.RemoveWhere(ctx, func(reg Registration) bool { return reg.TeamID == teamID })
	if err != nil {
		return 0, fmt.Errorf("remove registrations of team %s: %w", teamID, err)
	}
	return removed, nil
}
