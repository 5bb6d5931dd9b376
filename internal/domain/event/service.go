package event

import (
	"context"
	"fmt"
	"time"

	"hockey-union/backend/internal/utils"
)

type Service struct {
	repo *Repo
}

func NewService(repo *Repo) *Service {
	return &Service{repo: repo}
}

// Create publishes a new event.
func (s *Service) Create(ctx context.Context, in CreateEventInput) (*Event, error) {
	in.Trim()
	if in.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrBadRequest)
	}
	if in.Date == "" {
		return nil, fmt.Errorf("%w: date is required", ErrBadRequest)
	}
	if _, err := utils.ParseTime(in.Date); err != nil {
		return nil, fmt.Errorf("%w: date must be a date", ErrBadRequest)
	}

	now := time.Now().UTC()
	return s.repo.Create(ctx, Event{
		Title:       in.Title,
		Description: in.Description,
		Date:        in.Date,
		Location:    in.Location,
		ImageURL:    in.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

// Get retrieves an event by ID.
func (s *Service) Get(ctx context.Context, eventID string) (*Event, error) {
	if eventID == "" {
		return nil, fmt.Errorf("%w: eventId is required", ErrBadRequest)
	}
	return s.repo.Get(ctx, eventID)
}

// List returns every published event.
func (s *Service) List(ctx context.Context) []Event {
	return s.repo.List(ctx)
}

// Update applies a shallow patch to an event and stamps updatedAt.
func (s *Service) Update(ctx context.Context, eventID string, in UpdateEventInput) (*Event, error) {
	if eventID == "" {
		return nil, fmt.Errorf("%w: eventId is required", ErrBadRequest)
	}
	in.Trim()
	if in.Title != nil && *in.Title == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", ErrBadRequest)
	}
	if in.Date != nil {
		if _, err := utils.ParseTime(*in.Date); err != nil {
			return nil, fmt.Errorf("%w: date must be a date", ErrBadRequest)
		}
	}

	return s.repo.Update(ctx, eventID, func(e Event) Event {
		if in.Title != nil {
			e.Title = *in.Title
		}
		if in.Description != nil {
			e.Description = *in.Description
		}
		if in.Date != nil {
			e.Date = *in.Date
		}
		if in.Location != nil {
			e.Location = *in.Location
		}
		if in.ImageURL != nil {
			e.ImageURL = *in.ImageURL
		}
		e.UpdatedAt = time.Now().UTC()
		return e
	})
}

// Delete removes an event. Existing registrations keep their weak eventId
// reference; only team deletion cascades to registrations.
func (s *Service) Delete(ctx context.Context, eventID string) error {
	if eventID == "" {
		return fmt.Errorf("%w: eventId is required", ErrBadRequest)
	}
	return s.repo.Delete(ctx, eventID)
}

// RegisterTeam enters a team into an event.
func (s *Service) RegisterTeam(ctx context.Context, in CreateRegistrationInput) (*Registration, error) {
	in.Trim()
	if in.EventID == "" {
		return nil, fmt.Errorf("%w: eventId is required", ErrBadRequest)
	}
	if in.TeamID == "" {
		return nil, fmt.Errorf("%w: teamId is required", ErrBadRequest)
	}
	if in.Contact.Name == "" {
		return nil, fmt.Errorf("%w: contact name is required", ErrBadRequest)
	}
	if in.NumberOfPlayers <= 0 {
		return nil, fmt.Errorf("%w: numberOfPlayers must be positive", ErrBadRequest)
	}
	if _, err := s.repo.Get(ctx, in.EventID); err != nil {
		return nil, err
	}

	return s.repo.CreateRegistration(ctx, Registration{
		EventID:         in.EventID,
		TeamID:          in.TeamID,
		Contact:         in.Contact,
		NumberOfPlayers: in.NumberOfPlayers,
		SpecialRequests: in.SpecialRequests,
		RegisteredAt:    time.Now().UTC(),
	})
}

// ListRegistrationsByEvent returns the registrations for one event.
func (s *Service) ListRegistrationsByEvent(ctx context.Context, eventID string) ([]Registration, error) {
	if eventID == "" {
		return nil, fmt.Errorf("%w: eventId is required", ErrBadRequest)
	}
	return s.repo.ListRegistrationsByEvent(ctx, eventID), nil
}

// ListRegistrationsByTeam returns the registrations entered by one team.
func (s *Service) ListRegistrationsByTeam(ctx context.Context, teamID string) ([]Registration, error) {
	if teamID == "" {
		return nil, fmt.Errorf("%w: teamId is required", ErrBadRequest)
	}
	return s.repo.ListRegistrationsByTeam(ctx, teamID), nil
}
