package team

import (
	"context"
	"fmt"
	"time"

	"hockey-union/backend/internal/domain/event"
	"hockey-union/backend/internal/domain/player"
	"hockey-union/backend/internal/utils"
)

type Service struct {
	repo       *Repo
	playerRepo *player.Repo
	eventRepo  *event.Repo
}

func NewService(repo *Repo, playerRepo *player.Repo, eventRepo *event.Repo) *Service {
	return &Service{repo: repo, playerRepo: playerRepo, eventRepo: eventRepo}
}

// Register registers a new team.
func (s *Service) Register(ctx context.Context, in CreateTeamInput) (*Team, error) {
	in.Trim()
	if err := validateCreateInput(in); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return s.repo.Create(ctx, Team{
		Name:      in.Name,
		Category:  in.Category,
		Division:  in.Division,
		HomeVenue: in.HomeVenue,
		Coach:     in.Coach,
		Manager:   in.Manager,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

// Get retrieves a team by ID.
func (s *Service) Get(ctx context.Context, teamID string) (*Team, error) {
	if teamID == "" {
		return nil, fmt.Errorf("%w: teamId is required", ErrBadRequest)
	}
	return s.repo.Get(ctx, teamID)
}

// List returns every registered team.
func (s *Service) List(ctx context.Context) []Team {
	return s.repo.List(ctx)
}

// Search filters teams by a free-text query over name, category and
// division.
func (s *Service) Search(ctx context.Context, query string) []Team {
	q := utils.NormalizeNameLower(query)
	if q == "" {
		return s.repo.List(ctx)
	}

	matched := []Team{}
	for _, t := range s.repo.List(ctx) {
		tokens := utils.SearchTokens(t.Name, t.Category, t.Division, utils.Slugify(t.Name))
		for _, tok := range tokens {
			if tok == q || utils.Slugify(tok) == utils.Slugify(q) {
				matched = append(matched, t)
				break
			}
		}
	}
	return matched
}

// Update applies a shallow patch to a team: set fields overwrite, nil
// fields are retained, updatedAt is stamped.
func (s *Service) Update(ctx context.Context, teamID string, in UpdateTeamInput) (*Team, error) {
	if teamID == "" {
		return nil, fmt.Errorf("%w: teamId is required", ErrBadRequest)
	}
	in.Trim()
	if in.Name != nil && *in.Name == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", ErrBadRequest)
	}

	return s.repo.Update(ctx, teamID, func(t Team) Team {
		if in.Name != nil {
			t.Name = *in.Name
		}
		if in.Category != nil {
			t.Category = *in.Category
		}
		if in.Division != nil {
			t.Division = *in.Division
		}
		if in.HomeVenue != nil {
			t.HomeVenue = *in.HomeVenue
		}
		if in.Coach != nil {
			t.Coach = in.Coach
		}
		if in.Manager != nil {
			t.Manager = in.Manager
		}
		t.UpdatedAt = time.Now().UTC()
		return t
	})
}

// Delete removes a team and cascades to its players and event
// registrations. The three writes are sequential, not atomic: if a cascade
// step fails the team is already gone and the error reports the partial
// state.
func (s *Service) Delete(ctx context.Context, teamID string) error {
	if teamID == "" {
		return fmt.Errorf("%w: teamId is required", ErrBadRequest)
	}

	if err := s.repo.Delete(ctx, teamID); err != nil {
		return err
	}
	if _, err := s.playerRepo.RemoveByTeam(ctx, teamID); err != nil {
		return fmt.Errorf("team %s removed but player cascade failed: %w", teamID, err)
	}
	if _, err := s.eventRepo.RemoveRegistrationsByTeam(ctx, teamID); err != nil {
		return fmt.Errorf("team %s removed but registration cascade failed: %w", teamID, err)
	}
	return nil
}

func validateCreateInput(in CreateTeamInput) error {
	if in.Name == "" {
		return fmt.Errorf("%w: name is required", ErrBadRequest)
	}
	if in.Category == "" {
		return fmt.Errorf("%w: category is required", ErrBadRequest)
	}
	if in.Division == "" {
		return fmt.Errorf("%w: division is required", ErrBadRequest)
	}
	return nil
}
