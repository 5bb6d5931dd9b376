package player

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

// Register registers a new player for a team.
func (s *Service) Register(ctx context.Context, in CreatePlayerInput) (*Player, error) {
	in.Trim()
	if err := validateCreateInput(in); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return s.repo.Create(ctx, Player{
		FirstName:         in.FirstName,
		LastName:          in.LastName,
		TeamID:            in.TeamID,
		Position:          in.Position,
		JerseyNumber:      in.JerseyNumber,
		DateOfBirth:       in.DateOfBirth,
		Gender:            in.Gender,
		Nationality:       in.Nationality,
		Email:             in.Email,
		Phone:             in.Phone,
		Address:           in.Address,
		MedicalConditions: in.MedicalConditions,
		EmergencyContact:  in.EmergencyContact,
		Photo:             in.Photo,
		IDNumber:          in.IDNumber,
		CreatedAt:         now,
		UpdatedAt:         now,
	})
}

// Get retrieves a player by ID.
func (s *Service) Get(ctx context.Context, playerID string) (*Player, error) {
	if playerID == "" {
		return nil, fmt.Errorf("%w: playerId is required", ErrBadRequest)
	}
	return s.repo.Get(ctx, playerID)
}

// List returns every registered player.
func (s *Service) List(ctx context.Context) []Player {
	return s.repo.List(ctx)
}

// ListByTeam returns the players on a team.
func (s *Service) ListByTeam(ctx context.Context, teamID string) ([]Player, error) {
	if teamID == "" {
		return nil, fmt.Errorf("%w: teamId is required", ErrBadRequest)
	}
	return s.repo.ListByTeam(ctx, teamID), nil
}

// Update applies a shallow patch to a player and stamps updatedAt.
func (s *Service) Update(ctx context.Context, playerID string, in UpdatePlayerInput) (*Player, error) {
	if playerID == "" {
		return nil, fmt.Errorf("%w: playerId is required", ErrBadRequest)
	}
	in.Trim()
	if in.FirstName != nil && *in.FirstName == "" {
		return nil, fmt.Errorf("%w: firstName cannot be empty", ErrBadRequest)
	}
	if in.LastName != nil && *in.LastName == "" {
		return nil, fmt.Errorf("%w: lastName cannot be empty", ErrBadRequest)
	}
	if in.DateOfBirth != nil {
		if _, err := utils.ParseTime(*in.DateOfBirth); err != nil {
			return nil, fmt.Errorf("%w: dateOfBirth must be a date", ErrBadRequest)
		}
	}

	return s.repo.Update(ctx, playerID, func(p Player) Player {
		if in.FirstName != nil {
			p.FirstName = *in.FirstName
		}
		if in.LastName != nil {
			p.LastName = *in.LastName
		}
		if in.TeamID != nil {
			p.TeamID = *in.TeamID
		}
		if in.Position != nil {
			p.Position = *in.Position
		}
		if in.JerseyNumber != nil {
			p.JerseyNumber = *in.JerseyNumber
		}
		if in.DateOfBirth != nil {
			p.DateOfBirth = *in.DateOfBirth
		}
		if in.Gender != nil {
			p.Gender = *in.Gender
		}
		if in.Nationality != nil {
			p.Nationality = *in.Nationality
		}
		if in.Email != nil {
			p.Email = *in.Email
		}
		if in.Phone != nil {
			p.Phone = *in.Phone
		}
		if in.Address != nil {
			p.Address = *in.Address
		}
		if in.MedicalConditions != nil {
			p.MedicalConditions = *in.MedicalConditions
		}
		if in.EmergencyContact != nil {
			p.EmergencyContact = in.EmergencyContact
		}
		if in.Photo != nil {
			p.Photo = *in.Photo
		}
		if in.IDNumber != nil {
			p.IDNumber = *in.IDNumber
		}
		p.UpdatedAt = time.Now().UTC()
		return p
	})
}

// Delete removes a player. Deleting a player cascades to nothing.
func (s *Service) Delete(ctx context.Context, playerID string) error {
	if playerID == "" {
		return fmt.Errorf("%w: playerId is required", ErrBadRequest)
	}
	return s.repo.Delete(ctx, playerID)
}

func validateCreateInput(in CreatePlayerInput) error {
	if in.FirstName == "" {
		return fmt.Errorf("%w: firstName is required", ErrBadRequest)
	}
	if in.LastName == "" {
		return fmt.Errorf("%w: lastName is required", ErrBadRequest)
	}
	if in.TeamID == "" {
		return fmt.Errorf("%w: teamId is required", ErrBadRequest)
	}
	if in.DateOfBirth != "" {
		if _, err := utils.ParseTime(in.DateOfBirth); err != nil {
			return fmt.Errorf("%w: dateOfBirth must be a date", ErrBadRequest)
		}
	}
	return nil
}
