package user

import (
	"context"
	"errors"
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

// Register creates an account and begins a session for it. Usernames are
// unique case-insensitively.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*User, error) {
	in.Trim()
	if in.Username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrBadRequest)
	}
	if in.Password == "" {
		return nil, fmt.Errorf("%w: password is required", ErrBadRequest)
	}
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrBadRequest)
	}
	role := in.Role
	if role == "" {
		role = "member"
	}

	normalized := utils.NormalizeNameLower(in.Username)
	for _, existing := range s.repo.List(ctx) {
		if utils.NormalizeNameLower(existing.Username) == normalized {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateUsername, in.Username)
		}
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, User{
		Username:     in.Username,
		PasswordHash: hash,
		Name:         in.Name,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	if err := s.beginSession(ctx, *created); err != nil {
		return nil, err
	}
	out := created.Sanitized()
	return &out, nil
}

// Login verifies credentials and begins a session. A wrong username and a
// wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, in LoginInput) (*User, error) {
	if in.Username == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrBadRequest)
	}

	u, err := s.repo.FindByUsername(ctx, in.Username)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !checkPassword(u.PasswordHash, in.Password) {
		return nil, ErrInvalidCredentials
	}

	if err := s.beginSession(ctx, *u); err != nil {
		return nil, err
	}
	out := u.Sanitized()
	return &out, nil
}

// Current returns the active session, nil when logged out.
func (s *Service) Current(ctx context.Context) *Session {
	return s.repo.LoadSession(ctx)
}

// Logout ends the active session.
func (s *Service) Logout(ctx context.Context) error {
	return s.repo.ClearSession(ctx)
}

func (s *Service) beginSession(ctx context.Context, u User) error {
	return s.repo.SaveSession(ctx, Session{
		UserID:    u.ID,
		Username:  u.Username,
		Name:      u.Name,
		Role:      u.Role,
		StartedAt: time.Now().UTC(),
	})
}
