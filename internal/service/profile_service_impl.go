package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rvaughn/taskdesk/internal/domain"
	"github.com/rvaughn/taskdesk/internal/repository"
)

type profileService struct {
	profiles repository.ProfileRepo
}

func NewProfileService(profiles repository.ProfileRepo) ProfileService {
	return &profileService{profiles: profiles}
}

func (s *profileService) Get(ctx context.Context) (*domain.Profile, error) {
	return s.profiles.Get(ctx)
}

func (s *profileService) Setup(ctx context.Context, role domain.Role, displayName, email string) (*domain.Profile, error) {
	if !domain.IsValidRole(role) {
		return nil, fmt.Errorf("unknown role %q", role)
	}
	if displayName == "" {
		return nil, fmt.Errorf("display name is required")
	}

	now := time.Now().UTC()
	p := &domain.Profile{
		ID:          uuid.New().String(),
		Role:        role,
		DisplayName: displayName,
		Email:       email,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// Re-running setup keeps the identity and the activation flag;
	// only the mutable fields change.
	if existing, err := s.profiles.Get(ctx); err != nil {
		return nil, err
	} else if existing != nil {
		p.ID = existing.ID
		p.Activated = existing.Activated
		p.CreatedAt = existing.CreatedAt
	}

	if err := s.profiles.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *profileService) Activate(ctx context.Context) error {
	p, err := s.profiles.Get(ctx)
	if err != nil {
		return err
	}
	if p == nil {
		return fmt.Errorf("no profile yet; run setup first")
	}
	if p.Activated {
		return nil
	}
	p.Activated = true
	p.UpdatedAt = time.Now().UTC()
	return s.profiles.Upsert(ctx, p)
}
