package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "recipeshare/internal/errors"
	"recipeshare/internal/model"
	"recipeshare/internal/repository"
)

// ProfileService reads and mutates the acting user's own profile.
type ProfileService interface {
	Get(ctx context.Context, userID uuid.UUID) (*model.User, error)
	UpdateName(ctx context.Context, userID uuid.UUID, name string) (*model.User, error)
	UpdatePhoto(ctx context.Context, userID uuid.UUID, photoPath string) (*model.User, error)
}

type profileService struct {
	userRepo repository.UserRepository
}

// NewProfileService creates a new profile service.
func NewProfileService(userRepo repository.UserRepository) ProfileService {
	return &profileService{userRepo: userRepo}
}

// Get loads the user's profile.
func (s *profileService) Get(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	return user, nil
}

// UpdateName sets the display name, trimmed. A blank name is rejected.
func (s *profileService) UpdateName(ctx context.Context, userID uuid.UUID, name string) (*model.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidationError("name is required")
	}

	user, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Name = name
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update name: %w", err)
	}
	return user, nil
}

// UpdatePhoto records a new stored photo path.
func (s *profileService) UpdatePhoto(ctx context.Context, userID uuid.UUID, photoPath string) (*model.User, error) {
	user, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Photo = photoPath
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update photo: %w", err)
	}
	return user, nil
}
