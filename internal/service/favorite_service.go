package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "recipeshare/internal/errors"
	"recipeshare/internal/model"
	"recipeshare/internal/repository"
)

// FavoriteService manages favorite edges. All operations are scoped to the
// acting user; there is no way to touch another user's favorites.
type FavoriteService interface {
	Add(ctx context.Context, userID, recipeID uuid.UUID) (*model.Favorite, error)
	Remove(ctx context.Context, userID, recipeID uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID) ([]model.Favorite, error)
}

type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	recipeRepo   repository.RecipeRepository
}

// NewFavoriteService creates a new favorite service.
func NewFavoriteService(favoriteRepo repository.FavoriteRepository, recipeRepo repository.RecipeRepository) FavoriteService {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
		recipeRepo:   recipeRepo,
	}
}

// Add creates the (user, recipe) edge. The existence probe keeps the common
// duplicate case cheap; the unique index inside Create is what actually
// guarantees at most one edge under concurrency.
func (s *favoriteService) Add(ctx context.Context, userID, recipeID uuid.UUID) (*model.Favorite, error) {
	if _, err := s.recipeRepo.FindByID(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("load recipe: %w", err)
	}

	exists, err := s.favoriteRepo.Exists(ctx, userID, recipeID)
	if err != nil {
		return nil, fmt.Errorf("check favorite: %w", err)
	}
	if exists {
		return nil, apperrors.ErrFavoriteExists
	}

	favorite := &model.Favorite{
		UserID:   userID,
		RecipeID: recipeID,
	}
	if err := s.favoriteRepo.Create(ctx, favorite); err != nil {
		if errors.Is(err, apperrors.ErrFavoriteExists) {
			return nil, apperrors.ErrFavoriteExists
		}
		return nil, fmt.Errorf("create favorite: %w", err)
	}

	return favorite, nil
}

// Remove deletes the caller's edge for a recipe.
func (s *favoriteService) Remove(ctx context.Context, userID, recipeID uuid.UUID) error {
	affected, err := s.favoriteRepo.Delete(ctx, userID, recipeID)
	if err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrFavoriteNotFound
	}
	return nil
}

// List returns the caller's favorites with recipes and owners loaded.
func (s *favoriteService) List(ctx context.Context, userID uuid.UUID) ([]model.Favorite, error) {
	favorites, err := s.favoriteRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return favorites, nil
}
