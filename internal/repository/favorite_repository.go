package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "recipeshare/internal/errors"
	"recipeshare/internal/model"
)

// FavoriteRepository defines favorite-edge persistence operations.
type FavoriteRepository interface {
	Create(ctx context.Context, favorite *model.Favorite) error
	Exists(ctx context.Context, userID, recipeID uuid.UUID) (bool, error)
	Delete(ctx context.Context, userID, recipeID uuid.UUID) (int64, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Favorite, error)
	DeleteByRecipe(ctx context.Context, recipeID uuid.UUID) error
}

type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository creates a new favorite repository.
func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Create inserts a favorite edge. The (user_id, recipe_id) unique index makes
// the insert race-safe; a duplicate-key violation is translated to
// ErrFavoriteExists so concurrent double-favorites lose cleanly.
func (r *favoriteRepository) Create(ctx context.Context, favorite *model.Favorite) error {
	err := r.db.WithContext(ctx).Create(favorite).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.ErrFavoriteExists
	}
	return err
}

// Exists reports whether the (user, recipe) edge is present.
func (r *favoriteRepository) Exists(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Favorite{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Delete removes the caller's edge for a recipe and returns affected rows.
func (r *favoriteRepository) Delete(ctx context.Context, userID, recipeID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&model.Favorite{})
	return res.RowsAffected, res.Error
}

// ListByUser lists a user's favorites with recipes and their owners, newest first.
func (r *favoriteRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Favorite, error) {
	var favorites []model.Favorite
	if err := r.db.WithContext(ctx).Preload("Recipe").Preload("Recipe.User").
		Where("user_id = ?", userID).
		Order("created_at DESC").Find(&favorites).Error; err != nil {
		return nil, err
	}
	return favorites, nil
}

// DeleteByRecipe removes every edge pointing at a recipe.
func (r *favoriteRepository) DeleteByRecipe(ctx context.Context, recipeID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Delete(&model.Favorite{}).Error
}
