package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"recipeshare/internal/model"
)

// RecipeRepository defines recipe persistence operations.
type RecipeRepository interface {
	Create(ctx context.Context, recipe *model.Recipe) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Recipe, error)
	ListAll(ctx context.Context) ([]model.Recipe, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Recipe, error)
	UpdateOwned(ctx context.Context, id, userID uuid.UUID, updates map[string]interface{}) (int64, error)
	DeleteOwned(ctx context.Context, id, userID uuid.UUID) (int64, error)
}

type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new recipe repository.
func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// Create creates a new recipe.
func (r *recipeRepository) Create(ctx context.Context, recipe *model.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

// FindByID finds a recipe by ID.
func (r *recipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// ListAll lists every recipe with its owner, newest first.
func (r *recipeRepository) ListAll(ctx context.Context) ([]model.Recipe, error) {
	var recipes []model.Recipe
	if err := r.db.WithContext(ctx).Preload("User").
		Order("created_at DESC").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// ListByUser lists one user's recipes, newest first.
func (r *recipeRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Recipe, error) {
	var recipes []model.Recipe
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("created_at DESC").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// UpdateOwned applies updates only if the recipe is owned by userID and
// returns the number of affected rows. The ownership predicate in the WHERE
// clause is the race-safe check; the caller's prior lookup only decides
// between 404 and 403.
func (r *recipeRepository) UpdateOwned(ctx context.Context, id, userID uuid.UUID, updates map[string]interface{}) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Recipe{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates)
	return res.RowsAffected, res.Error
}

// DeleteOwned deletes the recipe only if owned by userID and returns the
// number of affected rows.
func (r *recipeRepository) DeleteOwned(ctx context.Context, id, userID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Recipe{})
	return res.RowsAffected, res.Error
}
