package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"recipeshare/internal/cache"
	apperrors "recipeshare/internal/errors"
	"recipeshare/internal/model"
	"recipeshare/internal/repository"
)

const (
	publicRecipesCacheKey = "recipes:public"
	publicRecipesCacheTTL = time.Minute
)

// RecipeService handles recipe listing, ingestion and ownership-checked mutation.
type RecipeService interface {
	ListPublic(ctx context.Context) ([]model.Recipe, error)
	ListOwn(ctx context.Context, userID uuid.UUID) ([]model.Recipe, error)
	Create(ctx context.Context, userID uuid.UUID, input RecipeInput, imagePath string) (*model.Recipe, error)
	Update(ctx context.Context, id, userID uuid.UUID, input RecipeInput, imagePath string) (*model.Recipe, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type recipeService struct {
	recipeRepo   repository.RecipeRepository
	favoriteRepo repository.FavoriteRepository
	cache        *cache.Client
}

// NewRecipeService creates a new recipe service.
func NewRecipeService(recipeRepo repository.RecipeRepository, favoriteRepo repository.FavoriteRepository, cache *cache.Client) RecipeService {
	return &recipeService{
		recipeRepo:   recipeRepo,
		favoriteRepo: favoriteRepo,
		cache:        cache,
	}
}

// cachedRecipe is the cache shape of one public-listing row. The storage
// model hides its owner relation from JSON, so the owner is carried in a
// separate field; a cache hit must render the same author as a database read.
type cachedRecipe struct {
	Recipe model.Recipe `json:"recipe"`
	Owner  *model.User  `json:"owner,omitempty"`
}

func toCached(recipes []model.Recipe) []cachedRecipe {
	entries := make([]cachedRecipe, 0, len(recipes))
	for i := range recipes {
		entries = append(entries, cachedRecipe{Recipe: recipes[i], Owner: recipes[i].User})
	}
	return entries
}

func fromCached(entries []cachedRecipe) []model.Recipe {
	recipes := make([]model.Recipe, 0, len(entries))
	for _, entry := range entries {
		recipe := entry.Recipe
		recipe.User = entry.Owner
		recipes = append(recipes, recipe)
	}
	return recipes
}

// ListPublic returns every recipe with owner loaded, newest first, with a
// short cache-aside in front of the query.
func (s *recipeService) ListPublic(ctx context.Context) ([]model.Recipe, error) {
	if data, _ := s.cache.Get(ctx, publicRecipesCacheKey); data != nil {
		var cached []cachedRecipe
		if err := json.Unmarshal(data, &cached); err == nil {
			return fromCached(cached), nil
		}
	}

	recipes, err := s.recipeRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}

	if payload, err := json.Marshal(toCached(recipes)); err == nil {
		_ = s.cache.Set(ctx, publicRecipesCacheKey, payload, publicRecipesCacheTTL)
	}
	return recipes, nil
}

// ListOwn returns the caller's recipes, newest first.
func (s *recipeService) ListOwn(ctx context.Context, userID uuid.UUID) ([]model.Recipe, error) {
	recipes, err := s.recipeRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list user recipes: %w", err)
	}
	return recipes, nil
}

// Create validates a submission and persists a recipe owned by userID.
func (s *recipeService) Create(ctx context.Context, userID uuid.UUID, input RecipeInput, imagePath string) (*model.Recipe, error) {
	parsed, err := input.Parse()
	if err != nil {
		return nil, err
	}

	recipe := &model.Recipe{
		Title:       parsed.Title,
		Description: parsed.Description,
		Servings:    parsed.Servings,
		CookingTime: parsed.CookingTime,
		Ingredients: parsed.Ingredients,
		Steps:       parsed.Steps,
		Image:       imagePath,
		UserID:      userID,
	}

	if err := s.recipeRepo.Create(ctx, recipe); err != nil {
		return nil, fmt.Errorf("create recipe: %w", err)
	}

	_ = s.cache.Delete(ctx, publicRecipesCacheKey)
	return recipe, nil
}

// Update applies a full replacement of the recipe's content. The existence
// check runs before the ownership check so a foreign recipe answers 403, not
// 404; the actual write is scoped to (id, owner) so a concurrent delete
// cannot be overwritten past the check.
func (s *recipeService) Update(ctx context.Context, id, userID uuid.UUID, input RecipeInput, imagePath string) (*model.Recipe, error) {
	recipe, err := s.recipeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("load recipe: %w", err)
	}
	if recipe.UserID != userID {
		return nil, apperrors.ErrNotRecipeOwner
	}

	parsed, err := input.Parse()
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"title":        parsed.Title,
		"description":  parsed.Description,
		"servings":     parsed.Servings,
		"cooking_time": parsed.CookingTime,
		"ingredients":  parsed.Ingredients,
		"steps":        parsed.Steps,
	}
	if imagePath != "" {
		updates["image"] = imagePath
	}

	affected, err := s.recipeRepo.UpdateOwned(ctx, id, userID, updates)
	if err != nil {
		return nil, fmt.Errorf("update recipe: %w", err)
	}
	if affected == 0 {
		// lost a race with a concurrent delete
		return nil, apperrors.ErrRecipeNotFound
	}

	updated, err := s.recipeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload recipe: %w", err)
	}

	_ = s.cache.Delete(ctx, publicRecipesCacheKey)
	return updated, nil
}

// Delete removes the recipe and any favorite edges pointing at it.
func (s *recipeService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	recipe, err := s.recipeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRecipeNotFound
		}
		return fmt.Errorf("load recipe: %w", err)
	}
	if recipe.UserID != userID {
		return apperrors.ErrNotRecipeOwner
	}

	affected, err := s.recipeRepo.DeleteOwned(ctx, id, userID)
	if err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrRecipeNotFound
	}

	if err := s.favoriteRepo.DeleteByRecipe(ctx, id); err != nil {
		return fmt.Errorf("delete recipe favorites: %w", err)
	}

	_ = s.cache.Delete(ctx, publicRecipesCacheKey)
	return nil
}
