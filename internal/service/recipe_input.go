package service

import (
	"encoding/json"
	"strconv"
	"strings"

	apperrors "recipeshare/internal/errors"
	"recipeshare/internal/model"
)

// RecipeInput carries the raw multipart form values of a recipe submission.
// Ingredients and Steps arrive as JSON text fields, numbers as strings.
type RecipeInput struct {
	Title       string
	Description string
	Servings    string
	CookingTime string
	Ingredients string
	Steps       string
}

// ParsedRecipe is a validated recipe payload ready for persistence.
type ParsedRecipe struct {
	Title       string
	Description string
	Servings    int
	CookingTime int
	Ingredients model.IngredientList
	Steps       model.StepList
}

// Parse validates and normalizes a submission. Step order is always
// re-derived from position; a client-supplied order field is ignored.
func (in RecipeInput) Parse() (*ParsedRecipe, error) {
	if in.Title == "" || in.Description == "" || in.Ingredients == "" || in.Steps == "" {
		return nil, apperrors.NewValidationError("please provide title, description, ingredients, and steps")
	}

	var ingredients []model.Ingredient
	if err := json.Unmarshal([]byte(in.Ingredients), &ingredients); err != nil || ingredients == nil {
		// JSON null decodes without error but is not an array
		return nil, apperrors.NewValidationError("invalid ingredients format: expected a JSON array")
	}
	for _, ing := range ingredients {
		if strings.TrimSpace(ing.Item) == "" ||
			strings.TrimSpace(ing.Quantity) == "" ||
			strings.TrimSpace(ing.Unit) == "" {
			return nil, apperrors.NewValidationError("invalid ingredients format: each ingredient must have item, quantity, and unit")
		}
	}

	var steps []model.Step
	if err := json.Unmarshal([]byte(in.Steps), &steps); err != nil || steps == nil {
		return nil, apperrors.NewValidationError("invalid steps format: expected a JSON array")
	}
	for i := range steps {
		if strings.TrimSpace(steps[i].Description) == "" {
			return nil, apperrors.NewValidationError("invalid steps format: each step must have a description")
		}
		steps[i].Order = i + 1
	}

	servings, err := strconv.Atoi(in.Servings)
	if err != nil {
		return nil, apperrors.NewValidationError("servings must be a number")
	}
	cookingTime, err := strconv.Atoi(in.CookingTime)
	if err != nil {
		return nil, apperrors.NewValidationError("cookingTime must be a number")
	}

	return &ParsedRecipe{
		Title:       in.Title,
		Description: in.Description,
		Servings:    servings,
		CookingTime: cookingTime,
		Ingredients: ingredients,
		Steps:       steps,
	}, nil
}
