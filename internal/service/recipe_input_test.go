package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "recipeshare/internal/errors"
)

func validInput() RecipeInput {
	return RecipeInput{
		Title:       "Nasi Goreng",
		Description: "Fried rice",
		Servings:    "2",
		CookingTime: "20",
		Ingredients: `[{"item":"rice","quantity":"2","unit":"cups"}]`,
		Steps:       `[{"description":"fry the rice"}]`,
	}
}

func TestRecipeInput_Parse(t *testing.T) {
	parsed, err := validInput().Parse()
	assert.NoError(t, err)
	assert.Equal(t, "Nasi Goreng", parsed.Title)
	assert.Equal(t, 2, parsed.Servings)
	assert.Equal(t, 20, parsed.CookingTime)
	assert.Len(t, parsed.Ingredients, 1)
	assert.Len(t, parsed.Steps, 1)
	assert.Equal(t, 1, parsed.Steps[0].Order)
}

// Client-supplied order values are overwritten with the 1-based position.
func TestRecipeInput_Parse_RenumbersSteps(t *testing.T) {
	in := validInput()
	in.Steps = `[{"order":9,"description":"b"},{"order":1,"description":"a"}]`

	parsed, err := in.Parse()
	assert.NoError(t, err)
	assert.Len(t, parsed.Steps, 2)
	assert.Equal(t, 1, parsed.Steps[0].Order)
	assert.Equal(t, "b", parsed.Steps[0].Description)
	assert.Equal(t, 2, parsed.Steps[1].Order)
	assert.Equal(t, "a", parsed.Steps[1].Description)
}

func TestRecipeInput_Parse_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RecipeInput)
	}{
		{"missing title", func(in *RecipeInput) { in.Title = "" }},
		{"missing description", func(in *RecipeInput) { in.Description = "" }},
		{"missing ingredients", func(in *RecipeInput) { in.Ingredients = "" }},
		{"missing steps", func(in *RecipeInput) { in.Steps = "" }},
		{"malformed ingredients json", func(in *RecipeInput) { in.Ingredients = `{"item":"rice"}` }},
		{"null ingredients", func(in *RecipeInput) { in.Ingredients = `null` }},
		{"ingredient without unit", func(in *RecipeInput) {
			in.Ingredients = `[{"item":"rice","quantity":"2","unit":""}]`
		}},
		{"malformed steps json", func(in *RecipeInput) { in.Steps = `not json` }},
		{"null steps", func(in *RecipeInput) { in.Steps = `null` }},
		{"step without description", func(in *RecipeInput) { in.Steps = `[{"description":"  "}]` }},
		{"non-numeric servings", func(in *RecipeInput) { in.Servings = "two" }},
		{"non-numeric cooking time", func(in *RecipeInput) { in.CookingTime = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			parsed, err := in.Parse()
			assert.Nil(t, parsed)

			var validationErr *apperrors.ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}
