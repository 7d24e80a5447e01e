package presenter

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"recipeshare/internal/model"
)

func sampleRecipe() model.Recipe {
	return model.Recipe{
		ID:          uuid.New(),
		Title:       "Nasi Goreng",
		Description: "Fried rice",
		Servings:    2,
		CookingTime: 20,
		Ingredients: model.IngredientList{{Item: "rice", Quantity: "2", Unit: "cups"}},
		Steps:       model.StepList{{Order: 4, Description: "b"}, {Order: 1, Description: "a"}},
		Image:       "/uploads/123.jpg",
		UserID:      uuid.New(),
		CreatedAt:   time.Now(),
		User:        &model.User{Name: "Sari"},
	}
}

func TestImageURL(t *testing.T) {
	url := ImageURL("https://example.com", "/uploads/123.jpg")
	assert.NotNil(t, url)
	assert.Equal(t, "https://example.com/uploads/123.jpg", *url)

	assert.Nil(t, ImageURL("https://example.com", ""))
}

func TestPublicRecipe(t *testing.T) {
	recipe := sampleRecipe()
	view := PublicRecipe(&recipe, "http://localhost:5000")

	assert.Equal(t, "Sari", view.Author)
	assert.Equal(t, "http://localhost:5000/uploads/123.jpg", *view.ImageURL)
	// step order comes from position, not from the stored value
	assert.Equal(t, []model.Step{
		{Order: 1, Description: "b"},
		{Order: 2, Description: "a"},
	}, view.Steps)
}

func TestPublicRecipe_AnonymousAuthor(t *testing.T) {
	recipe := sampleRecipe()
	recipe.User = nil
	assert.Equal(t, AnonymousAuthor, PublicRecipe(&recipe, "http://h").Author)

	recipe.User = &model.User{Name: ""}
	assert.Equal(t, AnonymousAuthor, PublicRecipe(&recipe, "http://h").Author)
}

// The public view carries a display name and no raw owner id; the owned view
// carries the raw owner id and no display name.
func TestAuthorFieldAsymmetry(t *testing.T) {
	recipe := sampleRecipe()

	public := PublicRecipe(&recipe, "http://h")
	owned := OwnedRecipe(&recipe, "http://h")

	assert.Equal(t, "Sari", public.Author)
	assert.Equal(t, recipe.UserID, owned.UserID)
}

func TestFavorites(t *testing.T) {
	recipe := sampleRecipe()
	favoritedAt := time.Now().Add(-time.Hour)
	favorites := []model.Favorite{
		{ID: uuid.New(), RecipeID: recipe.ID, Recipe: &recipe, CreatedAt: favoritedAt},
		{ID: uuid.New(), RecipeID: uuid.New(), Recipe: nil}, // dangling edge
	}

	views := Favorites(favorites, "http://h")
	assert.Len(t, views, 1)
	assert.Equal(t, recipe.ID, views[0].ID)
	assert.Equal(t, "Sari", views[0].Author)
	assert.Equal(t, favoritedAt, views[0].CreatedAt)
}

func TestPublicRecipes_EmptyIngredients(t *testing.T) {
	recipe := sampleRecipe()
	recipe.Ingredients = nil

	views := PublicRecipes([]model.Recipe{recipe}, "http://h")
	assert.NotNil(t, views[0].Ingredients)
	assert.Empty(t, views[0].Ingredients)
}
