package presenter

import (
	"time"

	"github.com/google/uuid"

	"recipeshare/internal/model"
)

// AnonymousAuthor is shown when a recipe's owner has no display name.
const AnonymousAuthor = "Anonymous"

// PublicRecipeView is the shape of a recipe on the public listing.
// The owner appears only as a display name, never as a raw identifier.
type PublicRecipeView struct {
	ID          uuid.UUID          `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Servings    int                `json:"servings"`
	CookingTime int                `json:"cookingTime"`
	Ingredients []model.Ingredient `json:"ingredients"`
	Steps       []model.Step       `json:"steps"`
	ImageURL    *string            `json:"imageUrl"`
	Author      string             `json:"author"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// OwnedRecipeView is the shape of a recipe on the authenticated "my recipes"
// listing: the raw owner id instead of an author name.
type OwnedRecipeView struct {
	ID          uuid.UUID          `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Servings    int                `json:"servings"`
	CookingTime int                `json:"cookingTime"`
	Ingredients []model.Ingredient `json:"ingredients"`
	Steps       []model.Step       `json:"steps"`
	ImageURL    *string            `json:"imageUrl"`
	CreatedAt   time.Time          `json:"createdAt"`
	UserID      uuid.UUID          `json:"userId"`
}

// FavoriteView is the shape of one entry on the favorites listing. It is
// flattened onto the favorited recipe; CreatedAt is when the favorite was
// added, not when the recipe was created.
type FavoriteView struct {
	ID          uuid.UUID          `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Servings    int                `json:"servings"`
	CookingTime int                `json:"cookingTime"`
	Ingredients []model.Ingredient `json:"ingredients"`
	ImageURL    *string            `json:"imageUrl"`
	Author      string             `json:"author"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// ImageURL resolves a stored relative image path against the requesting
// deployment's base URL. The same stored path works across environments
// because the absolute form is computed per request.
func ImageURL(baseURL, path string) *string {
	if path == "" {
		return nil
	}
	url := baseURL + path
	return &url
}

// AuthorName returns the owner's display name, defaulting when unset.
func AuthorName(user *model.User) string {
	if user == nil || user.Name == "" {
		return AnonymousAuthor
	}
	return user.Name
}

// PublicRecipe shapes a recipe for the public listing.
func PublicRecipe(r *model.Recipe, baseURL string) PublicRecipeView {
	return PublicRecipeView{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Servings:    r.Servings,
		CookingTime: r.CookingTime,
		Ingredients: ingredients(r),
		Steps:       steps(r),
		ImageURL:    ImageURL(baseURL, r.Image),
		Author:      AuthorName(r.User),
		CreatedAt:   r.CreatedAt,
	}
}

// PublicRecipes shapes a slice of recipes for the public listing.
func PublicRecipes(recipes []model.Recipe, baseURL string) []PublicRecipeView {
	views := make([]PublicRecipeView, 0, len(recipes))
	for i := range recipes {
		views = append(views, PublicRecipe(&recipes[i], baseURL))
	}
	return views
}

// OwnedRecipe shapes a recipe for the caller's own listing.
func OwnedRecipe(r *model.Recipe, baseURL string) OwnedRecipeView {
	return OwnedRecipeView{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Servings:    r.Servings,
		CookingTime: r.CookingTime,
		Ingredients: ingredients(r),
		Steps:       steps(r),
		ImageURL:    ImageURL(baseURL, r.Image),
		CreatedAt:   r.CreatedAt,
		UserID:      r.UserID,
	}
}

// OwnedRecipes shapes a slice of recipes for the caller's own listing.
func OwnedRecipes(recipes []model.Recipe, baseURL string) []OwnedRecipeView {
	views := make([]OwnedRecipeView, 0, len(recipes))
	for i := range recipes {
		views = append(views, OwnedRecipe(&recipes[i], baseURL))
	}
	return views
}

// Favorites shapes favorite edges for the favorites listing. Edges whose
// recipe is gone are skipped rather than rendered half-empty.
func Favorites(favorites []model.Favorite, baseURL string) []FavoriteView {
	views := make([]FavoriteView, 0, len(favorites))
	for i := range favorites {
		fav := &favorites[i]
		if fav.Recipe == nil {
			continue
		}
		views = append(views, FavoriteView{
			ID:          fav.Recipe.ID,
			Title:       fav.Recipe.Title,
			Description: fav.Recipe.Description,
			Servings:    fav.Recipe.Servings,
			CookingTime: fav.Recipe.CookingTime,
			Ingredients: ingredients(fav.Recipe),
			ImageURL:    ImageURL(baseURL, fav.Recipe.Image),
			Author:      AuthorName(fav.Recipe.User),
			CreatedAt:   fav.CreatedAt,
		})
	}
	return views
}

func ingredients(r *model.Recipe) []model.Ingredient {
	if r.Ingredients == nil {
		return []model.Ingredient{}
	}
	return r.Ingredients
}

// steps re-derives order from position so a view never leaks whatever the
// column happens to hold.
func steps(r *model.Recipe) []model.Step {
	out := make([]model.Step, 0, len(r.Steps))
	for i, s := range r.Steps {
		out = append(out, model.Step{Order: i + 1, Description: s.Description})
	}
	return out
}
