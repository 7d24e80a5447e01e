package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"recipeshare/internal/auth"
	apperrors "recipeshare/internal/errors"
	"recipeshare/internal/presenter"
	"recipeshare/internal/service"
	"recipeshare/internal/upload"
)

// RecipeHandler handles recipe endpoints.
type RecipeHandler struct {
	recipeService service.RecipeService
	saver         *upload.Saver
}

// NewRecipeHandler creates a new recipe handler.
func NewRecipeHandler(recipeService service.RecipeService, saver *upload.Saver) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
		saver:         saver,
	}
}

// ListPublic godoc
// @Summary List all recipes, no authentication required
// @Tags recipes
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} errors.ErrorResponse
// @Router /recipes/public [get]
func (h *RecipeHandler) ListPublic(c echo.Context) error {
	recipes, err := h.recipeService.ListPublic(c.Request().Context())
	if err != nil {
		return translate(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"recipes": presenter.PublicRecipes(recipes, baseURL(c)),
	})
}

// ListOwn godoc
// @Summary List the caller's own recipes
// @Tags recipes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /recipes [get]
func (h *RecipeHandler) ListOwn(c echo.Context) error {
	userID, err := auth.UserIDFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	recipes, err := h.recipeService.ListOwn(c.Request().Context(), userID)
	if err != nil {
		return translate(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"recipes": presenter.OwnedRecipes(recipes, baseURL(c)),
	})
}

// Create godoc
// @Summary Create a recipe
// @Tags recipes
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param description formData string true "Description"
// @Param servings formData string true "Serving count"
// @Param cookingTime formData string true "Cooking time in minutes"
// @Param ingredients formData string true "Ingredient list as JSON text"
// @Param steps formData string true "Step list as JSON text"
// @Param image formData file false "Recipe image"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Router /recipes [post]
func (h *RecipeHandler) Create(c echo.Context) error {
	userID, err := auth.UserIDFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	imagePath, httpErr := h.saveImage(c)
	if httpErr != nil {
		return httpErr
	}

	recipe, err := h.recipeService.Create(c.Request().Context(), userID, recipeInput(c), imagePath)
	if err != nil {
		return translate(err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "recipe added successfully",
		"recipe":  presenter.OwnedRecipe(recipe, baseURL(c)),
	})
}

// Update godoc
// @Summary Update an owned recipe
// @Tags recipes
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Recipe ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /recipes/{id} [put]
func (h *RecipeHandler) Update(c echo.Context) error {
	userID, err := auth.UserIDFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return translate(apperrors.ErrRecipeNotFound)
	}

	imagePath, httpErr := h.saveImage(c)
	if httpErr != nil {
		return httpErr
	}

	recipe, err := h.recipeService.Update(c.Request().Context(), id, userID, recipeInput(c), imagePath)
	if err != nil {
		return translate(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "recipe updated successfully",
		"recipe":  presenter.OwnedRecipe(recipe, baseURL(c)),
	})
}

// Delete godoc
// @Summary Delete an owned recipe
// @Tags recipes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Recipe ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /recipes/{id} [delete]
func (h *RecipeHandler) Delete(c echo.Context) error {
	userID, err := auth.UserIDFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return translate(apperrors.ErrRecipeNotFound)
	}

	if err := h.recipeService.Delete(c.Request().Context(), id, userID); err != nil {
		return translate(err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "recipe deleted successfully",
	})
}

// recipeInput collects the raw multipart form fields of a submission.
func recipeInput(c echo.Context) service.RecipeInput {
	return service.RecipeInput{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Servings:    c.FormValue("servings"),
		CookingTime: c.FormValue("cookingTime"),
		Ingredients: c.FormValue("ingredients"),
		Steps:       c.FormValue("steps"),
	}
}

// saveImage stores the optional image part and returns its public path,
// or "" when the form carried no image.
func (h *RecipeHandler) saveImage(c echo.Context) (string, *echo.HTTPError) {
	file, err := c.FormFile("image")
	if err != nil {
		// no image part in the form
		return "", nil
	}

	path, err := h.saver.Save(file)
	if err != nil {
		return "", translateUpload(err)
	}
	return path, nil
}
