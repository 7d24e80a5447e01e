package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"recipeshare/internal/auth"
	apperrors "recipeshare/internal/errors"
	"recipeshare/internal/presenter"
	"recipeshare/internal/service"
)

// FavoriteHandler handles favorite endpoints.
type FavoriteHandler struct {
	favoriteService service.FavoriteService
}

// NewFavoriteHandler creates a new favorite handler.
func NewFavoriteHandler(favoriteService service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

// AddFavoriteRequest represents a favorite creation request.
type AddFavoriteRequest struct {
	RecipeID string `json:"recipeId" validate:"required"`
}

// Add godoc
// @Summary Favorite a recipe
// @Tags favorites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddFavoriteRequest true "Recipe to favorite"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /favorites [post]
func (h *FavoriteHandler) Add(c echo.Context) error {
	userID, err := auth.UserIDFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	var req AddFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	recipeID, err := uuid.Parse(req.RecipeID)
	if err != nil {
		return translate(apperrors.ErrRecipeNotFound)
	}

	favorite, err := h.favoriteService.Add(c.Request().Context(), userID, recipeID)
	if err != nil {
		return translate(err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success":  true,
		"message":  "added to favorites",
		"favorite": favorite,
	})
}

// Remove godoc
// @Summary Unfavorite a recipe
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param recipeId path string true "Recipe ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /favorites/{recipeId} [delete]
func (h *FavoriteHandler) Remove(c echo.Context) error {
	userID, err := auth.UserIDFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	recipeID, err := uuid.Parse(c.Param("recipeId"))
	if err != nil {
		return translate(apperrors.ErrFavoriteNotFound)
	}

	if err := h.favoriteService.Remove(c.Request().Context(), userID, recipeID); err != nil {
		return translate(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "removed from favorites",
	})
}

// List godoc
// @Summary List the caller's favorites
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} errors.ErrorResponse
// @Router /favorites [get]
func (h *FavoriteHandler) List(c echo.Context) error {
	userID, err := auth.UserIDFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	favorites, err := h.favoriteService.List(c.Request().Context(), userID)
	if err != nil {
		return translate(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":   true,
		"favorites": presenter.Favorites(favorites, baseURL(c)),
	})
}
