package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"recipeshare/internal/auth"
	apperrors "recipeshare/internal/errors"
	"recipeshare/internal/service"
	"recipeshare/internal/upload"
)

// ProfileHandler handles profile endpoints.
type ProfileHandler struct {
	profileService service.ProfileService
	saver          *upload.Saver
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(profileService service.ProfileService, saver *upload.Saver) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		saver:          saver,
	}
}

// UpdateNameRequest represents a display-name update.
type UpdateNameRequest struct {
	Name string `json:"name" validate:"required"`
}

// Get godoc
// @Summary Get the caller's profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	userID, err := auth.UserIDFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	user, err := h.profileService.Get(c.Request().Context(), userID)
	if err != nil {
		return translate(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"user": user})
}

// UpdatePhoto godoc
// @Summary Update the caller's profile photo
// @Tags profile
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param photo formData file true "Profile photo"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /profile/photo [put]
func (h *ProfileHandler) UpdatePhoto(c echo.Context) error {
	userID, err := auth.UserIDFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	file, err := c.FormFile("photo")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "please upload a file",
			Code:  "MISSING_FILE",
		})
	}

	path, err := h.saver.Save(file)
	if err != nil {
		return translateUpload(err)
	}

	user, err := h.profileService.UpdatePhoto(c.Request().Context(), userID, path)
	if err != nil {
		return translate(err)
	}

	return c.JSON(http.StatusOK, map[string]string{"photo": user.Photo})
}

// UpdateName godoc
// @Summary Update the caller's display name
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateNameRequest true "New name"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /profile/name [put]
func (h *ProfileHandler) UpdateName(c echo.Context) error {
	userID, err := auth.UserIDFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	var req UpdateNameRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.profileService.UpdateName(c.Request().Context(), userID, req.Name)
	if err != nil {
		return translate(err)
	}

	return c.JSON(http.StatusOK, map[string]string{"name": user.Name})
}
