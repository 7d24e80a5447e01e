package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrRecipeNotFound is returned when the referenced recipe does not exist.
	ErrRecipeNotFound = errors.New("recipe not found")
	// ErrUserNotFound is returned when a user record is absent.
	ErrUserNotFound = errors.New("user not found")
	// ErrFavoriteNotFound is returned when no favorite edge matches the caller.
	ErrFavoriteNotFound = errors.New("favorite not found")
	// ErrNotRecipeOwner is returned when the acting user does not own the recipe.
	ErrNotRecipeOwner = errors.New("not authorized to modify this recipe")
	// ErrFavoriteExists is returned when the (user, recipe) pair is already favorited.
	ErrFavoriteExists = errors.New("recipe already in favorites")
	// ErrEmailTaken is returned when registering an already registered email.
	ErrEmailTaken = errors.New("email already registered")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Every failure a handler
// sees goes through here; nothing leaves the process unformatted.
func MapErrorToHTTP(err error) *HTTPError {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return NewHTTPError(http.StatusBadRequest, validationErr.Message, "VALIDATION_ERROR")
	}

	switch {
	case errors.Is(err, ErrRecipeNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "RECIPE_NOT_FOUND")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrFavoriteNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "FAVORITE_NOT_FOUND")
	case errors.Is(err, ErrNotRecipeOwner):
		return NewHTTPError(http.StatusForbidden, err.Error(), "NOT_RECIPE_OWNER")
	case errors.Is(err, ErrFavoriteExists):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "FAVORITE_EXISTS")
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMAIL_TAKEN")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
