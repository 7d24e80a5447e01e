package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "recipeshare/internal/errors"
	"recipeshare/internal/upload"
)

// baseURL reconstructs the requesting deployment's base URL so stored
// relative upload paths resolve correctly in every environment.
func baseURL(c echo.Context) string {
	return c.Scheme() + "://" + c.Request().Host
}

// translate converts a domain error into the echo error envelope.
func translate(err error) *echo.HTTPError {
	httpErr := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// translateUpload handles upload rejections separately: they are client
// errors with specific messages, not internal failures.
func translateUpload(err error) *echo.HTTPError {
	if errors.Is(err, upload.ErrNotImage) || errors.Is(err, upload.ErrFileTooLarge) {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: err.Error(),
			Code:  "INVALID_UPLOAD",
		})
	}
	return echo.NewHTTPError(http.StatusInternalServerError, apperrors.ErrorResponse{
		Error: "failed to store upload",
		Code:  "UPLOAD_FAILED",
	})
}
