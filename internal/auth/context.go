package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ErrNoIdentity is returned when the request context carries no validated token.
var ErrNoIdentity = errors.New("no authenticated identity in request context")

// ClaimsFromContext returns the claims attached by the JWT middleware.
func ClaimsFromContext(c echo.Context) (*Claims, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil, ErrNoIdentity
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrNoIdentity
	}
	return claims, nil
}

// UserIDFromContext returns the acting user's id for the current request.
func UserIDFromContext(c echo.Context) (uuid.UUID, error) {
	claims, err := ClaimsFromContext(c)
	if err != nil {
		return uuid.Nil, err
	}
	if claims.UserID == uuid.Nil {
		return uuid.Nil, ErrNoIdentity
	}
	return claims.UserID, nil
}
