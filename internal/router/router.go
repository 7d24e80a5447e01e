package router

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"recipeshare/internal/auth"
	"recipeshare/internal/config"
	apperrors "recipeshare/internal/errors"
	"recipeshare/internal/handler"
)

// Register wires routes and middleware. Whether a route requires identity is
// decided here, per route, by attaching the JWT middleware at registration;
// the gate itself never inspects paths.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	recipeHandler *handler.RecipeHandler,
	favoriteHandler *handler.FavoriteHandler,
	profileHandler *handler.ProfileHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
	}))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Uploaded images are served statically under generated names.
	e.Static("/uploads", cfg.UploadDir)

	requireAuth := echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(cfg.JWTSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		// Absent and invalid tokens both answer 401; the default handler
		// would turn a missing token into a 400.
		ErrorHandler: func(c echo.Context, err error) error {
			message := "token is not valid"
			if errors.Is(err, echojwt.ErrJWTMissing) {
				message = "token not provided"
			}
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: message,
				Code:  "INVALID_TOKEN",
			})
		},
	})

	// Public routes
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/recipes/public", recipeHandler.ListPublic)

	// Protected routes (bearer token required)
	e.POST("/auth/verify-token", authHandler.VerifyToken, requireAuth)

	recipes := e.Group("/recipes", requireAuth)
	recipes.GET("", recipeHandler.ListOwn)
	recipes.POST("", recipeHandler.Create)
	recipes.PUT("/:id", recipeHandler.Update)
	recipes.DELETE("/:id", recipeHandler.Delete)

	favorites := e.Group("/favorites", requireAuth)
	favorites.GET("", favoriteHandler.List)
	favorites.POST("", favoriteHandler.Add)
	favorites.DELETE("/:recipeId", favoriteHandler.Remove)

	profile := e.Group("/profile", requireAuth)
	profile.GET("", profileHandler.Get)
	profile.PUT("/photo", profileHandler.UpdatePhoto)
	profile.PUT("/name", profileHandler.UpdateName)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
