package main

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"recipeshare/internal/auth"
	"recipeshare/internal/cache"
	"recipeshare/internal/config"
	"recipeshare/internal/db"
	"recipeshare/internal/handler"
	"recipeshare/internal/model"
	"recipeshare/internal/repository"
	"recipeshare/internal/router"
	"recipeshare/internal/service"
	"recipeshare/internal/upload"
)

// @title Recipe Sharing API
// @version 1.0
// @description Recipe sharing API with JWT authentication, image uploads, and per-user favorites.
// @host localhost:5000
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Recipe{},
		&model.Favorite{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	saver, err := upload.NewSaver(cfg.UploadDir)
	if err != nil {
		log.Fatalf("upload dir: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	recipeRepo := repository.NewRecipeRepository(gormDB)
	favoriteRepo := repository.NewFavoriteRepository(gormDB)

	// Initialize services
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	authService := service.NewAuthService(userRepo, jwtService)
	recipeService := service.NewRecipeService(recipeRepo, favoriteRepo, cacheClient)
	favoriteService := service.NewFavoriteService(favoriteRepo, recipeRepo)
	profileService := service.NewProfileService(userRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	recipeHandler := handler.NewRecipeHandler(recipeService, saver)
	favoriteHandler := handler.NewFavoriteHandler(favoriteService)
	profileHandler := handler.NewProfileHandler(profileService, saver)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		recipeHandler,
		favoriteHandler,
		profileHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
