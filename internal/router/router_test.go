package router

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipeshare/internal/auth"
	"recipeshare/internal/config"
	"recipeshare/internal/handler"
	"recipeshare/internal/model"
	"recipeshare/internal/service"
	"recipeshare/internal/upload"
)

const testSecret = "test-secret"

type stubAuthService struct{}

func (stubAuthService) Register(ctx context.Context, email, password string) (*model.User, error) {
	return &model.User{Email: email}, nil
}

func (stubAuthService) Login(ctx context.Context, email, password string) (string, error) {
	return "", service.ErrInvalidCredentials
}

type stubRecipeService struct{}

func (stubRecipeService) ListPublic(ctx context.Context) ([]model.Recipe, error) {
	return []model.Recipe{}, nil
}

func (stubRecipeService) ListOwn(ctx context.Context, userID uuid.UUID) ([]model.Recipe, error) {
	return []model.Recipe{}, nil
}

func (stubRecipeService) Create(ctx context.Context, userID uuid.UUID, input service.RecipeInput, imagePath string) (*model.Recipe, error) {
	return nil, errors.New("not under test")
}

func (stubRecipeService) Update(ctx context.Context, id, userID uuid.UUID, input service.RecipeInput, imagePath string) (*model.Recipe, error) {
	return nil, errors.New("not under test")
}

func (stubRecipeService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return errors.New("not under test")
}

type stubFavoriteService struct{}

func (stubFavoriteService) Add(ctx context.Context, userID, recipeID uuid.UUID) (*model.Favorite, error) {
	return nil, errors.New("not under test")
}

func (stubFavoriteService) Remove(ctx context.Context, userID, recipeID uuid.UUID) error {
	return errors.New("not under test")
}

func (stubFavoriteService) List(ctx context.Context, userID uuid.UUID) ([]model.Favorite, error) {
	return []model.Favorite{}, nil
}

type stubProfileService struct{}

func (stubProfileService) Get(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	return &model.User{ID: userID}, nil
}

func (stubProfileService) UpdateName(ctx context.Context, userID uuid.UUID, name string) (*model.User, error) {
	return &model.User{ID: userID, Name: name}, nil
}

func (stubProfileService) UpdatePhoto(ctx context.Context, userID uuid.UUID, photoPath string) (*model.User, error) {
	return &model.User{ID: userID, Photo: photoPath}, nil
}

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := &config.Config{
		JWTSecret:   testSecret,
		UploadDir:   t.TempDir(),
		CORSOrigins: []string{"http://localhost:3000"},
	}

	saver, err := upload.NewSaver(cfg.UploadDir)
	require.NoError(t, err)

	e := echo.New()
	Register(
		e,
		cfg,
		handler.NewAuthHandler(stubAuthService{}),
		handler.NewRecipeHandler(stubRecipeService{}, saver),
		handler.NewFavoriteHandler(stubFavoriteService{}),
		handler.NewProfileHandler(stubProfileService{}, saver),
	)
	return e
}

func validToken(t *testing.T) string {
	t.Helper()
	token, err := auth.NewJWTService(testSecret).GenerateToken(uuid.New(), "test@example.com")
	require.NoError(t, err)
	return token
}

func expiredToken(t *testing.T) string {
	t.Helper()
	claims := &auth.Claims{
		UserID: uuid.New(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func do(e *echo.Echo, method, path, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if bearer != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// The public listing must answer without any token while the rest of the
// surface sits behind the gate.
func TestRouter_PublicVersusProtected(t *testing.T) {
	e := newTestServer(t)

	assert.Equal(t, http.StatusOK, do(e, http.MethodGet, "/recipes/public", "").Code)
	assert.Equal(t, http.StatusOK, do(e, http.MethodGet, "/healthz", "").Code)

	protected := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/recipes"},
		{http.MethodPost, "/recipes"},
		{http.MethodPut, "/recipes/" + uuid.NewString()},
		{http.MethodDelete, "/recipes/" + uuid.NewString()},
		{http.MethodGet, "/favorites"},
		{http.MethodPost, "/favorites"},
		{http.MethodDelete, "/favorites/" + uuid.NewString()},
		{http.MethodGet, "/profile"},
		{http.MethodPut, "/profile/name"},
		{http.MethodPut, "/profile/photo"},
		{http.MethodPost, "/auth/verify-token"},
	}
	for _, route := range protected {
		rec := do(e, route.method, route.path, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s without a token", route.method, route.path)
	}
}

func TestRouter_AcceptsValidToken(t *testing.T) {
	e := newTestServer(t)
	token := validToken(t)

	assert.Equal(t, http.StatusOK, do(e, http.MethodGet, "/recipes", token).Code)
	assert.Equal(t, http.StatusOK, do(e, http.MethodGet, "/favorites", token).Code)
	assert.Equal(t, http.StatusOK, do(e, http.MethodGet, "/profile", token).Code)
	assert.Equal(t, http.StatusOK, do(e, http.MethodPost, "/auth/verify-token", token).Code)
}

func TestRouter_CORSAllowedOrigins(t *testing.T) {
	e := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/recipes/public", nil)
	req.Header.Set(echo.HeaderOrigin, "http://localhost:3000")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))

	req = httptest.NewRequest(http.MethodGet, "/recipes/public", nil)
	req.Header.Set(echo.HeaderOrigin, "http://evil.example")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestRouter_RejectsBadTokens(t *testing.T) {
	e := newTestServer(t)

	assert.Equal(t, http.StatusUnauthorized, do(e, http.MethodGet, "/recipes", expiredToken(t)).Code)
	assert.Equal(t, http.StatusUnauthorized, do(e, http.MethodGet, "/recipes", "garbage").Code)
}
