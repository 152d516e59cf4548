package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"zentproje-backend/internal/config"
	"zentproje-backend/internal/domain"
	"zentproje-backend/internal/mocks"
	"zentproje-backend/internal/service/auth"
)

func testApp(t *testing.T) (*fiber.App, auth.Service, *mocks.UserRepository) {
	cfg := &config.Config{
		JWTSecret:     "test-secret",
		SessionExpiry: time.Hour,
		AdminPassword: "hunter2hunter2",
	}
	userRepo := new(mocks.UserRepository)
	authService := auth.NewService(userRepo, nil, cfg)

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/user-only", UserRequired(authService), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": GetCurrentUserID(c)})
	})
	app.Get("/admin-only", AdminRequired(authService), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"subject": GetAdminSubject(c)})
	})

	return app, authService, userRepo
}

func testUser(t *testing.T) *domain.User {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	return &domain.User{
		ID:           uuid.New(),
		Email:        "musteri@zentproje.com",
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
	}
}

func TestUserRequiredRejectsMissingToken(t *testing.T) {
	app, _, _ := testApp(t)

	req := httptest.NewRequest(http.MethodGet, "/user-only", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestUserRequiredRejectsGarbageToken(t *testing.T) {
	app, _, _ := testApp(t)

	req := httptest.NewRequest(http.MethodGet, "/user-only", nil)
	req.AddCookie(&http.Cookie{Name: UserCookieName, Value: "not-a-jwt"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestUserRequiredAcceptsCookieAndBearer(t *testing.T) {
	app, authService, userRepo := testApp(t)

	user := testUser(t)
	userRepo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)
	userRepo.On("GetByID", mock.Anything, user.ID).Return(user, nil)

	_, token, err := authService.Login(context.Background(), domain.LoginInput{
		Email:    user.Email,
		Password: "secret",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/user-only", nil)
	req.AddCookie(&http.Cookie{Name: UserCookieName, Value: token})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/user-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAdminRequiredAcceptsBackOfficeToken(t *testing.T) {
	app, authService, _ := testApp(t)

	token, err := authService.AdminLogin(context.Background(), domain.AdminLoginInput{
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.AddCookie(&http.Cookie{Name: AdminCookieName, Value: token})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAdminRequiredRejectsUserRole(t *testing.T) {
	app, authService, userRepo := testApp(t)

	user := testUser(t)
	userRepo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	_, token, err := authService.Login(context.Background(), domain.LoginInput{
		Email:    user.Email,
		Password: "secret",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.AddCookie(&http.Cookie{Name: AdminCookieName, Value: token})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAdminRequiredRejectsMissingToken(t *testing.T) {
	app, _, _ := testApp(t)

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
