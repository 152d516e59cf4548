package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"zentproje-backend/internal/config"
	"zentproje-backend/internal/domain"
	"zentproje-backend/internal/mocks"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:     "test-secret",
		SessionExpiry: time.Hour,
		AdminPassword: "hunter2hunter2",
	}
}

func TestRegisterAndValidate(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	notifSvc := new(mocks.NotificationService)

	userRepo.On("ExistsByEmail", mock.Anything, "yeni@zentproje.com").Return(false, nil)
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)
	notifSvc.On("NotifyNewUser", mock.Anything, mock.Anything).Return(nil).Once()

	svc := NewService(userRepo, notifSvc, testConfig())

	user, token, err := svc.Register(context.Background(), domain.RegisterInput{
		Name:     "Yeni Kullanıcı",
		Email:    "yeni@zentproje.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.NotEqual(t, "correct-horse", user.PasswordHash)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.Subject)
	assert.Equal(t, domain.RoleUser, claims.Role)

	notifSvc.AssertExpectations(t)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	userRepo.On("ExistsByEmail", mock.Anything, mock.Anything).Return(true, nil)

	svc := NewService(userRepo, nil, testConfig())

	_, _, err := svc.Register(context.Background(), domain.RegisterInput{
		Name:     "X",
		Email:    "taken@zentproje.com",
		Password: "correct-horse",
	})
	assert.ErrorIs(t, err, domain.ErrEmailExists)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := &domain.User{
		ID:           uuid.New(),
		Email:        "musteri@zentproje.com",
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
	}

	userRepo := new(mocks.UserRepository)
	userRepo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	svc := NewService(userRepo, nil, testConfig())

	got, token, err := svc.Login(context.Background(), domain.LoginInput{
		Email:    user.Email,
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.NotEmpty(t, token)

	_, _, err = svc.Login(context.Background(), domain.LoginInput{
		Email:    user.Email,
		Password: "wrong-horse",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	userRepo.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, nil)

	svc := NewService(userRepo, nil, testConfig())

	_, _, err := svc.Login(context.Background(), domain.LoginInput{
		Email:    "ghost@zentproje.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAdminLogin(t *testing.T) {
	svc := NewService(new(mocks.UserRepository), nil, testConfig())

	token, err := svc.AdminLogin(context.Background(), domain.AdminLoginInput{Password: "hunter2hunter2"})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, AdminSubject, claims.Subject)
	assert.Equal(t, domain.RoleAdmin, claims.Role)

	_, err = svc.AdminLogin(context.Background(), domain.AdminLoginInput{Password: "guess"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAdminLoginDisabledWithoutPassword(t *testing.T) {
	cfg := testConfig()
	cfg.AdminPassword = ""
	svc := NewService(new(mocks.UserRepository), nil, cfg)

	_, err := svc.AdminLogin(context.Background(), domain.AdminLoginInput{Password: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	svc := NewService(new(mocks.UserRepository), nil, testConfig())

	token, err := svc.AdminLogin(context.Background(), domain.AdminLoginInput{Password: "hunter2hunter2"})
	require.NoError(t, err)

	otherCfg := testConfig()
	otherCfg.JWTSecret = "different-secret"
	other := NewService(new(mocks.UserRepository), nil, otherCfg)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)

	_, err = svc.ValidateToken(token + "x")
	assert.Error(t, err)
}
