package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"zentproje-backend/internal/config"
	"zentproje-backend/internal/domain"
	"zentproje-backend/internal/repository"
	"zentproje-backend/internal/service/notification"
)

// AdminSubject is the token subject for the back-office session, which is
// authenticated by the shared admin password and has no user row.
const AdminSubject = "admin"

type Claims struct {
	Role domain.UserRole `json:"role"`
	jwt.RegisteredClaims
}

type Service interface {
	Register(ctx context.Context, input domain.RegisterInput) (*domain.User, string, error)
	Login(ctx context.Context, input domain.LoginInput) (*domain.User, string, error)
	AdminLogin(ctx context.Context, input domain.AdminLoginInput) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type service struct {
	userRepo repository.UserRepository
	notifSvc notification.Service
	cfg      *config.Config
}

func NewService(userRepo repository.UserRepository, notifSvc notification.Service, cfg *config.Config) Service {
	return &service{
		userRepo: userRepo,
		notifSvc: notifSvc,
		cfg:      cfg,
	}
}

func (s *service) Register(ctx context.Context, input domain.RegisterInput) (*domain.User, string, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", domain.ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: string(hash),
		Name:         input.Name,
		Role:         domain.RoleUser,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	if s.notifSvc != nil {
		if err := s.notifSvc.NotifyNewUser(ctx, user); err != nil {
			log.Printf("Failed to create signup notification for %s: %v", user.Email, err)
		}
	}

	token, err := s.signToken(user.ID.String(), user.Role)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *service) Login(ctx context.Context, input domain.LoginInput) (*domain.User, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.signToken(user.ID.String(), user.Role)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *service) AdminLogin(ctx context.Context, input domain.AdminLoginInput) (string, error) {
	if s.cfg.AdminPassword == "" || input.Password != s.cfg.AdminPassword {
		return "", domain.ErrInvalidCredentials
	}
	return s.signToken(AdminSubject, domain.RoleAdmin)
}

func (s *service) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

func (s *service) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (s *service) signToken(subject string, role domain.UserRole) (string, error) {
	now := time.Now()
	claims := &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.SessionExpiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
