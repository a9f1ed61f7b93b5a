// internal/domain/user/service.go
package user

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-api/internal/apperror"
	"github.com/your-org/storefront-api/internal/config"
	"github.com/your-org/storefront-api/internal/pkg/auth"
)

// Service handles user business logic
type Service struct {
	store           Store
	config          *config.Config
	passwordManager *auth.PasswordManager
	jwtManager      *auth.JWTManager
	logger          logrus.FieldLogger
}

// NewService creates a new user service
func NewService(store Store, cfg *config.Config, jwtManager *auth.JWTManager, logger logrus.FieldLogger) *Service {
	return &Service{
		store:           store,
		config:          cfg,
		passwordManager: auth.NewPasswordManager(cfg),
		jwtManager:      jwtManager,
		logger:          logger,
	}
}

// RegisterRequest represents user registration data
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents user login data
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	User        *User  `json:"user"`
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// Register creates a new user account
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	name := strings.TrimSpace(req.Name)
	email := NormalizeEmail(req.Email)

	if name == "" {
		return nil, apperror.Validation("name is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, apperror.Validation("a valid email is required")
	}
	if err := s.passwordManager.ValidatePassword(req.Password); err != nil {
		return nil, apperror.Validation("%s", err.Error())
	}

	// Hash password
	hashedPassword, err := s.passwordManager.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Password:  hashedPassword,
		IsAdmin:   false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.Create(ctx, user); err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			return nil, apperror.Validation("user with this email already exists")
		}
		return nil, err
	}

	s.logger.WithField("user_id", user.ID).Info("User registered")
	return s.authResponse(user)
}

// Login authenticates a user by email and password
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	user, err := s.store.GetByEmail(ctx, NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.Authentication("invalid email or password")
		}
		return nil, err
	}

	if err := s.passwordManager.VerifyPassword(req.Password, user.Password); err != nil {
		return nil, apperror.Authentication("invalid email or password")
	}

	return s.authResponse(user)
}

// GetProfile returns the user behind an identity
func (s *Service) GetProfile(ctx context.Context, caller *auth.Identity) (*User, error) {
	if caller == nil {
		return nil, apperror.Authentication("not authorized, no token")
	}
	return s.store.GetByID(ctx, caller.UserID)
}

func (s *Service) authResponse(user *User) (*AuthResponse, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(user.Identity())
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &AuthResponse{
		User:        user,
		AccessToken: accessToken,
		ExpiresIn:   int64(s.config.JWT.AccessTokenExpiry.Seconds()),
	}, nil
}
