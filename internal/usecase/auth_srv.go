package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"bus-booking/internal/data/entity"
	"bus-booking/internal/data/repository"
	"bus-booking/internal/dto/request"
	"bus-booking/internal/dto/response"
	"bus-booking/internal/session"
	"bus-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Signup(ctx context.Context, req *request.SignupRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	Profile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error)
}

type authService struct {
	repo     *repository.Repository
	sessions *session.Store
	log      *zap.Logger
}

func NewAuthService(repo *repository.Repository, sessions *session.Store, log *zap.Logger) AuthService {
	return &authService{
		repo:     repo,
		sessions: sessions,
		log:      log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Signup(ctx context.Context, req *request.SignupRequest) (*response.AuthResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Signup validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	// Emails are unique case-insensitively, store them lowercased
	email := strings.ToLower(strings.TrimSpace(req.Email))

	// 2. Check email not already registered
	existing, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("email already registered: %w", ErrConflict)
	}

	// 3. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password: %w", err)
	}

	// 4. Create user entity
	now := time.Now()
	user := &entity.User{
		UserID:       uuid.New(),
		Name:         req.Name,
		Email:        email,
		Phone:        req.Phone,
		PasswordHash: hashedPassword,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	// 5. Auto login after signup
	token := s.sessions.Create(user.UserID, user.Email)

	s.log.Info("User registered",
		zap.String("user_id", user.UserID.String()),
		zap.String("email", user.Email))

	resp := response.AuthToResponse(user, token)
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 2. Find user by email
	user, err := s.repo.User.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	// Unknown email and wrong password answer identically
	if user == nil {
		s.log.Warn("User not found for login", zap.String("email", req.Email))
		return nil, fmt.Errorf("invalid credentials: %w", ErrUnauthenticated)
	}

	// 3. Check password
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.UserID.String()))
		return nil, fmt.Errorf("invalid credentials: %w", ErrUnauthenticated)
	}

	// 4. Create session
	token := s.sessions.Create(user.UserID, user.Email)

	s.log.Info("User logged in",
		zap.String("user_id", user.UserID.String()),
		zap.String("email", user.Email))

	resp := response.AuthToResponse(user, token)
	return &resp, nil
}

// Logout removes the presented session. The auth gate has already
// proven the token valid for this request, so a concurrent removal is
// not an error.
func (s *authService) Logout(ctx context.Context, token string) error {
	existed := s.sessions.Delete(token)
	s.log.Info("User logged out", zap.Bool("session_existed", existed))
	return nil
}

func (s *authService) Profile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	user, err := s.repo.User.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to load profile", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user not found: %w", ErrNotFound)
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}
