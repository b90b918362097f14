package service

import (
	"context"
	"errors"

	"koriel-backend/internal/domain"
	"koriel-backend/internal/logger"
	"koriel-backend/internal/repository"
	"koriel-backend/internal/security"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type authService struct {
	userRepo repository.UserRepository
	tokens   security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, tokens security.TokenManager) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens}
}

func (s *authService) Login(ctx context.Context, username, password string) (string, string, *domain.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", "", nil, ErrInvalidCredentials
	}

	access, err := s.tokens.GenerateAccessToken(user.ID, user.Username, user.Role)
	if err != nil {
		return "", "", nil, err
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID, user.Username)
	if err != nil {
		return "", "", nil, err
	}

	logger.Info("Operator logged in", "user_id", user.ID, "username", user.Username)
	return access, refresh, user, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.tokens.ValidateToken(refreshToken)
	if err != nil {
		return "", err
	}
	if claims.Type != security.TokenTypeRefresh {
		return "", security.ErrWrongTokenType
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return "", err
	}
	return s.tokens.GenerateAccessToken(user.ID, user.Username, user.Role)
}

func (s *authService) CreateOperator(ctx context.Context, username, name, password string, role domain.UserRole) (*domain.User, error) {
	if username == "" {
		return nil, &domain.ValidationError{Field: "username", Reason: "must not be empty"}
	}
	if len(password) < 8 {
		return nil, &domain.ValidationError{Field: "password", Reason: "must be at least 8 characters"}
	}
	if role == "" {
		role = domain.RoleOperator
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{Username: username, Name: name, PasswordHash: string(hash), Role: role}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("Operator account created", "user_id", user.ID, "username", user.Username, "role", user.Role)
	return user, nil
}

func (s *authService) GetUser(ctx context.Context, id int32) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}
