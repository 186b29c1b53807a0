package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/garden-shop/internal/auth"
	"github.com/SergeyBogomolovv/garden-shop/internal/entities"
)

const (
	MinPasswordLength = 8
	// bcrypt не принимает пароли длиннее 72 байт
	MaxPasswordLength = 72
)

type TokenIssuer interface {
	Issue(p entities.Principal) (string, time.Time, error)
}

type Session struct {
	Token     string
	ExpiresAt time.Time
	User      entities.User
}

type AuthService struct {
	logger *slog.Logger
	users  UserRepo
	tokens TokenIssuer
}

func NewAuthService(logger *slog.Logger, users UserRepo, tokens TokenIssuer) *AuthService {
	return &AuthService{
		logger: logger.With(slog.String("service", "auth")),
		users:  users,
		tokens: tokens,
	}
}

// Login не различает неизвестный email и неверный пароль.
func (s *AuthService) Login(ctx context.Context, email, password string) (Session, error) {
	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, entities.ErrUserNotFound) {
		return Session{}, entities.ErrUnauthorized
	}
	if err != nil {
		return Session{}, err
	}

	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		if !errors.Is(err, entities.ErrUnauthorized) {
			s.logger.ErrorContext(ctx, "failed to compare password", slog.Int64("user_id", user.ID), slog.Any("error", err))
		}
		return Session{}, entities.ErrUnauthorized
	}

	token, expiresAt, err := s.tokens.Issue(entities.Principal{UserID: user.ID, IsAdmin: user.IsAdmin})
	if err != nil {
		return Session{}, err
	}

	user.PasswordHash = ""
	return Session{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// Register создает покупателя. Email хранится в нижнем регистре, администратора так не создать.
func (s *AuthService) Register(ctx context.Context, in entities.RegisterInput) (entities.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	name := strings.TrimSpace(in.Name)

	switch {
	case email == "":
		return entities.User{}, entities.NewValidationError("email", "must not be empty")
	case name == "":
		return entities.User{}, entities.NewValidationError("name", "must not be empty")
	case len(in.Password) < MinPasswordLength:
		return entities.User{}, entities.NewValidationError("password",
			fmt.Sprintf("must be at least %d characters", MinPasswordLength))
	case len(in.Password) > MaxPasswordLength:
		return entities.User{}, entities.NewValidationError("password",
			fmt.Sprintf("must be at most %d bytes", MaxPasswordLength))
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return entities.User{}, err
	}

	user, err := s.users.Create(ctx, email, name, hash)
	if err != nil {
		return entities.User{}, err
	}

	s.logger.InfoContext(ctx, "user registered", slog.Int64("user_id", user.ID))
	user.PasswordHash = ""
	return user, nil
}

func (s *AuthService) Me(ctx context.Context, userID int64) (entities.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return entities.User{}, err
	}
	user.PasswordHash = ""
	return user, nil
}
