package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/garden-shop/internal/entities"
	"github.com/SergeyBogomolovv/garden-shop/pkg/utils"
)

type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

type EmailRenderer interface {
	Render(kind entities.NotificationKind, user entities.User, order entities.Order) (subject, body string, err error)
}

// NotificationService отправляет письма по событиям из очереди уведомлений.
type NotificationService struct {
	logger   *slog.Logger
	users    UserRepo
	renderer EmailRenderer
	mailer   Mailer
	retry    utils.RetryConfig
}

func NewNotificationService(logger *slog.Logger, users UserRepo, renderer EmailRenderer, mailer Mailer) *NotificationService {
	return &NotificationService{
		logger:   logger.With(slog.String("service", "notification")),
		users:    users,
		renderer: renderer,
		mailer:   mailer,
		retry: utils.RetryConfig{
			InitialDelay: 200 * time.Millisecond,
			MaxAttempts:  3,
			Multiplier:   2,
		},
	}
}

func (s *NotificationService) Deliver(ctx context.Context, kind entities.NotificationKind, userID int64, order entities.Order) error {
	if !kind.Valid() {
		return entities.NewValidationError("kind", fmt.Sprintf("unknown notification kind %q", kind))
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load recipient: %w", err)
	}

	subject, body, err := s.renderer.Render(kind, user, order)
	if err != nil {
		return fmt.Errorf("failed to render email: %w", err)
	}

	err = utils.Retry(s.retry, func() error {
		return s.mailer.Send(ctx, user.Email, subject, body)
	})
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.InfoContext(ctx, "notification delivered",
		slog.String("kind", string(kind)),
		slog.Int64("order_id", order.ID),
		slog.Int64("user_id", userID),
	)
	return nil
}
