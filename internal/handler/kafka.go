package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/garden-shop/internal/config"
	"github.com/SergeyBogomolovv/garden-shop/internal/entities"
	"github.com/SergeyBogomolovv/garden-shop/internal/notify"
	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

type NotificationDeliverer interface {
	Deliver(ctx context.Context, kind entities.NotificationKind, userID int64, order entities.Order) error
}

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// NotificationConsumer читает топик уведомлений и отправляет письма.
// Сообщения, которые не удалось обработать, уходят в <topic>-dlq.
type NotificationConsumer struct {
	dlq      messageWriter
	reader   messageReader
	logger   *slog.Logger
	validate *validator.Validate
	svc      NotificationDeliverer
}

func NewNotificationConsumer(logger *slog.Logger, cfg config.Kafka, svc NotificationDeliverer) *NotificationConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.Brokers,
		GroupID: cfg.GroupID,
		Topic:   cfg.NotificationsTopic,
		MaxWait: cfg.ReaderMaxWait,
	})
	dlq := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: cfg.BatchTimeout,
	}
	return newNotificationConsumer(logger, reader, dlq, svc)
}

func newNotificationConsumer(logger *slog.Logger, reader messageReader, dlq messageWriter, svc NotificationDeliverer) *NotificationConsumer {
	return &NotificationConsumer{
		logger:   logger.With(slog.String("handler", "kafka")),
		reader:   reader,
		dlq:      dlq,
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *NotificationConsumer) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) || ctx.Err() != nil {
				return
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		h.process(ctx, m)

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *NotificationConsumer) process(ctx context.Context, m kafka.Message) {
	notificationsInProgress.Inc()
	defer notificationsInProgress.Dec()

	start := time.Now()
	defer func() {
		notificationDuration.Observe(time.Since(start).Seconds())
	}()

	// В Deliver уже есть retry отправки письма
	if err := h.handle(ctx, m); err != nil {
		notificationsFailed.Inc()
		h.logger.Error("failed to handle notification", slog.Any("error", err), slog.Int64("offset", m.Offset))

		if err := h.WriteToDLQ(ctx, m); err != nil {
			h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
			return
		}
		notificationsDLQ.Inc()
		return
	}

	notificationsProcessed.Inc()
}

func (h *NotificationConsumer) handle(ctx context.Context, m kafka.Message) error {
	var msg notify.Message
	if err := json.Unmarshal(m.Value, &msg); err != nil {
		return fmt.Errorf("failed to unmarshal notification: %w", err)
	}

	if err := h.validate.Struct(msg); err != nil {
		return fmt.Errorf("invalid notification: %w", err)
	}

	return h.svc.Deliver(ctx, msg.NotificationKind(), msg.UserID, msg.OrderEntity())
}

func (h *NotificationConsumer) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	return h.dlq.WriteMessages(ctx, kafka.Message{
		Topic:   fmt.Sprintf("%s-dlq", m.Topic),
		Key:     m.Key,
		Value:   m.Value,
		Headers: m.Headers,
	})
}

func (h *NotificationConsumer) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
