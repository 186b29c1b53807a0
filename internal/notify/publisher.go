package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/SergeyBogomolovv/garden-shop/internal/config"
	"github.com/SergeyBogomolovv/garden-shop/internal/entities"
	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher публикует уведомления о заказах; письма отправляет консьюмер топика.
type KafkaPublisher struct {
	writer messageWriter
}

func NewKafkaPublisher(cfg config.Kafka) *KafkaPublisher {
	return newPublisher(&kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.NotificationsTopic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: cfg.BatchTimeout,
		RequiredAcks: kafka.RequireOne,
	})
}

func newPublisher(w messageWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: w}
}

func (p *KafkaPublisher) Notify(ctx context.Context, kind entities.NotificationKind, order entities.Order) error {
	msg := NewMessage(kind, order)

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode notification: %w", err)
	}

	// Ключ по пользователю сохраняет порядок событий одного покупателя.
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(msg.UserID, 10)),
		Value: data,
		Headers: []kafka.Header{
			{Key: "id", Value: []byte(msg.ID.String())},
			{Key: "kind", Value: []byte(msg.Kind)},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
