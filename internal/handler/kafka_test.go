package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/garden-shop/internal/entities"
	mocks "github.com/SergeyBogomolovv/garden-shop/internal/handler/mocks"
	"github.com/SergeyBogomolovv/garden-shop/internal/notify"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fakeReader отдает сообщения по очереди, затем ждет отмены контекста.
type fakeReader struct {
	mu        sync.Mutex
	messages  []kafka.Message
	committed []int64
	done      chan struct{}
}

func newFakeReader(msgs ...kafka.Message) *fakeReader {
	return &fakeReader{messages: msgs, done: make(chan struct{})}
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	r.mu.Lock()
	if len(r.messages) > 0 {
		m := r.messages[0]
		r.messages = r.messages[1:]
		r.mu.Unlock()
		return m, nil
	}
	r.mu.Unlock()

	<-ctx.Done()
	return kafka.Message{}, ctx.Err()
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	if len(r.messages) == 0 {
		select {
		case <-r.done:
		default:
			close(r.done)
		}
	}
	return nil
}

func (r *fakeReader) Close() error { return nil }

type fakeDLQ struct {
	mu       sync.Mutex
	messages []kafka.Message
}

func (w *fakeDLQ) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeDLQ) Close() error { return nil }

func notificationMessage(t *testing.T, offset int64, msg notify.Message) kafka.Message {
	t.Helper()
	data, err := json.Marshal(msg)
	require.NoError(t, err)
	return kafka.Message{Topic: "order-notifications", Offset: offset, Key: []byte("7"), Value: data}
}

func TestNotificationConsumer_Consume(t *testing.T) {
	order := entities.Order{
		ID:     100,
		UserID: 7,
		Status: entities.StatusPending,
		Total:  decimal.RequireFromString("14.97"),
		Lines:  []entities.OrderLine{{VariantID: 10, Quantity: 3, UnitPrice: decimal.RequireFromString("4.99")}},
	}

	ok := notificationMessage(t, 1, notify.NewMessage(entities.NotificationOrderConfirmation, order))
	failing := notificationMessage(t, 2, notify.NewMessage(entities.NotificationStatusUpdate, order))
	broken := kafka.Message{Topic: "order-notifications", Offset: 3, Value: []byte("{not json")}

	svc := mocks.NewMockNotificationDeliverer(t)
	svc.EXPECT().
		Deliver(mock.Anything, entities.NotificationOrderConfirmation, int64(7), mock.Anything).
		Run(func(_ context.Context, _ entities.NotificationKind, _ int64, got entities.Order) {
			assert.Equal(t, int64(100), got.ID)
			assert.Equal(t, "14.97", got.Total.StringFixed(2))
		}).
		Return(nil).Once()
	svc.EXPECT().
		Deliver(mock.Anything, entities.NotificationStatusUpdate, int64(7), mock.Anything).
		Return(errors.New("smtp down")).Once()

	reader := newFakeReader(ok, failing, broken)
	dlq := &fakeDLQ{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	consumer := newNotificationConsumer(logger, reader, dlq, svc)

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		consumer.Consume(ctx)
		close(stopped)
	}()

	select {
	case <-reader.done:
	case <-time.After(5 * time.Second):
		t.Fatal("consumer did not process messages")
	}
	cancel()
	<-stopped

	assert.Equal(t, []int64{1, 2, 3}, reader.committed)

	require.Len(t, dlq.messages, 2)
	for _, m := range dlq.messages {
		assert.Equal(t, "order-notifications-dlq", m.Topic)
	}
	assert.Equal(t, failing.Value, dlq.messages[0].Value)
	assert.Equal(t, broken.Value, dlq.messages[1].Value)
}
