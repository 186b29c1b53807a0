package notify

import (
	"context"
	"encoding/json"
	"errors"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/garden-shop/internal/config"
	"github.com/SergeyBogomolovv/garden-shop/internal/entities"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func testOrder() entities.Order {
	return entities.Order{
		ID:     7,
		UserID: 3,
		Status: entities.StatusPending,
		Total:  decimal.RequireFromString("28.17"),
		Lines: []entities.OrderLine{
			{VariantID: 1, Quantity: 3, UnitPrice: decimal.RequireFromString("4.99")},
			{VariantID: 2, Quantity: 1, UnitPrice: decimal.RequireFromString("13.20")},
		},
	}
}

func TestKafkaPublisher_Notify(t *testing.T) {
	w := &fakeWriter{}
	p := newPublisher(w)

	require.NoError(t, p.Notify(context.Background(), entities.NotificationOrderConfirmation, testOrder()))
	require.Len(t, w.messages, 1)

	m := w.messages[0]
	assert.Equal(t, "3", string(m.Key))

	var msg Message
	require.NoError(t, json.Unmarshal(m.Value, &msg))
	assert.Equal(t, "order_confirmation", msg.Kind)
	assert.Equal(t, int64(3), msg.UserID)
	assert.NotEqual(t, "", msg.ID.String())

	order := msg.OrderEntity()
	assert.Equal(t, int64(7), order.ID)
	assert.Equal(t, int64(3), order.UserID)
	assert.True(t, order.Total.Equal(decimal.RequireFromString("28.17")))
	require.Len(t, order.Lines, 2)
	assert.True(t, order.Lines[0].UnitPrice.Equal(decimal.RequireFromString("4.99")))
}

func TestKafkaPublisher_NotifyError(t *testing.T) {
	brokerErr := errors.New("broker down")
	p := newPublisher(&fakeWriter{err: brokerErr})

	err := p.Notify(context.Background(), entities.NotificationStatusUpdate, testOrder())
	assert.ErrorIs(t, err, brokerErr)
}

func TestRenderer_Render(t *testing.T) {
	r := NewRenderer()
	user := entities.User{ID: 3, Name: "Alice <admin>", Email: "alice@example.com"}

	subject, body, err := r.Render(entities.NotificationOrderConfirmation, user, testOrder())
	require.NoError(t, err)
	assert.Equal(t, "Order #7 confirmed", subject)
	assert.Contains(t, body, "14.97")
	assert.Contains(t, body, "28.17")
	assert.Contains(t, body, "Alice &lt;admin&gt;")

	order := testOrder()
	order.Status = entities.StatusShipped
	subject, body, err = r.Render(entities.NotificationStatusUpdate, user, order)
	require.NoError(t, err)
	assert.Equal(t, "Order #7: shipped", subject)
	assert.Contains(t, body, "<b>shipped</b>")

	_, _, err = r.Render("unknown", user, order)
	assert.Error(t, err)
}

func TestSMTPMailer_Send(t *testing.T) {
	m := NewSMTPMailer(config.SMTP{Host: "localhost", Port: 1025, From: "shop@garden.local"})

	var (
		gotAddr string
		gotTo   []string
		gotMsg  string
	)
	m.send = func(addr string, _ smtp.Auth, _ string, to []string, msg []byte) error {
		gotAddr, gotTo, gotMsg = addr, to, string(msg)
		return nil
	}

	require.NoError(t, m.Send(context.Background(), "alice@example.com", "Order #7 confirmed", "<p>hi</p>"))
	assert.Equal(t, "localhost:1025", gotAddr)
	assert.Equal(t, []string{"alice@example.com"}, gotTo)
	assert.True(t, strings.HasPrefix(gotMsg, "From: shop@garden.local\r\n"))
	assert.Contains(t, gotMsg, "Content-Type: text/html")
	assert.True(t, strings.HasSuffix(gotMsg, "\r\n\r\n<p>hi</p>"))
}

func TestSMTPMailer_SendCancelled(t *testing.T) {
	m := NewSMTPMailer(config.SMTP{Host: "localhost", Port: 1025, From: "shop@garden.local"})
	m.send = func(string, smtp.Auth, string, []string, []byte) error {
		t.Fatal("send must not be called")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	time.Sleep(time.Millisecond)

	assert.Error(t, m.Send(ctx, "alice@example.com", "s", "b"))
}
