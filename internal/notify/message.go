package notify

import (
	"time"

	"github.com/SergeyBogomolovv/garden-shop/internal/entities"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Message - событие в топике уведомлений.
type Message struct {
	ID        uuid.UUID `json:"id" validate:"required"`
	Kind      string    `json:"kind" validate:"required,oneof=order_confirmation status_update"`
	UserID    int64     `json:"user_id" validate:"required,gt=0"`
	Order     Order     `json:"order" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
}

type Order struct {
	ID                int64           `json:"id" validate:"required,gt=0"`
	Status            string          `json:"status" validate:"required"`
	DeliveryAddressID int64           `json:"delivery_address_id"`
	BillingAddressID  int64           `json:"billing_address_id"`
	Total             decimal.Decimal `json:"total"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
	Lines             []Line          `json:"lines" validate:"dive"`
}

type Line struct {
	VariantID int64           `json:"variant_id" validate:"required,gt=0"`
	Quantity  int             `json:"quantity" validate:"gt=0"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

func NewMessage(kind entities.NotificationKind, order entities.Order) Message {
	lines := make([]Line, 0, len(order.Lines))
	for _, l := range order.Lines {
		lines = append(lines, Line{VariantID: l.VariantID, Quantity: l.Quantity, UnitPrice: l.UnitPrice})
	}

	return Message{
		ID:     uuid.New(),
		Kind:   string(kind),
		UserID: order.UserID,
		Order: Order{
			ID:                order.ID,
			Status:            string(order.Status),
			DeliveryAddressID: order.DeliveryAddressID,
			BillingAddressID:  order.BillingAddressID,
			Total:             order.Total,
			CreatedAt:         order.CreatedAt,
			UpdatedAt:         order.UpdatedAt,
			Lines:             lines,
		},
		CreatedAt: time.Now().UTC(),
	}
}

func (m Message) NotificationKind() entities.NotificationKind {
	return entities.NotificationKind(m.Kind)
}

func (m Message) OrderEntity() entities.Order {
	order := entities.Order{
		ID:                m.Order.ID,
		UserID:            m.UserID,
		Status:            entities.OrderStatus(m.Order.Status),
		DeliveryAddressID: m.Order.DeliveryAddressID,
		BillingAddressID:  m.Order.BillingAddressID,
		Total:             m.Order.Total,
		CreatedAt:         m.Order.CreatedAt,
		UpdatedAt:         m.Order.UpdatedAt,
	}
	for _, l := range m.Order.Lines {
		order.Lines = append(order.Lines, entities.OrderLine{
			OrderID:   m.Order.ID,
			VariantID: l.VariantID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		})
	}
	return order
}
