package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

// transitions перечисляет допустимые переходы; delivered и cancelled терминальные.
var transitions = map[OrderStatus][]OrderStatus{
	StatusPending:    {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusDelivered},
	StatusDelivered:  {},
	StatusCancelled:  {},
}

func (s OrderStatus) Valid() bool {
	_, ok := transitions[s]
	return ok
}

func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, next := range transitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

func (s OrderStatus) Terminal() bool {
	return s.Valid() && len(transitions[s]) == 0
}

func Statuses() []OrderStatus {
	return []OrderStatus{StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled}
}

type Order struct {
	ID                int64
	UserID            int64
	Status            OrderStatus
	DeliveryAddressID int64
	BillingAddressID  int64
	Total             decimal.Decimal
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Lines []OrderLine
}

// OrderPage - страница заказов с фактически примененными limit и offset.
type OrderPage struct {
	Orders []Order
	Limit  int
	Offset int
}

// OrderLine хранит цену варианта на момент заказа.
type OrderLine struct {
	ID        int64
	OrderID   int64
	VariantID int64
	Quantity  int
	UnitPrice decimal.Decimal
}

func (l OrderLine) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// LineRequest - запрошенная позиция: вариант задается либо id, либо SKU.
type LineRequest struct {
	VariantID int64
	SKU       string
	Quantity  int
}

// OrderDraft - заказ с зафиксированными ценами, еще не сохраненный.
type OrderDraft struct {
	UserID            int64
	DeliveryAddressID int64
	BillingAddressID  int64
	Lines             []DraftLine
	Total             decimal.Decimal
}

type DraftLine struct {
	VariantID int64
	SKU       string
	Quantity  int
	UnitPrice decimal.Decimal
}

func (l DraftLine) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// OrderTotal складывает суммы строк и округляет до копеек (half-up для неотрицательных сумм).
func OrderTotal(lines []DraftLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Total())
	}
	return total.Round(2)
}
