package repo

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/garden-shop/internal/entities"
	"github.com/shopspring/decimal"
)

// Attributes - JSONB-колонка product_variants.attributes.
type Attributes map[string]string

func (a *Attributes) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*a = Attributes{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported attributes type %T", src)
	}

	m := make(map[string]string)
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("failed to decode attributes: %w", err)
	}
	*a = m
	return nil
}

func (a Attributes) Value() (driver.Value, error) {
	if a == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(map[string]string(a))
}

type Variant struct {
	ID          int64           `db:"id"`
	SKU         string          `db:"sku"`
	ProductID   int64           `db:"product_id"`
	ProductName string          `db:"product_name"`
	Attributes  Attributes      `db:"attributes"`
	Price       decimal.Decimal `db:"price"`
	Active      bool            `db:"is_active"`
}

type StockLevel struct {
	VariantID   int64     `db:"variant_id"`
	SKU         string    `db:"sku"`
	ProductName string    `db:"product_name"`
	Quantity    int       `db:"quantity"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type StockMovement struct {
	ID             int64         `db:"id"`
	VariantID      int64         `db:"variant_id"`
	QuantityChange int           `db:"quantity_change"`
	Type           string        `db:"movement_type"`
	OrderID        sql.NullInt64 `db:"order_id"`
	Reason         string        `db:"reason"`
	CreatedAt      time.Time     `db:"created_at"`
}

type Quote struct {
	ID        int64           `db:"id"`
	UserID    int64           `db:"user_id"`
	Status    string          `db:"status"`
	Total     decimal.Decimal `db:"total"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}

type QuoteLine struct {
	ID        int64           `db:"id"`
	QuoteID   int64           `db:"quote_id"`
	VariantID int64           `db:"variant_id"`
	Position  int             `db:"position"`
	Quantity  int             `db:"quantity"`
	UnitPrice decimal.Decimal `db:"unit_price"`
}

type Order struct {
	ID                int64           `db:"id"`
	UserID            int64           `db:"user_id"`
	Status            string          `db:"status"`
	DeliveryAddressID int64           `db:"delivery_address_id"`
	BillingAddressID  int64           `db:"billing_address_id"`
	Total             decimal.Decimal `db:"total"`
	CreatedAt         time.Time       `db:"created_at"`
	UpdatedAt         time.Time       `db:"updated_at"`
}

type OrderLine struct {
	ID        int64           `db:"id"`
	OrderID   int64           `db:"order_id"`
	VariantID int64           `db:"variant_id"`
	Position  int             `db:"position"`
	Quantity  int             `db:"quantity"`
	UnitPrice decimal.Decimal `db:"unit_price"`
}

type Address struct {
	ID         int64     `db:"id"`
	UserID     int64     `db:"user_id"`
	Street     string    `db:"street"`
	City       string    `db:"city"`
	PostalCode string    `db:"postal_code"`
	Country    string    `db:"country"`
	IsDefault  bool      `db:"is_default"`
	CreatedAt  time.Time `db:"created_at"`
}

type User struct {
	ID           int64  `db:"id"`
	Email        string `db:"email"`
	Name         string `db:"name"`
	PasswordHash string `db:"password_hash"`
	IsAdmin      bool   `db:"is_admin"`
}

func VariantToEntity(v Variant) entities.Variant {
	attrs := map[string]string(v.Attributes)
	if attrs == nil {
		attrs = map[string]string{}
	}
	return entities.Variant{
		ID:          v.ID,
		SKU:         v.SKU,
		ProductID:   v.ProductID,
		ProductName: v.ProductName,
		Attributes:  attrs,
		Price:       v.Price,
		Active:      v.Active,
	}
}

func OrderLineToEntity(l OrderLine) entities.OrderLine {
	return entities.OrderLine{
		ID:        l.ID,
		OrderID:   l.OrderID,
		VariantID: l.VariantID,
		Quantity:  l.Quantity,
		UnitPrice: l.UnitPrice,
	}
}

func OrderToEntity(o Order, lines []OrderLine) entities.Order {
	order := entities.Order{
		ID:                o.ID,
		UserID:            o.UserID,
		Status:            entities.OrderStatus(o.Status),
		DeliveryAddressID: o.DeliveryAddressID,
		BillingAddressID:  o.BillingAddressID,
		Total:             o.Total,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}

	if len(lines) > 0 {
		order.Lines = make([]entities.OrderLine, 0, len(lines))
		for _, l := range lines {
			order.Lines = append(order.Lines, OrderLineToEntity(l))
		}
	}

	return order
}

func AddressToEntity(a Address) entities.Address {
	return entities.Address{
		ID:         a.ID,
		UserID:     a.UserID,
		Street:     a.Street,
		City:       a.City,
		PostalCode: a.PostalCode,
		Country:    a.Country,
		IsDefault:  a.IsDefault,
		CreatedAt:  a.CreatedAt,
	}
}

func UserToEntity(u User) entities.User {
	return entities.User{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		IsAdmin:      u.IsAdmin,
	}
}

func StockLevelToEntity(l StockLevel) entities.StockLevel {
	return entities.StockLevel{
		VariantID:   l.VariantID,
		SKU:         l.SKU,
		ProductName: l.ProductName,
		Quantity:    l.Quantity,
		UpdatedAt:   l.UpdatedAt,
	}
}

func StockMovementToEntity(m StockMovement) entities.StockMovement {
	return entities.StockMovement{
		ID:             m.ID,
		VariantID:      m.VariantID,
		QuantityChange: m.QuantityChange,
		Type:           entities.MovementType(m.Type),
		OrderID:        m.OrderID.Int64,
		Reason:         m.Reason,
		CreatedAt:      m.CreatedAt,
	}
}

func QuoteToEntity(q Quote, lines []QuoteLine) entities.Quote {
	quote := entities.Quote{
		ID:        q.ID,
		UserID:    q.UserID,
		Status:    entities.QuoteStatus(q.Status),
		Total:     q.Total,
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}

	if len(lines) > 0 {
		quote.Lines = make([]entities.QuoteLine, 0, len(lines))
		for _, l := range lines {
			quote.Lines = append(quote.Lines, entities.QuoteLine{
				ID:        l.ID,
				QuoteID:   l.QuoteID,
				VariantID: l.VariantID,
				Quantity:  l.Quantity,
				UnitPrice: l.UnitPrice,
			})
		}
	}

	return quote
}
