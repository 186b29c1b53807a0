package handler

import (
	"time"

	"github.com/SergeyBogomolovv/garden-shop/internal/entities"
	"github.com/SergeyBogomolovv/garden-shop/internal/service"
)

// OrderLine позиция заказа
type OrderLine struct {
	ID        int64  `json:"id"`
	VariantID int64  `json:"variant_id"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price" example:"4.99"`
	Total     string `json:"total" example:"14.97"`
}

// Order представляет заказ
type Order struct {
	ID                int64       `json:"id"`
	UserID            int64       `json:"user_id"`
	Status            string      `json:"status" example:"pending"`
	DeliveryAddressID int64       `json:"delivery_address_id"`
	BillingAddressID  int64       `json:"billing_address_id"`
	Total             string      `json:"total" example:"28.17"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
	Lines             []OrderLine `json:"lines"`
}

// OrderList страница заказов
type OrderList struct {
	Orders []Order `json:"orders"`
	Limit  int     `json:"limit"`
	Offset int     `json:"offset"`
}

// LineRequest запрошенная позиция: variant_id или sku
type LineRequest struct {
	VariantID int64  `json:"variant_id,omitempty" validate:"gte=0"`
	SKU       string `json:"sku,omitempty" validate:"max=64"`
	Quantity  int    `json:"quantity"`
}

// CreateOrderRequest тело запроса на создание заказа
type CreateOrderRequest struct {
	DeliveryAddressID int64         `json:"delivery_address_id" validate:"required,gt=0"`
	BillingAddressID  int64         `json:"billing_address_id" validate:"required,gt=0"`
	Lines             []LineRequest `json:"lines" validate:"dive"`
}

// UpdateStatusRequest новый статус заказа
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// StockConflictResponse ответ при нехватке остатка
type StockConflictResponse struct {
	Message   string `json:"message"`
	VariantID int64  `json:"variant_id"`
	Requested int    `json:"requested"`
	Available int    `json:"available"`
}

// Address адрес пользователя
type Address struct {
	ID         int64     `json:"id"`
	Street     string    `json:"street"`
	City       string    `json:"city"`
	PostalCode string    `json:"postal_code"`
	Country    string    `json:"country"`
	IsDefault  bool      `json:"is_default"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreateAddressRequest новый адрес
type CreateAddressRequest struct {
	Street     string `json:"street" validate:"required,max=255"`
	City       string `json:"city" validate:"required,max=128"`
	PostalCode string `json:"postal_code" validate:"required,max=16"`
	Country    string `json:"country" validate:"required,max=64"`
}

// RegisterRequest регистрация покупателя
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Name     string `json:"name" validate:"required,max=128"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest учетные данные
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// User публичные данные пользователя
type User struct {
	ID      int64  `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	IsAdmin bool   `json:"is_admin"`
}

// LoginResponse access-токен
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	User        User      `json:"user"`
}

// ChatRequest сообщение ассистенту
type ChatRequest struct {
	Message string `json:"message" validate:"required,max=2000"`
}

// ChatResponse ответ ассистента
type ChatResponse struct {
	Message            string `json:"message"`
	Intent             string `json:"intent"`
	NeedsClarification bool   `json:"needs_clarification"`
	Order              *Order `json:"order,omitempty"`
}

// StockLevel остаток варианта
type StockLevel struct {
	VariantID   int64     `json:"variant_id"`
	SKU         string    `json:"sku"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// StockLevelList страница остатков
type StockLevelList struct {
	Items  []StockLevel `json:"items"`
	Total  int          `json:"total"`
	Limit  int          `json:"limit"`
	Offset int          `json:"offset"`
}

// AdjustStockRequest ручная корректировка: положительная приходует, отрицательная списывает
type AdjustStockRequest struct {
	QuantityChange int    `json:"quantity_change" validate:"required"`
	Reason         string `json:"reason" validate:"required,max=500"`
}

// StockMovement запись журнала остатков
type StockMovement struct {
	ID             int64     `json:"id"`
	VariantID      int64     `json:"variant_id"`
	QuantityChange int       `json:"quantity_change"`
	Type           string    `json:"movement_type" example:"adjustment"`
	OrderID        *int64    `json:"order_id,omitempty"`
	Reason         string    `json:"reason,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// StockMovementList страница журнала
type StockMovementList struct {
	Items  []StockMovement `json:"items"`
	Total  int             `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

// QuoteLine позиция сметы
type QuoteLine struct {
	ID        int64  `json:"id"`
	VariantID int64  `json:"variant_id"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price" example:"4.99"`
	Total     string `json:"total" example:"14.97"`
}

// Quote смета с зафиксированными ценами
type Quote struct {
	ID        int64       `json:"id"`
	UserID    int64       `json:"user_id"`
	Status    string      `json:"status" example:"pending"`
	Total     string      `json:"total" example:"14.97"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
	Lines     []QuoteLine `json:"lines"`
}

// QuoteList страница смет
type QuoteList struct {
	Quotes []Quote `json:"quotes"`
	Total  int     `json:"total"`
	Limit  int     `json:"limit"`
	Offset int     `json:"offset"`
}

// CreateQuoteRequest позиции сметы
type CreateQuoteRequest struct {
	Lines []LineRequest `json:"lines" validate:"dive"`
}

// UpdateQuoteStatusRequest решение по смете
type UpdateQuoteStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func OrderEntityToJSON(o entities.Order) Order {
	lines := make([]OrderLine, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, OrderLine{
			ID:        l.ID,
			VariantID: l.VariantID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice.StringFixed(2),
			Total:     l.Total().StringFixed(2),
		})
	}

	return Order{
		ID:                o.ID,
		UserID:            o.UserID,
		Status:            string(o.Status),
		DeliveryAddressID: o.DeliveryAddressID,
		BillingAddressID:  o.BillingAddressID,
		Total:             o.Total.StringFixed(2),
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
		Lines:             lines,
	}
}

func LineRequestsToEntity(lines []LineRequest) []entities.LineRequest {
	result := make([]entities.LineRequest, 0, len(lines))
	for _, l := range lines {
		result = append(result, entities.LineRequest{VariantID: l.VariantID, SKU: l.SKU, Quantity: l.Quantity})
	}
	return result
}

func AddressEntityToJSON(a entities.Address) Address {
	return Address{
		ID:         a.ID,
		Street:     a.Street,
		City:       a.City,
		PostalCode: a.PostalCode,
		Country:    a.Country,
		IsDefault:  a.IsDefault,
		CreatedAt:  a.CreatedAt,
	}
}

func SessionToJSON(s service.Session) LoginResponse {
	return LoginResponse{
		AccessToken: s.Token,
		ExpiresAt:   s.ExpiresAt,
		User:        UserEntityToJSON(s.User),
	}
}

func UserEntityToJSON(u entities.User) User {
	return User{
		ID:      u.ID,
		Email:   u.Email,
		Name:    u.Name,
		IsAdmin: u.IsAdmin,
	}
}

func StockLevelEntityToJSON(l entities.StockLevel) StockLevel {
	return StockLevel{
		VariantID:   l.VariantID,
		SKU:         l.SKU,
		ProductName: l.ProductName,
		Quantity:    l.Quantity,
		UpdatedAt:   l.UpdatedAt,
	}
}

func StockMovementEntityToJSON(m entities.StockMovement) StockMovement {
	res := StockMovement{
		ID:             m.ID,
		VariantID:      m.VariantID,
		QuantityChange: m.QuantityChange,
		Type:           string(m.Type),
		Reason:         m.Reason,
		CreatedAt:      m.CreatedAt,
	}
	if m.OrderID != 0 {
		orderID := m.OrderID
		res.OrderID = &orderID
	}
	return res
}

func QuoteEntityToJSON(q entities.Quote) Quote {
	lines := make([]QuoteLine, 0, len(q.Lines))
	for _, l := range q.Lines {
		lines = append(lines, QuoteLine{
			ID:        l.ID,
			VariantID: l.VariantID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice.StringFixed(2),
			Total:     l.Total().StringFixed(2),
		})
	}

	return Quote{
		ID:        q.ID,
		UserID:    q.UserID,
		Status:    string(q.Status),
		Total:     q.Total.StringFixed(2),
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
		Lines:     lines,
	}
}

func ChatReplyToJSON(r entities.ChatReply) ChatResponse {
	res := ChatResponse{
		Message:            r.Message,
		Intent:             string(r.Intent),
		NeedsClarification: r.NeedsClarification,
	}
	if r.Order != nil {
		order := OrderEntityToJSON(*r.Order)
		res.Order = &order
	}
	return res
}
