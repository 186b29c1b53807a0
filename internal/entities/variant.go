package entities

import (
	"maps"
	"time"

	"github.com/shopspring/decimal"
)

type Variant struct {
	ID          int64
	SKU         string
	ProductID   int64
	ProductName string
	Attributes  map[string]string
	Price       decimal.Decimal
	Active      bool
}

// MatchesAttributes сравнивает набор атрибутов целиком, без нечеткого поиска.
func (v Variant) MatchesAttributes(attrs map[string]string) bool {
	return maps.Equal(v.Attributes, attrs)
}

type StockEntry struct {
	VariantID int64
	Quantity  int
}

// StockLevel - остаток варианта для администратора.
type StockLevel struct {
	VariantID   int64
	SKU         string
	ProductName string
	Quantity    int
	UpdatedAt   time.Time
}

type MovementType string

const (
	MovementOrder        MovementType = "order"
	MovementCancellation MovementType = "cancellation"
	MovementAdjustment   MovementType = "adjustment"
)

func (t MovementType) Valid() bool {
	switch t {
	case MovementOrder, MovementCancellation, MovementAdjustment:
		return true
	}
	return false
}

// StockMovement - запись журнала остатков. OrderID равен нулю для ручных корректировок.
type StockMovement struct {
	ID             int64
	VariantID      int64
	QuantityChange int
	Type           MovementType
	OrderID        int64
	Reason         string
	CreatedAt      time.Time
}

// MovementFilter - пустые поля не фильтруют.
type MovementFilter struct {
	VariantID int64
	Type      MovementType
	OrderID   int64
	Limit     int
	Offset    int
}

type StockLevelPage struct {
	Items  []StockLevel
	Total  int
	Limit  int
	Offset int
}

type MovementPage struct {
	Items  []StockMovement
	Total  int
	Limit  int
	Offset int
}
