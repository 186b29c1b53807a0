package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type QuoteStatus string

const (
	QuotePending  QuoteStatus = "pending"
	QuoteAccepted QuoteStatus = "accepted"
	QuoteRejected QuoteStatus = "rejected"
	QuoteExpired  QuoteStatus = "expired"
)

// Решение по смете принимается один раз: из pending в любой финальный статус.
var quoteTransitions = map[QuoteStatus][]QuoteStatus{
	QuotePending:  {QuoteAccepted, QuoteRejected, QuoteExpired},
	QuoteAccepted: {},
	QuoteRejected: {},
	QuoteExpired:  {},
}

func (s QuoteStatus) Valid() bool {
	_, ok := quoteTransitions[s]
	return ok
}

func (s QuoteStatus) CanTransitionTo(target QuoteStatus) bool {
	for _, next := range quoteTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// Quote - смета: цены фиксируются при создании и дальше не пересчитываются.
type Quote struct {
	ID        int64
	UserID    int64
	Status    QuoteStatus
	Total     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time

	Lines []QuoteLine
}

type QuoteLine struct {
	ID        int64
	QuoteID   int64
	VariantID int64
	Quantity  int
	UnitPrice decimal.Decimal
}

func (l QuoteLine) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type QuoteDraft struct {
	UserID int64
	Lines  []DraftLine
	Total  decimal.Decimal
}

type QuotePage struct {
	Quotes []Quote
	Total  int
	Limit  int
	Offset int
}
