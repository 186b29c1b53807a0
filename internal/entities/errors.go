package entities

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

var (
	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("forbidden")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrAmbiguous         = errors.New("product is ambiguous or not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrUnavailable       = errors.New("service unavailable")
	ErrConflict          = errors.New("conflict")
	// ErrInconsistentStock - у строки заказа пропала запись остатка.
	ErrInconsistentStock = errors.New("inconsistent stock")
)

var (
	ErrOrderNotFound    = fmt.Errorf("order %w", ErrNotFound)
	ErrVariantNotFound  = fmt.Errorf("variant %w", ErrNotFound)
	ErrAddressNotFound  = fmt.Errorf("address %w", ErrNotFound)
	ErrStockNotFound    = fmt.Errorf("stock %w", ErrNotFound)
	ErrUserNotFound     = fmt.Errorf("user %w", ErrNotFound)
	ErrQuoteNotFound    = fmt.Errorf("quote %w", ErrNotFound)
	ErrMovementNotFound = fmt.Errorf("stock movement %w", ErrNotFound)
)

var (
	// ErrConcurrentUpdate - дедлок или конфликт сериализации в базе, запрос можно повторить.
	ErrConcurrentUpdate = fmt.Errorf("concurrent update %w", ErrConflict)
	ErrEmailTaken       = fmt.Errorf("email already registered: %w", ErrConflict)
	ErrAddressInUse     = fmt.Errorf("address is used by orders: %w", ErrConflict)
)

type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

type InsufficientStockError struct {
	VariantID int64
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for variant %d: requested %d, available %d",
		e.VariantID, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

type InvalidTransitionError struct {
	From OrderStatus
	To   OrderStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot change order status from %q to %q", e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error { return ErrInvalidTransition }

type QuoteTransitionError struct {
	From QuoteStatus
	To   QuoteStatus
}

func (e *QuoteTransitionError) Error() string {
	return fmt.Sprintf("cannot change quote status from %q to %q", e.From, e.To)
}

func (e *QuoteTransitionError) Unwrap() error { return ErrInvalidTransition }

// AmbiguousOrNotFoundError означает, что по описанию нельзя однозначно выбрать вариант.
type AmbiguousOrNotFoundError struct {
	BaseProduct string
	Attributes  map[string]string
	Candidates  int
}

func (e *AmbiguousOrNotFoundError) Error() string {
	keys := slices.Sorted(maps.Keys(e.Attributes))
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+e.Attributes[k])
	}
	return fmt.Sprintf("cannot identify %q [%s]: %d exact matches",
		e.BaseProduct, strings.Join(parts, ", "), e.Candidates)
}

func (e *AmbiguousOrNotFoundError) Unwrap() error { return ErrAmbiguous }
