package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/garden-shop/internal/entities"
)

const DefaultMaxLines = 50

// OrderAssembler проверяет запрошенные позиции и собирает черновик заказа с зафиксированными ценами.
// Ничего не пишет в базу.
type OrderAssembler struct {
	resolver *VariantResolver
	stock    StockLedger
	maxLines int
}

func NewOrderAssembler(resolver *VariantResolver, stock StockLedger, maxLines int) *OrderAssembler {
	if maxLines <= 0 {
		maxLines = DefaultMaxLines
	}
	return &OrderAssembler{
		resolver: resolver,
		stock:    stock,
		maxLines: maxLines,
	}
}

// Build проверяет позиции по порядку и останавливается на первой ошибке:
// количество строк, количества, существование вариантов, предварительная проверка остатков.
func (a *OrderAssembler) Build(
	ctx context.Context,
	userID, deliveryAddressID, billingAddressID int64,
	requested []entities.LineRequest,
) (entities.OrderDraft, error) {
	lines, err := a.Price(ctx, requested)
	if err != nil {
		return entities.OrderDraft{}, err
	}

	if err := a.precheckStock(ctx, lines); err != nil {
		return entities.OrderDraft{}, err
	}

	return entities.OrderDraft{
		UserID:            userID,
		DeliveryAddressID: deliveryAddressID,
		BillingAddressID:  billingAddressID,
		Lines:             lines,
		Total:             entities.OrderTotal(lines),
	}, nil
}

// Price проверяет позиции и фиксирует текущие цены вариантов. Остатки не смотрит.
func (a *OrderAssembler) Price(ctx context.Context, requested []entities.LineRequest) ([]entities.DraftLine, error) {
	if len(requested) == 0 {
		return nil, entities.NewValidationError("lines", "must not be empty")
	}
	if len(requested) > a.maxLines {
		return nil, entities.NewValidationError("lines",
			fmt.Sprintf("must contain at most %d lines", a.maxLines))
	}

	for i, r := range requested {
		if r.Quantity <= 0 {
			return nil, entities.NewValidationError(
				fmt.Sprintf("lines[%d].quantity", i), "must be positive")
		}
	}

	lines := make([]entities.DraftLine, 0, len(requested))
	for i, r := range requested {
		variant, err := a.resolver.Lookup(ctx, r)
		if err != nil {
			return nil, fmt.Errorf("lines[%d]: %w", i, err)
		}
		if !variant.Active {
			return nil, entities.NewValidationError(
				fmt.Sprintf("lines[%d].variant", i), fmt.Sprintf("variant %s is not available", variant.SKU))
		}
		lines = append(lines, entities.DraftLine{
			VariantID: variant.ID,
			SKU:       variant.SKU,
			Quantity:  r.Quantity,
			UnitPrice: variant.Price,
		})
	}
	return lines, nil
}

// precheckStock не атомарна: окончательная проверка идет при резервировании в OrderStore.
// Повторяющиеся варианты суммируются, отсутствие строки остатка равно нулю.
func (a *OrderAssembler) precheckStock(ctx context.Context, lines []entities.DraftLine) error {
	requested := make(map[int64]int, len(lines))
	order := make([]int64, 0, len(lines))
	for _, l := range lines {
		if _, seen := requested[l.VariantID]; !seen {
			order = append(order, l.VariantID)
		}
		requested[l.VariantID] += l.Quantity
	}

	for _, variantID := range order {
		available, err := a.stock.GetAvailable(ctx, variantID)
		if errors.Is(err, entities.ErrStockNotFound) {
			available = 0
		} else if err != nil {
			return err
		}

		if requested[variantID] > available {
			return &entities.InsufficientStockError{
				VariantID: variantID,
				Requested: requested[variantID],
				Available: available,
			}
		}
	}
	return nil
}
