package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SergeyBogomolovv/garden-shop/internal/entities"
	"github.com/SergeyBogomolovv/garden-shop/pkg/trm"
)

const (
	DefaultLowStockThreshold = 10
	defaultStockPageSize     = 50
	maxStockPageSize         = 200
	defaultMovementPageSize  = 100
	maxMovementPageSize      = 1000
	maxAdjustmentReason      = 500
)

// StockInventory - журнал остатков вместе с запросами для администратора.
type StockInventory interface {
	StockLedger
	GetLevel(ctx context.Context, variantID int64) (entities.StockLevel, error)
	ListLow(ctx context.Context, threshold, limit, offset int) ([]entities.StockLevel, int, error)
	ListMovements(ctx context.Context, f entities.MovementFilter) ([]entities.StockMovement, int, error)
	GetMovement(ctx context.Context, id int64) (entities.StockMovement, error)
}

type StockService struct {
	logger    *slog.Logger
	txManager trm.Manager
	stock     StockInventory
}

func NewStockService(logger *slog.Logger, txManager trm.Manager, stock StockInventory) *StockService {
	return &StockService{
		logger:    logger.With(slog.String("service", "stock")),
		txManager: txManager,
		stock:     stock,
	}
}

func (s *StockService) GetStock(ctx context.Context, variantID int64) (entities.StockLevel, error) {
	return s.stock.GetLevel(ctx, variantID)
}

// AdjustStock меняет остаток вручную и пишет движение adjustment в той же транзакции.
// Списание больше остатка отклоняется так же, как при заказе.
func (s *StockService) AdjustStock(ctx context.Context, variantID int64, change int, reason string) (entities.StockLevel, error) {
	reason = strings.TrimSpace(reason)
	if change == 0 {
		return entities.StockLevel{}, entities.NewValidationError("quantity_change", "must not be zero")
	}
	if reason == "" {
		return entities.StockLevel{}, entities.NewValidationError("reason", "must not be empty")
	}
	if len(reason) > maxAdjustmentReason {
		return entities.StockLevel{}, entities.NewValidationError("reason",
			fmt.Sprintf("must be at most %d characters", maxAdjustmentReason))
	}

	var level entities.StockLevel
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if change > 0 {
			if err := s.stock.Release(ctx, variantID, change); err != nil {
				return err
			}
		} else {
			ok, err := s.stock.TryReserve(ctx, variantID, -change)
			if err != nil {
				return err
			}
			if !ok {
				available, err := s.stock.GetAvailable(ctx, variantID)
				if err != nil {
					return err
				}
				return &entities.InsufficientStockError{VariantID: variantID, Requested: -change, Available: available}
			}
		}

		err := s.stock.RecordMovements(ctx, []entities.StockMovement{{
			VariantID:      variantID,
			QuantityChange: change,
			Type:           entities.MovementAdjustment,
			Reason:         reason,
		}})
		if err != nil {
			return err
		}

		level, err = s.stock.GetLevel(ctx, variantID)
		return err
	})
	if err != nil {
		return entities.StockLevel{}, err
	}

	s.logger.InfoContext(ctx, "stock adjusted",
		slog.Int64("variant_id", variantID),
		slog.Int("change", change),
		slog.Int("quantity", level.Quantity),
	)
	return level, nil
}

// ListLowStock возвращает варианты с остатком не больше threshold, начиная с самых дефицитных.
func (s *StockService) ListLowStock(ctx context.Context, threshold, limit, offset int) (entities.StockLevelPage, error) {
	if threshold < 0 {
		return entities.StockLevelPage{}, entities.NewValidationError("threshold", "must not be negative")
	}
	if offset < 0 {
		return entities.StockLevelPage{}, entities.NewValidationError("offset", "must not be negative")
	}
	limit = clampLimit(limit, defaultStockPageSize, maxStockPageSize)

	items, total, err := s.stock.ListLow(ctx, threshold, limit, offset)
	if err != nil {
		return entities.StockLevelPage{}, err
	}
	return entities.StockLevelPage{Items: items, Total: total, Limit: limit, Offset: offset}, nil
}

func (s *StockService) ListMovements(ctx context.Context, f entities.MovementFilter) (entities.MovementPage, error) {
	if f.Type != "" && !f.Type.Valid() {
		return entities.MovementPage{}, entities.NewValidationError("type", fmt.Sprintf("unknown movement type %q", f.Type))
	}
	if f.Offset < 0 {
		return entities.MovementPage{}, entities.NewValidationError("offset", "must not be negative")
	}
	f.Limit = clampLimit(f.Limit, defaultMovementPageSize, maxMovementPageSize)

	items, total, err := s.stock.ListMovements(ctx, f)
	if err != nil {
		return entities.MovementPage{}, err
	}
	return entities.MovementPage{Items: items, Total: total, Limit: f.Limit, Offset: f.Offset}, nil
}

func (s *StockService) GetMovement(ctx context.Context, id int64) (entities.StockMovement, error) {
	movement, err := s.stock.GetMovement(ctx, id)
	if errors.Is(err, entities.ErrMovementNotFound) {
		return entities.StockMovement{}, fmt.Errorf("movement %d: %w", id, err)
	}
	return movement, err
}
