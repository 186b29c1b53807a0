package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/garden-shop/internal/entities"
	"github.com/SergeyBogomolovv/garden-shop/pkg/trm"
)

// OrderStore сохраняет заказ вместе с резервированием остатков.
// Остатки и заказы живут в одной транзакции, поэтому откат транзакции отменяет и резервы.
type OrderStore struct {
	logger    *slog.Logger
	txManager trm.Manager
	orders    OrderRepo
	stock     StockLedger
}

func NewOrderStore(logger *slog.Logger, txManager trm.Manager, orders OrderRepo, stock StockLedger) *OrderStore {
	return &OrderStore{
		logger:    logger.With(slog.String("service", "order_store")),
		txManager: txManager,
		orders:    orders,
		stock:     stock,
	}
}

func (s *OrderStore) CreateOrder(ctx context.Context, draft entities.OrderDraft) (entities.Order, error) {
	if len(draft.Lines) == 0 {
		return entities.Order{}, entities.NewValidationError("lines", "must not be empty")
	}

	var order entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		// Резервируем в порядке строк, первая неудача прерывает весь заказ.
		for _, l := range draft.Lines {
			ok, err := s.stock.TryReserve(ctx, l.VariantID, l.Quantity)
			if err != nil {
				return fmt.Errorf("failed to reserve variant %d: %w", l.VariantID, err)
			}
			if !ok {
				return s.insufficient(ctx, l)
			}
		}

		created, err := s.orders.InsertOrder(ctx, draft)
		if err != nil {
			return err
		}

		lines, err := s.orders.InsertLines(ctx, created.ID, draft.Lines)
		if err != nil {
			return err
		}
		created.Lines = lines

		movements := make([]entities.StockMovement, 0, len(draft.Lines))
		for _, l := range draft.Lines {
			movements = append(movements, entities.StockMovement{
				VariantID:      l.VariantID,
				QuantityChange: -l.Quantity,
				Type:           entities.MovementOrder,
				OrderID:        created.ID,
			})
		}
		if err := s.stock.RecordMovements(ctx, movements); err != nil {
			return err
		}

		order = created
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.logger.DebugContext(ctx, "order created", slog.Int64("order_id", order.ID), slog.Int64("user_id", order.UserID))
	return order, nil
}

func (s *OrderStore) insufficient(ctx context.Context, l entities.DraftLine) error {
	available, err := s.stock.GetAvailable(ctx, l.VariantID)
	if err != nil && !errors.Is(err, entities.ErrStockNotFound) {
		return err
	}
	return &entities.InsufficientStockError{
		VariantID: l.VariantID,
		Requested: l.Quantity,
		Available: available,
	}
}

// UpdateStatus возвращает changed=false, если статус уже равен запрошенному.
// Отмена возвращает количества строк на склад в той же транзакции.
func (s *OrderStore) UpdateStatus(ctx context.Context, id int64, status entities.OrderStatus) (entities.Order, bool, error) {
	if !status.Valid() {
		return entities.Order{}, false, entities.NewValidationError("status", fmt.Sprintf("unknown status %q", status))
	}

	var (
		order   entities.Order
		changed bool
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.orders.GetOrderForUpdate(ctx, id)
		if err != nil {
			return err
		}

		if current.Status == status {
			order = current
			return nil
		}
		if !current.Status.CanTransitionTo(status) {
			return &entities.InvalidTransitionError{From: current.Status, To: status}
		}

		updated, err := s.orders.UpdateStatus(ctx, id, status)
		if err != nil {
			return err
		}

		if status == entities.StatusCancelled {
			if err := s.restock(ctx, updated); err != nil {
				return err
			}
		}

		order, changed = updated, true
		return nil
	})
	if err != nil {
		return entities.Order{}, false, err
	}
	return order, changed, nil
}

func (s *OrderStore) restock(ctx context.Context, order entities.Order) error {
	movements := make([]entities.StockMovement, 0, len(order.Lines))
	for _, l := range order.Lines {
		err := s.stock.Release(ctx, l.VariantID, l.Quantity)
		if errors.Is(err, entities.ErrStockNotFound) {
			// не ErrNotFound: иначе отмена выглядела бы как отсутствующий заказ
			return fmt.Errorf("%w: no stock row for variant %d of order %d",
				entities.ErrInconsistentStock, l.VariantID, order.ID)
		}
		if err != nil {
			return fmt.Errorf("failed to release variant %d: %w", l.VariantID, err)
		}
		movements = append(movements, entities.StockMovement{
			VariantID:      l.VariantID,
			QuantityChange: l.Quantity,
			Type:           entities.MovementCancellation,
			OrderID:        order.ID,
		})
	}
	return s.stock.RecordMovements(ctx, movements)
}

func (s *OrderStore) GetByID(ctx context.Context, id int64) (entities.Order, error) {
	return s.orders.GetOrderByID(ctx, id)
}

func (s *OrderStore) ListForUser(ctx context.Context, userID int64, limit, offset int) ([]entities.Order, error) {
	return s.orders.ListForUser(ctx, userID, limit, offset)
}

func (s *OrderStore) LatestOrders(ctx context.Context, count int) ([]entities.Order, error) {
	return s.orders.LatestOrders(ctx, count)
}
