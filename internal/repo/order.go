package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/SergeyBogomolovv/garden-shop/internal/entities"
	"github.com/SergeyBogomolovv/garden-shop/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var orderColumns = []string{
	"id", "user_id", "status", "delivery_address_id", "billing_address_id",
	"total", "created_at", "updated_at",
}

var lineColumns = []string{
	"id", "order_id", "variant_id", "position", "quantity", "unit_price",
}

type OrderRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewOrderRepo(db *sqlx.DB) *OrderRepo {
	return &OrderRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// InsertOrder сохраняет шапку заказа в статусе pending, строки пишутся отдельно.
func (r *OrderRepo) InsertOrder(ctx context.Context, draft entities.OrderDraft) (entities.Order, error) {
	query, args := r.qb.Insert("orders").
		Columns("user_id", "status", "delivery_address_id", "billing_address_id", "total").
		Values(draft.UserID, string(entities.StatusPending), draft.DeliveryAddressID, draft.BillingAddressID, draft.Total).
		Suffix("RETURNING " + strings.Join(orderColumns, ", ")).
		MustSql()

	var o Order
	if err := trm.Conn(ctx, r.db).GetContext(ctx, &o, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to insert order: %w", err)
	}
	return OrderToEntity(o, nil), nil
}

func (r *OrderRepo) InsertLines(ctx context.Context, orderID int64, lines []entities.DraftLine) ([]entities.OrderLine, error) {
	if len(lines) == 0 {
		return nil, nil
	}

	q := r.qb.Insert("order_items").
		Columns("order_id", "variant_id", "position", "quantity", "unit_price").
		Suffix("RETURNING " + strings.Join(lineColumns, ", "))
	for i, l := range lines {
		q = q.Values(orderID, l.VariantID, i, l.Quantity, l.UnitPrice)
	}

	query, args := q.MustSql()
	var rows []OrderLine
	if err := trm.Conn(ctx, r.db).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to insert order lines: %w", err)
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Position < rows[j].Position })
	result := make([]entities.OrderLine, 0, len(rows))
	for _, l := range rows {
		result = append(result, OrderLineToEntity(l))
	}
	return result, nil
}

func (r *OrderRepo) GetOrderByID(ctx context.Context, id int64) (entities.Order, error) {
	return r.getOrder(ctx, r.qb.Select(orderColumns...).From("orders").Where(sq.Eq{"id": id}))
}

// GetOrderForUpdate блокирует строку заказа до конца транзакции.
func (r *OrderRepo) GetOrderForUpdate(ctx context.Context, id int64) (entities.Order, error) {
	return r.getOrder(ctx, r.qb.Select(orderColumns...).From("orders").Where(sq.Eq{"id": id}).Suffix("FOR UPDATE"))
}

func (r *OrderRepo) getOrder(ctx context.Context, b sq.SelectBuilder) (entities.Order, error) {
	query, args := b.MustSql()

	var o Order
	err := trm.Conn(ctx, r.db).GetContext(ctx, &o, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	lines, err := r.linesFor(ctx, []int64{o.ID})
	if err != nil {
		return entities.Order{}, err
	}
	return OrderToEntity(o, lines[o.ID]), nil
}

// ListForUser - заказы пользователя, новые первыми; при равном времени больший id первым.
func (r *OrderRepo) ListForUser(ctx context.Context, userID int64, limit, offset int) ([]entities.Order, error) {
	b := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	return r.selectOrders(ctx, b)
}

// LatestOrders нужен для прогрева кэша.
func (r *OrderRepo) LatestOrders(ctx context.Context, count int) ([]entities.Order, error) {
	b := r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(count))

	return r.selectOrders(ctx, b)
}

func (r *OrderRepo) UpdateStatus(ctx context.Context, id int64, status entities.OrderStatus) (entities.Order, error) {
	query, args := r.qb.Update("orders").
		Set("status", string(status)).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(orderColumns, ", ")).
		MustSql()

	var o Order
	err := trm.Conn(ctx, r.db).GetContext(ctx, &o, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to update order status: %w", err)
	}

	lines, err := r.linesFor(ctx, []int64{o.ID})
	if err != nil {
		return entities.Order{}, err
	}
	return OrderToEntity(o, lines[o.ID]), nil
}

func (r *OrderRepo) selectOrders(ctx context.Context, b sq.SelectBuilder) ([]entities.Order, error) {
	query, args := b.MustSql()

	var orders []Order
	if err := trm.Conn(ctx, r.db).SelectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}
	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]int64, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}

	lines, err := r.linesFor(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderToEntity(o, lines[o.ID]))
	}
	return result, nil
}

func (r *OrderRepo) linesFor(ctx context.Context, orderIDs []int64) (map[int64][]OrderLine, error) {
	query, args := r.qb.Select(lineColumns...).
		From("order_items").
		Where(sq.Eq{"order_id": orderIDs}).
		OrderBy("order_id", "position").
		MustSql()

	var rows []OrderLine
	if err := trm.Conn(ctx, r.db).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order lines: %w", err)
	}

	result := make(map[int64][]OrderLine, len(orderIDs))
	for _, l := range rows {
		result[l.OrderID] = append(result[l.OrderID], l)
	}
	return result, nil
}
