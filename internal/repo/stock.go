package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/SergeyBogomolovv/garden-shop/internal/entities"
	"github.com/SergeyBogomolovv/garden-shop/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var movementColumns = []string{
	"id", "variant_id", "quantity_change", "movement_type", "order_id", "reason", "created_at",
}

// StockRepo - учет остатков. Количество меняется только условными UPDATE,
// поэтому остаток не уходит в минус при конкурентных заказах.
type StockRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewStockRepo(db *sqlx.DB) *StockRepo {
	return &StockRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *StockRepo) GetAvailable(ctx context.Context, variantID int64) (int, error) {
	query, args := r.qb.Select("quantity").
		From("stock").
		Where(sq.Eq{"variant_id": variantID}).
		MustSql()

	var quantity int
	err := trm.Conn(ctx, r.db).GetContext(ctx, &quantity, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, entities.ErrStockNotFound
	}
	if err != nil {
		return 0, wrapErr("failed to get stock", err)
	}
	return quantity, nil
}

// TryReserve списывает quantity одним условным UPDATE.
// false без изменений, если остатка не хватает или строки нет.
func (r *StockRepo) TryReserve(ctx context.Context, variantID int64, quantity int) (bool, error) {
	if quantity <= 0 {
		return false, entities.NewValidationError("quantity", "must be positive")
	}

	query, args := r.qb.Update("stock").
		Set("quantity", sq.Expr("quantity - ?", quantity)).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"variant_id": variantID}).
		Where(sq.GtOrEq{"quantity": quantity}).
		MustSql()

	res, err := trm.Conn(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return false, wrapErr("failed to reserve stock", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, wrapErr("failed to reserve stock", err)
	}
	return affected == 1, nil
}

func (r *StockRepo) Release(ctx context.Context, variantID int64, quantity int) error {
	if quantity <= 0 {
		return entities.NewValidationError("quantity", "must be positive")
	}

	query, args := r.qb.Update("stock").
		Set("quantity", sq.Expr("quantity + ?", quantity)).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"variant_id": variantID}).
		MustSql()

	res, err := trm.Conn(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return wrapErr("failed to release stock", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return wrapErr("failed to release stock", err)
	}
	if affected == 0 {
		return entities.ErrStockNotFound
	}
	return nil
}

func (r *StockRepo) RecordMovements(ctx context.Context, movements []entities.StockMovement) error {
	if len(movements) == 0 {
		return nil
	}

	q := r.qb.Insert("stock_movements").
		Columns("variant_id", "quantity_change", "movement_type", "order_id", "reason")
	for _, m := range movements {
		q = q.Values(m.VariantID, m.QuantityChange, string(m.Type), nullID(m.OrderID), m.Reason)
	}

	query, args := q.MustSql()
	if _, err := trm.Conn(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return wrapErr("failed to record stock movements", err)
	}
	return nil
}

func (r *StockRepo) selectLevels() sq.SelectBuilder {
	return r.qb.Select("s.variant_id", "v.sku", "p.name AS product_name", "s.quantity", "s.updated_at").
		From("stock s").
		Join("product_variants v ON v.id = s.variant_id").
		Join("products p ON p.id = v.product_id")
}

func (r *StockRepo) GetLevel(ctx context.Context, variantID int64) (entities.StockLevel, error) {
	query, args := r.selectLevels().
		Where(sq.Eq{"s.variant_id": variantID}).
		MustSql()

	var l StockLevel
	err := trm.Conn(ctx, r.db).GetContext(ctx, &l, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.StockLevel{}, entities.ErrStockNotFound
	}
	if err != nil {
		return entities.StockLevel{}, wrapErr("failed to get stock level", err)
	}
	return StockLevelToEntity(l), nil
}

// ListLow - остатки не больше threshold, самые дефицитные первыми.
func (r *StockRepo) ListLow(ctx context.Context, threshold, limit, offset int) ([]entities.StockLevel, int, error) {
	query, args := r.qb.Select("COUNT(*)").
		From("stock").
		Where(sq.LtOrEq{"quantity": threshold}).
		MustSql()

	var total int
	if err := trm.Conn(ctx, r.db).GetContext(ctx, &total, query, args...); err != nil {
		return nil, 0, wrapErr("failed to count low stock", err)
	}

	query, args = r.selectLevels().
		Where(sq.LtOrEq{"s.quantity": threshold}).
		OrderBy("s.quantity", "s.variant_id").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		MustSql()

	var rows []StockLevel
	if err := trm.Conn(ctx, r.db).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, wrapErr("failed to select low stock", err)
	}

	result := make([]entities.StockLevel, 0, len(rows))
	for _, l := range rows {
		result = append(result, StockLevelToEntity(l))
	}
	return result, total, nil
}

func movementFilter(f entities.MovementFilter) sq.And {
	where := sq.And{}
	if f.VariantID != 0 {
		where = append(where, sq.Eq{"variant_id": f.VariantID})
	}
	if f.Type != "" {
		where = append(where, sq.Eq{"movement_type": string(f.Type)})
	}
	if f.OrderID != 0 {
		where = append(where, sq.Eq{"order_id": f.OrderID})
	}
	return where
}

// ListMovements - журнал остатков, новые записи первыми.
func (r *StockRepo) ListMovements(ctx context.Context, f entities.MovementFilter) ([]entities.StockMovement, int, error) {
	where := movementFilter(f)

	query, args := r.qb.Select("COUNT(*)").
		From("stock_movements").
		Where(where).
		MustSql()

	var total int
	if err := trm.Conn(ctx, r.db).GetContext(ctx, &total, query, args...); err != nil {
		return nil, 0, wrapErr("failed to count stock movements", err)
	}

	query, args = r.qb.Select(movementColumns...).
		From("stock_movements").
		Where(where).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset)).
		MustSql()

	var rows []StockMovement
	if err := trm.Conn(ctx, r.db).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, wrapErr("failed to select stock movements", err)
	}

	result := make([]entities.StockMovement, 0, len(rows))
	for _, m := range rows {
		result = append(result, StockMovementToEntity(m))
	}
	return result, total, nil
}

func (r *StockRepo) GetMovement(ctx context.Context, id int64) (entities.StockMovement, error) {
	query, args := r.qb.Select(movementColumns...).
		From("stock_movements").
		Where(sq.Eq{"id": id}).
		MustSql()

	var m StockMovement
	err := trm.Conn(ctx, r.db).GetContext(ctx, &m, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.StockMovement{}, entities.ErrMovementNotFound
	}
	if err != nil {
		return entities.StockMovement{}, wrapErr("failed to get stock movement", err)
	}
	return StockMovementToEntity(m), nil
}

func nullID(id int64) sql.NullInt64 {
	return sql.NullInt64{Int64: id, Valid: id != 0}
}
