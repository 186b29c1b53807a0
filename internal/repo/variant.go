package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/garden-shop/internal/entities"
	"github.com/SergeyBogomolovv/garden-shop/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type VariantRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewVariantRepo(db *sqlx.DB) *VariantRepo {
	return &VariantRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *VariantRepo) selectVariants() sq.SelectBuilder {
	return r.qb.Select(
		"v.id", "v.sku", "v.product_id", "p.name AS product_name",
		"v.attributes", "v.price", "v.is_active").
		From("product_variants v").
		Join("products p ON p.id = v.product_id")
}

func (r *VariantRepo) GetByID(ctx context.Context, id int64) (entities.Variant, error) {
	query, args := r.selectVariants().
		Where(sq.Eq{"v.id": id}).
		MustSql()

	return r.get(ctx, query, args)
}

func (r *VariantRepo) GetBySKU(ctx context.Context, sku string) (entities.Variant, error) {
	query, args := r.selectVariants().
		Where(sq.Eq{"v.sku": sku}).
		MustSql()

	return r.get(ctx, query, args)
}

// ListByProductName возвращает активные варианты продукта (имя без учета регистра).
func (r *VariantRepo) ListByProductName(ctx context.Context, name string) ([]entities.Variant, error) {
	query, args := r.selectVariants().
		Where(sq.Expr("LOWER(p.name) = LOWER(?)", name)).
		Where(sq.Eq{"v.is_active": true}).
		OrderBy("v.id").
		MustSql()

	var rows []Variant
	if err := trm.Conn(ctx, r.db).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select variants: %w", err)
	}

	result := make([]entities.Variant, 0, len(rows))
	for _, v := range rows {
		result = append(result, VariantToEntity(v))
	}
	return result, nil
}

func (r *VariantRepo) get(ctx context.Context, query string, args []any) (entities.Variant, error) {
	var v Variant
	err := trm.Conn(ctx, r.db).GetContext(ctx, &v, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Variant{}, entities.ErrVariantNotFound
	}
	if err != nil {
		return entities.Variant{}, fmt.Errorf("failed to get variant: %w", err)
	}
	return VariantToEntity(v), nil
}
