package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/SergeyBogomolovv/garden-shop/internal/entities"
	"github.com/SergeyBogomolovv/garden-shop/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var addressColumns = []string{
	"id", "user_id", "street", "city", "postal_code", "country", "is_default", "created_at",
}

type AddressRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewAddressRepo(db *sqlx.DB) *AddressRepo {
	return &AddressRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *AddressRepo) GetByID(ctx context.Context, id int64) (entities.Address, error) {
	query, args := r.qb.Select(addressColumns...).
		From("addresses").
		Where(sq.Eq{"id": id}).
		MustSql()

	return r.get(ctx, query, args)
}

func (r *AddressRepo) GetDefault(ctx context.Context, userID int64) (entities.Address, error) {
	query, args := r.qb.Select(addressColumns...).
		From("addresses").
		Where(sq.Eq{"user_id": userID, "is_default": true}).
		MustSql()

	return r.get(ctx, query, args)
}

func (r *AddressRepo) ListForUser(ctx context.Context, userID int64) ([]entities.Address, error) {
	query, args := r.qb.Select(addressColumns...).
		From("addresses").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("is_default DESC", "id").
		MustSql()

	var rows []Address
	if err := trm.Conn(ctx, r.db).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select addresses: %w", err)
	}

	result := make([]entities.Address, 0, len(rows))
	for _, a := range rows {
		result = append(result, AddressToEntity(a))
	}
	return result, nil
}

func (r *AddressRepo) CountForUser(ctx context.Context, userID int64) (int, error) {
	query, args := r.qb.Select("COUNT(*)").
		From("addresses").
		Where(sq.Eq{"user_id": userID}).
		MustSql()

	var count int
	if err := trm.Conn(ctx, r.db).GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count addresses: %w", err)
	}
	return count, nil
}

func (r *AddressRepo) Create(ctx context.Context, userID int64, in entities.AddressInput, isDefault bool) (entities.Address, error) {
	query, args := r.qb.Insert("addresses").
		Columns("user_id", "street", "city", "postal_code", "country", "is_default").
		Values(userID, in.Street, in.City, in.PostalCode, in.Country, isDefault).
		Suffix("RETURNING " + strings.Join(addressColumns, ", ")).
		MustSql()

	var a Address
	if err := trm.Conn(ctx, r.db).GetContext(ctx, &a, query, args...); err != nil {
		return entities.Address{}, fmt.Errorf("failed to create address: %w", err)
	}
	return AddressToEntity(a), nil
}

func (r *AddressRepo) Update(ctx context.Context, id int64, in entities.AddressInput) (entities.Address, error) {
	query, args := r.qb.Update("addresses").
		Set("street", in.Street).
		Set("city", in.City).
		Set("postal_code", in.PostalCode).
		Set("country", in.Country).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(addressColumns, ", ")).
		MustSql()

	var a Address
	err := trm.Conn(ctx, r.db).GetContext(ctx, &a, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Address{}, entities.ErrAddressNotFound
	}
	if err != nil {
		return entities.Address{}, fmt.Errorf("failed to update address: %w", err)
	}
	return AddressToEntity(a), nil
}

// Delete не удаляет адрес, на который ссылаются заказы: вернется entities.ErrAddressInUse.
func (r *AddressRepo) Delete(ctx context.Context, id int64) error {
	query, args := r.qb.Delete("addresses").
		Where(sq.Eq{"id": id}).
		MustSql()

	res, err := trm.Conn(ctx, r.db).ExecContext(ctx, query, args...)
	if isViolation(err, codeForeignKeyViolation) {
		return entities.ErrAddressInUse
	}
	if err != nil {
		return fmt.Errorf("failed to delete address: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.ErrAddressNotFound
	}
	return nil
}

// ClearDefaults снимает флаг по умолчанию со всех адресов пользователя.
func (r *AddressRepo) ClearDefaults(ctx context.Context, userID int64) error {
	query, args := r.qb.Update("addresses").
		Set("is_default", false).
		Where(sq.Eq{"user_id": userID, "is_default": true}).
		MustSql()

	if _, err := trm.Conn(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to clear default addresses: %w", err)
	}
	return nil
}

func (r *AddressRepo) SetDefault(ctx context.Context, id int64) error {
	query, args := r.qb.Update("addresses").
		Set("is_default", true).
		Where(sq.Eq{"id": id}).
		MustSql()

	res, err := trm.Conn(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to set default address: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.ErrAddressNotFound
	}
	return nil
}

func (r *AddressRepo) get(ctx context.Context, query string, args []any) (entities.Address, error) {
	var a Address
	err := trm.Conn(ctx, r.db).GetContext(ctx, &a, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Address{}, entities.ErrAddressNotFound
	}
	if err != nil {
		return entities.Address{}, fmt.Errorf("failed to get address: %w", err)
	}
	return AddressToEntity(a), nil
}
