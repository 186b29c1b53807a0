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

var userColumns = []string{"id", "email", "name", "password_hash", "is_admin"}

type UserRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewUserRepo(db *sqlx.DB) *UserRepo {
	return &UserRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *UserRepo) GetByID(ctx context.Context, id int64) (entities.User, error) {
	return r.get(ctx, sq.Eq{"id": id})
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (entities.User, error) {
	return r.get(ctx, sq.Expr("LOWER(email) = LOWER(?)", email))
}

// Create возвращает entities.ErrEmailTaken, если email уже занят (без учета регистра).
func (r *UserRepo) Create(ctx context.Context, email, name, passwordHash string) (entities.User, error) {
	query, args := r.qb.Insert("users").
		Columns("email", "name", "password_hash").
		Values(email, name, passwordHash).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		MustSql()

	var u User
	err := trm.Conn(ctx, r.db).GetContext(ctx, &u, query, args...)
	if isViolation(err, codeUniqueViolation) {
		return entities.User{}, entities.ErrEmailTaken
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return UserToEntity(u), nil
}

func (r *UserRepo) get(ctx context.Context, pred sq.Sqlizer) (entities.User, error) {
	query, args := r.qb.Select(userColumns...).
		From("users").
		Where(pred).
		MustSql()

	var u User
	err := trm.Conn(ctx, r.db).GetContext(ctx, &u, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.User{}, entities.ErrUserNotFound
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return UserToEntity(u), nil
}
