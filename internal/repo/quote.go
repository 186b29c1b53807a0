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

var quoteColumns = []string{"id", "user_id", "status", "total", "created_at", "updated_at"}

var quoteLineColumns = []string{"id", "quote_id", "variant_id", "position", "quantity", "unit_price"}

type QuoteRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewQuoteRepo(db *sqlx.DB) *QuoteRepo {
	return &QuoteRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// InsertQuote сохраняет смету в статусе pending вместе со строками.
// Вызывать внутри транзакции.
func (r *QuoteRepo) InsertQuote(ctx context.Context, draft entities.QuoteDraft) (entities.Quote, error) {
	if len(draft.Lines) == 0 {
		return entities.Quote{}, entities.NewValidationError("lines", "must not be empty")
	}

	query, args := r.qb.Insert("quotes").
		Columns("user_id", "status", "total").
		Values(draft.UserID, string(entities.QuotePending), draft.Total).
		Suffix("RETURNING " + strings.Join(quoteColumns, ", ")).
		MustSql()

	var q Quote
	if err := trm.Conn(ctx, r.db).GetContext(ctx, &q, query, args...); err != nil {
		return entities.Quote{}, fmt.Errorf("failed to insert quote: %w", err)
	}

	ins := r.qb.Insert("quote_items").
		Columns("quote_id", "variant_id", "position", "quantity", "unit_price").
		Suffix("RETURNING " + strings.Join(quoteLineColumns, ", "))
	for i, l := range draft.Lines {
		ins = ins.Values(q.ID, l.VariantID, i, l.Quantity, l.UnitPrice)
	}

	query, args = ins.MustSql()
	var lines []QuoteLine
	if err := trm.Conn(ctx, r.db).SelectContext(ctx, &lines, query, args...); err != nil {
		return entities.Quote{}, fmt.Errorf("failed to insert quote lines: %w", err)
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].Position < lines[j].Position })

	return QuoteToEntity(q, lines), nil
}

func (r *QuoteRepo) GetQuoteByID(ctx context.Context, id int64) (entities.Quote, error) {
	return r.getQuote(ctx, r.qb.Select(quoteColumns...).From("quotes").Where(sq.Eq{"id": id}))
}

func (r *QuoteRepo) GetQuoteForUpdate(ctx context.Context, id int64) (entities.Quote, error) {
	return r.getQuote(ctx, r.qb.Select(quoteColumns...).From("quotes").Where(sq.Eq{"id": id}).Suffix("FOR UPDATE"))
}

func (r *QuoteRepo) getQuote(ctx context.Context, b sq.SelectBuilder) (entities.Quote, error) {
	query, args := b.MustSql()

	var q Quote
	err := trm.Conn(ctx, r.db).GetContext(ctx, &q, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Quote{}, entities.ErrQuoteNotFound
	}
	if err != nil {
		return entities.Quote{}, fmt.Errorf("failed to get quote: %w", err)
	}

	lines, err := r.linesFor(ctx, []int64{q.ID})
	if err != nil {
		return entities.Quote{}, err
	}
	return QuoteToEntity(q, lines[q.ID]), nil
}

// ListForUser возвращает страницу смет пользователя и их общее число.
func (r *QuoteRepo) ListForUser(ctx context.Context, userID int64, limit, offset int) ([]entities.Quote, int, error) {
	query, args := r.qb.Select("COUNT(*)").
		From("quotes").
		Where(sq.Eq{"user_id": userID}).
		MustSql()

	var total int
	if err := trm.Conn(ctx, r.db).GetContext(ctx, &total, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count quotes: %w", err)
	}

	query, args = r.qb.Select(quoteColumns...).
		From("quotes").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		MustSql()

	var rows []Quote
	if err := trm.Conn(ctx, r.db).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to select quotes: %w", err)
	}
	if len(rows) == 0 {
		return []entities.Quote{}, total, nil
	}

	ids := make([]int64, len(rows))
	for i, q := range rows {
		ids[i] = q.ID
	}
	lines, err := r.linesFor(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	result := make([]entities.Quote, 0, len(rows))
	for _, q := range rows {
		result = append(result, QuoteToEntity(q, lines[q.ID]))
	}
	return result, total, nil
}

func (r *QuoteRepo) UpdateQuoteStatus(ctx context.Context, id int64, status entities.QuoteStatus) (entities.Quote, error) {
	query, args := r.qb.Update("quotes").
		Set("status", string(status)).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(quoteColumns, ", ")).
		MustSql()

	var q Quote
	err := trm.Conn(ctx, r.db).GetContext(ctx, &q, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Quote{}, entities.ErrQuoteNotFound
	}
	if err != nil {
		return entities.Quote{}, fmt.Errorf("failed to update quote status: %w", err)
	}

	lines, err := r.linesFor(ctx, []int64{q.ID})
	if err != nil {
		return entities.Quote{}, err
	}
	return QuoteToEntity(q, lines[q.ID]), nil
}

func (r *QuoteRepo) linesFor(ctx context.Context, quoteIDs []int64) (map[int64][]QuoteLine, error) {
	query, args := r.qb.Select(quoteLineColumns...).
		From("quote_items").
		Where(sq.Eq{"quote_id": quoteIDs}).
		OrderBy("quote_id", "position").
		MustSql()

	var rows []QuoteLine
	if err := trm.Conn(ctx, r.db).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select quote lines: %w", err)
	}

	result := make(map[int64][]QuoteLine, len(quoteIDs))
	for _, l := range rows {
		result[l.QuoteID] = append(result[l.QuoteID], l)
	}
	return result, nil
}
