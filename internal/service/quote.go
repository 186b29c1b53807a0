package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/garden-shop/internal/entities"
	"github.com/SergeyBogomolovv/garden-shop/pkg/trm"
)

const (
	defaultQuotePageSize = 20
	maxQuotePageSize     = 100
)

// LinePricer проверяет позиции и фиксирует цены, как при оформлении заказа.
type LinePricer interface {
	Price(ctx context.Context, requested []entities.LineRequest) ([]entities.DraftLine, error)
}

type QuoteRepo interface {
	InsertQuote(ctx context.Context, draft entities.QuoteDraft) (entities.Quote, error)
	GetQuoteByID(ctx context.Context, id int64) (entities.Quote, error)
	GetQuoteForUpdate(ctx context.Context, id int64) (entities.Quote, error)
	ListForUser(ctx context.Context, userID int64, limit, offset int) ([]entities.Quote, int, error)
	UpdateQuoteStatus(ctx context.Context, id int64, status entities.QuoteStatus) (entities.Quote, error)
}

type QuoteService struct {
	logger    *slog.Logger
	txManager trm.Manager
	pricer    LinePricer
	quotes    QuoteRepo
}

func NewQuoteService(logger *slog.Logger, txManager trm.Manager, pricer LinePricer, quotes QuoteRepo) *QuoteService {
	return &QuoteService{
		logger:    logger.With(slog.String("service", "quote")),
		txManager: txManager,
		pricer:    pricer,
		quotes:    quotes,
	}
}

// CreateQuote считает смету по текущим ценам. Остатки не резервируются и не проверяются.
func (s *QuoteService) CreateQuote(ctx context.Context, userID int64, lines []entities.LineRequest) (entities.Quote, error) {
	priced, err := s.pricer.Price(ctx, lines)
	if err != nil {
		return entities.Quote{}, err
	}

	var quote entities.Quote
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		quote, err = s.quotes.InsertQuote(ctx, entities.QuoteDraft{
			UserID: userID,
			Lines:  priced,
			Total:  entities.OrderTotal(priced),
		})
		return err
	})
	if err != nil {
		return entities.Quote{}, err
	}

	s.logger.InfoContext(ctx, "quote created",
		slog.Int64("quote_id", quote.ID),
		slog.Int64("user_id", userID),
		slog.String("total", quote.Total.StringFixed(2)),
	)
	return quote, nil
}

// GetQuote отдает смету владельцу или администратору.
func (s *QuoteService) GetQuote(ctx context.Context, principal entities.Principal, id int64) (entities.Quote, error) {
	quote, err := s.quotes.GetQuoteByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if err := canAccessQuote(principal, quote); err != nil {
		return entities.Quote{}, err
	}
	return quote, nil
}

func (s *QuoteService) ListQuotes(ctx context.Context, userID int64, limit, offset int) (entities.QuotePage, error) {
	if offset < 0 {
		return entities.QuotePage{}, entities.NewValidationError("offset", "must not be negative")
	}
	limit = clampLimit(limit, defaultQuotePageSize, maxQuotePageSize)

	quotes, total, err := s.quotes.ListForUser(ctx, userID, limit, offset)
	if err != nil {
		return entities.QuotePage{}, err
	}
	return entities.QuotePage{Quotes: quotes, Total: total, Limit: limit, Offset: offset}, nil
}

// UpdateQuoteStatus принимает или отклоняет смету. Истечение срока ставит только администратор.
func (s *QuoteService) UpdateQuoteStatus(
	ctx context.Context,
	principal entities.Principal,
	id int64,
	status entities.QuoteStatus,
) (entities.Quote, error) {
	if !status.Valid() {
		return entities.Quote{}, entities.NewValidationError("status", fmt.Sprintf("unknown quote status %q", status))
	}
	if status == entities.QuoteExpired && !principal.IsAdmin {
		return entities.Quote{}, entities.NewValidationError("status", "only staff can expire a quote")
	}

	var quote entities.Quote
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.quotes.GetQuoteForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := canAccessQuote(principal, current); err != nil {
			return err
		}
		if current.Status == status {
			quote = current
			return nil
		}
		if !current.Status.CanTransitionTo(status) {
			return &entities.QuoteTransitionError{From: current.Status, To: status}
		}

		quote, err = s.quotes.UpdateQuoteStatus(ctx, id, status)
		return err
	})
	if err != nil {
		return entities.Quote{}, err
	}

	s.logger.InfoContext(ctx, "quote status changed", slog.Int64("quote_id", id), slog.String("status", string(quote.Status)))
	return quote, nil
}

func canAccessQuote(principal entities.Principal, quote entities.Quote) error {
	if !principal.IsAdmin && quote.UserID != principal.UserID {
		return fmt.Errorf("quote %d: %w", quote.ID, entities.ErrForbidden)
	}
	return nil
}
