package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/garden-shop/internal/entities"
	"github.com/SergeyBogomolovv/garden-shop/internal/middleware"
	"github.com/SergeyBogomolovv/garden-shop/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type QuoteService interface {
	CreateQuote(ctx context.Context, userID int64, lines []entities.LineRequest) (entities.Quote, error)
	GetQuote(ctx context.Context, principal entities.Principal, id int64) (entities.Quote, error)
	ListQuotes(ctx context.Context, userID int64, limit, offset int) (entities.QuotePage, error)
	UpdateQuoteStatus(ctx context.Context, principal entities.Principal, id int64, status entities.QuoteStatus) (entities.Quote, error)
}

type QuoteHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      QuoteService
	auth     Middleware
}

func NewQuoteHandler(logger *slog.Logger, svc QuoteService, auth Middleware) *QuoteHandler {
	return &QuoteHandler{
		logger:   logger.With(slog.String("handler", "quotes")),
		validate: validator.New(),
		svc:      svc,
		auth:     auth,
	}
}

func (h *QuoteHandler) Init(r chi.Router) {
	r.Route("/quotes", func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/", h.CreateQuote)
		r.Get("/", h.ListQuotes)
		r.Get("/{id}", h.GetQuote)
		r.Patch("/{id}/status", h.UpdateStatus)
	})
}

// CreateQuote считает смету.
// @Summary      Создать смету
// @Description  Фиксирует текущие цены. Остатки не резервируются
// @Tags         quotes
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateQuoteRequest  true  "Позиции"
// @Success      201  {object}  Quote
// @Failure      400  {object}  utils.ValidationErrorResponse "Некорректный запрос"
// @Failure      404  {object}  utils.ErrorResponse "Вариант не найден"
// @Failure      422  {object}  utils.ValidationErrorResponse "Ошибка валидации позиций"
// @Router       /quotes [post]
func (h *QuoteHandler) CreateQuote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal, _ := middleware.PrincipalFromContext(ctx)

	var req CreateQuoteRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	quote, err := h.svc.CreateQuote(ctx, principal.UserID, LineRequestsToEntity(req.Lines))
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "variant not found")
		return
	}

	quotesCreated.Inc()
	utils.WriteJSON(w, QuoteEntityToJSON(quote), http.StatusCreated)
}

// GetQuote возвращает смету.
// @Summary      Получить смету
// @Tags         quotes
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Идентификатор сметы"
// @Success      200  {object}  Quote
// @Failure      404  {object}  utils.ErrorResponse "Смета не найдена"
// @Router       /quotes/{id} [get]
func (h *QuoteHandler) GetQuote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal, _ := middleware.PrincipalFromContext(ctx)

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	quote, err := h.svc.GetQuote(ctx, principal, id)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "quote not found")
		return
	}

	utils.WriteJSON(w, QuoteEntityToJSON(quote), http.StatusOK)
}

// ListQuotes возвращает сметы текущего пользователя.
// @Summary      Список смет
// @Tags         quotes
// @Security     BearerAuth
// @Produce      json
// @Param        limit   query     int  false  "Размер страницы"
// @Param        offset  query     int  false  "Смещение"
// @Success      200  {object}  QuoteList
// @Failure      400  {object}  utils.ErrorResponse "Некорректные параметры"
// @Router       /quotes [get]
func (h *QuoteHandler) ListQuotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal, _ := middleware.PrincipalFromContext(ctx)

	limit, ok := queryInt(w, r, "limit", 0)
	if !ok {
		return
	}
	offset, ok := queryInt(w, r, "offset", 0)
	if !ok {
		return
	}

	page, err := h.svc.ListQuotes(ctx, principal.UserID, limit, offset)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "quotes not found")
		return
	}

	res := QuoteList{Quotes: make([]Quote, 0, len(page.Quotes)), Total: page.Total, Limit: page.Limit, Offset: page.Offset}
	for _, q := range page.Quotes {
		res.Quotes = append(res.Quotes, QuoteEntityToJSON(q))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// UpdateStatus принимает или отклоняет смету.
// @Summary      Решение по смете
// @Description  accepted или rejected для владельца, expired только для администратора
// @Tags         quotes
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      int                       true  "Идентификатор сметы"
// @Param        request  body      UpdateQuoteStatusRequest  true  "Новый статус"
// @Success      200  {object}  Quote
// @Failure      404  {object}  utils.ErrorResponse "Смета не найдена"
// @Failure      409  {object}  utils.ErrorResponse "Решение уже принято"
// @Failure      422  {object}  utils.ValidationErrorResponse "Неизвестный статус"
// @Router       /quotes/{id}/status [patch]
func (h *QuoteHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal, _ := middleware.PrincipalFromContext(ctx)

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req UpdateQuoteStatusRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	quote, err := h.svc.UpdateQuoteStatus(ctx, principal, id, entities.QuoteStatus(req.Status))
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "quote not found")
		return
	}

	utils.WriteJSON(w, QuoteEntityToJSON(quote), http.StatusOK)
}
