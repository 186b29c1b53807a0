package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/garden-shop/internal/entities"
	"github.com/SergeyBogomolovv/garden-shop/internal/middleware"
	"github.com/SergeyBogomolovv/garden-shop/internal/service"
	"github.com/SergeyBogomolovv/garden-shop/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type StockService interface {
	GetStock(ctx context.Context, variantID int64) (entities.StockLevel, error)
	AdjustStock(ctx context.Context, variantID int64, change int, reason string) (entities.StockLevel, error)
	ListLowStock(ctx context.Context, threshold, limit, offset int) (entities.StockLevelPage, error)
	ListMovements(ctx context.Context, f entities.MovementFilter) (entities.MovementPage, error)
	GetMovement(ctx context.Context, id int64) (entities.StockMovement, error)
}

// StockHandler - складские операции, доступные только администратору.
type StockHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      StockService
	auth     Middleware
}

func NewStockHandler(logger *slog.Logger, svc StockService, auth Middleware) *StockHandler {
	return &StockHandler{
		logger:   logger.With(slog.String("handler", "stock")),
		validate: validator.New(),
		svc:      svc,
		auth:     auth,
	}
}

func (h *StockHandler) Init(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(h.auth, middleware.RequireAdmin)

		r.Get("/stock/low", h.ListLowStock)
		r.Get("/stock/{id}", h.GetStock)
		r.Patch("/stock/{id}", h.AdjustStock)
		r.Get("/stock-movements", h.ListMovements)
		r.Get("/stock-movements/{id}", h.GetMovement)
	})
}

// GetStock возвращает остаток варианта.
// @Summary      Остаток варианта
// @Tags         stock
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Идентификатор варианта"
// @Success      200  {object}  StockLevel
// @Failure      400  {object}  utils.ErrorResponse "Некорректный ID"
// @Failure      403  {object}  utils.ErrorResponse "Нет прав"
// @Failure      404  {object}  utils.ErrorResponse "Остаток не найден"
// @Router       /stock/{id} [get]
func (h *StockHandler) GetStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	level, err := h.svc.GetStock(ctx, id)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "stock not found")
		return
	}

	utils.WriteJSON(w, StockLevelEntityToJSON(level), http.StatusOK)
}

// AdjustStock приходует или списывает остаток вручную.
// @Summary      Корректировка остатка
// @Description  Пишет движение adjustment. Списание больше остатка отклоняется
// @Tags         stock
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      int                 true  "Идентификатор варианта"
// @Param        request  body      AdjustStockRequest  true  "Изменение и причина"
// @Success      200  {object}  StockLevel
// @Failure      400  {object}  utils.ValidationErrorResponse "Некорректный запрос"
// @Failure      404  {object}  utils.ErrorResponse "Остаток не найден"
// @Failure      409  {object}  StockConflictResponse "Недостаточно остатка"
// @Router       /stock/{id} [patch]
func (h *StockHandler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req AdjustStockRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	level, err := h.svc.AdjustStock(ctx, id, req.QuantityChange, req.Reason)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "stock not found")
		return
	}

	direction := "in"
	if req.QuantityChange < 0 {
		direction = "out"
	}
	stockAdjustments.WithLabelValues(direction).Inc()
	utils.WriteJSON(w, StockLevelEntityToJSON(level), http.StatusOK)
}

// ListLowStock возвращает варианты с малым остатком.
// @Summary      Заканчивающиеся товары
// @Tags         stock
// @Security     BearerAuth
// @Produce      json
// @Param        threshold  query     int  false  "Порог, по умолчанию 10"
// @Param        limit      query     int  false  "Размер страницы"
// @Param        offset     query     int  false  "Смещение"
// @Success      200  {object}  StockLevelList
// @Failure      400  {object}  utils.ErrorResponse "Некорректные параметры"
// @Router       /stock/low [get]
func (h *StockHandler) ListLowStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	threshold, ok := queryInt(w, r, "threshold", service.DefaultLowStockThreshold)
	if !ok {
		return
	}
	limit, ok := queryInt(w, r, "limit", 0)
	if !ok {
		return
	}
	offset, ok := queryInt(w, r, "offset", 0)
	if !ok {
		return
	}

	page, err := h.svc.ListLowStock(ctx, threshold, limit, offset)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "stock not found")
		return
	}

	res := StockLevelList{Items: make([]StockLevel, 0, len(page.Items)), Total: page.Total, Limit: page.Limit, Offset: page.Offset}
	for _, l := range page.Items {
		res.Items = append(res.Items, StockLevelEntityToJSON(l))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// ListMovements возвращает журнал остатков, новые записи первыми.
// @Summary      Журнал остатков
// @Tags         stock
// @Security     BearerAuth
// @Produce      json
// @Param        variant_id  query     int     false  "Вариант"
// @Param        order_id    query     int     false  "Заказ"
// @Param        type        query     string  false  "order, cancellation или adjustment"
// @Param        limit       query     int     false  "Размер страницы"
// @Param        offset      query     int     false  "Смещение"
// @Success      200  {object}  StockMovementList
// @Failure      400  {object}  utils.ErrorResponse "Некорректные параметры"
// @Failure      422  {object}  utils.ValidationErrorResponse "Неизвестный тип"
// @Router       /stock-movements [get]
func (h *StockHandler) ListMovements(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	variantID, ok := queryInt(w, r, "variant_id", 0)
	if !ok {
		return
	}
	orderID, ok := queryInt(w, r, "order_id", 0)
	if !ok {
		return
	}
	limit, ok := queryInt(w, r, "limit", 0)
	if !ok {
		return
	}
	offset, ok := queryInt(w, r, "offset", 0)
	if !ok {
		return
	}

	f := entities.MovementFilter{
		VariantID: int64(variantID),
		OrderID:   int64(orderID),
		Type:      entities.MovementType(r.URL.Query().Get("type")),
		Limit:     limit,
		Offset:    offset,
	}
	page, err := h.svc.ListMovements(ctx, f)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "movement not found")
		return
	}

	res := StockMovementList{Items: make([]StockMovement, 0, len(page.Items)), Total: page.Total, Limit: page.Limit, Offset: page.Offset}
	for _, m := range page.Items {
		res.Items = append(res.Items, StockMovementEntityToJSON(m))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// GetMovement возвращает запись журнала.
// @Summary      Запись журнала остатков
// @Tags         stock
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Идентификатор записи"
// @Success      200  {object}  StockMovement
// @Failure      404  {object}  utils.ErrorResponse "Запись не найдена"
// @Router       /stock-movements/{id} [get]
func (h *StockHandler) GetMovement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	movement, err := h.svc.GetMovement(ctx, id)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "movement not found")
		return
	}

	utils.WriteJSON(w, StockMovementEntityToJSON(movement), http.StatusOK)
}

func queryInt(w http.ResponseWriter, r *http.Request, name string, def int) (int, bool) {
	v, err := utils.QueryInt(r, name, def)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return 0, false
	}
	return v, true
}
