package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SergeyBogomolovv/garden-shop/internal/entities"
	"github.com/SergeyBogomolovv/garden-shop/internal/middleware"
	"github.com/SergeyBogomolovv/garden-shop/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type Middleware = func(http.Handler) http.Handler

type OrderService interface {
	PlaceOrder(ctx context.Context, userID, deliveryAddressID, billingAddressID int64, lines []entities.LineRequest) (entities.Order, error)
	GetOrder(ctx context.Context, principal entities.Principal, id int64) (entities.Order, error)
	ListOrders(ctx context.Context, userID int64, limit, offset int) (entities.OrderPage, error)
	UpdateStatus(ctx context.Context, id int64, status entities.OrderStatus) (entities.Order, error)
}

type OrderHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderService
	auth     Middleware
}

func NewOrderHandler(logger *slog.Logger, svc OrderService, auth Middleware) *OrderHandler {
	return &OrderHandler{
		logger:   logger.With(slog.String("handler", "orders")),
		validate: validator.New(),
		svc:      svc,
		auth:     auth,
	}
}

func (h *OrderHandler) Init(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/", h.PlaceOrder)
		r.Get("/", h.ListOrders)
		r.Get("/{id}", h.GetOrder)
		r.With(middleware.RequireAdmin).Patch("/{id}/status", h.UpdateStatus)
	})
}

// PlaceOrder создает заказ.
// @Summary      Оформить заказ
// @Description  Резервирует остатки и создает заказ со статусом pending
// @Tags         orders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateOrderRequest  true  "Адреса и позиции"
// @Success      201  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Некорректный запрос"
// @Failure      404  {object}  utils.ErrorResponse "Адрес или вариант не найден"
// @Failure      409  {object}  StockConflictResponse "Недостаточно остатка"
// @Failure      422  {object}  utils.ValidationErrorResponse "Ошибка валидации позиций"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders [post]
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal, _ := middleware.PrincipalFromContext(ctx)

	var req CreateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.PlaceOrder(ctx, principal.UserID, req.DeliveryAddressID, req.BillingAddressID, LineRequestsToEntity(req.Lines))
	if err != nil {
		if errors.Is(err, entities.ErrInsufficientStock) {
			stockConflicts.Inc()
		}
		notFound := "address not found"
		if errors.Is(err, entities.ErrVariantNotFound) {
			notFound = "variant not found"
		}
		writeServiceError(ctx, h.logger, w, err, notFound)
		return
	}

	ordersPlaced.Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

// GetOrder возвращает заказ по ID.
// @Summary      Получить заказ по ID
// @Description  Возвращает заказ владельцу или администратору
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Идентификатор заказа"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ErrorResponse "Некорректный ID"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{id} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal, _ := middleware.PrincipalFromContext(ctx)

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	order, err := h.svc.GetOrder(ctx, principal, id)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "order not found")
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// ListOrders возвращает заказы текущего пользователя.
// @Summary      Список заказов
// @Description  Заказы пользователя, новые первыми
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Param        limit   query     int  false  "Размер страницы"
// @Param        offset  query     int  false  "Смещение"
// @Success      200  {object}  OrderList
// @Failure      400  {object}  utils.ErrorResponse "Некорректные параметры"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders [get]
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal, _ := middleware.PrincipalFromContext(ctx)

	limit, err := utils.QueryInt(r, "limit", 0)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}
	offset, err := utils.QueryInt(r, "offset", 0)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	page, err := h.svc.ListOrders(ctx, principal.UserID, limit, offset)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "orders not found")
		return
	}

	res := OrderList{Orders: make([]Order, 0, len(page.Orders)), Limit: page.Limit, Offset: page.Offset}
	for _, o := range page.Orders {
		res.Orders = append(res.Orders, OrderEntityToJSON(o))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// UpdateStatus меняет статус заказа.
// @Summary      Изменить статус заказа
// @Description  Только для администратора. Повтор текущего статуса ничего не меняет
// @Tags         orders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      int                  true  "Идентификатор заказа"
// @Param        request  body      UpdateStatusRequest  true  "Новый статус"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Некорректный запрос"
// @Failure      403  {object}  utils.ErrorResponse "Нет прав"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Недопустимый переход"
// @Failure      422  {object}  utils.ValidationErrorResponse "Неизвестный статус"
// @Router       /orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.UpdateStatus(ctx, id, entities.OrderStatus(req.Status))
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "order not found")
		return
	}

	statusChanges.WithLabelValues(string(order.Status)).Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		utils.WriteError(w, "invalid id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
