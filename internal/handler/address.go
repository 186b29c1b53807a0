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

type AddressService interface {
	ListAddresses(ctx context.Context, userID int64) ([]entities.Address, error)
	CreateAddress(ctx context.Context, userID int64, in entities.AddressInput) (entities.Address, error)
	SetDefault(ctx context.Context, userID, addressID int64) (entities.Address, error)
	UpdateAddress(ctx context.Context, userID, addressID int64, in entities.AddressInput) (entities.Address, error)
	DeleteAddress(ctx context.Context, userID, addressID int64) error
}

type AddressHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      AddressService
	auth     Middleware
}

func NewAddressHandler(logger *slog.Logger, svc AddressService, auth Middleware) *AddressHandler {
	return &AddressHandler{
		logger:   logger.With(slog.String("handler", "addresses")),
		validate: validator.New(),
		svc:      svc,
		auth:     auth,
	}
}

func (h *AddressHandler) Init(r chi.Router) {
	r.Route("/addresses", func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/", h.ListAddresses)
		r.Post("/", h.CreateAddress)
		r.Put("/{id}", h.UpdateAddress)
		r.Delete("/{id}", h.DeleteAddress)
		r.Put("/{id}/default", h.SetDefault)
	})
}

// ListAddresses возвращает адреса пользователя.
// @Summary      Список адресов
// @Tags         addresses
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Address
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /addresses [get]
func (h *AddressHandler) ListAddresses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal, _ := middleware.PrincipalFromContext(ctx)

	addresses, err := h.svc.ListAddresses(ctx, principal.UserID)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "address not found")
		return
	}

	res := make([]Address, 0, len(addresses))
	for _, a := range addresses {
		res = append(res, AddressEntityToJSON(a))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// CreateAddress добавляет адрес; первый адрес становится адресом по умолчанию.
// @Summary      Добавить адрес
// @Tags         addresses
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateAddressRequest  true  "Адрес"
// @Success      201  {object}  Address
// @Failure      400  {object}  utils.ValidationErrorResponse "Некорректный запрос"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /addresses [post]
func (h *AddressHandler) CreateAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal, _ := middleware.PrincipalFromContext(ctx)

	var req CreateAddressRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	address, err := h.svc.CreateAddress(ctx, principal.UserID, entities.AddressInput{
		Street:     req.Street,
		City:       req.City,
		PostalCode: req.PostalCode,
		Country:    req.Country,
	})
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "address not found")
		return
	}

	utils.WriteJSON(w, AddressEntityToJSON(address), http.StatusCreated)
}

// SetDefault делает адрес адресом по умолчанию.
// @Summary      Адрес по умолчанию
// @Tags         addresses
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Идентификатор адреса"
// @Success      200  {object}  Address
// @Failure      400  {object}  utils.ErrorResponse "Некорректный ID"
// @Failure      404  {object}  utils.ErrorResponse "Адрес не найден"
// @Router       /addresses/{id}/default [put]
func (h *AddressHandler) SetDefault(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal, _ := middleware.PrincipalFromContext(ctx)

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	address, err := h.svc.SetDefault(ctx, principal.UserID, id)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "address not found")
		return
	}

	utils.WriteJSON(w, AddressEntityToJSON(address), http.StatusOK)
}

// UpdateAddress меняет поля адреса.
// @Summary      Изменить адрес
// @Tags         addresses
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      int                   true  "Идентификатор адреса"
// @Param        request  body      CreateAddressRequest  true  "Адрес"
// @Success      200  {object}  Address
// @Failure      400  {object}  utils.ValidationErrorResponse "Некорректный запрос"
// @Failure      404  {object}  utils.ErrorResponse "Адрес не найден"
// @Router       /addresses/{id} [put]
func (h *AddressHandler) UpdateAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal, _ := middleware.PrincipalFromContext(ctx)

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req CreateAddressRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	address, err := h.svc.UpdateAddress(ctx, principal.UserID, id, entities.AddressInput{
		Street:     req.Street,
		City:       req.City,
		PostalCode: req.PostalCode,
		Country:    req.Country,
	})
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "address not found")
		return
	}

	utils.WriteJSON(w, AddressEntityToJSON(address), http.StatusOK)
}

// DeleteAddress удаляет адрес, если на него не ссылаются заказы.
// @Summary      Удалить адрес
// @Tags         addresses
// @Security     BearerAuth
// @Param        id   path      int  true  "Идентификатор адреса"
// @Success      204
// @Failure      400  {object}  utils.ErrorResponse "Некорректный ID"
// @Failure      404  {object}  utils.ErrorResponse "Адрес не найден"
// @Failure      409  {object}  utils.ErrorResponse "Адрес используется в заказах"
// @Router       /addresses/{id} [delete]
func (h *AddressHandler) DeleteAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal, _ := middleware.PrincipalFromContext(ctx)

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteAddress(ctx, principal.UserID, id); err != nil {
		writeServiceError(ctx, h.logger, w, err, "address not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
