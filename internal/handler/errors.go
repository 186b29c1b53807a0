package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/garden-shop/internal/entities"
	"github.com/SergeyBogomolovv/garden-shop/pkg/utils"
)

// writeServiceError переводит доменную ошибку в HTTP-ответ.
// Чужой ресурс отдается как 404, чтобы не раскрывать его существование.
func writeServiceError(ctx context.Context, logger *slog.Logger, w http.ResponseWriter, err error, notFound string) {
	var (
		stockErr      *entities.InsufficientStockError
		transitionErr *entities.InvalidTransitionError
		validationErr *entities.ValidationError
	)

	switch {
	case errors.As(err, &stockErr):
		utils.WriteJSON(w, StockConflictResponse{
			Message:   "insufficient stock",
			VariantID: stockErr.VariantID,
			Requested: stockErr.Requested,
			Available: stockErr.Available,
		}, http.StatusConflict)

	case errors.As(err, &transitionErr):
		utils.WriteError(w, transitionErr.Error(), http.StatusConflict)

	case errors.Is(err, entities.ErrInvalidTransition):
		utils.WriteError(w, err.Error(), http.StatusConflict)

	case errors.Is(err, entities.ErrConflict):
		writeConflict(ctx, logger, w, err)

	case errors.As(err, &validationErr):
		utils.WriteJSON(w, utils.ValidationErrorResponse{
			Message: "validation failed",
			Fields:  map[string]string{validationErr.Field: validationErr.Reason},
		}, http.StatusUnprocessableEntity)

	case errors.Is(err, entities.ErrAmbiguous):
		utils.WriteError(w, err.Error(), http.StatusUnprocessableEntity)

	case errors.Is(err, entities.ErrForbidden), errors.Is(err, entities.ErrNotFound):
		utils.WriteError(w, notFound, http.StatusNotFound)

	case errors.Is(err, entities.ErrUnauthorized):
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)

	case errors.Is(err, entities.ErrUnavailable):
		logger.WarnContext(ctx, "dependency unavailable", slog.Any("error", err))
		utils.WriteError(w, "service temporarily unavailable", http.StatusServiceUnavailable)

	default:
		logger.ErrorContext(ctx, "request failed", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}

// writeConflict: взаимоблокировку или сбой сериализации клиент может просто повторить.
func writeConflict(ctx context.Context, logger *slog.Logger, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entities.ErrConcurrentUpdate):
		logger.WarnContext(ctx, "concurrent update", slog.Any("error", err))
		w.Header().Set("Retry-After", "1")
		utils.WriteError(w, "concurrent update, retry the request", http.StatusConflict)
	case errors.Is(err, entities.ErrEmailTaken):
		utils.WriteError(w, "email already registered", http.StatusConflict)
	case errors.Is(err, entities.ErrAddressInUse):
		utils.WriteError(w, "address is used by orders", http.StatusConflict)
	default:
		utils.WriteError(w, "conflict", http.StatusConflict)
	}
}
