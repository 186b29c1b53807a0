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

type ChatService interface {
	Reply(ctx context.Context, principal entities.Principal, message string) (entities.ChatReply, error)
}

type ChatHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      ChatService
	auth     Middleware
}

func NewChatHandler(logger *slog.Logger, svc ChatService, auth Middleware) *ChatHandler {
	return &ChatHandler{
		logger:   logger.With(slog.String("handler", "chat")),
		validate: validator.New(),
		svc:      svc,
		auth:     auth,
	}
}

func (h *ChatHandler) Init(r chi.Router) {
	r.With(h.auth).Post("/chat", h.Reply)
}

// Reply отвечает на сообщение и при необходимости оформляет заказ.
// @Summary      Сообщение ассистенту
// @Tags         chat
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      ChatRequest  true  "Сообщение"
// @Success      200  {object}  ChatResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Некорректный запрос"
// @Failure      503  {object}  utils.ErrorResponse "Ассистент недоступен"
// @Router       /chat [post]
func (h *ChatHandler) Reply(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal, _ := middleware.PrincipalFromContext(ctx)

	var req ChatRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	reply, err := h.svc.Reply(ctx, principal, req.Message)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "not found")
		return
	}

	chatReplies.WithLabelValues(string(reply.Intent)).Inc()
	if reply.Order != nil {
		ordersPlaced.Inc()
	}
	utils.WriteJSON(w, ChatReplyToJSON(reply), http.StatusOK)
}
