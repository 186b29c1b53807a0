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

type AuthService interface {
	Login(ctx context.Context, email, password string) (service.Session, error)
	Register(ctx context.Context, in entities.RegisterInput) (entities.User, error)
	Me(ctx context.Context, userID int64) (entities.User, error)
}

type AuthHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      AuthService
	auth     Middleware
}

func NewAuthHandler(logger *slog.Logger, svc AuthService, auth Middleware) *AuthHandler {
	return &AuthHandler{
		logger:   logger.With(slog.String("handler", "auth")),
		validate: validator.New(),
		svc:      svc,
		auth:     auth,
	}
}

func (h *AuthHandler) Init(r chi.Router) {
	r.Post("/auth/login", h.Login)
	r.Post("/users", h.Register)

	r.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/users/me", h.Me)
		r.Get("/auth/me", h.Me)
	})
}

// Login выдает access-токен.
// @Summary      Вход
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      LoginRequest  true  "Учетные данные"
// @Success      200  {object}  LoginResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Некорректный запрос"
// @Failure      401  {object}  utils.ErrorResponse "Неверный email или пароль"
// @Router       /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LoginRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	session, err := h.svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "user not found")
		return
	}

	utils.WriteJSON(w, SessionToJSON(session), http.StatusOK)
}

// Register создает покупателя.
// @Summary      Регистрация
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      RegisterRequest  true  "Email, имя и пароль"
// @Success      201  {object}  User
// @Failure      400  {object}  utils.ValidationErrorResponse "Некорректный запрос"
// @Failure      409  {object}  utils.ErrorResponse "Email уже занят"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /users [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RegisterRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	user, err := h.svc.Register(ctx, entities.RegisterInput{Email: req.Email, Name: req.Name, Password: req.Password})
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "user not found")
		return
	}

	usersRegistered.Inc()
	utils.WriteJSON(w, UserEntityToJSON(user), http.StatusCreated)
}

// Me возвращает текущего пользователя.
// @Summary      Текущий пользователь
// @Tags         auth
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  User
// @Failure      401  {object}  utils.ErrorResponse "Нет токена"
// @Failure      404  {object}  utils.ErrorResponse "Пользователь удален"
// @Router       /users/me [get]
// @Router       /auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal, _ := middleware.PrincipalFromContext(ctx)

	user, err := h.svc.Me(ctx, principal.UserID)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "user not found")
		return
	}

	utils.WriteJSON(w, UserEntityToJSON(user), http.StatusOK)
}
