// Package resetpassword реализует HTTP-обработчик установки нового пароля
// по одноразовому токену из письма.
package resetpassword

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/eventease/eventease/internal/http/response"
	"github.com/eventease/eventease/internal/lib/jwt"
	"github.com/eventease/eventease/internal/lib/sl"
	"github.com/eventease/eventease/internal/services/auth"
	"github.com/eventease/eventease/internal/storage/repository"
)

// Request — входные данные с новым паролем.
type Request struct {
	Password string `json:"password" validate:"required"`
}

// Service описывает интерфейс бизнес-логики установки нового пароля.
type Service interface {
	ResetPassword(ctx context.Context, token, newPassword string) error
}

// Handler обрабатывает HTTP-запросы на установку нового пароля.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Установка нового пароля
// @Description Проверяет токен сброса из URL и устанавливает новый пароль.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param token path string true "Токен сброса из письма"
// @Param request body Request true "Новый пароль"
// @Success 200 {object} map[string]any "Пароль обновлён"
// @Failure 400 {object} response.ErrorResponse "Слабый пароль или некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Токен просрочен или невалиден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /auth/reset-password/{token} [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.resetpassword"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	token := chi.URLParam(r, "token")
	if token == "" {
		log.Error("missing reset token")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("missing reset token"))
		return
	}

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	if err := h.service.ResetPassword(r.Context(), token, req.Password); err != nil {
		var vErr *auth.ValidationError
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			log.Error("reset token expired", sl.Err(err))
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, response.Error("reset link expired, request a new one"))
		case errors.Is(err, jwt.ErrTokenInvalid), errors.Is(err, jwt.ErrPurposeMismatch):
			log.Error("reset token rejected", sl.Err(err))
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, response.Error("invalid reset link"))
		case errors.As(err, &vErr):
			log.Error("weak password", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(vErr.Error()))
		case errors.Is(err, repository.ErrUserNotFound):
			log.Error("user from token not found", sl.Err(err))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("user not found"))
		default:
			log.Error("failed to reset password", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to reset password"))
		}
		return
	}

	log.Info("password reset completed")
	render.JSON(w, r, response.OKWithData(map[string]any{
		"message": "password updated successfully",
	}))
}
