// Package logout реализует HTTP-обработчик выхода: сбрасывает cookie сессии.
// Сам токен при этом не отзывается и истекает по своему сроку.
package logout

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/eventease/eventease/internal/http/response"
)

// Handler обрабатывает HTTP-запросы на выход.
type Handler struct {
	log          *slog.Logger
	cookieSecure bool
}

// New создает новый Handler.
func New(log *slog.Logger, cookieSecure bool) *Handler {
	return &Handler{
		log:          log,
		cookieSecure: cookieSecure,
	}
}

// ServeHTTP godoc
// @Summary Выход пользователя
// @Description Сбрасывает cookie сессии.
// @Tags Auth
// @Produce  json
// @Success 200 {object} map[string]any "Выход выполнен"
// @Router /auth/logout [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.logout"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	log.Info("user logged out")
	render.JSON(w, r, response.OKWithData(map[string]any{
		"message": "logged out successfully",
	}))
}
