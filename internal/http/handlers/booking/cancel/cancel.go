// Package cancel реализует HTTP-обработчик отмены брони.
//
// Удаление ограничено владельцем: чужая бронь для пользователя неотличима
// от несуществующей, в обоих случаях возвращается 404.
package cancel

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/eventease/eventease/internal/http/middlewarectx"
	"github.com/eventease/eventease/internal/http/response"
	"github.com/eventease/eventease/internal/lib/sl"
)

// Service описывает интерфейс бизнес-логики отмены брони.
type Service interface {
	Cancel(ctx context.Context, bookingID, userUID string) (int, error)
}

// Handler обрабатывает HTTP-запросы на отмену брони.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Отменить бронь
// @Description Удаляет бронь текущего пользователя по ID.
// @Tags Bookings
// @Produce  json
// @Param id path string true "ID брони"
// @Success 200 {object} map[string]any "Бронь отменена"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Бронь не найдена"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /bookings/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.booking.cancel"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	bookingID := chi.URLParam(r, "id")

	deleted, err := h.service.Cancel(r.Context(), bookingID, userUID)
	if err != nil {
		log.Error("failed to cancel booking", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to cancel booking"))
		return
	}
	if deleted == 0 {
		log.Error("booking not found", slog.String("id", bookingID))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("booking not found"))
		return
	}

	log.Info("booking cancelled", slog.String("id", bookingID))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"deleted_count": deleted,
	}))
}
