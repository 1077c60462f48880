// Package list реализует HTTP-обработчик публичного списка событий.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/eventease/eventease/internal/http/response"
	"github.com/eventease/eventease/internal/lib/sl"
	"github.com/eventease/eventease/internal/models"
)

// Service описывает интерфейс бизнес-логики списка событий.
type Service interface {
	List(ctx context.Context) ([]*models.Event, error)
}

// Handler обрабатывает HTTP-запросы на получение списка событий.
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
// @Summary Список событий
// @Description Возвращает все события каталога.
// @Tags Events
// @Produce  json
// @Success 200 {object} map[string]any "Список событий"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /events [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.event.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	events, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list events", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list events"))
		return
	}

	log.Info("events listed", slog.Int("count", len(events)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"events": events,
	}))
}
