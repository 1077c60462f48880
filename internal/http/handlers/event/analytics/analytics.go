// Package analytics реализует HTTP-обработчик сводки по событиям владельца:
// для каждого события возвращает число броней и суммарную выручку.
package analytics

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/eventease/eventease/internal/http/response"
	"github.com/eventease/eventease/internal/lib/sl"
	"github.com/eventease/eventease/internal/models"
)

// Service описывает интерфейс бизнес-логики аналитики.
type Service interface {
	Analytics(ctx context.Context, owner string) ([]models.EventAnalytics, error)
}

// Handler обрабатывает HTTP-запросы на сводку по событиям владельца.
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
// @Summary Сводка по событиям владельца
// @Description Возвращает число броней и суммарную выручку по каждому событию владельца.
// @Tags Events
// @Produce  json
// @Param owner path string true "Метка владельца событий"
// @Success 200 {object} map[string]any "Сводка по событиям"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /events/analytics/{owner} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.event.analytics"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	owner := chi.URLParam(r, "owner")
	if owner == "" {
		log.Error("missing owner")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("missing owner"))
		return
	}

	result, err := h.service.Analytics(r.Context(), owner)
	if err != nil {
		log.Error("failed to build analytics", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to build analytics"))
		return
	}

	log.Info("analytics built", slog.String("owner", owner), slog.Int("events", len(result)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"analytics": result,
	}))
}
