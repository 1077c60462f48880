// Package create реализует HTTP-обработчик создания брони.
//
// Handler берет UID пользователя из контекста (его кладет JWT middleware),
// валидирует тело запроса и делегирует создание сервису. Повторная бронь
// того же события тем же пользователем отклоняется с 409.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/eventease/eventease/internal/http/middlewarectx"
	"github.com/eventease/eventease/internal/http/response"
	"github.com/eventease/eventease/internal/lib/sl"
	"github.com/eventease/eventease/internal/models"
	"github.com/eventease/eventease/internal/storage/repository"
)

// Service описывает интерфейс бизнес-логики создания брони.
type Service interface {
	Create(ctx context.Context, userUID string, req models.DummyBooking) (*models.Booking, error)
}

// Handler управляет HTTP-запросами на создание брони.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Создать бронь
// @Description Создает бронь текущего пользователя на событие. Повторная бронь отклоняется.
// @Tags Bookings
// @Accept  json
// @Produce  json
// @Param request body models.DummyBooking true "Данные брони"
// @Success 201 {object} map[string]any "Бронь создана"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Событие не найдено"
// @Failure 409 {object} response.ErrorResponse "Бронь уже существует"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /bookings [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.booking.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyBooking
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.String("event_id", req.EventID))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	booking, err := h.service.Create(r.Context(), userUID, req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEventNotFound):
			log.Error("event not found", slog.String("event_id", req.EventID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("event not found"))
		case errors.Is(err, repository.ErrBookingExists):
			log.Error("duplicate booking", slog.String("event_id", req.EventID))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("you have already booked this event"))
		default:
			log.Error("failed to create booking", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not create booking"))
		}
		return
	}

	log.Info("booking created", slog.String("id", booking.ID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.OKWithData(map[string]any{
		"booking": booking,
	}))
}
