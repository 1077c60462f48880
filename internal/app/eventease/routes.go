// Package eventease предоставляет маршруты для основного приложения.
package eventease

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/eventease/eventease/internal/config"
	"github.com/eventease/eventease/internal/http/handlers/auth/forgotpassword"
	"github.com/eventease/eventease/internal/http/handlers/auth/login"
	"github.com/eventease/eventease/internal/http/handlers/auth/logout"
	"github.com/eventease/eventease/internal/http/handlers/auth/register"
	"github.com/eventease/eventease/internal/http/handlers/auth/resetpassword"
	bookingcancel "github.com/eventease/eventease/internal/http/handlers/booking/cancel"
	bookingcreate "github.com/eventease/eventease/internal/http/handlers/booking/create"
	bookinglist "github.com/eventease/eventease/internal/http/handlers/booking/list"
	"github.com/eventease/eventease/internal/http/handlers/event/analytics"
	eventcreate "github.com/eventease/eventease/internal/http/handlers/event/create"
	eventlist "github.com/eventease/eventease/internal/http/handlers/event/list"
	eventread "github.com/eventease/eventease/internal/http/handlers/event/read"
	eventremove "github.com/eventease/eventease/internal/http/handlers/event/remove"
	eventupdate "github.com/eventease/eventease/internal/http/handlers/event/update"
	"github.com/eventease/eventease/internal/http/handlers/health"
	"github.com/eventease/eventease/internal/http/handlers/payment/checkout"
	"github.com/eventease/eventease/internal/http/middlewarectx"
	authservice "github.com/eventease/eventease/internal/services/auth"
	bookingservice "github.com/eventease/eventease/internal/services/booking"
	eventservice "github.com/eventease/eventease/internal/services/event"
	paymentservice "github.com/eventease/eventease/internal/services/payment"
	"github.com/eventease/eventease/internal/storage/repository"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(
	r chi.Router,
	logger *slog.Logger,
	cfg *config.Config,
	db *repository.Storage,
	authService *authservice.AuthService,
	eventService *eventservice.EventService,
	bookingService *bookingservice.BookingService,
	paymentService *paymentservice.PaymentService,
) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	cookieSecure := cfg.Env == "prod"

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/auth/register", register.New(logger, authService).ServeHTTP)
		r.Post("/auth/login", login.New(logger, authService, cookieSecure, cfg.SessionTokenTTL).ServeHTTP)
		r.Post("/auth/logout", logout.New(logger, cookieSecure).ServeHTTP)
		r.Post("/auth/forgot-password", forgotpassword.New(logger, authService).ServeHTTP)
		r.Post("/auth/reset-password/{token}", resetpassword.New(logger, authService).ServeHTTP)

		r.Get("/events", eventlist.New(logger, eventService).ServeHTTP)
		r.Get("/events/{id}", eventread.New(logger, eventService).ServeHTTP)

		r.Get("/health", health.New(logger, db).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(authService, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))

			r.Post("/events", eventcreate.New(logger, eventService).ServeHTTP)
			r.Put("/events/{id}", eventupdate.New(logger, eventService).ServeHTTP)
			r.Delete("/events/{id}", eventremove.New(logger, eventService).ServeHTTP)
			r.Get("/events/analytics/{owner}", analytics.New(logger, bookingService).ServeHTTP)

			r.Post("/bookings", bookingcreate.New(logger, bookingService).ServeHTTP)
			r.Get("/bookings/my", bookinglist.New(logger, bookingService).ServeHTTP)
			r.Delete("/bookings/{id}", bookingcancel.New(logger, bookingService).ServeHTTP)

			r.Post("/payment/checkout-session", checkout.New(logger, paymentService).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
