// Package eventease собирает HTTP-приложение: хранилище, миграции, кеш,
// очередь уведомлений, сервисы и маршруты.
package eventease

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/eventease/eventease/internal/cache"
	"github.com/eventease/eventease/internal/config"
	"github.com/eventease/eventease/internal/lib/jwt"
	"github.com/eventease/eventease/internal/migrations"
	"github.com/eventease/eventease/internal/paymentprovider"
	"github.com/eventease/eventease/internal/rabbitmq"
	authservice "github.com/eventease/eventease/internal/services/auth"
	bookingservice "github.com/eventease/eventease/internal/services/booking"
	eventservice "github.com/eventease/eventease/internal/services/event"
	"github.com/eventease/eventease/internal/services/notify"
	paymentservice "github.com/eventease/eventease/internal/services/payment"
	"github.com/eventease/eventease/internal/storage/repository"

	"github.com/streadway/amqp"
)

// App — собранное HTTP-приложение со всеми зависимостями.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	amqp   *amqp.Connection
}

// New создает приложение: подключает базу, прогоняет миграции,
// поднимает кеш и очередь, собирает сервисы и маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	conn, err := rabbitmq.Connect(cfg.RabbitMQURL, cfg.RabbitMQMaxRetries, cfg.RabbitMQRetryDelay)
	if err != nil {
		return nil, err
	}
	ch, err := rabbitmq.SetupChannel(conn, rabbitmq.GetNotificationQueues())
	if err != nil {
		return nil, err
	}
	publisher := notify.NewPublisher(ch)

	tokenMaker := jwt.NewMaker(cfg.JWTSecretKey, cfg.SessionTokenTTL, cfg.ResetTokenTTL)
	providerClient := paymentprovider.NewClient(cfg.ProviderSecretKey, cfg.SuccessURL, cfg.CancelURL)

	authService := authservice.New(db, tokenMaker, publisher, cfg.ClientOrigin, logger)
	eventService := eventservice.New(db, cacheRedis, logger)
	bookingService := bookingservice.New(db, db, db, publisher, logger)
	paymentService := paymentservice.New(providerClient, db, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, cfg, db, authService, eventService, bookingService, paymentService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		amqp:   conn,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его по отмене контекста
// с 15-секундным таймаутом на graceful shutdown.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		_ = a.amqp.Close()
		_ = a.db.DB.Close()
		return err
	}
}
