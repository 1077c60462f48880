// Package sender собирает приложение-консьюмер очереди уведомлений:
// подключается к RabbitMQ и превращает сообщения в письма SMTP.
package sender

import (
	"context"
	"log/slog"

	"github.com/streadway/amqp"

	"github.com/eventease/eventease/internal/config"
	"github.com/eventease/eventease/internal/lib/smtp"
	"github.com/eventease/eventease/internal/rabbitmq"
	senderservice "github.com/eventease/eventease/internal/services/sender"
)

// App — собранный консьюмер очереди уведомлений.
type App struct {
	conn          *amqp.Connection
	ch            *amqp.Channel
	senderService *senderservice.SenderService
	logger        *slog.Logger
}

// New подключается к RabbitMQ, объявляет очереди и собирает сервис отправки.
func New(_ context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	conn, err := rabbitmq.Connect(cfg.RabbitMQURL, cfg.RabbitMQMaxRetries, cfg.RabbitMQRetryDelay)
	if err != nil {
		return nil, err
	}

	ch, err := rabbitmq.SetupChannel(conn, rabbitmq.GetNotificationQueues())
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	transport := smtp.NewTransport(cfg, logger)
	senderService := senderservice.New(logger, transport)

	return &App{
		conn:          conn,
		ch:            ch,
		senderService: senderService,
		logger:        logger,
	}, nil
}

// Run запускает консьюмеры обеих очередей и ждет отмены контекста.
func (a *App) Run(ctx context.Context) error {
	if err := rabbitmq.ConsumerMessage(ctx, a.ch, rabbitmq.ResetQueue, a.senderService.SendResetEmail); err != nil {
		a.logger.Error("failed to start reset queue consumer", slog.Any("err", err))
		return err
	}

	if err := rabbitmq.ConsumerMessage(ctx, a.ch, rabbitmq.BookingQueue, a.senderService.SendBookingConfirmation); err != nil {
		a.logger.Error("failed to start booking queue consumer", slog.Any("err", err))
		return err
	}

	<-ctx.Done()
	a.logger.Info("notification sender shutting down gracefully")

	if err := a.ch.Close(); err != nil {
		a.logger.Error("failed to close channel", slog.Any("err", err))
	}
	if err := a.conn.Close(); err != nil {
		a.logger.Error("failed to close connection", slog.Any("err", err))
	}
	return nil
}
