// Package notify реализует хук уведомлений как исходящую очередь.
//
// Publisher кладёт сообщения в exchange RabbitMQ и не участвует в
// жизненном цикле запроса: сбой публикации логируется вызывающей
// стороной и никогда не откатывает уже зафиксированную операцию.
package notify

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/streadway/amqp"

	"github.com/eventease/eventease/internal/models"
	"github.com/eventease/eventease/internal/rabbitmq"
)

// Publisher публикует уведомления в RabbitMQ.
type Publisher struct {
	ch *amqp.Channel
}

// NewPublisher создает новый экземпляр Publisher.
func NewPublisher(ch *amqp.Channel) *Publisher {
	return &Publisher{ch: ch}
}

// PublishResetEmail ставит в очередь письмо со ссылкой на сброс пароля.
func (p *Publisher) PublishResetEmail(_ context.Context, msg models.ResetEmail) error {
	const op = "notify.PublishResetEmail"
	if msg.MessageID == "" {
		msg.MessageID = uuid.NewString()
	}
	if err := rabbitmq.PublishMessage(p.ch, rabbitmq.Exchange, rabbitmq.ResetRoutingKey, msg); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// PublishBookingConfirmation ставит в очередь письмо с подтверждением брони.
func (p *Publisher) PublishBookingConfirmation(_ context.Context, msg models.BookingConfirmation) error {
	const op = "notify.PublishBookingConfirmation"
	if msg.MessageID == "" {
		msg.MessageID = uuid.NewString()
	}
	if err := rabbitmq.PublishMessage(p.ch, rabbitmq.Exchange, rabbitmq.BookingRoutingKey, msg); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
