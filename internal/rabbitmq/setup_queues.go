package rabbitmq

// Exchange — общий exchange исходящих уведомлений.
const Exchange = "notifications"

// Очереди и ключи маршрутизации уведомлений.
const (
	ResetQueue      = "notification.reset"
	ResetRoutingKey = "reset"

	BookingQueue      = "notification.booking"
	BookingRoutingKey = "booking"
)

type QueueConfig struct {
	QueueName  string
	RoutingKey string
}

func GetNotificationQueues() []QueueConfig {
	return []QueueConfig{
		{QueueName: ResetQueue, RoutingKey: ResetRoutingKey},
		{QueueName: BookingQueue, RoutingKey: BookingRoutingKey},
	}
}
