package models

import "time"

// PaymentSession — запись о созданной платёжной сессии внешнего провайдера.
type PaymentSession struct {
	SessionID string    `json:"session_id"`
	EventID   string    `json:"event_id"`
	Amount    int64     `json:"amount"` // Сумма в центах
	Quantity  int       `json:"quantity"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// DummyCheckout используется для приёма данных из JSON-запроса на создание платёжной сессии.
type DummyCheckout struct {
	EventID   string  `json:"event_id" validate:"required"`
	EventName string  `json:"event_name" validate:"required"`
	Price     float64 `json:"price" validate:"gte=0"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
}

// CheckoutResult — результат создания платёжной сессии: идентификатор и
// URL для перенаправления пользователя на страницу оплаты.
type CheckoutResult struct {
	SessionID string `json:"id"`
	URL       string `json:"url"`
}
