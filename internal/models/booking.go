package models

import "time"

// Статусы оплаты брони.
const (
	PaymentStatusPaid   = "paid"
	PaymentStatusFailed = "failed"
)

// Booking связывает пользователя с событием. Пара (UserUID, EventID)
// уникальна: у пользователя не может быть больше одной брони на событие.
type Booking struct {
	ID            string    `json:"id"`
	UserUID       string    `json:"user_id"`
	EventID       string    `json:"event_id"`
	PaymentStatus string    `json:"payment_status"` // paid или failed
	Amount        float64   `json:"amount"`         // 0 для бесплатных событий
	Attendees     int       `json:"attendees"`      // Минимум 1
	AttendeeName  string    `json:"attendee_name"`
	CreatedAt     time.Time `json:"created_at"`
}

// DummyBooking используется для приёма данных из JSON-запроса на создание брони.
type DummyBooking struct {
	EventID      string  `json:"event_id" validate:"required"`
	Amount       float64 `json:"amount" validate:"gte=0"`
	AttendeeName string  `json:"attendee_name"`
	Attendees    int     `json:"attendees" validate:"gte=0"`
}
