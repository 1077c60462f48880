package models

import "time"

// ResetEmail — сообщение очереди уведомлений со ссылкой на сброс пароля.
type ResetEmail struct {
	MessageID string `json:"message_id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	ResetLink string `json:"reset_link"`
}

// BookingConfirmation — сообщение очереди уведомлений о подтверждении брони.
type BookingConfirmation struct {
	MessageID   string    `json:"message_id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	EventTitle  string    `json:"event_title"`
	EventDate   time.Time `json:"event_date"`
	EventTime   string    `json:"event_time"`
	Location    string    `json:"location"`
	TicketPrice float64   `json:"ticket_price"`
}
