// Package models содержит доменные структуры, описывающие событие,
// а также вспомогательные типы для работы с данными из внешних источников (например, JSON-запросы).
package models

import "time"

// Event представляет собой основную модель события,
// используемую в бизнес-логике и хранилище.
type Event struct {
	ID          string    `json:"id"`
	Owner       string    `json:"owner"`        // Метка владельца события (свободный текст)
	Title       string    `json:"title"`        // Название события
	Description string    `json:"description"`  // Описание
	OrganizedBy string    `json:"organized_by"` // Метка организатора
	EventDate   time.Time `json:"event_date"`   // Дата проведения
	EventTime   string    `json:"event_time"`   // Время проведения в свободном формате
	Location    string    `json:"location"`     // Место проведения
	TicketPrice float64   `json:"ticket_price"` // Цена билета, неотрицательная
	Image       string    `json:"image,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// DummyEvent используется для приёма данных из JSON-запроса,
// прежде чем конвертировать их в Event.
// Дата приходит в виде строки, чтобы её можно было валидировать и парсить вручную.
type DummyEvent struct {
	Owner       string  `json:"owner" validate:"required"`
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	OrganizedBy string  `json:"organized_by"`
	EventDate   string  `json:"event_date" validate:"required"` // Формат 2006-01-02
	EventTime   string  `json:"event_time" validate:"required"`
	Location    string  `json:"location" validate:"required"`
	TicketPrice float64 `json:"ticket_price" validate:"gte=0"`
	Image       string  `json:"image"`
}

// EventUpdate описывает частичное обновление события.
// Поля-указатели: nil означает, что клиент не прислал поле
// и текущее значение остаётся без изменений.
type EventUpdate struct {
	Owner       *string  `json:"owner"`
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	OrganizedBy *string  `json:"organized_by"`
	EventDate   *string  `json:"event_date"` // Формат 2006-01-02
	EventTime   *string  `json:"event_time"`
	Location    *string  `json:"location"`
	TicketPrice *float64 `json:"ticket_price" validate:"omitempty,gte=0"`
	Image       *string  `json:"image"`
}

// EventAnalytics — агрегат по одному событию владельца:
// количество броней и суммарная выручка.
type EventAnalytics struct {
	EventID      string  `json:"event_id"`
	Title        string  `json:"title"`
	RSVPCount    int     `json:"rsvp_count"`
	TotalRevenue float64 `json:"total_revenue"`
}
