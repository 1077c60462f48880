// Package event содержит бизнес-логику каталога событий с кешированием чтений.
package event

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/eventease/eventease/internal/models"
)

// EventRepository определяет методы для работы с событиями в хранилище.
type EventRepository interface {
	CreateEvent(ctx context.Context, event models.Event) (string, error)
	ReadEvent(ctx context.Context, id string) (*models.Event, error)
	ListEvents(ctx context.Context) ([]*models.Event, error)
	// UpdateEvent принимает полное состояние события; слияние частичных
	// изменений с текущим состоянием выполняет сервис.
	UpdateEvent(ctx context.Context, event models.Event, id string) (int, error)
	RemoveEvent(ctx context.Context, id string) (int, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// EventService реализует бизнес-логику работы с событиями, включая кеширование.
type EventService struct {
	repo  EventRepository
	cache Cache
	log   *slog.Logger
}

// New создает новый экземпляр EventService.
func New(repo EventRepository, cache Cache, log *slog.Logger) *EventService {
	return &EventService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// Create создает новое событие, кеширует его и возвращает ID.
func (s *EventService) Create(ctx context.Context, req models.DummyEvent) (*models.Event, error) {
	eventDate, err := time.Parse("2006-01-02", req.EventDate)
	if err != nil {
		return nil, fmt.Errorf("invalid event date: %w", err)
	}

	event := models.Event{
		Owner:       req.Owner,
		Title:       req.Title,
		Description: req.Description,
		OrganizedBy: req.OrganizedBy,
		EventDate:   eventDate,
		EventTime:   req.EventTime,
		Location:    req.Location,
		TicketPrice: req.TicketPrice,
		Image:       req.Image,
	}
	if event.OrganizedBy == "" {
		event.OrganizedBy = "Event Organizer"
	}

	id, err := s.repo.CreateEvent(ctx, event)
	if err != nil {
		return nil, err
	}
	event.ID = id
	s.log.Info("created new event", slog.String("id", id))

	cacheKey := fmt.Sprintf("event:%s", id)
	if err := s.cache.Set(cacheKey, event, time.Hour); err != nil {
		s.log.Warn("failed to cache event", slog.String("key", cacheKey), slog.Any("err", err))
	}

	return &event, nil
}

// Read возвращает событие по ID, используя кеш или репозиторий.
func (s *EventService) Read(ctx context.Context, id string) (*models.Event, error) {
	var result *models.Event
	cacheKey := fmt.Sprintf("event:%s", id)
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		s.log.Warn("failed to read from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	if found {
		return result, nil
	}
	result, err = s.repo.ReadEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(cacheKey, result, time.Hour); err != nil {
		s.log.Warn("failed to add to cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return result, nil
}

// List возвращает список всех событий.
func (s *EventService) List(ctx context.Context) ([]*models.Event, error) {
	return s.repo.ListEvents(ctx)
}

// Update частично обновляет событие: читает текущее состояние из хранилища,
// накладывает присланные поля и сохраняет результат целиком.
// Кеш перезаписывается только после того, как хранилище подтвердило
// обновление хотя бы одной строки; иначе запись инвалидируется.
func (s *EventService) Update(ctx context.Context, req models.EventUpdate, id string) (int, error) {
	event, err := s.repo.ReadEvent(ctx, id)
	if err != nil {
		return 0, err
	}

	if req.Owner != nil {
		event.Owner = *req.Owner
	}
	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.OrganizedBy != nil {
		event.OrganizedBy = *req.OrganizedBy
	}
	if req.EventDate != nil {
		eventDate, err := time.Parse("2006-01-02", *req.EventDate)
		if err != nil {
			return 0, fmt.Errorf("invalid event date: %w", err)
		}
		event.EventDate = eventDate
	}
	if req.EventTime != nil {
		event.EventTime = *req.EventTime
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.TicketPrice != nil {
		event.TicketPrice = *req.TicketPrice
	}
	if req.Image != nil {
		event.Image = *req.Image
	}

	res, err := s.repo.UpdateEvent(ctx, *event, id)
	if err != nil {
		return 0, err
	}

	cacheKey := fmt.Sprintf("event:%s", id)
	if res == 0 {
		// Событие исчезло между чтением и обновлением:
		// кеш не должен пережить запись в хранилище.
		if err := s.cache.Invalidate(cacheKey); err != nil {
			s.log.Warn("failed to remove from cache", slog.String("key", cacheKey), slog.Any("err", err))
		}
		return 0, nil
	}

	event.ID = id
	if err := s.cache.Set(cacheKey, *event, time.Hour); err != nil {
		s.log.Warn("failed to cache event", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return res, nil
}

// Remove удаляет событие по ID и инвалидирует кеш.
func (s *EventService) Remove(ctx context.Context, id string) (int, error) {
	cacheKey := fmt.Sprintf("event:%s", id)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to remove from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}

	return s.repo.RemoveEvent(ctx, id)
}
