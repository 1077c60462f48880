package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/eventease/eventease/internal/models"
)

// CreateEvent вставляет новое событие и возвращает его ID.
func (s *Storage) CreateEvent(ctx context.Context, event models.Event) (string, error) {
	const op = "storage.CreateEvent"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO events (owner, title, description, organized_by, event_date,
			      event_time, location, ticket_price, image)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING id`
	var newID string
	err := s.DB.QueryRowContext(ctx, query,
		event.Owner, event.Title, event.Description, event.OrganizedBy, event.EventDate,
		event.EventTime, event.Location, event.TicketPrice, event.Image).Scan(&newID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ReadEvent возвращает событие по его ID.
func (s *Storage) ReadEvent(ctx context.Context, id string) (*models.Event, error) {
	const op = "storage.ReadEvent"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, owner, title, description, organized_by, event_date,
			      event_time, location, ticket_price, COALESCE(image, ''), created_at
			  FROM events WHERE id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)

	var result models.Event
	if err := row.Scan(&result.ID, &result.Owner, &result.Title, &result.Description,
		&result.OrganizedBy, &result.EventDate, &result.EventTime, &result.Location,
		&result.TicketPrice, &result.Image, &result.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrEventNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// ListEvents возвращает список всех событий.
func (s *Storage) ListEvents(ctx context.Context) ([]*models.Event, error) {
	const op = "storage.ListEvents"
	return s.listEvents(ctx, op, `SELECT id, owner, title, description, organized_by, event_date,
			      event_time, location, ticket_price, COALESCE(image, ''), created_at
			  FROM events
			  ORDER BY event_date`)
}

// ListEventsByOwner возвращает все события с совпадающей меткой владельца.
func (s *Storage) ListEventsByOwner(ctx context.Context, owner string) ([]*models.Event, error) {
	const op = "storage.ListEventsByOwner"
	return s.listEvents(ctx, op, `SELECT id, owner, title, description, organized_by, event_date,
			      event_time, location, ticket_price, COALESCE(image, ''), created_at
			  FROM events
			  WHERE owner = $1
			  ORDER BY event_date`, owner)
}

// UpdateEvent обновляет данные события по его ID и возвращает количество изменённых строк.
func (s *Storage) UpdateEvent(ctx context.Context, event models.Event, id string) (int, error) {
	const op = "storage.UpdateEvent"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE events
			  SET owner = $1, title = $2, description = $3, organized_by = $4,
			      event_date = $5, event_time = $6, location = $7, ticket_price = $8, image = $9
			  WHERE id = $10`
	result, err := s.DB.ExecContext(ctx, query,
		event.Owner, event.Title, event.Description, event.OrganizedBy,
		event.EventDate, event.EventTime, event.Location, event.TicketPrice, event.Image, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// RemoveEvent удаляет событие по ID и возвращает количество удалённых строк.
func (s *Storage) RemoveEvent(ctx context.Context, id string) (int, error) {
	const op = "storage.RemoveEvent"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM events WHERE id = $1`
	result, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

func (s *Storage) listEvents(ctx context.Context, op, query string, args ...any) ([]*models.Event, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Event
	for rows.Next() {
		var item models.Event
		if err := rows.Scan(&item.ID, &item.Owner, &item.Title, &item.Description,
			&item.OrganizedBy, &item.EventDate, &item.EventTime, &item.Location,
			&item.TicketPrice, &item.Image, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
