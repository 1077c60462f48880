package repository

import (
	"context"
	"fmt"

	"github.com/eventease/eventease/internal/models"
)

// CreateBooking вставляет новую бронь одним атомарным INSERT.
// Проверка "есть ли уже бронь" не выполняется: уникальный индекс
// (user_id, event_id) — авторитетный источник, его нарушение
// транслируется в ErrBookingExists.
func (s *Storage) CreateBooking(ctx context.Context, booking models.Booking) (string, error) {
	const op = "storage.CreateBooking"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO bookings (user_id, event_id, payment_status, amount,
			      attendees, attendee_name)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id`
	var newID string
	err := s.DB.QueryRowContext(ctx, query,
		booking.UserUID, booking.EventID, booking.PaymentStatus, booking.Amount,
		booking.Attendees, booking.AttendeeName).Scan(&newID)
	if err != nil {
		if isUniqueViolation(err) {
			return "", fmt.Errorf("%s: %w", op, ErrBookingExists)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListBookingsByUser возвращает все брони пользователя.
func (s *Storage) ListBookingsByUser(ctx context.Context, userUID string) ([]*models.Booking, error) {
	const op = "storage.ListBookingsByUser"
	return s.listBookings(ctx, op, `SELECT id, user_id, event_id, payment_status, amount,
			      attendees, attendee_name, created_at
			  FROM bookings
			  WHERE user_id = $1
			  ORDER BY created_at`, userUID)
}

// ListBookingsByEvent возвращает все брони события.
func (s *Storage) ListBookingsByEvent(ctx context.Context, eventID string) ([]*models.Booking, error) {
	const op = "storage.ListBookingsByEvent"
	return s.listBookings(ctx, op, `SELECT id, user_id, event_id, payment_status, amount,
			      attendees, attendee_name, created_at
			  FROM bookings
			  WHERE event_id = $1
			  ORDER BY created_at`, eventID)
}

// RemoveBookingForUser удаляет бронь по ID только если она принадлежит
// пользователю, и возвращает количество удалённых строк. Брони чужих
// пользователей неотличимы от несуществующих.
func (s *Storage) RemoveBookingForUser(ctx context.Context, bookingID, userUID string) (int, error) {
	const op = "storage.RemoveBookingForUser"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM bookings WHERE id = $1 AND user_id = $2`
	result, err := s.DB.ExecContext(ctx, query, bookingID, userUID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

func (s *Storage) listBookings(ctx context.Context, op, query string, args ...any) ([]*models.Booking, error) {
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

	var result []*models.Booking
	for rows.Next() {
		var item models.Booking
		if err := rows.Scan(&item.ID, &item.UserUID, &item.EventID, &item.PaymentStatus,
			&item.Amount, &item.Attendees, &item.AttendeeName, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
