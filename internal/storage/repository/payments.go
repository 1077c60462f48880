package repository

import (
	"context"
	"fmt"

	"github.com/eventease/eventease/internal/models"
)

// CreatePaymentSession сохраняет запись о созданной платёжной сессии.
func (s *Storage) CreatePaymentSession(ctx context.Context, session models.PaymentSession) error {
	const op = "storage.CreatePaymentSession"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO payment_sessions (session_id, event_id, amount, quantity, status)
			  VALUES ($1, $2, $3, $4, $5)`
	_, err := s.DB.ExecContext(ctx, query,
		session.SessionID, session.EventID, session.Amount, session.Quantity, session.Status)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ListPaymentSessionsByEvent возвращает платёжные сессии события.
func (s *Storage) ListPaymentSessionsByEvent(ctx context.Context, eventID string) ([]*models.PaymentSession, error) {
	const op = "storage.ListPaymentSessionsByEvent"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT session_id, event_id, amount, quantity, status, created_at
			  FROM payment_sessions
			  WHERE event_id = $1
			  ORDER BY created_at`
	rows, err := s.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.PaymentSession
	for rows.Next() {
		var item models.PaymentSession
		if err := rows.Scan(&item.SessionID, &item.EventID, &item.Amount,
			&item.Quantity, &item.Status, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
