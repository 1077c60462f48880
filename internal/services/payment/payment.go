// Package payment создаёт платёжные сессии внешнего провайдера
// и ведёт их учёт в хранилище.
package payment

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/eventease/eventease/internal/lib/sl"
	"github.com/eventease/eventease/internal/models"
	"github.com/eventease/eventease/internal/paymentprovider"
)

// Provider описывает клиент платёжного провайдера.
type Provider interface {
	CreateCheckoutSession(params paymentprovider.CreateSessionParams) (*paymentprovider.CheckoutSession, error)
}

// Repository — учёт созданных сессий.
type Repository interface {
	CreatePaymentSession(ctx context.Context, session models.PaymentSession) error
}

// PaymentService создаёт платёжные сессии и сохраняет их.
type PaymentService struct {
	provider Provider
	repo     Repository
	log      *slog.Logger
}

// New создает новый экземпляр PaymentService.
func New(provider Provider, repo Repository, log *slog.Logger) *PaymentService {
	return &PaymentService{
		provider: provider,
		repo:     repo,
		log:      log,
	}
}

// CreateCheckoutSession создает платёжную сессию у провайдера и возвращает
// её идентификатор и URL для перенаправления. Запись о сессии сохраняется;
// сбой записи логируется, но не отменяет уже созданную сессию.
func (s *PaymentService) CreateCheckoutSession(ctx context.Context, req models.DummyCheckout) (*models.CheckoutResult, error) {
	unitAmount := int64(math.Round(req.Price * 100)) // Сумма в центах

	session, err := s.provider.CreateCheckoutSession(paymentprovider.CreateSessionParams{
		ProductName: req.EventName,
		UnitAmount:  unitAmount,
		Quantity:    req.Quantity,
		Reference:   req.EventID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}
	s.log.Info("checkout session created", slog.String("session_id", session.ID))

	record := models.PaymentSession{
		SessionID: session.ID,
		EventID:   req.EventID,
		Amount:    unitAmount * int64(req.Quantity),
		Quantity:  req.Quantity,
		Status:    "created",
	}
	if err := s.repo.CreatePaymentSession(ctx, record); err != nil {
		s.log.Error("failed to persist payment session", sl.Err(err))
	}

	return &models.CheckoutResult{
		SessionID: session.ID,
		URL:       session.URL,
	}, nil
}
