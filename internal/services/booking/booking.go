// Package booking реализует бизнес-логику работы с бронями: создание без
// дубликатов, списки пользователя, отмену и аналитику по событиям владельца.
package booking

import (
	"context"
	"log/slog"

	"github.com/eventease/eventease/internal/lib/sl"
	"github.com/eventease/eventease/internal/models"
)

// BookingRepository определяет методы для работы с бронями в хранилище.
type BookingRepository interface {
	// CreateBooking вставляет бронь одним атомарным INSERT;
	// нарушение уникальности пары даёт repository.ErrBookingExists.
	CreateBooking(ctx context.Context, booking models.Booking) (string, error)
	// ListBookingsByUser возвращает все брони пользователя.
	ListBookingsByUser(ctx context.Context, userUID string) ([]*models.Booking, error)
	// ListBookingsByEvent возвращает все брони события.
	ListBookingsByEvent(ctx context.Context, eventID string) ([]*models.Booking, error)
	// RemoveBookingForUser удаляет бронь пользователя, возвращает число удалённых строк.
	RemoveBookingForUser(ctx context.Context, bookingID, userUID string) (int, error)
}

// EventRepository — доступ к событиям, нужный леджеру броней.
type EventRepository interface {
	ReadEvent(ctx context.Context, id string) (*models.Event, error)
	ListEventsByOwner(ctx context.Context, owner string) ([]*models.Event, error)
}

// UserRepository — доступ к пользователям для писем-подтверждений.
type UserRepository interface {
	GetUser(ctx context.Context, userUID string) (*models.User, error)
}

// Notifier ставит уведомления в исходящую очередь.
type Notifier interface {
	PublishBookingConfirmation(ctx context.Context, msg models.BookingConfirmation) error
}

// BookingService реализует бизнес-логику работы с бронями.
type BookingService struct {
	bookings BookingRepository
	events   EventRepository
	users    UserRepository
	notifier Notifier
	log      *slog.Logger
}

// New создает новый экземпляр BookingService.
func New(bookings BookingRepository, events EventRepository, users UserRepository, notifier Notifier, log *slog.Logger) *BookingService {
	return &BookingService{
		bookings: bookings,
		events:   events,
		users:    users,
		notifier: notifier,
		log:      log,
	}
}

// Create создает бронь для пользователя. Событие должно существовать;
// дубликат пары (user, event) отсекает уникальный индекс хранилища.
// Письмо-подтверждение ставится в очередь после фиксации брони:
// сбой очереди логируется и не влияет на результат.
func (s *BookingService) Create(ctx context.Context, userUID string, req models.DummyBooking) (*models.Booking, error) {
	event, err := s.events.ReadEvent(ctx, req.EventID)
	if err != nil {
		return nil, err
	}

	booking := models.Booking{
		UserUID:       userUID,
		EventID:       req.EventID,
		PaymentStatus: models.PaymentStatusPaid,
		Amount:        req.Amount,
		Attendees:     req.Attendees,
		AttendeeName:  req.AttendeeName,
	}
	if booking.Attendees < 1 {
		booking.Attendees = 1
	}
	if booking.AttendeeName == "" {
		booking.AttendeeName = "Guest"
	}

	id, err := s.bookings.CreateBooking(ctx, booking)
	if err != nil {
		return nil, err
	}
	booking.ID = id
	s.log.Info("booking created", slog.String("id", id), slog.String("event_id", req.EventID))

	user, err := s.users.GetUser(ctx, userUID)
	if err != nil {
		s.log.Warn("failed to load user for confirmation email", sl.Err(err))
		return &booking, nil
	}
	msg := models.BookingConfirmation{
		Email:       user.Email,
		Name:        user.Name,
		EventTitle:  event.Title,
		EventDate:   event.EventDate,
		EventTime:   event.EventTime,
		Location:    event.Location,
		TicketPrice: event.TicketPrice,
	}
	if err := s.notifier.PublishBookingConfirmation(ctx, msg); err != nil {
		s.log.Error("failed to enqueue booking confirmation", sl.Err(err))
	}
	return &booking, nil
}

// ListMy возвращает брони пользователя, дедуплицированные по событию.
// Фильтр избыточен при соблюдении уникального индекса, но сохранён
// как защитный слой на чтении.
func (s *BookingService) ListMy(ctx context.Context, userUID string) ([]*models.Booking, error) {
	bookings, err := s.bookings.ListBookingsByUser(ctx, userUID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(bookings))
	result := make([]*models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if _, ok := seen[b.EventID]; ok {
			continue
		}
		seen[b.EventID] = struct{}{}
		result = append(result, b)
	}
	return result, nil
}

// Cancel удаляет бронь пользователя по ID.
// Возвращает число удалённых строк: 0 означает, что брони нет
// или она принадлежит другому пользователю.
func (s *BookingService) Cancel(ctx context.Context, bookingID, userUID string) (int, error) {
	return s.bookings.RemoveBookingForUser(ctx, bookingID, userUID)
}

// Analytics собирает агрегаты по каждому событию владельца: количество
// броней и суммарную выручку. Полный проход по броням каждого события,
// без кеша — приемлемо на малых объёмах.
func (s *BookingService) Analytics(ctx context.Context, owner string) ([]models.EventAnalytics, error) {
	events, err := s.events.ListEventsByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}

	result := make([]models.EventAnalytics, 0, len(events))
	for _, event := range events {
		bookings, err := s.bookings.ListBookingsByEvent(ctx, event.ID)
		if err != nil {
			return nil, err
		}
		var totalRevenue float64
		for _, b := range bookings {
			totalRevenue += b.Amount
		}
		result = append(result, models.EventAnalytics{
			EventID:      event.ID,
			Title:        event.Title,
			RSVPCount:    len(bookings),
			TotalRevenue: totalRevenue,
		})
	}
	return result, nil
}
