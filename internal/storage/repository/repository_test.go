package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/eventease/eventease/internal/migrations"
	"github.com/eventease/eventease/internal/models"
)

func getTestStorage(t *testing.T) (*Storage, func()) {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx)
	require.NoError(t, err)

	storage, err := New(dsn)
	require.NoError(t, err)

	migrationsPath, err := filepath.Abs("../../../migrations")
	require.NoError(t, err)
	require.NoError(t, migrations.Run(storage.DB, migrationsPath))

	cleanup := func() {
		storage.DB.Close()
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	}

	return storage, cleanup
}

func createTestUser(t *testing.T, storage *Storage, email string) string {
	t.Helper()
	uid, err := storage.CreateUser(context.Background(), models.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: "$2a$10$fakehashfakehashfakehashfakehash",
	})
	require.NoError(t, err)
	return uid
}

func createTestEvent(t *testing.T, storage *Storage, owner string) string {
	t.Helper()
	id, err := storage.CreateEvent(context.Background(), models.Event{
		Owner:       owner,
		Title:       "Go Conference",
		Description: "Talks about Go",
		OrganizedBy: "Event Organizer",
		EventDate:   time.Now().AddDate(0, 1, 0),
		EventTime:   "18:00",
		Location:    "Berlin",
		TicketPrice: 25,
	})
	require.NoError(t, err)
	return id
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	storage, cleanup := getTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	uid := createTestUser(t, storage, "ann@x.com")
	assert.NotEmpty(t, uid)

	_, err := storage.CreateUser(ctx, models.User{
		Name:         "Another Ann",
		Email:        "ann@x.com",
		PasswordHash: "$2a$10$otherhashotherhashotherhashother",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)

	// После сбоя второй регистрации запись ровно одна.
	var count int
	require.NoError(t, storage.DB.QueryRow(
		`SELECT COUNT(*) FROM users WHERE email = 'ann@x.com'`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestGetUserByEmail_NotFound(t *testing.T) {
	storage, cleanup := getTestStorage(t)
	defer cleanup()

	_, err := storage.GetUserByEmail(context.Background(), "nobody@x.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestCreateBooking_DuplicatePair(t *testing.T) {
	storage, cleanup := getTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	userUID := createTestUser(t, storage, "ann@x.com")
	eventID := createTestEvent(t, storage, "ann")

	booking := models.Booking{
		UserUID:       userUID,
		EventID:       eventID,
		PaymentStatus: models.PaymentStatusPaid,
		Amount:        0,
		Attendees:     1,
		AttendeeName:  "Ann",
	}

	id, err := storage.CreateBooking(ctx, booking)
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	_, err = storage.CreateBooking(ctx, booking)
	assert.ErrorIs(t, err, ErrBookingExists)

	bookings, err := storage.ListBookingsByUser(ctx, userUID)
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
}

func TestRemoveBookingForUser_OtherUsersBookingUntouched(t *testing.T) {
	storage, cleanup := getTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	ownerUID := createTestUser(t, storage, "owner@x.com")
	strangerUID := createTestUser(t, storage, "stranger@x.com")
	eventID := createTestEvent(t, storage, "owner")

	bookingID, err := storage.CreateBooking(ctx, models.Booking{
		UserUID:       ownerUID,
		EventID:       eventID,
		PaymentStatus: models.PaymentStatusPaid,
		Attendees:     1,
		AttendeeName:  "Owner",
	})
	require.NoError(t, err)

	deleted, err := storage.RemoveBookingForUser(ctx, bookingID, strangerUID)
	require.NoError(t, err)
	assert.Equal(t, 0, deleted)

	bookings, err := storage.ListBookingsByUser(ctx, ownerUID)
	require.NoError(t, err)
	assert.Len(t, bookings, 1)

	deleted, err = storage.RemoveBookingForUser(ctx, bookingID, ownerUID)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)
}

func TestUpdateUserPassword(t *testing.T) {
	storage, cleanup := getTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	uid := createTestUser(t, storage, "ann@x.com")

	err := storage.UpdateUserPassword(ctx, uid, "$2a$10$newhashnewhashnewhashnewhashnewh")
	require.NoError(t, err)

	user, err := storage.GetUser(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, "$2a$10$newhashnewhashnewhashnewhashnewh", user.PasswordHash)

	err = storage.UpdateUserPassword(ctx, "00000000-0000-0000-0000-000000000000", "hash")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
