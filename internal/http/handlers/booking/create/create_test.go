package create

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/eventease/eventease/internal/http/middlewarectx"
	"github.com/eventease/eventease/internal/models"
	"github.com/eventease/eventease/internal/storage/repository"
)

// MockService реализует интерфейс create.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, userUID string, req models.DummyBooking) (*models.Booking, error) {
	args := m.Called(ctx, userUID, req)
	if res := args.Get(0); res != nil {
		return res.(*models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestCreateBookingHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		body           string
		userUID        string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "успешное создание брони",
			body:    `{"event_id":"ev-1","amount":25}`,
			userUID: "uid-1",
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, "uid-1", models.DummyBooking{EventID: "ev-1", Amount: 25}).
					Return(&models.Booking{ID: "bk-1", EventID: "ev-1", Attendees: 1, AttendeeName: "Guest"}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"id":"bk-1"`,
		},
		{
			name:           "некорректный JSON",
			body:           `{not json`,
			userUID:        "uid-1",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `invalid request body`,
		},
		{
			name:           "пустой event_id",
			body:           `{"amount":25}`,
			userUID:        "uid-1",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field EventID is a required field`,
		},
		{
			name:           "нет пользователя в контексте",
			body:           `{"event_id":"ev-1"}`,
			userUID:        "",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `unauthorized`,
		},
		{
			name:    "событие не найдено",
			body:    `{"event_id":"missing"}`,
			userUID: "uid-1",
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, "uid-1", models.DummyBooking{EventID: "missing"}).
					Return(nil, repository.ErrEventNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `event not found`,
		},
		{
			name:    "повторная бронь",
			body:    `{"event_id":"ev-1"}`,
			userUID: "uid-1",
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, "uid-1", models.DummyBooking{EventID: "ev-1"}).
					Return(nil, repository.ErrBookingExists)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `already booked`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(tt.body))
			if tt.userUID != "" {
				ctx := context.WithValue(req.Context(), middlewarectx.UserUID, tt.userUID)
				req = req.WithContext(ctx)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())
			mockService.AssertExpectations(t)
		})
	}
}
