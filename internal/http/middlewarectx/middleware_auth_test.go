package middlewarectx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/eventease/eventease/internal/lib/jwt"

	"io"
	"log/slog"
)

type AuthServiceMock struct{ mock.Mock }

func (m *AuthServiceMock) ValidateSession(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func nextCapture(gotUID *string, called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		if uid, ok := r.Context().Value(UserUID).(string); ok {
			*gotUID = uid
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestJWTMiddleware_BearerHeader(t *testing.T) {
	svc := new(AuthServiceMock)
	svc.On("ValidateSession", mock.Anything, "valid-token").Return("uid-1", nil).Once()

	var gotUID string
	var called bool
	handler := JWTMiddleware(svc, newNoopLogger())(nextCapture(&gotUID, &called))

	req := httptest.NewRequest(http.MethodGet, "/my-bookings", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	require.True(t, called)
	assert.Equal(t, "uid-1", gotUID)
}

func TestJWTMiddleware_Cookie(t *testing.T) {
	svc := new(AuthServiceMock)
	svc.On("ValidateSession", mock.Anything, "cookie-token").Return("uid-2", nil).Once()

	var gotUID string
	var called bool
	handler := JWTMiddleware(svc, newNoopLogger())(nextCapture(&gotUID, &called))

	req := httptest.NewRequest(http.MethodGet, "/my-bookings", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "cookie-token"})
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "uid-2", gotUID)
}

func TestJWTMiddleware_HeaderWinsOverCookie(t *testing.T) {
	svc := new(AuthServiceMock)
	svc.On("ValidateSession", mock.Anything, "header-token").Return("uid-1", nil).Once()

	var gotUID string
	var called bool
	handler := JWTMiddleware(svc, newNoopLogger())(nextCapture(&gotUID, &called))

	req := httptest.NewRequest(http.MethodGet, "/my-bookings", nil)
	req.Header.Set("Authorization", "Bearer header-token")
	req.AddCookie(&http.Cookie{Name: "token", Value: "cookie-token"})
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	svc.AssertExpectations(t)
}

func TestJWTMiddleware_Unauthorized(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(svc *AuthServiceMock)
		setupReq   func(req *http.Request)
		wantBody   string
	}{
		{
			name:       "no token at all",
			setupMocks: func(svc *AuthServiceMock) {},
			setupReq:   func(req *http.Request) {},
			wantBody:   "no token provided",
		},
		{
			name: "expired token",
			setupMocks: func(svc *AuthServiceMock) {
				svc.On("ValidateSession", mock.Anything, "expired").
					Return("", jwt.ErrTokenExpired).Once()
			},
			setupReq: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer expired")
			},
			wantBody: "token expired",
		},
		{
			name: "garbage token",
			setupMocks: func(svc *AuthServiceMock) {
				svc.On("ValidateSession", mock.Anything, "garbage").
					Return("", jwt.ErrTokenInvalid).Once()
			},
			setupReq: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer garbage")
			},
			wantBody: "invalid token",
		},
		{
			name: "reset token used as session",
			setupMocks: func(svc *AuthServiceMock) {
				svc.On("ValidateSession", mock.Anything, "reset-purpose").
					Return("", jwt.ErrPurposeMismatch).Once()
			},
			setupReq: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer reset-purpose")
			},
			wantBody: "invalid token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(AuthServiceMock)
			tt.setupMocks(svc)

			var gotUID string
			var called bool
			handler := JWTMiddleware(svc, newNoopLogger())(nextCapture(&gotUID, &called))

			req := httptest.NewRequest(http.MethodGet, "/my-bookings", nil)
			tt.setupReq(req)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.False(t, called)
			assert.Contains(t, rr.Body.String(), tt.wantBody)
		})
	}
}
