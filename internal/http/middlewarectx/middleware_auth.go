// Package middlewarectx содержит HTTP middleware для проверки сессионных JWT токенов.
//
// JWTMiddleware принимает токен из заголовка Authorization (Bearer) или из
// cookie "token", проверяет его через сервис аутентификации и в случае успеха
// добавляет в контекст UID пользователя для дальнейшего использования
// в обработчиках.
//
// В случае ошибки проверки возвращает HTTP 401 Unauthorized с сообщением об ошибке.
package middlewarectx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/eventease/eventease/internal/http/response"
	"github.com/eventease/eventease/internal/lib/jwt"
	"github.com/eventease/eventease/internal/lib/sl"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// UserUID — ключ для UID пользователя в контексте.
const UserUID Key = "user_uid"

// Service описывает интерфейс сервиса для валидации сессионного токена.
type Service interface {
	ValidateSession(ctx context.Context, token string) (string, error)
}

// extractToken достает токен из заголовка Authorization или cookie "token".
// Заголовок имеет приоритет: он используется API-клиентами, cookie — браузером.
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	if cookie, err := r.Cookie("token"); err == nil {
		return cookie.Value
	}
	return ""
}

// JWTMiddleware проверяет сессионный токен запроса.
// Если токен валиден, добавляет UID пользователя в контекст,
// иначе возвращает ошибку с HTTP статусом 401 Unauthorized.
func JWTMiddleware(authService Service, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.JWTMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			tokenStr := extractToken(r)
			if tokenStr == "" {
				log.Error("missing authorization token")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("unauthorized - no token provided"))
				return
			}

			userUID, err := authService.ValidateSession(r.Context(), tokenStr)
			if err != nil {
				log.Error("invalid or expired token", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				if errors.Is(err, jwt.ErrTokenExpired) {
					render.JSON(w, r, response.Error("unauthorized - token expired"))
					return
				}
				render.JSON(w, r, response.Error("unauthorized - invalid token"))
				return
			}

			ctx := context.WithValue(r.Context(), UserUID, userUID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
