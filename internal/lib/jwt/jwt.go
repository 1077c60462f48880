package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CustomClaims описывает пользовательские данные, хранящиеся в токене.
// Subject стандартных claims содержит идентификатор пользователя.
type CustomClaims struct {
	Purpose              string `json:"purpose"` // Назначение токена: session или reset
	jwt.RegisteredClaims        // Встроенные стандартные claims (ExpiresAt, IssuedAt и пр.)
}

// Issue выпускает подписанный токен с заданным назначением.
//
// Время жизни зависит от назначения: sessionTTL для session, resetTTL для reset.
func (j *MakerImpl) Issue(userUID string, purpose Purpose) (string, error) {
	claims := CustomClaims{
		Purpose: string(purpose),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userUID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(j.ttl(purpose))),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

// Verify разбирает токен, проверяет подпись, срок действия и назначение,
// возвращает идентификатор пользователя.
func (j *MakerImpl) Verify(tokenStr string, purpose Purpose) (string, error) {
	const op = "jwt.Verify"
	token, err := jwt.ParseWithClaims(tokenStr, &CustomClaims{}, func(_ *jwt.Token) (any, error) {
		return []byte(j.secretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", fmt.Errorf("%s: %w", op, ErrTokenExpired)
		}
		return "", fmt.Errorf("%s: %w", op, ErrTokenInvalid)
	}
	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("%s: %w", op, ErrTokenInvalid)
	}
	if claims.Purpose != string(purpose) {
		return "", fmt.Errorf("%s: %w", op, ErrPurposeMismatch)
	}
	return claims.Subject, nil
}
