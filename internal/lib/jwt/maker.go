// Package jwt реализует выпуск и проверку подписанных токенов с назначением (purpose).
//
// Токен сессии живёт долго (60 дней по конфигурации), токен сброса пароля —
// коротко (15 минут). Оба подписываются одним секретом процесса, назначение
// фиксируется в claims и проверяется при разборе.
package jwt

import (
	"errors"
	"time"
)

// Purpose — назначение токена.
type Purpose string

const (
	// PurposeSession — токен аутентификации сессии.
	PurposeSession Purpose = "session"
	// PurposeReset — токен сброса пароля.
	PurposeReset Purpose = "reset"
)

// Ошибки проверки токена.
var (
	// ErrTokenExpired — срок действия токена истёк.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid — подпись или структура токена не совпадает.
	ErrTokenInvalid = errors.New("invalid token")
	// ErrPurposeMismatch — токен выпущен с другим назначением
	// (например, reset-токен предъявлен вместо session-токена).
	ErrPurposeMismatch = errors.New("token purpose mismatch")
)

// Maker описывает интерфейс для выпуска и проверки токенов.
type Maker interface {
	// Issue выпускает токен для пользователя с указанным назначением.
	Issue(userUID string, purpose Purpose) (string, error)
	// Verify проверяет подпись, срок и назначение токена,
	// возвращает идентификатор пользователя.
	Verify(tokenStr string, purpose Purpose) (string, error)
}

// MakerImpl реализует интерфейс Maker с использованием секретного ключа
// и раздельных TTL для сессионных и reset-токенов.
//
// Отозвать выпущенный токен нельзя: смена пароля не инвалидирует ранее
// выданные сессионные токены. Это принятое поведение системы.
type MakerImpl struct {
	secretKey  string
	sessionTTL time.Duration
	resetTTL   time.Duration
}

// NewMaker создаёт новый экземпляр MakerImpl.
func NewMaker(secretKey string, sessionTTL, resetTTL time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey:  secretKey,
		sessionTTL: sessionTTL,
		resetTTL:   resetTTL,
	}
}

func (j *MakerImpl) ttl(purpose Purpose) time.Duration {
	if purpose == PurposeReset {
		return j.resetTTL
	}
	return j.sessionTTL
}
