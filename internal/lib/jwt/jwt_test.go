package jwt

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "test_secret_key_1234567890"
	sessionTTL = 60 * 24 * time.Hour
	resetTTL   = 15 * time.Minute
)

func TestMaker_IssueAndVerify_ValidCases(t *testing.T) {
	maker := NewMaker(testSecret, sessionTTL, resetTTL)

	tests := []struct {
		name    string
		userUID string
		purpose Purpose
	}{
		{
			name:    "session token",
			userUID: "6a9f6f10-73e0-4f0a-9026-0f8de61a2d0f",
			purpose: PurposeSession,
		},
		{
			name:    "reset token",
			userUID: "6a9f6f10-73e0-4f0a-9026-0f8de61a2d0f",
			purpose: PurposeReset,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := maker.Issue(tt.userUID, tt.purpose)
			require.NoError(t, err)
			assert.NotEmpty(t, token)

			uid, err := maker.Verify(token, tt.purpose)
			require.NoError(t, err)
			assert.Equal(t, tt.userUID, uid)
		})
	}
}

func TestMaker_ExpiryPerPurpose(t *testing.T) {
	maker := NewMaker(testSecret, sessionTTL, resetTTL)

	sessionToken, err := maker.Issue("user-1", PurposeSession)
	require.NoError(t, err)
	resetToken, err := maker.Issue("user-1", PurposeReset)
	require.NoError(t, err)

	sessionClaims := parseClaims(t, sessionToken)
	resetClaims := parseClaims(t, resetToken)

	// Сессионный токен действует 60 дней, reset-токен — 15 минут.
	assert.WithinDuration(t, time.Now().Add(sessionTTL), sessionClaims.ExpiresAt.Time, time.Second)
	assert.WithinDuration(t, time.Now().Add(resetTTL), resetClaims.ExpiresAt.Time, time.Second)
}

func TestMaker_ExpiredToken(t *testing.T) {
	expiredMaker := NewMaker(testSecret, -time.Hour, -time.Minute)
	validMaker := NewMaker(testSecret, sessionTTL, resetTTL)

	tests := []struct {
		name    string
		purpose Purpose
	}{
		{name: "expired session token", purpose: PurposeSession},
		{name: "expired reset token", purpose: PurposeReset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := expiredMaker.Issue("user-1", tt.purpose)
			require.NoError(t, err)

			_, err = validMaker.Verify(token, tt.purpose)
			assert.ErrorIs(t, err, ErrTokenExpired)
		})
	}
}

func TestMaker_InvalidTokens(t *testing.T) {
	maker := NewMaker(testSecret, sessionTTL, resetTTL)
	wrongMaker := NewMaker("wrong_secret_key", sessionTTL, resetTTL)

	validToken, err := maker.Issue("user-1", PurposeSession)
	require.NoError(t, err)
	wrongSecretToken, err := wrongMaker.Issue("user-1", PurposeSession)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty token", token: ""},
		{name: "malformed token", token: "invalid.token.here"},
		{name: "wrong secret key", token: wrongSecretToken},
		{name: "tampered token", token: validToken + "tampered"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uid, err := maker.Verify(tt.token, PurposeSession)
			assert.ErrorIs(t, err, ErrTokenInvalid)
			assert.Empty(t, uid)
		})
	}
}

func TestMaker_PurposeMismatch(t *testing.T) {
	maker := NewMaker(testSecret, sessionTTL, resetTTL)

	resetToken, err := maker.Issue("user-1", PurposeReset)
	require.NoError(t, err)

	// Reset-токен нельзя использовать как сессионный и наоборот.
	_, err = maker.Verify(resetToken, PurposeSession)
	assert.ErrorIs(t, err, ErrPurposeMismatch)

	sessionToken, err := maker.Issue("user-1", PurposeSession)
	require.NoError(t, err)

	_, err = maker.Verify(sessionToken, PurposeReset)
	assert.ErrorIs(t, err, ErrPurposeMismatch)
}

func TestMaker_TokenExpiration(t *testing.T) {
	shortTTL := 100 * time.Millisecond
	maker := NewMaker(testSecret, shortTTL, shortTTL)

	token, err := maker.Issue("user-1", PurposeSession)
	require.NoError(t, err)

	uid, err := maker.Verify(token, PurposeSession)
	require.NoError(t, err)
	assert.Equal(t, "user-1", uid)

	time.Sleep(150 * time.Millisecond)

	_, err = maker.Verify(token, PurposeSession)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func parseClaims(t *testing.T, tokenStr string) *CustomClaims {
	t.Helper()
	token, err := gojwt.ParseWithClaims(tokenStr, &CustomClaims{}, func(_ *gojwt.Token) (any, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	claims, ok := token.Claims.(*CustomClaims)
	require.True(t, ok)
	return claims
}
