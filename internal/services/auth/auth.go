// Package auth содержит логику бизнес-уровня для работы с пользователями и аутентификацией.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"github.com/eventease/eventease/internal/lib/jwt"
	"github.com/eventease/eventease/internal/lib/password"
	"github.com/eventease/eventease/internal/lib/sl"
	"github.com/eventease/eventease/internal/models"
	"github.com/eventease/eventease/internal/storage/repository"
)

// ErrInvalidCredentials возвращается при неверном email или пароле.
// Оба случая неразличимы снаружи, чтобы не раскрывать, какая проверка не прошла.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ValidationError описывает нарушение конкретного правила входных данных.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

// NewValidationError создает ошибку валидации с готовым сообщением.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{msg: msg}
}

func validationErrorf(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает его UID.
	CreateUser(ctx context.Context, user models.User) (string, error)

	// GetUserByEmail возвращает пользователя по email или repository.ErrUserNotFound.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUser возвращает пользователя по UID или repository.ErrUserNotFound.
	GetUser(ctx context.Context, userUID string) (*models.User, error)

	// UpdateUserPassword сохраняет новый хэш пароля.
	UpdateUserPassword(ctx context.Context, userUID, passwordHash string) error
}

// Notifier ставит уведомления в исходящую очередь.
type Notifier interface {
	PublishResetEmail(ctx context.Context, msg models.ResetEmail) error
}

// AuthService отвечает за регистрацию, вход, сброс пароля и выпуск токенов.
type AuthService struct {
	users        UserRepository
	tokenMaker   jwt.Maker
	notifier     Notifier
	clientOrigin string
	log          *slog.Logger
}

// New создает новый экземпляр AuthService.
func New(users UserRepository, tokenMaker jwt.Maker, notifier Notifier, clientOrigin string, log *slog.Logger) *AuthService {
	return &AuthService{
		users:        users,
		tokenMaker:   tokenMaker,
		notifier:     notifier,
		clientOrigin: clientOrigin,
		log:          log,
	}
}

// Register создает нового пользователя с хэшированием пароля.
// Возвращает проекцию без хэша пароля.
func (s *AuthService) Register(ctx context.Context, name, email, rawPassword string) (*models.UserInfo, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(rawPassword); err != nil {
		return nil, err
	}

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return nil, err
	}
	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashed,
	}
	uid, err := s.users.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	s.log.Info("user registered", slog.String("uid", uid))

	user.UID = uid
	info := user.Info()
	return &info, nil
}

// Login проверяет пароль пользователя и выпускает сессионный токен.
// Несуществующий email и неверный пароль дают одинаковую ошибку.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (string, *models.UserInfo, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", nil, ErrInvalidCredentials
	}
	token, err := s.tokenMaker.Issue(user.UID, jwt.PurposeSession)
	if err != nil {
		return "", nil, err
	}
	info := user.Info()
	return token, &info, nil
}

// ValidateSession проверяет сессионный токен и возвращает UID пользователя.
func (s *AuthService) ValidateSession(_ context.Context, token string) (string, error) {
	return s.tokenMaker.Verify(token, jwt.PurposeSession)
}

// ForgotPassword выпускает reset-токен и ставит в очередь письмо со ссылкой
// на сброс. Сбой очереди логируется, но не меняет результат: токен уже выпущен.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}

	token, err := s.tokenMaker.Issue(user.UID, jwt.PurposeReset)
	if err != nil {
		return err
	}

	msg := models.ResetEmail{
		Email:     user.Email,
		Name:      user.Name,
		ResetLink: fmt.Sprintf("%s/resetpassword/%s", s.clientOrigin, token),
	}
	if err := s.notifier.PublishResetEmail(ctx, msg); err != nil {
		s.log.Error("failed to enqueue reset email", sl.Err(err))
	}
	return nil
}

// ResetPassword проверяет reset-токен, правило пароля и сохраняет новый хэш.
// Токен одноразовый только по замыслу: повторное использование в пределах
// 15 минут не отслеживается.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	userUID, err := s.tokenMaker.Verify(token, jwt.PurposeReset)
	if err != nil {
		return err
	}
	user, err := s.users.GetUser(ctx, userUID)
	if err != nil {
		return err
	}
	if err := validatePassword(newPassword); err != nil {
		return err
	}
	hashed, err := password.GetHash(newPassword)
	if err != nil {
		return err
	}
	if err := s.users.UpdateUserPassword(ctx, user.UID, hashed); err != nil {
		return err
	}
	s.log.Info("password reset completed", slog.String("uid", user.UID))
	return nil
}

func validateName(name string) error {
	if len(name) < 3 {
		return validationErrorf("name must be at least 3 characters long")
	}
	return nil
}

// validateEmail делает синтаксическую проверку, не RFC-валидацию:
// достаточно наличия "@" и ".".
func validateEmail(email string) error {
	if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return validationErrorf("invalid email format")
	}
	return nil
}

func validatePassword(rawPassword string) error {
	if len(rawPassword) < 8 {
		return validationErrorf("password must be at least 8 characters long")
	}
	for _, r := range rawPassword {
		if unicode.IsUpper(r) {
			return nil
		}
	}
	return validationErrorf("password must contain at least one uppercase letter")
}
