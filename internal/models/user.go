// Package models содержит доменную модель пользователя системы,
// включающую данные учётной записи, хэш пароля и дату создания.
// Структура используется в бизнес‑логике и при работе с хранилищем.
package models

import "time"

// User представляет зарегистрированного пользователя системы.
type User struct {
	UID          string    // Уникальный идентификатор пользователя
	Name         string    // Отображаемое имя
	Email        string    // Электронная почта (уникальная)
	PasswordHash string    // Хэш пароля пользователя
	Image        string    // Ссылка на изображение профиля (опционально)
	CreatedAt    time.Time // Дата регистрации
}

// UserInfo — проекция пользователя для ответов API, без хэша пароля.
type UserInfo struct {
	UID   string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Image string `json:"image,omitempty"`
}

// Info возвращает безопасную проекцию пользователя.
func (u *User) Info() UserInfo {
	return UserInfo{
		UID:   u.UID,
		Name:  u.Name,
		Email: u.Email,
		Image: u.Image,
	}
}
