// Package sl содержит вспомогательные функции для работы с логгером slog.
package sl

import "log/slog"

// Err возвращает slog.Attr с ключом "error" и значением текста ошибки.
// Сервисы и обработчики используют его, чтобы поле ошибки в логах
// всегда называлось одинаково.
//
// Пример:
//
//	log.Error("failed to create booking", sl.Err(err))
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}
