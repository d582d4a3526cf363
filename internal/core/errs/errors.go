package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Kind — категория ошибки при работе с внешними сервисами.
type Kind int

const (
	KindUncaught Kind = iota
	KindConfiguration
	KindConnection
	KindRateLimited
	KindParse
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindTooMany
)

func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "Configuration"
	case KindConnection:
		return "Connection"
	case KindRateLimited:
		return "RateLimited"
	case KindParse:
		return "Parse"
	case KindUnauthorized:
		return "Unauthorized"
	case KindForbidden:
		return "Forbidden"
	case KindNotFound:
		return "NotFound"
	case KindTooMany:
		return "TooMany"
	default:
		return "Uncaught"
	}
}

// Error — ошибка с категорией. Текст уже очищен от секретов.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func New(kind Kind, message string, secrets ...string) *Error {
	return &Error{Kind: kind, Message: Sanitize(message, secrets...)}
}

func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf возвращает категорию ошибки; для посторонних ошибок — KindUncaught.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUncaught
}

func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// Sanitize вырезает секреты (токены доступа) из текста ошибки
// перед логированием или показом пользователю.
func Sanitize(message string, secrets ...string) string {
	for _, secret := range secrets {
		if secret == "" {
			continue
		}
		message = strings.ReplaceAll(message, secret, "[REDACTED]")
	}
	return message
}
