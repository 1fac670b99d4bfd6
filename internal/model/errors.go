package model

import "strings"

// FieldError описывает нарушение схемы для конкретного поля ответа
type FieldError struct {
	Field   string
	Message string
}

func (f FieldError) String() string {
	return f.Field + ": " + f.Message
}

// ValidationError возвращается, когда тело ответа — корректный JSON,
// но не удовлетворяет схеме Character. Содержит все проблемные поля,
// а не только первое найденное.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.String()
	}

	return "character validation failed: " + strings.Join(parts, "; ")
}
