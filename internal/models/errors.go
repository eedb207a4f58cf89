package models

import "fmt"

// ValidationError представляет нарушение ограничений при записи факта.
// Запись отклоняется целиком, частичное применение невозможно.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %q: %s", e.Field, e.Message)
}

// UnknownProjectionError представляет запрос несуществующей проекции
type UnknownProjectionError struct {
	Name string
}

func (e *UnknownProjectionError) Error() string {
	return fmt.Sprintf("unknown projection: %q", e.Name)
}

// InvalidFilterError представляет фильтр, не входящий в словарь проекции
type InvalidFilterError struct {
	Field string
	Value string
}

func (e *InvalidFilterError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid filter column: %q", e.Field)
	}
	return fmt.Sprintf("invalid filter value %q for column %q", e.Value, e.Field)
}

// TimeoutError представляет превышение таймаута запроса.
// Частичный результат при этом не возвращается.
type TimeoutError struct {
	Operation string
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("query timed out: %s", e.Operation)
}
