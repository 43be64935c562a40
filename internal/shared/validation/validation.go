// Package validation checks transport DTOs with go-playground/validator and
// turns the first failing rule into a client-facing message.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Error is a DTO validation failure. Message is safe to return to clients.
type Error struct {
	Field   string
	Rule    string
	Message string
}

func (e *Error) Error() string { return e.Message }

// Messages maps "Field.rule" (or just "Field") to a client-facing message.
// Field is the struct field name, rule is the validator tag.
type Messages map[string]string

var (
	once     sync.Once
	instance *validator.Validate
)

func engine() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
		instance.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return instance
}

// Struct validates payload and returns *Error for the first failing field.
func Struct(payload any, messages Messages) error {
	err := engine().Struct(payload)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("validate payload: %w", err)
	}

	first := fieldErrs[0]
	return &Error{
		Field:   first.Field(),
		Rule:    first.Tag(),
		Message: messageFor(first, messages),
	}
}

func messageFor(fe validator.FieldError, messages Messages) string {
	if message, ok := messages[fe.StructField()+"."+fe.Tag()]; ok {
		return message
	}
	if message, ok := messages[fe.StructField()]; ok {
		return message
	}
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be an email", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "gt", "gte":
		return fmt.Sprintf("%s must be a positive number", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
