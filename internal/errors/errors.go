package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrorType classifies an application error for logging and transport mapping.
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeStorage    ErrorType = "storage"
	ErrorTypeAuth       ErrorType = "auth"
	ErrorTypeForbidden  ErrorType = "forbidden"
	ErrorTypeNotFound   ErrorType = "not_found"
	ErrorTypeInternal   ErrorType = "internal"
)

// AppError is an error with a type, a stable code and optional context.
type AppError struct {
	Type     ErrorType
	Code     string
	Message  string
	Internal error
	Context  map[string]any
}

func (e *AppError) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s (%v)", e.Message, e.Internal)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Internal
}

// Is matches another AppError by type and code, falling back to the wrapped error.
func (e *AppError) Is(target error) bool {
	if t, ok := target.(*AppError); ok {
		return e.Type == t.Type && e.Code == t.Code
	}
	return errors.Is(e.Internal, target)
}

func (e *AppError) WithContext(key string, value any) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// LogFields returns slog key/value pairs describing the error.
func (e *AppError) LogFields() []any {
	fields := []any{
		"error_type", string(e.Type),
		"error_code", e.Code,
		"error_message", e.Message,
	}
	if e.Internal != nil {
		fields = append(fields, "internal_error", e.Internal.Error())
	}
	keys := make([]string, 0, len(e.Context))
	for k := range e.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fields = append(fields, k, e.Context[k])
	}
	return fields
}

func New(errorType ErrorType, code, message string) *AppError {
	return &AppError{Type: errorType, Code: code, Message: message}
}

func Wrap(err error, errorType ErrorType, code, message string) *AppError {
	return &AppError{Type: errorType, Code: code, Message: message, Internal: err}
}

var (
	ErrInvalidCredentials   = New(ErrorTypeAuth, "INVALID_CREDENTIALS", "invalid email or password")
	ErrNotAuthenticated     = New(ErrorTypeAuth, "NOT_AUTHENTICATED", "not logged in")
	ErrOnboardingIncomplete = New(ErrorTypeForbidden, "ONBOARDING_INCOMPLETE", "onboarding is not complete")
	ErrProfileMissing       = New(ErrorTypeNotFound, "PROFILE_MISSING", "profile has not been created yet")
	ErrFoodNotFound         = New(ErrorTypeNotFound, "FOOD_NOT_FOUND", "food not found")
)

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewValidationError builds a validation AppError listing every rejected field.
func NewValidationError(fields []FieldError) *AppError {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s %s", f.Field, f.Message))
	}
	e := New(ErrorTypeValidation, "VALIDATION", "invalid input: "+strings.Join(parts, "; "))
	e.WithContext("fields", fields)
	return e
}

func NewStorageError(err error, op string) *AppError {
	return Wrap(err, ErrorTypeStorage, "STORAGE", fmt.Sprintf("storage %s failed", op)).WithContext("operation", op)
}

func NewInternalError(err error) *AppError {
	return Wrap(err, ErrorTypeInternal, "INTERNAL", "internal error")
}

// TypeOf reports the ErrorType of err, or ErrorTypeInternal for foreign errors.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeInternal
}

// IsType reports whether err is an AppError of the given type.
func IsType(err error, t ErrorType) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == t
}
