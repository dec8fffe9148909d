package errors_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	apperrors "github.com/mindmeal/mindmeal-cli/internal/errors"
)

func TestAppErrorIsMatchesTypeAndCode(t *testing.T) {
	t.Parallel()
	wrapped := fmt.Errorf("login: %w", apperrors.ErrInvalidCredentials)
	if !errors.Is(wrapped, apperrors.ErrInvalidCredentials) {
		t.Fatalf("expected wrapped error to match ErrInvalidCredentials")
	}
	if errors.Is(wrapped, apperrors.ErrNotAuthenticated) {
		t.Fatalf("did not expect match against a different code")
	}
	if apperrors.TypeOf(wrapped) != apperrors.ErrorTypeAuth {
		t.Fatalf("expected auth type, got %s", apperrors.TypeOf(wrapped))
	}
}

func TestValidationErrorListsFields(t *testing.T) {
	t.Parallel()
	err := apperrors.NewValidationError([]apperrors.FieldError{
		{Field: "age", Message: "must be between 13 and 100"},
		{Field: "height", Message: "must be between 100 and 250"},
	})
	if !strings.Contains(err.Error(), "age") || !strings.Contains(err.Error(), "height") {
		t.Fatalf("expected both fields in message, got %q", err.Error())
	}
	if !apperrors.IsType(err, apperrors.ErrorTypeValidation) {
		t.Fatalf("expected validation type")
	}
}

func TestStorageErrorUnwraps(t *testing.T) {
	t.Parallel()
	base := errors.New("disk full")
	err := apperrors.NewStorageError(base, "set")
	if !errors.Is(err, base) {
		t.Fatalf("expected storage error to unwrap to base error")
	}
	fields := err.LogFields()
	if len(fields)%2 != 0 {
		t.Fatalf("expected even number of log fields, got %d", len(fields))
	}
}
