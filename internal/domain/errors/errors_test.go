package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"not found", ErrNotFound},
		{"already exists", ErrAlreadyExists},
		{"forbidden", ErrForbidden},
		{"invalid credentials", ErrInvalidCredentials},
		{"validation", ErrValidation},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !stdErrors.Is(tc.err, tc.err) {
				t.Fatalf("expected error to match itself: %v", tc.err)
			}
		})
	}
}

func TestWrappedValidationErrorMatches(t *testing.T) {
	err := fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	if !stdErrors.Is(err, ErrValidation) {
		t.Fatalf("expected wrapped error to match ErrValidation, got %v", err)
	}
}
