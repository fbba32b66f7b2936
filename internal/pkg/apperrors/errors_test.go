package apperrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationErrorUnwraps(t *testing.T) {
	err := NewValidation("weight", "must be greater than 0.1 and at most 10")

	if !IsValidation(err) {
		t.Fatalf("IsValidation: want true")
	}
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("validation error must unwrap to ErrInvalidArgument")
	}

	wrapped := fmt.Errorf("create criterion: %w", err)
	if !IsValidation(wrapped) {
		t.Fatalf("IsValidation must see through wrapping")
	}
}

func TestConflictErrorUnwraps(t *testing.T) {
	err := NewConflict("judge already assigned to product")

	if !IsConflict(err) {
		t.Fatalf("IsConflict: want true")
	}
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("conflict error must unwrap to ErrConflict")
	}
	if IsValidation(err) {
		t.Fatalf("conflict must not read as validation")
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(ErrNotFound) {
		t.Fatalf("IsNotFound: want true for sentinel")
	}
	if IsNotFound(errors.New("boom")) {
		t.Fatalf("IsNotFound: want false for unrelated error")
	}
}
