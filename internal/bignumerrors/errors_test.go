package bignumerrors

import (
	"errors"
	"testing"
)

func TestParseErrorMessage(t *testing.T) {
	err := NewParseError("12x4", "non-digit character")
	if err.Error() == "" {
		t.Fatal("expected a non-empty error message")
	}
	var pe ParseError
	if !errors.As(err, &pe) {
		t.Fatal("expected errors.As to recover a ParseError")
	}
	if pe.Input != "12x4" {
		t.Fatalf("ParseError.Input = %q, want %q", pe.Input, "12x4")
	}
}

func TestDivisionByZeroSentinel(t *testing.T) {
	if !errors.Is(ErrDivisionByZero, ErrDivisionByZero) {
		t.Fatal("ErrDivisionByZero should compare equal to itself via errors.Is")
	}
}

func TestSizeLimitMessage(t *testing.T) {
	err := SizeLimit{Requested: 100, Max: 50}
	if err.Error() == "" {
		t.Fatal("expected a non-empty error message")
	}
}

func TestWrapErrorNilPassthrough(t *testing.T) {
	if WrapError(nil, "context") != nil {
		t.Fatal("WrapError(nil, ...) should return nil")
	}
	wrapped := WrapError(ErrDivisionByZero, "while dividing %s", "x")
	if !errors.Is(wrapped, ErrDivisionByZero) {
		t.Fatal("WrapError should preserve errors.Is compatibility")
	}
}
