package vybiumzkvmaccel

import (
	"errors"
	"fmt"
	"testing"
)

func TestAccelErrorFormatting(t *testing.T) {
	t.Run("WithoutCause", func(t *testing.T) {
		err := &AccelError{Code: ErrOutOfRange, Message: "bad word"}
		want := fmt.Sprintf("vybium-zkvm-accel error [%d]: bad word", ErrOutOfRange)
		if err.Error() != want {
			t.Errorf("Error() = %q, want %q", err.Error(), want)
		}
	})

	t.Run("WithCause", func(t *testing.T) {
		cause := errors.New("inner")
		err := &AccelError{Code: ErrShapeMismatch, Message: "bad noun", Cause: cause}
		if !errors.Is(err, cause) {
			t.Error("wrapped cause not reachable through Unwrap")
		}
	})
}

func TestAccelErrorIs(t *testing.T) {
	err := &AccelError{Code: ErrArityMismatch, Message: "short list"}
	if !errors.Is(err, &AccelError{Code: ErrArityMismatch}) {
		t.Error("errors with the same code should match")
	}
	if errors.Is(err, &AccelError{Code: ErrShapeMismatch}) {
		t.Error("errors with different codes should not match")
	}
}

func TestPublicErrorsCarryCodes(t *testing.T) {
	t.Run("OutOfRange", func(t *testing.T) {
		var input [Rate]uint64
		input[0] = FieldModulus
		_, err := Hash10(input)
		var accelErr *AccelError
		if !errors.As(err, &accelErr) {
			t.Fatalf("err = %v, want *AccelError", err)
		}
		if accelErr.Code != ErrOutOfRange {
			t.Errorf("code = %d, want ErrOutOfRange", accelErr.Code)
		}
	})

	t.Run("ArityMismatch", func(t *testing.T) {
		subject := NewCallSubject(NewList(1, 2, 3))
		_, err := Hash10Call(subject)
		if !errors.Is(err, &AccelError{Code: ErrArityMismatch}) {
			t.Errorf("err = %v, want ErrArityMismatch code", err)
		}
	})

	t.Run("ShapeMismatch", func(t *testing.T) {
		_, err := PermutationCall(NewAtom(0))
		if !errors.Is(err, &AccelError{Code: ErrShapeMismatch}) {
			t.Errorf("err = %v, want ErrShapeMismatch code", err)
		}
	})
}
