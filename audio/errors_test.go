package audio

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrors_Messages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err     error
		message string
	}{
		{ErrInvalidDstSize, "dst size must be multiple of channels"},
		{ErrUnknownFormat, "unknown audio format"},
		{ErrReadOnlyFormat, "audio format cannot be written"},
		{ErrInvalidSignal, "signal must have a positive rate and channel count"},
		{ErrEncodingRejected, "encoding rejected for output"},
		{ErrShortWrite, "short write"},
		{ErrStreamClosed, "stream is closed"},
		{ErrWrongMode, "operation not allowed in stream mode"},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			t.Parallel()

			if tt.err.Error() != tt.message {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.message)
			}
		})
	}
}

func TestErrors_Wrapping(t *testing.T) {
	t.Parallel()

	errs := []error{
		ErrInvalidDstSize,
		ErrUnknownFormat,
		ErrReadOnlyFormat,
		ErrInvalidSignal,
		ErrEncodingRejected,
		ErrShortWrite,
		ErrStreamClosed,
		ErrWrongMode,
	}

	for i, base := range errs {
		wrapped := fmt.Errorf("context: %w", base)
		if !errors.Is(wrapped, base) {
			t.Errorf("wrapped %v does not match its base", base)
		}
		for j, other := range errs {
			if i != j && errors.Is(wrapped, other) {
				t.Errorf("wrapped %v matches unrelated %v", base, other)
			}
		}
	}
}
