// Package apperrors provides tests for application error types.
package apperrors

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"testing"
)

func TestConfigError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		err         error
		expected    string
		checkTypeAs bool
	}{
		{
			name:     "Error returns message",
			err:      ConfigError{Message: "invalid mode"},
			expected: "invalid mode",
		},
		{
			name:     "NewConfigError creates formatted error",
			err:      NewConfigError("input mode %q is not supported", "fast"),
			expected: `input mode "fast" is not supported`,
		},
		{
			name:        "ConfigError type assertion",
			err:         NewConfigError("test error"),
			expected:    "test error",
			checkTypeAs: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
			if tt.checkTypeAs {
				var configErr ConfigError
				if !errors.As(tt.err, &configErr) {
					t.Error("expected error to be ConfigError type")
				}
			}
		})
	}
}

func TestReferenceError_IsSentinel(t *testing.T) {
	t.Parallel()
	tests := []struct {
		kind     ReferenceKind
		sentinel error
		label    string
	}{
		{KindUnreadable, ErrReferenceUnreadable, "unreadable"},
		{KindOutOfRange, ErrOutOfRange, "out_of_range"},
		{KindMalformedEntry, ErrMalformedEntry, "malformed_entry"},
		{KindNotFound, ErrNotFound, "not_found"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.label, func(t *testing.T) {
			t.Parallel()
			err := NewReferenceError(tt.kind, "fib.txt", big.NewInt(7), nil)

			if !errors.Is(err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", err, tt.sentinel)
			}
			wrapped := fmt.Errorf("benchmark: %w", err)
			if !errors.Is(wrapped, tt.sentinel) {
				t.Errorf("errors.Is should see %v through wrapping", tt.sentinel)
			}
			if tt.kind.String() != tt.label {
				t.Errorf("Kind.String() = %q, want %q", tt.kind.String(), tt.label)
			}
			kind, ok := ReferenceKindOf(wrapped)
			if !ok || kind != tt.kind {
				t.Errorf("ReferenceKindOf = (%v, %v), want (%v, true)", kind, ok, tt.kind)
			}
		})
	}
}

func TestReferenceError_DoesNotMatchOtherKinds(t *testing.T) {
	t.Parallel()
	err := NewReferenceError(KindOutOfRange, "fib.txt", big.NewInt(5000), nil)
	for _, other := range []error{ErrReferenceUnreadable, ErrMalformedEntry, ErrNotFound} {
		if errors.Is(err, other) {
			t.Errorf("out-of-range error should not match %v", other)
		}
	}
}

func TestReferenceError_MessageAndUnwrap(t *testing.T) {
	t.Parallel()
	cause := errors.New("permission denied")
	err := NewReferenceError(KindUnreadable, "/tmp/fib.txt", big.NewInt(12), cause)

	msg := err.Error()
	for _, want := range []string{"/tmp/fib.txt", "12", "unreadable", "permission denied"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q should contain %q", msg, want)
		}
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the cause through Unwrap")
	}
}

func TestReferenceKindOf_NotAReferenceError(t *testing.T) {
	t.Parallel()
	if _, ok := ReferenceKindOf(errors.New("plain")); ok {
		t.Error("ReferenceKindOf should report false for a plain error")
	}
	if _, ok := ReferenceKindOf(nil); ok {
		t.Error("ReferenceKindOf should report false for nil")
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		original    error
		format      string
		args        []any
		expectedMsg string
		expectNil   bool
		checkIs     error
	}{
		{
			name:        "wraps error with context",
			original:    errors.New("file not found"),
			format:      "failed to load reference",
			expectedMsg: "failed to load reference: file not found",
		},
		{
			name:        "preserves error chain",
			original:    ErrNotFound,
			format:      "lookup failed",
			expectedMsg: "lookup failed: reference entry not found",
			checkIs:     ErrNotFound,
		},
		{
			name:      "returns nil for nil error",
			original:  nil,
			format:    "some context",
			expectNil: true,
		},
		{
			name:        "supports format arguments",
			original:    errors.New("short read"),
			format:      "failed to read %s line %d",
			args:        []any{"fib.txt", 8},
			expectedMsg: "failed to read fib.txt line 8: short read",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			wrapped := WrapError(tt.original, tt.format, tt.args...)

			if tt.expectNil {
				if wrapped != nil {
					t.Error("WrapError(nil, ...) should return nil")
				}
				return
			}

			if wrapped == nil {
				t.Fatal("wrapped error should not be nil")
			}

			if wrapped.Error() != tt.expectedMsg {
				t.Errorf("expected %q, got %q", tt.expectedMsg, wrapped.Error())
			}

			if tt.checkIs != nil && !errors.Is(wrapped, tt.checkIs) {
				t.Errorf("wrapped error should preserve %v in the chain", tt.checkIs)
			}
		})
	}
}

func TestExitCodes(t *testing.T) {
	t.Parallel()
	if ExitSuccess != 0 {
		t.Errorf("ExitSuccess should be 0, got %d", ExitSuccess)
	}
	if ExitErrorConfig != 1 {
		t.Errorf("ExitErrorConfig should be 1, got %d", ExitErrorConfig)
	}
}
