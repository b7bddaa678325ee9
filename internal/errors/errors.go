package apperrors

import (
	"errors"
	"fmt"
	"math/big"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess      = 0 // Indicates successful execution.
	ExitErrorGeneric = 1 // Indicates a generic error.
	ExitErrorConfig  = 1 // Indicates an invalid command line (bad mode, index or file).
)

// ConfigError represents a user configuration error, such as an unknown mode
// or a non-integer index. It indicates that the application cannot proceed
// due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
	// Reported is set when the message was already shown to the user,
	// as the flag package does for unknown or malformed flags.
	Reported bool
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ReferenceKind classifies why a reference value could not be loaded.
type ReferenceKind int

const (
	// KindUnreadable means the reference file could not be opened or read.
	KindUnreadable ReferenceKind = iota
	// KindOutOfRange means the index exceeds the configured maximum.
	KindOutOfRange
	// KindMalformedEntry means the target line is not "<index> <value>".
	KindMalformedEntry
	// KindNotFound means the file ends before the target line.
	KindNotFound
)

// Sentinel errors matched by ReferenceError.Is, one per ReferenceKind.
var (
	ErrReferenceUnreadable = errors.New("reference file unreadable")
	ErrOutOfRange          = errors.New("index exceeds the supported reference range")
	ErrMalformedEntry      = errors.New("malformed reference entry")
	ErrNotFound            = errors.New("reference entry not found")
)

// String returns the short label of the kind, used as a metrics label.
func (k ReferenceKind) String() string {
	switch k {
	case KindUnreadable:
		return "unreadable"
	case KindOutOfRange:
		return "out_of_range"
	case KindMalformedEntry:
		return "malformed_entry"
	case KindNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// sentinel returns the sentinel error associated with the kind.
func (k ReferenceKind) sentinel() error {
	switch k {
	case KindUnreadable:
		return ErrReferenceUnreadable
	case KindOutOfRange:
		return ErrOutOfRange
	case KindMalformedEntry:
		return ErrMalformedEntry
	case KindNotFound:
		return ErrNotFound
	default:
		return nil
	}
}

// ReferenceError describes a failure to load a ground-truth value from a
// reference file. It carries the kind of failure, the file and index involved,
// and optionally the underlying cause.
type ReferenceError struct {
	// Kind classifies the failure.
	Kind ReferenceKind
	// Path is the reference file path.
	Path string
	// Index is the requested sequence position.
	Index *big.Int
	// Err is the underlying cause, if any.
	Err error
}

// Error returns a formatted message describing the reference failure.
func (e *ReferenceError) Error() string {
	msg := fmt.Sprintf("reference %q index %s: %s", e.Path, e.Index, e.Kind.sentinel())
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *ReferenceError) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel error for this kind, so that
// errors.Is(err, ErrOutOfRange) works through any wrapping.
func (e *ReferenceError) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

// NewReferenceError creates a ReferenceError of the given kind.
func NewReferenceError(kind ReferenceKind, path string, index *big.Int, cause error) error {
	return &ReferenceError{Kind: kind, Path: path, Index: index, Err: cause}
}

// ReferenceKindOf extracts the ReferenceKind from err.
//
// Returns:
//   - ReferenceKind: The kind found in the chain.
//   - bool: false if err does not wrap a ReferenceError.
func ReferenceKindOf(err error) (ReferenceKind, bool) {
	var refErr *ReferenceError
	if errors.As(err, &refErr) {
		return refErr.Kind, true
	}
	return 0, false
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}
