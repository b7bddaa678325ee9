// Package apperrors holds fibfinder's error types and exit codes.
//
// ConfigError rejects a command line before anything runs. ReferenceError
// classifies a failed reference lookup by kind; the benchmark engine recovers
// from it and reports without comparison columns. Both support errors.Is and
// errors.As through Unwrap and the package sentinels.
package apperrors
