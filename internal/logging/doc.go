// Package logging provides a unified logging interface for fibfinder.
// It abstracts the underlying logging implementation (zerolog by default),
// allowing consistent structured logging across components.
package logging
