// Package ui provides theme and color support for fibfinder's terminal output.
// It defines color schemes and provides ANSI escape code functions for consistent
// styling across the CLI and other presentation layers.
package ui
