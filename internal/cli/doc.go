// Package cli renders fibfinder's terminal output: benchmark reports, the
// single-result line, timings, HTML charts, progress spinners and shell
// completion scripts.
package cli
