// Package format holds pure formatting helpers shared by the CLI presenters:
// durations, byte sizes, digit grouping and ordinal suffixes.
package format
