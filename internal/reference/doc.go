// Package reference loads ground-truth Fibonacci values from a reference
// file so that benchmark results can be compared against them.
//
// A reference file holds one "<lineIndex> <fibonacciValue>" record per line
// with no header. The value for index i is read from the line at offset i,
// regardless of the index written on that line.
package reference
