// Package orchestration runs the benchmark: it executes every Fibonacci
// generator, compares the results against an optional reference value and
// assembles a Report. Presentation is decoupled through the ProgressReporter
// and ResultPresenter interfaces.
package orchestration
