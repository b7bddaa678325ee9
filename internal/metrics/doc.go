// Package metrics records benchmark metrics with Prometheus and samples
// runtime memory statistics.
//
// fibfinder is a one-shot CLI, so metrics are not served over HTTP. A
// Recorder owns a private registry that is exported once per run with
// WriteTextfile.
package metrics
