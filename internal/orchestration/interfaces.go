package orchestration

import (
	"io"
	"math/big"
	"time"

	"github.com/agbru/fibfinder/internal/fibonacci"
)

// GeneratorResult is the outcome of one generator call.
type GeneratorResult struct {
	// Name is the generator identifier, e.g. "fixed/iterative".
	Name      string
	Algorithm fibonacci.Algorithm
	Domain    fibonacci.Domain
	// Output is the value produced by the generator.
	Output fibonacci.Value
	// Duration is the wall-clock time of the call.
	Duration time.Duration
}

// Value returns the generated number as a big.Int for either domain.
func (r GeneratorResult) Value() *big.Int {
	return r.Output.BigInt()
}

// ComparisonRow pairs a result with its deviation from the reference value.
// Difference and PercentError are nil when the report has no reference.
type ComparisonRow struct {
	Result GeneratorResult
	// Difference is reference - value.
	Difference *big.Int
	// PercentError is |Difference| / |reference| x 100.
	PercentError *big.Float
}

// Report is the assembled outcome of a benchmark run. Rows are ordered Fixed
// before Arbitrary, each as Iterative, Recursive, Direct.
type Report struct {
	Index *big.Int
	Rows  []ComparisonRow
	// Reference is the ground-truth value, nil when none was loaded.
	Reference *big.Int
	// ReferenceErr is the lookup failure that disabled comparison, if any.
	ReferenceErr error
}

// HasReference reports whether the comparison columns are populated.
func (r Report) HasReference() bool {
	return r.Reference != nil
}

// ProgressReporter receives progress while generators run. Implementations
// handle the visual representation (spinner, log lines) while the engine
// focuses on running the generators.
type ProgressReporter interface {
	// Start is called once before the first generator runs.
	Start(total int)
	// Update is called before each generator runs.
	Update(update ProgressUpdate)
	// Stop is called once after the last generator finished.
	Stop()
}

// NullProgressReporter is a no-op implementation of ProgressReporter.
type NullProgressReporter struct{}

func (NullProgressReporter) Start(int)             {}
func (NullProgressReporter) Update(ProgressUpdate) {}
func (NullProgressReporter) Stop()                 {}

// ResultPresenter defines how benchmark reports are shown to the user. This
// interface decouples the orchestration layer from presentation concerns.
type ResultPresenter interface {
	// PresentReferenceFallback reports a reference load failure: the error
	// goes to errOut and the fallback notice to out.
	PresentReferenceFallback(err error, out, errOut io.Writer)

	// PresentReport renders the comparison report.
	PresentReport(report Report, out io.Writer)

	// PresentTimings renders per-generator durations.
	PresentTimings(report Report, out io.Writer)
}
