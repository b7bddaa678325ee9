package orchestration

import (
	"context"
	"io"
	"math/big"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/agbru/fibfinder/internal/errors"
	"github.com/agbru/fibfinder/internal/fibonacci"
	"github.com/agbru/fibfinder/internal/logging"
	"github.com/agbru/fibfinder/internal/metrics"
	"github.com/agbru/fibfinder/internal/reference"
)

const tracerName = "github.com/agbru/fibfinder/internal/orchestration"

// percentErrorPrec is the big.Float mantissa size used for percent errors.
const percentErrorPrec = 256

// BenchmarkOptions carries the collaborators of a benchmark run. Every field
// is optional.
type BenchmarkOptions struct {
	// Logger receives per-generator diagnostics and reference failures.
	Logger logging.Logger
	// Recorder collects durations, percent errors and failure counts.
	Recorder *metrics.Recorder
	// Factory supplies the generators. Nil selects the built-in six.
	Factory fibonacci.GeneratorFactory
	// Progress is notified before each generator runs.
	Progress ProgressReporter
}

func (o BenchmarkOptions) logger() logging.Logger {
	if o.Logger == nil {
		return logging.NopLogger{}
	}
	return o.Logger
}

// ExecuteBenchmark runs every generator on index in report order, then looks
// up the reference value from source and compares each result against it.
//
// Generators run sequentially. A nil source, or any lookup failure, yields a
// report without comparison columns; a failure is logged, counted and kept
// in Report.ReferenceErr but never aborts the run.
func ExecuteBenchmark(ctx context.Context, index *big.Int, source reference.Source, opts BenchmarkOptions) Report {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "benchmark",
		trace.WithAttributes(attribute.String("fibonacci.index", index.String())))
	defer span.End()

	generators := GetGeneratorsToRun(opts.Factory)
	tracker := newProgressTracker(opts.Progress, len(generators))
	results := make([]GeneratorResult, 0, len(generators))
	for _, gen := range generators {
		tracker.begin(gen.Name())
		results = append(results, RunGenerator(ctx, gen, index, opts))
		tracker.finish()
	}
	tracker.stop()

	report := Report{Index: new(big.Int).Set(index), Rows: make([]ComparisonRow, len(results))}
	for i, res := range results {
		report.Rows[i] = ComparisonRow{Result: res}
	}

	if source != nil {
		ref, err := lookupReference(ctx, source, index, opts)
		if err != nil {
			report.ReferenceErr = err
		} else if ref != nil {
			report.Reference = ref
			compare(report.Rows, ref, opts.Recorder)
		}
	}

	opts.Recorder.BenchmarkRun()
	return report
}

// RunGenerator times a single generator call inside its own span.
func RunGenerator(ctx context.Context, gen fibonacci.Generator, index *big.Int, opts BenchmarkOptions) GeneratorResult {
	_, span := otel.Tracer(tracerName).Start(ctx, "generate "+gen.Name(),
		trace.WithAttributes(
			attribute.String("fibonacci.algorithm", gen.Algorithm().String()),
			attribute.String("fibonacci.domain", gen.Domain().String()),
		))
	defer span.End()

	start := time.Now()
	value := gen.Generate(index)
	elapsed := time.Since(start)

	opts.logger().Debug("generator finished",
		logging.String("generator", gen.Name()),
		logging.String("index", index.String()),
		logging.Float64("duration_ms", float64(elapsed.Microseconds())/1000),
	)
	opts.Recorder.ObserveGenerator(gen.Algorithm().String(), gen.Domain().String(), elapsed)

	return GeneratorResult{
		Name:      gen.Name(),
		Algorithm: gen.Algorithm(),
		Domain:    gen.Domain(),
		Output:    value,
		Duration:  elapsed,
	}
}

func lookupReference(ctx context.Context, source reference.Source, index *big.Int, opts BenchmarkOptions) (*big.Int, error) {
	_, span := otel.Tracer(tracerName).Start(ctx, "reference lookup")
	defer span.End()

	ref, err := source.Lookup(index)
	if err != nil {
		kind := "unknown"
		if k, ok := apperrors.ReferenceKindOf(err); ok {
			kind = k.String()
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, kind)
		opts.logger().Warn("reference unavailable, benchmarking without it",
			logging.String("kind", kind),
			logging.Err(err),
		)
		opts.Recorder.ReferenceFailure(kind)
		return nil, err
	}
	return ref, nil
}

// compare fills the Difference and PercentError columns of rows.
func compare(rows []ComparisonRow, ref *big.Int, recorder *metrics.Recorder) {
	for i := range rows {
		value := rows[i].Result.Value()
		rows[i].Difference = new(big.Int).Sub(ref, value)
		rows[i].PercentError = PercentError(ref, value)

		pct, _ := rows[i].PercentError.Float64()
		recorder.SetPercentError(rows[i].Result.Algorithm.String(), rows[i].Result.Domain.String(), pct)
	}
}

// PercentError returns |reference - value| / |reference| x 100. A zero
// reference yields 0 when value is also 0 and +Inf otherwise.
func PercentError(ref, value *big.Int) *big.Float {
	diff := new(big.Int).Sub(ref, value)
	diff.Abs(diff)

	if ref.Sign() == 0 {
		if diff.Sign() == 0 {
			return newPercentFloat()
		}
		return newPercentFloat().SetInf(false)
	}

	num := newPercentFloat().SetInt(diff)
	den := newPercentFloat().SetInt(new(big.Int).Abs(ref))
	num.Quo(num, den)
	return num.Mul(num, newPercentFloat().SetInt64(100))
}

func newPercentFloat() *big.Float {
	return new(big.Float).SetPrec(percentErrorPrec).SetMode(big.ToNearestEven)
}

// PresentBenchmark hands a report to the presenter. A reference failure is
// reported before the report itself; timings follow when details is set.
func PresentBenchmark(report Report, presenter ResultPresenter, details bool, out, errOut io.Writer) {
	if report.ReferenceErr != nil {
		presenter.PresentReferenceFallback(report.ReferenceErr, out, errOut)
	}
	presenter.PresentReport(report, out)
	if details {
		presenter.PresentTimings(report, out)
	}
}
