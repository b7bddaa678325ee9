package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/agbru/fibfinder/internal/cli"
	apperrors "github.com/agbru/fibfinder/internal/errors"
	"github.com/agbru/fibfinder/internal/format"
	"github.com/agbru/fibfinder/internal/logging"
	"github.com/agbru/fibfinder/internal/metrics"
	"github.com/agbru/fibfinder/internal/orchestration"
	"github.com/agbru/fibfinder/internal/reference"
	"github.com/agbru/fibfinder/internal/sysmon"
)

// runSingle computes one value with the generator selected by the naive or
// dynamic mode.
func (a *Application) runSingle(ctx context.Context, out io.Writer) int {
	gen, err := orchestration.GetGenerator(a.Factory, a.Config.Domain, a.Config.Algorithm)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitErrorGeneric
	}

	res := orchestration.RunGenerator(ctx, gen, a.Config.Index, a.benchmarkOptions(nil))
	cli.DisplaySingleResult(out, a.Config.Index, res.Output.String())
	if a.Config.Details {
		fmt.Fprintf(out, "Computed by %s in %s\n", res.Name, format.FormatExecutionDuration(res.Duration))
	}
	return apperrors.ExitSuccess
}

// runBenchmark runs the six generators, compares them against the reference
// file when one was given and prints the report.
func (a *Application) runBenchmark(ctx context.Context, out io.Writer) int {
	var source reference.Source
	if a.Config.ReferencePath != "" {
		loader := reference.NewLoader(a.Config.ReferencePath)
		loader.MaxIndex = a.Config.MaxReferenceIndex
		source = loader
	}

	var progress orchestration.ProgressReporter
	if a.Config.Progress && a.isTerminal() {
		progress = cli.NewCLIProgressReporter(a.ErrWriter)
	}

	collector := metrics.NewMemoryCollector()
	before := collector.Snapshot()
	report := orchestration.ExecuteBenchmark(ctx, a.Config.Index, source, a.benchmarkOptions(progress))
	after := collector.Snapshot()

	orchestration.PresentBenchmark(report, cli.CLIResultPresenter{}, a.Config.Details, out, a.ErrWriter)
	if a.Config.Details {
		cli.DisplayMemoryStats(out, after.Since(before), after)
		a.displayHost(ctx, out)
	}

	if a.Config.ChartFile != "" {
		if err := writeChartFile(a.Config.ChartFile, report); err != nil {
			a.Logger.Error("writing chart", err, logging.String("path", a.Config.ChartFile))
			fmt.Fprintf(a.ErrWriter, "Error writing chart: %v\n", err)
			return apperrors.ExitErrorGeneric
		}
	}
	return apperrors.ExitSuccess
}

// displayHost prints the host load; probe failures are logged and skipped.
func (a *Application) displayHost(ctx context.Context, out io.Writer) {
	host, err := sysmon.Sample(ctx)
	if err != nil {
		a.Logger.Warn("sampling host statistics", logging.Err(err))
		return
	}
	cli.DisplayHostStats(out, host)
}

func (a *Application) benchmarkOptions(progress orchestration.ProgressReporter) orchestration.BenchmarkOptions {
	return orchestration.BenchmarkOptions{
		Logger:   a.Logger,
		Recorder: a.Recorder,
		Factory:  a.Factory,
		Progress: progress,
	}
}

func writeChartFile(path string, report orchestration.Report) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return cli.WriteChart(f, report)
}
