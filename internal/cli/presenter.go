package cli

import (
	"fmt"
	"io"

	"github.com/agbru/fibfinder/internal/format"
	"github.com/agbru/fibfinder/internal/metrics"
	"github.com/agbru/fibfinder/internal/orchestration"
	"github.com/agbru/fibfinder/internal/sysmon"
)

// CLIProgressReporter implements orchestration.ProgressReporter with a
// terminal spinner showing which generator is running.
type CLIProgressReporter struct {
	Out     io.Writer
	spinner Spinner
}

var _ orchestration.ProgressReporter = (*CLIProgressReporter)(nil)

// NewCLIProgressReporter returns a reporter drawing on out.
func NewCLIProgressReporter(out io.Writer) *CLIProgressReporter {
	return &CLIProgressReporter{Out: out}
}

// Start begins the spinner animation.
func (r *CLIProgressReporter) Start(total int) {
	r.spinner = newSpinner(r.Out)
	r.spinner.UpdateSuffix(fmt.Sprintf(" %s 0/%d", progressBar(0, ProgressBarWidth), total))
	r.spinner.Start()
}

// Update shows the generator about to run.
func (r *CLIProgressReporter) Update(update orchestration.ProgressUpdate) {
	if r.spinner == nil {
		return
	}
	r.spinner.UpdateSuffix(fmt.Sprintf(" %s %d/%d %s",
		progressBar(update.Fraction(), ProgressBarWidth), update.Completed, update.Total, update.Generator))
}

// Stop halts the spinner and clears its line.
func (r *CLIProgressReporter) Stop() {
	if r.spinner == nil {
		return
	}
	r.spinner.Stop()
	r.spinner = nil
}

// CLIResultPresenter implements orchestration.ResultPresenter for terminal
// output.
type CLIResultPresenter struct{}

var _ orchestration.ResultPresenter = CLIResultPresenter{}

// PresentReferenceFallback delegates to DisplayReferenceFallback.
func (CLIResultPresenter) PresentReferenceFallback(err error, out, errOut io.Writer) {
	DisplayReferenceFallback(out, errOut, err)
}

// PresentReport delegates to DisplayReport.
func (CLIResultPresenter) PresentReport(report orchestration.Report, out io.Writer) {
	DisplayReport(out, report)
}

// PresentTimings delegates to DisplayTimings.
func (CLIResultPresenter) PresentTimings(report orchestration.Report, out io.Writer) {
	DisplayTimings(out, report)
}

// DisplayMemoryStats shows the allocation activity of a run.
func DisplayMemoryStats(out io.Writer, delta metrics.MemoryDelta, peak metrics.MemorySnapshot) {
	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  Heap in use:     %s\n", format.FormatBytes(peak.HeapAlloc))
	fmt.Fprintf(out, "  Allocated:       %s\n", format.FormatBytes(delta.AllocatedBytes))
	fmt.Fprintf(out, "  Allocations:     %s\n", format.FormatNumberString(fmt.Sprint(delta.Allocations)))
	fmt.Fprintf(out, "  GC cycles:       %d\n", delta.GCCycles)
}

// DisplayHostStats shows the load of the machine the benchmark ran on.
func DisplayHostStats(out io.Writer, host sysmon.HostStats) {
	fmt.Fprintf(out, "\nHost:\n")
	fmt.Fprintf(out, "  Logical CPUs:    %d\n", host.LogicalCPUs)
	fmt.Fprintf(out, "  CPU usage:       %.1f%%\n", host.CPUPercent)
	fmt.Fprintf(out, "  Memory usage:    %.1f%% of %s\n", host.MemPercent, format.FormatBytes(host.TotalMemory))
}
