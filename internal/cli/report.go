// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     Examples: [DisplayReport], [DisplaySingleResult], [DisplayTimings].
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatReport], [FormatSingleResult].
//
//   - Write* functions produce files or scripts.
//     Examples: [WriteChart].

package cli

import (
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/agbru/fibfinder/internal/fibonacci"
	"github.com/agbru/fibfinder/internal/format"
	"github.com/agbru/fibfinder/internal/orchestration"
	"github.com/agbru/fibfinder/internal/ui"
)

const (
	// FixedHeader introduces the Fixed-domain rows of a report.
	FixedHeader = "Naive (Fixed) Solutions:"
	// ArbitraryHeader introduces the Arbitrary-domain rows of a report.
	ArbitraryHeader = "Dynamic (Arbitrary) Solutions:"
	// FallbackNotice is printed when the reference value could not be loaded.
	FallbackNotice = "Benchmarking without reference file"
	// PercentErrorDecimals is the number of decimals shown for percent errors.
	PercentErrorDecimals = 5
)

// reportStyle decorates the parts of a report that may carry color.
type reportStyle struct {
	header  func(string) string
	percent func(*big.Float) string
}

var plainStyle = reportStyle{
	header:  func(s string) string { return s },
	percent: FormatPercentError,
}

// FormatReport renders a benchmark report as plain text without escape
// codes. Rows keep the report's order and are grouped under one header per
// domain.
func FormatReport(report orchestration.Report) string {
	return formatReport(report, plainStyle)
}

// DisplayReport writes the report to out. Headers and percent errors are
// colored only when out is a terminal and colors are enabled.
func DisplayReport(out io.Writer, report orchestration.Report) {
	style := plainStyle
	if ui.ColorsEnabled() && ui.IsTerminal(out) {
		header := ui.HeaderStyle(out)
		style = reportStyle{header: func(s string) string { return header.Render(s) }, percent: colorPercent}
	}
	fmt.Fprint(out, formatReport(report, style))
}

func formatReport(report orchestration.Report, style reportStyle) string {
	var b strings.Builder
	var current fibonacci.Domain = -1
	for _, row := range report.Rows {
		if row.Result.Domain != current {
			current = row.Result.Domain
			b.WriteString(style.header(domainHeader(current)))
			b.WriteByte('\n')
		}
		writeRow(&b, row, report, style)
	}
	return b.String()
}

func domainHeader(d fibonacci.Domain) string {
	if d == fibonacci.Arbitrary {
		return ArbitraryHeader
	}
	return FixedHeader
}

func writeRow(b *strings.Builder, row orchestration.ComparisonRow, report orchestration.Report, style reportStyle) {
	title := row.Result.Algorithm.Title()
	if !report.HasReference() || row.Difference == nil {
		fmt.Fprintf(b, "\t%s Solution:\t%s\n", title, row.Result.Value())
		return
	}
	fmt.Fprintf(b, "\t%s Solution:\t%s\tDifference:\t\t%s\n", title, row.Result.Value(), row.Difference)
	fmt.Fprintf(b, "\t\tReference:\t%s\tPercent Error:\t\t%s\n", report.Reference, style.percent(row.PercentError))
}

// FormatPercentError renders a percent error with PercentErrorDecimals
// decimals, rounding half to even.
func FormatPercentError(pct *big.Float) string {
	if pct == nil {
		return ""
	}
	if pct.IsInf() {
		return "+Inf"
	}
	return pct.Text('f', PercentErrorDecimals)
}

func colorPercent(pct *big.Float) string {
	color := ui.ColorYellow()
	if pct != nil && pct.Sign() == 0 {
		color = ui.ColorGreen()
	}
	if color == "" {
		return FormatPercentError(pct)
	}
	return color + FormatPercentError(pct) + ui.ColorReset()
}

// DisplayReferenceFallback reports a reference load failure: the error on
// errOut, then FallbackNotice on out.
func DisplayReferenceFallback(out, errOut io.Writer, err error) {
	if ui.IsTerminal(errOut) {
		fmt.Fprintf(errOut, "%s%v%s\n", ui.ColorRed(), err, ui.ColorReset())
	} else {
		fmt.Fprintln(errOut, err)
	}
	fmt.Fprintln(out, FallbackNotice)
}

// FormatSingleResult renders the answer of the naive and dynamic modes,
// e.g. "The 10th fibonacci number is: 55".
func FormatSingleResult(index *big.Int, value string) string {
	return fmt.Sprintf("The %s fibonacci number is: %s", format.FormatOrdinal(index), value)
}

// DisplaySingleResult writes FormatSingleResult followed by a newline.
func DisplaySingleResult(out io.Writer, index *big.Int, value string) {
	fmt.Fprintln(out, FormatSingleResult(index, value))
}

// DisplayTimings lists the duration of every generator of the report.
func DisplayTimings(out io.Writer, report orchestration.Report) {
	fmt.Fprintf(out, "\n%sTimings:%s\n", ui.ColorBold(), ui.ColorReset())
	width := 0
	for _, row := range report.Rows {
		if len(row.Result.Name) > width {
			width = len(row.Result.Name)
		}
	}
	for _, row := range report.Rows {
		digits := len(new(big.Int).Abs(row.Result.Value()).String())
		fmt.Fprintf(out, "\t%s%-*s%s  %s%10s%s  %s digits\n",
			ui.ColorBlue(), width, row.Result.Name, ui.ColorReset(),
			ui.ColorYellow(), format.FormatExecutionDuration(row.Result.Duration), ui.ColorReset(),
			format.FormatNumberString(fmt.Sprint(digits)))
	}
}
