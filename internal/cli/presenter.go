package cli

import (
	"fmt"
	"io"
	"runtime"
	"sync"
	"time"

	apperrors "github.com/agbru/polymul/internal/errors"
	"github.com/agbru/polymul/internal/format"
	"github.com/agbru/polymul/internal/metrics"
	"github.com/agbru/polymul/internal/orchestration"
	"github.com/agbru/polymul/internal/progress"
	"github.com/agbru/polymul/internal/ui"
)

// CLIProgressReporter implements orchestration.ProgressReporter for CLI
// output, wrapping DisplayProgress to provide a spinner and progress bar.
type CLIProgressReporter struct{}

// Verify that CLIProgressReporter implements orchestration.ProgressReporter.
var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress displays a spinner and progress bar for ongoing
// multiplications.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.Update, numMultipliers int, out io.Writer) {
	DisplayProgress(wg, progressChan, numMultipliers, out)
}

// CLIResultPresenter implements orchestration.ResultPresenter for the
// command-line interface, with colorized tabular output. Metrics, when
// set, supplies the memory snapshot for the details view.
type CLIResultPresenter struct {
	Metrics *metrics.Metrics
}

// Verify interface compliance.
var _ orchestration.ResultPresenter = CLIResultPresenter{}

// PresentComparisonTable displays the comparison summary table with
// strategy names, durations, and status in a formatted tabular layout.
// Uses manual padding to correctly handle ANSI color codes.
func (CLIResultPresenter) PresentComparisonTable(results []orchestration.MultiplicationResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")

	maxNameLen := 9     // "Algorithm" header length
	maxDurationLen := 8 // "Duration" header length
	for _, res := range results {
		if len(res.Name) > maxNameLen {
			maxNameLen = len(res.Name)
		}
		duration := formatResultDuration(res.Duration)
		if len(duration) > maxDurationLen {
			maxDurationLen = len(duration)
		}
	}

	fmt.Fprintf(out, "%sAlgorithm%s%s   %sDuration%s%s   %sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(), padRight(maxNameLen-9),
		ui.ColorUnderline(), ui.ColorReset(), padRight(maxDurationLen-8),
		ui.ColorUnderline(), ui.ColorReset())

	for _, res := range results {
		var status string
		if res.Err != nil {
			status = fmt.Sprintf("%s❌ Failure (%v)%s", ui.ColorError(), res.Err, ui.ColorReset())
		} else {
			status = fmt.Sprintf("%s✅ Success%s", ui.ColorSuccess(), ui.ColorReset())
		}
		duration := formatResultDuration(res.Duration)
		fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %s\n",
			ui.ColorPrimary(), res.Name, ui.ColorReset(), padRight(maxNameLen-len(res.Name)),
			ui.ColorWarning(), duration, ui.ColorReset(), padRight(maxDurationLen-len(duration)),
			status)
	}
}

// PresentResult displays the final product: the coefficient count, the
// winning strategy's timing, the (possibly truncated) coefficients and,
// in details mode, memory statistics.
func (p CLIResultPresenter) PresentResult(result orchestration.MultiplicationResult, verbose, details, showValue bool, out io.Writer) {
	fmt.Fprintf(out, "\nProduct of degree %s%s%s (%s coefficients), computed by %s%s%s in %s%s%s.\n",
		ui.ColorPrimary(), format.Count(len(result.Coefficients)-1), ui.ColorReset(),
		format.Count(len(result.Coefficients)),
		ui.ColorSuccess(), result.Name, ui.ColorReset(),
		ui.ColorWarning(), formatResultDuration(result.Duration), ui.ColorReset())

	if showValue || verbose {
		DisplayCoefficients(result.Coefficients, showValue, out)
	}

	if details && p.Metrics != nil {
		DisplayMemoryStats(p.Metrics.ReadMemory(), out)
	}
}

// HandleError prints a failure message and maps the error to an exit
// code.
func (CLIResultPresenter) HandleError(err error, out io.Writer) int {
	if err == nil {
		return apperrors.ExitErrorGeneric
	}
	switch {
	case apperrors.IsContextError(err):
		fmt.Fprintf(out, "%sThe multiplication was interrupted: %v%s\n", ui.ColorError(), err, ui.ColorReset())
	default:
		fmt.Fprintf(out, "%sThe multiplication failed: %v%s\n", ui.ColorError(), err, ui.ColorReset())
	}
	return apperrors.ExitCodeFor(err)
}

// PrintExecutionConfig displays the current execution configuration: the
// input sizes, timeout and environment details.
func PrintExecutionConfig(lenP, lenQ int, timeout time.Duration, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Multiplying polynomials of %s%s × %s%s coefficients with a timeout of %s%s%s.\n",
		ui.ColorPrimary(), format.Count(lenP),
		format.Count(lenQ), ui.ColorReset(),
		ui.ColorWarning(), timeout, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorSecondary(), runtime.NumCPU(), ui.ColorReset(),
		ui.ColorSecondary(), runtime.Version(), ui.ColorReset())
}

// DisplayMemoryStats shows memory statistics after a computation.
func DisplayMemoryStats(snap metrics.MemorySnapshot, out io.Writer) {
	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  Heap in use:     %s\n", format.Bytes(snap.HeapAlloc))
	fmt.Fprintf(out, "  Heap from OS:    %s\n", format.Bytes(snap.HeapSys))
	fmt.Fprintf(out, "  GC cycles:       %d\n", snap.NumGC)
	fmt.Fprintf(out, "  GC pause total:  %.2fms\n", float64(snap.PauseTotalNs)/1e6)
}

// formatResultDuration renders a duration for the tables, flooring
// sub-microsecond measurements.
func formatResultDuration(d time.Duration) string {
	if d == 0 {
		return "< 1µs"
	}
	return format.ExecutionDuration(d)
}

// padRight returns a string of spaces with the given length.
func padRight(length int) string {
	if length <= 0 {
		return ""
	}
	return fmt.Sprintf("%*s", length, "")
}
