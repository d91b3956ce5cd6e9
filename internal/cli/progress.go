// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on
// their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//   - Format* functions return a formatted string without performing I/O.
//   - Write* functions write data to files on the filesystem.

package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/polymul/internal/orchestration"
	"github.com/agbru/polymul/internal/progress"
)

const (
	// ProgressRefreshRate defines the refresh frequency of the progress
	// bar, kept low to reduce terminal churn.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth defines the width in characters of the progress
	// bar.
	ProgressBarWidth = 40
)

// Spinner abstracts the behavior of a terminal spinner, decoupling
// DisplayProgress from a specific implementation for easier testing.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts the spinner library to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start()                     { rs.s.Start() }
func (rs *realSpinner) Stop()                      { rs.s.Stop() }
func (rs *realSpinner) UpdateSuffix(suffix string) { rs.s.Suffix = suffix }

var newSpinner = func(options ...spinner.Option) Spinner {
	// Same interval as ProgressRefreshRate to synchronize redraws.
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// DisplayProgress consumes progress updates from the channel and renders
// a spinner with an aggregated progress bar. It runs until progressChan
// is closed and then signals wg.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.Update, numMultipliers int, out io.Writer) {
	defer wg.Done()

	agg := orchestration.NewProgressAggregator(numMultipliers)
	if agg == nil {
		for range progressChan {
		}
		return
	}

	sp := newSpinner(spinner.WithWriter(out))
	sp.Start()
	defer sp.Stop()

	for update := range progressChan {
		avg := agg.Update(update)
		sp.UpdateSuffix(fmt.Sprintf(" [%s] %5.1f%%", FormatProgressBar(avg, ProgressBarWidth), avg*100))
	}
}

// FormatProgressBar renders a textual progress bar of the given width for
// a normalized progress value in [0, 1].
func FormatProgressBar(value float64, width int) string {
	if value > 1 {
		value = 1
	}
	if value < 0 {
		value = 0
	}
	count := int(value * float64(width))
	var builder strings.Builder
	builder.Grow(width)
	for i := 0; i < width; i++ {
		if i < count {
			builder.WriteRune('█')
		} else {
			builder.WriteRune('░')
		}
	}
	return builder.String()
}
