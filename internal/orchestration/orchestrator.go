package orchestration

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/polymul/internal/errors"
	"github.com/agbru/polymul/internal/multiplier"
	"github.com/agbru/polymul/internal/progress"
)

// ProgressBufferMultiplier defines the buffer size multiplier for the
// progress channel. A larger buffer reduces the likelihood of blocking
// multiplication goroutines when the UI is slow to consume updates.
const ProgressBufferMultiplier = 8

// tracerName identifies this package's OpenTelemetry tracer.
const tracerName = "github.com/agbru/polymul/internal/orchestration"

// ExecuteMultiplications orchestrates the concurrent execution of one or
// more multiplication strategies on the same pair of inputs.
//
// It manages the lifecycle of the worker goroutines, collects their
// results, coordinates the display of progress updates, records one
// metrics observation per strategy (when rec is non-nil) and wraps every
// run in a tracing span. The returned slice is indexed like the input
// slice; order is restored before analysis sorts it.
func ExecuteMultiplications(ctx context.Context, multipliers []multiplier.Multiplier, p, q []uint64, opts multiplier.Options, reporter ProgressReporter, out io.Writer, rec Recorder) []MultiplicationResult {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]MultiplicationResult, len(multipliers))
	progressChan := make(chan progress.Update, len(multipliers)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go reporter.DisplayProgress(&displayWg, progressChan, len(multipliers), out)

	tracer := otel.Tracer(tracerName)
	for i, m := range multipliers {
		idx, mult := i, m
		g.Go(func() error {
			spanCtx, span := tracer.Start(ctx, "multiply")
			span.SetAttributes(
				attribute.String("algorithm", mult.Name()),
				attribute.Int("len_p", len(p)),
				attribute.Int("len_q", len(q)),
			)
			defer span.End()

			onProgress := func(v float64) {
				select {
				case progressChan <- progress.Update{MultiplierIndex: idx, Value: v}:
				default:
					// Never block the computation on a slow consumer.
				}
			}

			startTime := time.Now()
			coeffs, err := mult.Multiply(spanCtx, onProgress, p, q, opts)
			elapsed := time.Since(startTime)

			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			} else {
				span.SetStatus(codes.Ok, "")
			}
			if rec != nil {
				rec.ObserveMultiplication(mult.Name(), elapsed, err)
			}
			results[idx] = MultiplicationResult{
				Name: mult.Name(), Coefficients: coeffs, Duration: elapsed, Err: err,
			}
			return nil
		})
	}

	g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

// AnalyzeComparisonResults processes the results from multiple strategies
// and generates a summary report.
//
// It sorts the results by execution time, validates coefficient-wise
// consistency across successful runs, and displays a comparative table.
// Any disagreement between two successful strategies is a critical
// failure: every strategy computes the same mathematical value.
func AnalyzeComparisonResults(results []MultiplicationResult, presenter ResultPresenter, verbose, details, showValue bool, out io.Writer) int {
	sort.Slice(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var firstValidResult *MultiplicationResult
	var firstError error
	successCount := 0

	for i := range results {
		if results[i].Err != nil {
			if firstError == nil {
				firstError = results[i].Err
			}
		} else {
			successCount++
			if firstValidResult == nil {
				firstValidResult = &results[i]
			}
		}
	}

	presenter.PresentComparisonTable(results, out)

	if successCount == 0 {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No strategy could complete the multiplication.\n")
		return presenter.HandleError(firstError, out)
	}

	if !ResultsConsistent(results) {
		fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! An inconsistency was detected between the results of the strategies.\n")
		return apperrors.ExitErrorMismatch
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. All valid results are consistent.\n")
	presenter.PresentResult(*firstValidResult, verbose, details, showValue, out)
	return apperrors.ExitSuccess
}

// GetMultipliersToRun resolves the algo selector to the strategies to
// execute: a registered key selects that one strategy, "all" selects
// every registered strategy.
func GetMultipliersToRun(algo string, factory multiplier.Factory) []multiplier.Multiplier {
	if algo == "all" {
		return factory.GetAll()
	}
	if m, ok := factory.Get(algo); ok {
		return []multiplier.Multiplier{m}
	}
	return nil
}

// ResultsConsistent reports whether every successful result carries the
// same coefficient sequence. An empty or all-failed slice is consistent.
func ResultsConsistent(results []MultiplicationResult) bool {
	var first []uint64
	seen := false
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		if !seen {
			first = res.Coefficients
			seen = true
			continue
		}
		if !coefficientsEqual(res.Coefficients, first) {
			return false
		}
	}
	return true
}

func coefficientsEqual(a, b []uint64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
