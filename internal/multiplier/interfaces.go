// Package multiplier defines the polynomial multiplication strategies
// and their common interface.
//
// Every implementation computes the same value: the linear convolution of
// two coefficient sequences reduced modulo 2^64. Having several
// independent strategies lets the orchestration layer cross-validate
// results and lets callers trade setup cost against asymptotic
// complexity.
package multiplier

import (
	"context"

	"github.com/rs/zerolog"
)

// ProgressFunc receives completion fractions in [0, 1] from a running
// multiplier. Implementations must tolerate nil-safe wrappers calling it
// from the multiplier's own goroutine only.
type ProgressFunc func(float64)

// Multiplier is a strategy for multiplying two polynomials with
// coefficients in Z/2^64.
type Multiplier interface {
	// Name returns the human-readable identifier of the strategy.
	Name() string

	// Multiply returns the linear convolution of p and q, of length
	// len(p)+len(q)−1, with every coefficient reduced modulo 2^64.
	// Empty input yields an empty (nil) result. The only error
	// conditions are context cancellation and deadline expiry, reported
	// as a MultiplicationError wrapping ctx.Err(). report may be nil.
	Multiply(ctx context.Context, report ProgressFunc, p, q []uint64, opts Options) ([]uint64, error)
}

// Options carries the tuning knobs shared by all strategies.
type Options struct {
	// FFTThreshold is the output length from which on the FFT strategy
	// switches from the schoolbook tier to the transform. Zero applies
	// DefaultFFTThreshold.
	FFTThreshold int
	// ParallelThreshold is the padded transform length from which on the
	// FFT strategy parallelizes its pointwise stage. Zero applies
	// DefaultParallelThreshold; negative disables parallelism.
	ParallelThreshold int
	// Workers bounds the number of concurrent pointwise workers. Zero
	// means one per CPU.
	Workers int
	// Logger receives debug-level phase timings. The zero value is
	// replaced by a disabled logger.
	Logger zerolog.Logger
}

// report invokes fn if non-nil.
func report(fn ProgressFunc, v float64) {
	if fn != nil {
		fn(v)
	}
}
