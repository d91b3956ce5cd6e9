package multiplier

import (
	"context"
	"time"

	apperrors "github.com/agbru/polymul/internal/errors"
	"github.com/agbru/polymul/internal/trifft"
)

// FFT multiplies through the radix-3 transform core, falling back to the
// schoolbook product below FFTThreshold where the transform's constant
// factors dominate.
type FFT struct{}

// Name returns the strategy identifier.
func (FFT) Name() string { return "Radix-3 FFT" }

// Multiply implements Multiplier.
func (f FFT) Multiply(ctx context.Context, rep ProgressFunc, p, q []uint64, opts Options) ([]uint64, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.MultiplicationError{Cause: err}
	}
	if len(p) == 0 || len(q) == 0 {
		report(rep, 1)
		return nil, nil
	}

	out := len(p) + len(q) - 1
	threshold := opts.FFTThreshold
	if threshold == 0 {
		threshold = DefaultFFTThreshold
	}

	// Tier 1: quadratic product for small outputs.
	if out < threshold {
		res, err := schoolbookConv(ctx, rep, p, q)
		if err != nil {
			return nil, err
		}
		report(rep, 1)
		return res, nil
	}

	// Tier 2: the transform core. The core runs to completion once
	// started; cancellation is honored at the phase boundary.
	report(rep, 0.05)
	start := time.Now()
	res := trifft.MultiplyWithOptions(p, q, f.coreOptions(opts))
	opts.Logger.Debug().
		Int("output_len", out).
		Dur("elapsed", time.Since(start)).
		Msg("fft multiply complete")
	report(rep, 1)
	if err := ctx.Err(); err != nil {
		return nil, apperrors.MultiplicationError{Cause: err}
	}
	return res, nil
}

func (FFT) coreOptions(opts Options) trifft.Options {
	core := trifft.Options{
		ParallelThreshold: opts.ParallelThreshold,
		Workers:           opts.Workers,
	}
	if core.ParallelThreshold == 0 {
		core.ParallelThreshold = DefaultParallelThreshold
	} else if core.ParallelThreshold < 0 {
		core.ParallelThreshold = 0
	}
	return core
}
