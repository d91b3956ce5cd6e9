package multiplier

import (
	"context"

	apperrors "github.com/agbru/polymul/internal/errors"
)

// Schoolbook is the quadratic reference strategy. It is the simplest
// possible implementation of the convolution contract and serves as the
// ground truth the other strategies are validated against.
type Schoolbook struct{}

// Name returns the strategy identifier.
func (Schoolbook) Name() string { return "Schoolbook" }

// Multiply implements Multiplier.
func (Schoolbook) Multiply(ctx context.Context, rep ProgressFunc, p, q []uint64, opts Options) ([]uint64, error) {
	if len(p) == 0 || len(q) == 0 {
		report(rep, 1)
		return nil, nil
	}
	res, err := schoolbookConv(ctx, rep, p, q)
	if err != nil {
		return nil, err
	}
	report(rep, 1)
	return res, nil
}

// schoolbookConv accumulates the convolution row by row with wrapping
// 64-bit arithmetic, polling the context every schoolbookProgressStride
// rows.
func schoolbookConv(ctx context.Context, rep ProgressFunc, p, q []uint64) ([]uint64, error) {
	out := make([]uint64, len(p)+len(q)-1)
	for i, pi := range p {
		if i%schoolbookProgressStride == 0 {
			if err := ctx.Err(); err != nil {
				return nil, apperrors.MultiplicationError{Cause: err}
			}
			report(rep, float64(i)/float64(len(p)))
		}
		if pi == 0 {
			continue
		}
		row := out[i:]
		for j, qj := range q {
			row[j] += pi * qj
		}
	}
	return out, nil
}
