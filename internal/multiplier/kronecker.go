package multiplier

import (
	"context"
	"encoding/binary"
	"time"

	"github.com/ncw/gmp"

	apperrors "github.com/agbru/polymul/internal/errors"
)

// Kronecker multiplies by Kronecker substitution: the coefficients are
// packed into disjoint 192-bit slots of two large integers, the integers
// are multiplied with GMP, and the product slots are reduced modulo 2^64.
// Each slot is wide enough that the exact column sums never carry into
// a neighboring slot, so slot k of the integer product is exactly
// Σ_{i+j=k} p[i]·q[j].
//
// The strategy exists as an independent cross-check of the FFT core: it
// shares no code with it and routes the entire computation through an
// external bignum library.
type Kronecker struct{}

// Name returns the strategy identifier.
func (Kronecker) Name() string { return "GMP Kronecker" }

// Multiply implements Multiplier.
func (Kronecker) Multiply(ctx context.Context, rep ProgressFunc, p, q []uint64, opts Options) ([]uint64, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.MultiplicationError{Cause: err}
	}
	if len(p) == 0 || len(q) == 0 {
		report(rep, 1)
		return nil, nil
	}

	report(rep, 0.1)
	x := packKronecker(p)
	y := packKronecker(q)
	report(rep, 0.3)

	start := time.Now()
	z := new(gmp.Int).Mul(x, y)
	opts.Logger.Debug().
		Int("output_len", len(p)+len(q)-1).
		Dur("elapsed", time.Since(start)).
		Msg("gmp multiply complete")
	report(rep, 0.8)

	if err := ctx.Err(); err != nil {
		return nil, apperrors.MultiplicationError{Cause: err}
	}
	res := unpackKronecker(z, len(p)+len(q)-1)
	report(rep, 1)
	return res, nil
}

// packKronecker evaluates the polynomial at 2^192, placing coefficient i
// in the low 64 bits of byte slot i of a big-endian buffer.
func packKronecker(p []uint64) *gmp.Int {
	buf := make([]byte, len(p)*kroneckerSlotBytes)
	for i, c := range p {
		end := len(buf) - i*kroneckerSlotBytes
		binary.BigEndian.PutUint64(buf[end-8:end], c)
	}
	return new(gmp.Int).SetBytes(buf)
}

// unpackKronecker extracts n slots of the integer product and reduces
// each modulo 2^64. The minimal big-endian representation is re-padded on
// the left so every slot has its full width.
func unpackKronecker(z *gmp.Int, n int) []uint64 {
	raw := z.Bytes()
	padded := make([]byte, n*kroneckerSlotBytes)
	if len(raw) > len(padded) {
		// The top slot can at most reach the column-sum bound, which
		// fits its 192 bits; anything longer would be a packing bug.
		raw = raw[len(raw)-len(padded):]
	}
	copy(padded[len(padded)-len(raw):], raw)

	res := make([]uint64, n)
	for k := range res {
		end := len(padded) - k*kroneckerSlotBytes
		res[k] = binary.BigEndian.Uint64(padded[end-8 : end])
	}
	return res
}
