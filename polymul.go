// Package polymul multiplies polynomials whose coefficients are 64-bit
// integers interpreted modulo 2^64, in O(n log n) ring operations.
//
// The exact coefficient-wise product is computed by a radix-3 FFT in the
// ring extension (Z/2^64)[ω]/(ω² + ω + 1), in which 3 is invertible and
// ω is a primitive cube root of unity; see the internal trifft package
// for the transform itself. Signed and unsigned coefficient views are
// isomorphic under two's complement, so the package accepts either and
// converts at the boundary by pure bit reinterpretation.
package polymul

import "github.com/agbru/polymul/internal/trifft"

// Multiply returns the product of the polynomials p and q: a sequence of
// length len(p)+len(q)−1 whose k-th entry is Σ_{i+j=k} p[i]·q[j] reduced
// modulo 2^64 and reinterpreted as a signed two's-complement value.
//
// The function is total over all inputs: there is no overflow (wrapping
// is the defined semantics) and no error return. If either input is
// empty the result is the empty sequence.
func Multiply(p, q []int64) []int64 {
	pu := make([]uint64, len(p))
	for i, v := range p {
		pu[i] = uint64(v)
	}
	qu := make([]uint64, len(q))
	for i, v := range q {
		qu[i] = uint64(v)
	}
	res := trifft.Multiply(pu, qu)
	out := make([]int64, len(res))
	for i, v := range res {
		out[i] = int64(v)
	}
	return out
}

// MultiplyUint64 is Multiply on unsigned coefficient views.
func MultiplyUint64(p, q []uint64) []uint64 {
	return trifft.Multiply(p, q)
}

// CyclicMultiply returns the product of p and q in (Z/2^64)[x]/(x^n − 1),
// where n = len(p) = len(q) must be a power of three: indices of the
// product add modulo n. It panics if the lengths differ or are not
// powers of three.
func CyclicMultiply(p, q []uint64) []uint64 {
	return trifft.CyclicMultiply(p, q)
}
