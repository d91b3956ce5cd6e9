package multiplier

import (
	"context"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// genPoly generates coefficient sequences with full-range 64-bit values
// and lengths spanning the schoolbook tier, the padding boundaries and
// the recursive transform path.
func genPoly() gopter.Gen {
	return gen.SliceOf(gen.UInt64()).SuchThat(func(p []uint64) bool {
		return len(p) >= 1
	})
}

func propMultiply(t *testing.T, m Multiplier, p, q []uint64) []uint64 {
	res, err := m.Multiply(context.Background(), nil, p, q, testOpts())
	if err != nil {
		t.Fatalf("%s: %v", m.Name(), err)
	}
	return res
}

// TestLengthInvariant_PropertyBased verifies |p·q| = |p| + |q| − 1 for
// every strategy.
func TestLengthInvariant_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	for _, m := range allMultipliers() {
		m := m
		properties.Property(m.Name()+" preserves the length invariant", prop.ForAll(
			func(p, q []uint64) bool {
				res := propMultiply(t, m, p, q)
				return len(res) == len(p)+len(q)-1
			},
			genPoly(),
			genPoly(),
		))
	}

	properties.TestingRun(t)
}

// TestCommutativity_PropertyBased verifies p·q = q·p.
func TestCommutativity_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	for _, m := range allMultipliers() {
		m := m
		properties.Property(m.Name()+" commutes", prop.ForAll(
			func(p, q []uint64) bool {
				pq := propMultiply(t, m, p, q)
				qp := propMultiply(t, m, q, p)
				return slicesEqual(pq, qp)
			},
			genPoly(),
			genPoly(),
		))
	}

	properties.TestingRun(t)
}

// TestDistributivity_PropertyBased verifies p·(q + r) = p·q + p·r, with
// the addends padded to a common length and summed coefficient-wise
// modulo 2^64.
func TestDistributivity_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	fft := FFT{}
	properties.Property("FFT distributes over addition", prop.ForAll(
		func(p, q, r []uint64) bool {
			// q + r padded to a common length.
			n := len(q)
			if len(r) > n {
				n = len(r)
			}
			sum := make([]uint64, n)
			copy(sum, q)
			for i, v := range r {
				sum[i] += v
			}

			left := propMultiply(t, fft, p, sum)

			pq := propMultiply(t, fft, p, q)
			pr := propMultiply(t, fft, p, r)
			right := make([]uint64, len(p)+n-1)
			copy(right, pq)
			for i, v := range pr {
				right[i] += v
			}
			return slicesEqual(left, right)
		},
		genPoly(),
		genPoly(),
		genPoly(),
	))

	properties.TestingRun(t)
}

// TestIdentity_PropertyBased verifies p·[1] = p and p·[0] = 0.
func TestIdentity_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	for _, m := range allMultipliers() {
		m := m
		properties.Property(m.Name()+" has [1] as identity and [0] as annihilator", prop.ForAll(
			func(p []uint64) bool {
				byOne := propMultiply(t, m, p, []uint64{1})
				if !slicesEqual(byOne, p) {
					return false
				}
				byZero := propMultiply(t, m, p, []uint64{0})
				for _, v := range byZero {
					if v != 0 {
						return false
					}
				}
				return len(byZero) == len(p)
			},
			genPoly(),
		))
	}

	properties.TestingRun(t)
}

// TestShift_PropertyBased verifies that multiplying by x^k shifts the
// coefficients by k positions.
func TestShift_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	for _, m := range allMultipliers() {
		m := m
		properties.Property(m.Name()+" shifts by monomials", prop.ForAll(
			func(p []uint64, k uint8) bool {
				shift := int(k % 30)
				mono := make([]uint64, shift+1)
				mono[shift] = 1
				res := propMultiply(t, m, p, mono)
				for i := 0; i < shift; i++ {
					if res[i] != 0 {
						return false
					}
				}
				return slicesEqual(res[shift:], p)
			},
			genPoly(),
			gen.UInt8(),
		))
	}

	properties.TestingRun(t)
}

// TestCrossValidation_PropertyBased verifies that all strategies agree
// coefficient for coefficient on the same inputs.
func TestCrossValidation_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	ms := allMultipliers()
	properties.Property("all strategies compute the same product", prop.ForAll(
		func(p, q []uint64) bool {
			ref := propMultiply(t, ms[0], p, q)
			for _, m := range ms[1:] {
				if !slicesEqual(propMultiply(t, m, p, q), ref) {
					return false
				}
			}
			return true
		},
		genPoly(),
		genPoly(),
	))

	properties.TestingRun(t)
}

func slicesEqual(a, b []uint64) bool {
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
