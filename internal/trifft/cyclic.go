// This file implements the top-level cyclic multiplier over R.

package trifft

// cyclicMul computes the product of p and q in R[x]/(x^n − 1), where
// n = len(p) = len(q) = len(target) is a power of three, and writes the
// result to target.
//
// The inputs are widened into T, viewed via y = x^m as elements of
// (T[x]/(x^m − ω))[y]/(y^r − 1) with m = 3^⌊k/2⌋ and r = n/m, and
// multiplied by one transform layer with the r pointwise block products
// delegated to mulModOmega. Because the widened inputs have no
// ω-component, the product in the conjugate branch T[x]/(x^m − ω²) is the
// coordinate-wise conjugate of the ω-branch product; the CRT lift back to
// R[x]/(x^n − 1) therefore needs only the one transform.
//
// A single buffer of 3n + 6m cells is acquired per call, laid out as
// pp[n] | qq[n] | to[n+3m] | tmp[3m].
func cyclicMul(p, q []uint64, target []uint64, opts Options) {
	n := len(p)
	m := 1
	for m*m <= n {
		m *= 3
	}
	m /= 3
	r := n / m

	inv := identity
	for i := 1; i < r; i *= 3 {
		inv = inv.mul(inv3)
	}

	buf := acquireBuf(3*n + 6*m)
	defer releaseBuf(buf)
	pp := buf[:n]
	qq := buf[n : 2*n]
	to := buf[2*n : 3*n+3*m]
	tmp := buf[3*n+3*m:]

	for i := 0; i < n; i++ {
		pp[i] = elem{a: p[i]}
		qq[i] = elem{a: q[i]}
	}

	fftDIF(pp, m, r, tmp)
	fftDIF(qq, m, r, tmp)
	if opts.parallelPointwise(n) {
		pointwiseParallel(pp, qq, to, m, r, opts.workers())
	} else {
		for i := 0; i < r; i++ {
			mulModOmega(pp[i*m:], qq[i*m:], m, to[i*m:], tmp)
		}
	}
	fftDIT(to, m, r, tmp)
	for i := 0; i < n; i++ {
		pp[i] = to[i].mul(inv)
	}

	// CRT lift to R[x]/(x^n − 1), substituting y = x^m. The conjugate
	// branch is conj(pp), so both halves use the symmetric (ω² − ω)
	// coefficient; the wrap-around through x^n ≡ 1 keeps it unchanged.
	for i := 0; i < n; i++ {
		to[i] = elem{}
	}
	for i := 0; i < r; i++ {
		for j := 0; j < m; j++ {
			u := pp[i*m+j]
			c := u.conj()
			lo := oneMinusOmega.mul(u).add(oneMinusOmega2.mul(c))
			to[i*m+j] = to[i*m+j].add(lo)
			hi := u.sub(c)
			if i*m+m+j < n {
				to[i*m+m+j] = to[i*m+m+j].add(omega2MinusOmega.mul(hi))
			} else {
				to[i*m+m+j-n] = to[i*m+m+j-n].add(omega2MinusOmega.mul(hi))
			}
		}
	}
	// The lift is symmetric, so to[i]·3⁻¹ is a pure R element; only the
	// a-component is extracted.
	for i := 0; i < n; i++ {
		target[i] = to[i].mul(inv3).a
	}
}
