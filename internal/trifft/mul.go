// This file implements the recursive multiplier in T[x]/(x^n − ω).

package trifft

// schoolbookThreshold is the size at or below which mulModOmega falls back
// to the quadratic grade-school product. At n = 27 the recursion overhead
// exceeds the saving of the transform.
const schoolbookThreshold = 27

// splitSize returns the smallest power of 3 whose square is at least n.
// It is the block size m used to split a problem of size n into r = n/m
// blocks, with m ≥ r so that the substitution exponents m·i/r stay
// integral.
func splitSize(n int) int {
	m := 1
	for m*m < n {
		m *= 3
	}
	return m
}

// mulWorkspace returns the number of cells a call to mulModOmega of size n
// may touch in its `to` argument: 3n for the three working halves plus a
// margin of three blocks (3·splitSize(n)) for the recursive calls
// spilling past 3n.
func mulWorkspace(n int) int {
	return 3*n + 3*splitSize(n)
}

// mulModOmega computes the product of p and q in T[x]/(x^n − ω), n a power
// of 3, and stores the n result coefficients at to[0:n]. The remainder of
// `to` is used as working space: callers must make mulWorkspace(n) cells
// accessible. p and q are clobbered. tmp is the shared 3m transform
// scratch of the enclosing top-level call.
//
// The recursion rewrites the univariate problem as a bivariate one: with
// y = x^m, the product is computed in (T[x]/(x^m − ω))[y]/(y^r − ω) and in
// the conjugate branch (T[x]/(x^m − ω²))[y]/(y^r − ω), then recombined by
// the Chinese Remainder Theorem over x^(2m) + x^m + 1 = (x^m − ω)(x^m − ω²).
func mulModOmega(p, q []elem, n int, to, tmp []elem) {
	if n <= schoolbookThreshold {
		for i := 0; i < n; i++ {
			to[i] = elem{}
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n-i; j++ {
				to[i+j] = to[i+j].add(p[i].mul(q[j]))
			}
			// x^n ≡ ω: products past degree n wrap with a factor of ω.
			for j := n - i; j < n; j++ {
				to[i+j-n] = to[i+j-n].add(p[i].mul(q[j]).mul(omega))
			}
		}
		return
	}

	m := splitSize(n)
	r := n / m

	// 3^(−log₃ r), the normalization for the inverse transform.
	inv := identity
	for i := 1; i < r; i *= 3 {
		inv = inv.mul(inv3)
	}

	// Phase A: the product in (T[x]/(x^m − ω))[y]/(y^r − ω).
	//
	// The substitution y → x^(m/r)·y maps y^r − ω to y^r − 1, where the
	// FFT applies.
	for i := 0; i < r; i++ {
		twiddle(p[m*i:], m, m/r*i, to[m*i:])
		twiddle(q[m*i:], m, m/r*i, to[n+m*i:])
	}
	fftDIF(to, m, r, tmp)
	fftDIF(to[n:], m, r, tmp)
	for i := 0; i < r; i++ {
		mulModOmega(to[m*i:], to[n+m*i:], m, to[2*n+m*i:], tmp)
	}
	fftDIT(to[2*n:], m, r, tmp)
	for i := 0; i < n; i++ {
		to[2*n+i] = to[2*n+i].mul(inv)
	}
	// Undo the substitution, returning to y^r − ω.
	for i := 0; i < r; i++ {
		twiddle(to[2*n+m*i:], m, 3*m-m/r*i, to[n+m*i:])
	}

	// Phase B: the product in (T[x]/(x^m − ω²))[y]/(y^r − ω).
	//
	// Conjugation moves the inputs to (T[x]/(x^m − ω))[y]/(y^r − ω²);
	// the substitution y → x^(2m/r)·y then maps y^r − ω² to y^r − 1.
	// Once a block of p has been twiddled into to, that block of p is
	// reused to hold the twiddled copy of q; q later receives the
	// branch-B result.
	for i := 0; i < r; i++ {
		for j := 0; j < m; j++ {
			p[m*i+j] = p[m*i+j].conj()
			q[m*i+j] = q[m*i+j].conj()
		}
		twiddle(p[m*i:], m, 2*m/r*i, to[m*i:])
		twiddle(q[m*i:], m, 2*m/r*i, p[m*i:])
	}
	fftDIF(to, m, r, tmp)
	fftDIF(p, m, r, tmp)
	for i := 0; i < r; i++ {
		mulModOmega(to[m*i:], p[m*i:], m, to[2*n+m*i:], tmp)
	}
	fftDIT(to[2*n:], m, r, tmp)
	for i := 0; i < n; i++ {
		to[2*n+i] = to[2*n+i].mul(inv)
	}
	for i := 0; i < r; i++ {
		twiddle(to[2*n+m*i:], m, 3*m-2*m/r*i, q[m*i:])
	}

	// Phase C: CRT recombination in (T[x]/(x^(2m) + x^m + 1))[y]/(y^r − ω),
	// unravelling the substitution y = x^m at the same time. The branch-A
	// residue sits at to[n:2n]; the branch-B residue sits in q and needs an
	// outer conjugation to come back from the ω² side. The wrap-around of
	// the high half through x^n ≡ ω turns the (ω² − ω) coefficient into
	// (1 − ω²).
	for i := 0; i < n; i++ {
		to[i] = elem{}
	}
	for i := 0; i < r; i++ {
		for j := 0; j < m; j++ {
			a := to[n+i*m+j]
			b := q[i*m+j].conj()
			lo := oneMinusOmega.mul(a).add(oneMinusOmega2.mul(b))
			to[i*m+j] = to[i*m+j].add(lo)
			hi := a.sub(b)
			if i*m+m+j < n {
				to[i*m+m+j] = to[i*m+m+j].add(omega2MinusOmega.mul(hi))
			} else {
				to[i*m+m+j-n] = to[i*m+m+j-n].add(oneMinusOmega2.mul(hi))
			}
		}
	}
	for i := 0; i < n; i++ {
		to[i] = to[i].mul(inv3)
	}
}
