// This file implements the recursive in-place radix-3 transforms.

package trifft

// Both transforms view a buffer of m·r elements as a polynomial of degree
// < r in y whose coefficients are length-m blocks in S = T[x]/(x^m − ω).
// The evaluation point is ζ = x^(3m/r), which has order r in S because
// ζ^r = x^(3m) = ω³ = 1. The radix-3 butterfly combines three blocks with
// the cube roots of unity; the inter-block rotations go through twiddle.
//
// tmp provides scratch for three blocks (3m elements) and is shared by
// every frame of the recursion.

// fftDIF is the decimation-in-frequency forward transform. Input is in
// normal order; output is in 3-reversed order (ternary digit reversal of
// the y index).
func fftDIF(p []elem, m, r int, tmp []elem) {
	if r == 1 {
		return
	}
	rr := r / 3
	pos1, pos2 := m*rr, 2*m*rr
	for i := 0; i < rr; i++ {
		for j := 0; j < m; j++ {
			p0 := p[i*m+j]
			p1 := p[pos1+i*m+j]
			p2 := p[pos2+i*m+j]
			tmp[j] = p0.add(p1).add(p2)
			tmp[m+j] = p0.add(omega.mul(p1)).add(omega2.mul(p2))
			tmp[2*m+j] = p0.add(omega2.mul(p1)).add(omega.mul(p2))
			p[i*m+j] = tmp[j]
		}
		twiddle(tmp[m:], m, 3*i*m/r, p[pos1+i*m:])
		twiddle(tmp[2*m:], m, 6*i*m/r, p[pos2+i*m:])
	}
	fftDIF(p, m, rr, tmp)
	fftDIF(p[pos1:], m, rr, tmp)
	fftDIF(p[pos2:], m, rr, tmp)
}

// fftDIT is the decimation-in-time inverse transform. Input is in
// 3-reversed order; output is in normal order, scaled by r. The caller
// divides by r by multiplying with the accumulated inverse of 3.
func fftDIT(p []elem, m, r int, tmp []elem) {
	if r == 1 {
		return
	}
	rr := r / 3
	pos1, pos2 := m*rr, 2*m*rr
	fftDIT(p, m, rr, tmp)
	fftDIT(p[pos1:], m, rr, tmp)
	fftDIT(p[pos2:], m, rr, tmp)
	for i := 0; i < rr; i++ {
		twiddle(p[pos1+i*m:], m, 3*m-3*i*m/r, tmp[m:])
		twiddle(p[pos2+i*m:], m, 3*m-6*i*m/r, tmp[2*m:])
		for j := 0; j < m; j++ {
			t0 := p[i*m+j]
			t1 := tmp[m+j]
			t2 := tmp[2*m+j]
			p[i*m+j] = t0.add(t1).add(t2)
			p[i*m+pos1+j] = t0.add(omega2.mul(t1)).add(omega.mul(t2))
			p[i*m+pos2+j] = t0.add(omega.mul(t1)).add(omega2.mul(t2))
		}
	}
}
