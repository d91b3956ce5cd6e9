// This file defines the coefficient ring used by the radix-3 transform.

package trifft

// The transform works over R = Z/2^64, the ring of wrapping 64-bit
// integers. R has no roots of unity of order 3^k, so the convolution is
// carried out in the quadratic extension T = R[ω]/(ω² + ω + 1), in which
// ω is a primitive cube root of unity and 3 is invertible. Elements of T
// are pairs a + b·ω of wrapping uint64 values.
type elem struct {
	a, b uint64
}

var (
	// omega is a primitive cube root of unity in T.
	omega = elem{0, 1}
	// omega2 is ω² = −ω − 1.
	omega2 = elem{^uint64(0), ^uint64(0)}
	// inv3 is the multiplicative inverse of 3 in R, embedded in T.
	inv3 = elem{12297829382473034411, 0}
	// identity is the multiplicative unit of T.
	identity = elem{1, 0}
)

// CRT coefficients for x^(2m) + x^m + 1 = (x^m − ω)(x^m − ω²),
// precomputed once since they are reused in every recombination pass.
var (
	oneMinusOmega    = identity.sub(omega)
	oneMinusOmega2   = identity.sub(omega2)
	omega2MinusOmega = omega2.sub(omega)
)

func (u elem) add(v elem) elem {
	return elem{u.a + v.a, u.b + v.b}
}

func (u elem) sub(v elem) elem {
	return elem{u.a - v.a, u.b - v.b}
}

func (u elem) neg() elem {
	return elem{-u.a, -u.b}
}

// mul computes (a + bω)(c + dω) = (ac − bd) + (ad + bc − bd)ω, using the
// reduction ω² = −ω − 1.
func (u elem) mul(v elem) elem {
	return elem{
		u.a*v.a - u.b*v.b,
		u.b*v.a + u.a*v.b - u.b*v.b,
	}
}

// conj maps ω to ω², i.e. a + bω to (a − b) − bω.
func (u elem) conj() elem {
	return elem{u.a - u.b, -u.b}
}
