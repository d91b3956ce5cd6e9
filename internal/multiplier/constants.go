package multiplier

// ─────────────────────────────────────────────────────────────────────────────
// Performance Tuning Constants
// ─────────────────────────────────────────────────────────────────────────────
//
// These constants control the tiering between strategies and are based on
// benchmarks across common hardware configurations.

const (
	// DefaultFFTThreshold is the default output length at which the FFT
	// strategy abandons the quadratic schoolbook tier for the radix-3
	// transform. Below this size the transform's constant factors
	// (widening into the extension ring, padding to a power of three)
	// outweigh its asymptotic advantage.
	DefaultFFTThreshold = 128

	// DefaultParallelThreshold is the default padded transform length at
	// which the FFT strategy runs its independent pointwise block
	// products on multiple cores. It matches the core's own default.
	DefaultParallelThreshold = 59049

	// schoolbookProgressStride is the row interval at which the
	// schoolbook strategy reports progress and polls for cancellation.
	// The quadratic inner loop makes per-row reporting too chatty for
	// large inputs.
	schoolbookProgressStride = 256

	// kroneckerSlotBytes is the width of one coefficient slot in the
	// Kronecker packing: 64 result bits, 64 carry bits from the raw
	// 128-bit products, and 64 bits of headroom for the up-to-n-term
	// column sums. Three words keep every exact column sum below
	// 2^192 for any input shorter than 2^64 coefficients.
	kroneckerSlotBytes = 24
)
