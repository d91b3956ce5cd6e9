package app

import (
	"math/rand"

	"github.com/agbru/polymul/internal/config"
)

// GenerateInputs builds the two input polynomials described by the
// configuration. Demo mode reproduces the classic demonstration inputs:
// two length-500000 polynomials of alternating 0/1 coefficients, whose
// product counts the odd/even index pairs summing to each degree. The
// default mode draws full-range coefficients from a deterministic
// seeded source, so runs are reproducible.
func GenerateInputs(cfg config.AppConfig) (p, q []uint64) {
	if cfg.Demo {
		p = make([]uint64, config.DemoLen)
		q = make([]uint64, config.DemoLen)
		for i := range p {
			p[i] = uint64(i % 2)
			q[i] = uint64((i + 1) % 2)
		}
		return p, q
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	p = make([]uint64, cfg.LenP)
	q = make([]uint64, cfg.LenQ)
	for i := range p {
		p[i] = rng.Uint64()
	}
	for i := range q {
		q[i] = rng.Uint64()
	}
	return p, q
}
