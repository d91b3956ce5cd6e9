// Package progress defines the progress update type shared by the
// multiplier, orchestration and presentation layers.
package progress

// Update carries a single progress report from a running multiplier.
type Update struct {
	// MultiplierIndex identifies the multiplier that sent the update
	// (0 to numMultipliers-1).
	MultiplierIndex int
	// Value is the completion fraction, from 0.0 to 1.0.
	Value float64
}
