package orchestration

import "github.com/agbru/polymul/internal/progress"

// ProgressAggregator folds per-strategy progress updates into a single
// average. Both the CLI spinner and the TUI consume it, so the
// aggregation logic lives here rather than in either presentation layer.
type ProgressAggregator struct {
	values         []float64
	numMultipliers int
}

// NewProgressAggregator creates an aggregator for the given number of
// strategies. Returns nil if numMultipliers <= 0.
func NewProgressAggregator(numMultipliers int) *ProgressAggregator {
	if numMultipliers <= 0 {
		return nil
	}
	return &ProgressAggregator{
		values:         make([]float64, numMultipliers),
		numMultipliers: numMultipliers,
	}
}

// Update records a single progress update and returns the new average.
// Out-of-range indices are ignored.
func (a *ProgressAggregator) Update(u progress.Update) float64 {
	if u.MultiplierIndex >= 0 && u.MultiplierIndex < len(a.values) {
		a.values[u.MultiplierIndex] = u.Value
	}
	return a.CalculateAverage()
}

// Value returns the last recorded progress of one strategy.
func (a *ProgressAggregator) Value(index int) float64 {
	if index < 0 || index >= len(a.values) {
		return 0
	}
	return a.values[index]
}

// CalculateAverage returns the current average progress across all
// strategies.
func (a *ProgressAggregator) CalculateAverage() float64 {
	var total float64
	for _, v := range a.values {
		total += v
	}
	return total / float64(a.numMultipliers)
}

// NumMultipliers returns the number of strategies being tracked.
func (a *ProgressAggregator) NumMultipliers() int {
	return a.numMultipliers
}
