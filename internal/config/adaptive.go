package config

import "runtime"

// Threshold resolution chain (highest priority first):
//   1. CLI flags (--fft-threshold, --parallel-threshold, --workers)
//   2. Environment variables (POLYMUL_FFT_THRESHOLD, etc.)
//   3. Adaptive hardware estimation (this file)
//   4. Static defaults in multiplier/constants.go

// ApplyAdaptiveThresholds adjusts the configuration thresholds based on
// hardware characteristics (CPU cores) when default values are detected.
// The function only modifies thresholds that are set to their zero
// default, preserving any user-specified overrides.
func ApplyAdaptiveThresholds(cfg AppConfig) AppConfig {
	if cfg.ParallelThreshold == 0 {
		cfg.ParallelThreshold = EstimateOptimalParallelThreshold()
	}
	return cfg
}

// EstimateOptimalParallelThreshold provides a heuristic estimate of the
// transform length at which the parallel pointwise stage pays off,
// without running benchmarks. Fewer cores need larger problems to
// amortize the goroutine and private-scratch overhead.
func EstimateOptimalParallelThreshold() int {
	numCPU := runtime.NumCPU()

	switch {
	case numCPU == 1:
		return -1 // No parallelism
	case numCPU <= 4:
		return 177147 // 3^11: parallelism overhead is significant
	case numCPU <= 16:
		return 59049 // 3^10: default
	default:
		return 19683 // 3^9: high core count, aggressive parallelism
	}
}
