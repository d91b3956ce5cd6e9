// Package config parses and validates the application configuration from
// command-line flags and environment variables.
//
// Resolution priority: CLI flags > POLYMUL_* environment variables >
// adaptive hardware estimation > static defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	apperrors "github.com/agbru/polymul/internal/errors"
	"github.com/agbru/polymul/internal/multiplier"
	"github.com/rs/zerolog"
)

// EnvPrefix is prepended to every environment variable key.
const EnvPrefix = "POLYMUL_"

// Default values for the main knobs.
const (
	DefaultLen     = 100000
	DefaultSeed    = 1
	DefaultAlgo    = "all"
	DefaultTimeout = 5 * time.Minute
)

// DemoLen is the input length of the -demo mode: both demo polynomials
// carry this many alternating 0/1 coefficients.
const DemoLen = 500000

// AppConfig holds the resolved application configuration.
type AppConfig struct {
	// LenP and LenQ are the lengths of the two generated input
	// polynomials.
	LenP int
	LenQ int
	// Seed seeds the deterministic input generator.
	Seed int64
	// Algo selects the strategies to run: a registered key or "all".
	Algo string
	// Timeout bounds the whole run.
	Timeout time.Duration
	// FFTThreshold, ParallelThreshold and Workers tune the strategies.
	// A zero ParallelThreshold is resolved from the CPU count; a zero
	// FFTThreshold takes the static default and zero Workers means one
	// per CPU.
	FFTThreshold      int
	ParallelThreshold int
	Workers           int
	// Verbose enables debug logging; Quiet suppresses progress and
	// logging entirely.
	Verbose bool
	Quiet   bool
	// Details adds memory statistics to the result display.
	Details bool
	// ShowCoefficients prints the full coefficient sequence instead of
	// the truncated edges.
	ShowCoefficients bool
	// Demo reproduces the classic demonstration: the product of two
	// length-500000 alternating 0/1 polynomials, printed in full.
	Demo bool
	// OutputFile, when set, receives the space-separated coefficients.
	OutputFile string
	// MetricsAddr, when set, serves Prometheus metrics on that address.
	MetricsAddr string
	// TUI launches the interactive dashboard instead of the plain CLI.
	TUI bool

	// Logger is injected after parsing by the application layer.
	Logger zerolog.Logger
}

// ParseConfig parses flags and environment into an AppConfig.
// availableAlgos is the list of registered strategy keys, used for
// validation and the usage text.
func ParseConfig(progName string, args []string, errWriter io.Writer, availableAlgos []string) (AppConfig, error) {
	cfg := AppConfig{}

	fs := flag.NewFlagSet(progName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.IntVar(&cfg.LenP, "len-p", DefaultLen, "length of the first input polynomial")
	fs.IntVar(&cfg.LenQ, "len-q", DefaultLen, "length of the second input polynomial")
	fs.Int64Var(&cfg.Seed, "seed", DefaultSeed, "seed for the deterministic input generator")
	fs.StringVar(&cfg.Algo, "algo", DefaultAlgo, fmt.Sprintf("strategy to run: one of %v, or \"all\"", availableAlgos))
	fs.DurationVar(&cfg.Timeout, "timeout", DefaultTimeout, "global timeout for the run")
	fs.IntVar(&cfg.FFTThreshold, "fft-threshold", 0, "output length from which on the FFT tier is used (0 = default)")
	fs.IntVar(&cfg.ParallelThreshold, "parallel-threshold", 0, "transform length from which on pointwise products run in parallel (0 = adaptive, negative = off)")
	fs.IntVar(&cfg.Workers, "workers", 0, "maximum concurrent pointwise workers (0 = one per CPU)")
	fs.BoolVar(&cfg.Verbose, "v", false, "enable debug logging (shorthand)")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "enable debug logging")
	fs.BoolVar(&cfg.Quiet, "q", false, "suppress progress and logging (shorthand)")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "suppress progress and logging")
	fs.BoolVar(&cfg.Details, "d", false, "show memory statistics (shorthand)")
	fs.BoolVar(&cfg.Details, "details", false, "show memory statistics")
	fs.BoolVar(&cfg.ShowCoefficients, "c", false, "print the full coefficient sequence (shorthand)")
	fs.BoolVar(&cfg.ShowCoefficients, "coefficients", false, "print the full coefficient sequence")
	fs.BoolVar(&cfg.Demo, "demo", false, "multiply the two classic length-500000 alternating polynomials and print the product")
	fs.StringVar(&cfg.OutputFile, "o", "", "write the coefficients to this file (shorthand)")
	fs.StringVar(&cfg.OutputFile, "output", "", "write the coefficients to this file")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (e.g. :9090)")
	fs.BoolVar(&cfg.TUI, "tui", false, "launch the interactive dashboard")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&cfg, fs)

	if err := validate(cfg, availableAlgos); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

func validate(cfg AppConfig, availableAlgos []string) error {
	if cfg.LenP < 1 {
		return apperrors.ValidationError{Field: "len-p", Message: "must be at least 1"}
	}
	if cfg.LenQ < 1 {
		return apperrors.ValidationError{Field: "len-q", Message: "must be at least 1"}
	}
	if cfg.Timeout <= 0 {
		return apperrors.ValidationError{Field: "timeout", Message: "must be positive"}
	}
	if cfg.Workers < 0 {
		return apperrors.ValidationError{Field: "workers", Message: "must not be negative"}
	}
	if cfg.Algo != "all" {
		found := false
		for _, a := range availableAlgos {
			if a == cfg.Algo {
				found = true
				break
			}
		}
		if !found {
			return apperrors.NewConfigError("unknown algorithm %q (available: %v, or \"all\")", cfg.Algo, availableAlgos)
		}
	}
	return nil
}

// ToMultiplierOptions converts the configuration to the options consumed
// by the multiplication strategies.
func (cfg AppConfig) ToMultiplierOptions() multiplier.Options {
	return multiplier.Options{
		FFTThreshold:      cfg.FFTThreshold,
		ParallelThreshold: cfg.ParallelThreshold,
		Workers:           cfg.Workers,
		Logger:            cfg.Logger,
	}
}
