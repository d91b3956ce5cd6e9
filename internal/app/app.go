package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/agbru/polymul/internal/cli"
	"github.com/agbru/polymul/internal/config"
	apperrors "github.com/agbru/polymul/internal/errors"
	"github.com/agbru/polymul/internal/logging"
	"github.com/agbru/polymul/internal/metrics"
	"github.com/agbru/polymul/internal/multiplier"
	"github.com/agbru/polymul/internal/orchestration"
	"github.com/agbru/polymul/internal/server"
	"github.com/agbru/polymul/internal/tui"
	"github.com/agbru/polymul/internal/ui"
)

// Application represents the polymul application instance.
type Application struct {
	Config    config.AppConfig
	Factory   multiplier.Factory
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory sets a custom multiplier factory for the application.
func WithFactory(f multiplier.Factory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// New creates a new Application instance by parsing command-line
// arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Factory == nil {
		app.Factory = multiplier.NewDefaultFactory()
	}

	availableAlgos := app.Factory.List()

	programName := "polymul"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, availableAlgos)
	if err != nil {
		return nil, err
	}
	cfg = config.ApplyAdaptiveThresholds(cfg)

	app.Config = cfg
	return app, nil
}

// Run executes the application based on the configured mode and returns
// the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	logger := logging.New(a.ErrWriter, a.Config.Verbose, a.Config.Quiet)
	a.Config.Logger = logger
	ui.InitTheme(false)

	mets := metrics.New()
	if a.Config.MetricsAddr != "" {
		srv := server.New(a.Config.MetricsAddr, mets.Registry(), logger)
		srv.Start()
		defer srv.Shutdown(context.Background())
	}

	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	multipliers := orchestration.GetMultipliersToRun(a.Config.Algo, a.Factory)
	if len(multipliers) == 0 {
		fmt.Fprintf(a.ErrWriter, "no strategy matches %q\n", a.Config.Algo)
		return apperrors.ExitErrorConfig
	}

	logger.Debug().
		Int("len_p", a.Config.LenP).
		Int("len_q", a.Config.LenQ).
		Str("algo", a.Config.Algo).
		Bool("demo", a.Config.Demo).
		Msg("generating inputs")
	p, q := GenerateInputs(a.Config)

	if a.Config.TUI {
		return tui.Run(ctx, multipliers, a.Config, p, q, mets)
	}
	return a.runCLI(ctx, multipliers, p, q, mets, out)
}

// runCLI runs the plain command-line flow: progress display,
// orchestration, comparison analysis and optional file output.
func (a *Application) runCLI(ctx context.Context, multipliers []multiplier.Multiplier, p, q []uint64, mets *metrics.Metrics, out io.Writer) int {
	if !a.Config.Quiet {
		cli.PrintExecutionConfig(len(p), len(q), a.Config.Timeout, out)
	}

	var reporter orchestration.ProgressReporter = cli.CLIProgressReporter{}
	if a.Config.Quiet {
		reporter = orchestration.NullProgressReporter{}
	}

	results := orchestration.ExecuteMultiplications(ctx, multipliers, p, q,
		a.Config.ToMultiplierOptions(), reporter, out, mets)

	showValue := a.Config.ShowCoefficients || a.Config.Demo
	code := orchestration.AnalyzeComparisonResults(results, cli.CLIResultPresenter{Metrics: mets},
		a.Config.Verbose, a.Config.Details, showValue, out)

	// AnalyzeComparisonResults sorts successful results first, fastest
	// first.
	if code == apperrors.ExitSuccess {
		best := results[0]
		mets.SetOutputLength(len(best.Coefficients))
		if err := cli.WriteCoefficientsToFile(a.Config.OutputFile, best.Coefficients, best.Name, best.Duration); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error writing output file: %v\n", err)
			return apperrors.ExitErrorGeneric
		}
	}
	return code
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
