package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/agbru/fibfinder/internal/cli"
	"github.com/agbru/fibfinder/internal/config"
	apperrors "github.com/agbru/fibfinder/internal/errors"
	"github.com/agbru/fibfinder/internal/fibonacci"
	"github.com/agbru/fibfinder/internal/logging"
	"github.com/agbru/fibfinder/internal/metrics"
	"github.com/agbru/fibfinder/internal/ui"
)

// Application represents the fibfinder application instance.
type Application struct {
	Config    config.AppConfig
	Factory   fibonacci.GeneratorFactory
	Logger    logging.Logger
	Recorder  *metrics.Recorder
	ErrWriter io.Writer

	// isTerminal reports whether progress may be drawn on ErrWriter.
	isTerminal func() bool
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory sets a custom GeneratorFactory for the application.
func WithFactory(f fibonacci.GeneratorFactory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// WithLogger replaces the stderr console logger.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
// args[0] is the program name. Parse failures are written to errWriter
// before being returned.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Factory == nil {
		app.Factory = fibonacci.NewDefaultFactory()
	}
	if app.isTerminal == nil {
		app.isTerminal = stderrIsTerminal
	}

	programName := "fibfinder"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		var cfgErr apperrors.ConfigError
		if errors.As(err, &cfgErr) && !cfgErr.Reported {
			fmt.Fprintln(errWriter, cfgErr.Message)
		}
		return nil, err
	}
	app.Config = cfg

	if app.Logger == nil {
		level, _ := logging.ParseLevel(cfg.LogLevel)
		app.Logger = logging.NewConsoleLogger(errWriter, "fibfinder", level)
	}
	app.Recorder = metrics.NewRecorder()
	return app, nil
}

// Run executes the application based on the configured mode and returns the
// process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	ui.InitTheme(a.Config.NoColor || !ui.IsTerminal(out))

	var code int
	if a.Config.IsBenchmark() {
		code = a.runBenchmark(ctx, out)
	} else {
		code = a.runSingle(ctx, out)
	}
	if code != apperrors.ExitSuccess {
		return code
	}
	return a.writeMetrics()
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// writeMetrics dumps the recorder to --metrics-file when one is configured.
func (a *Application) writeMetrics() int {
	if a.Config.MetricsFile == "" {
		return apperrors.ExitSuccess
	}
	if err := a.Recorder.WriteTextfile(a.Config.MetricsFile); err != nil {
		a.Logger.Error("writing metrics file", err, logging.String("path", a.Config.MetricsFile))
		fmt.Fprintf(a.ErrWriter, "Error writing metrics file: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

func stderrIsTerminal() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
