package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/big"
	"os"

	apperrors "github.com/agbru/fibfinder/internal/errors"
	"github.com/agbru/fibfinder/internal/fibonacci"
	"github.com/agbru/fibfinder/internal/logging"
	"github.com/agbru/fibfinder/internal/reference"
)

const (
	// EnvPrefix prefixes every environment variable override.
	EnvPrefix = "FIBFINDER_"

	// ModeAll benchmarks every generator.
	ModeAll = "all"

	syntaxHelp = "syntax is of form: `naive|dynamic iterative|recursive|direct n` OR `all n` OR `all n reference_file`, where n is a non-negative integer value"
)

// AppConfig aggregates the application's configuration parameters, parsed
// from command-line flags, positional arguments and environment variables.
type AppConfig struct {
	// Mode is "naive", "dynamic" or "all".
	Mode string
	// Domain is the numeric domain selected by the naive and dynamic modes.
	Domain fibonacci.Domain
	// Algorithm is the strategy selected by the naive and dynamic modes.
	Algorithm fibonacci.Algorithm
	// Index is the position in the Fibonacci sequence to compute.
	Index *big.Int
	// ReferencePath is the optional reference file of the all mode.
	ReferencePath string
	// MaxReferenceIndex is the largest index looked up in a reference file.
	MaxReferenceIndex int64

	// Details prints per-generator timings and memory statistics.
	Details bool
	// Progress shows a spinner on stderr while generators run.
	Progress bool
	// NoColor disables colored output.
	NoColor bool
	// LogLevel is the diagnostic log level ("debug", "info", "warn", "error").
	LogLevel string
	// MetricsFile, if set, receives the run's metrics in Prometheus text format.
	MetricsFile string
	// ChartFile, if set, receives an HTML chart of the benchmark.
	ChartFile string
	// Completion, if set, names the shell whose completion script is printed.
	Completion string
}

// IsBenchmark reports whether the configuration selects the all mode.
func (c AppConfig) IsBenchmark() bool {
	return c.Mode == ModeAll
}

// Validate checks the semantic consistency of the configuration.
//
// Returns:
//   - error: An error describing the first validation failure, or nil.
func (c AppConfig) Validate() error {
	// A zero Loader.MaxIndex selects the default, so 0 cannot be passed through.
	if c.MaxReferenceIndex < 1 {
		return apperrors.NewConfigError("Error: --max-reference-index must be at least 1, got %d", c.MaxReferenceIndex)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return apperrors.NewConfigError("Error: %v", err)
	}
	if c.ChartFile != "" && !c.IsBenchmark() && c.Completion == "" {
		return apperrors.NewConfigError("Error: --chart is only available in `all` mode")
	}
	return nil
}

// ParseConfig parses command-line arguments into an AppConfig. Flags come
// first, followed by the positional arguments of one of the forms:
//
//	naive|dynamic iterative|recursive|direct n
//	all n [reference_file]
//
// Environment variables prefixed with FIBFINDER_ override defaults for flags
// not set on the command line.
//
// Parameters:
//   - programName: The name used in usage messages.
//   - args: The command-line arguments, without the program name.
//   - errorWriter: The writer receiving usage and parse errors.
//
// Returns:
//   - AppConfig: The parsed configuration.
//   - error: flag.ErrHelp when help was requested, or a ConfigError.
func ParseConfig(programName string, args []string, errorWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)
	fs.Usage = func() {
		fmt.Fprintf(errorWriter, "Usage: %s [flags] naive|dynamic iterative|recursive|direct n\n", programName)
		fmt.Fprintf(errorWriter, "       %s [flags] all n [reference_file]\n\nFlags:\n", programName)
		fs.PrintDefaults()
	}

	config := AppConfig{}
	fs.Int64Var(&config.MaxReferenceIndex, "max-reference-index", reference.DefaultMaxIndex, "Largest index read from a reference file.")
	fs.BoolVar(&config.Details, "details", false, "Show per-generator timings and memory statistics.")
	fs.BoolVar(&config.Details, "d", false, "Shorthand for --details.")
	fs.BoolVar(&config.Progress, "progress", false, "Show a spinner on stderr while generators run.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output (also honors NO_COLOR).")
	fs.StringVar(&config.LogLevel, "log-level", "error", "Diagnostic log level (debug, info, warn, error).")
	fs.StringVar(&config.MetricsFile, "metrics-file", "", "Write the run's metrics to a Prometheus textfile.")
	fs.StringVar(&config.ChartFile, "chart", "", "Write an HTML chart of the benchmark (all mode).")
	fs.StringVar(&config.Completion, "completion", "", "Generate a completion script (bash, zsh, fish).")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return AppConfig{}, err
		}
		return AppConfig{}, apperrors.ConfigError{Message: "Error: " + err.Error(), Reported: true}
	}
	applyEnvOverrides(&config, fs)

	if config.Completion != "" {
		return config, config.Validate()
	}
	if err := parsePositional(&config, fs.Args()); err != nil {
		return AppConfig{}, err
	}
	if err := config.Validate(); err != nil {
		return AppConfig{}, err
	}
	return config, nil
}

// parsePositional fills the mode, algorithm, index and reference path.
func parsePositional(config *AppConfig, args []string) error {
	if len(args) != 2 && len(args) != 3 {
		return apperrors.NewConfigError("Error: invalid command syntax, %s", syntaxHelp)
	}

	config.Mode = args[0]
	indexArg := args[1]
	switch config.Mode {
	case ModeAll:
		if len(args) == 3 {
			if err := checkReferenceFile(args[2]); err != nil {
				return err
			}
			config.ReferencePath = args[2]
		}
	case "naive", "dynamic":
		if len(args) != 3 {
			return apperrors.NewConfigError("Error: invalid command syntax, %s", syntaxHelp)
		}
		domain, _ := fibonacci.ParseMode(config.Mode)
		algorithm, err := fibonacci.ParseAlgorithm(args[1])
		if err != nil {
			return apperrors.NewConfigError("Error: input algorithm should be either `iterative`, `recursive` or `direct`")
		}
		config.Domain, config.Algorithm = domain, algorithm
		indexArg = args[2]
	default:
		return apperrors.NewConfigError("Error: input mode should be either `naive` or `dynamic` or `all`")
	}

	index, ok := new(big.Int).SetString(indexArg, 10)
	if !ok {
		return apperrors.NewConfigError("Error: input number should be an integer")
	}
	if index.Sign() < 0 {
		return apperrors.NewConfigError("Error: input number should not be negative")
	}
	config.Index = index
	return nil
}

// checkReferenceFile requires path to name an existing regular file.
func checkReferenceFile(path string) error {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return apperrors.NewConfigError("Error: reference file %q is not a valid reference file, or does not have read permissions", path)
	}
	return nil
}
