// Package main provides the CLI entry point for pylint-exit.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/richhaase/pylint-exit/internal/config"
	"github.com/richhaase/pylint-exit/internal/domain"
	"github.com/richhaase/pylint-exit/internal/enforce"
	"github.com/richhaase/pylint-exit/internal/metrics"
	"github.com/richhaase/pylint-exit/internal/report"
	"github.com/richhaase/pylint-exit/internal/terminal"
)

// cliFlags holds the raw flag values for one invocation.
type cliFlags struct {
	enforcement  config.Enforcement
	format       string
	metricsFile  string
	noColor      bool
	showWorkings bool
	debug        bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if os.Getenv(config.EnvNoColor) != "" || !isTTY(stderr) {
		terminal.DisableColors()
	}
	logger := terminal.NewLoggerTo(stderr)

	rootCmd := newRootCmd(stdout, stderr)
	rootCmd.SetArgs(normalizeLegacyArgs(args))

	if err := rootCmd.Execute(); err != nil {
		// Check if this is an exit code wrapper (not a real error)
		var exitErr exitCodeError
		if errors.As(err, &exitErr) {
			return exitErr.code.Int()
		}
		logger.Logf(terminal.StyleError, "Error: %v", err)
		logger.Log("Run 'pylint-exit --help' for usage.", terminal.StyleDim)
		return domain.ExitUsage.Int()
	}

	return domain.ExitGraceful.Int()
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var flags cliFlags

	rootCmd := &cobra.Command{
		Use:   "pylint-exit PYLINTRC",
		Short: "Translate a pylint return code into a report and an enforced exit code",
		Long: `Decode the bit-encoded return code of pylint into the categories of issues
it reports, then exit according to which categories are configured blocking.

By default fatal, error, warning and usage issues block; refactor and
convention issues are reported but do not fail the run.

Exit codes:
  0 - No blocking issues
  N - Sum of the bits of the blocking categories found
  2 - Invalid arguments`,
		Args:          requireMask,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       buildVersionString(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(cmd, args[0], flags, stdout, stderr)
		},
	}

	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Enforcement flags are persistent so the policy subcommand honours them
	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&flags.enforcement.ErrorFail, "error-fail", false,
		"Fail on issued error messages (alias: -efail)")
	pf.BoolVar(&flags.enforcement.WarnFail, "warn-fail", false,
		"Fail on issued warning messages (alias: -wfail)")
	pf.BoolVar(&flags.enforcement.RefactorFail, "refactor-fail", false,
		"Fail on issued refactor messages (alias: -rfail)")
	pf.BoolVar(&flags.enforcement.ConventionFail, "convention-fail", false,
		"Fail on issued convention messages (alias: -cfail)")
	pf.BoolVar(&flags.debug, "debug", false,
		"Emit structured trace logs to stderr")

	rootCmd.Flags().StringVarP(&flags.format, "format", "f", string(report.FormatText),
		"Report format: text, json, yaml (env: PYLINT_EXIT_FORMAT)")
	rootCmd.Flags().StringVar(&flags.metricsFile, "metrics-file", "",
		"Write Prometheus textfile metrics to this path (env: PYLINT_EXIT_METRICS_FILE)")
	rootCmd.Flags().BoolVar(&flags.noColor, "no-color", false,
		"Disable colored diagnostics (env: NO_COLOR)")
	rootCmd.Flags().BoolVar(&flags.showWorkings, "show-workings", false,
		"Print how the return code breaks down into bits before the report")

	rootCmd.AddCommand(newPolicyCmd(&flags, stdout))

	setGroupedUsage(rootCmd)

	return rootCmd
}

func runDecode(cmd *cobra.Command, rawMask string, flags cliFlags, stdout, stderr io.Writer) error {
	logger := terminal.NewLoggerTo(stderr)

	trace := newTraceLogger(stderr, flags.debug)
	defer func() { _ = trace.Sync() }()

	flagState := config.FlagState{
		FormatSet:      cmd.Flags().Changed("format"),
		MetricsFileSet: cmd.Flags().Changed("metrics-file"),
		NoColorSet:     cmd.Flags().Changed("no-color"),
	}
	flagValues := config.Options{
		Format:      report.Format(flags.format),
		MetricsFile: flags.metricsFile,
		Color:       !flags.noColor,
	}
	opts := config.Resolve(config.LoadEnvState(), flagState, flagValues)
	if err := opts.Validate(); err != nil {
		return err
	}
	if !opts.Color {
		terminal.DisableColors()
	}

	mask, err := domain.ParseMask(rawMask)
	if err != nil {
		return err
	}

	policy, err := flags.enforcement.Policy()
	if err != nil {
		return err
	}
	trace.Debug("policy built",
		zap.Any("overrides", flags.enforcement.Overrides()),
		zap.String("format", string(opts.Format)))

	r := enforce.BuildReport(mask, policy)
	trace.Debug("mask decoded",
		zap.Uint64("mask", uint64(r.Mask)),
		zap.String("binary", r.Mask.Binary()),
		zap.Stringers("triggered", r.Triggered),
		zap.Stringers("blocking", r.Blocking),
		zap.Int("exit_code", r.ExitCode))

	if flags.showWorkings {
		if _, err := io.WriteString(stdout, report.RenderWorkings(r)); err != nil {
			return fmt.Errorf("failed to write workings: %w", err)
		}
	}

	if err := report.Write(stdout, r, opts.Format); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	// Metrics are auxiliary; a write failure must not change the enforced exit code
	if opts.MetricsFile != "" {
		collector := metrics.NewCollector()
		collector.Record(r, policy)
		if err := collector.WriteTextfile(opts.MetricsFile); err != nil {
			logger.Logf(terminal.StyleWarning, "%v", err)
		} else {
			trace.Debug("metrics written", zap.String("path", opts.MetricsFile))
		}
	}

	return exitCode(domain.ExitCode(r.ExitCode))
}

// requireMask enforces exactly one positional PYLINTRC argument.
func requireMask(_ *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		return errors.New("missing required argument PYLINTRC")
	case 1:
		return nil
	default:
		return fmt.Errorf("expected a single PYLINTRC argument, got %d", len(args))
	}
}

func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && terminal.IsTTY(int(f.Fd()))
}
