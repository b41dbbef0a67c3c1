// Package config resolves per-run options for pylint-exit.
//
// Output options follow the precedence flags > environment > defaults.
// The enforcement policy is never read from the environment: every run
// starts from the registry defaults and only the policy flags change it.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/richhaase/pylint-exit/internal/category"
	"github.com/richhaase/pylint-exit/internal/enforce"
	"github.com/richhaase/pylint-exit/internal/report"
)

// Environment variables consulted by LoadEnvState.
const (
	EnvFormat      = "PYLINT_EXIT_FORMAT"
	EnvMetricsFile = "PYLINT_EXIT_METRICS_FILE"
	EnvNoColor     = "NO_COLOR"
)

// Options holds the resolved output options.
type Options struct {
	Format      report.Format
	MetricsFile string
	Color       bool
}

// Defaults holds the built-in default values.
var Defaults = Options{
	Format: report.FormatText,
	Color:  true,
}

// FlagState tracks whether a flag was explicitly set.
type FlagState struct {
	FormatSet      bool
	MetricsFileSet bool
	NoColorSet     bool
}

// EnvState captures env var values and whether they were set.
type EnvState struct {
	Format         string
	FormatSet      bool
	MetricsFile    string
	MetricsFileSet bool
	NoColor        bool
}

// LoadEnvState reads environment variables and returns their state.
func LoadEnvState() EnvState {
	var state EnvState

	if v := os.Getenv(EnvFormat); v != "" {
		state.Format = v
		state.FormatSet = true
	}
	if v := os.Getenv(EnvMetricsFile); v != "" {
		state.MetricsFile = v
		state.MetricsFileSet = true
	}
	// Any non-empty NO_COLOR disables color (https://no-color.org).
	if v := os.Getenv(EnvNoColor); v != "" {
		state.NoColor = true
	}

	return state
}

// Resolve merges env vars and flags over the defaults.
// Precedence: flags > env vars > defaults
func Resolve(envState EnvState, flagState FlagState, flagValues Options) Options {
	result := Defaults

	if envState.FormatSet {
		result.Format = report.Format(envState.Format)
	}
	if envState.MetricsFileSet {
		result.MetricsFile = envState.MetricsFile
	}
	if envState.NoColor {
		result.Color = false
	}

	if flagState.FormatSet {
		result.Format = flagValues.Format
	}
	if flagState.MetricsFileSet {
		result.MetricsFile = flagValues.MetricsFile
	}
	if flagState.NoColorSet {
		result.Color = flagValues.Color
	}

	return result
}

// Validate checks that all option values are valid.
func (o Options) Validate() error {
	if !slices.Contains(report.Formats, string(o.Format)) {
		msg := fmt.Sprintf("format must be one of %v, got %q", report.Formats, o.Format)
		if suggestion := category.FindSimilar(string(o.Format), report.Formats); suggestion != "" {
			msg += fmt.Sprintf(" (did you mean %q?)", suggestion)
		}
		return errors.New(msg)
	}
	return nil
}

// Enforcement holds the policy flags for one run. Each set flag forces its
// category blocking; there is no way to turn a category off from the CLI.
type Enforcement struct {
	ErrorFail      bool
	WarnFail       bool
	RefactorFail   bool
	ConventionFail bool
}

// Overrides returns the policy overrides the flags request, in registry order.
func (e Enforcement) Overrides() []enforce.Override {
	var overrides []enforce.Override
	if e.ErrorFail {
		overrides = append(overrides, enforce.Override{Name: string(category.Error), Blocking: true})
	}
	if e.WarnFail {
		overrides = append(overrides, enforce.Override{Name: string(category.Warning), Blocking: true})
	}
	if e.RefactorFail {
		overrides = append(overrides, enforce.Override{Name: string(category.Refactor), Blocking: true})
	}
	if e.ConventionFail {
		overrides = append(overrides, enforce.Override{Name: string(category.Convention), Blocking: true})
	}
	return overrides
}

// Policy builds the run's policy from the registry defaults and the flags.
func (e Enforcement) Policy() (enforce.Policy, error) {
	return enforce.NewPolicy(e.Overrides()...)
}
