package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// flagGroup defines a named group of flags for help output.
type flagGroup struct {
	title string
	flags []string
}

// flagGroups defines the logical groupings for CLI flags.
// Flags not listed here appear under "Other Flags".
var flagGroups = []flagGroup{
	{
		title: "Enforcement",
		flags: []string{"error-fail", "warn-fail", "refactor-fail", "convention-fail"},
	},
	{
		title: "Output",
		flags: []string{"format", "show-workings", "metrics-file", "no-color"},
	},
}

// setGroupedUsage configures the command to display flags in logical groups.
// Child commands inherit the usage function from the root.
func setGroupedUsage(cmd *cobra.Command) {
	cmd.SetUsageFunc(func(c *cobra.Command) error {
		out := c.OutOrStderr()
		fmt.Fprintf(out, "Usage:\n  %s\n", c.UseLine())

		if c.HasAvailableSubCommands() {
			fmt.Fprintf(out, "\nCommands:\n")
			for _, sub := range c.Commands() {
				if sub.IsAvailableCommand() {
					fmt.Fprintf(out, "  %-12s %s\n", sub.Name(), sub.Short)
				}
			}
		}

		local := c.LocalFlags()
		inherited := c.InheritedFlags()
		lookup := func(name string) *pflag.Flag {
			if f := local.Lookup(name); f != nil {
				return f
			}
			return inherited.Lookup(name)
		}

		// Track which flags have been placed in a group
		grouped := make(map[string]bool)

		for _, group := range flagGroups {
			fs := pflag.NewFlagSet(group.title, pflag.ContinueOnError)
			for _, name := range group.flags {
				if f := lookup(name); f != nil {
					fs.AddFlag(f)
					grouped[name] = true
				}
			}
			if usages := fs.FlagUsages(); strings.TrimSpace(usages) != "" {
				fmt.Fprintf(out, "\n%s:\n%s", group.title, usages)
			}
		}

		// Collect ungrouped flags (help, version, debug, any new flags not yet categorized)
		other := pflag.NewFlagSet("other", pflag.ContinueOnError)
		collect := func(f *pflag.Flag) {
			if !grouped[f.Name] && other.Lookup(f.Name) == nil {
				other.AddFlag(f)
			}
		}
		local.VisitAll(collect)
		inherited.VisitAll(collect)
		if usages := other.FlagUsages(); strings.TrimSpace(usages) != "" {
			fmt.Fprintf(out, "\nOther Flags:\n%s", usages)
		}

		return nil
	})
}
