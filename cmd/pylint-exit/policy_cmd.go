package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/richhaase/pylint-exit/internal/report"
)

func newPolicyCmd(flags *cliFlags, stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "policy",
		Short: "Display the enforcement policy in effect",
		Long: `Show which categories block and which are informational once the
enforcement flags given on the command line are applied.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			policy, err := flags.enforcement.Policy()
			if err != nil {
				return err
			}
			_, err = io.WriteString(stdout, report.RenderPolicy(policy))
			return err
		},
	}
}
