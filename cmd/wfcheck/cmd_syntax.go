package main

import (
	"github.com/spboyer/wfcheck/internal/checks"
	"github.com/spf13/cobra"
)

func newSyntaxCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "syntax [workflow-file...]",
		Short: "Check that workflow files parse as YAML mappings",
		Long: `Check that each workflow file parses as YAML and that its top-level
value is a mapping.

With no arguments the configured workflow files are checked. A bare file name
is looked up in the workflow directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := resolveRun(cmd, args)
			if err != nil {
				return err
			}
			return runSuite(cmd, rc, false, &checks.SyntaxChecker{})
		},
	}
}
