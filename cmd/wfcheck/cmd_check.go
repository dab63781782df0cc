package main

import (
	"github.com/spboyer/wfcheck/internal/checks"
	"github.com/spf13/cobra"
)

func newCheckCommand() *cobra.Command {
	var (
		failFast      bool
		requireQuoted bool
	)

	cmd := &cobra.Command{
		Use:   "check [workflow-file...]",
		Short: "Run every workflow check",
		Long: `Run every workflow check and print a summary table:

  1. YAML syntax - each file parses to a mapping
  2. Trigger key - the trigger key is present as a string and maps trigger names
  3. Key quoting - the trigger key is quoted so YAML 1.1 tools keep it a string

A plain on: already fails the trigger key check. The quoting check only warns
about the key's style unless --require-quoted is set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := resolveRun(cmd, args)
			if err != nil {
				return err
			}

			ff, rq := *rc.cfg.Trigger.FailFast, *rc.cfg.Trigger.RequireQuoted
			if cmd.Flags().Changed("fail-fast") {
				ff = failFast
			}
			if cmd.Flags().Changed("require-quoted") {
				rq = requireQuoted
			}

			key := rc.cfg.Trigger.Key
			return runSuite(cmd, rc, true,
				&checks.SyntaxChecker{},
				&checks.TriggerKeyChecker{Key: key, FailFast: ff},
				&checks.QuotingChecker{Key: key, Strict: rq},
			)
		},
	}
	cmd.Flags().BoolVar(&failFast, "fail-fast", false, "Abort at the first file that cannot be read or parsed")
	cmd.Flags().BoolVar(&requireQuoted, "require-quoted", false, "Fail when the trigger key is an unquoted YAML 1.1 boolean")
	return cmd
}
