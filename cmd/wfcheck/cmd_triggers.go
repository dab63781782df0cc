package main

import (
	"github.com/spboyer/wfcheck/internal/checks"
	"github.com/spf13/cobra"
)

func newTriggersCommand() *cobra.Command {
	var failFast bool

	cmd := &cobra.Command{
		Use:   "triggers [workflow-file...]",
		Short: "Check that the trigger key survived as a string key",
		Long: `Check that each workflow file has the trigger key (on by default) as a
string key whose value is a mapping, and list the triggers it declares.

A plain on: counts as missing, because YAML 1.1 parsers read it as true. When
the key is missing but a boolean key is present, the file was most likely
rewritten by such a tool.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := resolveRun(cmd, args)
			if err != nil {
				return err
			}
			ff := *rc.cfg.Trigger.FailFast
			if cmd.Flags().Changed("fail-fast") {
				ff = failFast
			}
			return runSuite(cmd, rc, false, &checks.TriggerKeyChecker{Key: rc.cfg.Trigger.Key, FailFast: ff})
		},
	}
	cmd.Flags().BoolVar(&failFast, "fail-fast", false, "Abort at the first file that cannot be read or parsed")
	return cmd
}
