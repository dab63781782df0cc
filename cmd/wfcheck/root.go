package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wfcheck",
		Short: "wfcheck - sanity checks for GitHub Actions workflow files",
		Long: `wfcheck verifies that GitHub Actions workflow files still parse as YAML
mappings and that their trigger key survived formatting.

A plain on: key is a string to YAML 1.2 parsers but a boolean to YAML 1.1
parsers, so a reformatter can silently turn the trigger section into true:.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentFlags().String("root", "", "Repository root (default: detected from the working directory)")
	cmd.PersistentFlags().String("config", "", "Path to a config file (default: nearest .wfcheck.yaml)")
	cmd.PersistentFlags().String("format", "", "Output format: text | json | markdown | html")
	cmd.PersistentFlags().String("junit", "", "Also write a JUnit XML report to this path")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	// Add subcommands
	cmd.AddCommand(newSyntaxCommand())
	cmd.AddCommand(newTriggersCommand())
	cmd.AddCommand(newCheckCommand())
	cmd.AddCommand(newInitCommand())
	cmd.AddCommand(newConfigCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
