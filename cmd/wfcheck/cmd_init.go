package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spboyer/wfcheck/internal/projectconfig"
	"github.com/spboyer/wfcheck/internal/wizard"
	"github.com/spboyer/wfcheck/internal/workspace"
	"github.com/spf13/cobra"
)

func newInitCommand() *cobra.Command {
	var (
		yes   bool
		force bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a .wfcheck.yaml for this repository",
		Long: `Create a .wfcheck.yaml in the repository root.

Runs a short wizard to pick workflow files and trigger-key options. With --yes
the defaults are written without prompting. Workflow files are never modified.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return initCommandE(cmd, yes, force)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Write defaults without prompting")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing .wfcheck.yaml")
	return cmd
}

func initCommandE(cmd *cobra.Command, yes, force bool) error {
	rootFlag, _ := cmd.Flags().GetString("root")
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	cfg := projectconfig.New()
	root, err := resolveRoot(rootFlag, wd, cfg)
	if err != nil {
		return err
	}

	path := filepath.Join(root, projectconfig.FileName)
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if !yes {
		ws := &workspace.Workspace{Root: root, WorkflowsDir: cfg.WorkflowsDir(root)}
		discovered, err := ws.Discover()
		if err != nil {
			return err
		}
		answers, err := wizard.RunConfigWizard(cmd.InOrStdin(), cmd.OutOrStdout(), discovered, cfg)
		if err != nil {
			return err
		}
		if err := answers.Apply(cfg); err != nil {
			return err
		}
	}

	content, err := wizard.GenerateConfig(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
	return nil
}
