package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spboyer/wfcheck/internal/checks"
	"github.com/spboyer/wfcheck/internal/projectconfig"
	"github.com/spboyer/wfcheck/internal/reporting"
	"github.com/spboyer/wfcheck/internal/workspace"
	"github.com/spf13/cobra"
)

var validFormats = []string{"text", "json", "markdown", "html"}

// runContext is everything a check command needs, resolved from flags and
// .wfcheck.yaml. Flags win over the config file.
type runContext struct {
	root   string
	cfg    *projectconfig.ProjectConfig
	files  []string
	format string
	junit  string
}

// resolveRun loads configuration and resolves the workflow files for cmd.
// Positional args replace the configured file list.
func resolveRun(cmd *cobra.Command, args []string) (*runContext, error) {
	rootFlag, _ := cmd.Flags().GetString("root")
	configFlag, _ := cmd.Flags().GetString("config")

	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}
	start := wd
	if rootFlag != "" {
		start = rootFlag
	}

	var cfg *projectconfig.ProjectConfig
	if configFlag != "" {
		cfg, err = projectconfig.LoadFile(configFlag)
	} else {
		cfg, err = projectconfig.Load(start)
	}
	if err != nil {
		return nil, err
	}

	root, err := resolveRoot(rootFlag, wd, cfg)
	if err != nil {
		return nil, err
	}

	rc := &runContext{root: root, cfg: cfg, format: cfg.Output.Format, junit: cfg.Output.JUnit}
	if cmd.Flags().Changed("format") {
		rc.format, _ = cmd.Flags().GetString("format")
	}
	if cmd.Flags().Changed("junit") {
		rc.junit, _ = cmd.Flags().GetString("junit")
	}
	if !slices.Contains(validFormats, rc.format) {
		return nil, fmt.Errorf("unknown format %q (want one of: %s)", rc.format, strings.Join(validFormats, ", "))
	}

	if len(args) > 0 {
		rc.files = argPaths(args, wd, cfg.WorkflowsDir(root))
	} else {
		rc.files = cfg.WorkflowPaths(root)
	}

	slog.Debug("resolved run", "root", rc.root, "config", cfg.Path, "files", len(rc.files), "format", rc.format)
	return rc, nil
}

// resolveRoot returns the explicit --root, or the repository root detected
// by walking up from wd.
func resolveRoot(rootFlag, wd string, cfg *projectconfig.ProjectConfig) (string, error) {
	if rootFlag != "" {
		abs, err := filepath.Abs(rootFlag)
		if err != nil {
			return "", fmt.Errorf("resolving root: %w", err)
		}
		return abs, nil
	}
	ws, err := workspace.Detect(wd, workspace.WithWorkflowsDir(cfg.Workflows.Dir))
	if err != nil {
		return "", fmt.Errorf("detecting repository root: %w", err)
	}
	if !ws.Found {
		slog.Debug("no workflow directory found, using working directory", "dir", ws.Root)
	}
	return ws.Root, nil
}

// argPaths resolves file arguments. A bare file name is looked up in the
// workflow directory; anything else is relative to the working directory.
func argPaths(args []string, wd, wfDir string) []string {
	paths := make([]string, 0, len(args))
	for _, a := range args {
		switch {
		case filepath.IsAbs(a):
			paths = append(paths, a)
		case filepath.Base(a) == a:
			paths = append(paths, filepath.Join(wfDir, a))
		default:
			paths = append(paths, filepath.Join(wd, a))
		}
	}
	return paths
}

// runSuite runs checkers over rc.files, writes the report and maps the outcome
// to an error: nil when everything passed, *CheckFailureError when a file
// failed or a fail-fast checker aborted.
func runSuite(cmd *cobra.Command, rc *runContext, summary bool, checkers ...checks.Checker) error {
	suite := &checks.Suite{Root: rc.root, Files: rc.files, Checkers: checkers}
	report, runErr := suite.Run(cmd.Context())

	var fileErr *checks.FileError
	if runErr != nil && !errors.As(runErr, &fileErr) {
		return runErr
	}

	if err := writeReport(cmd.OutOrStdout(), report, rc.format, summary); err != nil {
		return err
	}
	if rc.junit != "" {
		if err := reporting.WriteJUnitXML(report, rc.junit); err != nil {
			return fmt.Errorf("writing JUnit report: %w", err)
		}
		slog.Debug("wrote JUnit report", "path", rc.junit)
	}

	if fileErr != nil {
		return &CheckFailureError{Message: fmt.Sprintf("aborted: %v", runErr)}
	}
	if !report.Passed() {
		failed := 0
		for _, s := range report.Sections {
			if !s.Passed() {
				failed++
			}
		}
		return &CheckFailureError{Message: fmt.Sprintf("%d of %d checks failed", failed, len(report.Sections))}
	}
	return nil
}

func writeReport(w io.Writer, report *checks.Report, format string, summary bool) error {
	switch format {
	case "json":
		return reporting.WriteJSON(w, report)
	case "markdown":
		return reporting.WriteMarkdown(w, report)
	case "html":
		return reporting.WriteHTML(w, report)
	}

	if err := reporting.WriteText(w, report); err != nil {
		return err
	}
	if summary {
		return reporting.WriteSummaryTable(w, report)
	}
	return nil
}
