// Package workspace locates the repository root that holds the workflow
// directory and lists the workflow files found there.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spboyer/wfcheck/internal/workflow"
)

// maxParentWalk is the maximum number of parent directories to walk up when searching.
const maxParentWalk = 10

// DetectOption configures workspace detection behavior.
type DetectOption func(*detectOptions)

type detectOptions struct {
	workflowsDir string // workflow directory relative to the root (default ".github/workflows")
}

func defaultDetectOptions() detectOptions {
	return detectOptions{workflowsDir: workflow.DefaultDir}
}

// WithWorkflowsDir overrides the workflow directory used during detection.
func WithWorkflowsDir(dir string) DetectOption {
	return func(o *detectOptions) {
		if dir != "" {
			o.workflowsDir = dir
		}
	}
}

// Workspace is a detected repository root.
type Workspace struct {
	// Root is the absolute repository root.
	Root string
	// WorkflowsDir is the absolute workflow directory under Root.
	WorkflowsDir string
	// Found reports whether WorkflowsDir exists. When false, Root is the
	// directory detection started from.
	Found bool
}

// Detect walks up from dir (max 10 levels) to the first directory that
// contains the workflow directory. If none does, the starting directory is
// returned with Found set to false.
func Detect(dir string, opts ...DetectOption) (*Workspace, error) {
	o := defaultDetectOptions()
	for _, fn := range opts {
		fn(&o)
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving absolute path: %w", err)
	}
	if !isDir(absDir) {
		return nil, fmt.Errorf("%s is not a directory", absDir)
	}

	current := absDir
	for i := 0; i <= maxParentWalk; i++ {
		wfDir := filepath.Join(current, o.workflowsDir)
		if isDir(wfDir) {
			return &Workspace{Root: current, WorkflowsDir: wfDir, Found: true}, nil
		}
		parent := filepath.Dir(current)
		if parent == current {
			break // reached filesystem root
		}
		current = parent
	}

	return &Workspace{
		Root:         absDir,
		WorkflowsDir: filepath.Join(absDir, o.workflowsDir),
	}, nil
}

// Discover lists the YAML files directly inside the workflow directory,
// sorted by name. A missing directory yields an empty list.
func (w *Workspace) Discover() ([]string, error) {
	entries, err := os.ReadDir(w.WorkflowsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("listing %s: %w", w.WorkflowsDir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if IsWorkflowFile(e.Name()) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// IsWorkflowFile reports whether name has a YAML extension.
func IsWorkflowFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yml" || ext == ".yaml"
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
