// Package projectconfig provides the ProjectConfig struct and loader for
// .wfcheck.yaml project-level configuration files.
package projectconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spboyer/wfcheck/internal/validation"
	"github.com/spboyer/wfcheck/internal/workflow"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the project configuration file.
const FileName = ".wfcheck.yaml"

// Default values for project configuration. These are the single source of
// truth; New() references them and no other code should duplicate them.
const (
	DefaultWorkflowsDir = workflow.DefaultDir
	DefaultTriggerKey   = workflow.DefaultTriggerKey
	DefaultFormat       = "text"
)

// maxParentWalk is the maximum number of parent directories searched for FileName.
const maxParentWalk = 10

// WorkflowsConfig selects the workflow files to check.
type WorkflowsConfig struct {
	Dir   string   `yaml:"dir,omitempty"`
	Files []string `yaml:"files,omitempty"`
}

// TriggerConfig configures the trigger-key checks.
type TriggerConfig struct {
	Key           string `yaml:"key,omitempty"`
	FailFast      *bool  `yaml:"fail_fast,omitempty"`
	RequireQuoted *bool  `yaml:"require_quoted,omitempty"`
}

// OutputConfig holds report settings.
type OutputConfig struct {
	Format string `yaml:"format,omitempty"`
	JUnit  string `yaml:"junit,omitempty"`
}

// ProjectConfig is the top-level configuration loaded from .wfcheck.yaml.
type ProjectConfig struct {
	Workflows WorkflowsConfig `yaml:"workflows,omitempty"`
	Trigger   TriggerConfig   `yaml:"trigger,omitempty"`
	Output    OutputConfig    `yaml:"output,omitempty"`

	// Path is the config file that was loaded, empty when defaults are used.
	Path string `yaml:"-"`
}

// New returns a ProjectConfig with all hard-coded defaults populated.
func New() *ProjectConfig {
	return &ProjectConfig{
		Workflows: WorkflowsConfig{
			Dir:   DefaultWorkflowsDir,
			Files: append([]string(nil), workflow.DefaultFiles...),
		},
		Trigger: TriggerConfig{
			Key:           DefaultTriggerKey,
			FailFast:      boolPtr(false),
			RequireQuoted: boolPtr(false),
		},
		Output: OutputConfig{
			Format: DefaultFormat,
		},
	}
}

// WorkflowsDir returns the workflow directory resolved against root.
func (c *ProjectConfig) WorkflowsDir(root string) string {
	if filepath.IsAbs(c.Workflows.Dir) {
		return c.Workflows.Dir
	}
	return filepath.Join(root, c.Workflows.Dir)
}

// WorkflowPaths returns the configured workflow files resolved against root.
func (c *ProjectConfig) WorkflowPaths(root string) []string {
	return workflow.ResolvePaths(c.Workflows.Files, c.WorkflowsDir(root))
}

// Load finds .wfcheck.yaml by walking up from startDir (max 10 levels),
// validates it against the config schema, and fills in missing fields with
// defaults. If no config file is found, returns defaults with a nil error.
func Load(startDir string) (*ProjectConfig, error) {
	path, data, err := findConfigFile(startDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return New(), nil
		}
		return nil, fmt.Errorf("loading %s: %w", FileName, err)
	}
	return parse(path, data)
}

// LoadFile loads an explicit config file. A missing file is an error.
func LoadFile(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return parse(path, data)
}

func parse(path string, data []byte) (*ProjectConfig, error) {
	if errs := validation.ValidateConfigBytes(data); len(errs) > 0 {
		return nil, fmt.Errorf("invalid %s:\n  %s", path, strings.Join(errs, "\n  "))
	}

	var fileCfg ProjectConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	cfg := New()
	mergeConfig(cfg, &fileCfg)
	cfg.Path = path
	return cfg, nil
}

// findConfigFile walks up from dir looking for .wfcheck.yaml (max 10 levels).
// Returns os.ErrNotExist if no config file is found. Propagates real I/O
// errors (e.g. permission denied) instead of silently swallowing them.
func findConfigFile(dir string) (string, []byte, error) {
	// Convert to absolute path so filepath.Dir(".") walks correctly.
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", nil, fmt.Errorf("resolving path %q: %w", dir, err)
	}
	dir = absDir

	for i := 0; i < maxParentWalk; i++ {
		p := filepath.Join(dir, FileName)
		data, err := os.ReadFile(p)
		if err == nil {
			return p, data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return "", nil, fmt.Errorf("reading %q: %w", p, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached filesystem root
		}
		dir = parent
	}
	return "", nil, os.ErrNotExist
}

// mergeConfig overlays non-zero values from src onto dst.
func mergeConfig(dst, src *ProjectConfig) {
	if src.Workflows.Dir != "" {
		dst.Workflows.Dir = src.Workflows.Dir
	}
	if len(src.Workflows.Files) > 0 {
		dst.Workflows.Files = src.Workflows.Files
	}

	if src.Trigger.Key != "" {
		dst.Trigger.Key = src.Trigger.Key
	}
	if src.Trigger.FailFast != nil {
		dst.Trigger.FailFast = src.Trigger.FailFast
	}
	if src.Trigger.RequireQuoted != nil {
		dst.Trigger.RequireQuoted = src.Trigger.RequireQuoted
	}

	if src.Output.Format != "" {
		dst.Output.Format = src.Output.Format
	}
	if src.Output.JUnit != "" {
		dst.Output.JUnit = src.Output.JUnit
	}
}

// Marshal renders cfg as .wfcheck.yaml content.
func Marshal(cfg *ProjectConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", FileName, err)
	}
	return data, nil
}

func boolPtr(b bool) *bool {
	return &b
}
