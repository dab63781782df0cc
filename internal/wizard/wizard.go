// Package wizard collects .wfcheck.yaml settings interactively and renders
// the resulting configuration file.
package wizard

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/template"

	"github.com/charmbracelet/huh"
	"github.com/spboyer/wfcheck/internal/projectconfig"
	"golang.org/x/term"
)

// Answers holds all fields collected during the interactive wizard.
type Answers struct {
	Files         []string
	ExtraFiles    []string
	Key           string
	FailFast      bool
	RequireQuoted bool
}

const configTemplate = `# wfcheck configuration. Workflow files are only read, never modified.
workflows:
  dir: {{ quote .Workflows.Dir }}
  files:
{{- range .Workflows.Files }}
    - {{ quote . }}
{{- end }}
trigger:
  # Keep the key quoted here too; a bare on is a boolean to YAML 1.1 parsers.
  key: {{ quote .Trigger.Key }}
  fail_fast: {{ deref .Trigger.FailFast }}
  require_quoted: {{ deref .Trigger.RequireQuoted }}
output:
  format: {{ .Output.Format }}
{{- if .Output.JUnit }}
  junit: {{ quote .Output.JUnit }}
{{- end }}
`

// RunConfigWizard runs an interactive huh form. discovered lists the workflow
// files found on disk; the ones in defaults are preselected.
func RunConfigWizard(in io.Reader, out io.Writer, discovered []string, defaults *projectconfig.ProjectConfig) (*Answers, error) {
	var (
		selected      = preselect(discovered, defaults.Workflows.Files)
		extraRaw      string
		key           = defaults.Trigger.Key
		failFast      = defaults.Trigger.FailFast != nil && *defaults.Trigger.FailFast
		requireQuoted = defaults.Trigger.RequireQuoted != nil && *defaults.Trigger.RequireQuoted
	)

	fields := []huh.Field{}
	if len(discovered) > 0 {
		fields = append(fields, huh.NewMultiSelect[string]().
			Title("Workflow files").
			Description("Files to check on every run").
			Options(huh.NewOptions(discovered...)...).
			Value(&selected))
	}
	fields = append(fields,
		huh.NewInput().
			Title("Additional files").
			Description("Comma-separated workflow files not listed above").
			Placeholder("release.yml, nightly.yml").
			Value(&extraRaw),
		huh.NewInput().
			Title("Trigger key").
			Description("Top-level key that lists workflow triggers").
			Value(&key).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("trigger key is required")
				}
				return nil
			}),
		huh.NewConfirm().
			Title("Stop at the first unreadable file in the trigger check?").
			Value(&failFast),
		huh.NewConfirm().
			Title("Fail when the trigger key is unquoted?").
			Value(&requireQuoted),
	)

	form := huh.NewForm(huh.NewGroup(fields...)).
		WithInput(in).
		WithOutput(out)

	// Use accessible mode for non-TTY input (e.g., tests, piped input).
	if f, ok := in.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		form = form.WithAccessible(true)
	}

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("wizard failed: %w", err)
	}

	return &Answers{
		Files:         selected,
		ExtraFiles:    splitAndTrim(extraRaw),
		Key:           strings.TrimSpace(key),
		FailFast:      failFast,
		RequireQuoted: requireQuoted,
	}, nil
}

// Apply copies the answers onto cfg. An empty file selection keeps cfg's files.
func (a *Answers) Apply(cfg *projectconfig.ProjectConfig) error {
	files := append(append([]string(nil), a.Files...), a.ExtraFiles...)
	if len(files) > 0 {
		cfg.Workflows.Files = dedupe(files)
	}
	if a.Key != "" {
		cfg.Trigger.Key = a.Key
	}
	cfg.Trigger.FailFast = &a.FailFast
	cfg.Trigger.RequireQuoted = &a.RequireQuoted
	return nil
}

// GenerateConfig renders a commented .wfcheck.yaml from cfg.
func GenerateConfig(cfg *projectconfig.ProjectConfig) (string, error) {
	tmpl, err := template.New("config").Funcs(template.FuncMap{
		"quote": strconv.Quote,
		"deref": func(b *bool) bool { return b != nil && *b },
	}).Parse(configTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, cfg); err != nil {
		return "", fmt.Errorf("failed to render template: %w", err)
	}
	return buf.String(), nil
}

func preselect(discovered, wanted []string) []string {
	want := make(map[string]bool, len(wanted))
	for _, w := range wanted {
		want[w] = true
	}
	var out []string
	for _, d := range discovered {
		if want[d] {
			out = append(out, d)
		}
	}
	return out
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
