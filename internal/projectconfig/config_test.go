package projectconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_ReturnsAllDefaults(t *testing.T) {
	cfg := New()

	assertEqual(t, "Workflows.Dir", ".github/workflows", cfg.Workflows.Dir)
	assertEqualInt(t, "len(Workflows.Files)", 6, len(cfg.Workflows.Files))
	assertEqual(t, "Workflows.Files[0]", "codeql.yml", cfg.Workflows.Files[0])
	assertEqual(t, "Workflows.Files[5]", "test-coverage.yml", cfg.Workflows.Files[5])

	assertEqual(t, "Trigger.Key", "on", cfg.Trigger.Key)
	assertBoolPtr(t, "Trigger.FailFast", false, cfg.Trigger.FailFast)
	assertBoolPtr(t, "Trigger.RequireQuoted", false, cfg.Trigger.RequireQuoted)

	assertEqual(t, "Output.Format", "text", cfg.Output.Format)
	assertEqual(t, "Output.JUnit", "", cfg.Output.JUnit)
	assertEqual(t, "Path", "", cfg.Path)
}

func TestNew_FilesAreACopy(t *testing.T) {
	cfg := New()
	cfg.Workflows.Files[0] = "changed.yml"
	assertEqual(t, "New().Workflows.Files[0]", "codeql.yml", New().Workflows.Files[0])
}

func TestLoad_FullConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, `
workflows:
  dir: ci/workflows
  files:
    - build.yml
    - release.yaml
trigger:
  key: triggers
  fail_fast: true
  require_quoted: true
output:
  format: markdown
  junit: out/junit.xml
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	assertEqual(t, "Workflows.Dir", "ci/workflows", cfg.Workflows.Dir)
	assertEqual(t, "Workflows.Files", "build.yml,release.yaml", strings.Join(cfg.Workflows.Files, ","))
	assertEqual(t, "Trigger.Key", "triggers", cfg.Trigger.Key)
	assertBoolPtr(t, "Trigger.FailFast", true, cfg.Trigger.FailFast)
	assertBoolPtr(t, "Trigger.RequireQuoted", true, cfg.Trigger.RequireQuoted)
	assertEqual(t, "Output.Format", "markdown", cfg.Output.Format)
	assertEqual(t, "Output.JUnit", "out/junit.xml", cfg.Output.JUnit)
	assertEqual(t, "Path", filepath.Join(dir, FileName), cfg.Path)
}

func TestLoad_PartialConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, `
trigger:
  fail_fast: true
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	assertBoolPtr(t, "Trigger.FailFast", true, cfg.Trigger.FailFast)
	assertBoolPtr(t, "Trigger.RequireQuoted", false, cfg.Trigger.RequireQuoted)
	assertEqual(t, "Trigger.Key", "on", cfg.Trigger.Key)
	assertEqualInt(t, "len(Workflows.Files)", 6, len(cfg.Workflows.Files))
}

func TestLoad_MissingFile_ReturnsDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	defaults := New()
	assertEqual(t, "Workflows.Dir", defaults.Workflows.Dir, cfg.Workflows.Dir)
	assertEqual(t, "Trigger.Key", defaults.Trigger.Key, cfg.Trigger.Key)
	assertEqual(t, "Output.Format", defaults.Output.Format, cfg.Output.Format)
	assertEqual(t, "Path", "", cfg.Path)
}

func TestLoad_InvalidYAML_ReturnsError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, `
workflows:
  files: [not valid yaml
    this is broken
`)

	_, err := Load(dir)
	if err == nil {
		t.Fatal("Load() should return error for invalid YAML")
	}
}

func TestLoad_SchemaViolation_ReturnsError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, `
output:
  format: xml
`)

	_, err := Load(dir)
	if err == nil {
		t.Fatal("Load() should reject an unknown output format")
	}
	if !strings.Contains(err.Error(), "/output/format") {
		t.Errorf("error %q should name the offending field", err)
	}
}

func TestLoad_WalksUpDirectories(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, FileName, `
trigger:
  key: found-it
`)

	child := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(child, 0o755); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(child)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	assertEqual(t, "Trigger.Key", "found-it", cfg.Trigger.Key)
	// Other defaults still populated
	assertEqual(t, "Workflows.Dir", ".github/workflows", cfg.Workflows.Dir)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("LoadFile() should fail for a missing explicit file")
	}
}

func TestWorkflowPaths(t *testing.T) {
	cfg := New()
	cfg.Workflows.Files = []string{"lint.yml"}

	root := filepath.FromSlash("/repo")
	paths := cfg.WorkflowPaths(root)
	assertEqualInt(t, "len(paths)", 1, len(paths))
	assertEqual(t, "paths[0]", filepath.Join(root, ".github", "workflows", "lint.yml"), paths[0])

	abs := t.TempDir()
	cfg.Workflows.Dir = abs
	assertEqual(t, "absolute dir", filepath.Join(abs, "lint.yml"), cfg.WorkflowPaths(root)[0])
}

func TestMarshal_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	data, err := Marshal(New())
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if !strings.Contains(string(data), `key: "on"`) {
		t.Errorf("trigger key should be quoted in output:\n%s", data)
	}
	writeFile(t, dir, FileName, string(data))

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	assertEqual(t, "Trigger.Key", "on", cfg.Trigger.Key)
	assertEqualInt(t, "len(Workflows.Files)", 6, len(cfg.Workflows.Files))
}

// --- test helpers ---

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func assertEqual(t *testing.T, field, want, got string) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %q, want %q", field, got, want)
	}
}

func assertEqualInt(t *testing.T, field string, want, got int) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %d, want %d", field, got, want)
	}
}

func assertBoolPtr(t *testing.T, field string, want bool, got *bool) {
	t.Helper()
	if got == nil {
		t.Errorf("%s is nil, want *%v", field, want)
		return
	}
	if *got != want {
		t.Errorf("%s = %v, want %v", field, *got, want)
	}
}
