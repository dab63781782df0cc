package wizard

import (
	"testing"

	"github.com/spboyer/wfcheck/internal/projectconfig"
	"github.com/spboyer/wfcheck/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateConfig_Defaults(t *testing.T) {
	result, err := GenerateConfig(projectconfig.New())
	require.NoError(t, err)

	assert.Contains(t, result, `dir: ".github/workflows"`)
	assert.Contains(t, result, `- "codeql.yml"`)
	assert.Contains(t, result, `- "test-coverage.yml"`)
	assert.Contains(t, result, `key: "on"`)
	assert.Contains(t, result, "fail_fast: false")
	assert.Contains(t, result, "require_quoted: false")
	assert.Contains(t, result, "format: text")
	assert.NotContains(t, result, "junit:")
}

func TestGenerateConfig_PassesSchema(t *testing.T) {
	cfg := projectconfig.New()
	cfg.Output.JUnit = "results/wfcheck.xml"
	cfg.Output.Format = "json"

	result, err := GenerateConfig(cfg)
	require.NoError(t, err)
	assert.Contains(t, result, `junit: "results/wfcheck.xml"`)
	assert.Empty(t, validation.ValidateConfigBytes([]byte(result)))
}

func TestAnswers_Apply(t *testing.T) {
	cfg := projectconfig.New()
	a := &Answers{
		Files:         []string{"lint.yml", "codeql.yml"},
		ExtraFiles:    []string{"release.yml", "lint.yml"},
		Key:           "on",
		FailFast:      true,
		RequireQuoted: true,
	}
	require.NoError(t, a.Apply(cfg))

	assert.Equal(t, []string{"lint.yml", "codeql.yml", "release.yml"}, cfg.Workflows.Files)
	assert.Equal(t, "on", cfg.Trigger.Key)
	require.NotNil(t, cfg.Trigger.FailFast)
	assert.True(t, *cfg.Trigger.FailFast)
	assert.True(t, *cfg.Trigger.RequireQuoted)
}

func TestAnswers_ApplyEmptySelectionKeepsDefaults(t *testing.T) {
	cfg := projectconfig.New()
	require.NoError(t, (&Answers{}).Apply(cfg))
	assert.Len(t, cfg.Workflows.Files, 6)
	assert.Equal(t, "on", cfg.Trigger.Key)
}

func TestPreselect(t *testing.T) {
	got := preselect([]string{"a.yml", "b.yml", "c.yml"}, []string{"c.yml", "a.yml", "z.yml"})
	assert.Equal(t, []string{"a.yml", "c.yml"}, got)
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "empty", input: "", expected: nil},
		{name: "single", input: "release.yml", expected: []string{"release.yml"}},
		{name: "spaces and blanks", input: " a.yml , ,b.yml ", expected: []string{"a.yml", "b.yml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, splitAndTrim(tt.input))
		})
	}
}
