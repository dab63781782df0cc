package checks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spboyer/wfcheck/internal/workflow"
	"github.com/stretchr/testify/require"
)

func writeWorkflow(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	return p
}

func loadContent(t *testing.T, name, content string) *workflow.Outcome {
	t.Helper()
	return workflow.Load(writeWorkflow(t, t.TempDir(), name, content))
}

func missingOutcome(t *testing.T, name string) *workflow.Outcome {
	t.Helper()
	return workflow.Load(filepath.Join(t.TempDir(), name))
}
