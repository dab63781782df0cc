package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spboyer/wfcheck/internal/workflow"
	"github.com/stretchr/testify/require"
)

const goodWorkflow = `name: CI
'on':
  push:
    branches: [main]
  pull_request:
jobs:
  build:
    runs-on: ubuntu-latest
`

// newRepo creates a repository with every default workflow file set to
// goodWorkflow, then applies overrides. An empty override removes the file.
func newRepo(t *testing.T, overrides map[string]string) string {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, workflow.DefaultDir)
	require.NoError(t, os.MkdirAll(dir, 0o755))

	for _, name := range workflow.DefaultFiles {
		content, ok := overrides[name]
		if !ok {
			content = goodWorkflow
		}
		if content == "" {
			continue
		}
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return root
}

// runCLI executes the root command with args and returns its stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(bytes.NewReader(nil))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}
