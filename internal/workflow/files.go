package workflow

import "path/filepath"

// DefaultDir is where workflow files live, relative to the repository root.
const DefaultDir = ".github/workflows"

// DefaultFiles is the fixed set of workflow files checked when none are given.
var DefaultFiles = []string{
	"codeql.yml",
	"critical-checks.yml",
	"labeler.yml",
	"lint.yml",
	"pr-title-check.yml",
	"test-coverage.yml",
}

// ResolvePaths resolves a list of paths relative to a base directory.
// Absolute paths are returned unchanged, relative paths are resolved
// relative to the base directory.
func ResolvePaths(paths []string, baseDir string) []string {
	if len(paths) == 0 {
		return nil
	}

	resolved := make([]string, 0, len(paths))
	for _, path := range paths {
		if filepath.IsAbs(path) {
			resolved = append(resolved, path)
		} else {
			resolved = append(resolved, filepath.Join(baseDir, path))
		}
	}
	return resolved
}
