// Package checks provides the Checker interface and the workflow checkers that
// inspect a loaded workflow.Outcome.
package checks

import "github.com/spboyer/wfcheck/internal/workflow"

//go:generate go tool mockgen -source=checker.go -destination=mock_checker_test.go -package=checks

// CheckResult holds the outcome of a single check against a single file.
type CheckResult struct {
	// Name is the stable identifier of the checker that produced the result.
	Name string
	// File is the base name of the checked file.
	File string
	// Passed indicates whether the file met the checker's acceptance criteria.
	Passed bool
	// Summary is the one-line status printed after the pass/fail glyph.
	Summary string
	// Details provides optional supporting lines printed under the summary.
	Details []string
	// Data carries an optional checker-specific payload for structured consumers.
	Data any
}

// Banner holds the section title and closing lines a checker prints.
type Banner struct {
	Title string
	Pass  string
	Fail  string
	// Warn closes a section that passed with warnings. Empty means Pass.
	Warn string
}

// Checker runs one check against a loaded workflow file. A non-nil error is
// fatal: the run stops and no further files are checked.
type Checker interface {
	Name() string
	Banner() Banner
	Check(*workflow.Outcome) (*CheckResult, error)
}
