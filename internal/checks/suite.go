package checks

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spboyer/wfcheck/internal/workflow"
)

// Section groups the results of one checker across every file.
type Section struct {
	Checker string
	Banner  Banner
	Results []*CheckResult
}

// Passed reports whether every result in the section passed.
func (s *Section) Passed() bool {
	for _, r := range s.Results {
		if !r.Passed {
			return false
		}
	}
	return true
}

// Warned reports whether any result in the section carries a warning.
func (s *Section) Warned() bool {
	for _, r := range s.Results {
		if StatusOf(r) == StatusWarning {
			return true
		}
	}
	return false
}

// Closing returns the glyph status and line that close the section.
func (s *Section) Closing() (CheckStatus, string) {
	switch {
	case !s.Passed():
		return StatusFailed, s.Banner.Fail
	case s.Warned() && s.Banner.Warn != "":
		return StatusWarning, s.Banner.Warn
	default:
		return StatusOK, s.Banner.Pass
	}
}

// Counts returns the number of passed and failed results.
func (s *Section) Counts() (passed, failed int) {
	for _, r := range s.Results {
		if r.Passed {
			passed++
		} else {
			failed++
		}
	}
	return passed, failed
}

// Report is the result of one Suite run.
type Report struct {
	Root      string
	Timestamp time.Time
	Files     []string
	Sections  []*Section
}

// Passed reports whether every section passed.
func (r *Report) Passed() bool {
	for _, s := range r.Sections {
		if !s.Passed() {
			return false
		}
	}
	return true
}

// Suite runs a list of checkers over a fixed list of files.
type Suite struct {
	Root     string
	Files    []string
	Checkers []Checker
	// Now stamps the report. Defaults to time.Now.
	Now func() time.Time
}

// Run loads every file once, then runs each checker over every file in order.
// A failing file never stops the run; a checker error or a cancelled context
// does, and the partial report is returned together with the error. A result
// returned alongside a checker error is kept in the report.
func (s *Suite) Run(ctx context.Context) (*Report, error) {
	now := s.Now
	if now == nil {
		now = time.Now
	}
	report := &Report{Root: s.Root, Timestamp: now().UTC(), Files: s.Files}

	if err := ctx.Err(); err != nil {
		return report, err
	}
	outcomes := workflow.LoadAll(s.Files)

	for _, c := range s.Checkers {
		section := &Section{Checker: c.Name(), Banner: c.Banner()}
		report.Sections = append(report.Sections, section)

		for _, out := range outcomes {
			if err := ctx.Err(); err != nil {
				return report, err
			}
			r, err := c.Check(out)
			if r != nil {
				slog.Debug("check finished", "checker", c.Name(), "file", out.Name, "passed", r.Passed)
				section.Results = append(section.Results, r)
			}
			if err != nil {
				return report, fmt.Errorf("%s: %w", c.Name(), err)
			}
		}
	}
	return report, nil
}
