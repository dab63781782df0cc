package checks

import (
	"fmt"

	"github.com/spboyer/wfcheck/internal/workflow"
)

// SyntaxChecker verifies a workflow file parses as YAML into a mapping.
type SyntaxChecker struct{}

var _ Checker = (*SyntaxChecker)(nil)

func (*SyntaxChecker) Name() string { return "yaml-syntax" }

func (*SyntaxChecker) Banner() Banner {
	return Banner{
		Title: "TEST 1: YAML Syntax Validation",
		Pass:  "ALL FILES VALID",
		Fail:  "SOME FILES INVALID",
	}
}

func (c *SyntaxChecker) Check(out *workflow.Outcome) (*CheckResult, error) {
	r := &CheckResult{Name: c.Name(), File: out.Name}

	switch out.Status {
	case workflow.StatusOK:
		r.Passed = true
		r.Summary = fmt.Sprintf("%s - Valid YAML", out.Name)
	case workflow.StatusShapeError:
		r.Summary = fmt.Sprintf("%s - Not a valid dict: %s", out.Name, out.Kind)
	case workflow.StatusParseError:
		r.Summary = fmt.Sprintf("%s - INVALID YAML: %v", out.Name, out.Err)
	case workflow.StatusNotFound:
		r.Summary = fmt.Sprintf("%s - File not found", out.Name)
	default:
		r.Summary = fmt.Sprintf("%s - Read error: %v", out.Name, out.Err)
	}

	status := StatusOK
	if !r.Passed {
		status = StatusFailed
	}
	r.Data = &StatusData{Status: status}
	return r, nil
}
