package checks

import (
	"fmt"

	"github.com/spboyer/wfcheck/internal/workflow"
)

// yaml11Bools are the plain scalars a YAML 1.1 parser resolves to a boolean.
var yaml11Bools = map[string]bool{
	"y": true, "Y": true, "yes": true, "Yes": true, "YES": true,
	"n": true, "N": true, "no": true, "No": true, "NO": true,
	"true": true, "True": true, "TRUE": true,
	"false": true, "False": true, "FALSE": true,
	"on": true, "On": true, "ON": true,
	"off": true, "Off": true, "OFF": true,
}

// QuotingChecker reports whether the trigger key is written so that a YAML 1.1
// parser would still read it as a string.
type QuotingChecker struct {
	Key string
	// Strict turns an unquoted boolean-like key into a failure.
	Strict bool
}

var _ Checker = (*QuotingChecker)(nil)

func (*QuotingChecker) Name() string { return "trigger-key-quoting" }

func (c *QuotingChecker) key() string {
	if c.Key == "" {
		return workflow.DefaultTriggerKey
	}
	return c.Key
}

func (c *QuotingChecker) Banner() Banner {
	return Banner{
		Title: "TEST 3: Trigger Key Quoting",
		Pass:  fmt.Sprintf("ALL '%s' KEYS SAFE FOR YAML 1.1 PARSERS", c.key()),
		Fail:  fmt.Sprintf("SOME '%s' KEYS UNQUOTED", c.key()),
		Warn:  fmt.Sprintf("SOME '%s' KEYS UNQUOTED", c.key()),
	}
}

func (c *QuotingChecker) Check(out *workflow.Outcome) (*CheckResult, error) {
	k := c.key()
	r := &CheckResult{Name: c.Name(), File: out.Name, Passed: true}

	if !out.OK() {
		r.Summary = fmt.Sprintf("%s - skipped (%s)", out.Name, out.Status)
		r.Data = &StatusData{Status: StatusSkipped}
		return r, nil
	}
	entry, ok := out.Doc.Lookup(k)
	if !ok {
		r.Summary = fmt.Sprintf("%s - skipped (no '%s' key)", out.Name, k)
		r.Data = &StatusData{Status: StatusSkipped}
		return r, nil
	}

	if entry.Style.Quoted() || !yaml11Bools[entry.Key] {
		r.Summary = fmt.Sprintf("%s - '%s' key is %s", out.Name, k, entry.Style)
		r.Data = &StatusData{Status: StatusOK}
		return r, nil
	}

	r.Summary = fmt.Sprintf("%s - '%s' key is unquoted on line %d", out.Name, k, entry.Line)
	r.Details = []string{fmt.Sprintf("YAML 1.1 parsers read a plain %s as a boolean; write '%s': instead", entry.Key, entry.Key)}
	if c.Strict {
		r.Passed = false
		r.Data = &StatusData{Status: StatusFailed}
	} else {
		r.Data = &StatusData{Status: StatusWarning}
	}
	return r, nil
}
