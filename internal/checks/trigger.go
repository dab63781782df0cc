package checks

import (
	"fmt"

	"github.com/spboyer/wfcheck/internal/workflow"
)

// FileError is returned by a fail-fast checker when a file could not be
// loaded at all.
type FileError struct {
	File   string
	Status workflow.Status
	Err    error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.File, e.Status, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// TriggerData is the Data payload of a trigger-key check.
type TriggerData struct {
	Status   CheckStatus
	Kind     string
	Triggers *workflow.TriggerSet
}

// GetStatus implements StatusHolder.
func (d *TriggerData) GetStatus() CheckStatus { return d.Status }

// TriggerKeyChecker verifies the trigger key is present as a string key and
// maps trigger names to their configuration. A key spelled as a plain YAML 1.1
// boolean (on:, yes:, ...) counts as missing, since older parsers turn it into
// true or false.
type TriggerKeyChecker struct {
	// Key is the trigger key to look up. Empty means workflow.DefaultTriggerKey.
	Key string
	// FailFast makes unreadable or unparsable files abort the run instead of
	// being reported as per-file failures.
	FailFast bool
}

var _ Checker = (*TriggerKeyChecker)(nil)

func (*TriggerKeyChecker) Name() string { return "trigger-key" }

func (c *TriggerKeyChecker) key() string {
	if c.Key == "" {
		return workflow.DefaultTriggerKey
	}
	return c.Key
}

func (c *TriggerKeyChecker) Banner() Banner {
	k := c.key()
	return Banner{
		Title: fmt.Sprintf("TEST 2: '%s' Key Preservation", k),
		Pass:  fmt.Sprintf("ALL FILES HAVE '%s' KEY", k),
		Fail:  fmt.Sprintf("SOME FILES MISSING '%s' KEY", k),
	}
}

func (c *TriggerKeyChecker) Check(out *workflow.Outcome) (*CheckResult, error) {
	k := c.key()
	r := &CheckResult{Name: c.Name(), File: out.Name}
	data := &TriggerData{Status: StatusFailed}
	r.Data = data

	switch out.Status {
	case workflow.StatusOK:
	case workflow.StatusShapeError:
		r.Summary = fmt.Sprintf("%s - Not a valid dict: %s", out.Name, out.Kind)
		return r, nil
	default:
		r.Summary = fmt.Sprintf("%s - Could not load: %v", out.Name, out.Err)
		if c.FailFast {
			return r, &FileError{File: out.Name, Status: out.Status, Err: out.Err}
		}
		return r, nil
	}

	entry, ok := out.Doc.Lookup(k)
	if !ok {
		r.Summary = fmt.Sprintf("%s - Missing '%s' key!", out.Name, k)
		for _, b := range out.Doc.BoolKeys() {
			r.Details = append(r.Details,
				fmt.Sprintf("Found boolean key %q on line %d; an unquoted '%s' was likely coerced by a YAML 1.1 parser", b.Key, b.Line, k))
		}
		return r, nil
	}

	if !entry.Style.Quoted() && yaml11Bools[entry.Key] {
		r.Summary = fmt.Sprintf("%s - Missing '%s' key!", out.Name, k)
		r.Details = []string{
			fmt.Sprintf("Key %s on line %d is unquoted; YAML 1.1 parsers read it as a boolean, write '%s': instead", entry.Key, entry.Line, entry.Key),
		}
		return r, nil
	}

	data.Kind = workflow.KindName(entry.Value)
	triggers, err := workflow.DecodeTriggers(entry.Value)
	if err != nil {
		r.Summary = fmt.Sprintf("%s - '%s' is not a dict: %s", out.Name, k, data.Kind)
		return r, nil
	}

	r.Passed = true
	r.Summary = fmt.Sprintf("%s - '%s' key present", out.Name, k)
	r.Details = []string{"Triggers: " + triggers.String()}
	data.Status = StatusOK
	data.Triggers = triggers
	return r, nil
}
