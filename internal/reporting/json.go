package reporting

import (
	"encoding/json"
	"io"
	"time"

	"github.com/spboyer/wfcheck/internal/checks"
	"github.com/spboyer/wfcheck/internal/workflow"
)

// JSONReport is the machine-readable form of a checks.Report.
type JSONReport struct {
	Timestamp string        `json:"timestamp"`
	Root      string        `json:"root,omitempty"`
	Passed    bool          `json:"passed"`
	Sections  []JSONSection `json:"sections"`
}

// JSONSection holds one checker's results.
type JSONSection struct {
	Checker string       `json:"checker"`
	Title   string       `json:"title"`
	Passed  bool         `json:"passed"`
	Results []JSONResult `json:"results"`
}

// JSONResult is one file's result.
type JSONResult struct {
	File     string             `json:"file"`
	Passed   bool               `json:"passed"`
	Status   string             `json:"status"`
	Summary  string             `json:"summary"`
	Details  []string           `json:"details,omitempty"`
	Triggers []workflow.Trigger `json:"triggers,omitempty"`
}

// ToJSON converts a report into its JSON form.
func ToJSON(report *checks.Report) *JSONReport {
	out := &JSONReport{
		Timestamp: report.Timestamp.Format(time.RFC3339),
		Root:      report.Root,
		Passed:    report.Passed(),
		Sections:  []JSONSection{},
	}
	for _, s := range report.Sections {
		js := JSONSection{
			Checker: s.Checker,
			Title:   s.Banner.Title,
			Passed:  s.Passed(),
			Results: []JSONResult{},
		}
		for _, r := range s.Results {
			jr := JSONResult{
				File:    r.File,
				Passed:  r.Passed,
				Status:  string(checks.StatusOf(r)),
				Summary: r.Summary,
				Details: r.Details,
			}
			if td, ok := r.Data.(*checks.TriggerData); ok && td.Triggers != nil {
				jr.Triggers = td.Triggers.Triggers
			}
			js.Results = append(js.Results, jr)
		}
		out.Sections = append(out.Sections, js)
	}
	return out
}

// WriteJSON writes the report as indented JSON.
func WriteJSON(w io.Writer, report *checks.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ToJSON(report))
}
