package reporting

import (
	"time"

	"github.com/spboyer/wfcheck/internal/checks"
	"github.com/spboyer/wfcheck/internal/workflow"
)

func newTestReport() *checks.Report {
	triggers := &workflow.TriggerSet{Triggers: []workflow.Trigger{
		{Name: "push", Kind: workflow.KindNull},
		{Name: "pull_request", Kind: workflow.KindMapping, Config: &workflow.TriggerConfig{Branches: []string{"main"}}},
	}}

	return &checks.Report{
		Root:      "/repo",
		Timestamp: time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
		Files:     []string{"/repo/.github/workflows/codeql.yml", "/repo/.github/workflows/lint.yml"},
		Sections: []*checks.Section{
			{
				Checker: "yaml-syntax",
				Banner:  (&checks.SyntaxChecker{}).Banner(),
				Results: []*checks.CheckResult{
					{Name: "yaml-syntax", File: "codeql.yml", Passed: true, Summary: "codeql.yml - Valid YAML", Data: &checks.StatusData{Status: checks.StatusOK}},
					{Name: "yaml-syntax", File: "lint.yml", Passed: false, Summary: "lint.yml - File not found", Data: &checks.StatusData{Status: checks.StatusFailed}},
				},
			},
			{
				Checker: "trigger-key",
				Banner:  (&checks.TriggerKeyChecker{}).Banner(),
				Results: []*checks.CheckResult{
					{
						Name: "trigger-key", File: "codeql.yml", Passed: true,
						Summary: "codeql.yml - 'on' key present",
						Details: []string{"Triggers: push, pull_request"},
						Data:    &checks.TriggerData{Status: checks.StatusOK, Kind: workflow.KindMapping, Triggers: triggers},
					},
					{
						Name: "trigger-key", File: "lint.yml", Passed: false,
						Summary: "lint.yml - Could not load: open lint.yml: no such file or directory",
						Data:    &checks.TriggerData{Status: checks.StatusFailed},
					},
				},
			},
		},
	}
}

func newPassingReport() *checks.Report {
	return &checks.Report{
		Timestamp: time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
		Files:     []string{"lint.yml"},
		Sections: []*checks.Section{
			{
				Checker: "trigger-key-quoting",
				Banner:  (&checks.QuotingChecker{}).Banner(),
				Results: []*checks.CheckResult{
					{
						Name: "trigger-key-quoting", File: "lint.yml", Passed: true,
						Summary: "lint.yml - 'on' key is unquoted on line 1",
						Details: []string{"YAML 1.1 parsers read a plain on as a boolean; write 'on': instead"},
						Data:    &checks.StatusData{Status: checks.StatusWarning},
					},
				},
			},
		},
	}
}
