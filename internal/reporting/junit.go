package reporting

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spboyer/wfcheck/internal/checks"
)

// JUnit XML schema types

// JUnitTestSuites is the top-level container.
type JUnitTestSuites struct {
	XMLName    xml.Name         `xml:"testsuites"`
	Tests      int              `xml:"tests,attr"`
	Failures   int              `xml:"failures,attr"`
	Errors     int              `xml:"errors,attr"`
	TestSuites []JUnitTestSuite `xml:"testsuite"`
}

// JUnitTestSuite maps to one checker.
type JUnitTestSuite struct {
	XMLName    xml.Name        `xml:"testsuite"`
	Name       string          `xml:"name,attr"`
	Tests      int             `xml:"tests,attr"`
	Failures   int             `xml:"failures,attr"`
	Errors     int             `xml:"errors,attr"`
	Skipped    int             `xml:"skipped,attr"`
	Timestamp  string          `xml:"timestamp,attr"`
	Properties []JUnitProperty `xml:"properties>property,omitempty"`
	TestCases  []JUnitTestCase `xml:"testcase"`
}

// JUnitTestCase maps to one workflow file.
type JUnitTestCase struct {
	XMLName   xml.Name      `xml:"testcase"`
	Name      string        `xml:"name,attr"`
	Classname string        `xml:"classname,attr"`
	Failure   *JUnitFailure `xml:"failure,omitempty"`
	Skipped   *JUnitSkipped `xml:"skipped,omitempty"`
	SystemOut string        `xml:"system-out,omitempty"`
}

// JUnitFailure represents a failed check.
type JUnitFailure struct {
	Message string `xml:"message,attr"`
	Type    string `xml:"type,attr"`
	Body    string `xml:",chardata"`
}

// JUnitSkipped marks a check that did not apply.
type JUnitSkipped struct {
	Message string `xml:"message,attr,omitempty"`
}

// JUnitProperty is a key-value metadata entry.
type JUnitProperty struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

// ConvertToJUnit converts a report to JUnit XML form.
func ConvertToJUnit(report *checks.Report) *JUnitTestSuites {
	out := &JUnitTestSuites{}
	for _, s := range report.Sections {
		suite := JUnitTestSuite{
			Name:      s.Banner.Title,
			Tests:     len(s.Results),
			Timestamp: report.Timestamp.Format(time.RFC3339),
			Properties: []JUnitProperty{
				{Name: "checker", Value: s.Checker},
			},
		}
		if report.Root != "" {
			suite.Properties = append(suite.Properties, JUnitProperty{Name: "root", Value: report.Root})
		}

		for _, r := range s.Results {
			tc := JUnitTestCase{Name: r.File, Classname: s.Checker}
			switch {
			case !r.Passed:
				tc.Failure = &JUnitFailure{
					Message: r.Summary,
					Type:    "CheckFailure",
					Body:    strings.Join(r.Details, "\n"),
				}
				suite.Failures++
			case checks.StatusOf(r) == checks.StatusSkipped:
				tc.Skipped = &JUnitSkipped{Message: r.Summary}
				suite.Skipped++
			default:
				tc.SystemOut = strings.Join(append([]string{r.Summary}, r.Details...), "\n")
			}
			suite.TestCases = append(suite.TestCases, tc)
		}

		out.Tests += suite.Tests
		out.Failures += suite.Failures
		out.TestSuites = append(out.TestSuites, suite)
	}
	return out
}

// WriteJUnitXML writes JUnit XML to the specified file path, creating parent
// directories as needed.
func WriteJUnitXML(report *checks.Report, path string) error {
	suites := ConvertToJUnit(report)

	data, err := xml.MarshalIndent(suites, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JUnit XML: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	output := append([]byte(xml.Header), data...)
	return os.WriteFile(path, output, 0644)
}
