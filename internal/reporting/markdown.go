package reporting

import (
	"fmt"
	"io"
	"strings"

	"github.com/spboyer/wfcheck/internal/checks"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatMarkdown renders the report as GitHub-flavored markdown, suitable for
// a job step summary or a PR comment.
func FormatMarkdown(report *checks.Report) string {
	var b strings.Builder

	b.WriteString("## Workflow Checks\n\n")

	statusIcon := "✅ Passed"
	if !report.Passed() {
		statusIcon = "❌ Failed"
	}
	total, failed := 0, 0
	for _, s := range report.Sections {
		p, f := s.Counts()
		total += p + f
		failed += f
	}
	b.WriteString(printer.Sprintf("**Status:** %s | **Files:** %d | **Checks:** %d total, %d failed\n\n",
		statusIcon, len(report.Files), total, failed))

	for _, s := range report.Sections {
		fmt.Fprintf(&b, "### %s\n\n", s.Banner.Title)
		b.WriteString("| File | Status | Result |\n")
		b.WriteString("|------|--------|--------|\n")
		for _, r := range s.Results {
			result := r.Summary
			if len(r.Details) > 0 {
				result += "<br>" + strings.Join(r.Details, "<br>")
			}
			fmt.Fprintf(&b, "| %s | %s | %s |\n", escapeCell(r.File), Glyph(r), escapeCell(result))
		}
		b.WriteString("\n")
		status, line := s.Closing()
		fmt.Fprintf(&b, "%s **%s**\n\n", statusGlyph(status), line)
	}
	return b.String()
}

// WriteMarkdown writes FormatMarkdown(report) to w.
func WriteMarkdown(w io.Writer, report *checks.Report) error {
	_, err := io.WriteString(w, FormatMarkdown(report))
	return err
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
