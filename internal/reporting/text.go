// Package reporting renders a checks.Report in the formats wfcheck supports.
package reporting

import (
	"fmt"
	"io"
	"strings"

	"github.com/spboyer/wfcheck/internal/checks"
)

const bannerWidth = 60

// Glyphs printed before each result line.
const (
	GlyphPass    = "✅"
	GlyphFail    = "❌"
	GlyphWarning = "⚠️"
	GlyphSkipped = "➖"
)

// Glyph returns the glyph for a result.
func Glyph(r *checks.CheckResult) string {
	switch checks.StatusOf(r) {
	case checks.StatusWarning:
		return GlyphWarning
	case checks.StatusSkipped:
		return GlyphSkipped
	}
	if r.Passed {
		return GlyphPass
	}
	return GlyphFail
}

func statusGlyph(s checks.CheckStatus) string {
	switch s {
	case checks.StatusFailed:
		return GlyphFail
	case checks.StatusWarning:
		return GlyphWarning
	case checks.StatusSkipped:
		return GlyphSkipped
	default:
		return GlyphPass
	}
}

// WriteText writes the banner-style report: one block per section with a
// status line per file and a closing pass/fail line.
func WriteText(w io.Writer, report *checks.Report) error {
	rule := strings.Repeat("=", bannerWidth)
	var b strings.Builder

	for i, s := range report.Sections {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s\n%s\n%s\n\n", rule, s.Banner.Title, rule)

		for _, r := range s.Results {
			fmt.Fprintf(&b, "%s %s\n", Glyph(r), r.Summary)
			for _, d := range r.Details {
				fmt.Fprintf(&b, "   %s\n", d)
			}
		}

		fmt.Fprintf(&b, "\n%s\n", rule)
		status, line := s.Closing()
		fmt.Fprintf(&b, "%s %s\n", statusGlyph(status), line)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
