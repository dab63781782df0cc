package reporting

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spboyer/wfcheck/internal/checks"
)

const (
	maxNameWidth = 28
	minNameWidth = 10
	colGap       = "  "
)

// WriteSummaryTable prints a file-by-checker grid of glyphs.
func WriteSummaryTable(w io.Writer, report *checks.Report) error {
	if len(report.Sections) == 0 {
		return nil
	}

	files := fileOrder(report)

	nameWidth := cellWidth("File")
	for _, f := range files {
		if fw := cellWidth(f); fw > nameWidth {
			nameWidth = fw
		}
	}
	nameWidth = min(max(nameWidth, minNameWidth), maxNameWidth)

	colWidths := make([]int, len(report.Sections))
	totalWidth := nameWidth
	for i, s := range report.Sections {
		colWidths[i] = max(cellWidth(s.Checker), 4)
		totalWidth += len(colGap) + colWidths[i]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n", strings.Repeat("═", totalWidth))
	b.WriteString(" CHECK SUMMARY\n")
	fmt.Fprintf(&b, "%s\n\n", strings.Repeat("═", totalWidth))

	b.WriteString(padRight("File", nameWidth))
	for i, s := range report.Sections {
		b.WriteString(colGap + padRight(s.Checker, colWidths[i]))
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s\n", strings.Repeat("─", totalWidth))

	for _, f := range files {
		b.WriteString(padRight(runewidth.Truncate(f, nameWidth, "…"), nameWidth))
		for i, s := range report.Sections {
			glyph := "-"
			if r := resultFor(s, f); r != nil {
				glyph = Glyph(r)
			}
			b.WriteString(colGap + padRight(glyph, colWidths[i]))
		}
		b.WriteString("\n")
	}

	passed, total := 0, 0
	for _, s := range report.Sections {
		p, f := s.Counts()
		passed += p
		total += p + f
	}
	b.WriteString("\n")
	b.WriteString(printer.Sprintf("%d of %d checks passed\n", passed, total))

	_, err := io.WriteString(w, b.String())
	return err
}

func fileOrder(report *checks.Report) []string {
	seen := map[string]bool{}
	var files []string
	for _, s := range report.Sections {
		for _, r := range s.Results {
			if !seen[r.File] {
				seen[r.File] = true
				files = append(files, r.File)
			}
		}
	}
	return files
}

func resultFor(s *checks.Section, file string) *checks.CheckResult {
	for _, r := range s.Results {
		if r.File == file {
			return r
		}
	}
	return nil
}

// cellWidth is the terminal display width of s. An emoji presentation
// selector (U+FE0F) widens the narrow symbol before it to two columns, which
// runewidth does not account for.
func cellWidth(s string) int {
	w, prev := 0, 0
	for _, r := range s {
		if r == '\uFE0F' {
			if prev == 1 {
				w++
			}
			prev = 0
			continue
		}
		prev = runewidth.RuneWidth(r)
		w += prev
	}
	return w
}

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := cellWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}
