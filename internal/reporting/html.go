package reporting

import (
	"bytes"
	"fmt"
	"io"

	"github.com/spboyer/wfcheck/internal/checks"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

const htmlHeader = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Workflow Checks</title>
</head>
<body>
`

const htmlFooter = `</body>
</html>
`

// WriteHTML renders the markdown report to a standalone HTML page.
func WriteHTML(w io.Writer, report *checks.Report) error {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)

	var body bytes.Buffer
	if err := md.Convert([]byte(FormatMarkdown(report)), &body); err != nil {
		return fmt.Errorf("rendering HTML report: %w", err)
	}

	if _, err := io.WriteString(w, htmlHeader); err != nil {
		return err
	}
	if _, err := w.Write(body.Bytes()); err != nil {
		return err
	}
	_, err := io.WriteString(w, htmlFooter)
	return err
}
