package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"

	"benchreport/internal/results"
)

// Preview renders the Markdown report for the terminal.
func Preview(w io.Writer, rs results.ResultSet) error {
	style := glamour.WithAutoStyle()
	if !colorEnabled {
		style = glamour.WithStandardStyle(styles.NoTTYStyle)
	}

	renderer, err := glamour.NewTermRenderer(
		style,
		glamour.WithWordWrap(reportWidth+20),
	)
	if err != nil {
		return fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	out, err := renderer.Render(RenderMarkdown(rs))
	if err != nil {
		return fmt.Errorf("failed to render markdown preview: %w", err)
	}

	_, err = fmt.Fprint(w, out)
	return err
}
