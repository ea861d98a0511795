package report

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"benchreport/internal/results"
)

// Now supplies the report timestamp. Tests replace it.
var Now = time.Now

// RenderMarkdown builds the Markdown report for rs.
func RenderMarkdown(rs results.ResultSet) string {
	var sb strings.Builder
	configs := rs.Configs()

	sb.WriteString("# Benchmark Results Report\n\n")
	fmt.Fprintf(&sb, "Generated: %s\n\n", Now().Format(time.UnixDate))

	for i, section := range MarkdownSections {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "## %s\n\n", section.Title)
		writeMarkdownTable(&sb, rs, configs, section.Columns)
	}

	return sb.String()
}

func writeMarkdownTable(sb *strings.Builder, rs results.ResultSet, configs []string, columns []Column) {
	header := []string{"Config"}
	for _, col := range columns {
		header = append(header, col.Label)
	}
	writeMarkdownRow(sb, header)

	sep := make([]string, len(header))
	for i, h := range header {
		sep[i] = strings.Repeat("-", len(h)+2)
	}
	sb.WriteString("|" + strings.Join(sep, "|") + "|\n")

	for _, config := range configs {
		cells := []string{config}
		for _, col := range columns {
			cells = append(cells, rs.Value(config, col.Test, col.Metric))
		}
		writeMarkdownRow(sb, cells)
	}
}

var cellEscaper = strings.NewReplacer("|", `\|`, "\r\n", "<br>", "\n", "<br>", "\r", "<br>")

func writeMarkdownRow(sb *strings.Builder, cells []string) {
	escaped := make([]string, len(cells))
	for i, c := range cells {
		escaped[i] = cellEscaper.Replace(c)
	}
	sb.WriteString("| " + strings.Join(escaped, " | ") + " |\n")
}

// WriteMarkdown renders the report to path, replacing any existing file, and
// writes a confirmation line to out.
func WriteMarkdown(out io.Writer, rs results.ResultSet, path string) error {
	if err := os.WriteFile(path, []byte(RenderMarkdown(rs)), 0644); err != nil {
		return fmt.Errorf("failed to write markdown report %s: %w", path, err)
	}
	slog.Debug("Wrote markdown report", "path", path)
	fmt.Fprintf(out, "%s Markdown report written: %s\n", Icons.Success, path)
	return nil
}
