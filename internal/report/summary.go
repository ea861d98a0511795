package report

import (
	"fmt"
	"io"
	"strings"

	"benchreport/internal/results"
)

// PrintSummary writes one fixed-width table per console section. Cells that
// are absent from rs are rendered as the placeholder.
func PrintSummary(w io.Writer, rs results.ResultSet) {
	configs := rs.Configs()

	fmt.Fprintf(w, "\n%s\n", rule("=", reportWidth))
	fmt.Fprintln(w, bannerStyle.Render("BENCHMARK SUMMARY"))
	fmt.Fprintf(w, "%s\n\n", rule("=", reportWidth))

	for _, section := range ConsoleSections {
		printSection(w, rs, configs, section)
	}

	fmt.Fprintf(w, "\n%s\n\n", rule("=", reportWidth))
}

func printSection(w io.Writer, rs results.ResultSet, configs []string, section Section) {
	fmt.Fprintf(w, "\n%s\n", sectionStyle.Render(section.Icon+" "+section.Title))
	fmt.Fprintln(w, rule("-", reportWidth))

	header := []string{"Config"}
	for _, col := range section.Columns {
		header = append(header, col.Label)
	}
	fmt.Fprintln(w, padRow(header))
	fmt.Fprintln(w, rule("-", reportWidth))

	for _, config := range configs {
		cells := []string{config}
		for _, col := range section.Columns {
			cells = append(cells, rs.Value(config, col.Test, col.Metric))
		}
		fmt.Fprintln(w, padRow(cells))
	}
}

func padRow(cells []string) string {
	padded := make([]string, len(cells))
	for i, c := range cells {
		padded[i] = fmt.Sprintf("%-*s", columnWidth, c)
	}
	return strings.Join(padded, " ")
}
