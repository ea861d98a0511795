package report

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const (
	reportWidth = 80
	metricWidth = 60
	columnWidth = 15
	labelWidth  = 25
)

var (
	bannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")). // Brand Color
			Bold(true)

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")). // Light purple
			Bold(true)

	ruleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // Dim gray

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // Orange
)

var colorEnabled = true

// SetColor toggles ANSI styling for every reporter.
func SetColor(enabled bool) {
	colorEnabled = enabled
	if !enabled {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.EnvColorProfile())
}

func rule(ch string, width int) string {
	return ruleStyle.Render(strings.Repeat(ch, width))
}
