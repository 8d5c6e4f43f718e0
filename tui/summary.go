package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SummaryRow is one label/value line in the end of run table.
type SummaryRow struct {
	Label string
	Value string
}

// RenderSummary renders rows as an aligned two column table.
func RenderSummary(rows []SummaryRow) string {
	labelWidth := 0
	valueWidth := 0
	for _, row := range rows {
		if len(row.Label) > labelWidth {
			labelWidth = len(row.Label)
		}
		if len(row.Value) > valueWidth {
			valueWidth = len(row.Value)
		}
	}

	hline := strings.Repeat("-", labelWidth+valueWidth+3)
	lines := []string{hline}

	for _, row := range rows {
		label := labelStyle.Render(fmt.Sprintf("%-*s", labelWidth, row.Label))
		value := valueStyle.Render(fmt.Sprintf("%-*s", valueWidth, row.Value))
		lines = append(lines, fmt.Sprintf("%s | %s", label, value))
	}

	lines = append(lines, hline)
	return strings.Join(lines, "\n")
}

var valueStyle = lipgloss.NewStyle().Foreground(ColorInk).Bold(true)
