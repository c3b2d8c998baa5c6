package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Bold(true)
	namedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	pathStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

// RenderTable formats environment choices as an aligned table for TTY
// output. Non-TTY callers should print plain paths instead.
func RenderTable(choices []EnvChoice) string {
	if len(choices) == 0 {
		return dimStyle.Render("No environments found") + "\n"
	}

	nameWidth := len("NAME")
	for _, c := range choices {
		if len(c.Name) > nameWidth {
			nameWidth = len(c.Name)
		}
	}

	var sb strings.Builder
	sb.WriteString(headerStyle.Render(fmt.Sprintf("%-*s  %-9s  %s", nameWidth, "NAME", "MATCH", "PATH")))
	sb.WriteString("\n")

	for _, c := range choices {
		match := "structure"
		nameStyle := pathStyle
		if c.Named {
			match = "name"
			nameStyle = namedStyle
		}

		sb.WriteString(nameStyle.Render(fmt.Sprintf("%-*s", nameWidth, c.Name)))
		sb.WriteString(dimStyle.Render(fmt.Sprintf("  %-9s  ", match)))
		sb.WriteString(pathStyle.Render(c.Path))
		if c.Active {
			sb.WriteString(activeStyle.Render(" (active)"))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
