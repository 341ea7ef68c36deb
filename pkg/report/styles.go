// pkg/report/styles.go
package report

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
)

var (
	headingColor = color.New(color.FgCyan, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	mutedColor   = color.New(color.FgHiBlack)

	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("86")).
			Padding(0, 2)
)
