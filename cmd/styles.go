package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			MarginTop(1).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

// field prints "label value" and skips blank values.
func field(cmd *cobra.Command, indent, label, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	cmd.Printf("%s%s %s\n", indent, labelStyle.Render(label+":"), valueStyle.Render(value))
}

func orElse(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func preview(s string, n int) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) <= n {
		return string(r)
	}
	return string(r[:n]) + "..."
}

func sectionFailed(cmd *cobra.Command, section string, err error) {
	cmd.Printf("%s %s\n", errorStyle.Render(section+":"), mutedStyle.Render(fmt.Sprint(err)))
}
