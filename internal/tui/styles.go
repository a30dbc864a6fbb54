package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/prism/internal/editor"
)

type styles struct {
	title    lipgloss.Style
	section  lipgloss.Style
	focused  lipgloss.Style
	pane     lipgloss.Style
	active   lipgloss.Style
	muted    lipgloss.Style
	code     lipgloss.Style
	success  lipgloss.Style
	failure  lipgloss.Style
	backdrop string
}

func stylesFor(theme editor.Theme) styles {
	if theme == editor.ThemeLight {
		return styles{
			title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7c3aed")),
			section:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1d4ed8")),
			focused:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#7c3aed")).Padding(0, 1),
			pane:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#d1d5db")).Padding(0, 1),
			active:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#111827")),
			muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280")),
			code:     lipgloss.NewStyle().Foreground(lipgloss.Color("#111827")).Background(lipgloss.Color("#f3f4f6")),
			success:  lipgloss.NewStyle().Foreground(lipgloss.Color("#15803d")),
			failure:  lipgloss.NewStyle().Foreground(lipgloss.Color("#b91c1c")).Bold(true),
			backdrop: "#ffffff",
		}
	}

	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		section:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		focused:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1),
		pane:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		active:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")),
		muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		code:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		success:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		failure:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		backdrop: "#000000",
	}
}
