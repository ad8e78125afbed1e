package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tuncdemir/rutin/internal/models"
)

// Styles holds the theme-dependent lipgloss styles for the whole UI.
type Styles struct {
	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style
	Title       lipgloss.Style
	Selected    lipgloss.Style
	Done        lipgloss.Style
	Muted       lipgloss.Style
	Danger      lipgloss.Style
	Note        lipgloss.Style
	Doc         lipgloss.Style
}

func newStyles(theme models.Theme) Styles {
	accent := lipgloss.Color("205")
	muted := lipgloss.Color("240")
	tabBg := lipgloss.Color("236")
	if theme == models.ThemeLight {
		accent = lipgloss.Color("161")
		muted = lipgloss.Color("245")
		tabBg = lipgloss.Color("254")
	}

	return Styles{
		ActiveTab: lipgloss.NewStyle().
			Foreground(accent).
			Background(tabBg).
			Padding(0, 1).
			Bold(true),
		InactiveTab: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 1),
		Title: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),
		Selected: lipgloss.NewStyle().
			Foreground(accent),
		Done: lipgloss.NewStyle().
			Foreground(lipgloss.Color("78")),
		Muted: lipgloss.NewStyle().
			Foreground(muted),
		Danger: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
		Note: lipgloss.NewStyle().
			Foreground(muted).
			Italic(true),
		Doc: lipgloss.NewStyle().Padding(1, 2),
	}
}
