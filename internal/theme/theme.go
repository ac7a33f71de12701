package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Title             *lipgloss.Style
	TitleHint         *lipgloss.Style
	Item              *lipgloss.Style
	ItemDetail        *lipgloss.Style
	SelectedIndicator *lipgloss.Style
	SelectedItem      *lipgloss.Style
	ListFrame         *lipgloss.Style
	Create            *lipgloss.Style
	ActionIdle        *lipgloss.Style
	ActionAttach      *lipgloss.Style
	ActionRename      *lipgloss.Style
	ActionKill        *lipgloss.Style
	Input             *lipgloss.Style
	Error             *lipgloss.Style
	Help              *lipgloss.Style
	HelpKey           *lipgloss.Style
}

var defaultStyles = Styles{
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
	),
	TitleHint: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	ItemDetail: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	SelectedIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	ListFrame: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1),
	),
	Create: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("40")),
	),
	ActionIdle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
	),
	ActionAttach: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("51")),
	),
	ActionRename: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("220")),
	),
	ActionKill: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("196")),
	),
	Input: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Help: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	HelpKey: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
