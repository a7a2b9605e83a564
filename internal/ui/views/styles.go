package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Input       lipgloss.Style
	Preview     lipgloss.Style
	Button      lipgloss.Style
	ButtonOpen  lipgloss.Style
	Row         lipgloss.Style
	Highlight   lipgloss.Style
	Selected    lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	StatusError lipgloss.Style
	Help        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Input:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Preview:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Italic(true),
		Button:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		ButtonOpen:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Row:         lipgloss.NewStyle().PaddingLeft(2),
		Highlight:   lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("226")).Background(lipgloss.Color("238")).Bold(true),
		Selected:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		Dim:         lipgloss.NewStyle().Faint(true),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Help:        lipgloss.NewStyle().Faint(true),
	}
}
