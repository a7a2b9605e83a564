package ui

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"combobox/internal/ui/input"
)

// Glamour renderers are expensive to build, keep one per wrap width
var markdownRenderers sync.Map // map[int]*glamour.TermRenderer

func markdownRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := markdownRenderers.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	markdownRenderers.Store(width, renderer)
	return renderer, nil
}

// renderMarkdown renders md for the terminal, falling back to the raw text.
func renderMarkdown(md string, width int) string {
	renderer, err := markdownRenderer(width)
	if err == nil {
		out, err := renderer.Render(md)
		if err == nil {
			return strings.TrimSpace(out)
		}
		slog.Debug("markdown render failed", "error", err)
	}
	return md
}

// HelpRenderer builds the text shown in the help pager
type HelpRenderer struct {
	description string // markdown, from the config
	width       int

	titleStyle   lipgloss.Style
	sectionStyle lipgloss.Style
	keyStyle     lipgloss.Style
	descStyle    lipgloss.Style
	dimStyle     lipgloss.Style
}

// NewHelpRenderer creates a help renderer that opens with description.
func NewHelpRenderer(description string) *HelpRenderer {
	return &HelpRenderer{
		description:  description,
		width:        80,
		titleStyle:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		sectionStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		keyStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		descStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		dimStyle:     lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")),
	}
}

// SetWidth sets the wrap width for the description
func (r *HelpRenderer) SetWidth(width int) {
	if width > 0 {
		r.width = width
	}
}

// Render lists every binding followed by the most recent transitions,
// newest last.
func (r *HelpRenderer) Render(keys input.KeyMap, history []string) string {
	var help strings.Builder

	help.WriteString(r.titleStyle.Render("Combobox Help"))
	help.WriteString("\n\n")

	if strings.TrimSpace(r.description) != "" {
		help.WriteString(renderMarkdown(r.description, r.width))
		help.WriteString("\n\n")
	}

	help.WriteString(r.sectionStyle.Render("Keyboard"))
	help.WriteString("\n")
	bindings := []key.Binding{keys.Down, keys.Up, keys.Enter, keys.Escape, keys.Toggle, keys.Blur, keys.Help, keys.Quit}
	width := 0
	for _, b := range bindings {
		if w := len(b.Help().Key); w > width {
			width = w
		}
	}
	for _, b := range bindings {
		h := b.Help()
		help.WriteString(fmt.Sprintf("  %s  %s\n", r.keyStyle.Render(fmt.Sprintf("%-*s", width, h.Key)), r.descStyle.Render(h.Desc)))
	}
	help.WriteString(r.dimStyle.Render("  Any other key is typed into the input and filters the list."))
	help.WriteString("\n\n")

	help.WriteString(r.sectionStyle.Render("Mouse"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s  %s\n", r.keyStyle.Render("hover"), r.descStyle.Render("Highlight an item")))
	help.WriteString(fmt.Sprintf("  %s  %s\n", r.keyStyle.Render("click"), r.descStyle.Render("Select an item, or toggle the menu on the button")))
	help.WriteString("\n")

	help.WriteString(r.sectionStyle.Render("Recent transitions"))
	help.WriteString("\n")
	if len(history) == 0 {
		help.WriteString(r.dimStyle.Render("  none yet"))
		help.WriteString("\n")
	}
	for _, line := range history {
		help.WriteString("  ")
		help.WriteString(line)
		help.WriteString("\n")
	}

	return help.String()
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// let ov leave the alternate screen before bubbletea takes it back
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	// ov must not print the document on exit, it would land under the UI
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
