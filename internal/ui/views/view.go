package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Row is one rendered option
type Row struct {
	Label       string
	Highlighted bool
	Selected    bool
}

// ViewState is everything the renderer needs for one frame
type ViewState struct {
	Title       string
	Input       string // rendered textinput, prompt included
	Prompt      string
	Preview     string // shown instead of Input while set; typing still edits Input
	ButtonLabel string
	Dropdown    bool // no input line, the button carries the selection
	Open        bool
	Rows        []Row
	Offset      int // index of the first rendered row
	MaxVisible  int
	Status      string
	Error       string
	Help        string
}

// Layout records where interactive parts ended up on screen. Lines are
// zero based from the top of the view.
type Layout struct {
	InputLine int
	ButtonX   int // first column of the button on InputLine
	ListTop   int
	ListRows  int
	Offset    int
}

// RowAt maps a screen line to a row index, or -1.
func (l Layout) RowAt(y int) int {
	if y < l.ListTop || y >= l.ListTop+l.ListRows {
		return -1
	}
	return l.Offset + y - l.ListTop
}

// OnButton reports whether (x, y) hits the toggle button.
func (l Layout) OnButton(x, y int) bool {
	return y == l.InputLine && x >= l.ButtonX
}

// Renderer turns a ViewState into a string
type Renderer struct {
	styles *Styles
}

func NewRenderer(styles *Styles) *Renderer {
	if styles == nil {
		styles = NewStyles()
	}
	return &Renderer{styles: styles}
}

// Render draws the view and reports its layout.
func (r *Renderer) Render(s ViewState) (string, Layout) {
	var b strings.Builder
	var layout Layout
	line := 0

	if s.Title != "" {
		b.WriteString(r.styles.Title.Render(s.Title))
		b.WriteString("\n")
		line++
	}

	buttonStyle := r.styles.Button
	if s.Open {
		buttonStyle = r.styles.ButtonOpen
	}
	layout.InputLine = line
	if s.Dropdown {
		marker := "▸"
		if s.Open {
			marker = "▾"
		}
		b.WriteString(buttonStyle.Render("[" + s.ButtonLabel + " " + marker + "]"))
	} else {
		input := r.styles.Input.Render(s.Input)
		if s.Preview != "" {
			input = r.styles.Input.Render(s.Prompt) + r.styles.Preview.Render(s.Preview)
		}
		input += " "
		layout.ButtonX = lipgloss.Width(input)
		b.WriteString(input)
		b.WriteString(buttonStyle.Render("[" + s.ButtonLabel + "]"))
	}
	b.WriteString("\n")
	line++

	if s.Open {
		layout.ListTop = line
		layout.Offset = s.Offset
		rows := visibleWindow(s.Rows, s.Offset, s.MaxVisible)
		if len(rows) == 0 {
			b.WriteString(r.styles.Dim.Render("  no matches"))
			b.WriteString("\n")
			line++
		}
		for _, row := range rows {
			b.WriteString(r.renderRow(row))
			b.WriteString("\n")
			line++
		}
		layout.ListRows = len(rows)
		if hidden := len(s.Rows) - s.Offset - len(rows); hidden > 0 {
			b.WriteString(r.styles.Dim.Render(fmt.Sprintf("  … %d more", hidden)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if s.Error != "" {
		b.WriteString(r.styles.StatusError.Render(s.Error))
	} else {
		b.WriteString(r.styles.Status.Render(s.Status))
	}
	if s.Help != "" {
		b.WriteString("\n")
		b.WriteString(r.styles.Help.Render(s.Help))
	}

	return b.String(), layout
}

func (r *Renderer) renderRow(row Row) string {
	label := row.Label
	if row.Selected {
		label = r.styles.Selected.Render("✓ " + label)
	} else {
		label = "  " + label
	}
	if row.Highlighted {
		return r.styles.Highlight.Render(label)
	}
	return r.styles.Row.Render(label)
}

// ScrollOffset keeps highlighted inside a window of max rows starting at
// offset and returns the adjusted offset.
func ScrollOffset(offset, highlighted, total, max int) int {
	if max <= 0 || total <= max {
		return 0
	}
	if highlighted >= 0 {
		if highlighted < offset {
			offset = highlighted
		} else if highlighted >= offset+max {
			offset = highlighted - max + 1
		}
	}
	if offset > total-max {
		offset = total - max
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

func visibleWindow(rows []Row, offset, max int) []Row {
	if offset < 0 || offset > len(rows) {
		offset = 0
	}
	end := len(rows)
	if max > 0 && offset+max < end {
		end = offset + max
	}
	return rows[offset:end]
}
