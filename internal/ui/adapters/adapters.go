// Package adapters binds bubbles and plain view state to the combobox
// controller's adapter interfaces.
package adapters

import (
	"github.com/charmbracelet/bubbles/textinput"

	"combobox/internal/combobox"
)

// Prompts shown in front of the input
const (
	PromptOpen   = "▾ "
	PromptClosed = "▸ "
)

// TextInput drives a bubbles textinput from controller pushes.
type TextInput struct {
	model    *textinput.Model
	expanded bool
}

// NewTextInput wraps ti. The caller keeps ownership of the model.
func NewTextInput(ti *textinput.Model) *TextInput {
	a := &TextInput{model: ti}
	a.SetExpanded(false)
	return a
}

func (a *TextInput) SetExpanded(expanded bool) {
	a.expanded = expanded
	if expanded {
		a.model.Prompt = PromptOpen
	} else {
		a.model.Prompt = PromptClosed
	}
}

// SetValue replaces the text and parks the cursor at the end. Pushing the
// text the input already holds leaves the cursor alone.
func (a *TextInput) SetValue(value string) {
	if a.model.Value() == value {
		return
	}
	a.model.SetValue(value)
	a.model.CursorEnd()
}

func (a *TextInput) Expanded() bool {
	return a.expanded
}

// Button is the toggle shown next to the input.
type Button struct {
	expanded bool
	label    string
}

func NewButton() *Button {
	return &Button{label: combobox.ButtonLabel(false)}
}

func (b *Button) SetExpanded(expanded bool) { b.expanded = expanded }
func (b *Button) SetLabel(label string)     { b.label = label }
func (b *Button) Expanded() bool            { return b.expanded }
func (b *Button) Label() string             { return b.label }

// Row is one option of the list. It stays registered for the life of the
// model; the controller decides whether it is visible.
type Row struct {
	item        combobox.Item
	highlighted bool
	selected    bool
}

func NewRow(item combobox.Item) *Row {
	return &Row{item: item}
}

func (r *Row) Value() combobox.Item            { return r.item }
func (r *Row) SetHighlighted(highlighted bool) { r.highlighted = highlighted }
func (r *Row) SetSelected(selected bool)       { r.selected = selected }
func (r *Row) Highlighted() bool               { return r.highlighted }
func (r *Row) Selected() bool                  { return r.selected }

// Interface checks
var (
	_ combobox.InputAdapter  = (*TextInput)(nil)
	_ combobox.ButtonAdapter = (*Button)(nil)
	_ combobox.ItemAdapter   = (*Row)(nil)
	_ combobox.Highlightable = (*Row)(nil)
	_ combobox.Selectable    = (*Row)(nil)
)
