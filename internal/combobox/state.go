package combobox

import "reflect"

// Item is an opaque, host supplied list entry. nil means "no item".
type Item any

// NoHighlight marks the absence of a highlighted item.
const NoHighlight = -1

// State is the canonical snapshot of the widget. The Controller replaces it
// wholesale on every handled action and never mutates a published value.
type State struct {
	SelectedItem     Item
	IsOpen           bool
	HighlightedIndex int
	InputValue       string

	// InputText is a preview written by reducer hooks. Hosts may render it
	// in place of InputValue; the input adapter always holds InputValue so
	// typing continues from the query.
	InputText string
}

// InitialState is closed, with no selection, no highlight and empty input.
func InitialState() State {
	return State{HighlightedIndex: NoHighlight}
}

// HasHighlight reports whether an item is highlighted.
func (s State) HasHighlight() bool {
	return s.HighlightedIndex != NoHighlight
}

// DisplayText is the text a host should render for the input: the preview
// when there is one, otherwise the query.
func (s State) DisplayText() string {
	if s.InputText != "" {
		return s.InputText
	}
	return s.InputValue
}

// Apply merges p over s and returns the new record. Closing the menu always
// drops the highlight.
func (s State) Apply(p Payload) State {
	next := s
	if p.IsOpen.Set {
		next.IsOpen = p.IsOpen.Value
	}
	if p.HighlightedIndex.Set {
		next.HighlightedIndex = p.HighlightedIndex.Value
	}
	if p.SelectedItem.Set {
		next.SelectedItem = p.SelectedItem.Value
	}
	if p.InputValue.Set {
		next.InputValue = p.InputValue.Value
	}
	if p.InputText.Set {
		next.InputText = p.InputText.Value
	}
	if !next.IsOpen || next.HighlightedIndex < 0 {
		next.HighlightedIndex = NoHighlight
	}
	return next
}

// EqualFunc compares two items for selection-change detection.
type EqualFunc func(a, b Item) bool

// DefaultEqual uses == for comparable values and reflect.DeepEqual otherwise.
func DefaultEqual(a, b Item) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta.Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}
