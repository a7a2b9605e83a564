package combobox

// InputAdapter is the text field bound to the combobox.
type InputAdapter interface {
	SetExpanded(expanded bool)
	SetValue(value string)
}

// ButtonAdapter is the optional toggle button.
type ButtonAdapter interface {
	SetExpanded(expanded bool)
	SetLabel(label string)
}

// ItemAdapter is one rendered option.
type ItemAdapter interface {
	Value() Item
}

// Highlightable items are told when they become the active option.
type Highlightable interface {
	SetHighlighted(highlighted bool)
}

// Selectable items are told when they hold the committed selection.
type Selectable interface {
	SetSelected(selected bool)
}

// Button labels pushed after every dispatch.
const (
	LabelOpenMenu  = "open menu"
	LabelCloseMenu = "close menu"
)

// ButtonLabel returns the accessible label for the toggle button.
func ButtonLabel(open bool) string {
	if open {
		return LabelCloseMenu
	}
	return LabelOpenMenu
}

// itemRegistry keeps item adapters in registration order.
type itemRegistry struct {
	nextID  int
	entries []itemEntry
}

type itemEntry struct {
	id      int
	adapter ItemAdapter
}

func (r *itemRegistry) add(a ItemAdapter) int {
	r.nextID++
	r.entries = append(r.entries, itemEntry{id: r.nextID, adapter: a})
	return r.nextID
}

func (r *itemRegistry) remove(id int) {
	for i, e := range r.entries {
		if e.id == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return
		}
	}
}

func (r *itemRegistry) values() []Item {
	if len(r.entries) == 0 {
		return nil
	}
	items := make([]Item, len(r.entries))
	for i, e := range r.entries {
		items[i] = e.adapter.Value()
	}
	return items
}

func (r *itemRegistry) adapters() []ItemAdapter {
	out := make([]ItemAdapter, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.adapter
	}
	return out
}
