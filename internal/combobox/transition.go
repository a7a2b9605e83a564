package combobox

import "reflect"

// Event is a raw trigger forwarded by an adapter.
type Event struct {
	Type ActionType
	Text string // InputChange
	Item Item   // ItemMouseClick, ItemMouseEnter
}

// Env is the read-only context a transition is computed against.
type Env struct {
	// Visible is the currently rendered item list, in order.
	Visible []Item
	// ItemToString renders an item as input text.
	ItemToString func(Item) string
	// Equal locates an item among Visible. Nil means DefaultEqual.
	Equal EqualFunc
}

func (env Env) toString(item Item) string {
	if item == nil {
		return ""
	}
	if env.ItemToString == nil {
		return ""
	}
	return env.ItemToString(item)
}

// IndexOf returns the position of item among the visible items, or NoHighlight.
func (env Env) IndexOf(item Item) int {
	if item == nil {
		return NoHighlight
	}
	// identity first, then host equality
	for i, v := range env.Visible {
		if sameItem(v, item) {
			return i
		}
	}
	eq := env.Equal
	if eq == nil {
		eq = DefaultEqual
	}
	for i, v := range env.Visible {
		if eq(v, item) {
			return i
		}
	}
	return NoHighlight
}

// ItemAt returns the visible item at index i, or nil when out of range.
func (env Env) ItemAt(i int) Item {
	if i < 0 || i >= len(env.Visible) {
		return nil
	}
	return env.Visible[i]
}

// Transition computes the default action for ev. It returns false when the
// event is dropped by the open-only guard.
func Transition(s State, ev Event, env Env) (Action, bool) {
	if !ev.Type.Valid() {
		return Action{}, false
	}
	if ev.Type.RequiresOpen() && !s.IsOpen {
		return Action{}, false
	}

	var p Payload
	switch ev.Type {
	case MenuToggle, ButtonClick:
		p = openPayload(!s.IsOpen)
	case MenuOpen:
		p = openPayload(true)
	case MenuClose:
		p = openPayload(false)
	case InputChange:
		p.InputValue = Set(ev.Text)
		p.IsOpen = Set(true)
		p.SelectedItem = Set[Item](nil)
	case InputBlur, InputKeydownEnter:
		p = commitPayload(env.ItemAt(s.HighlightedIndex), env)
	case InputKeydownArrowDown:
		p.HighlightedIndex = Set(NextIndex(s.HighlightedIndex, len(env.Visible)))
		p.SelectedItem = Set[Item](nil)
	case InputKeydownArrowUp:
		p.HighlightedIndex = Set(PrevIndex(s.HighlightedIndex, len(env.Visible)))
		p.SelectedItem = Set[Item](nil)
	case InputKeydownEsc:
		p.IsOpen = Set(false)
		p.HighlightedIndex = Set(NoHighlight)
		p.SelectedItem = Set[Item](nil)
		p.InputValue = Set("")
	case ItemMouseClick:
		p = commitPayload(ev.Item, env)
	case ItemMouseEnter:
		p.HighlightedIndex = Set(env.IndexOf(ev.Item))
	case ItemMouseLeave:
		p.HighlightedIndex = Set(NoHighlight)
	}
	return Action{Type: ev.Type, Payload: p}, true
}

func openPayload(open bool) Payload {
	p := Payload{IsOpen: Set(open)}
	if !open {
		p.HighlightedIndex = Set(NoHighlight)
	}
	return p
}

// commitPayload closes the menu and makes item the selection. A nil item
// clears both the selection and the input.
func commitPayload(item Item, env Env) Payload {
	return Payload{
		IsOpen:           Set(false),
		HighlightedIndex: Set(NoHighlight),
		SelectedItem:     Set(item),
		InputValue:       Set(env.toString(item)),
	}
}

// NextIndex moves forward with wrap-around over count items.
func NextIndex(current, count int) int {
	if count <= 0 {
		return NoHighlight
	}
	if current < 0 {
		current = -1
	}
	return (current + 1) % count
}

// PrevIndex moves backward with wrap-around over count items. Starting with
// nothing highlighted lands on the first item.
func PrevIndex(current, count int) int {
	if count <= 0 {
		return NoHighlight
	}
	if current < 0 {
		current = 1
	}
	return ((current-1)%count + count) % count
}

func sameItem(a, b Item) bool {
	ta := reflect.TypeOf(a)
	if ta == nil || ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}
