package combobox

import (
	"fmt"
	"strings"
)

// ActionType names one interaction trigger. The set is closed.
type ActionType int

const (
	MenuToggle ActionType = iota
	MenuOpen
	MenuClose
	ButtonClick
	InputBlur
	InputChange
	InputKeydownArrowDown
	InputKeydownArrowUp
	InputKeydownEnter
	InputKeydownEsc
	ItemMouseClick
	ItemMouseEnter
	ItemMouseLeave

	actionTypeCount
)

var actionNames = [actionTypeCount]string{
	MenuToggle:            "MenuToggle",
	MenuOpen:              "MenuOpen",
	MenuClose:             "MenuClose",
	ButtonClick:           "ButtonClick",
	InputBlur:             "InputBlur",
	InputChange:           "InputChange",
	InputKeydownArrowDown: "InputKeydownArrowDown",
	InputKeydownArrowUp:   "InputKeydownArrowUp",
	InputKeydownEnter:     "InputKeydownEnter",
	InputKeydownEsc:       "InputKeydownEsc",
	ItemMouseClick:        "ItemMouseClick",
	ItemMouseEnter:        "ItemMouseEnter",
	ItemMouseLeave:        "ItemMouseLeave",
}

func (t ActionType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("ActionType(%d)", int(t))
	}
	return actionNames[t]
}

// Valid reports whether t is part of the catalog.
func (t ActionType) Valid() bool {
	return t >= 0 && t < actionTypeCount
}

// RequiresOpen reports whether the action is dropped while the menu is closed.
func (t ActionType) RequiresOpen() bool {
	switch t {
	case InputBlur, InputKeydownArrowDown, InputKeydownArrowUp, InputKeydownEnter,
		InputKeydownEsc, ItemMouseClick, ItemMouseEnter, ItemMouseLeave:
		return true
	default:
		return false
	}
}

// ActionTypes returns the whole catalog in declaration order.
func ActionTypes() []ActionType {
	types := make([]ActionType, 0, actionTypeCount)
	for t := ActionType(0); t < actionTypeCount; t++ {
		types = append(types, t)
	}
	return types
}

// ParseActionType resolves a catalog name, case-insensitively.
func ParseActionType(name string) (ActionType, bool) {
	for t, n := range actionNames {
		if strings.EqualFold(n, name) {
			return ActionType(t), true
		}
	}
	return 0, false
}

// Field is one optional entry of a Payload.
type Field[T any] struct {
	Set   bool
	Value T
}

// Set returns a Field carrying v.
func Set[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: v}
}

// Payload is a partial State patch. Unset fields leave state unchanged.
type Payload struct {
	IsOpen           Field[bool]
	HighlightedIndex Field[int]
	SelectedItem     Field[Item]
	InputValue       Field[string]
	InputText        Field[string]
}

// Empty reports whether the payload changes nothing.
func (p Payload) Empty() bool {
	return !p.IsOpen.Set && !p.HighlightedIndex.Set && !p.SelectedItem.Set &&
		!p.InputValue.Set && !p.InputText.Set
}

// String renders only the fields that are set, for logs and replay output.
func (p Payload) String() string {
	var parts []string
	if p.IsOpen.Set {
		parts = append(parts, fmt.Sprintf("open=%t", p.IsOpen.Value))
	}
	if p.HighlightedIndex.Set {
		parts = append(parts, fmt.Sprintf("highlighted=%d", p.HighlightedIndex.Value))
	}
	if p.SelectedItem.Set {
		parts = append(parts, fmt.Sprintf("selected=%v", p.SelectedItem.Value))
	}
	if p.InputValue.Set {
		parts = append(parts, fmt.Sprintf("input=%q", p.InputValue.Value))
	}
	if p.InputText.Set {
		parts = append(parts, fmt.Sprintf("text=%q", p.InputText.Value))
	}
	return "{" + strings.Join(parts, " ") + "}"
}

// Action is a typed transition ready to be merged into State.
type Action struct {
	Type    ActionType
	Payload Payload
}

func (a Action) String() string {
	return a.Type.String() + " " + a.Payload.String()
}
