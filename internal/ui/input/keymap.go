package input

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"combobox/internal/config"
	"combobox/internal/ui/input/modes"
)

// KeyMap holds the configurable bindings. It implements help.KeyMap.
type KeyMap struct {
	Down   key.Binding
	Up     key.Binding
	Enter  key.Binding
	Escape key.Binding
	Toggle key.Binding
	Blur   key.Binding
	Quit   key.Binding
	Help   key.Binding
	Reset  key.Binding
}

// NewKeyMap builds bindings from config. Empty entries fall back to the
// built-in keys.
func NewKeyMap(kb config.KeyBindings) KeyMap {
	def := config.DefaultKeyBindings()
	return KeyMap{
		Down:   binding(kb.Down, def.Down, "next item"),
		Up:     binding(kb.Up, def.Up, "previous item"),
		Enter:  binding(kb.Enter, def.Enter, "select"),
		Escape: binding(kb.Escape, def.Escape, "clear"),
		Toggle: binding(kb.Toggle, def.Toggle, "toggle menu"),
		Blur:   binding(kb.Blur, def.Blur, "leave/enter input"),
		Quit:   binding(kb.Quit, def.Quit, "quit"),
		Help:   binding(kb.Help, def.Help, "help"),
		Reset:  binding(kb.Reset, def.Reset, "reset selection"),
	}
}

func binding(keys, fallback []string, desc string) key.Binding {
	if len(keys) == 0 {
		keys = fallback
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), desc),
	)
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.Enter, k.Escape, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Down, k.Up, k.Enter, k.Escape},
		{k.Toggle, k.Blur, k.Reset, k.Help, k.Quit},
	}
}

// Bindings hands the mode handlers their keys.
func (k KeyMap) Bindings() modes.Bindings {
	return modes.Bindings{
		Down:   k.Down,
		Up:     k.Up,
		Enter:  k.Enter,
		Escape: k.Escape,
		Toggle: k.Toggle,
		Blur:   k.Blur,
		Quit:   k.Quit,
		Help:   k.Help,
		Reset:  k.Reset,
	}
}
