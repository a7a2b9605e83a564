package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"combobox/internal/combobox"
	"combobox/internal/ui/input/types"
)

// Bindings is the subset of the keymap the modes react to.
type Bindings struct {
	Down, Up, Enter, Escape  key.Binding
	Toggle, Blur, Quit, Help key.Binding
	Reset                    key.Binding
}

// FocusedMode handles keys while the combobox input has focus. Keys it
// does not consume are typed into the input.
type FocusedMode struct {
	keys Bindings
}

func NewFocusedMode(keys Bindings) *FocusedMode {
	return &FocusedMode{keys: keys}
}

func (m *FocusedMode) Name() string {
	return "focused"
}

func (m *FocusedMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *FocusedMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *FocusedMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true
	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.HelpAction{}}, true
	case key.Matches(msg, m.keys.Reset):
		return []types.Action{types.ResetAction{}}, true
	case key.Matches(msg, m.keys.Toggle):
		return []types.Action{types.ToggleAction{}}, true
	case key.Matches(msg, m.keys.Blur):
		return []types.Action{
			types.BlurAction{},
			types.ChangeModeAction{Mode: types.ModeBlurred},
		}, true
	case key.Matches(msg, m.keys.Down):
		// arrows open a closed menu like a native select
		if !ctx.IsOpen() {
			return []types.Action{types.OpenAction{}}, true
		}
		return []types.Action{types.KeydownAction{Key: combobox.KeyArrowDown}}, true
	case key.Matches(msg, m.keys.Up):
		if !ctx.IsOpen() {
			return []types.Action{types.OpenAction{}}, true
		}
		return []types.Action{types.KeydownAction{Key: combobox.KeyArrowUp}}, true
	case key.Matches(msg, m.keys.Enter):
		return []types.Action{types.KeydownAction{Key: combobox.KeyEnter}}, true
	case key.Matches(msg, m.keys.Escape):
		return []types.Action{types.KeydownAction{Key: combobox.KeyEscape}}, true
	}
	return nil, false
}
