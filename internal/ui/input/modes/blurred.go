package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"combobox/internal/ui/input/types"
)

// BlurredMode is active after the input lost focus. Any key other than
// quit, help or reset gives focus back; the focus key itself is swallowed.
type BlurredMode struct {
	keys Bindings
}

func NewBlurredMode(keys Bindings) *BlurredMode {
	return &BlurredMode{keys: keys}
}

func (m *BlurredMode) Name() string {
	return "blurred"
}

func (m *BlurredMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *BlurredMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *BlurredMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true
	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.HelpAction{}}, true
	case key.Matches(msg, m.keys.Reset):
		return []types.Action{types.ResetAction{}}, true
	case key.Matches(msg, m.keys.Blur):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeFocused}}, true
	}
	// refocus, then let the focused mode see the same key
	return []types.Action{types.ChangeModeAction{Mode: types.ModeFocused}}, false
}
