package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"combobox/internal/ui/input/modes"
	"combobox/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model
	keys        KeyMap
	readOnly    bool
}

// New creates a handler typing into ti. The input starts focused.
func New(ti *textinput.Model, keys KeyMap) *Handler {
	h := &Handler{
		currentMode: types.ModeFocused,
		textInput:   ti,
		keys:        keys,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeFocused] = modes.NewFocusedMode(keys.Bindings())
	h.modes[types.ModeBlurred] = modes.NewBlurredMode(keys.Bindings())

	return h
}

// HandleKey maps msg to actions. Keys no mode consumes are typed into the
// input while it is focused; an UpdateTextAction is emitted when that
// changes the text.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	var allActions []types.Action
	var cmds []tea.Cmd

	// a mode change may hand the same key to the next mode once
	for attempt := 0; attempt < 2; attempt++ {
		handler := h.modes[h.currentMode]
		if handler == nil {
			return nil, nil
		}
		before := h.currentMode

		actions, consumed := handler.HandleKey(msg, ctx)
		for _, action := range actions {
			if changeMode, ok := action.(types.ChangeModeAction); ok {
				allActions = append(allActions, h.changeMode(changeMode.Mode, ctx)...)
				cmds = append(cmds, h.focusCmd())
				continue
			}
			allActions = append(allActions, action)
		}

		if consumed {
			return allActions, tea.Batch(cmds...)
		}
		if h.currentMode == before {
			break
		}
	}

	if h.currentMode == types.ModeFocused && !h.readOnly {
		prev := h.textInput.Value()
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		cmds = append(cmds, cmd)
		if text := h.textInput.Value(); text != prev {
			allActions = append(allActions, types.UpdateTextAction{Text: text})
		}
	}

	return allActions, tea.Batch(cmds...)
}

// SetReadOnly stops unbound keys from reaching the text input, for hosts
// without a typeable field.
func (h *Handler) SetReadOnly(readOnly bool) {
	h.readOnly = readOnly
}

// SetMode switches mode directly, e.g. when a mouse press moves focus.
func (h *Handler) SetMode(mode types.Mode, ctx types.Context) ([]types.Action, tea.Cmd) {
	if mode == h.currentMode {
		return nil, nil
	}
	actions := h.changeMode(mode, ctx)
	return actions, h.focusCmd()
}

func (h *Handler) changeMode(mode types.Mode, ctx types.Context) []types.Action {
	var actions []types.Action
	if current := h.modes[h.currentMode]; current != nil {
		actions = append(actions, current.Exit(ctx)...)
	}
	h.currentMode = mode
	if next := h.modes[h.currentMode]; next != nil {
		actions = append(actions, next.Enter(ctx)...)
	}
	return actions
}

func (h *Handler) focusCmd() tea.Cmd {
	if h.currentMode == types.ModeFocused {
		return h.textInput.Focus()
	}
	h.textInput.Blur()
	return nil
}

func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

func (h *Handler) Keys() KeyMap {
	return h.keys
}

// Update handles non-keyboard messages for text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.currentMode != types.ModeFocused {
		return nil
	}
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	return cmd
}
