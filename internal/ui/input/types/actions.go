package types

import "combobox/internal/combobox"

// KeydownAction forwards a navigation or commit key to the controller
type KeydownAction struct {
	Key combobox.Key
}

func (a KeydownAction) Type() string { return "keydown" }

// Menu actions
type ToggleAction struct{}

func (a ToggleAction) Type() string { return "toggle" }

type OpenAction struct{}

func (a OpenAction) Type() string { return "open" }

// BlurAction tells the controller the input lost focus
type BlurAction struct{}

func (a BlurAction) Type() string { return "blur" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

// Application actions
type HelpAction struct{}

func (a HelpAction) Type() string { return "help" }

// ResetAction writes the startup selection back from outside
type ResetAction struct{}

func (a ResetAction) Type() string { return "reset" }

type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }
