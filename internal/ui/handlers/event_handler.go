package handlers

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"combobox/internal/eventbus"
	"combobox/internal/ui/state"
)

// StatusTimeout is how long transient status messages stay visible.
const StatusTimeout = 3 * time.Second

// ClearStatusMsg asks the model to clear the status line.
type ClearStatusMsg struct{}

// EventHandler handles domain events and updates state
type EventHandler struct {
	state *state.AppState
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState) *EventHandler {
	return &EventHandler{state: appState}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.SelectionChangedEvent:
		h.state.LastSelection = e.Label
		h.state.HasSelected = e.Label != ""
		if e.Label == "" {
			h.state.SetStatus("selection cleared")
		} else {
			h.state.SetStatus(fmt.Sprintf("selected %s", e.Label))
		}

	case eventbus.TouchedEvent:
		h.state.TouchCount++

	case eventbus.ConfigSavedEvent:
		h.state.SetStatus(fmt.Sprintf("saved %s", e.Path))
		return clearStatusLater()

	case eventbus.ConfigLoadedEvent:
		h.state.SetStatus(fmt.Sprintf("loaded %d items from %s", e.Items, e.Path))
		return clearStatusLater()
	}
	return nil
}

func clearStatusLater() tea.Cmd {
	return tea.Tick(StatusTimeout, func(time.Time) tea.Msg { return ClearStatusMsg{} })
}
