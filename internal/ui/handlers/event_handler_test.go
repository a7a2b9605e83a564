package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"combobox/internal/eventbus"
	"combobox/internal/ui/state"
)

func TestHandleEvent(t *testing.T) {
	s := state.NewAppState()
	h := NewEventHandler(s)

	assert.Nil(t, h.HandleEvent(eventbus.SelectionChangedEvent{Label: "Thor"}))
	assert.Equal(t, "Thor", s.LastSelection)
	assert.True(t, s.HasSelected)
	assert.Equal(t, "selected Thor", s.StatusMessage)

	h.HandleEvent(eventbus.SelectionChangedEvent{})
	assert.False(t, s.HasSelected)
	assert.Equal(t, "selection cleared", s.StatusMessage)

	h.HandleEvent(eventbus.TouchedEvent{})
	h.HandleEvent(eventbus.TouchedEvent{})
	assert.Equal(t, 2, s.TouchCount)

	assert.NotNil(t, h.HandleEvent(eventbus.ConfigSavedEvent{Path: "c.toml"}))
	assert.Equal(t, "saved c.toml", s.StatusMessage)

	assert.Nil(t, h.HandleEvent(eventbus.MenuClosedEvent{}))
}
