package ui

import (
	"time"

	"combobox/internal/eventbus"
)

// FrameInterval is the tick used to flush deferred combobox callbacks.
const FrameInterval = 16 * time.Millisecond

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// frameMsg marks the start of a new animation frame
type frameMsg time.Time

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
