package eventbus

import (
	"log/slog"
	"runtime/debug"
	"sync"

	"combobox/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventSelectionChanged = domain.EventSelectionChanged
	EventMenuOpened       = domain.EventMenuOpened
	EventMenuClosed       = domain.EventMenuClosed
	EventTouched          = domain.EventTouched
	EventConfigLoaded     = domain.EventConfigLoaded
	EventConfigSaved      = domain.EventConfigSaved
)

// Re-export domain event types
type SelectionChangedEvent = domain.SelectionChangedEvent
type MenuOpenedEvent = domain.MenuOpenedEvent
type MenuClosedEvent = domain.MenuClosedEvent
type TouchedEvent = domain.TouchedEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	// PublishSync runs every handler on the caller's goroutine before returning.
	PublishSync(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Close()
}

type subscription struct {
	id      int
	handler EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]subscription
	nextID    int
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
	closeOnce sync.Once
}

// New creates a new event bus
func New() EventBus {
	b := &bus{
		handlers:  make(map[EventType][]subscription),
		eventChan: make(chan DomainEvent, 256),
		quit:      make(chan struct{}),
	}

	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish queues an event for asynchronous delivery
func (b *bus) Publish(event DomainEvent) {
	slog.Debug("eventbus: publishing", "event", string(event.Type()))

	select {
	case <-b.quit:
		slog.Warn("eventbus: closed, dropping event", "event", string(event.Type()))
		return
	default:
	}

	select {
	case b.eventChan <- event:
	default:
		slog.Warn("eventbus: channel full, dropping event", "event", string(event.Type()))
	}
}

func (b *bus) PublishSync(event DomainEvent) {
	for _, h := range b.snapshot(event.Type()) {
		invoke(h, event)
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

// Close stops the dispatcher. Queued events are discarded.
func (b *bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
	})
	b.wg.Wait()
}

func (b *bus) snapshot(eventType EventType) []EventHandler {
	b.mu.RLock()
	defer b.mu.RUnlock()
	subs := b.handlers[eventType]
	out := make([]EventHandler, len(subs))
	for i, s := range subs {
		out[i] = s.handler
	}
	return out
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			for _, handler := range b.snapshot(event.Type()) {
				// handlers must not block the dispatcher
				b.wg.Add(1)
				go func(h EventHandler) {
					defer b.wg.Done()
					invoke(h, event)
				}(handler)
			}

		case <-b.quit:
			for {
				select {
				case <-b.eventChan:
				default:
					return
				}
			}
		}
	}
}

func invoke(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("eventbus: handler panic", "event", string(event.Type()), "panic", r, "stack", string(debug.Stack()))
		}
	}()
	h(event)
}
