package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSelectionChanged EventType = "SelectionChanged"
	EventMenuOpened       EventType = "MenuOpened"
	EventMenuClosed       EventType = "MenuClosed"
	EventTouched          EventType = "Touched"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SelectionChangedEvent is emitted when the committed item changes.
// Label is empty when the selection was cleared.
type SelectionChangedEvent struct {
	Label string
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// MenuOpenedEvent is emitted when the list becomes visible
type MenuOpenedEvent struct {
	Visible int
}

func (e MenuOpenedEvent) Type() EventType { return EventMenuOpened }

// MenuClosedEvent is emitted when the list is hidden
type MenuClosedEvent struct{}

func (e MenuClosedEvent) Type() EventType { return EventMenuClosed }

// TouchedEvent is emitted every time the input loses focus
type TouchedEvent struct{}

func (e TouchedEvent) Type() EventType { return EventTouched }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path  string
	Items int
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
