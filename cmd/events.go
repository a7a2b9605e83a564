package cmd

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"combobox/internal/config"
	"combobox/internal/eventbus"
	"combobox/internal/ui"
)

// uiForwarder holds bus events until the program can take them. Events
// published before Run starts, like the initial config load, are kept in
// the buffer.
type uiForwarder struct {
	events chan eventbus.DomainEvent
}

func newUIForwarder(size int) *uiForwarder {
	return &uiForwarder{events: make(chan eventbus.DomainEvent, size)}
}

// Forward never blocks the bus; a full buffer drops the event.
func (f *uiForwarder) Forward(e eventbus.DomainEvent) {
	select {
	case f.events <- e:
	default:
		slog.Warn("ui forwarder full, dropping event", "event", string(e.Type()))
	}
}

// Run hands events to send as ui.EventMsg until done is closed.
func (f *uiForwarder) Run(send func(tea.Msg), done <-chan struct{}) {
	for {
		select {
		case e := <-f.events:
			send(ui.EventMsg{Event: e})
		case <-done:
			return
		}
	}
}

// subscribeActivityLog writes interaction events to logger. The returned
// func unsubscribes all of them.
func subscribeActivityLog(bus eventbus.EventBus, logger *slog.Logger) func() {
	unsubs := []func(){
		bus.Subscribe(eventbus.EventMenuOpened, func(e eventbus.DomainEvent) {
			if ev, ok := e.(eventbus.MenuOpenedEvent); ok {
				logger.Info("menu opened", "visible", ev.Visible)
			}
		}),
		bus.Subscribe(eventbus.EventMenuClosed, func(eventbus.DomainEvent) {
			logger.Info("menu closed")
		}),
		bus.Subscribe(eventbus.EventTouched, func(eventbus.DomainEvent) {
			logger.Info("input touched")
		}),
		bus.Subscribe(eventbus.EventSelectionChanged, func(e eventbus.DomainEvent) {
			if ev, ok := e.(eventbus.SelectionChangedEvent); ok {
				logger.Info("selection changed", "label", ev.Label)
			}
		}),
	}
	return func() {
		for _, unsub := range unsubs {
			unsub()
		}
	}
}

// selectionSaver writes committed selections to the config file one at a
// time, in the order they were enqueued. It owns a copy of the config so
// the UI's copy is never written from another goroutine.
type selectionSaver struct {
	svc    config.ConfigService
	cfg    config.Config
	labels chan string
	done   chan struct{}
}

func newSelectionSaver(svc config.ConfigService, cfg *config.Config) *selectionSaver {
	s := &selectionSaver{
		svc:    svc,
		cfg:    *cfg,
		labels: make(chan string, 16),
		done:   make(chan struct{}),
	}
	go s.run()
	return s
}

// Enqueue queues label for saving. It must not be called after Close.
func (s *selectionSaver) Enqueue(label string) {
	s.labels <- label
}

// Close waits until every queued selection is written.
func (s *selectionSaver) Close() {
	close(s.labels)
	<-s.done
}

func (s *selectionSaver) run() {
	defer close(s.done)
	for label := range s.labels {
		s.cfg.Selected = label
		if err := s.svc.Save(&s.cfg); err != nil {
			slog.Error("Failed to save selection", "selection", label, "error", err)
		}
	}
}
