package combobox

import (
	"log/slog"

	"combobox/internal/scheduler"
)

// Option configures a Controller.
type Option func(*Controller)

// WithReducer installs the override hook. Nil keeps the identity hook.
func WithReducer(r Reducer) Option {
	return func(c *Controller) {
		if r != nil {
			c.reducer = r
		}
	}
}

// WithVisibleItems sets the function deciding which items are rendered for
// the current input. Without it the registered item adapters are used.
func WithVisibleItems(fn VisibleFunc) Option {
	return func(c *Controller) {
		c.visible = fn
	}
}

// WithEqual sets the host equality used for selection-change detection.
func WithEqual(eq EqualFunc) Option {
	return func(c *Controller) {
		if eq != nil {
			c.equal = eq
		}
	}
}

// WithScheduler sets where deferred keyboard and hover handling runs.
func WithScheduler(s scheduler.Scheduler) Option {
	return func(c *Controller) {
		if s != nil {
			c.scheduler = s
		}
	}
}

// WithLogger sets the logger for transition tracing.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithInitialSelection starts the widget with item selected and its label
// in the input.
func WithInitialSelection(item Item) Option {
	return func(c *Controller) {
		c.state.SelectedItem = item
		c.state.InputValue = c.toString(item)
	}
}
