// Package combobox implements the interaction state machine behind a
// headless combobox: raw input and pointer events go in, a single State
// comes out, and bound adapters are kept in sync with it.
package combobox

import (
	"log/slog"

	"combobox/internal/scheduler"
)

// Key is a keyboard key the input forwards to the controller.
type Key int

const (
	KeyOther Key = iota
	KeyArrowDown
	KeyArrowUp
	KeyEnter
	KeyEscape
)

// Controller owns the State of one widget instance. It is not safe for
// concurrent use; every call must come from the UI goroutine.
type Controller struct {
	state        State
	itemToString func(Item) string
	reducer      Reducer
	visible      VisibleFunc
	equal        EqualFunc
	scheduler    scheduler.Scheduler
	logger       *slog.Logger

	input  InputAdapter
	button ButtonAdapter
	items  itemRegistry

	onChange  func(Item)
	onTouched func()

	dispatching bool
}

// New creates a closed combobox with no selection.
func New(itemToString func(Item) string, opts ...Option) *Controller {
	if itemToString == nil {
		itemToString = StringItem
	}
	c := &Controller{
		state:        InitialState(),
		itemToString: itemToString,
		reducer:      IdentityReducer,
		equal:        DefaultEqual,
		scheduler:    scheduler.Immediate{},
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the last applied snapshot.
func (c *Controller) State() State {
	return c.state
}

// ItemToString renders item with the construction-time projection.
func (c *Controller) ItemToString(item Item) string {
	return c.toString(item)
}

// VisibleItems returns the items rendered for the current input.
func (c *Controller) VisibleItems() []Item {
	return c.visibleFor(c.state.InputValue)
}

// HighlightedItem returns the highlighted visible item, or nil.
func (c *Controller) HighlightedItem() Item {
	return c.env().ItemAt(c.state.HighlightedIndex)
}

// RegisterInput binds the text field. Passing nil unbinds it.
func (c *Controller) RegisterInput(a InputAdapter) {
	c.input = a
	if a != nil {
		c.pushInput(c.state)
	}
}

// RegisterButton binds the toggle button. Passing nil unbinds it.
func (c *Controller) RegisterButton(a ButtonAdapter) {
	c.button = a
	if a != nil {
		c.pushButton(c.state)
	}
}

// RegisterItem appends an option and returns a function removing it again.
func (c *Controller) RegisterItem(a ItemAdapter) func() {
	if a == nil {
		return func() {}
	}
	id := c.items.add(a)
	return func() {
		c.items.remove(id)
	}
}

// RegisterOnChange sets the callback receiving every new selection.
func (c *Controller) RegisterOnChange(fn func(Item)) {
	c.onChange = fn
}

// RegisterOnTouched sets the callback fired when the input loses focus.
func (c *Controller) RegisterOnTouched(fn func()) {
	c.onTouched = fn
}

// Touched invokes the touched callback, if any.
func (c *Controller) Touched() {
	if c.onTouched != nil {
		c.onTouched()
	}
}

// Dispatch runs ev through the state machine synchronously.
func (c *Controller) Dispatch(ev Event) {
	if c.dispatching {
		c.logger.Warn("combobox: re-entrant dispatch dropped", "action", ev.Type.String())
		return
	}
	c.dispatching = true
	defer func() { c.dispatching = false }()

	current := c.state
	action, ok := Transition(current, ev, c.env())
	if !ok {
		c.logger.Debug("combobox: action ignored while closed", "action", ev.Type.String())
		return
	}

	proposed := action
	action = c.reducer(current, action)
	if action.Type != proposed.Type {
		c.logger.Warn("combobox: reducer changed action type, keeping computed action",
			"computed", proposed.Type.String(), "returned", action.Type.String())
		action = proposed
	}

	next := current.Apply(action.Payload)
	if next.HasHighlight() && next.HighlightedIndex >= len(c.visibleFor(next.InputValue)) {
		next.HighlightedIndex = NoHighlight
	}
	c.logger.Debug("combobox: apply", "action", action.Type.String(), "payload", action.Payload.String())

	c.pushEffects(next)

	if !c.equal(current.SelectedItem, next.SelectedItem) && c.onChange != nil {
		c.onChange(next.SelectedItem)
	}

	c.state = next
}

// Toggle flips the menu.
func (c *Controller) Toggle() { c.Dispatch(Event{Type: MenuToggle}) }

// Open shows the menu.
func (c *Controller) Open() { c.Dispatch(Event{Type: MenuOpen}) }

// Close hides the menu.
func (c *Controller) Close() { c.Dispatch(Event{Type: MenuClose}) }

// HandleInputChange applies typed text immediately.
func (c *Controller) HandleInputChange(text string) {
	c.Dispatch(Event{Type: InputChange, Text: text})
}

// HandleInputBlur commits the highlighted item immediately and marks the
// control touched.
func (c *Controller) HandleInputBlur() {
	c.Dispatch(Event{Type: InputBlur})
	c.Touched()
}

// HandleInputKeydown defers navigation and commit keys to the next frame.
func (c *Controller) HandleInputKeydown(k Key) {
	var t ActionType
	switch k {
	case KeyArrowDown:
		t = InputKeydownArrowDown
	case KeyArrowUp:
		t = InputKeydownArrowUp
	case KeyEnter:
		t = InputKeydownEnter
	case KeyEscape:
		t = InputKeydownEsc
	default:
		return
	}
	c.scheduler.Schedule(func() {
		c.Dispatch(Event{Type: t})
	})
}

// HandleButtonClick toggles the menu immediately.
func (c *Controller) HandleButtonClick() {
	c.Dispatch(Event{Type: ButtonClick})
}

// HandleItemMouseDown commits item on press, before the input blurs.
func (c *Controller) HandleItemMouseDown(item Item) {
	c.Dispatch(Event{Type: ItemMouseClick, Item: item})
}

// HandleItemMouseEnter highlights item on the next frame.
func (c *Controller) HandleItemMouseEnter(item Item) {
	c.scheduler.Schedule(func() {
		c.Dispatch(Event{Type: ItemMouseEnter, Item: item})
	})
}

// HandleItemMouseLeave drops the highlight immediately. Only entering is
// deferred.
func (c *Controller) HandleItemMouseLeave(item Item) {
	c.Dispatch(Event{Type: ItemMouseLeave, Item: item})
}

// WriteValue sets the selection from the host without notifying onChange.
// When no input is bound yet the input push is retried on the next two
// frames.
func (c *Controller) WriteValue(item Item) {
	next := c.state
	next.SelectedItem = item
	next.InputValue = c.toString(item)
	next.InputText = ""
	if next.HasHighlight() && next.HighlightedIndex >= len(c.visibleFor(next.InputValue)) {
		next.HighlightedIndex = NoHighlight
	}
	c.state = next
	c.pushItems(next)

	if c.input != nil {
		c.pushInput(next)
		return
	}
	c.retryInputPush(2)
}

func (c *Controller) retryInputPush(attempts int) {
	if attempts <= 0 {
		c.logger.Debug("combobox: no input bound after write, giving up")
		return
	}
	c.scheduler.Schedule(func() {
		if c.input == nil {
			c.retryInputPush(attempts - 1)
			return
		}
		c.pushInput(c.state)
	})
}

func (c *Controller) pushEffects(next State) {
	c.pushInput(next)
	c.pushButton(next)
	c.pushItems(next)
}

func (c *Controller) pushInput(s State) {
	if c.input == nil {
		return
	}
	c.input.SetExpanded(s.IsOpen)
	c.input.SetValue(s.InputValue)
}

func (c *Controller) pushButton(s State) {
	if c.button == nil {
		return
	}
	c.button.SetExpanded(s.IsOpen)
	c.button.SetLabel(ButtonLabel(s.IsOpen))
}

func (c *Controller) pushItems(s State) {
	if len(c.items.entries) == 0 {
		return
	}
	visible := c.visibleFor(s.InputValue)
	var active Item
	if s.HighlightedIndex >= 0 && s.HighlightedIndex < len(visible) {
		active = visible[s.HighlightedIndex]
	}
	for _, a := range c.items.adapters() {
		v := a.Value()
		if h, ok := a.(Highlightable); ok {
			h.SetHighlighted(active != nil && c.equal(v, active))
		}
		if sel, ok := a.(Selectable); ok {
			sel.SetSelected(s.SelectedItem != nil && c.equal(v, s.SelectedItem))
		}
	}
}

func (c *Controller) env() Env {
	return Env{
		Visible:      c.visibleFor(c.state.InputValue),
		ItemToString: c.toString,
		Equal:        c.equal,
	}
}

func (c *Controller) visibleFor(input string) []Item {
	if c.visible != nil {
		return c.visible(input)
	}
	return c.items.values()
}

func (c *Controller) toString(item Item) string {
	if item == nil {
		return ""
	}
	return c.itemToString(item)
}
