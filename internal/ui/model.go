package ui

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"combobox/internal/combobox"
	"combobox/internal/config"
	"combobox/internal/eventbus"
	"combobox/internal/scheduler"
	"combobox/internal/ui/adapters"
	"combobox/internal/ui/handlers"
	"combobox/internal/ui/input"
	inputtypes "combobox/internal/ui/input/types"
	"combobox/internal/ui/state"
	"combobox/internal/ui/views"
)

// Model hosts one combobox in a bubbletea program
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState

	combo  *combobox.Controller
	frames *scheduler.FrameQueue

	textInput    *textinput.Model
	inputAdapter *adapters.TextInput
	button       *adapters.Button
	rows         map[string]*adapters.Row // label -> row

	width  int
	height int
	help   help.Model

	layout         views.Layout
	hovered        combobox.Item
	frameScheduled bool

	dropdown bool   // button only, no text input
	resetTo  string // selection restored by the reset key

	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	eventHandler *handlers.EventHandler
	inputHandler *input.Handler
	helpOps      *HelpOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model. bus may be nil.
func NewModel(cfg *config.Config, bus eventbus.EventBus) *Model {
	appState := state.NewAppState()

	ti := textinput.New()
	ti.Placeholder = cfg.Placeholder
	ti.Focus()

	m := &Model{
		bus:          bus,
		config:       cfg,
		dropdown:     cfg.Variant == config.VariantDropdown,
		resetTo:      cfg.Selected,
		state:        appState,
		frames:       scheduler.NewFrameQueue(),
		textInput:    &ti,
		button:       adapters.NewButton(),
		rows:         make(map[string]*adapters.Row),
		help:         help.New(),
		renderer:     views.NewRenderer(views.NewStyles()),
		helpRenderer: NewHelpRenderer(cfg.Description),
		eventHandler: handlers.NewEventHandler(appState),
	}
	m.inputAdapter = adapters.NewTextInput(m.textInput)
	m.inputHandler = input.New(m.textInput, input.NewKeyMap(cfg.Keys))

	items := combobox.StringItems(cfg.Items)
	var visible combobox.VisibleFunc
	switch {
	case m.dropdown:
		// nothing is typed, so every item stays listed
		visible = combobox.AllItems(items)
	case cfg.Filter == config.FilterContains:
		visible = combobox.ContainsFilter(items, combobox.StringItem)
	default:
		visible = combobox.PrefixFilter(items, combobox.StringItem)
	}
	var hook combobox.Reducer
	switch {
	case cfg.Controlled:
		hook = combobox.ControlledReducer(visible, combobox.StringItem)
	case cfg.Preview:
		hook = combobox.PreviewHighlightReducer(visible, combobox.StringItem)
	}

	m.combo = combobox.New(combobox.StringItem,
		combobox.WithVisibleItems(visible),
		combobox.WithScheduler(m.frames),
		combobox.WithReducer(combobox.ChainReducers(hook, m.recordTransition)),
		combobox.WithLogger(slog.Default().With("component", "combobox")),
	)

	if m.dropdown {
		m.inputHandler.SetReadOnly(true)
	} else {
		m.combo.RegisterInput(m.inputAdapter)
	}
	m.combo.RegisterButton(m.button)
	for _, item := range items {
		row := adapters.NewRow(item)
		m.rows[combobox.StringItem(item)] = row
		m.combo.RegisterItem(row)
	}
	m.combo.RegisterOnChange(m.onSelectionChanged)
	m.combo.RegisterOnTouched(m.onTouched)

	if cfg.Selected != "" {
		if row, ok := m.rows[cfg.Selected]; ok {
			m.combo.WriteValue(row.Value())
			appState.LastSelection = cfg.Selected
			appState.HasSelected = true
		} else {
			slog.Warn("configured selection is not an item", "selected", cfg.Selected)
		}
	}

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Controller exposes the hosted combobox
func (m *Model) Controller() *combobox.Controller {
	return m.combo
}

// IsOpen reports whether the menu is shown
func (m *Model) IsOpen() bool {
	return m.combo.State().IsOpen
}

// VisibleCount returns the number of items matching the input
func (m *Model) VisibleCount() int {
	return len(m.combo.VisibleItems())
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	before := m.combo.State()
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.helpRenderer.SetWidth(msg.Width)

	case tea.KeyMsg:
		actions, cmd := m.inputHandler.HandleKey(msg, m)
		cmds = append(cmds, cmd)
		for _, action := range actions {
			cmds = append(cmds, m.processAction(action))
		}

	case tea.MouseMsg:
		cmds = append(cmds, m.handleMouse(msg))

	case frameMsg:
		m.frameScheduled = false
		if n := m.frames.Flush(); n > 0 {
			slog.Debug("frame flushed", "callbacks", n, "frame", m.frames.Frames())
		}

	case EventMsg:
		cmds = append(cmds, m.eventHandler.HandleEvent(msg.Event))

	case handlers.ClearStatusMsg:
		m.state.ClearStatus()

	case helpPagerMsg:
		if msg.err != nil {
			slog.Error("help pager failed", "error", msg.err)
			m.state.SetError(fmt.Sprintf("help: %v", msg.err))
		}

	case pauseRenderingMsg:
		m.state.InPagerMode = true

	case resumeRenderingMsg:
		m.state.InPagerMode = false

	default:
		cmds = append(cmds, m.inputHandler.Update(msg))
	}

	cmds = append(cmds, m.afterUpdate(before))
	return m, tea.Batch(cmds...)
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.KeydownAction:
		m.combo.HandleInputKeydown(a.Key)
	case inputtypes.ToggleAction:
		m.combo.Toggle()
	case inputtypes.OpenAction:
		m.combo.Open()
	case inputtypes.BlurAction:
		m.combo.HandleInputBlur()
	case inputtypes.UpdateTextAction:
		m.combo.HandleInputChange(a.Text)
	case inputtypes.ResetAction:
		m.resetSelection()
	case inputtypes.HelpAction:
		return m.fetchHelpPager(m.helpRenderer.Render(m.inputHandler.Keys(), m.state.History()))
	case inputtypes.QuitAction:
		return tea.Quit
	default:
		slog.Debug("unhandled input action", "type", action.Type())
	}
	return nil
}

// handleMouse turns pointer events into combobox calls. Motion over a
// row highlights it, a left press commits a row, toggles on the button,
// focuses on the input line and blurs anywhere else.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	item := m.itemAt(msg.Y)

	switch {
	case msg.Action == tea.MouseActionMotion:
		if combobox.DefaultEqual(item, m.hovered) {
			return nil
		}
		if m.hovered != nil {
			m.combo.HandleItemMouseLeave(m.hovered)
		}
		if item != nil {
			m.combo.HandleItemMouseEnter(item)
		}
		m.hovered = item

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		switch {
		case item != nil:
			m.combo.HandleItemMouseDown(item)
		case m.layout.OnButton(msg.X, msg.Y):
			m.combo.HandleButtonClick()
		case m.dropdown:
			// no input to blur
		case msg.Y == m.layout.InputLine:
			_, cmd := m.inputHandler.SetMode(inputtypes.ModeFocused, m)
			return cmd
		case m.inputHandler.CurrentMode() == inputtypes.ModeFocused:
			actions, cmd := m.inputHandler.SetMode(inputtypes.ModeBlurred, m)
			for _, a := range actions {
				m.processAction(a)
			}
			m.combo.HandleInputBlur()
			return cmd
		}
	}
	return nil
}

func (m *Model) itemAt(y int) combobox.Item {
	if !m.combo.State().IsOpen {
		return nil
	}
	row := m.layout.RowAt(y)
	visible := m.combo.VisibleItems()
	if row < 0 || row >= len(visible) {
		return nil
	}
	return visible[row]
}

// afterUpdate publishes menu visibility changes, keeps the highlighted
// row on screen and asks for a frame while callbacks are queued.
func (m *Model) afterUpdate(before combobox.State) tea.Cmd {
	after := m.combo.State()
	if before.IsOpen != after.IsOpen && m.bus != nil {
		if after.IsOpen {
			m.bus.Publish(eventbus.MenuOpenedEvent{Visible: m.VisibleCount()})
		} else {
			m.bus.Publish(eventbus.MenuClosedEvent{})
		}
	}

	if after.IsOpen {
		m.state.ViewportOffset = views.ScrollOffset(m.state.ViewportOffset, after.HighlightedIndex, m.VisibleCount(), m.config.UI.MaxVisible)
	} else {
		m.state.ViewportOffset = 0
		// rows are gone, so the next motion over a row is a fresh enter
		m.hovered = nil
	}

	if m.frameScheduled || m.state.InPagerMode || m.frames.Pending() == 0 {
		return nil
	}
	m.frameScheduled = true
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m *Model) onSelectionChanged(item combobox.Item) {
	m.publishSelection(m.combo.ItemToString(item))
}

// publishSelection delivers synchronously so subscribers see selections in
// commit order.
func (m *Model) publishSelection(label string) {
	event := eventbus.SelectionChangedEvent{Label: label}
	m.eventHandler.HandleEvent(event)
	if m.bus != nil {
		m.bus.PublishSync(event)
	}
}

// resetSelection writes the startup selection back. WriteValue does not
// notify onChange, so the change is published here.
func (m *Model) resetSelection() {
	var item combobox.Item
	if row, ok := m.rows[m.resetTo]; ok {
		item = row.Value()
	}
	m.combo.WriteValue(item)
	label := m.combo.ItemToString(item)
	m.publishSelection(label)
	if label == "" {
		m.state.SetStatus("selection reset")
	} else {
		m.state.SetStatus(fmt.Sprintf("reset to %s", label))
	}
}

func (m *Model) onTouched() {
	m.eventHandler.HandleEvent(eventbus.TouchedEvent{})
	if m.bus != nil {
		m.bus.Publish(eventbus.TouchedEvent{})
	}
}

// recordTransition logs every applied action for the help pager. It never
// changes the action.
func (m *Model) recordTransition(_ combobox.State, a combobox.Action) combobox.Action {
	m.state.Record(fmt.Sprintf("%s %s", time.Now().Format("15:04:05.000"), a))
	return a
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	if m.helpOps == nil {
		return nil
	}
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := m.helpOps.ShowHelpInPager(helpContent)
		m.program.Send(resumeRenderingMsg{})
		return helpPagerMsg{err: err}
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.state.InPagerMode {
		return ""
	}

	s := m.combo.State()
	visible := m.combo.VisibleItems()
	rows := make([]views.Row, len(visible))
	for i, item := range visible {
		label := m.combo.ItemToString(item)
		row := views.Row{Label: label}
		if r := m.rows[label]; r != nil {
			row.Highlighted = r.Highlighted()
			row.Selected = r.Selected()
		}
		rows[i] = row
	}

	vs := views.ViewState{
		Title:       m.config.Title,
		Input:       m.textInput.View(),
		Prompt:      m.textInput.Prompt,
		Preview:     s.InputText,
		ButtonLabel: m.button.Label(),
		Dropdown:    m.dropdown,
		Open:        s.IsOpen,
		Rows:        rows,
		Offset:      m.state.ViewportOffset,
		MaxVisible:  m.config.UI.MaxVisible,
		Status:      m.statusLine(),
		Error:       m.state.ErrorMessage,
	}
	if m.dropdown {
		vs.ButtonLabel = m.config.Placeholder
		if s.SelectedItem != nil {
			vs.ButtonLabel = m.combo.ItemToString(s.SelectedItem)
		}
	}
	if m.config.UI.ShowHelp {
		vs.Help = m.help.View(m.inputHandler.Keys())
	}

	out, layout := m.renderer.Render(vs)
	m.layout = layout
	return out
}

func (m *Model) statusLine() string {
	line := "nothing selected"
	if m.state.HasSelected {
		line = fmt.Sprintf("selected: %s", m.state.LastSelection)
	}
	if m.state.StatusMessage != "" {
		line += "  ·  " + m.state.StatusMessage
	}
	return line
}
