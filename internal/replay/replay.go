// Package replay drives a headless combobox from a TOML script and prints
// the state after every step.
package replay

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"combobox/internal/combobox"
	"combobox/internal/config"
	"combobox/internal/scheduler"
)

var (
	// ErrUnknownAction is returned for a step naming no catalog action.
	ErrUnknownAction = errors.New("unknown action")
	// ErrUnknownItem is returned when a step refers to a label not in items.
	ErrUnknownItem = errors.New("unknown item")
	// ErrEmptyStep is returned for a step that does nothing.
	ErrEmptyStep = errors.New("step has no action, write or flush")
)

// Script is a replay file, TOML or YAML.
type Script struct {
	Items    []string `toml:"items" yaml:"items"`
	Filter   string   `toml:"filter" yaml:"filter"`
	Selected string   `toml:"selected" yaml:"selected"`
	Preview  bool     `toml:"preview" yaml:"preview"`
	// Controlled makes hover, clicks and blur inert; only Enter commits.
	Controlled bool   `toml:"controlled" yaml:"controlled"`
	Steps      []Step `toml:"step" yaml:"steps"`
}

// Step is one scripted interaction. Exactly one of Action, Write or Flush
// is expected.
type Step struct {
	Action string  `toml:"action" yaml:"action"`
	Text   string  `toml:"text" yaml:"text"`
	Item   string  `toml:"item" yaml:"item"`
	Write  *string `toml:"write" yaml:"write"`
	Flush  bool    `toml:"flush" yaml:"flush"`
	// Hold keeps deferred callbacks queued instead of flushing after the step.
	Hold bool `toml:"hold" yaml:"hold"`
}

// Result is the state observed after one step.
type Result struct {
	Step    int
	Label   string
	State   combobox.State
	Changes []string // labels passed to onChange during the step
	Touched int
}

func (r Result) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%3d %-28s open=%-5t highlighted=%-2d selected=%q input=%q",
		r.Step, r.Label, r.State.IsOpen, r.State.HighlightedIndex,
		combobox.StringItem(r.State.SelectedItem), r.State.InputValue)
	if r.State.InputText != "" {
		fmt.Fprintf(&b, " text=%q", r.State.InputText)
	}
	for _, c := range r.Changes {
		fmt.Fprintf(&b, "\n    onChange(%q)", c)
	}
	if r.Touched > 0 {
		fmt.Fprintf(&b, "\n    onTouched x%d", r.Touched)
	}
	return b.String()
}

// Load reads and parses a script file. Files ending in .yaml or .yml are
// read as YAML, everything else as TOML.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	}
	return Parse(data)
}

// Parse decodes a TOML script. Missing items and filter default to the
// app's built-in configuration.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	return s.withDefaults()
}

// ParseYAML decodes a YAML script, where steps live under "steps".
func ParseYAML(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	return s.withDefaults()
}

func (s Script) withDefaults() (*Script, error) {
	def := config.DefaultConfig()
	if len(s.Items) == 0 {
		s.Items = def.Items
	}
	if s.Filter == "" {
		s.Filter = def.Filter
	}
	if s.Filter != config.FilterPrefix && s.Filter != config.FilterContains {
		return nil, fmt.Errorf("parse script: unknown filter %q", s.Filter)
	}
	return &s, nil
}

// Runner executes a script against a fresh controller.
type Runner struct {
	script  *Script
	items   map[string]combobox.Item
	combo   *combobox.Controller
	frames  *scheduler.FrameQueue
	changes []string
	touched int
}

// NewRunner builds the controller described by s.
func NewRunner(s *Script, logger *slog.Logger) (*Runner, error) {
	r := &Runner{
		script: s,
		items:  make(map[string]combobox.Item, len(s.Items)),
		frames: scheduler.NewFrameQueue(),
	}
	items := combobox.StringItems(s.Items)
	for _, it := range items {
		r.items[combobox.StringItem(it)] = it
	}

	visible := combobox.PrefixFilter(items, combobox.StringItem)
	if s.Filter == config.FilterContains {
		visible = combobox.ContainsFilter(items, combobox.StringItem)
	}
	var hook combobox.Reducer
	switch {
	case s.Controlled:
		hook = combobox.ControlledReducer(visible, combobox.StringItem)
	case s.Preview:
		hook = combobox.PreviewHighlightReducer(visible, combobox.StringItem)
	}

	opts := []combobox.Option{
		combobox.WithVisibleItems(visible),
		combobox.WithScheduler(r.frames),
		combobox.WithReducer(hook),
		combobox.WithLogger(logger),
	}
	if s.Selected != "" {
		item, err := r.item(s.Selected)
		if err != nil {
			return nil, err
		}
		opts = append(opts, combobox.WithInitialSelection(item))
	}

	r.combo = combobox.New(combobox.StringItem, opts...)
	r.combo.RegisterOnChange(func(item combobox.Item) {
		r.changes = append(r.changes, combobox.StringItem(item))
	})
	r.combo.RegisterOnTouched(func() { r.touched++ })
	return r, nil
}

// Controller exposes the driven combobox.
func (r *Runner) Controller() *combobox.Controller {
	return r.combo
}

// Run executes every step, writing one line per step to w when w is not nil.
func (r *Runner) Run(w io.Writer) ([]Result, error) {
	results := make([]Result, 0, len(r.script.Steps))
	for i, step := range r.script.Steps {
		res, err := r.Step(i+1, step)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		results = append(results, res)
		if w != nil {
			if _, err := fmt.Fprintln(w, res); err != nil {
				return results, err
			}
		}
	}
	return results, nil
}

// Step applies a single step and flushes the frame queue unless the step holds.
func (r *Runner) Step(n int, step Step) (Result, error) {
	r.changes = nil
	r.touched = 0

	label, err := r.apply(step)
	if err != nil {
		return Result{}, err
	}
	if !step.Hold {
		r.frames.Drain(4)
	}

	return Result{
		Step:    n,
		Label:   label,
		State:   r.combo.State(),
		Changes: r.changes,
		Touched: r.touched,
	}, nil
}

func (r *Runner) apply(step Step) (string, error) {
	switch {
	case step.Action != "":
		return r.dispatch(step)
	case step.Write != nil:
		var item combobox.Item
		if *step.Write != "" {
			it, err := r.item(*step.Write)
			if err != nil {
				return "", err
			}
			item = it
		}
		r.combo.WriteValue(item)
		return fmt.Sprintf("write(%q)", *step.Write), nil
	case step.Flush:
		n := r.frames.Flush()
		return fmt.Sprintf("flush(%d)", n), nil
	}
	return "", ErrEmptyStep
}

func (r *Runner) dispatch(step Step) (string, error) {
	at, ok := combobox.ParseActionType(step.Action)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, step.Action)
	}
	label := at.String()

	switch at {
	case combobox.MenuToggle:
		r.combo.Toggle()
	case combobox.MenuOpen:
		r.combo.Open()
	case combobox.MenuClose:
		r.combo.Close()
	case combobox.ButtonClick:
		r.combo.HandleButtonClick()
	case combobox.InputBlur:
		r.combo.HandleInputBlur()
	case combobox.InputChange:
		r.combo.HandleInputChange(step.Text)
		label = fmt.Sprintf("%s(%q)", label, step.Text)
	case combobox.InputKeydownArrowDown:
		r.combo.HandleInputKeydown(combobox.KeyArrowDown)
	case combobox.InputKeydownArrowUp:
		r.combo.HandleInputKeydown(combobox.KeyArrowUp)
	case combobox.InputKeydownEnter:
		r.combo.HandleInputKeydown(combobox.KeyEnter)
	case combobox.InputKeydownEsc:
		r.combo.HandleInputKeydown(combobox.KeyEscape)
	case combobox.ItemMouseClick, combobox.ItemMouseEnter, combobox.ItemMouseLeave:
		item, err := r.item(step.Item)
		if err != nil {
			return "", err
		}
		switch at {
		case combobox.ItemMouseClick:
			r.combo.HandleItemMouseDown(item)
		case combobox.ItemMouseEnter:
			r.combo.HandleItemMouseEnter(item)
		default:
			r.combo.HandleItemMouseLeave(item)
		}
		label = fmt.Sprintf("%s(%q)", label, step.Item)
	}
	return label, nil
}

func (r *Runner) item(label string) (combobox.Item, error) {
	item, ok := r.items[label]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownItem, label)
	}
	return item, nil
}
