package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"combobox/internal/eventbus"
)

// FileName is the config file looked up in the working directory.
const FileName = ".combobox.toml"

// Filter modes
const (
	FilterPrefix   = "prefix"
	FilterContains = "contains"
)

// Variants
const (
	// VariantCombobox is a text input with a toggle button and a filtered list.
	VariantCombobox = "combobox"
	// VariantDropdown is a button showing the selection over the full list.
	VariantDropdown = "dropdown"
)

// ErrConfigNotFound is returned by LoadFromPath when the file does not exist.
var ErrConfigNotFound = errors.New("config file not found")

// Config represents the application configuration
type Config struct {
	Version     int      `toml:"version"`
	Title       string   `toml:"title"`
	Placeholder string   `toml:"placeholder"`
	Description string   `toml:"description"` // markdown, shown in help
	Items       []string `toml:"items"`
	Filter      string   `toml:"filter"`
	Variant     string   `toml:"variant"`
	Preview     bool     `toml:"preview"`
	// Controlled leaves hover, clicks and blur inert; only Enter commits.
	Controlled bool        `toml:"controlled"`
	Selected   string      `toml:"selected"`
	Keys       KeyBindings `toml:"keys"`
	UI         UISettings  `toml:"ui"`
}

// KeyBindings lists the keys bound to each command. Every entry accepts
// several keys in bubbletea notation.
type KeyBindings struct {
	Down   []string `toml:"down"`
	Up     []string `toml:"up"`
	Enter  []string `toml:"enter"`
	Escape []string `toml:"escape"`
	Toggle []string `toml:"toggle"`
	Blur   []string `toml:"blur"`
	Quit   []string `toml:"quit"`
	Help   []string `toml:"help"`
	Reset  []string `toml:"reset"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	MaxVisible int  `toml:"max_visible"`
	ShowHelp   bool `toml:"show_help"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service reading path. An empty path
// means FileName in the working directory.
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = FileName
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load reads the service's file, falling back to DefaultConfig when it is missing.
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, ErrConfigNotFound) {
		cfg = DefaultConfig()
	} else if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath, Items: len(cfg.Items)})
	}
	return cfg, nil
}

// Save writes config to the service's file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. Missing fields
// take their DefaultConfig values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks values the UI cannot recover from.
func (c *Config) Validate() error {
	switch c.Filter {
	case FilterPrefix, FilterContains:
	default:
		return fmt.Errorf("unknown filter %q (want %q or %q)", c.Filter, FilterPrefix, FilterContains)
	}
	switch c.Variant {
	case VariantCombobox, VariantDropdown:
	default:
		return fmt.Errorf("unknown variant %q (want %q or %q)", c.Variant, VariantCombobox, VariantDropdown)
	}
	if c.UI.MaxVisible < 1 {
		return fmt.Errorf("ui.max_visible must be positive, got %d", c.UI.MaxVisible)
	}
	return nil
}

const defaultDescription = `Type to filter the heroes. The list narrows to names that
start with what you typed.

- **Arrows** move the highlight and wrap around.
- **Enter** picks the highlighted hero, **Esc** clears everything.
- Leaving the input keeps the highlighted hero.`

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:     1,
		Title:       "Pick a hero",
		Placeholder: "type to filter",
		Description: defaultDescription,
		Items:       []string{"Spider-Man", "Hulk", "Thor", "Iron Man"},
		Filter:      FilterPrefix,
		Variant:     VariantCombobox,
		Preview:     false,
		Keys:        DefaultKeyBindings(),
		UI: UISettings{
			MaxVisible: 8,
			ShowHelp:   true,
		},
	}
}

// DefaultKeyBindings returns the built-in keymap
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Down:   []string{"down", "ctrl+n"},
		Up:     []string{"up", "ctrl+p"},
		Enter:  []string{"enter"},
		Escape: []string{"esc"},
		Toggle: []string{"ctrl+@", "alt+down"},
		Blur:   []string{"tab"},
		Quit:   []string{"ctrl+c"},
		Help:   []string{"f1"},
		Reset:  []string{"ctrl+r"},
	}
}
