package cmd

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"combobox/internal/config"
	"combobox/internal/eventbus"
	"combobox/internal/logging"
	"combobox/internal/ui"
)

var rootCmd = NewRootCmd()

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

// NewRootCmd builds the root command. Without a subcommand it runs the
// interactive combobox.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "combobox",
		Short: "combobox - an accessible autocomplete in the terminal",
		Long: `combobox runs a filterable single-select list in the terminal.

Items, filter mode and key bindings come from .combobox.toml in the
working directory (or --config). The committed selection is written back
to the same file.

Examples:
  # Pick from the configured items
  combobox

  # Use another config and log transitions
  combobox --config ~/heroes.toml --debug

  # Run a scripted interaction without a terminal
  combobox replay script.toml
`,
		SilenceUsage: true,
		RunE:         runRoot,
	}

	cmd.PersistentFlags().String("config", config.FileName, "Path to the config file")
	cmd.PersistentFlags().String("log", logging.DefaultFile, "Path to the log file")
	cmd.PersistentFlags().Bool("debug", false, "Log every combobox transition")

	cmd.AddCommand(ReplayCmd())
	return cmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	logPath, _ := cmd.Flags().GetString("log")
	debug, _ := cmd.Flags().GetBool("debug")

	closer, err := logging.Init(logPath, debug)
	if err != nil {
		return err
	}
	defer func() {
		if err := closer.Close(); err != nil {
			slog.Error("Error closing log file", "error", err)
		}
	}()

	bus := eventbus.New()
	defer bus.Close()

	// subscribe before Load so the load event reaches the UI
	forwarder := newUIForwarder(16)
	bus.Subscribe(eventbus.EventConfigLoaded, forwarder.Forward)
	bus.Subscribe(eventbus.EventConfigSaved, forwarder.Forward)
	defer subscribeActivityLog(bus, slog.Default().With("component", "activity"))()

	configSvc := config.NewConfigServiceWithBus(configPath, bus)
	cfg, err := configSvc.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	slog.Info("config loaded", "path", configSvc.Path(), "items", len(cfg.Items))

	model := ui.NewModel(cfg, bus)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	model.SetProgram(p)

	// persist every committed selection, in commit order
	saver := newSelectionSaver(configSvc, cfg)
	defer saver.Close()
	unsubSave := bus.Subscribe(eventbus.EventSelectionChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SelectionChangedEvent); ok {
			saver.Enqueue(event.Label)
		}
	})
	defer unsubSave()

	done := make(chan struct{})
	defer close(done)
	go forwarder.Run(p.Send, done)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	slog.Info("UI exited normally")
	return nil
}
