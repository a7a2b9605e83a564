package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"combobox/internal/logging"
	"combobox/internal/replay"
)

// ReplayCmd returns the replay subcommand
func ReplayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay <script.toml|script.yaml>",
		Short: "Run a scripted combobox interaction and print each state",
		Long: `Replay drives a headless combobox through the steps of a TOML or
YAML script (.yaml/.yml, with the steps under "steps:").

Script format:
  items    = ["Spider-Man", "Hulk", "Thor", "Iron Man"]
  filter   = "prefix"      # or "contains"
  selected = "Thor"        # initial selection, optional
  preview  = false         # show the highlighted label while navigating

  [[step]]
  action = "InputChange"
  text   = "i"

  [[step]]
  action = "InputKeydownArrowDown"
  hold   = true            # keep the deferred key queued

  [[step]]
  flush = true             # run one frame

  [[step]]
  write = "Hulk"           # set the value from outside, no onChange
`,
		Args: cobra.ExactArgs(1),
		RunE: runReplay,
	}
	return cmd
}

func runReplay(cmd *cobra.Command, args []string) error {
	debug, _ := cmd.Flags().GetBool("debug")

	script, err := replay.Load(args[0])
	if err != nil {
		return err
	}

	logger := slog.Default()
	if debug {
		logger = logging.New(cmd.ErrOrStderr(), true)
	}

	runner, err := replay.NewRunner(script, logger)
	if err != nil {
		return err
	}
	_, err = runner.Run(cmd.OutOrStdout())
	return err
}
