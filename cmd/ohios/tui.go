package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/joshuapare/ohios/cmd/ohios/tui"
	"github.com/joshuapare/ohios/internal/logger"
)

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start the full-screen interface",
		Long: `The tui command opens a full-screen terminal interface with a shell pane,
a live memory and process status pane, command history and a help overlay.

Keys:
  enter    run the typed command
  ↑/↓      browse command history
  tab      complete a command name
  ctrl+y   copy the last result to the clipboard
  ctrl+l   clear the shell pane
  f1       toggle help
  ctrl+c   quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDispatcher()
			if err != nil {
				return err
			}

			m := tui.New(d, tui.Options{Prompt: cfg.Prompt})
			p := tea.NewProgram(
				m,
				tea.WithAltScreen(), // Use alternate screen buffer
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)

			if _, err := p.Run(); err != nil {
				logger.Error("TUI error", "error", err)
				return fmt.Errorf("running TUI: %w", err)
			}
			logger.Info("tui exited normally")
			return nil
		},
	}
}
