package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/f3rmion/shiksha/internal/clipboard"
	"github.com/f3rmion/shiksha/internal/tui"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i", "ui"},
	Short:   "Launch interactive TUI",
	Long: `Launch an interactive terminal UI for exploring scansions.

Controls:
  Enter       Analyze line
  ←/→         Move between syllables
  y           Copy the pattern to the clipboard
  s           Save the scan to history
  i           Edit the line again
  Esc         Back / quit`,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}

	if !clipboard.Available() {
		e.logger.Warn("no clipboard tool found, copying patterns will fail")
	}

	opts := []tui.Option{tui.WithScheme(e.scheme())}
	if st, err := e.openStore(cmd.Context()); err != nil {
		e.logger.Warn("history unavailable", "error", err)
	} else {
		defer st.Close()
		opts = append(opts, tui.WithStore(st))
	}

	p := tea.NewProgram(
		tui.New(e.analyzer, opts...),
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
