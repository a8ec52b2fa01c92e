package cmd

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/f3rmion/shiksha/internal/config"
	"github.com/f3rmion/shiksha/internal/render"
	"github.com/f3rmion/shiksha/internal/scansion"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Segment and scan lines interactively",
	Long: `Read lines from the terminal and print each one's phonetic units and
scansion. Type exit (any case) or press Ctrl-D to leave.`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}

	var historyFile string
	if err := config.EnsureConfigDir(e.dir); err == nil {
		historyFile = filepath.Join(e.dir, "repl_history")
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "shiksha> ",
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, "Type a line to segment and scan it; exit or Ctrl-D to quit")

	p := render.NewPrinter(out, render.FormatPlain, e.scheme(), e.settings.Policy)
	return repl(rl, out, e.analyzer, p)
}

type lineReader interface {
	Readline() (string, error)
}

// repl prints the segmentation and scansion of each line read from rl until
// exit or end of input.
func repl(rl lineReader, w io.Writer, a *scansion.Analyzer, p *render.Printer) error {
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.EqualFold(line, "exit") {
			return nil
		}

		if err := p.Tokens(a.Segment(line)); err != nil {
			return err
		}
		r, err := a.Analyze(line)
		if err != nil {
			_, _ = fmt.Fprintf(w, "error: %v\n", err)
			continue
		}
		if err := p.Result(r); err != nil {
			return err
		}
		_, _ = fmt.Fprintln(w)
	}
}
