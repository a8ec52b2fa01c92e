package cmd

import (
	"github.com/spf13/cobra"

	"github.com/f3rmion/shiksha/internal/render"
	"github.com/f3rmion/shiksha/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved scans",
	Long: `List scans saved with 'shiksha scan --save' or from the TUI, newest
first. --pattern shows only lines with exactly that L/G/P pattern.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	addFormatFlag(historyCmd, render.FormatTable)
	historyCmd.Flags().IntP("limit", "n", 20, "maximum number of scans (0 for all)")
	historyCmd.Flags().String("pattern", "", "only scans with this pattern, e.g. GLGG")
	historyCmd.Flags().String("delete", "", "delete the scan with this id")
}

func runHistory(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	p, err := e.printer(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	st, err := e.openStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	if id, _ := cmd.Flags().GetString("delete"); id != "" {
		if err := st.Delete(ctx, id); err != nil {
			return err
		}
		e.logger.Info("deleted scan", "id", id)
		return nil
	}

	var scans []*store.Scan
	if pattern, _ := cmd.Flags().GetString("pattern"); pattern != "" {
		scans, err = st.FindPattern(ctx, pattern)
	} else {
		limit, _ := cmd.Flags().GetInt("limit")
		scans, err = st.List(ctx, limit)
	}
	if err != nil {
		return err
	}
	return p.History(scans)
}
