package cmd

import (
	"github.com/spf13/cobra"

	"github.com/f3rmion/shiksha/internal/render"
)

func addFormatFlag(cmd *cobra.Command, def render.Format) {
	cmd.Flags().StringP("format", "f", string(def), "output format: table, json or plain")
}

// printer builds a printer for the command's --format flag.
func (e *env) printer(cmd *cobra.Command) (*render.Printer, error) {
	name, _ := cmd.Flags().GetString("format")
	format, err := render.ParseFormat(name)
	if err != nil {
		return nil, err
	}
	return render.NewPrinter(cmd.OutOrStdout(), format, e.scheme(), e.settings.Policy), nil
}
