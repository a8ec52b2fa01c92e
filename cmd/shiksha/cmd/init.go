package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/f3rmion/shiksha/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize shiksha configuration",
	Long: `Initialize shiksha configuration files in your config directory.

This creates:
  - settings.yaml  (pluta policy, output scheme, history database, accent marks)
  - varnas.yaml    (a copy of the built-in Harvard-Kyoto phoneme table)

Edit varnas.yaml and set 'table: varnas.yaml' in settings.yaml to scan
with your own table.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	configDir := getConfigDir()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Initializing shiksha configuration in %s\n\n", configDir)

	created, err := writeTemplates(configDir, force)
	if err != nil {
		return err
	}
	for _, file := range created {
		fmt.Fprintf(out, "  Created %s\n", file)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Run 'shiksha scan agnimIDe purohitaM' to scan a line")
	fmt.Fprintln(out, "  2. Run 'shiksha' to explore scansions interactively")
	return nil
}

// writeTemplates writes settings.yaml and varnas.yaml into dir. Existing
// files are an error unless force is set.
func writeTemplates(dir string, force bool) ([]string, error) {
	if err := config.EnsureConfigDir(dir); err != nil {
		return nil, fmt.Errorf("creating config directory: %w", err)
	}

	files := []string{config.SettingsFile, config.TableFile}
	if !force {
		for _, file := range files {
			path := filepath.Join(dir, file)
			if _, err := os.Stat(path); err == nil {
				return nil, fmt.Errorf("config file already exists: %s\nUse --force to overwrite", path)
			}
		}
	}

	if err := config.SaveSettings(filepath.Join(dir, config.SettingsFile), config.DefaultSettings()); err != nil {
		return nil, err
	}
	if err := os.WriteFile(filepath.Join(dir, config.TableFile), config.DefaultTableYAML(), 0644); err != nil {
		return nil, fmt.Errorf("writing table file: %w", err)
	}
	return files, nil
}
