// Package cmd contains all CLI commands for the shiksha tool.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/f3rmion/shiksha/internal/akshara"
	"github.com/f3rmion/shiksha/internal/chandas"
	"github.com/f3rmion/shiksha/internal/config"
	"github.com/f3rmion/shiksha/internal/scansion"
	"github.com/f3rmion/shiksha/internal/store"
	"github.com/f3rmion/shiksha/internal/varna"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "shiksha",
	Short: "Sanskrit phonetic segmentation and metrical scansion",
	Long: `shiksha splits Harvard-Kyoto transliterated Sanskrit into phonetic units,
groups them into syllables and weighs each syllable for metre.

  laghu (L)  light, 1 kaala
  guru  (G)  heavy, 2 kaala
  pluta (P)  prolonged, 3 kaala

Running 'shiksha' without arguments launches the interactive TUI.`,
	RunE:         runInteractive,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and runs it.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config directory (default is $HOME/.config/shiksha)")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose output")
	rootCmd.PersistentFlags().String("policy", "", "how pluta vowels are weighed: extended or heavy")
	rootCmd.PersistentFlags().String("scheme", "", "output scheme: hk, devanagari or unicode")
	rootCmd.PersistentFlags().String("table", "", "phoneme table YAML (default is the built-in table)")
	rootCmd.PersistentFlags().String("db", "", "scan history database")
	rootCmd.PersistentFlags().Bool("accents", false, "read Baraha accent marks: q anudaatta, # svarita")

	for _, name := range []string{"verbose", "policy", "scheme", "table", "db", "accents"} {
		viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.Set("config_dir", cfgFile)
	} else {
		dir, err := config.GetConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.SetDefault("config_dir", dir)
	}

	viper.SetEnvPrefix("SHIKSHA")
	viper.AutomaticEnv()
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if viper.GetBool("verbose") {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// loadSettings reads settings.yaml from the config directory, if present,
// then applies flag and environment overrides.
func loadSettings(dir string) (config.Settings, error) {
	s, err := config.LoadSettings(filepath.Join(dir, config.SettingsFile))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return s, err
		}
		s = config.DefaultSettings()
	}

	if v := viper.GetString("policy"); v != "" {
		s.Policy = chandas.Policy(v)
	}
	if v := viper.GetString("scheme"); v != "" {
		s.Scheme = varna.Scheme(v)
	}
	if v := viper.GetString("table"); v != "" {
		s.Table = v
	}
	if v := viper.GetString("db"); v != "" {
		s.Database = v
	}
	if viper.GetBool("accents") {
		s.Accents = true
	}
	return s, s.Validate()
}

// env is everything a command needs to scan text.
type env struct {
	dir      string
	settings config.Settings
	logger   *slog.Logger
	analyzer *scansion.Analyzer
}

func loadEnv() (*env, error) {
	dir := getConfigDir()
	logger := newLogger()

	settings, err := loadSettings(dir)
	if err != nil {
		return nil, err
	}
	policy, _ := chandas.ParsePolicy(string(settings.Policy))
	settings.Policy = policy

	table, err := config.LoadTableFor(dir, settings)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded configuration",
		"config_dir", dir,
		"policy", settings.Policy,
		"scheme", settings.Scheme,
		"accents", settings.Accents,
		"units", table.Len(),
	)

	opts := []scansion.Option{scansion.WithPolicy(policy), scansion.WithLogger(logger)}
	if settings.Accents {
		opts = append(opts, scansion.WithAccentMarkers(akshara.BarahaAccents()))
	}

	return &env{
		dir:      dir,
		settings: settings,
		logger:   logger,
		analyzer: scansion.New(table, opts...),
	}, nil
}

func (e *env) scheme() varna.Scheme {
	s, _ := varna.ParseScheme(string(e.settings.Scheme))
	return s
}

// openStore opens the history database, creating the config directory when
// the database lives inside it.
func (e *env) openStore(ctx context.Context) (*store.Store, error) {
	path := e.settings.DatabasePath(e.dir)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}
	e.logger.Debug("opening history", "path", path)
	return store.Open(ctx, path)
}
