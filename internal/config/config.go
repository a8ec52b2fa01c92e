// Package config handles loading and saving user configuration and phoneme
// tables for shiksha.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/f3rmion/shiksha/internal/chandas"
	"github.com/f3rmion/shiksha/internal/varna"
	"gopkg.in/yaml.v3"
)

// File names inside the config directory.
const (
	SettingsFile = "settings.yaml"
	TableFile    = "varnas.yaml"
	DatabaseFile = "scans.db"
)

//go:embed varnas.yaml
var defaultTableYAML []byte

// Settings holds user preferences.
type Settings struct {
	Policy   chandas.Policy `yaml:"policy"`   // "extended" or "heavy": how pluta vowels are weighed
	Scheme   varna.Scheme   `yaml:"scheme"`   // output rendering: hk, devanagari, unicode
	Database string         `yaml:"database"` // scan history path; relative paths live in the config dir
	Table    string         `yaml:"table"`    // phoneme table path; empty uses the built-in table
	Accents  bool           `yaml:"accents"`  // read Baraha accent marks (q anudaatta, # svarita)
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() Settings {
	return Settings{
		Policy:   chandas.ProlongedExtended,
		Scheme:   varna.SchemeHarvardKyoto,
		Database: DatabaseFile,
	}
}

// Validate checks that the settings name known variants.
func (s Settings) Validate() error {
	if _, err := chandas.ParsePolicy(string(s.Policy)); err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	if _, err := varna.ParseScheme(string(s.Scheme)); err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	return nil
}

// LoadSettings loads settings from a YAML file. Missing fields keep their
// defaults.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("reading settings file: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parsing settings file: %w", err)
	}
	if s.Database == "" {
		s.Database = DatabaseFile
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// SaveSettings saves settings to a YAML file.
func SaveSettings(path string, s Settings) error {
	out, err := yaml.Marshal(&s)
	if err != nil {
		return fmt.Errorf("marshaling settings: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing settings file: %w", err)
	}

	return nil
}

type tableDoc struct {
	Varnas []varna.Unit `yaml:"varnas"`
}

// ParseTable builds a phoneme table from YAML. Unknown attribute names and
// duplicate keys are errors.
func ParseTable(data []byte) (*varna.Table, error) {
	var doc tableDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing table: %w", err)
	}
	if len(doc.Varnas) == 0 {
		return nil, fmt.Errorf("parsing table: no varnas")
	}

	table, err := varna.NewTable(doc.Varnas...)
	if err != nil {
		return nil, fmt.Errorf("building table: %w", err)
	}
	return table, nil
}

// LoadTable loads a phoneme table from a YAML file.
func LoadTable(path string) (*varna.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading table file: %w", err)
	}
	return ParseTable(data)
}

// SaveTable writes a phoneme table to a YAML file.
func SaveTable(path string, table *varna.Table) error {
	out, err := yaml.Marshal(&tableDoc{Varnas: table.Units()})
	if err != nil {
		return fmt.Errorf("marshaling table: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing table file: %w", err)
	}

	return nil
}

// DefaultTable returns the built-in Harvard-Kyoto table.
func DefaultTable() *varna.Table {
	table, err := ParseTable(defaultTableYAML)
	if err != nil {
		panic(fmt.Sprintf("built-in table: %v", err))
	}
	return table
}

// DefaultTableYAML returns the built-in table source, for writing templates.
func DefaultTableYAML() []byte {
	return append([]byte(nil), defaultTableYAML...)
}

// Resolve returns path unchanged if it is absolute, otherwise joined to dir.
func Resolve(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// DatabasePath returns where the scan history lives. An empty Database
// means the default file in dir.
func (s Settings) DatabasePath(dir string) string {
	if s.Database == "" {
		return filepath.Join(dir, DatabaseFile)
	}
	return Resolve(dir, s.Database)
}

// LoadTableFor returns the table named by the settings, or the built-in one.
func LoadTableFor(dir string, s Settings) (*varna.Table, error) {
	if s.Table == "" {
		return DefaultTable(), nil
	}
	return LoadTable(Resolve(dir, s.Table))
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "shiksha"), nil
}

// EnsureConfigDir creates the config directory if it doesn't exist.
func EnsureConfigDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
