package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

const configFileName = ".brasscal.toml"

// Config holds the application configuration. Everything that used to be
// a compiled-in constant lives here and is passed explicitly to the sync
// engine and the output writers.
type Config struct {
	// SourceSpreadsheetID is the read-only sheet holding the event rows.
	SourceSpreadsheetID string `toml:"source_spreadsheet_id"`
	// SourceRange is the data range within the source sheet.
	SourceRange string `toml:"source_range"`

	// MappingSpreadsheetID is the writable sheet tracking event IDs.
	MappingSpreadsheetID string `toml:"mapping_spreadsheet_id"`
	// MappingSheetName is the tab within the mapping spreadsheet.
	MappingSheetName string `toml:"mapping_sheet_name"`

	// MappingStore selects where row→event-ID associations are kept:
	// "sheet" (the mapping spreadsheet) or "sqlite" (a local database).
	MappingStore string `toml:"mapping_store"`
	// SQLitePath is the database file used when MappingStore is "sqlite".
	SQLitePath string `toml:"sqlite_path"`

	// CalendarIDs maps a lowercased ensemble label to the calendar that
	// receives its events. The DefaultCalendar key catches the rest.
	CalendarIDs     map[string]string `toml:"calendar_ids"`
	DefaultCalendar string            `toml:"default_calendar"`

	// Timezone is the label written into every calendar event.
	Timezone string `toml:"timezone"`

	// BandColors maps a Title-cased ensemble label to a calendar color
	// identifier. DefaultBand is the fallback key for unknown labels.
	BandColors  map[string]string `toml:"band_colors"`
	DefaultBand string            `toml:"default_band"`

	// BareDurationMinutes is the assumed duration of an event whose time
	// cell holds a single start time with no range.
	BareDurationMinutes int `toml:"bare_duration_minutes"`
}

// BareDuration returns the configured bare-start duration, defaulting to
// thirty minutes.
func (c *Config) BareDuration() time.Duration {
	if c.BareDurationMinutes <= 0 {
		return 30 * time.Minute
	}
	return time.Duration(c.BareDurationMinutes) * time.Minute
}

// MappingRange is the read range for event IDs: one ID per row, column A,
// starting at row 2.
func (c *Config) MappingRange() string {
	return fmt.Sprintf("%s!A2:A", c.MappingSheetName)
}

// Default returns the built-in configuration, used when no config file is
// present (the CSV path needs no IDs at all).
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.SourceRange == "" {
		c.SourceRange = "Sheet1!A2:G"
	}
	if c.MappingSheetName == "" {
		c.MappingSheetName = "EventIDs"
	}
	if c.MappingStore == "" {
		c.MappingStore = "sheet"
	}
	if c.SQLitePath == "" {
		c.SQLitePath = ".brasscal.db"
	}
	if c.Timezone == "" {
		c.Timezone = "America/New_York"
	}
	if c.DefaultCalendar == "" {
		c.DefaultCalendar = "all_events"
	}
	if c.DefaultBand == "" {
		c.DefaultBand = "Master"
	}
	if c.BandColors == nil {
		c.BandColors = map[string]string{
			"White":  "8",
			"Green":  "10",
			"Master": "7",
		}
	}
	if c.CalendarIDs == nil {
		c.CalendarIDs = map[string]string{}
	}
}

// Loader supplies configuration and OAuth artifacts. Implementations hide
// where these live so the core stays testable.
type Loader interface {
	LoadConfig() (*Config, error)
	LoadCredentials() ([]byte, error)
	LoadToken() ([]byte, error)
	SaveToken(token []byte) error
}

// FileLoader implements Loader by reading from the filesystem: the config
// file from the current directory first, then the config directory; the
// OAuth artifacts from the config directory.
type FileLoader struct {
	configDir string
}

// NewFileLoader initializes a FileLoader rooted at ~/.config/brasscal.
func NewFileLoader() (*FileLoader, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("unable to find user home directory: %w", err)
	}
	return &FileLoader{configDir: filepath.Join(homeDir, ".config", "brasscal")}, nil
}

// LoadConfig reads the TOML config file, trying the current directory
// before the config directory, and fills in defaults.
func (f *FileLoader) LoadConfig() (*Config, error) {
	data, err := os.ReadFile(configFileName)
	if err != nil {
		data, err = os.ReadFile(filepath.Join(f.configDir, configFileName))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", configFileName, err)
		}
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("toml.Unmarshal: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// LoadCredentials reads the credentials.json file.
func (f *FileLoader) LoadCredentials() ([]byte, error) {
	credentialsPath := filepath.Join(f.configDir, "credentials.json")
	b, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s): %w", credentialsPath, err)
	}
	return b, nil
}

// LoadToken reads the token.json file.
func (f *FileLoader) LoadToken() ([]byte, error) {
	return os.ReadFile(filepath.Join(f.configDir, "token.json"))
}

// SaveToken writes the token.json file.
func (f *FileLoader) SaveToken(token []byte) error {
	if err := os.MkdirAll(f.configDir, 0o700); err != nil {
		return fmt.Errorf("unable to create config directory: %w", err)
	}
	tokenPath := filepath.Join(f.configDir, "token.json")
	if err := os.WriteFile(tokenPath, token, 0o600); err != nil {
		return fmt.Errorf("unable to save token: %w", err)
	}
	return nil
}
