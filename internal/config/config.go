package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the persistent defaults for calendar generation. CLI flags
// override individual fields per invocation.
type Config struct {
	// UTCOffsetMinutes is the fixed offset of the campus timezone from UTC.
	// May be negative. Defaults to +8h (Singapore).
	UTCOffsetMinutes int `yaml:"utc_offset_minutes"`

	// RecessWeek is the 1-based calendar week of the term's recess week.
	// Teaching-week numbers at or above it shift up by one.
	RecessWeek uint32 `yaml:"recess_week"`

	// CalendarName is the display name embedded in the ICS output.
	CalendarName string `yaml:"calendar_name"`

	// ProdID is the iCalendar PRODID property.
	ProdID string `yaml:"prod_id"`

	// Out is the default output path for the generated calendar.
	Out string `yaml:"out"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		UTCOffsetMinutes: 8 * 60,
		RecessWeek:       8,
		CalendarName:     "Semester timetable",
		ProdID:           "-//ntucal//EN",
		Out:              "./cal.ics",
	}
}

// Normalize fills in missing/zero values so partially-filled config files
// still behave correctly.
func (c *Config) Normalize() {
	def := DefaultConfig()
	if c.UTCOffsetMinutes == 0 {
		c.UTCOffsetMinutes = def.UTCOffsetMinutes
	}
	if c.RecessWeek == 0 {
		c.RecessWeek = def.RecessWeek
	}
	if c.CalendarName == "" {
		c.CalendarName = def.CalendarName
	}
	if c.ProdID == "" {
		c.ProdID = def.ProdID
	}
	if c.Out == "" {
		c.Out = def.Out
	}
}

// DefaultPath returns the per-user config location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "ntucal", "config.yaml"), nil
}

// Load loads configuration from the given YAML path. If the file does not
// exist, a default config is written there (0600) and returned.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()

	return &cfg, nil
}

// Save writes the configuration to path atomically (temp file + rename)
// with 0600 permissions, creating the parent directory if needed.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".ntucal-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
