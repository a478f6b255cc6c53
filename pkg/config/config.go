package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/slboard/slboard/pkg/board"
	"github.com/slboard/slboard/pkg/util"
	"gopkg.in/yaml.v3"
)

const DefaultScanIntervalSeconds = 60
const DefaultNumDepartures = 3

const DefaultPath = "config.yaml"

// ConfigError marks invalid user entered configuration, as opposed to
// upstream fetch or parse failures.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config %s: %s", e.Field, e.Err)
	}
	return fmt.Sprintf("config: %s", e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

type Config struct {
	Entries []BoardEntry `yaml:"entries" validate:"required,dive"`
}

// BoardEntry is one configured departure board, matching what the setup
// wizard writes out.
type BoardEntry struct {
	ID string `yaml:"id" validate:"required"`

	SiteID   string `yaml:"site_id" validate:"required,numeric"`
	SiteName string `yaml:"site_name"`

	TransportModes []string `yaml:"transport_modes" validate:"dive,oneof=BUS TRAIN METRO TRAM SHIP FERRY TAXI"`
	LineFilter     string   `yaml:"line_filter"`
	DirectionCode  string   `yaml:"direction_code" validate:"omitempty,numeric"`
	DirectionName  string   `yaml:"direction_name"`

	ScanInterval  int `yaml:"scan_interval" validate:"omitempty,min=30,max=300"`
	NumDepartures int `yaml:"num_departures" validate:"omitempty,min=1,max=5"`

	History bool `yaml:"history"`
}

func (e *BoardEntry) FilterOptions() board.FilterOptions {
	return board.FilterOptionsFromStrings(e.TransportModes, e.LineFilter, e.DirectionCode)
}

func (e *BoardEntry) RefreshRate() time.Duration {
	return time.Duration(e.ScanInterval) * time.Second
}

// Path returns the config file location, overridable with SLBOARD_CONFIG.
func Path() string {
	return util.Env("SLBOARD_CONFIG", DefaultPath)
}

func Load(path string) (*Config, error) {
	yamlBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Err: err}
	}

	var loadedConfig Config
	if err := yaml.Unmarshal(yamlBytes, &loadedConfig); err != nil {
		return nil, &ConfigError{Err: err}
	}

	if err := loadedConfig.Validate(); err != nil {
		return nil, err
	}

	loadedConfig.applyDefaults()

	return &loadedConfig, nil
}

func (c *Config) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
			first := validationErrors[0]
			return &ConfigError{Field: first.Namespace(), Err: fmt.Errorf("failed validation %q", first.Tag())}
		}

		return &ConfigError{Err: err}
	}

	seenIDs := map[string]bool{}
	for _, entry := range c.Entries {
		if seenIDs[entry.ID] {
			return &ConfigError{Field: entry.ID, Err: fmt.Errorf("duplicate entry id")}
		}
		seenIDs[entry.ID] = true
	}

	return nil
}

func (c *Config) applyDefaults() {
	for i := range c.Entries {
		if c.Entries[i].ScanInterval == 0 {
			c.Entries[i].ScanInterval = DefaultScanIntervalSeconds
		}
		if c.Entries[i].NumDepartures == 0 {
			c.Entries[i].NumDepartures = DefaultNumDepartures
		}
	}
}

// Entry looks up a single board entry by its id.
func (c *Config) Entry(id string) *BoardEntry {
	for i := range c.Entries {
		if c.Entries[i].ID == id {
			return &c.Entries[i]
		}
	}

	return nil
}

// Save writes the config back out, used by the setup wizard when adding
// entries.
func (c *Config) Save(path string) error {
	yamlBytes, err := yaml.Marshal(c)
	if err != nil {
		return &ConfigError{Err: err}
	}

	if err := os.WriteFile(path, yamlBytes, 0644); err != nil {
		return &ConfigError{Err: err}
	}

	return nil
}
