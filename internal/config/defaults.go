package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/aatumaykin/cronclaw/internal/constants"
)

// Defaults holds optional CLI preferences from defaults.toml.
// Every field is optional; a missing file yields the zero value.
type Defaults struct {
	Timezone string `toml:"timezone"` // default timezone for new jobs
	Output   string `toml:"output"`   // "table" or "json"
}

// LoadDefaults reads defaults.toml from the store directory.
func (s *Store) LoadDefaults() (*Defaults, error) {
	path := filepath.Join(s.dir, constants.DefaultsFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Defaults{}, nil
		}
		return nil, fmt.Errorf("failed to read defaults file: %w", err)
	}

	var d Defaults
	if err := toml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse defaults file %s: %w", path, err)
	}

	if d.Output != "" && d.Output != "table" && d.Output != "json" {
		return nil, fmt.Errorf("invalid output: %s (expected: table, json)", d.Output)
	}

	return &d, nil
}
