// Package config manages the per-user cronclaw files: the credentials
// record written by login and the optional defaults.toml preferences file.
// The credentials file format {apiUrl, apiKey} is fixed by the server
// product contract and is always JSON.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/aatumaykin/cronclaw/internal/constants"
)

// ErrNotLoggedIn is returned when no credentials are stored and no
// environment override is set.
var ErrNotLoggedIn = errors.New("not logged in")

// Credentials represents the stored credential record.
type Credentials struct {
	APIURL string `json:"apiUrl"`
	APIKey string `json:"apiKey"`
}

// Store reads and writes cronclaw files under a single directory.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// DefaultDir returns the per-user cronclaw directory.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config dir: %w", err)
	}
	return filepath.Join(base, constants.ConfigDirName), nil
}

// Path returns the full path of the credentials file.
func (s *Store) Path() string {
	return filepath.Join(s.dir, constants.ConfigFileName)
}

// Load reads credentials from disk and applies environment overrides.
// CRONCLAW_API_KEY replaces the stored key and is sufficient on its own:
// with the variable set, a missing credentials file is not an error.
// CRONCLAW_API_URL replaces the stored URL the same way.
func (s *Store) Load() (*Credentials, error) {
	creds := &Credentials{}

	data, err := os.ReadFile(s.Path())
	switch {
	case err == nil:
		if err := json.Unmarshal(data, creds); err != nil {
			return nil, fmt.Errorf("failed to parse credentials file %s: %w", s.Path(), err)
		}
	case os.IsNotExist(err):
		// Fall through to the environment overrides
	default:
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	if key := os.Getenv(constants.EnvAPIKey); key != "" {
		creds.APIKey = key
	}
	if apiURL := os.Getenv(constants.EnvAPIURL); apiURL != "" {
		creds.APIURL = apiURL
	}
	if creds.APIURL == "" {
		creds.APIURL = constants.DefaultAPIURL
	}

	if creds.APIKey == "" {
		return nil, ErrNotLoggedIn
	}

	return creds, nil
}

// Save writes the credentials file with owner-only permissions.
func (s *Store) Save(creds *Credentials) error {
	if err := creds.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory %s: %w", s.dir, err)
	}

	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode credentials: %w", err)
	}

	if err := os.WriteFile(s.Path(), data, 0600); err != nil {
		return fmt.Errorf("failed to write credentials file: %w", err)
	}

	return nil
}

// Remove deletes the credentials file. A missing file is not an error.
func (s *Store) Remove() error {
	err := os.Remove(s.Path())
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove credentials file: %w", err)
	}
	return nil
}

// Validate проверяет валидность credential record
func (c *Credentials) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("apiKey is required")
	}
	if c.APIURL == "" {
		return fmt.Errorf("apiUrl is required")
	}
	u, err := url.Parse(c.APIURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("invalid apiUrl: %s (expected: http or https URL)", c.APIURL)
	}
	return nil
}
