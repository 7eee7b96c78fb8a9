// Package config manages environment settings and the stored credential.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	env "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	ini "gopkg.in/ini.v1"
)

const (
	configDirName  = ".reocities"
	configFileName = "config"

	credentialSection = "default"
	credentialKey     = "api_key"
)

// Env holds settings read from the environment. A .env file in the working
// directory is honored when present.
type Env struct {
	BaseURL string `env:"API_URL" envDefault:""`
	APIKey  string `env:"API_KEY" envDefault:""`
}

// LoadEnv reads REOCITIES_-prefixed settings from the environment,
// loading a local .env file first when one exists.
func LoadEnv() (Env, error) {
	_ = godotenv.Load()
	var e Env
	if err := env.ParseWithOptions(&e, env.Options{
		Prefix: "REOCITIES_",
	}); err != nil {
		return Env{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return e, nil
}

// Store persists the API key under the user's home directory in an INI
// credential file (~/.reocities/config) with owner-only permissions.
type Store struct {
	dir  string
	path string
}

// NewStore returns a store rooted at the user's home directory.
func NewStore() (*Store, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to locate home directory: %w", err)
	}
	return NewStoreAt(filepath.Join(home, configDirName)), nil
}

// NewStoreAt returns a store rooted at dir. Used by tests.
func NewStoreAt(dir string) *Store {
	return &Store{dir: dir, path: filepath.Join(dir, configFileName)}
}

// Path returns the credential file location.
func (s *Store) Path() string {
	return s.path
}

// LoadAPIKey returns the stored key, or "" when no credential file exists.
func (s *Store) LoadAPIKey() (string, error) {
	if _, err := os.Stat(s.path); err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to stat credential file: %w", err)
	}
	cfg, err := ini.Load(s.path)
	if err != nil {
		return "", fmt.Errorf("failed to read credential file %s: %w", s.path, err)
	}
	return cfg.Section(credentialSection).Key(credentialKey).String(), nil
}

// SaveAPIKey writes the key, creating the directory 0700 and the file 0600.
func (s *Store) SaveAPIKey(apiKey string) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	cfg := ini.Empty()
	cfg.Section(credentialSection).Key(credentialKey).SetValue(apiKey)
	if err := cfg.SaveTo(s.path); err != nil {
		return fmt.Errorf("failed to write credential file: %w", err)
	}
	if err := os.Chmod(s.path, 0o600); err != nil {
		return fmt.Errorf("failed to restrict credential file permissions: %w", err)
	}
	return nil
}

// Clear removes the credential file and reports whether one existed.
func (s *Store) Clear() (bool, error) {
	if err := os.Remove(s.path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to remove credential file: %w", err)
	}
	return true, nil
}
