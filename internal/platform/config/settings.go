// Package config loads service settings from an optional YAML file with
// environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SettingsFileName is the YAML file searched for in the working directory
// and the user config directory.
const SettingsFileName = "breeze.yml"

// Settings carries everything the server needs at startup. Precedence, low
// to high: defaults, YAML file, environment variables.
type Settings struct {
	// BreezeURL is the https address of the Breeze account subdomain.
	BreezeURL string `yaml:"breeze_url"`
	// APIKey is the Breeze account API key.
	APIKey string `yaml:"api_key"`
	// Port is the HTTP listen port.
	Port string `yaml:"port"`
	// UseMock serves pre-populated demo data instead of calling Breeze.
	UseMock bool `yaml:"use_mock"`
}

// Load reads settings from the first SettingsFileName found in the search
// path, then applies environment overrides. A missing file is not an error;
// a file that exists but cannot be parsed is.
func Load() (Settings, error) {
	s := Settings{Port: "8080"}

	path, err := findSettingsFile(searchDirs())
	if err != nil {
		return Settings{}, err
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Settings{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &s); err != nil {
			return Settings{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	applyEnv(&s)
	if s.Port == "" {
		s.Port = "8080"
	}
	return s, nil
}

// searchDirs returns the settings file search path: the working directory
// first, then the user config directory.
func searchDirs() []string {
	dirs := []string{"."}
	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, configDir)
	}
	return dirs
}

func findSettingsFile(dirs []string) (string, error) {
	for _, dir := range dirs {
		path := filepath.Join(dir, SettingsFileName)
		_, err := os.Stat(path)
		if err == nil {
			return path, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("config: stat %s: %w", path, err)
		}
	}
	return "", nil
}

func applyEnv(s *Settings) {
	if v := os.Getenv("BREEZE_URL"); v != "" {
		s.BreezeURL = v
	}
	if v := os.Getenv("BREEZE_API_KEY"); v != "" {
		s.APIKey = v
	}
	if v := os.Getenv("PORT"); v != "" {
		s.Port = v
	}
	if v := os.Getenv("BREEZE_USE_MOCK"); v != "" {
		s.UseMock = v == "1" || v == "true"
	}
}
