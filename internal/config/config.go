// Package config provides settings loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Default settings.
const (
	DefaultDataDir       = "data"
	DefaultOutput        = "output/skills_matrix.xlsx"
	DefaultWebOutput     = "web/static/data/skills-data.json"
	DefaultWatchDebounce = 300
)

// Settings represents CLI settings that can be loaded from a JSON file.
// All fields are optional; missing values fall back to the environment and
// then to defaults. Explicit CLI flags always win.
type Settings struct {
	DataDir         string `json:"data_dir,omitempty"`          // Root holding config.yaml and skills/
	Output          string `json:"output,omitempty"`            // Workbook path for generate
	WebOutput       string `json:"web_output,omitempty"`        // Bundle path for build-web-data and check-web-data
	WatchDebounceMS int    `json:"watch_debounce_ms,omitempty"` // Quiet period before watch rebuilds
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		DataDir:         DefaultDataDir,
		Output:          DefaultOutput,
		WebOutput:       DefaultWebOutput,
		WatchDebounceMS: DefaultWatchDebounce,
	}
}

// LoadSettings loads settings from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadSettings(path string) (*Settings, error) {
	if path == "" {
		return nil, fmt.Errorf("settings path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse settings JSON: %w", err)
	}

	return &s, nil
}

// Validate checks that the settings have usable values.
// Note: the data directory is not required to exist here since commands
// report a missing config.yaml with a better message.
func (s *Settings) Validate() error {
	if s.WatchDebounceMS < 0 {
		return fmt.Errorf("settings error: 'watch_debounce_ms' must be non-negative")
	}
	if s.Output != "" && filepath.Ext(s.Output) != ".xlsx" {
		return fmt.Errorf("settings error: 'output' must be an .xlsx path: %s", s.Output)
	}
	if s.WebOutput != "" && filepath.Ext(s.WebOutput) != ".json" {
		return fmt.Errorf("settings error: 'web_output' must be a .json path: %s", s.WebOutput)
	}
	if s.DataDir != "" {
		if info, err := os.Stat(s.DataDir); err == nil && !info.IsDir() {
			return fmt.Errorf("settings error: data_dir is not a directory: %s", s.DataDir)
		}
	}
	return nil
}

// MergeWithDefaults returns new Settings with empty fields filled from defaults.
func (s *Settings) MergeWithDefaults(defaults Settings) Settings {
	result := *s

	if result.DataDir == "" {
		result.DataDir = defaults.DataDir
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.WebOutput == "" {
		result.WebOutput = defaults.WebOutput
	}
	if result.WatchDebounceMS == 0 {
		result.WatchDebounceMS = defaults.WatchDebounceMS
	}

	return result
}

// Resolve layers an optional settings file over the environment and the
// built-in defaults. An empty path skips the file.
func Resolve(path string) (Settings, error) {
	env := FromEnv()
	base := env.MergeWithDefaults(Defaults())

	if path == "" {
		return base, base.Validate()
	}

	file, err := LoadSettings(path)
	if err != nil {
		return Settings{}, err
	}
	merged := file.MergeWithDefaults(base)
	return merged, merged.Validate()
}
