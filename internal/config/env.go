package config

import (
	"os"
	"strconv"
)

// Environment variables read by FromEnv.
const (
	EnvDataDir       = "SKILLS_MATRIX_DATA_DIR"
	EnvOutput        = "SKILLS_MATRIX_OUTPUT"
	EnvWebOutput     = "SKILLS_MATRIX_WEB_OUTPUT"
	EnvWatchDebounce = "SKILLS_MATRIX_WATCH_DEBOUNCE_MS"
)

// FromEnv reads settings from the environment. Unset or unparsable values
// are left empty.
func FromEnv() Settings {
	s := Settings{
		DataDir:   os.Getenv(EnvDataDir),
		Output:    os.Getenv(EnvOutput),
		WebOutput: os.Getenv(EnvWebOutput),
	}
	if v := os.Getenv(EnvWatchDebounce); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			s.WatchDebounceMS = ms
		}
	}
	return s
}
