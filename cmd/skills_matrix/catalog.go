package main

import (
	"fmt"
	"path/filepath"

	"github.com/jonathan/skills-matrix/internal/config"
	"github.com/jonathan/skills-matrix/internal/loader"
	"github.com/jonathan/skills-matrix/internal/types"
	"github.com/spf13/cobra"
)

// resolveSettings layers explicit flags over the settings file, the
// environment and the defaults.
func resolveSettings(cmd *cobra.Command) (config.Settings, error) {
	settings, err := config.Resolve(settingsPath)
	if err != nil {
		return config.Settings{}, err
	}
	if cmd.Flags().Changed("data-dir") {
		settings.DataDir = dataDir
	}
	return settings, nil
}

// loadCatalog loads config.yaml and every category file. With ordered set,
// categories follow the config's category_order.
func loadCatalog(dir string, ordered bool) (*types.Config, []types.Category, error) {
	cfg, err := loader.LoadConfig(loader.ConfigPath(dir))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	var order []string
	if ordered {
		order = cfg.CategoryOrder
	}
	categories, err := loader.LoadAllCategories(loader.SkillsDir(dir), order)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load skills: %w", err)
	}

	return cfg, categories, nil
}

// workbookOutput picks the workbook path: the -o flag, then a configured
// output, then output.default_filename from config.yaml, then the default.
func workbookOutput(flagValue string, flagSet bool, settings config.Settings, cfg *types.Config) string {
	if flagSet {
		return flagValue
	}
	if settings.Output != "" && settings.Output != config.DefaultOutput {
		return settings.Output
	}
	if name := cfg.DefaultFilename(); name != "" {
		return filepath.Join(filepath.Dir(config.DefaultOutput), name)
	}
	return config.DefaultOutput
}
