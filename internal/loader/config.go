package loader

import (
	"fmt"
	"sort"

	"github.com/jonathan/skills-matrix/internal/types"
)

// LoadConfig loads the global configuration (config.yaml).
func LoadConfig(path string) (*types.Config, error) {
	doc, err := LoadDocument(path)
	if err != nil {
		return nil, err
	}

	root, err := asMapping(doc)
	if err != nil {
		return nil, &ConfigLoadError{Path: path, Reason: err.Error()}
	}

	if err := checkConfigKeys(root); err != nil {
		return nil, &ConfigLoadError{Path: path, Reason: err.Error()}
	}

	var cfg types.Config
	if err := decode(root, &cfg); err != nil {
		return nil, &ConfigLoadError{Path: path, Reason: "invalid configuration", Cause: err}
	}
	if err := checkFields(&cfg, ""); err != nil {
		return nil, &ConfigLoadError{Path: path, Reason: err.Error()}
	}
	if cfg.Output == nil {
		cfg.Output = map[string]any{}
	}
	if cfg.CategoryOrder == nil {
		cfg.CategoryOrder = []string{}
	}

	return &cfg, nil
}

// checkConfigKeys reports the first required key absent from the raw
// document. Present keys may hold empty values.
func checkConfigKeys(root map[string]any) error {
	if err := requireKeys(root, "", "roles", "career_levels", "skill_levels", "colors"); err != nil {
		return err
	}
	if err := requireEach(root["roles"], "roles", "id", "name", "abbreviation"); err != nil {
		return err
	}
	if err := requireEach(root["career_levels"], "career_levels",
		"id", "name", "abbreviation", "experience", "description", "core_expected", "secondary_expected"); err != nil {
		return err
	}

	if tiers, ok := root["skill_levels"].(map[string]any); ok {
		names := make([]string, 0, len(tiers))
		for tier := range tiers {
			names = append(names, tier)
		}
		sort.Strings(names)
		for _, tier := range names {
			if err := requireEach(tiers[tier], fmt.Sprintf("skill_levels[%s]", tier), "level", "name", "description"); err != nil {
				return err
			}
		}
	}

	colors, ok := root["colors"].(map[string]any)
	if !ok {
		return nil
	}
	if err := requireKeys(colors, "colors", "header", "core_secondary"); err != nil {
		return err
	}
	if coreSecondary, ok := colors["core_secondary"].(map[string]any); ok {
		return requireKeys(coreSecondary, "colors.core_secondary", types.ColorKeyCore, types.ColorKeySecondary)
	}
	return nil
}
