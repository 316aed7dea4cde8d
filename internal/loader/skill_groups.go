package loader

import (
	"github.com/jonathan/skills-matrix/internal/types"
)

// LoadSkillGroups loads the optional skill_groups.yaml document. A missing
// file yields empty groups.
func LoadSkillGroups(path string) (*types.SkillGroups, error) {
	if !fileExists(path) {
		return types.EmptySkillGroups(), nil
	}

	doc, err := LoadDocument(path)
	if err != nil {
		return nil, err
	}
	root, err := asMapping(doc)
	if err != nil {
		return nil, &ConfigLoadError{Path: path, Reason: err.Error()}
	}

	groups := types.EmptySkillGroups()
	if v, ok := root["assessment_modes"]; ok && v != nil {
		groups.AssessmentModes = v
	}
	if v, ok := root["core_skills_by_role"]; ok && v != nil {
		groups.CoreSkillsByRole = v
	}
	if v, ok := root["groups"]; ok && v != nil {
		groups.Groups = v
	}
	if v, ok := root["inference_rules"]; ok && v != nil {
		groups.InferenceRules = v
	}

	return groups, nil
}
