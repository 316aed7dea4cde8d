package types

// SkillGroups is the optional skill_groups.yaml document consumed by the
// web bundle. Sections are kept exactly as decoded from YAML.
type SkillGroups struct {
	AssessmentModes  any
	CoreSkillsByRole any
	Groups           any
	InferenceRules   any
}

// InferenceRule infers target skill levels from a source skill.
type InferenceRule struct {
	Source string              `mapstructure:"source"`
	Rules  []InferenceRuleStep `mapstructure:"rules"`
}

// InferenceRuleStep is one condition of an InferenceRule.
type InferenceRuleStep struct {
	Targets []InferenceTarget `mapstructure:"targets"`
}

// InferenceTarget names a skill affected by an inference rule.
type InferenceTarget struct {
	Skill string `mapstructure:"skill"`
}

// EmptySkillGroups is used when skill_groups.yaml is absent.
func EmptySkillGroups() *SkillGroups {
	return &SkillGroups{
		AssessmentModes:  map[string]any{},
		CoreSkillsByRole: map[string]any{},
		Groups:           map[string]any{},
		InferenceRules:   []any{},
	}
}
