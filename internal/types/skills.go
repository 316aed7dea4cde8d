package types

import "strings"

// DefaultResourceType is used when a resource declares no type.
const DefaultResourceType = "documentation"

// ResourceTypes lists the resource types the catalog lint accepts.
var ResourceTypes = []string{"documentation", "tutorial", "course", "book", "video"}

// Resource is an external learning reference attached to a skill.
type Resource struct {
	URL   string `mapstructure:"url" json:"url"`
	Title string `mapstructure:"title" json:"title"`
	Type  string `mapstructure:"type" json:"type"`
}

// Skill is a competency with expected levels per role.
type Skill struct {
	ID                string                `mapstructure:"id" json:"id"`
	Name              string                `mapstructure:"name" json:"name"`
	Description       string                `mapstructure:"description" json:"description"`
	CoreRoles         []string              `mapstructure:"core_roles" json:"core_roles"`
	Levels            map[string]LevelTuple `mapstructure:"levels" json:"levels"`
	LevelDescriptions map[int]string        `mapstructure:"level_descriptions" json:"level_descriptions"`
	Resources         []Resource            `mapstructure:"resources" json:"resources,omitempty" validate:"dive"`
	ImprovementTips   map[string]string     `mapstructure:"improvement_tips" json:"improvement_tips,omitempty"`
}

// IsCore reports whether the skill is foundational for roleID.
func (s *Skill) IsCore(roleID string) bool {
	for _, id := range s.CoreRoles {
		if id == roleID {
			return true
		}
	}
	return false
}

// LevelsFor returns the expected levels for roleID, all NC when absent.
func (s *Skill) LevelsFor(roleID string) LevelTuple {
	if t, ok := s.Levels[roleID]; ok {
		return t
	}
	return AllNC()
}

// FormatResources renders resources as "• title: url" lines.
func (s *Skill) FormatResources() string {
	if len(s.Resources) == 0 {
		return ""
	}
	lines := make([]string, 0, len(s.Resources))
	for _, r := range s.Resources {
		lines = append(lines, "• "+r.Title+": "+r.URL)
	}
	return strings.Join(lines, "\n")
}

// Category groups skills loaded from one file.
type Category struct {
	ID     string  `mapstructure:"id" json:"id"`
	Name   string  `mapstructure:"name" json:"name"`
	Skills []Skill `mapstructure:"-" json:"skills"`
}

// CountSkills totals skills across categories.
func CountSkills(categories []Category) int {
	total := 0
	for _, c := range categories {
		total += len(c.Skills)
	}
	return total
}
