// Package types provides type definitions for the skills matrix data model.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Role identifies a job function, e.g. "Data Analyst".
type Role struct {
	ID           string `mapstructure:"id" json:"id"`
	Name         string `mapstructure:"name" json:"name"`
	Abbreviation string `mapstructure:"abbreviation" json:"abbreviation"`
}

// CareerLevel is a seniority band with expected proficiency ranges for
// core and secondary skills. Ranges are [min, max] on the 0-4 scale.
type CareerLevel struct {
	ID                string `mapstructure:"id" json:"id"`
	Name              string `mapstructure:"name" json:"name"`
	Abbreviation      string `mapstructure:"abbreviation" json:"abbreviation"`
	Experience        string `mapstructure:"experience" json:"experience"`
	Description       string `mapstructure:"description" json:"description"`
	CoreExpected      []int  `mapstructure:"core_expected" json:"core_expected" validate:"len=2"`
	SecondaryExpected []int  `mapstructure:"secondary_expected" json:"secondary_expected" validate:"len=2"`
}

// SkillLevel is one rung of the proficiency scale.
type SkillLevel struct {
	Level       int    `mapstructure:"level" json:"level" validate:"min=0"`
	Name        string `mapstructure:"name" json:"name"`
	Description string `mapstructure:"description" json:"description"`
}

// Skill level tiers in Config.SkillLevels.
const (
	TierStandard = "standard"
	TierBonus    = "bonus"
)

// Keys of ColorConfig.CoreSecondary.
const (
	ColorKeyCore      = "core"
	ColorKeySecondary = "secondary"
)

// ColorConfig holds color tokens (hex RGB) used by the workbook.
type ColorConfig struct {
	Header        string            `mapstructure:"header" json:"header"`
	Categories    map[string]string `mapstructure:"categories" json:"categories"`
	Levels        map[string]string `mapstructure:"levels" json:"levels"`
	CoreSecondary map[string]string `mapstructure:"core_secondary" json:"core_secondary"`
}

// CoreColor returns the fill used for the "C" marker.
func (c ColorConfig) CoreColor() string {
	return c.CoreSecondary[ColorKeyCore]
}

// SecondaryColor returns the fill used for the "S" marker.
func (c ColorConfig) SecondaryColor() string {
	return c.CoreSecondary[ColorKeySecondary]
}

// Config is the global configuration loaded from config.yaml.
type Config struct {
	Roles         []Role                  `mapstructure:"roles" json:"roles" validate:"dive"`
	CareerLevels  []CareerLevel           `mapstructure:"career_levels" json:"career_levels" validate:"dive"`
	SkillLevels   map[string][]SkillLevel `mapstructure:"skill_levels" json:"skill_levels" validate:"dive,dive"`
	Colors        ColorConfig             `mapstructure:"colors" json:"colors"`
	Output        map[string]any          `mapstructure:"output" json:"output"`
	CategoryOrder []string                `mapstructure:"category_order" json:"category_order"`
}

// AllSkillLevels returns the standard levels followed by the bonus levels.
func (c *Config) AllSkillLevels() []SkillLevel {
	levels := make([]SkillLevel, 0, len(c.SkillLevels[TierStandard])+len(c.SkillLevels[TierBonus]))
	levels = append(levels, c.SkillLevels[TierStandard]...)
	levels = append(levels, c.SkillLevels[TierBonus]...)
	return levels
}

// HasRole reports whether id names a configured role.
func (c *Config) HasRole(id string) bool {
	for _, r := range c.Roles {
		if r.ID == id {
			return true
		}
	}
	return false
}

// DefaultFilename returns output.default_filename, or "" when unset.
func (c *Config) DefaultFilename() string {
	name, _ := c.Output["default_filename"].(string)
	return name
}
