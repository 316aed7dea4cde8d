package loader

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonathan/skills-matrix/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Valid(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "config.yaml"), sampleConfigYAML)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	require.Len(t, cfg.Roles, 2)
	assert.Equal(t, types.Role{ID: "data_analyst", Name: "Data Analyst", Abbreviation: "DA"}, cfg.Roles[0])

	require.Len(t, cfg.CareerLevels, 2)
	assert.Equal(t, []int{1, 2}, cfg.CareerLevels[0].CoreExpected)
	assert.Equal(t, []int{2, 3}, cfg.CareerLevels[1].SecondaryExpected)

	assert.Len(t, cfg.SkillLevels[types.TierStandard], 5)
	assert.Len(t, cfg.SkillLevels[types.TierBonus], 1)
	assert.Equal(t, 5, cfg.SkillLevels[types.TierBonus][0].Level)
	assert.Len(t, cfg.AllSkillLevels(), 6)

	assert.Equal(t, "3943B4", cfg.Colors.Header)
	assert.Equal(t, "38761D", cfg.Colors.Levels["4"])
	assert.Equal(t, "93C47D", cfg.Colors.CoreColor())
	assert.Equal(t, "E6E6E6", cfg.Colors.SecondaryColor())

	assert.Equal(t, "test.xlsx", cfg.DefaultFilename())
	assert.Equal(t, []string{"data_analysis"}, cfg.CategoryOrder)
}

func TestLoadConfig_Defaults(t *testing.T) {
	content := strings.Replace(sampleConfigYAML, "output:\n  default_filename: test.xlsx\ncategory_order: [data_analysis]\n", "", 1)
	path := writeFile(t, filepath.Join(t.TempDir(), "config.yaml"), content)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.CategoryOrder)
	assert.NotNil(t, cfg.Output)
	assert.Equal(t, "", cfg.DefaultFilename())
}

func TestLoadConfig_MissingField(t *testing.T) {
	tests := []struct {
		name    string
		content string
		field   string
	}{
		{
			name:    "missing roles",
			content: "career_levels: []\nskill_levels: {}\ncolors: {header: '000000', core_secondary: {core: a, secondary: b}}\n",
			field:   "roles",
		},
		{
			name:    "missing role abbreviation",
			content: strings.Replace(sampleConfigYAML, "    abbreviation: DA\n", "", 1),
			field:   "roles[0].abbreviation",
		},
		{
			name:    "missing career level range",
			content: strings.Replace(sampleConfigYAML, "    core_expected: [1, 2]\n", "", 1),
			field:   "career_levels[0].core_expected",
		},
		{
			name:    "missing skill level number",
			content: strings.Replace(sampleConfigYAML, "{level: 5, name: Mentor", "{name: Mentor", 1),
			field:   "skill_levels[bonus][0].level",
		},
		{
			name:    "missing core color",
			content: strings.Replace(sampleConfigYAML, "    core: 93C47D\n", "", 1),
			field:   "colors.core_secondary.core",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, filepath.Join(t.TempDir(), "config.yaml"), tt.content)

			_, err := LoadConfig(path)
			require.Error(t, err)

			loadErr, ok := err.(*ConfigLoadError)
			require.True(t, ok, "error should be ConfigLoadError type")
			assert.Equal(t, path, loadErr.Path)
			assert.Contains(t, loadErr.Error(), "missing required field: "+tt.field)
		})
	}
}

func TestLoadConfig_EmptyValuesAccepted(t *testing.T) {
	content := strings.Replace(sampleConfigYAML, "    abbreviation: DA\n", "    abbreviation: \"\"\n", 1)
	content = strings.Replace(content, "{level: 5, name: Mentor, description: Trains teams}", "{level: 5, name: Mentor, description: \"\"}", 1)
	content = strings.Replace(content, "  header: 3943B4\n", "  header: \"\"\n", 1)
	path := writeFile(t, filepath.Join(t.TempDir(), "config.yaml"), content)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Roles[0].Abbreviation)
	assert.Equal(t, "DE", cfg.Roles[1].Abbreviation)
	assert.Equal(t, "", cfg.SkillLevels["bonus"][0].Description)
	assert.Equal(t, "", cfg.Colors.Header)
}

func TestLoadConfig_InvalidRange(t *testing.T) {
	content := strings.Replace(sampleConfigYAML, "core_expected: [1, 2]", "core_expected: [1, 2, 3]", 1)
	path := writeFile(t, filepath.Join(t.TempDir(), "config.yaml"), content)

	_, err := LoadConfig(path)
	require.Error(t, err)

	loadErr, ok := err.(*ConfigLoadError)
	require.True(t, ok, "error should be ConfigLoadError type")
	assert.Contains(t, loadErr.Error(), "career_levels[0].core_expected")
}

func TestLoadConfig_RootNotMapping(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "config.yaml"), "- a\n- b\n")

	_, err := LoadConfig(path)
	require.Error(t, err)

	_, ok := err.(*ConfigLoadError)
	assert.True(t, ok, "error should be ConfigLoadError type")
}
