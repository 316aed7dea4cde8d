package loader

import (
	"path/filepath"
	"testing"

	"github.com/jonathan/skills-matrix/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCatalog_Clean(t *testing.T) {
	categories := []types.Category{{
		ID: "c",
		Skills: []types.Skill{{
			ID:        "sql",
			Resources: []types.Resource{{URL: "u", Title: "t", Type: "course"}},
		}},
	}}
	groups := &types.SkillGroups{
		CoreSkillsByRole: map[string]any{"data_analyst": []any{"sql"}},
		InferenceRules: []any{
			map[string]any{"source": "sql", "rules": []any{
				map[string]any{"targets": []any{map[string]any{"skill": "sql"}}},
			}},
		},
	}

	assert.Empty(t, ValidateCatalog(testConfig(), categories, groups))
	assert.Empty(t, ValidateCatalog(testConfig(), categories, types.EmptySkillGroups()))
	assert.Empty(t, ValidateCatalog(testConfig(), categories, nil))
}

func TestValidateCatalog_Defects(t *testing.T) {
	categories := []types.Category{
		{ID: "a", Skills: []types.Skill{{ID: "sql", Resources: []types.Resource{{URL: "u", Title: "t", Type: "podcast"}}}}},
		{ID: "b", Skills: []types.Skill{{ID: "sql"}}},
	}
	groups := &types.SkillGroups{
		CoreSkillsByRole: map[string]any{"ghost": []any{"python"}},
		InferenceRules: []any{
			map[string]any{"rules": []any{}},
			map[string]any{"source": "dbt", "rules": []any{
				map[string]any{"targets": []any{map[string]any{"skill": "spark"}}},
			}},
		},
	}

	errs := ValidateCatalog(testConfig(), categories, groups)
	assert.Equal(t, []string{
		"Skill 'sql' has resource with invalid type 'podcast'. Valid types: documentation, tutorial, course, book, video",
		"Duplicate skill ID 'sql' in category 'b' (first seen in 'a')",
		"core_skills_by_role references unknown role 'ghost'",
		"core_skills_by_role[ghost] references unknown skill 'python'",
		"inference_rules[0] is missing a source skill ID",
		"inference_rules: source skill 'dbt' does not exist",
		"inference_rules: target skill 'spark' (from source 'dbt') does not exist",
	}, errs)
}

func TestLoadSkillGroups(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		groups, err := LoadSkillGroups(filepath.Join(t.TempDir(), "skill_groups.yaml"))
		require.NoError(t, err)
		assert.Equal(t, types.EmptySkillGroups(), groups)
	})

	t.Run("present file", func(t *testing.T) {
		path := writeFile(t, filepath.Join(t.TempDir(), "skill_groups.yaml"), `
assessment_modes:
  quick: {label: Quick}
core_skills_by_role:
  data_analyst: [sql]
inference_rules:
  - source: sql
`)
		groups, err := LoadSkillGroups(path)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"quick": map[string]any{"label": "Quick"}}, groups.AssessmentModes)
		assert.Equal(t, map[string]any{"data_analyst": []any{"sql"}}, groups.CoreSkillsByRole)
		assert.Equal(t, map[string]any{}, groups.Groups)
		assert.Len(t, groups.InferenceRules, 1)
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeFile(t, filepath.Join(t.TempDir(), "skill_groups.yaml"), "")
		_, err := LoadSkillGroups(path)
		require.Error(t, err)
	})
}
