package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validBundle = `{
  "_source_hash": "0123456789abcdef",
  "roles": [{"id": "data_analyst", "name": "Data Analyst", "abbreviation": "DA"}],
  "levels": [{"id": "junior", "name": "Junior", "core_expected": [1, 2], "secondary_expected": [0, 1]}],
  "skill_levels": {"standard": [{"level": 0, "name": "None", "description": "Never used"}]},
  "categories": [{"id": "data", "name": "Data", "skill_count": 1}],
  "skills": [{
    "id": "sql",
    "name": "SQL",
    "category": "data",
    "category_name": "Data Analysis",
    "levels": {"data_analyst": [1, 2, "NC", 4]},
    "level_descriptions": {"0": "None"}
  }],
  "assessment_modes": {},
  "core_skills_by_role": {},
  "skill_groups": {},
  "inference_rules": []
}`

func TestValidateSkillsData_Valid(t *testing.T) {
	assert.NoError(t, ValidateSkillsData([]byte(validBundle)))
}

func TestValidateSkillsData_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		document string
		field    string
	}{
		{
			name:     "missing key",
			document: `{"_source_hash": "0123456789abcdef"}`,
			field:    "(root)",
		},
		{
			name: "short hash",
			document: `{"_source_hash": "abc", "roles": [], "levels": [], "skill_levels": {},
				"categories": [], "skills": [], "assessment_modes": {}, "core_skills_by_role": {},
				"skill_groups": {}, "inference_rules": []}`,
			field: "_source_hash",
		},
		{
			name: "level out of vocabulary",
			document: `{"_source_hash": "0123456789abcdef", "roles": [], "levels": [], "skill_levels": {},
				"categories": [], "skills": [{"id": "sql", "name": "SQL", "category": "d", "category_name": "D",
				"levels": {"da": [1, 2, "high", 4]}}], "assessment_modes": {}, "core_skills_by_role": {},
				"skill_groups": {}, "inference_rules": []}`,
			field: "skills.0.levels.da.2",
		},
		{
			name: "inference rules not a list",
			document: `{"_source_hash": "0123456789abcdef", "roles": [], "levels": [], "skill_levels": {},
				"categories": [], "skills": [], "assessment_modes": {}, "core_skills_by_role": {},
				"skill_groups": {}, "inference_rules": {}}`,
			field: "inference_rules",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSkillsData([]byte(tt.document))
			require.Error(t, err)

			validationErr, ok := err.(*ValidationError)
			require.True(t, ok, "error should be ValidationError type, got %T", err)

			fields := make([]string, 0, len(validationErr.Errors))
			for _, fe := range validationErr.Errors {
				fields = append(fields, fe.Field)
			}
			assert.Contains(t, fields, tt.field)
		})
	}
}

func TestValidateSkillsDataFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "skills-data.json")
	require.NoError(t, os.WriteFile(path, []byte(validBundle), 0644))

	assert.NoError(t, ValidateSkillsDataFile(path))

	err := ValidateSkillsDataFile(filepath.Join(tmpDir, "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateEmbedded_UnknownSchema(t *testing.T) {
	err := ValidateEmbedded("nope.schema.json", []byte(`{}`))
	require.Error(t, err)

	var schemaErr *SchemaLoadError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "nope.schema.json", schemaErr.Path)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "roles", Message: "is required"},
			{Field: "skills.0.name", Message: "must be a string"},
		},
	}

	errorMsg := err.Error()
	assert.Contains(t, errorMsg, "validation failed")
	assert.Contains(t, errorMsg, "1. roles")
	assert.Contains(t, errorMsg, "2. skills.0.name")
}
