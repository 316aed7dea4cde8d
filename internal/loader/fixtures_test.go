package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleConfigYAML = `
roles:
  - id: data_analyst
    name: Data Analyst
    abbreviation: DA
  - id: data_engineer
    name: Data Engineer
    abbreviation: DE
career_levels:
  - id: junior
    name: Junior
    abbreviation: Jr
    experience: 0-3 years
    description: Learning
    core_expected: [1, 2]
    secondary_expected: [0, 1]
  - id: senior
    name: Senior
    abbreviation: Sr
    experience: 5-10 years
    description: Expert
    core_expected: [3, 4]
    secondary_expected: [2, 3]
skill_levels:
  standard:
    - {level: 0, name: No knowledge, description: Never used}
    - {level: 1, name: Beginner, description: Basic tasks}
    - {level: 2, name: Intermediate, description: Autonomous}
    - {level: 3, name: Advanced, description: Complex}
    - {level: 4, name: Expert, description: Full mastery}
  bonus:
    - {level: 5, name: Mentor, description: Trains teams}
colors:
  header: 3943B4
  categories:
    data_analysis: FFC8AA
  levels:
    "0": FFCFC9
    "1": FFE5A0
    "2": D4EDBC
    "3": 93C47D
    "4": 38761D
  core_secondary:
    core: 93C47D
    secondary: E6E6E6
output:
  default_filename: test.xlsx
category_order: [data_analysis]
`

const sampleSkillYAML = `
category:
  id: data_analysis
  name: Data Analysis
skills:
  - id: sql
    name: SQL
    description: Write SQL queries
    core_roles: [data_analyst, data_engineer]
    levels:
      data_analyst: [1, 2, 3, 4]
      data_engineer: [1, 2, 3, 4]
    level_descriptions:
      0: No knowledge
      1: Basic SELECT
      2: JOINs and CTEs
      3: Optimization
      4: Expert
    resources:
      - url: https://docs.example.com/sql
        title: SQL Guide
        type: documentation
`

// categoryYAML builds a minimal category document.
func categoryYAML(id, name string, skills string) string {
	return "category:\n  id: " + id + "\n  name: " + name + "\nskills:\n" + skills
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
