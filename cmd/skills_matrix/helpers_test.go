package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/skills-matrix/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
roles:
  - {id: data_analyst, name: Data Analyst, abbreviation: DA}
  - {id: data_engineer, name: Data Engineer, abbreviation: DE}
career_levels:
  - id: junior
    name: Junior
    abbreviation: Jr
    experience: 0-3 years
    description: Learning
    core_expected: [1, 2]
    secondary_expected: [0, 1]
skill_levels:
  standard:
    - {level: 0, name: No knowledge, description: Never used}
    - {level: 1, name: Beginner, description: Basic tasks}
    - {level: 2, name: Intermediate, description: Autonomous}
    - {level: 3, name: Advanced, description: Complex}
    - {level: 4, name: Expert, description: Full mastery}
colors:
  header: 3943B4
  categories:
    data_analysis: FFC8AA
  levels:
    "0": FFCFC9
    "4": 38761D
  core_secondary:
    core: 93C47D
    secondary: E6E6E6
output:
  default_filename: team_matrix.xlsx
category_order: [visualization, data_analysis]
`

const analysisYAML = `
category:
  id: data_analysis
  name: Data Analysis
skills:
  - id: sql
    name: SQL
    description: Write SQL queries
    core_roles: [data_analyst]
    levels:
      data_analyst: [1, 2, 3, 4]
      data_engineer: [1, 2, 3, 4]
    level_descriptions:
      0: None
      4: Expert
    resources:
      - url: https://docs.example.com/sql
        title: SQL Guide
        type: documentation
`

const visualizationYAML = `
category:
  id: visualization
  name: Visualization
skills:
  - id: tableau
    name: Tableau
    description: Build dashboards
    levels:
      data_analyst: [0, 1, 2, 3]
      data_engineer: [NC, NC, NC, NC]
`

const ghostRoleSkillYAML = `
category:
  id: broken
  name: Broken
skills:
  - id: spark
    name: Spark
    description: Distributed processing
    core_roles: [ghost_role]
    levels:
      data_analyst: [1, 2, 3, 4]
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// setupDataDir writes a valid catalog and returns its root.
func setupDataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "config.yaml"), testConfigYAML)
	writeFile(t, filepath.Join(dir, "skills", "analytics", "data_analysis.yaml"), analysisYAML)
	writeFile(t, filepath.Join(dir, "skills", "visualization.yaml"), visualizationYAML)
	return dir
}

func clearSettingsEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{config.EnvDataDir, config.EnvOutput, config.EnvWebOutput, config.EnvWatchDebounce} {
		t.Setenv(key, "")
	}
}

// resetFlags restores every flag to its default; package-level flag
// variables otherwise leak between executions.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}

// executeCommand runs the CLI in-process and captures its output.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	return executeCommandContext(t, context.Background(), args...)
}

func executeCommandContext(t *testing.T, ctx context.Context, args ...string) (string, string, error) {
	t.Helper()
	clearSettingsEnv(t)
	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.ExecuteContext(ctx)
	return stdout.String(), stderr.String(), err
}
