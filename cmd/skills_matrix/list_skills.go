package main

import (
	"github.com/jonathan/skills-matrix/internal/observability"
	"github.com/spf13/cobra"
)

var listSkillsCmd = &cobra.Command{
	Use:   "list-skills",
	Short: "List all skills by category",
	RunE:  runListSkills,
}

func init() {
	rootCmd.AddCommand(listSkillsCmd)
}

func runListSkills(cmd *cobra.Command, _ []string) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	_, categories, err := loadCatalog(settings.DataDir, false)
	if err != nil {
		return err
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintSkillList(categories)
	return nil
}
