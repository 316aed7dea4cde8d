package main

import (
	"fmt"

	"github.com/jonathan/skills-matrix/internal/loader"
	"github.com/jonathan/skills-matrix/internal/observability"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the YAML skill definitions",
	Long:  "Loads config.yaml, every category file and skill_groups.yaml, then checks role references, level coverage, duplicate ids and group references.",
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	cfg, err := loader.LoadConfig(loader.ConfigPath(settings.DataDir))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	_, _ = fmt.Fprintf(out, "✓ config.yaml: %d roles, %d career levels\n", len(cfg.Roles), len(cfg.CareerLevels))

	categories, err := loader.LoadAllCategories(loader.SkillsDir(settings.DataDir), cfg.CategoryOrder)
	if err != nil {
		return fmt.Errorf("failed to load skills: %w", err)
	}
	for _, category := range categories {
		_, _ = fmt.Fprintf(out, "✓ %s: %d skills\n", category.ID, len(category.Skills))
	}

	groups, err := loader.LoadSkillGroups(loader.SkillGroupsPath(settings.DataDir))
	if err != nil {
		return fmt.Errorf("failed to load skill groups: %w", err)
	}

	errs := loader.ValidateSkills(cfg, categories)
	errs = append(errs, loader.ValidateCatalog(cfg, categories, groups)...)
	if len(errs) > 0 {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintValidationErrors(errs)
		return loader.NewValidationError(errs)
	}

	_, _ = fmt.Fprintln(out, "All skill definitions are valid.")
	return nil
}
