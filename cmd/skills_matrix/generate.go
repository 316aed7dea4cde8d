package main

import (
	"fmt"

	"github.com/jonathan/skills-matrix/internal/loader"
	"github.com/jonathan/skills-matrix/internal/observability"
	"github.com/jonathan/skills-matrix/internal/workbook"
	"github.com/spf13/cobra"
)

var generateOutput string

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the skills matrix workbook",
	Long:  "Loads and validates the skill definitions, then writes the seven-sheet Excel workbook. Nothing is written when validation fails.",
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "output/skills_matrix.xlsx", "Path to output .xlsx file")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Loading skills from %s...\n", settings.DataDir)

	cfg, categories, err := loadCatalog(settings.DataDir, true)
	if err != nil {
		return err
	}

	if errs := loader.ValidateSkills(cfg, categories); len(errs) > 0 {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintValidationErrors(errs)
		return loader.NewValidationError(errs)
	}

	outputPath := workbookOutput(generateOutput, cmd.Flags().Changed("output"), settings, cfg)
	stats, err := workbook.Generate(cfg, categories, outputPath)
	if err != nil {
		return fmt.Errorf("failed to generate workbook: %w", err)
	}

	observability.NewPrinter(out).PrintGenerationStats(stats, outputPath)
	return nil
}
