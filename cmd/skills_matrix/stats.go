package main

import (
	"github.com/jonathan/skills-matrix/internal/observability"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show counts of categories, skills, roles and levels",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	cfg, categories, err := loadCatalog(settings.DataDir, true)
	if err != nil {
		return err
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintCatalogStats(cfg, categories)
	return nil
}
