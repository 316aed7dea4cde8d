package main

import (
	"fmt"

	"github.com/jonathan/skills-matrix/internal/observability"
	"github.com/jonathan/skills-matrix/internal/webdata"
	"github.com/spf13/cobra"
)

var buildWebDataOutput string

var buildWebDataCmd = &cobra.Command{
	Use:   "build-web-data",
	Short: "Build the JSON bundle for the web app",
	Long:  "Consolidates config.yaml, skill_groups.yaml and every category file into skills-data.json, stamped with a hash of the YAML sources.",
	RunE:  runBuildWebData,
}

func init() {
	buildWebDataCmd.Flags().StringVarP(&buildWebDataOutput, "output", "o", "web/static/data/skills-data.json", "Path to output JSON file")
	rootCmd.AddCommand(buildWebDataCmd)
}

func runBuildWebData(cmd *cobra.Command, _ []string) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	outputPath := settings.WebOutput
	if cmd.Flags().Changed("output") {
		outputPath = buildWebDataOutput
	}

	return buildWebData(cmd, settings.DataDir, outputPath)
}

func buildWebData(cmd *cobra.Command, dir, outputPath string) error {
	bundle, err := webdata.Build(dir)
	if err != nil {
		return fmt.Errorf("failed to build web data: %w", err)
	}

	result, err := webdata.Write(bundle, outputPath)
	if err != nil {
		return fmt.Errorf("failed to write web data: %w", err)
	}
	if result.SchemaWarning != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s does not match the bundle schema: %v\n", outputPath, result.SchemaWarning)
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintBundleSummary(bundle, outputPath)
	return nil
}
