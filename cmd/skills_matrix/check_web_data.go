package main

import (
	"fmt"

	"github.com/jonathan/skills-matrix/internal/schemas"
	"github.com/jonathan/skills-matrix/internal/webdata"
	"github.com/spf13/cobra"
)

var checkWebDataJSON string

var checkWebDataCmd = &cobra.Command{
	Use:   "check-web-data",
	Short: "Check that the web data bundle is up to date",
	Long:  "Compares the source hash stored in skills-data.json with the current YAML sources. Fails when the bundle is missing or stale and warns when an up-to-date bundle does not match the schema; never writes.",
	RunE:  runCheckWebData,
}

func init() {
	checkWebDataCmd.Flags().StringVar(&checkWebDataJSON, "json", "web/static/data/skills-data.json", "Path to the JSON bundle")
	rootCmd.AddCommand(checkWebDataCmd)
}

func runCheckWebData(cmd *cobra.Command, _ []string) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	jsonPath := settings.WebOutput
	if cmd.Flags().Changed("json") {
		jsonPath = checkWebDataJSON
	}

	result, err := webdata.Check(settings.DataDir, jsonPath)
	if err != nil {
		return fmt.Errorf("failed to check web data: %w", err)
	}

	out := cmd.OutOrStdout()
	if result.UpToDate() {
		_, _ = fmt.Fprintf(out, "✓ %s is up to date (%s)\n", jsonPath, result.CurrentHash)
		if err := schemas.ValidateSkillsDataFile(jsonPath); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s does not match the bundle schema: %v\n", jsonPath, err)
		}
		return nil
	}

	switch result.Status {
	case webdata.StatusMissing:
		_, _ = fmt.Fprintf(out, "ERROR: %s does not exist.\n", jsonPath)
	case webdata.StatusInvalid:
		_, _ = fmt.Fprintf(out, "ERROR: %s is not valid JSON.\n", jsonPath)
	case webdata.StatusStale:
		stored := result.StoredHash
		if stored == "" {
			stored = "none"
		}
		_, _ = fmt.Fprintln(out, "WARNING: YAML sources have changed since last data build.")
		_, _ = fmt.Fprintf(out, "  Stored hash: %s\n", stored)
		_, _ = fmt.Fprintf(out, "  Current hash: %s\n", result.CurrentHash)
	}
	_, _ = fmt.Fprintln(out, "Run: skills_matrix build-web-data")

	return fmt.Errorf("web data is %s", result.Status)
}
