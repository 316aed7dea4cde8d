// Package main provides the skills_matrix CLI, which turns YAML skill
// definitions into an assessment workbook and a web data bundle.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	dataDir      string
	settingsPath string
)

var rootCmd = &cobra.Command{
	Use:           "skills_matrix",
	Short:         "Skills matrix generator",
	Long:          "Skills matrix turns YAML skill definitions, organized by category, role and career level, into an Excel assessment workbook and a JSON bundle for the web app.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dataDir, "data-dir", "d", "data", "Directory holding config.yaml and skills/")
	rootCmd.PersistentFlags().StringVar(&settingsPath, "config", "", "Path to CLI settings JSON file (optional)")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
