// Package observability provides formatted console output for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/skills-matrix/internal/loader"
	"github.com/jonathan/skills-matrix/internal/types"
	"github.com/jonathan/skills-matrix/internal/webdata"
	"github.com/jonathan/skills-matrix/internal/workbook"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted console output
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func truncate(line string, width int) string {
	if utf8.RuneCountInString(line) <= width {
		return line
	}
	runes := []rune(line)
	return string(runes[:width-3]) + "..."
}

// PrintGenerationStats outputs the summary of a generated workbook.
func (p *Printer) PrintGenerationStats(stats *workbook.Stats, outputPath string) {
	if stats == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("File:        %s\n", outputPath))
	sb.WriteString(fmt.Sprintf("Skills:      %d\n", stats.TotalSkills))
	sb.WriteString(fmt.Sprintf("Categories:  %d\n", stats.TotalCategories))
	sb.WriteString(fmt.Sprintf("Roles:       %d\n", stats.TotalRoles))
	sb.WriteString(fmt.Sprintf("Levels:      %d\n", stats.TotalCareerLevels))
	sb.WriteString(fmt.Sprintf("Profiles:    %d", stats.Profiles()))

	p.printBox("WORKBOOK GENERATED", sb.String())
}

// PrintValidationErrors lists every validation error, unabridged.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintValidationErrors(errs []string) {
	if len(errs) == 0 {
		return
	}
	verr := &loader.ValidationError{Errors: errs}
	fmt.Fprintf(p.out, "Validation failed with %d error(s):\n%s", len(errs), verr.Details())
}

// PrintSkillList outputs every category with its skill names.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintSkillList(categories []types.Category) {
	for _, category := range categories {
		fmt.Fprintf(p.out, "\n%s (%d skills)\n", category.Name, len(category.Skills))
		for _, skill := range category.Skills {
			fmt.Fprintf(p.out, "  • %s\n", skill.Name)
		}
	}
	fmt.Fprintf(p.out, "\nTotal: %d skills\n", types.CountSkills(categories))
}

// PrintCatalogStats outputs counts per category plus the configured roles,
// career levels and skill scale.
func (p *Printer) PrintCatalogStats(cfg *types.Config, categories []types.Category) {
	if cfg == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Categories: %d\n", len(categories)))
	for _, category := range categories {
		sb.WriteString(fmt.Sprintf("  %-40s %3d\n", category.Name, len(category.Skills)))
	}
	sb.WriteString(fmt.Sprintf("Total skills: %d\n", types.CountSkills(categories)))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Roles: %d\n", len(cfg.Roles)))
	for _, role := range cfg.Roles {
		sb.WriteString(fmt.Sprintf("  %-4s %s\n", role.Abbreviation, role.Name))
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Career levels: %d\n", len(cfg.CareerLevels)))
	for _, cl := range cfg.CareerLevels {
		sb.WriteString(fmt.Sprintf("  %-4s %s (%s)\n", cl.Abbreviation, cl.Name, cl.Experience))
	}
	sb.WriteString("\n")

	levels := cfg.AllSkillLevels()
	sb.WriteString(fmt.Sprintf("Skill scale: %d levels\n", len(levels)))
	count := min(len(levels), maxItemsToShow+1)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  %d  %s\n", levels[i].Level, levels[i].Name))
	}
	if len(levels) > count {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(levels)-count))
	}

	p.printBox("SKILLS MATRIX STATS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBundleSummary outputs the counts of a written web data bundle.
func (p *Printer) PrintBundleSummary(bundle *webdata.Bundle, outputPath string) {
	if bundle == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("File:          %s\n", outputPath))
	sb.WriteString(fmt.Sprintf("Source hash:   %s\n", bundle.SourceHash))
	sb.WriteString(fmt.Sprintf("Roles:         %d\n", lenOf(bundle.Roles)))
	sb.WriteString(fmt.Sprintf("Career levels: %d\n", lenOf(bundle.Levels)))
	sb.WriteString(fmt.Sprintf("Categories:    %d\n", len(bundle.Categories)))
	sb.WriteString(fmt.Sprintf("Skills:        %d", len(bundle.Skills)))

	p.printBox("WEB DATA GENERATED", sb.String())
}

// lenOf counts the entries of a decoded YAML list or mapping.
func lenOf(v any) int {
	switch x := v.(type) {
	case []any:
		return len(x)
	case map[string]any:
		return len(x)
	default:
		return 0
	}
}
