package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jonathan/skills-matrix/internal/types"
	"github.com/jonathan/skills-matrix/internal/webdata"
	"github.com/jonathan/skills-matrix/internal/workbook"
	"github.com/stretchr/testify/assert"
)

func sampleConfig() *types.Config {
	return &types.Config{
		Roles: []types.Role{{ID: "data_analyst", Name: "Data Analyst", Abbreviation: "DA"}},
		CareerLevels: []types.CareerLevel{
			{ID: "junior", Name: "Junior", Abbreviation: "Jr", Experience: "0-3 years"},
		},
		SkillLevels: map[string][]types.SkillLevel{
			types.TierStandard: {{Level: 0, Name: "No knowledge"}, {Level: 1, Name: "Beginner"}},
			types.TierBonus:    {{Level: 5, Name: "Mentor"}},
		},
	}
}

func sampleCategories() []types.Category {
	return []types.Category{
		{ID: "data_analysis", Name: "Data Analysis", Skills: []types.Skill{{ID: "sql", Name: "SQL"}, {ID: "excel", Name: "Excel"}}},
		{ID: "empty", Name: "Empty"},
	}
}

func TestPrintGenerationStats(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintGenerationStats(&workbook.Stats{TotalSkills: 42, TotalCategories: 7, TotalRoles: 6, TotalCareerLevels: 4}, "out/matrix.xlsx")
	output := buf.String()

	assert.Contains(t, output, "WORKBOOK GENERATED")
	assert.Contains(t, output, "out/matrix.xlsx")
	assert.Contains(t, output, "Skills:      42")
	assert.Contains(t, output, "Profiles:    24")
}

func TestPrintGenerationStats_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintGenerationStats(nil, "x.xlsx")

	assert.Empty(t, buf.String())
}

func TestPrintValidationErrors(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	errs := make([]string, 0, 8)
	for i := 0; i < 8; i++ {
		errs = append(errs, "Skill 'x' missing levels for role 'r"+string(rune('a'+i))+"'")
	}
	p.PrintValidationErrors(errs)
	output := buf.String()

	assert.Contains(t, output, "Validation failed with 8 error(s)")
	assert.Equal(t, 8, strings.Count(output, "  - "), "every error is listed")
	assert.Contains(t, output, "role 'rh'")
}

func TestPrintValidationErrors_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintValidationErrors(nil)
	assert.Empty(t, buf.String())
}

func TestPrintSkillList(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSkillList(sampleCategories())
	output := buf.String()

	assert.Contains(t, output, "Data Analysis (2 skills)")
	assert.Contains(t, output, "  • SQL\n")
	assert.Contains(t, output, "Empty (0 skills)")
	assert.Contains(t, output, "Total: 2 skills")
}

func TestPrintCatalogStats(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintCatalogStats(sampleConfig(), sampleCategories())
	output := buf.String()

	assert.Contains(t, output, "SKILLS MATRIX STATS")
	assert.Contains(t, output, "Categories: 2")
	assert.Contains(t, output, "Total skills: 2")
	assert.Contains(t, output, "Roles: 1")
	assert.Contains(t, output, "DA   Data Analyst")
	assert.Contains(t, output, "Career levels: 1")
	assert.Contains(t, output, "Skill scale: 3 levels")
	assert.Contains(t, output, "5  Mentor")
}

func TestPrintBundleSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	bundle := &webdata.Bundle{
		SourceHash: "0123456789abcdef",
		Roles:      []any{map[string]any{"id": "a"}, map[string]any{"id": "b"}},
		Levels:     []any{},
		Categories: []webdata.Category{{ID: "data", Name: "Data", SkillCount: 3}},
		Skills:     []map[string]any{{"id": "sql"}, {"id": "excel"}, {"id": "python"}},
	}
	p.PrintBundleSummary(bundle, "web/data.json")
	output := buf.String()

	assert.Contains(t, output, "WEB DATA GENERATED")
	assert.Contains(t, output, "0123456789abcdef")
	assert.Contains(t, output, "Roles:         2")
	assert.Contains(t, output, "Career levels: 0")
	assert.Contains(t, output, "Skills:        3")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("é", 100))
	output := buf.String()

	assert.Contains(t, output, "...")
	for _, line := range strings.Split(strings.TrimSuffix(output, "\n"), "\n") {
		assert.Equal(t, boxWidth, len([]rune(line)), "line %q", line)
	}
}
