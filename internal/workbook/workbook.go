package workbook

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/skills-matrix/internal/styles"
	"github.com/jonathan/skills-matrix/internal/types"
	"github.com/xuri/excelize/v2"
)

// Sheet names, in tab order.
const (
	SheetLevels       = "Levels reference"
	SheetMatrix       = "Matrix"
	SheetDescriptions = "Level descriptions"
	SheetAssessment   = "Self-assessment"
	SheetRadar        = "Role radar profiles"
	SheetPlan         = "Development plan"
	SheetHistory      = "Evaluation history"
)

// SheetNames lists every sheet Generate creates, in order.
var SheetNames = []string{
	SheetLevels,
	SheetMatrix,
	SheetDescriptions,
	SheetAssessment,
	SheetRadar,
	SheetPlan,
	SheetHistory,
}

// Stats summarizes the data a workbook was generated from.
type Stats struct {
	TotalSkills       int `json:"total_skills"`
	TotalCategories   int `json:"total_categories"`
	TotalRoles        int `json:"total_roles"`
	TotalCareerLevels int `json:"total_career_levels"`
}

// Profiles is the number of role x career level combinations.
func (s Stats) Profiles() int {
	return s.TotalRoles * s.TotalCareerLevels
}

// NewStats counts the in-memory inputs.
func NewStats(cfg *types.Config, categories []types.Category) *Stats {
	return &Stats{
		TotalSkills:       types.CountSkills(categories),
		TotalCategories:   len(categories),
		TotalRoles:        len(cfg.Roles),
		TotalCareerLevels: len(cfg.CareerLevels),
	}
}

type sheetFunc func(b *sheetBuilder, categories []types.Category)

// Build lays out the seven sheets in a new in-memory workbook. The caller
// owns the returned file and must Close it.
func Build(cfg *types.Config, categories []types.Category) (*excelize.File, error) {
	f := excelize.NewFile()
	palette := styles.NewPalette(f)

	builders := []sheetFunc{
		buildLevelsSheet,
		buildMatrixSheet,
		buildDescriptionsSheet,
		buildAssessmentSheet,
		buildRadarSheet,
		buildPlanSheet,
		buildHistorySheet,
	}

	for i, build := range builders {
		name := SheetNames[i]
		var err error
		if i == 0 {
			err = f.SetSheetName(f.GetSheetName(0), name)
		} else {
			_, err = f.NewSheet(name)
		}
		if err != nil {
			_ = f.Close()
			return nil, &GenerateError{Message: fmt.Sprintf("failed to create sheet %q", name), Cause: err}
		}

		b := newSheetBuilder(f, name, cfg, palette)
		build(b, categories)
		if b.err != nil {
			_ = f.Close()
			return nil, &GenerateError{Message: fmt.Sprintf("failed to build sheet %q", name), Cause: b.err}
		}
	}
	f.SetActiveSheet(0)

	return f, nil
}

// Generate builds the workbook and saves it to outputPath, creating parent
// directories as needed. Stats are computed from the inputs, not from the
// written document.
func Generate(cfg *types.Config, categories []types.Category, outputPath string) (*Stats, error) {
	f, err := Build(cfg, categories)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	if outputDir := filepath.Dir(outputPath); outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return nil, &GenerateError{Message: fmt.Sprintf("failed to create output directory %s", outputDir), Cause: err}
		}
	}

	if err := f.SaveAs(outputPath); err != nil {
		return nil, &GenerateError{Message: fmt.Sprintf("failed to save %s", outputPath), Cause: err}
	}

	return NewStats(cfg, categories), nil
}
