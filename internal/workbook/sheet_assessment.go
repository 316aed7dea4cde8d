package workbook

import (
	"fmt"

	"github.com/jonathan/skills-matrix/internal/styles"
	"github.com/jonathan/skills-matrix/internal/types"
)

// Self-assessment layout.
const (
	assessmentHeaderRow = 5
	assessmentFirstRow  = 6
	assessmentLevelCol  = 5
	assessmentGapCol    = 6
)

// SelfRatingValues are the values accepted in the "My level" column.
var SelfRatingValues = []string{"0", "1", "2", "3", "4", types.NotConcerned}

// gapFormula computes self-rating minus expected level, blank until rated.
func gapFormula(row int) string {
	return fmt.Sprintf(`IF(E%d="","",E%d-D%d)`, row, row, row)
}

func buildAssessmentSheet(b *sheetBuilder, categories []types.Category) {
	colors := b.cfg.Colors

	b.title("Skills Self-Assessment", 1, 8)
	b.note("Instructions: rate your level (0-4) and give concrete evidence (project links, PRs, dashboards)", 2, 8)

	roleNames := make([]string, 0, len(b.cfg.Roles))
	for _, r := range b.cfg.Roles {
		roleNames = append(roleNames, r.Name)
	}
	levelNames := make([]string, 0, len(b.cfg.CareerLevels))
	for _, cl := range b.cfg.CareerLevels {
		levelNames = append(levelNames, cl.Name)
	}

	b.set(1, 3, "My role:")
	b.dropList("B3", roleNames, false, "")
	b.set(3, 3, "My level:")
	b.dropList("D3", levelNames, false, "")

	b.headers([]string{
		"Category",
		"Skill",
		"Core/Sec",
		"Expected level",
		"My level",
		"Gap",
		"Evidence/Examples",
		"Manager comments",
	}, assessmentHeaderRow)

	row := assessmentFirstRow
	for _, category := range categories {
		fill := b.palette.CategoryFill(category.ID, colors.Categories)
		for _, skill := range category.Skills {
			b.setStyled(1, row, category.Name, styles.Spec{Fill: fill})
			b.set(2, row, skill.Name)
			b.formula(assessmentGapCol, row, gapFormula(row))
			row++
		}
	}

	if total := types.CountSkills(categories); total > 0 {
		col := b.column(assessmentLevelCol)
		sqref := fmt.Sprintf("%s%d:%s%d", col, assessmentFirstRow, col, assessmentFirstRow+total-1)
		b.dropList(sqref, SelfRatingValues, true, "Please enter a valid level (0-4 or NC)")
	}

	b.colWidths(map[string]float64{"A": 25, "B": 35, "C": 10, "D": 12, "E": 12, "F": 8, "G": 50, "H": 40})
	b.freeze(1, assessmentFirstRow)
}
