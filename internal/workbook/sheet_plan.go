package workbook

import (
	"github.com/jonathan/skills-matrix/internal/styles"
	"github.com/jonathan/skills-matrix/internal/types"
)

// Development plan layout.
const (
	planHeaderRow = 4
	planFirstRow  = 5
	planRows      = 4
	planCols      = 8
)

// Allowed values of the plan's Quarter and Status columns.
var (
	PlanQuarters = []string{"Q1", "Q2", "Q3", "Q4"}
	PlanStatuses = []string{"Not started", "In progress", "Completed"}
)

func buildPlanSheet(b *sheetBuilder, _ []types.Category) {
	b.title("Annual Development Plan", 1, planCols)
	b.note("Pick at most 4 skills to develop over the year (favor Core skills)", 2, planCols)

	b.headers([]string{
		"Skill to develop",
		"Current level",
		"Target level",
		"Training / Actions",
		"Expected outcome",
		"Success measure",
		"Quarter",
		"Status",
	}, planHeaderRow)

	lastRow := planFirstRow + planRows - 1
	b.styleRange(1, planFirstRow, planCols, lastRow, styles.Spec{Border: styles.BorderBlack})

	b.dropList("G5:G8", PlanQuarters, true, "")
	b.dropList("H5:H8", PlanStatuses, true, "")

	b.colWidths(map[string]float64{"A": 35, "B": 12, "C": 12, "D": 45, "E": 35, "F": 30, "G": 12, "H": 15})
}
