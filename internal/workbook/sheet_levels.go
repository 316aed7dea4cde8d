package workbook

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/skills-matrix/internal/styles"
	"github.com/jonathan/skills-matrix/internal/types"
)

type levelRow struct {
	level       string
	name        string
	description string
}

func buildLevelsSheet(b *sheetBuilder, _ []types.Category) {
	colors := b.cfg.Colors

	b.title("Skill Levels Scale", 1, 3)
	b.headers([]string{"Level", "Name", "Description"}, 3)

	rows := make([]levelRow, 0, len(b.cfg.AllSkillLevels())+1)
	for _, sl := range b.cfg.AllSkillLevels() {
		rows = append(rows, levelRow{strconv.Itoa(sl.Level), sl.Name, sl.Description})
	}
	rows = append(rows, levelRow{types.NotConcerned, "Not concerned", "Skill not expected for this role/level"})

	for i, r := range rows {
		row := 4 + i
		b.setStyled(1, row, r.level, styles.Spec{Fill: b.palette.LevelFill(r.level, colors.Levels)})
		b.set(2, row, r.name)
		b.set(3, row, r.description)
	}

	b.colWidths(map[string]float64{"A": 15, "B": 30, "C": 50})

	startRow := 4 + len(rows) + 2
	b.sectionTitle("Expected levels by career level", startRow)
	b.headers([]string{"Career level", "Experience", "Expected levels"}, startRow+2)

	for i, cl := range b.cfg.CareerLevels {
		row := startRow + 3 + i
		b.set(1, row, cl.Name)
		b.set(2, row, cl.Experience)
		b.set(3, row, fmt.Sprintf("Core skills: level %s | Secondary: level %s",
			formatRange(cl.CoreExpected), formatRange(cl.SecondaryExpected)))
	}

	legendRow := startRow + 3 + len(b.cfg.CareerLevels) + 2
	b.sectionTitle("Core vs Secondary skills", legendRow)

	b.setStyled(1, legendRow+2, "C", styles.Spec{Fill: b.palette.Fill(colors.CoreColor()), Bold: true})
	b.set(2, legendRow+2, "Core skill - foundational for the role")
	b.setStyled(1, legendRow+3, "S", styles.Spec{Fill: b.palette.Fill(colors.SecondaryColor())})
	b.set(2, legendRow+3, "Secondary skill - complementary")
}

// formatRange renders [min, max] as "min-max".
func formatRange(r []int) string {
	parts := make([]string, len(r))
	for i, n := range r {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, "-")
}
