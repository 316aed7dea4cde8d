package workbook

import (
	"fmt"

	"github.com/jonathan/skills-matrix/internal/types"
	"github.com/xuri/excelize/v2"
)

// Radar layout.
const (
	radarSkillsPerCategory = 2
	radarHeaderRow         = 3
	radarChartsPerRow      = 2
	radarChartRowSpacing   = 22
	radarChartColSpacing   = 12
	radarChartWidth        = 680 // ~18cm
	radarChartHeight       = 529 // ~14cm
	maxLevel               = 4
)

// radarSkills keeps at most the first two skills of each category so the
// charts stay readable.
func radarSkills(categories []types.Category) []types.Skill {
	var selected []types.Skill
	for _, category := range categories {
		n := min(len(category.Skills), radarSkillsPerCategory)
		selected = append(selected, category.Skills[:n]...)
	}
	return selected
}

// expertLevel is the 4th expected level, with NC and values off the 0-4
// scale plotted as 0.
func expertLevel(skill *types.Skill, roleID string) int {
	n, ok := skill.LevelsFor(roleID)[types.Expert].Int()
	if !ok || n < 0 || n > maxLevel {
		return 0
	}
	return n
}

func buildRadarSheet(b *sheetBuilder, categories []types.Category) {
	b.title("Skill profiles by role (Expert - 10+ years)", 1, 7)

	headers := []string{"Skill"}
	for _, role := range b.cfg.Roles {
		headers = append(headers, role.Name)
	}
	b.headers(headers, radarHeaderRow)

	selected := radarSkills(categories)
	for i, skill := range selected {
		row := radarHeaderRow + 1 + i
		b.set(1, row, skill.Name)
		for j, role := range b.cfg.Roles {
			b.set(2+j, row, expertLevel(&skill, role.ID))
		}
	}

	lastRow := radarHeaderRow + len(selected)
	if len(selected) > 0 {
		for i, role := range b.cfg.Roles {
			col := 2 + i
			anchorRow := lastRow + 2 + (i/radarChartsPerRow)*radarChartRowSpacing
			anchorCol := 1 + (i%radarChartsPerRow)*radarChartColSpacing
			b.radarChart(b.cell(anchorCol, anchorRow), &excelize.Chart{
				Type: excelize.Radar,
				Series: []excelize.ChartSeries{{
					Name:       b.ref(col, radarHeaderRow, col, radarHeaderRow),
					Categories: b.ref(1, radarHeaderRow+1, 1, lastRow),
					Values:     b.ref(col, radarHeaderRow+1, col, lastRow),
				}},
				Title:     []excelize.RichTextRun{{Text: fmt.Sprintf("Profile %s (Expert)", role.Name)}},
				Dimension: excelize.ChartDimension{Width: radarChartWidth, Height: radarChartHeight},
				Legend:    excelize.ChartLegend{Position: "bottom"},
			})
		}
	}

	b.colWidths(map[string]float64{"A": 35})
	b.colWidthRange(2, 7, 15)
}

func (b *sheetBuilder) radarChart(anchor string, chart *excelize.Chart) {
	if b.err != nil {
		return
	}
	b.fail(b.f.AddChart(b.sheet, anchor, chart))
}
