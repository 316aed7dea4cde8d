package workbook

import (
	"fmt"

	"github.com/jonathan/skills-matrix/internal/styles"
	"github.com/jonathan/skills-matrix/internal/types"
)

// Number of (date, score, comments) column groups.
const historyEvaluations = 4

func buildHistorySheet(b *sheetBuilder, categories []types.Category) {
	colors := b.cfg.Colors

	headers := []string{"Category", "Skill"}
	for n := 1; n <= historyEvaluations; n++ {
		headers = append(headers,
			fmt.Sprintf("Eval %d Date", n),
			fmt.Sprintf("Eval %d Score", n),
			fmt.Sprintf("Eval %d Comments", n),
		)
	}

	b.title("Evaluation History", 1, len(headers))
	b.headers(headers, 3)

	row := 4
	for _, category := range categories {
		fill := b.palette.CategoryFill(category.ID, colors.Categories)
		for _, skill := range category.Skills {
			b.setStyled(1, row, category.Name, styles.Spec{Fill: fill})
			b.set(2, row, skill.Name)
			row++
		}
	}

	b.colWidths(map[string]float64{"A": 25, "B": 35})
	b.colWidthRange(3, len(headers), 15)
	b.freeze(3, 4)
}
