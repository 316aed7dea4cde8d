package workbook

import (
	"fmt"
	"strconv"

	"github.com/jonathan/skills-matrix/internal/styles"
	"github.com/jonathan/skills-matrix/internal/types"
)

// Levels with a description column.
const describedLevels = 5

func buildDescriptionsSheet(b *sheetBuilder, categories []types.Category) {
	colors := b.cfg.Colors

	headers := []string{"Category", "Skill"}
	for level := 0; level < describedLevels; level++ {
		headers = append(headers, fmt.Sprintf("Level %d", level))
	}
	headers = append(headers, "Resources")
	b.headers(headers, 1)

	resourcesCol := len(headers)
	bordered := styles.Spec{Border: styles.BorderGrey}

	row := 2
	for _, category := range categories {
		categorySpec := bordered
		categorySpec.Fill = b.palette.CategoryFill(category.ID, colors.Categories)

		for _, skill := range category.Skills {
			b.setStyled(1, row, category.Name, categorySpec)
			b.setStyled(2, row, skill.Name, bordered)

			for level := 0; level < describedLevels; level++ {
				spec := styles.Spec{
					Fill:   b.palette.LevelFill(strconv.Itoa(level), colors.Levels),
					Wrap:   true,
					VAlign: "top",
					Border: styles.BorderGrey,
				}
				if spec.Fill != nil && level >= 3 {
					spec.FontColor = styles.FontWhite
				}
				b.setStyled(3+level, row, skill.LevelDescriptions[level], spec)
			}

			b.setStyled(resourcesCol, row, skill.FormatResources(), bordered)
			b.rowHeight(row, 60)
			row++
		}
	}

	b.colWidths(map[string]float64{"A": 25, "B": 30, "H": 50})
	b.colWidthRange(3, 2+describedLevels, 45)
	b.freeze(3, 2)
}
