package workbook

import (
	"github.com/jonathan/skills-matrix/internal/styles"
	"github.com/jonathan/skills-matrix/internal/types"
	"github.com/xuri/excelize/v2"
)

// Matrix layout: three lead columns, then five columns per role.
const (
	matrixLeadCols    = 3
	matrixColsPerRole = 5
)

func buildMatrixSheet(b *sheetBuilder, categories []types.Category) {
	colors := b.cfg.Colors

	headers := []string{"Category", "Skill", "Description"}
	for _, role := range b.cfg.Roles {
		headers = append(headers,
			role.Name+" C/S",
			role.Name+" Jr",
			role.Name+" Cf",
			role.Name+" Sr",
			role.Name+" Ex",
		)
	}

	header := styles.HeaderSpec(b.palette.Fill(colors.Header))
	rotated := header
	rotated.Rotation = 90
	for i, h := range headers {
		if i < matrixLeadCols {
			b.setStyled(i+1, 1, h, header)
		} else {
			b.setStyled(i+1, 1, h, rotated)
		}
	}

	bordered := styles.Spec{Border: styles.BorderGrey}
	row := 2
	for _, category := range categories {
		categorySpec := bordered
		categorySpec.Fill = b.palette.CategoryFill(category.ID, colors.Categories)

		for _, skill := range category.Skills {
			b.setStyled(1, row, category.Name, categorySpec)
			b.setStyled(2, row, skill.Name, bordered)
			b.setStyled(3, row, skill.Description, bordered)

			col := matrixLeadCols + 1
			for _, role := range b.cfg.Roles {
				b.setStyled(col, row, markerFor(&skill, role.ID), markerSpec(b.palette, &skill, role.ID, colors))
				col++

				for _, level := range skill.LevelsFor(role.ID) {
					b.setStyled(col, row, level.String(), levelSpec(b.palette.LevelFill(level.String(), colors.Levels), level))
					col++
				}
			}
			row++
		}
	}

	b.colWidths(map[string]float64{"A": 25, "B": 35, "C": 60})
	b.colWidthRange(matrixLeadCols+1, len(headers), 8)
	b.freeze(matrixLeadCols+1, 2)
}

func markerFor(skill *types.Skill, roleID string) string {
	if skill.IsCore(roleID) {
		return "C"
	}
	return "S"
}

func markerSpec(palette *styles.Palette, skill *types.Skill, roleID string, colors types.ColorConfig) styles.Spec {
	spec := styles.Spec{HAlign: "center", Border: styles.BorderGrey}
	if skill.IsCore(roleID) {
		spec.Fill = palette.Fill(colors.CoreColor())
		spec.Bold = true
	} else {
		spec.Fill = palette.Fill(colors.SecondaryColor())
	}
	return spec
}

// levelSpec fills a level cell by its level color; the two darkest levels
// get a bold white font.
func levelSpec(fill *excelize.Fill, level types.LevelValue) styles.Spec {
	spec := styles.Spec{Fill: fill, HAlign: "center", Border: styles.BorderGrey}
	if n, ok := level.Int(); ok && fill != nil && n >= 3 && n <= 4 {
		spec.FontColor = styles.FontWhite
		spec.Bold = true
	}
	return spec
}
