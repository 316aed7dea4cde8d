package workbook

import (
	"fmt"

	"github.com/jonathan/skills-matrix/internal/styles"
	"github.com/jonathan/skills-matrix/internal/types"
	"github.com/xuri/excelize/v2"
)

// sheetBuilder wraps the common cell operations of one sheet. The first
// error is kept and every later call becomes a no-op.
type sheetBuilder struct {
	f       *excelize.File
	sheet   string
	cfg     *types.Config
	palette *styles.Palette
	err     error
}

func newSheetBuilder(f *excelize.File, sheet string, cfg *types.Config, palette *styles.Palette) *sheetBuilder {
	return &sheetBuilder{f: f, sheet: sheet, cfg: cfg, palette: palette}
}

func (b *sheetBuilder) fail(err error) {
	if b.err == nil && err != nil {
		b.err = err
	}
}

func (b *sheetBuilder) cell(col, row int) string {
	name, err := excelize.CoordinatesToCellName(col, row)
	b.fail(err)
	return name
}

func (b *sheetBuilder) column(col int) string {
	name, err := excelize.ColumnNumberToName(col)
	b.fail(err)
	return name
}

func (b *sheetBuilder) set(col, row int, value any) {
	if b.err != nil {
		return
	}
	b.fail(b.f.SetCellValue(b.sheet, b.cell(col, row), value))
}

func (b *sheetBuilder) style(col, row int, spec styles.Spec) {
	b.styleRange(col, row, col, row, spec)
}

func (b *sheetBuilder) styleRange(col1, row1, col2, row2 int, spec styles.Spec) {
	if b.err != nil {
		return
	}
	id, err := b.palette.Style(spec)
	if err != nil {
		b.fail(err)
		return
	}
	b.fail(b.f.SetCellStyle(b.sheet, b.cell(col1, row1), b.cell(col2, row2), id))
}

func (b *sheetBuilder) setStyled(col, row int, value any, spec styles.Spec) {
	b.set(col, row, value)
	b.style(col, row, spec)
}

func (b *sheetBuilder) formula(col, row int, formula string) {
	if b.err != nil {
		return
	}
	b.fail(b.f.SetCellFormula(b.sheet, b.cell(col, row), formula))
}

func (b *sheetBuilder) merge(col1, row1, col2, row2 int) {
	if b.err != nil {
		return
	}
	b.fail(b.f.MergeCell(b.sheet, b.cell(col1, row1), b.cell(col2, row2)))
}

// title writes a header-colored title in column A, merged across mergeTo columns.
func (b *sheetBuilder) title(text string, row, mergeTo int) {
	b.setStyled(1, row, text, styles.Spec{
		Fill:      b.palette.Fill(b.cfg.Colors.Header),
		Bold:      true,
		FontColor: styles.FontWhite,
		FontSize:  14,
	})
	if mergeTo > 1 {
		b.merge(1, row, mergeTo, row)
	}
}

// note writes an italic line in column A, merged across mergeTo columns.
func (b *sheetBuilder) note(text string, row, mergeTo int) {
	b.setStyled(1, row, text, styles.Spec{Italic: true})
	b.merge(1, row, mergeTo, row)
}

func (b *sheetBuilder) sectionTitle(text string, row int) {
	b.setStyled(1, row, text, styles.Spec{Bold: true, FontSize: 12})
}

func (b *sheetBuilder) headers(headers []string, row int) {
	spec := styles.HeaderSpec(b.palette.Fill(b.cfg.Colors.Header))
	for i, h := range headers {
		b.setStyled(i+1, row, h, spec)
	}
}

func (b *sheetBuilder) colWidths(widths map[string]float64) {
	for col, width := range widths {
		if b.err != nil {
			return
		}
		b.fail(b.f.SetColWidth(b.sheet, col, col, width))
	}
}

func (b *sheetBuilder) colWidthRange(startCol, endCol int, width float64) {
	if b.err != nil || endCol < startCol {
		return
	}
	b.fail(b.f.SetColWidth(b.sheet, b.column(startCol), b.column(endCol), width))
}

func (b *sheetBuilder) rowHeight(row int, height float64) {
	if b.err != nil {
		return
	}
	b.fail(b.f.SetRowHeight(b.sheet, row, height))
}

// freeze freezes the rows above and the columns left of col/row.
func (b *sheetBuilder) freeze(col, row int) {
	if b.err != nil {
		return
	}
	panes := &excelize.Panes{
		Freeze:      true,
		XSplit:      col - 1,
		YSplit:      row - 1,
		TopLeftCell: b.cell(col, row),
	}
	switch {
	case panes.XSplit > 0 && panes.YSplit > 0:
		panes.ActivePane = "bottomRight"
	case panes.YSplit > 0:
		panes.ActivePane = "bottomLeft"
	default:
		panes.ActivePane = "topRight"
	}
	b.fail(b.f.SetPanes(b.sheet, panes))
}

// dropList restricts sqref to values.
func (b *sheetBuilder) dropList(sqref string, values []string, allowBlank bool, errMsg string) {
	if b.err != nil || len(values) == 0 {
		return
	}
	dv := excelize.NewDataValidation(allowBlank)
	dv.Sqref = sqref
	if err := dv.SetDropList(values); err != nil {
		b.fail(fmt.Errorf("invalid drop list for %s: %w", sqref, err))
		return
	}
	if errMsg != "" {
		dv.SetError(excelize.DataValidationErrorStyleStop, "Invalid value", errMsg)
	}
	b.fail(b.f.AddDataValidation(b.sheet, dv))
}

// ref returns an absolute reference to a cell range on this sheet.
func (b *sheetBuilder) ref(col1, row1, col2, row2 int) string {
	from := fmt.Sprintf("$%s$%d", b.column(col1), row1)
	if col1 == col2 && row1 == row2 {
		return fmt.Sprintf("'%s'!%s", b.sheet, from)
	}
	return fmt.Sprintf("'%s'!%s:$%s$%d", b.sheet, from, b.column(col2), row2)
}
