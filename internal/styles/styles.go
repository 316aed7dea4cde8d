// Package styles maps color tokens from the configuration to reusable
// excelize fills and cell styles.
package styles

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Border colors.
const (
	BorderGrey  = "CCCCCC"
	BorderBlack = "000000"
	FontWhite   = "FFFFFF"
)

// Spec describes a cell style. It is comparable so a Palette can use it as
// a cache key; Fill must come from the same Palette.
type Spec struct {
	Fill      *excelize.Fill
	Bold      bool
	Italic    bool
	FontColor string
	FontSize  float64
	HAlign    string
	VAlign    string
	Wrap      bool
	Rotation  int
	Border    string
}

// NewFill returns a solid fill for color.
func NewFill(color string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}}
}

// ThinBorder returns a thin border of the given color on all four sides.
func ThinBorder(color string) []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: color, Style: 1},
		{Type: "right", Color: color, Style: 1},
		{Type: "top", Color: color, Style: 1},
		{Type: "bottom", Color: color, Style: 1},
	}
}

// HeaderSpec is the style of table header cells.
func HeaderSpec(fill *excelize.Fill) Spec {
	return Spec{
		Fill:      fill,
		Bold:      true,
		FontColor: FontWhite,
		FontSize:  10,
		HAlign:    "center",
		VAlign:    "center",
		Wrap:      true,
		Border:    BorderGrey,
	}
}

// LevelColor returns the color configured for a level token ("0".."4",
// "NC"), or "" when the level is unmapped.
func LevelColor(level string, colors map[string]string) string {
	return colors[level]
}

// CategoryColor returns the color configured for a category id, or "".
func CategoryColor(categoryID string, colors map[string]string) string {
	return colors[categoryID]
}

// Palette creates styles in one workbook and memoizes them by Spec.
type Palette struct {
	file   *excelize.File
	fills  map[string]*excelize.Fill
	styles map[Spec]int
}

// NewPalette returns a Palette bound to f.
func NewPalette(f *excelize.File) *Palette {
	return &Palette{
		file:   f,
		fills:  make(map[string]*excelize.Fill),
		styles: make(map[Spec]int),
	}
}

// Fill returns the cached solid fill for color, or nil for "".
func (p *Palette) Fill(color string) *excelize.Fill {
	if color == "" {
		return nil
	}
	if fill, ok := p.fills[color]; ok {
		return fill
	}
	fill := NewFill(color)
	p.fills[color] = &fill
	return &fill
}

// LevelFill returns the fill for a level, or nil when it has no color.
func (p *Palette) LevelFill(level string, colors map[string]string) *excelize.Fill {
	return p.Fill(LevelColor(level, colors))
}

// CategoryFill returns the fill for a category, or nil when it has no color.
func (p *Palette) CategoryFill(categoryID string, colors map[string]string) *excelize.Fill {
	return p.Fill(CategoryColor(categoryID, colors))
}

// Style returns the style id for spec, registering it on first use.
func (p *Palette) Style(spec Spec) (int, error) {
	if id, ok := p.styles[spec]; ok {
		return id, nil
	}

	style := &excelize.Style{}
	if spec.Fill != nil {
		style.Fill = *spec.Fill
	}
	if spec.Bold || spec.Italic || spec.FontColor != "" || spec.FontSize != 0 {
		style.Font = &excelize.Font{
			Bold:   spec.Bold,
			Italic: spec.Italic,
			Color:  spec.FontColor,
			Size:   spec.FontSize,
		}
	}
	if spec.HAlign != "" || spec.VAlign != "" || spec.Wrap || spec.Rotation != 0 {
		style.Alignment = &excelize.Alignment{
			Horizontal:   spec.HAlign,
			Vertical:     spec.VAlign,
			WrapText:     spec.Wrap,
			TextRotation: spec.Rotation,
		}
	}
	if spec.Border != "" {
		style.Border = ThinBorder(spec.Border)
	}

	id, err := p.file.NewStyle(style)
	if err != nil {
		return 0, fmt.Errorf("failed to create style: %w", err)
	}
	p.styles[spec] = id
	return id, nil
}
