// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlsxfit

import "math"

const (
	// rowHeightUnit converts an estimated line count to row height units.
	rowHeightUnit = 15
	// fontChangeMin is the smallest font-size change worth writing back.
	fontChangeMin = 0.1
	// fallbackFontName is used when an adjusted cell has no font name.
	fallbackFontName = "Arial"
)

type measured struct {
	row, col int
	size     float64 // estimated text width (column pass) or height in lines (row pass)
	fontSize float64
	colWidth float64 // row pass only
}

// FitColumns assigns every column of ws its final width: the maximum
// estimated text width in the column, scaled by cfg.WidthFactor and
// clamped into [cfg.MinWidth, cfg.MaxWidth] when limits are enabled.
// A column with no non-empty cells still gets a width (the clamped
// zero). With cfg.EnableCellAlignment, every non-empty cell also gets
// the configured alignment and wrap styling.
func FitColumns(ws Sheet, cfg Config) error {
	m := cfg.metrics()
	rows, cols := ws.Dims()
	for col := 1; col <= cols; col++ {
		var maxWidth float64
		var cells []measured
		for row := 1; row <= rows; row++ {
			text, ok := ws.Value(row, col)
			if !ok {
				continue
			}
			fontSize, _ := ws.Font(row, col)
			fontSize = cfg.fontSize(fontSize)
			width := m.TextWidth(text, fontSize)
			if width > maxWidth {
				maxWidth = width
			}
			cells = append(cells, measured{row: row, col: col, size: width, fontSize: fontSize})

			if cfg.EnableCellAlignment {
				if err := ws.SetAlignment(row, col, Alignment{
					Horizontal: cfg.HorizontalAlignment,
					Vertical:   cfg.VerticalAlignment,
					WrapText:   cfg.EnableCellWrap,
				}); err != nil {
					return err
				}
			}
		}

		width := maxWidth * cfg.WidthFactor
		if cfg.EnableSizeLimits {
			width = clamp(width, cfg.MinWidth, cfg.MaxWidth)
		}
		if err := ws.SetColWidth(col, width); err != nil {
			return err
		}

		if !cfg.EnableFontAutofit {
			continue
		}
		for _, c := range cells {
			size := adjustFontSize(c.fontSize, spaceUtilization(c.size, width))
			if math.Abs(size-c.fontSize) <= fontChangeMin {
				continue
			}
			if err := setFontSize(ws, c.row, c.col, size); err != nil {
				return err
			}
		}
	}
	return nil
}

// FitRows assigns every row of ws its final height from the maximum
// estimated wrapped line count in the row, scaled by cfg.HeightFactor
// and the row height unit, and clamped when limits are enabled.
// It must run after FitColumns: the line estimates read the finalized
// column widths.
func FitRows(ws Sheet, cfg Config) error {
	m := cfg.metrics()
	rows, cols := ws.Dims()
	for row := 1; row <= rows; row++ {
		var maxHeight float64
		var cells []measured
		for col := 1; col <= cols; col++ {
			text, ok := ws.Value(row, col)
			if !ok {
				continue
			}
			fontSize, _ := ws.Font(row, col)
			fontSize = cfg.fontSize(fontSize)
			colWidth := ws.ColWidth(col)
			height := m.TextHeight(text, colWidth, fontSize)
			if height > maxHeight {
				maxHeight = height
			}
			cells = append(cells, measured{row: row, col: col, size: height, fontSize: fontSize, colWidth: colWidth})
		}

		height := maxHeight * cfg.HeightFactor * rowHeightUnit
		if cfg.EnableSizeLimits {
			height = clamp(height, cfg.MinHeight, cfg.MaxHeight)
		}
		if err := ws.SetRowHeight(row, height); err != nil {
			return err
		}

		if !cfg.EnableFontAutofit {
			continue
		}
		for _, c := range cells {
			size := adjustFontSize(c.fontSize, spaceUtilization(c.size*rowHeightUnit, height))
			if math.Abs(size-c.fontSize) <= fontChangeMin {
				continue
			}
			// Never commit a size that would overflow the column.
			text, _ := ws.Value(c.row, c.col)
			if spaceUtilization(m.TextWidth(text, size), c.colWidth) > wrapMargin {
				continue
			}
			if err := setFontSize(ws, c.row, c.col, size); err != nil {
				return err
			}
		}
	}
	return nil
}

func setFontSize(ws Sheet, row, col int, size float64) error {
	_, name := ws.Font(row, col)
	if name == "" {
		name = fallbackFontName
	}
	return ws.SetFont(row, col, size, name)
}

// spaceUtilization is the ratio of content size to container size.
// A non-positive container counts as fully utilized, which suppresses
// any font adjustment.
func spaceUtilization(size, container float64) float64 {
	if container <= 0 {
		return 1
	}
	return size / container
}

// adjustFontSize grows a font that fills less than half of its
// container, by at most 1.5x; a utilization of at least 0.5 is
// considered acceptable and left alone.
func adjustFontSize(original, utilization float64) float64 {
	if utilization >= 0.5 {
		return original
	}
	return original * clamp(1/utilization, 0.8, 1.5)
}
