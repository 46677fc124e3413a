// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Package xlsxfit estimates legible column widths and row heights for
// spreadsheet worksheets, accounting for mixed-width character sets
// (narrow Latin vs. wide CJK/emoji glyphs), hard line breaks and
// width-driven wrapping, and per-cell font sizes.
//
// The estimation is deliberately coarse: each character contributes a
// fixed per-class width unit, so no font tables or text shaping are
// needed. The result is a display preference, not print layout.
package xlsxfit

// Alignment is the cell styling applied by the column pass.
type Alignment struct {
	// Horizontal is one of "left", "center", "right".
	Horizontal string
	// Vertical is one of "top", "center", "bottom".
	Vertical string
	WrapText bool
}

// Sheet is the worksheet grid the sizing passes operate on.
// Rows and columns are 1-based. Implementations are provided by the
// spreadsheet file backend (see the xlsx subpackage); the sizing passes
// themselves never touch the file format.
type Sheet interface {
	// Dims returns the number of rows and columns.
	Dims() (rows, cols int)
	// Value returns the cell's text and whether the cell is non-empty.
	// Empty cells are skipped by both passes.
	Value(row, col int) (string, bool)
	// Font returns the cell's font size and name; size is 0 and name is
	// empty when the cell does not specify them.
	Font(row, col int) (size float64, name string)
	SetFont(row, col int, size float64, name string) error
	SetAlignment(row, col int, a Alignment) error
	// ColWidth returns the column's current width. The row pass reads
	// widths finalized by the column pass through this.
	ColWidth(col int) float64
	SetColWidth(col int, width float64) error
	SetRowHeight(row int, height float64) error
}

// Config holds the options for one sizing invocation. It is never
// mutated by the passes; only cell font sizes may change as an output.
type Config struct {
	// WidthFactor scales the raw measured column width.
	WidthFactor float64
	// HeightFactor scales the raw measured row height.
	HeightFactor float64
	MinWidth  float64
	MaxWidth  float64
	MinHeight float64
	// MaxHeight is capped by the file format at about 409.
	MaxHeight float64
	// DefaultFontSize is the fallback for cells without an explicit
	// font, and the basis of the size-scaling ratio.
	DefaultFontSize float64
	// EnableSizeLimits toggles clamping into [Min,Max] entirely.
	EnableSizeLimits bool
	// EnableFontAutofit enables the font-size feedback adjustment in
	// both passes.
	EnableFontAutofit bool
	EnableCellWrap    bool
	// EnableCellAlignment toggles whether alignment/wrap styling is
	// applied at all.
	EnableCellAlignment bool
	HorizontalAlignment string
	VerticalAlignment   string
}

// DefaultConfig returns the sizing defaults.
func DefaultConfig() Config {
	return Config{
		WidthFactor:         1.3,
		HeightFactor:        1.3,
		MinWidth:            8,
		MaxWidth:            120,
		MinHeight:           20,
		MaxHeight:           409,
		DefaultFontSize:     12,
		EnableSizeLimits:    true,
		EnableFontAutofit:   false,
		EnableCellWrap:      true,
		EnableCellAlignment: true,
		HorizontalAlignment: "center",
		VerticalAlignment:   "center",
	}
}

func (cfg Config) metrics() Metrics { return Metrics{DefaultFontSize: cfg.DefaultFontSize} }

// fontSize resolves a cell's effective font size.
func (cfg Config) fontSize(size float64) float64 {
	if size > 0 {
		return size
	}
	return cfg.DefaultFontSize
}

// Fit sizes ws: all column widths first, then row heights.
// The ordering is a hard requirement, not an optimization: row height
// estimation reads the finalized column widths.
func Fit(ws Sheet, cfg Config) error {
	if err := FitColumns(ws, cfg); err != nil {
		return err
	}
	return FitRows(ws, cfg)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
