// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlsxfit

import (
	"math"
	"strings"
)

// Per-character width units. Emoji and CJK currently share a unit:
// wide emoji glyphs occupy roughly the same columns as CJK glyphs.
const (
	asciiWidth = 0.7
	cjkWidth   = 2.0
	emojiWidth = 2.0
)

// wrapMargin reserves 10% of the column width for cell padding when
// estimating wrapped lines.
const wrapMargin = 0.9

// Metrics estimates display sizes of cell text. The zero value is not
// usable; DefaultFontSize must be positive as it is the basis of the
// font scaling ratio.
type Metrics struct {
	DefaultFontSize float64
}

// charWidth returns the width unit of a single character:
// ASCII is narrow, everything above the ASCII range is assumed wide.
func charWidth(r rune) float64 {
	switch {
	case r <= 127:
		return asciiWidth
	case r > 0x1F000:
		return emojiWidth
	default:
		return cjkWidth
	}
}

// TextWidth estimates the display width of text at the given font size.
// Empty text has width 0.
func (m Metrics) TextWidth(text string, fontSize float64) float64 {
	if text == "" {
		return 0
	}
	var width float64
	for _, r := range text {
		width += charWidth(r)
	}
	return width * (fontSize / m.DefaultFontSize)
}

// TextHeight estimates the display height of text, in line units, when
// rendered in a column of the given width. Hard line breaks each start
// a new display line; lines wider than the usable column width wrap.
// A non-positive column width disables wrapping. Empty text occupies
// exactly one line.
func (m Metrics) TextHeight(text string, columnWidth, fontSize float64) float64 {
	if text == "" {
		return 1
	}
	var total float64
	for _, line := range strings.Split(text, "\n") {
		if line == "" { // an empty segment still occupies a line
			total++
			continue
		}
		if columnWidth <= 0 {
			total++
			continue
		}
		lineWidth := m.TextWidth(line, fontSize)
		n := math.Ceil(lineWidth / (columnWidth * wrapMargin))
		if n < 1 {
			n = 1
		}
		total += n
	}
	return total*(fontSize/m.DefaultFontSize) + 1
}
