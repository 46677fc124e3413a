// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlsxfit

import (
	"math"
	"strings"
	"testing"
)

func TestTextWidth(t *testing.T) {
	m := Metrics{DefaultFontSize: 12}
	for _, tc := range []struct {
		name     string
		text     string
		fontSize float64
		want     float64
	}{
		{"empty", "", 12, 0},
		{"ascii", "hello", 12, 5 * 0.7},
		{"cjk", "中文", 12, 2 * 2.0},
		{"emoji", "😀", 12, 2.0},
		{"mixed", "a中", 12, 0.7 + 2.0},
		{"scaled down", "hello", 6, 5 * 0.7 / 2},
		{"scaled up", "中", 24, 2.0 * 2},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := m.TextWidth(tc.text, tc.fontSize); math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("TextWidth(%q, %v) = %v, want %v", tc.text, tc.fontSize, got, tc.want)
			}
		})
	}
}

func TestTextWidthLinearScaling(t *testing.T) {
	m := Metrics{DefaultFontSize: 12}
	for _, text := range []string{"a", "abc def", "中文mix", "😀😀"} {
		single := m.TextWidth(text, 12)
		double := m.TextWidth(text, 24)
		if math.Abs(double-2*single) > 1e-9 {
			t.Errorf("%q: width at 24 = %v, want 2 x %v", text, double, single)
		}
	}
}

func TestTextWidthMonotonic(t *testing.T) {
	m := Metrics{DefaultFontSize: 12}
	var prev float64
	for i := 1; i <= 40; i++ {
		w := m.TextWidth(strings.Repeat("x", i), 12)
		if w < prev {
			t.Fatalf("width decreased at length %d: %v < %v", i, w, prev)
		}
		prev = w
	}
}

func TestTextHeight(t *testing.T) {
	m := Metrics{DefaultFontSize: 12}
	for _, tc := range []struct {
		name     string
		text     string
		colWidth float64
		fontSize float64
		want     float64
	}{
		{"empty", "", 20, 12, 1},
		{"empty any width", "", 0, 12, 1},
		{"single short line", "abc", 20, 12, 2},
		{"three lines", "line1\nline2\nline3", 20, 12, 4},
		{"blank segment counts", "a\n\nb", 20, 12, 4},
		// 30 ascii chars are 21 wide; usable width is 9, so 3 lines.
		{"wrapped", strings.Repeat("x", 30), 10, 12, 4},
		// 3 CJK chars are 6 wide, usable width is 5.4: just over one line
		{"fraction rounds up", "中中中", 6, 12, 3},
		{"fits in one line", "中中中", 10, 12, 2},
		{"no width disables wrapping", strings.Repeat("x", 100), 0, 12, 2},
		{"negative width", "a\nb", -5, 12, 3},
		{"font factor scales lines", "abc", 20, 24, 1*2 + 1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := m.TextHeight(tc.text, tc.colWidth, tc.fontSize); math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("TextHeight(%q, %v, %v) = %v, want %v",
					tc.text, tc.colWidth, tc.fontSize, got, tc.want)
			}
		})
	}
}

func TestTextHeightHardBreak(t *testing.T) {
	m := Metrics{DefaultFontSize: 12}
	for _, w := range []float64{5, 20, 120} {
		if got := m.TextHeight("a\nb", w, 12); got < 3 {
			t.Errorf("width %v: TextHeight(\"a\\nb\") = %v, want >= 3", w, got)
		}
	}
}
