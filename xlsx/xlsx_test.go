// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlsx

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/UNO-SOFT/xlsxfit"
	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

func TestSheetAdapterFit(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	const sheet = "Sheet1"
	assert.NoError(t, f.SetCellValue(sheet, "A1", "A"))
	assert.NoError(t, f.SetCellValue(sheet, "A2", "中文"))

	ws, err := NewSheetAdapter(f, sheet)
	assert.NoError(t, err)
	rows, cols := ws.Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 1, cols)

	assert.NoError(t, xlsxfit.Fit(ws, xlsxfit.DefaultConfig()))

	w, err := f.GetColWidth(sheet, "A")
	assert.NoError(t, err)
	assert.InDelta(t, 8, w, 1e-6, "raw 4.0 x 1.3 clamps up to the minimum width")

	// Both cells fit one line: (1 + 1) x 1.3 x 15.
	for row := 1; row <= 2; row++ {
		h, err := f.GetRowHeight(sheet, row)
		assert.NoError(t, err)
		assert.InDelta(t, 39, h, 1e-6, "row %d", row)
	}
}

func TestSheetAdapterValue(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	assert.NoError(t, f.SetCellValue("Sheet1", "B2", "x"))
	ws, err := NewSheetAdapter(f, "Sheet1")
	assert.NoError(t, err)

	_, ok := ws.Value(1, 1)
	assert.False(t, ok, "empty cell")
	s, ok := ws.Value(2, 2)
	assert.True(t, ok)
	assert.Equal(t, "x", s)
	_, ok = ws.Value(100, 100)
	assert.False(t, ok, "out of range")
}

func TestOutputPath(t *testing.T) {
	for _, tc := range []struct{ in, want string }{
		{"report.xlsx", "report_fitted.xlsx"},
		{filepath.Join("a", "b.xlsx"), filepath.Join("a", "b_fitted.xlsx")},
		{"data.csv", "data_fitted.xlsx"},
		{"noext", "noext_fitted"},
	} {
		assert.Equal(t, tc.want, OutputPath(tc.in, DefaultSuffix), tc.in)
	}
}

func TestProcessFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "report.xlsx")
	f := excelize.NewFile()
	assert.NoError(t, f.SetCellValue("Sheet1", "A1", "hello"))
	assert.NoError(t, f.SetCellValue("Sheet1", "B1", "中文内容在这里"))
	assert.NoError(t, f.SaveAs(src))
	assert.NoError(t, f.Close())

	p := Processor{Config: xlsxfit.DefaultConfig()}
	assert.NoError(t, p.ProcessFile(context.Background(), src, ""))

	out := filepath.Join(dir, "report_fitted.xlsx")
	g, err := excelize.OpenFile(out)
	assert.NoError(t, err)
	defer g.Close()
	w, err := g.GetColWidth("Sheet1", "B")
	assert.NoError(t, err)
	// 7 CJK chars: 14 x 1.3 = 18.2
	assert.InDelta(t, 18.2, w, 1e-6)
}

func TestProcessFilesContinuesAfterFailure(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.xlsx")
	f := excelize.NewFile()
	assert.NoError(t, f.SetCellValue("Sheet1", "A1", "ok"))
	assert.NoError(t, f.SaveAs(good))
	assert.NoError(t, f.Close())

	p := Processor{Config: xlsxfit.DefaultConfig()}
	err := p.ProcessFiles(context.Background(), []string{
		filepath.Join(dir, "missing.xlsx"), good}, "")
	assert.Error(t, err, "a failed file fails the batch result")

	_, statErr := os.Stat(filepath.Join(dir, "good_fitted.xlsx"))
	assert.NoError(t, statErr, "the batch continued past the failure")
}

func TestProcessFileCSV(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "data.csv")
	assert.NoError(t, os.WriteFile(src, []byte("name,desc\nrow1,中文\n"), 0o644))

	p := Processor{Config: xlsxfit.DefaultConfig()}
	assert.NoError(t, p.ProcessFile(context.Background(), src, ""))

	out := filepath.Join(dir, "data_fitted.xlsx")
	g, err := excelize.OpenFile(out)
	assert.NoError(t, err)
	defer g.Close()
	assert.Equal(t, []string{"data"}, g.GetSheetList(), "sheet named after the file")
	rows, err := g.GetRows("data")
	assert.NoError(t, err)
	assert.Equal(t, [][]string{{"name", "desc"}, {"row1", "中文"}}, rows)
}
