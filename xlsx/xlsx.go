// Copyright 2020, 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Package xlsx adapts excelize workbooks to the xlsxfit sizing passes
// and drives whole-file processing (load, fit, save).
package xlsx

import (
	"fmt"

	"github.com/UNO-SOFT/xlsxfit"
	"github.com/xuri/excelize/v2"
)

var _ = (xlsxfit.Sheet)((*SheetAdapter)(nil))

// SheetAdapter exposes one sheet of an excelize workbook as an
// xlsxfit.Sheet. Cell values are snapshotted at construction; styling,
// width and height mutations go straight to the workbook.
type SheetAdapter struct {
	f      *excelize.File
	name   string
	rows   [][]string
	cols   int
	styles map[string]int
}

// NewSheetAdapter snapshots the named sheet's values.
func NewSheetAdapter(f *excelize.File, name string) (*SheetAdapter, error) {
	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("rows of %q: %w", name, err)
	}
	var cols int
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	return &SheetAdapter{f: f, name: name, rows: rows, cols: cols,
		styles: make(map[string]int)}, nil
}

func (ws *SheetAdapter) Dims() (int, int) { return len(ws.rows), ws.cols }

// Value returns the cell's text. A missing or empty-string cell counts
// as empty and is skipped by the sizing passes.
func (ws *SheetAdapter) Value(row, col int) (string, bool) {
	if row < 1 || row > len(ws.rows) {
		return "", false
	}
	r := ws.rows[row-1]
	if col < 1 || col > len(r) {
		return "", false
	}
	return r[col-1], r[col-1] != ""
}

func (ws *SheetAdapter) axis(row, col int) string {
	axis, _ := excelize.CoordinatesToCellName(col, row)
	return axis
}

func (ws *SheetAdapter) cellStyle(row, col int) (int, *excelize.Style, error) {
	axis := ws.axis(row, col)
	id, err := ws.f.GetCellStyle(ws.name, axis)
	if err != nil {
		return 0, nil, fmt.Errorf("%s[%s]: %w", ws.name, axis, err)
	}
	st, err := ws.f.GetStyle(id)
	if err != nil {
		return 0, nil, fmt.Errorf("%s[%s]: style %d: %w", ws.name, axis, id, err)
	}
	if st == nil {
		st = &excelize.Style{}
	}
	return id, st, nil
}

func (ws *SheetAdapter) Font(row, col int) (float64, string) {
	_, st, err := ws.cellStyle(row, col)
	if err != nil || st.Font == nil {
		return 0, ""
	}
	return st.Font.Size, st.Font.Family
}

func (ws *SheetAdapter) SetFont(row, col int, size float64, name string) error {
	id, st, err := ws.cellStyle(row, col)
	if err != nil {
		return err
	}
	if st.Font == nil {
		st.Font = &excelize.Font{}
	}
	st.Font.Size = size
	st.Font.Family = name
	return ws.setStyle(row, col, fmt.Sprintf("%d\tf%v\t%s", id, size, name), st)
}

func (ws *SheetAdapter) SetAlignment(row, col int, a xlsxfit.Alignment) error {
	id, st, err := ws.cellStyle(row, col)
	if err != nil {
		return err
	}
	st.Alignment = &excelize.Alignment{
		Horizontal: a.Horizontal,
		Vertical:   a.Vertical,
		WrapText:   a.WrapText,
	}
	return ws.setStyle(row, col, fmt.Sprintf("%d\ta%s\t%s\t%t", id, a.Horizontal, a.Vertical, a.WrapText), st)
}

// setStyle registers the mutated style, caching by the original style
// id plus the mutation so identical cells share one style record.
func (ws *SheetAdapter) setStyle(row, col int, key string, st *excelize.Style) error {
	id, ok := ws.styles[key]
	if !ok {
		var err error
		if id, err = ws.f.NewStyle(st); err != nil {
			return fmt.Errorf("new style: %w", err)
		}
		ws.styles[key] = id
	}
	axis := ws.axis(row, col)
	if err := ws.f.SetCellStyle(ws.name, axis, axis, id); err != nil {
		return fmt.Errorf("%s[%s]: %w", ws.name, axis, err)
	}
	return nil
}

func (ws *SheetAdapter) ColWidth(col int) float64 {
	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return 0
	}
	w, err := ws.f.GetColWidth(ws.name, name)
	if err != nil {
		return 0
	}
	return w
}

func (ws *SheetAdapter) SetColWidth(col int, width float64) error {
	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return err
	}
	if err = ws.f.SetColWidth(ws.name, name, name, width); err != nil {
		return fmt.Errorf("%s[%s]: width %f: %w", ws.name, name, width, err)
	}
	return nil
}

func (ws *SheetAdapter) SetRowHeight(row int, height float64) error {
	if err := ws.f.SetRowHeight(ws.name, row, height); err != nil {
		return fmt.Errorf("%s[%d]: height %f: %w", ws.name, row, height, err)
	}
	return nil
}
