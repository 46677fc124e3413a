// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlsx

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/UNO-SOFT/xlsxfit"
	"github.com/xuri/excelize/v2"
)

// DefaultSuffix is inserted before the extension of the output file
// when no explicit output path is given.
const DefaultSuffix = "_fitted"

// Processor fits every sheet of whole workbook files.
// A failure is scoped to one file: the batch continues.
type Processor struct {
	Config xlsxfit.Config
	// Suffix overrides DefaultSuffix for derived output names.
	Suffix string
	// Charset is the charset of CSV input files (default UTF-8).
	Charset string
	Logger  *slog.Logger
}

func (p Processor) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.Default()
}

func (p Processor) suffix() string {
	if p.Suffix != "" {
		return p.Suffix
	}
	return DefaultSuffix
}

// OutputPath derives the output file name by inserting suffix before
// the extension. CSV inputs become .xlsx.
func OutputPath(path, suffix string) string {
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	if strings.EqualFold(ext, ".csv") {
		ext = ".xlsx"
	}
	return base + suffix + ext
}

// ProcessFiles processes each file in turn. A per-file failure is
// logged and does not stop the batch; the joined errors are returned.
func (p Processor) ProcessFiles(ctx context.Context, paths []string, outPath string) error {
	var errs []error
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := p.ProcessFile(ctx, path, outPath); err != nil {
			p.logger().Error("process", "file", path, "error", err)
			errs = append(errs, fmt.Errorf("%q: %w", path, err))
		}
	}
	return errors.Join(errs...)
}

// ProcessFile loads the workbook at path (or builds one from a CSV
// file), fits every sheet (columns before rows) and saves the result.
// An empty outPath derives the output name next to the input.
func (p Processor) ProcessFile(ctx context.Context, path, outPath string) error {
	logger := p.logger()

	// Probe readability before the full parse, and release at once.
	if fh, err := os.Open(path); err != nil {
		logger.Error("cannot access file", "file", path, "error", err,
			"hint", accessHint(err))
		return fmt.Errorf("open %q: %w", path, err)
	} else {
		fh.Close()
	}

	if outPath == "" {
		outPath = OutputPath(path, p.suffix())
	}

	logger.Info("processing", "file", path, "output", outPath)
	var f *excelize.File
	var err error
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		f, err = p.loadCSV(path)
	} else {
		f, err = excelize.OpenFile(path)
	}
	if err != nil {
		return fmt.Errorf("load %q: %w", path, err)
	}
	defer f.Close()

	for _, name := range f.GetSheetList() {
		if err := ctx.Err(); err != nil {
			return err
		}
		logger.Debug("fit sheet", "file", path, "sheet", name)
		ws, err := NewSheetAdapter(f, name)
		if err != nil {
			return err
		}
		if err := xlsxfit.Fit(ws, p.Config); err != nil {
			return fmt.Errorf("fit %q sheet %q: %w", path, name, err)
		}
	}

	if err := f.SaveAs(outPath); err != nil {
		logger.Error("cannot save file", "file", outPath, "error", err,
			"hint", "close programs holding the destination open, check write permission, or choose another output path with -o")
		return fmt.Errorf("save %q: %w", outPath, err)
	}
	logger.Info("saved", "file", outPath)
	return nil
}

// loadCSV reads a whole CSV file into a fresh single-sheet workbook,
// the sheet named after the file.
func (p Processor) loadCSV(path string) (*excelize.File, error) {
	cr, err := xlsxfit.OpenCsv(path, p.Charset)
	if err != nil {
		return nil, err
	}
	defer cr.Close()

	f := excelize.NewFile()
	sheet := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if sheet == "" {
		sheet = "Sheet1"
	} else if err = f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	for row := 1; ; row++ {
		record, err := cr.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			f.Close()
			return nil, fmt.Errorf("read %q row %d: %w", path, row, err)
		}
		for i, s := range record {
			axis, err := excelize.CoordinatesToCellName(i+1, row)
			if err != nil {
				f.Close()
				return nil, fmt.Errorf("%d/%d: %w", i, row, err)
			}
			if err = f.SetCellStr(sheet, axis, s); err != nil {
				f.Close()
				return nil, fmt.Errorf("%s[%s]: %w", sheet, axis, err)
			}
		}
	}
	return f, nil
}

func accessHint(err error) string {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "check the file path for typos"
	case errors.Is(err, fs.ErrPermission):
		return "close programs that may hold the file open (e.g. Excel), check read permission, or copy the file elsewhere first"
	default:
		return "make sure the file exists and is readable"
	}
}
