// Copyright 2021, 2026 Tamas Gulacsi. All rights reserved.

// Command xlsx2pdf renders one sheet of an Excel workbook as a PDF
// table, sizing the table grid with the same text-metrics estimator
// the fitxlsx command uses for column widths.
package main

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"syscall"

	"github.com/UNO-SOFT/xlsxfit"
	"github.com/UNO-SOFT/zlog/v2"
	"github.com/peterbourgon/ff/v3/ffcli"
	"github.com/xuri/excelize/v2"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
)

var verbose zlog.VerboseVar
var logger = zlog.NewLogger(zlog.MaybeConsoleHandler(&verbose, os.Stderr)).SLog()

func main() {
	if err := Main(); err != nil {
		slog.Error("MAIN", "error", err)
		os.Exit(1)
	}
}

func Main() error {
	alternateColor := Color{Color: color.Color{
		Red:   230,
		Green: 230,
		Blue:  230,
	}}

	fs := flag.NewFlagSet("xlsx2pdf", flag.ContinueOnError)
	fs.Var(&verbose, "v", "logging verbosity")
	flagOut := fs.String("o", "", "output file name (default input file + .pdf)")
	flagSheet := fs.String("sheet", "", "sheet name (default: the first sheet)")
	flagColor := fs.String("alternate-color", alternateColor.String(), "alternate color")
	flagLandscape := fs.Bool("L", false, "landscape orientation (default: portrait)")
	flagFontSize := fs.Float64("f", 8, "font size")

	app := ffcli.Command{Name: "xlsx2pdf", FlagSet: fs,
		ShortUsage: "xlsx2pdf [flags] file.xlsx",
		Exec: func(ctx context.Context, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("need an input file")
			}
			f, err := excelize.OpenFile(args[0])
			if err != nil {
				return fmt.Errorf("open %q: %w", args[0], err)
			}
			defer f.Close()
			sheet := *flagSheet
			if sheet == "" {
				sheet = f.GetSheetName(0)
			}
			rows, err := f.GetRows(sheet)
			if err != nil {
				return fmt.Errorf("rows of %q: %w", sheet, err)
			}
			if len(rows) == 0 {
				return fmt.Errorf("%q: empty sheet %q", args[0], sheet)
			}
			headers, contents := rows[0], rows[1:]

			m := xlsxfit.Metrics{DefaultFontSize: *flagFontSize}
			widths := make([]float64, len(headers))
			var avg float64
			for i, s := range headers {
				widths[i] = m.TextWidth(s, *flagFontSize)
				avg += widths[i]
			}
			for _, row := range contents {
				for i, s := range row {
					if i < len(widths) {
						widths[i] += m.TextWidth(s, *flagFontSize)
						avg += widths[i]
					}
				}
			}
			avg /= float64(len(widths))
			avg /= float64(len(contents) + 1)
			gridSize := make([]uint, len(headers))
			for i, w := range widths {
				gridSize[i] = uint(math.Round(w / avg / 4))
				if gridSize[i] == 0 {
					gridSize[i] = 1
				}
			}
			slog.Debug("widths", "headers", headers, "widths", widths, "grid", gridSize)

			orientation := consts.Portrait
			if *flagLandscape {
				orientation = consts.Landscape
			}
			pm := pdf.NewMaroto(orientation, consts.A4)
			pm.TableList(headers, contents, props.TableList{
				HeaderProp: props.TableListContent{
					Family:    consts.Arial,
					Style:     consts.Bold,
					Size:      *flagFontSize * 1.375,
					GridSizes: gridSize,
				},
				ContentProp: props.TableListContent{
					Family:    consts.Courier,
					Style:     consts.Normal,
					Size:      *flagFontSize,
					GridSizes: gridSize,
				},
				Align:                consts.Center,
				AlternatedBackground: &alternateColor.Color,
				HeaderContentSpace:   *flagFontSize * 1.2,
				Line:                 false,
			})
			out := *flagOut
			if out == "" && args[0] != "" && args[0] != "-" {
				out = args[0] + ".pdf"
			}
			if out == "" || out == "-" {
				buf, err := pm.Output()
				if err != nil {
					return err
				}
				_, err = os.Stdout.Write(buf.Bytes())
				return err
			}
			return pm.OutputFileAndClose(out)
		},
	}

	if err := app.Parse(os.Args[1:]); err != nil {
		return err
	}

	if err := alternateColor.Parse(*flagColor); err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return app.Run(ctx)
}

type Color struct {
	color.Color
}

func (c *Color) String() string {
	return fmt.Sprintf("%x%x%x", c.Red, c.Green, c.Blue)
}
func (c *Color) Parse(s string) error {
	b, err := hex.DecodeString(s)
	if err != nil {
		return err
	}
	c.Red, c.Green, c.Blue = int(b[0]), int(b[1]), int(b[2])
	return nil
}
