// Copyright 2026 Tamás Gulácsi. All rights reserved.

// Command fitxlsx adjusts the column widths and row heights of Excel
// workbooks so that cell text displays legibly, handling mixed
// narrow/wide character sets and multi-line content.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/UNO-SOFT/xlsxfit"
	"github.com/UNO-SOFT/xlsxfit/xlsx"
	"github.com/UNO-SOFT/zlog/v2"
	"github.com/peterbourgon/ff/v3/ffcli"
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
	cfg := xlsxfit.DefaultConfig()

	fs := flag.NewFlagSet("fitxlsx", flag.ContinueOnError)
	fs.Var(&verbose, "v", "logging verbosity")
	flagOut := fs.String("o", "", "output file name (default: input with \""+xlsx.DefaultSuffix+"\" before the extension)")
	flagSuffix := fs.String("suffix", xlsx.DefaultSuffix, "suffix for derived output names")
	flagEnc := fs.String("charset", xlsxfit.EncName, "charset of .csv input files")
	flagFiles := fs.String("default-files", "", "comma-separated files to process when no argument is given")

	fs.Float64Var(&cfg.WidthFactor, "width-factor", cfg.WidthFactor, "column width scale factor")
	fs.Float64Var(&cfg.HeightFactor, "height-factor", cfg.HeightFactor, "row height scale factor")
	fs.Float64Var(&cfg.MinWidth, "min-width", cfg.MinWidth, "minimum column width")
	fs.Float64Var(&cfg.MaxWidth, "max-width", cfg.MaxWidth, "maximum column width")
	fs.Float64Var(&cfg.MinHeight, "min-height", cfg.MinHeight, "minimum row height")
	fs.Float64Var(&cfg.MaxHeight, "max-height", cfg.MaxHeight, "maximum row height (Excel caps it at 409)")
	fs.Float64Var(&cfg.DefaultFontSize, "font-size", cfg.DefaultFontSize, "default font size")
	fs.BoolVar(&cfg.EnableSizeLimits, "size-limits", cfg.EnableSizeLimits, "clamp widths/heights into [min, max]")
	fs.BoolVar(&cfg.EnableFontAutofit, "font-autofit", cfg.EnableFontAutofit, "adjust font sizes to better fill cells")
	fs.BoolVar(&cfg.EnableCellWrap, "cell-wrap", cfg.EnableCellWrap, "set wrap-text on non-empty cells")
	fs.BoolVar(&cfg.EnableCellAlignment, "alignment", cfg.EnableCellAlignment, "apply alignment/wrap styling to non-empty cells")
	fs.StringVar(&cfg.HorizontalAlignment, "halign", cfg.HorizontalAlignment, "horizontal alignment (left, center, right)")
	fs.StringVar(&cfg.VerticalAlignment, "valign", cfg.VerticalAlignment, "vertical alignment (top, center, bottom)")

	app := ffcli.Command{Name: "fitxlsx", FlagSet: fs,
		ShortUsage: "fitxlsx [flags] [file.xlsx...]",
		Exec: func(ctx context.Context, args []string) error {
			switch cfg.HorizontalAlignment {
			case "left", "center", "right":
			default:
				return fmt.Errorf("bad halign %q", cfg.HorizontalAlignment)
			}
			switch cfg.VerticalAlignment {
			case "top", "center", "bottom":
			default:
				return fmt.Errorf("bad valign %q", cfg.VerticalAlignment)
			}

			files := args
			if len(files) == 0 && *flagFiles != "" {
				for _, f := range strings.Split(*flagFiles, ",") {
					if f = strings.TrimSpace(f); f != "" {
						files = append(files, f)
					}
				}
			}
			if len(files) == 0 {
				return fmt.Errorf("no input files (give them as arguments or with -default-files)")
			}
			out := *flagOut
			if out != "" && len(files) > 1 {
				// A single output name cannot hold a whole batch.
				logger.Warn("ignoring -o for multiple inputs", "output", out)
				out = ""
			}

			p := xlsx.Processor{
				Config:  cfg,
				Suffix:  *flagSuffix,
				Charset: *flagEnc,
				Logger:  logger,
			}
			return p.ProcessFiles(ctx, files, out)
		},
	}

	if err := app.Parse(os.Args[1:]); err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return app.Run(ctx)
}
