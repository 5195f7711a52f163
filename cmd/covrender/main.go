// seehuhn.de/go/coverage - 2D geometry and coverage rasterization
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command covrender fills the shapes of a YAML scene and writes the
// resulting coverage values as a PNG image.
//
// Usage:
//
//	covrender [flags] scene.yaml
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"runtime"
	"time"

	"seehuhn.de/go/coverage"
	"seehuhn.de/go/coverage/scene"
)

func main() {
	var (
		output  = flag.String("o", "out.png", "output file")
		workers = flag.Int("workers", runtime.GOMAXPROCS(0), "number of rasterizer goroutines")
		mask    = flag.Bool("mask", false, "write an alpha mask instead of black on white")
		verbose = flag.Bool("v", false, "enable debug logging")
		check   = flag.Bool("crossings", false, "report self-intersecting shapes")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] scene.yaml\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(flag.Arg(0), *output, *workers, *mask, *check, logger); err != nil {
		logger.Error("rendering failed", "err", err)
		os.Exit(1)
	}
}

func run(in, out string, workers int, mask, check bool, logger *slog.Logger) error {
	s, err := scene.Load(in)
	if err != nil {
		return err
	}

	if check {
		cc, err := s.Crossings()
		if err != nil {
			return fmt.Errorf("%s: %w", in, err)
		}
		for i, pts := range cc {
			if len(pts) == 0 {
				continue
			}
			logger.Warn("self-intersecting shape",
				"shape", i,
				"type", s.Shapes[i].Type,
				"crossings", len(pts),
				"first", fmt.Sprintf("(%g, %g)", pts[0].X, pts[0].Y))
		}
	}

	r := coverage.NewRasterizer()
	r.Logger = logger
	r.Workers = workers

	start := time.Now()
	buf, err := s.Render(r)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}
	logger.Info("scene rendered",
		"file", in,
		"shapes", len(s.Shapes),
		"size", fmt.Sprintf("%dx%d", s.Width, s.Height),
		"elapsed", time.Since(start))

	var img image.Image = buf.Gray()
	if mask {
		img = buf.Alpha()
	}
	return writePNG(out, img)
}

func writePNG(fname string, img image.Image) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", fname, err)
	}
	return f.Close()
}
