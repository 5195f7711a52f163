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

package testcases

import (
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/coverage"
	"seehuhn.de/go/coverage/affine"
	"seehuhn.de/go/coverage/shape"
)

// largeCases contains test cases on big canvases, where the rasterizer
// splits the work into several bands.
var largeCases = []TestCase{
	{
		Name:   "large_concentric_evenodd",
		Path:   concentricRectangles(256, 256, 200, 100),
		Width:  512,
		Height: 512,
		Rule:   coverage.EvenOdd,
	},
	{
		Name:   "large_grid",
		Path:   rectangleGrid(8, 8, 512, 512, 4),
		Width:  512,
		Height: 512,
		Rule:   coverage.NonZero,
	},
	{
		Name:   "large_stripes",
		Path:   stripes(512, 512, 61, 0.37),
		Width:  512,
		Height: 512,
		Rule:   coverage.NonZero,
	},
	{
		Name:   "large_regular_polygon",
		Path:   fromShape(shape.RegularPolygon{Center: at(256, 256), Radius: 240.5, Sides: 199}),
		Width:  512,
		Height: 512,
		Rule:   coverage.NonZero,
	},
	{
		Name:   "large_rounded_rectangle",
		Path:   fromShape(shape.RoundedRectangle{Rect: affine.NewRect(at(20.5, 40.25), at(491.5, 471.75)), Radius: 64}),
		Width:  512,
		Height: 512,
		Rule:   coverage.NonZero,
	},
	{
		Name:   "large_overhang",
		Path:   triangle(-300, 600, 256, -300, 812, 600),
		Width:  512,
		Height: 512,
		Rule:   coverage.NonZero,
	},
	{
		Name:   "wide_ellipse",
		Path:   fromShape(shape.Ellipse{Center: at(512, 32), RX: 500, RY: 30}),
		Width:  1024,
		Height: 64,
		Rule:   coverage.NonZero,
	},
}

// rectangleGrid builds a rows by cols grid of rectangles, with the given
// gap around each cell.
func rectangleGrid(rows, cols, width, height int, gap float64) *path.Data {
	cellW := float64(width) / float64(cols)
	cellH := float64(height) / float64(rows)

	var parts []*path.Data
	for row := range rows {
		for col := range cols {
			parts = append(parts, rectangle(
				float64(col)*cellW+gap, float64(row)*cellH+gap,
				float64(col+1)*cellW-gap, float64(row+1)*cellH-gap))
		}
	}
	return join(parts...)
}

// stripes builds horizontal bars of height h, one every period rows. The
// bars start at fractional positions, so that most of them cross a row
// boundary.
func stripes(width, height int, period, h float64) *path.Data {
	var parts []*path.Data
	for y := 0.5; y+h < float64(height); y += period + 0.13 {
		parts = append(parts, rectangle(8, y, float64(width)-8, y+h))
	}
	return join(parts...)
}

// concentricRectangles builds two centered squares. The inner square runs
// in the opposite direction, so it forms a hole under both fill rules.
func concentricRectangles(cx, cy, outer, inner float64) *path.Data {
	return join(
		rectangle(cx-outer, cy-outer, cx+outer, cy+outer),
		polygon(pt(cx-inner, cy-inner), pt(cx-inner, cy+inner),
			pt(cx+inner, cy+inner), pt(cx+inner, cy-inner)),
	)
}
