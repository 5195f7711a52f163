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
)

var subpathCases = []TestCase{
	{
		Name:   "two_triangles",
		Path:   twoTriangles(16, 32, 48, 32, 12),
		Width:  64,
		Height: 64,
		Rule:   coverage.NonZero,
	},
	{
		Name:   "overlapping_rect_nonzero",
		Path:   overlappingRectangles(10, 10, 40, 40, 24, 24, 54, 54),
		Width:  64,
		Height: 64,
		Rule:   coverage.NonZero,
	},
	{
		Name:   "overlapping_rect_evenodd",
		Path:   overlappingRectangles(10, 10, 40, 40, 24, 24, 54, 54),
		Width:  64,
		Height: 64,
		Rule:   coverage.EvenOdd,
	},
	{
		Name:   "ring_shape",
		Path:   ringShape(32, 32, 25, 12),
		Width:  64,
		Height: 64,
		Rule:   coverage.EvenOdd,
	},
	{
		Name:   "ring_shape_nonzero",
		Path:   ringShape(32, 32, 25, 12),
		Width:  64,
		Height: 64,
		Rule:   coverage.NonZero,
	},
	{
		Name:   "multiple_rings",
		Path:   multipleRings(64, 64),
		Width:  128,
		Height: 128,
		Rule:   coverage.EvenOdd,
	},
	{
		Name:   "many_small_shapes",
		Path:   manySmallShapes(8, 8),
		Width:  128,
		Height: 128,
		Rule:   coverage.NonZero,
	},
	{
		Name:   "figure_eight_nonzero",
		Path:   figureEight(),
		Width:  16,
		Height: 16,
		Rule:   coverage.NonZero,
	},
	{
		Name:   "figure_eight_evenodd",
		Path:   figureEight(),
		Width:  16,
		Height: 16,
		Rule:   coverage.EvenOdd,
	},
}

// twoTriangles builds two separate, disjoint triangles.
func twoTriangles(cx1, cy1, cx2, cy2 float64, size float64) *path.Data {
	return join(
		triangle(cx1, cy1-size, cx1+size, cy1+size, cx1-size, cy1+size),
		triangle(cx2, cy2-size, cx2+size, cy2+size, cx2-size, cy2+size),
	)
}

// overlappingRectangles builds two overlapping rectangles with the same
// orientation.
func overlappingRectangles(x1a, y1a, x2a, y2a, x1b, y1b, x2b, y2b float64) *path.Data {
	return join(
		rectangle(x1a, y1a, x2a, y2a),
		rectangle(x1b, y1b, x2b, y2b),
	)
}

// ringShape builds a ring (outer square with inner square cutout).
// Both squares have the same orientation, so the hole only appears
// under the even-odd rule.
func ringShape(cx, cy, outerSize, innerSize float64) *path.Data {
	return join(
		rectangle(cx-outerSize, cy-outerSize, cx+outerSize, cy+outerSize),
		rectangle(cx-innerSize, cy-innerSize, cx+innerSize, cy+innerSize),
	)
}

// multipleRings builds three square rings.
func multipleRings(cx, cy float64) *path.Data {
	rings := []struct{ cx, cy, outer, inner float64 }{
		{cx - 30, cy - 30, 20, 10},
		{cx + 30, cy - 30, 20, 10},
		{cx, cy + 30, 20, 10},
	}
	p := &path.Data{}
	for _, ring := range rings {
		p = join(p, ringShape(ring.cx, ring.cy, ring.outer, ring.inner))
	}
	return p
}

// manySmallShapes builds a grid of small triangles (stress test).
func manySmallShapes(rows, cols int) *path.Data {
	size := 5.0
	spacing := 14.0

	p := &path.Data{}
	for row := range rows {
		for col := range cols {
			cx := 10.0 + float64(col)*spacing
			cy := 10.0 + float64(row)*spacing
			p = join(p, triangle(cx, cy-size, cx+size, cy+size, cx-size, cy+size))
		}
	}
	return p
}

// figureEight builds a single subpath tracing two overlapping squares, so
// that pixels in the overlap have winding number 2.
func figureEight() *path.Data {
	return polygon(
		pt(2, 2), pt(10, 2), pt(10, 10), pt(2, 10), pt(2, 2),
		pt(6, 6), pt(14, 6), pt(14, 14), pt(6, 14), pt(6, 6),
	)
}
