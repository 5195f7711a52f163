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

var curveCases = []TestCase{
	{
		Name:   "quadratic",
		Path:   quadraticCurve(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Rule:   coverage.NonZero,
	},
	{
		Name:   "cubic",
		Path:   cubicCurve(10, 50, 20, 10, 44, 10, 54, 50),
		Width:  64,
		Height: 64,
		Rule:   coverage.NonZero,
	},
	{
		Name:   "cubic_loop",
		Path:   cubicCurve(10, 32, 60, 5, 4, 59, 54, 32),
		Width:  64,
		Height: 64,
		Rule:   coverage.NonZero,
	},
	{
		Name:   "cubic_loop_evenodd",
		Path:   cubicCurve(10, 32, 60, 5, 4, 59, 54, 32),
		Width:  64,
		Height: 64,
		Rule:   coverage.EvenOdd,
	},
	{
		Name:   "cubic_cusp",
		Path:   cubicCurve(10, 50, 54, 10, 10, 10, 54, 50),
		Width:  64,
		Height: 64,
		Rule:   coverage.NonZero,
	},
	{
		Name:   "cubic_vertical_tangents",
		Path:   cubicCurve(20, 8, 60, 8, 60, 56, 20, 56),
		Width:  64,
		Height: 64,
		Rule:   coverage.NonZero,
	},
	{
		Name:   "quadratic_degenerate",
		Path:   quadraticCurve(10, 32, 10, 32, 54, 32),
		Width:  64,
		Height: 64,
		Rule:   coverage.NonZero,
	},
	{
		Name:   "cubic_point",
		Path:   cubicCurve(32, 32, 32, 32, 32, 32, 32, 32),
		Width:  64,
		Height: 64,
		Rule:   coverage.NonZero,
	},

	// outlines from the shape package
	{
		Name:   "circle",
		Path:   fromShape(shape.Circle(at(32, 32), 25)),
		Width:  64,
		Height: 64,
		Rule:   coverage.NonZero,
	},
	{
		Name:   "circle_off_grid",
		Path:   fromShape(shape.Circle(at(31.3, 32.7), 12.1)),
		Width:  64,
		Height: 64,
		Rule:   coverage.NonZero,
	},
	{
		Name:   "circle_subpixel",
		Path:   fromShape(shape.Circle(at(10.5, 10.5), 0.4)),
		Width:  16,
		Height: 16,
		Rule:   coverage.NonZero,
	},
	{
		Name:   "ellipse",
		Path:   fromShape(shape.Ellipse{Center: at(32, 32), RX: 28, RY: 14}),
		Width:  64,
		Height: 64,
		Rule:   coverage.NonZero,
	},
	{
		Name:   "rounded_rectangle",
		Path:   fromShape(shape.RoundedRectangle{Rect: affine.NewRect(at(6, 10), at(58, 54)), Radius: 9}),
		Width:  64,
		Height: 64,
		Rule:   coverage.NonZero,
	},
	{
		Name:   "rounded_rectangle_clamped",
		Path:   fromShape(shape.RoundedRectangle{Rect: affine.NewRect(at(8.5, 20.5), at(55.5, 43.5)), Radius: 100}),
		Width:  64,
		Height: 64,
		Rule:   coverage.NonZero,
	},
	{
		Name:   "circle_ring",
		Path:   join(fromShape(shape.Circle(at(32, 32), 28)), fromShape(shape.Circle(at(32, 32), 18))),
		Width:  64,
		Height: 64,
		Rule:   coverage.EvenOdd,
	},
}

// quadraticCurve builds a closed shape with a quadratic Bezier curve.
func quadraticCurve(x1, y1, cx, cy, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt(cx, cy), pt(x2, y2)).
		Close()
}

// cubicCurve builds a closed shape with a cubic Bezier curve.
func cubicCurve(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		CubeTo(pt(c1x, c1y), pt(c2x, c2y), pt(x2, y2)).
		Close()
}
