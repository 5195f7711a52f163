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
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/coverage"
	"seehuhn.de/go/coverage/shape"
)

var ctmCases = []TestCase{
	{
		Name:   "scale_2x",
		Path:   rectangle(0, 0, 20, 20),
		Width:  128,
		Height: 128,
		Rule:   coverage.NonZero,
		CTM:    matrix.Scale(2, 2).Translate(24, 24),
	},
	{
		Name:   "scale_tiny",
		Path:   rectangle(0, 0, 1000, 1000),
		Width:  8,
		Height: 8,
		Rule:   coverage.NonZero,
		CTM:    matrix.Scale(0.001, 0.001).Translate(3.5, 3.5),
	},
	{
		Name:   "rotate_45deg",
		Path:   rectangle(-10, -10, 10, 10),
		Width:  64,
		Height: 64,
		Rule:   coverage.NonZero,
		CTM:    matrix.RotateDeg(45).Translate(32, 32),
	},
	{
		Name:   "rotate_5deg",
		Path:   rectangle(-20, -10, 20, 10),
		Width:  64,
		Height: 64,
		Rule:   coverage.NonZero,
		CTM:    matrix.RotateDeg(5).Translate(32, 32),
	},
	{
		Name:   "rotate_triangle_fractional",
		Path:   fromShape(shape.Triangle{A: at(-12, -8), B: at(14, -6), C: at(0, 15)}),
		Width:  64,
		Height: 64,
		Rule:   coverage.NonZero,
		CTM:    matrix.RotateDeg(30).Translate(32.5, 31.25),
	},
	{
		Name:   "circle_to_ellipse",
		Path:   fromShape(shape.Circle(at(0, 0), 15)),
		Width:  128,
		Height: 64,
		Rule:   coverage.NonZero,
		CTM:    matrix.Scale(2, 1).Translate(64, 32),
	},
	{
		Name:   "shear_trapezoid",
		Path:   fromShape(shape.Trapezoid{Top: -12, Bottom: 12, TopLeft: -6, TopRight: 6, BottomLeft: -14, BottomRight: 14}),
		Width:  64,
		Height: 64,
		Rule:   coverage.NonZero,
		CTM:    matrix.Matrix{1, 0, 0.5, 1, 0, 0}.Translate(32, 32),
	},
	{
		Name:   "mirror_x",
		Path:   fromShape(shape.Trapezoid{Top: 8, Bottom: 56, TopLeft: 10, TopRight: 20, BottomLeft: 4, BottomRight: 40}),
		Width:  64,
		Height: 64,
		Rule:   coverage.NonZero,
		CTM:    matrix.Matrix{-1, 0, 0, 1, 64, 0},
	},
	{
		Name:   "flip_y",
		Path:   triangle(10, 10, 54, 10, 32, 54),
		Width:  64,
		Height: 64,
		Rule:   coverage.NonZero,
		CTM:    matrix.Matrix{1, 0, 0, -1, 0, 64},
	},
	{
		Name:   "circle_scaled_down",
		Path:   fromShape(shape.Circle(at(0, 0), 100)),
		Width:  64,
		Height: 64,
		Rule:   coverage.NonZero,
		CTM:    matrix.Scale(0.25, 0.25).Translate(32, 32),
	},
}
