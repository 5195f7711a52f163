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

// Package coverage computes anti-aliased coverage masks for filled paths.
//
// Paths are built with the [outline] package, directly or from the shapes
// in package shape. [Rasterize] maps them to device space, approximates
// curves by polylines, and computes for every pixel the exact fraction of
// its area which lies inside the path, under the nonzero or even-odd rule.
//
// Device space has the origin in the top-left corner of the buffer, with y
// pointing down. Pixel (x, y) is the unit square with top-left corner (x, y).
package coverage

import (
	"seehuhn.de/go/coverage/affine"
	"seehuhn.de/go/coverage/bezier"
	"seehuhn.de/go/coverage/outline"
)

// DefaultTolerance is the default curve flattening tolerance, in pixels.
const DefaultTolerance = bezier.DefaultTolerance

// Rasterize fills paths into buf. See [Rasterizer.Rasterize] for details.
//
// Scratch space is allocated for every call. Concurrent calls are safe as
// long as they use different buffers.
func Rasterize(paths []*outline.Path, m affine.Matrix, rule FillRule, tol float64, buf *Buffer) error {
	return NewRasterizer().Rasterize(paths, m, rule, tol, buf)
}
