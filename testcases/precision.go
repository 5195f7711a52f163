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
)

// precisionCases place edges at known fractions of a pixel, so that the
// exact coverage of every boundary pixel is easy to state.
var precisionCases = []TestCase{
	{
		Name:   "subpixel_offset_25",
		Path:   rectangle(20.25, 20.25, 44.25, 44.25),
		Width:  64,
		Height: 64,
		Rule:   coverage.NonZero,
	},
	{
		Name:   "subpixel_offset_50",
		Path:   rectangle(20.5, 20.5, 44.5, 44.5),
		Width:  64,
		Height: 64,
		Rule:   coverage.NonZero,
	},
	{
		Name:   "quarter_pixel",
		Path:   rectangle(3.25, 5.25, 3.75, 5.75),
		Width:  8,
		Height: 8,
		Rule:   coverage.NonZero,
	},
	{
		Name:   "sliver_horizontal",
		Path:   rectangle(4, 20.1, 60, 20.2),
		Width:  64,
		Height: 64,
		Rule:   coverage.NonZero,
	},
	{
		Name:   "sliver_vertical",
		Path:   rectangle(20.1, 4, 20.2, 60),
		Width:  64,
		Height: 64,
		Rule:   coverage.NonZero,
	},
	{
		Name:   "sliver_straddling_rows",
		Path:   rectangle(4, 19.95, 60, 20.05),
		Width:  64,
		Height: 64,
		Rule:   coverage.NonZero,
	},
	{
		Name:   "diamond_through_corners",
		Path:   polygon(pt(32, 16), pt(48, 32), pt(32, 48), pt(16, 32)),
		Width:  64,
		Height: 64,
		Rule:   coverage.NonZero,
	},
	{
		Name:   "steep_edge",
		Path:   triangle(30, 2, 34, 2, 32.001, 62),
		Width:  64,
		Height: 64,
		Rule:   coverage.NonZero,
	},
	{
		Name:   "shallow_edge",
		Path:   triangle(2, 30, 62, 30.5, 2, 31),
		Width:  64,
		Height: 64,
		Rule:   coverage.NonZero,
	},
	{
		Name:   "far_from_origin",
		Path:   rectangle(1e6, 1e6, 1e6+20.5, 1e6+20.5),
		Width:  64,
		Height: 64,
		Rule:   coverage.NonZero,
		CTM:    matrix.Identity.Translate(22-1e6, 22-1e6),
	},
	{
		Name:   "float64_precision",
		Path:   rectangle(22.123456789012345, 22.123456789012345, 42.123456789012346, 42.123456789012346),
		Width:  64,
		Height: 64,
		Rule:   coverage.NonZero,
	},
}
