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
	"math"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/coverage"
	"seehuhn.de/go/coverage/shape"
)

var complexCases = []TestCase{
	// Mixed Operations
	{
		Name:   "mixed_lines_curves",
		Path:   mixedLinesCurves(),
		Width:  64,
		Height: 64,
		Rule:   coverage.NonZero,
	},
	{
		Name:   "glyph_like",
		Path:   glyphLikeShape(),
		Width:  64,
		Height: 64,
		Rule:   coverage.NonZero,
	},

	// Self-Intersection
	{
		Name:   "spiral_nonzero",
		Path:   spiralPath(32, 32, 5, 25, 3),
		Width:  64,
		Height: 64,
		Rule:   coverage.NonZero,
	},
	{
		Name:   "spiral_evenodd",
		Path:   spiralPath(32, 32, 5, 25, 3),
		Width:  64,
		Height: 64,
		Rule:   coverage.EvenOdd,
	},
	{
		Name:   "lemniscate_nonzero",
		Path:   lemniscate(32, 32, 20),
		Width:  64,
		Height: 64,
		Rule:   coverage.NonZero,
	},
	{
		Name:   "lemniscate_evenodd",
		Path:   lemniscate(32, 32, 20),
		Width:  64,
		Height: 64,
		Rule:   coverage.EvenOdd,
	},
	{
		Name:   "tight_curve",
		Path:   tightCurve(32, 32, 15),
		Width:  64,
		Height: 64,
		Rule:   coverage.NonZero,
	},
	{
		Name:   "zigzag",
		Path:   zigzagPath(10, 32, 54, 20),
		Width:  64,
		Height: 64,
		Rule:   coverage.EvenOdd,
	},
}

// mixedLinesCurves builds a path combining line segments and Bezier curves.
func mixedLinesCurves() *path.Data {
	return (&path.Data{}).
		MoveTo(pt(10, 50)).
		LineTo(pt(20, 30)).
		QuadTo(pt(32, 10), pt(44, 30)).
		LineTo(pt(54, 50)).
		CubeTo(pt(48, 60), pt(16, 60), pt(10, 50)).
		Close()
}

// glyphLikeShape builds a shape similar to a lowercase 'a': a bowl with a
// stem, and a counter traced in the opposite direction.
func glyphLikeShape() *path.Data {
	cx, cy := 32.0, 38.0
	r := 18.0
	k := r * shape.Kappa
	ir := 8.0
	ik := ir * shape.Kappa

	return (&path.Data{}).
		MoveTo(pt(cx+r, cy)).
		CubeTo(pt(cx+r, cy-k), pt(cx+k, cy-r), pt(cx, cy-r)).
		CubeTo(pt(cx-k, cy-r), pt(cx-r, cy-k), pt(cx-r, cy)).
		CubeTo(pt(cx-r, cy+k), pt(cx-k, cy+r), pt(cx, cy+r)).
		CubeTo(pt(cx+k, cy+r), pt(cx+r, cy+k), pt(cx+r, cy)).
		LineTo(pt(cx+r, 10)).
		LineTo(pt(cx+r-6, 10)).
		LineTo(pt(cx+r-6, cy)).
		LineTo(pt(cx+ir, cy)).
		CubeTo(pt(cx+ir, cy+ik), pt(cx+ik, cy+ir), pt(cx, cy+ir)).
		CubeTo(pt(cx-ik, cy+ir), pt(cx-ir, cy+ik), pt(cx-ir, cy)).
		CubeTo(pt(cx-ir, cy-ik), pt(cx-ik, cy-ir), pt(cx, cy-ir)).
		CubeTo(pt(cx+ik, cy-ir), pt(cx+ir, cy-ik), pt(cx+ir, cy)).
		Close()
}

// spiralPath builds an open Archimedean spiral. When filled, the implicit
// closing line cuts across all turns.
func spiralPath(cx, cy, rMin, rMax float64, turns float64) *path.Data {
	steps := max(int(turns*32), 8)
	totalAngle := turns * 2 * math.Pi
	rGrowth := (rMax - rMin) / totalAngle

	p := (&path.Data{}).MoveTo(pt(cx+rMin, cy))
	for i := 1; i <= steps; i++ {
		angle := float64(i) / float64(steps) * totalAngle
		r := rMin + rGrowth*angle
		p = p.LineTo(pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle)))
	}
	return p
}

// lemniscate builds a figure-eight from two loops which meet at (cx, cy).
// The loops have opposite orientation.
func lemniscate(cx, cy, size float64) *path.Data {
	r := size / 2
	k := r * shape.Kappa
	topCy := cy - r/2
	botCy := cy + r/2

	return (&path.Data{}).
		MoveTo(pt(cx, cy)).
		CubeTo(pt(cx+k, cy-r/4), pt(cx+r, topCy-k/2), pt(cx+r, topCy)).
		CubeTo(pt(cx+r, topCy-k), pt(cx+k, topCy-r), pt(cx, topCy-r)).
		CubeTo(pt(cx-k, topCy-r), pt(cx-r, topCy-k), pt(cx-r, topCy)).
		CubeTo(pt(cx-r, topCy+k/2), pt(cx-k, cy-r/4), pt(cx, cy)).
		CubeTo(pt(cx-k, cy+r/4), pt(cx-r, botCy-k/2), pt(cx-r, botCy)).
		CubeTo(pt(cx-r, botCy+k), pt(cx-k, botCy+r), pt(cx, botCy+r)).
		CubeTo(pt(cx+k, botCy+r), pt(cx+r, botCy+k), pt(cx+r, botCy)).
		CubeTo(pt(cx+r, botCy-k/2), pt(cx+k, cy+r/4), pt(cx, cy)).
		Close()
}

// tightCurve builds an open U-shaped curve.
func tightCurve(cx, cy, size float64) *path.Data {
	r := size
	k := r * shape.Kappa

	return (&path.Data{}).
		MoveTo(pt(cx-r, cy-size)).
		LineTo(pt(cx-r, cy)).
		CubeTo(pt(cx-r, cy+k), pt(cx-k, cy+r), pt(cx, cy+r)).
		CubeTo(pt(cx+k, cy+r), pt(cx+r, cy+k), pt(cx+r, cy)).
		LineTo(pt(cx+r, cy-size))
}

// zigzagPath builds an open zigzag line. When filled, the implicit closing
// line crosses the zigzag several times.
func zigzagPath(x1, cy, x2, amplitude float64) *path.Data {
	segments := 5
	segWidth := (x2 - x1) / float64(segments)

	p := (&path.Data{}).MoveTo(pt(x1, cy))
	for i := 1; i <= segments; i++ {
		y := cy + amplitude
		if i%2 == 1 {
			y = cy - amplitude
		}
		p = p.LineTo(pt(x1+float64(i)*segWidth, y))
	}
	return p
}
