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

package shape

import (
	"math"

	"seehuhn.de/go/coverage/affine"
	"seehuhn.de/go/coverage/outline"
)

// Bounds returns the tight bounding box of s.
// The second return value is false if s is empty or invalid.
func Bounds(s Shape) (affine.Rect, bool) {
	p, err := s.Path()
	if err != nil {
		return affine.Rect{}, false
	}
	return p.Bounds()
}

// Area returns the area enclosed by s, computed from a polyline
// approximation with tolerance tol.
//
// Subpaths contribute with their orientation, so that holes traced in the
// opposite direction are subtracted.
func Area(s Shape, tol float64) (float64, error) {
	p, err := s.Path()
	if err != nil {
		return 0, err
	}
	subpaths, err := p.Subpaths(tol)
	if err != nil {
		return 0, err
	}

	var total float64
	for sp := range subpaths {
		pts := sp.Points
		n := len(pts)
		if n < 3 {
			continue
		}
		// shoelace formula, relative to the first vertex
		o := pts[0]
		var a float64
		for i := 1; i < n-1; i++ {
			a += pts[i].Sub(o).Cross(pts[i+1].Sub(o))
		}
		total += a / 2
	}
	return math.Abs(total), nil
}

// Perimeter returns the length of the outline of s, including the implicit
// closing lines. Curve lengths are accurate to roughly the given accuracy.
func Perimeter(s Shape, accuracy float64) (float64, error) {
	p, err := s.Path()
	if err != nil {
		return 0, err
	}

	total := p.Length(accuracy)

	// Shapes are filled as if open subpaths were closed.
	var start, current affine.Point
	open := false
	for seg := range p.Segments() {
		switch seg.Op {
		case outline.MoveTo:
			if open {
				total += current.Distance(start)
			}
			start = seg.Pts[0]
			current = start
			open = true
		case outline.Close:
			open = false
		default:
			current = seg.Pts[seg.Op.NumPoints()-1]
		}
	}
	if open {
		total += current.Distance(start)
	}
	return total, nil
}
