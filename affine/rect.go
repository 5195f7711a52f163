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

package affine

import (
	"seehuhn.de/go/geom/rect"
)

// Rect is an axis-aligned rectangle, stored as a [rect.Rect].
// Rectangles returned by this package satisfy LLx <= URx and LLy <= URy.
// In device space, where y points down, (LLx, LLy) is the top-left corner.
type Rect rect.Rect

// NewRect returns the rectangle spanned by the corners p and q,
// in either order.
func NewRect(p, q Point) Rect {
	return Rect{
		LLx: min(p.X, q.X),
		LLy: min(p.Y, q.Y),
		URx: max(p.X, q.X),
		URy: max(p.Y, q.Y),
	}
}

// Min returns the corner of r with the smallest coordinates.
func (r Rect) Min() Point {
	return Point{X: r.LLx, Y: r.LLy}
}

// Max returns the corner of r with the largest coordinates.
func (r Rect) Max() Point {
	return Point{X: r.URx, Y: r.URy}
}

// Width returns the horizontal extent of r.
func (r Rect) Width() float64 {
	return r.URx - r.LLx
}

// Height returns the vertical extent of r.
func (r Rect) Height() float64 {
	return r.URy - r.LLy
}

// IsEmpty reports whether r has zero area.
func (r Rect) IsEmpty() bool {
	return r.URx <= r.LLx || r.URy <= r.LLy
}

// Contains reports whether p lies in the closed rectangle r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.LLx && p.X <= r.URx && p.Y >= r.LLy && p.Y <= r.URy
}

// Extend returns the smallest rectangle containing both r and p.
func (r Rect) Extend(p Point) Rect {
	return Rect{
		LLx: min(r.LLx, p.X),
		LLy: min(r.LLy, p.Y),
		URx: max(r.URx, p.X),
		URy: max(r.URy, p.Y),
	}
}

// Union returns the smallest rectangle containing both r and s.
func (r Rect) Union(s Rect) Rect {
	return r.Extend(s.Min()).Extend(s.Max())
}
