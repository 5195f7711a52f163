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

import "iter"

// Segment is the straight line segment from A to B.
type Segment struct {
	A, B Point
}

// Vector returns the displacement from A to B.
func (s Segment) Vector() Vector {
	return s.B.Sub(s.A)
}

// Length returns the distance between the end points.
func (s Segment) Length() float64 {
	return s.A.Distance(s.B)
}

// Eval returns the point at parameter t, with t=0 at A and t=1 at B.
func (s Segment) Eval(t float64) Point {
	return s.A.Lerp(s.B, t)
}

// Bounds returns the bounding box of the segment.
func (s Segment) Bounds() Rect {
	return NewRect(s.A, s.B)
}

// IsHorizontal reports whether both end points have the same y coordinate.
func (s Segment) IsHorizontal() bool {
	return s.A.Y == s.B.Y
}

// XAt returns the x coordinate where the line through s meets the
// horizontal line at height y. The second return value is false if s is
// horizontal.
func (s Segment) XAt(y float64) (float64, bool) {
	if s.IsHorizontal() {
		return 0, false
	}
	if y == s.A.Y {
		return s.A.X, true
	}
	if y == s.B.Y {
		return s.B.X, true
	}
	return s.A.X + (y-s.A.Y)*(s.B.X-s.A.X)/(s.B.Y-s.A.Y), true
}

// Intersect returns the parameters t and u where the lines through s and o
// meet, so that s.Eval(t) equals o.Eval(u). The last return value is false
// if the lines are parallel.
func (s Segment) Intersect(o Segment) (t, u float64, ok bool) {
	d := s.Vector()
	e := o.Vector()
	den := d.Cross(e)
	if den == 0 || !isFinite(den) {
		return 0, 0, false
	}
	w := o.A.Sub(s.A)
	return w.Cross(e) / den, w.Cross(d) / den, true
}

// Crossing returns the point where s and o cross. Only crossings in the
// interior of both segments count: segments which touch at an end point,
// or which are parallel, do not cross.
func (s Segment) Crossing(o Segment) (Point, bool) {
	if s.A == o.A || s.A == o.B || s.B == o.A || s.B == o.B {
		return Point{}, false
	}
	t, u, ok := s.Intersect(o)
	if !ok || !(t > 0 && t < 1 && u > 0 && u < 1) {
		return Point{}, false
	}
	return s.Eval(t), true
}

// Polyline iterates over the segments joining consecutive points.
// If closed is true, a final segment leads back to the first point.
// Segments of zero length are skipped.
func Polyline(pts []Point, closed bool) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		if len(pts) < 2 {
			return
		}
		for i := 1; i < len(pts); i++ {
			if pts[i-1] == pts[i] {
				continue
			}
			if !yield(Segment{A: pts[i-1], B: pts[i]}) {
				return
			}
		}
		if closed && pts[len(pts)-1] != pts[0] {
			yield(Segment{A: pts[len(pts)-1], B: pts[0]})
		}
	}
}
