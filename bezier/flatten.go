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

package bezier

import (
	"iter"
	"math"

	"seehuhn.de/go/coverage/affine"
	"seehuhn.de/go/coverage/geomerr"
)

// MaxDepth is the maximal number of times a curve is halved during
// flattening. When the limit is reached, the remaining piece is replaced
// by its chord even if it is not yet flat enough.
const MaxDepth = 24

// DefaultTolerance is a flattening tolerance suitable for device space,
// in pixels.
const DefaultTolerance = 0.1

// CheckTolerance verifies that tol can be used as a flattening tolerance.
func CheckTolerance(op string, tol float64) error {
	if !(tol > 0) || math.IsInf(tol, 1) {
		return geomerr.New(op, geomerr.InvalidGeometry, "invalid tolerance %g", tol)
	}
	return nil
}

// Flatness returns the maximal distance of the curve from its chord,
// as estimated from the control point.
func (q Quadratic) Flatness() float64 {
	return 0.5 * segmentDistance(q.P1, q.P0, q.P2)
}

// Flatness returns an upper bound for the distance of the curve from its
// chord, computed from the control points.
func (c Cubic) Flatness() float64 {
	return max(segmentDistance(c.P1, c.P0, c.P3), segmentDistance(c.P2, c.P0, c.P3))
}

// IsLinear reports whether the curve deviates from its chord by at most tol.
func (q Quadratic) IsLinear(tol float64) bool {
	return q.Flatness() <= tol
}

// IsLinear reports whether the curve deviates from its chord by at most tol.
func (c Cubic) IsLinear(tol float64) bool {
	return c.Flatness() <= tol
}

// segmentDistance returns the distance of p from the line segment a-b.
func segmentDistance(p, a, b affine.Point) float64 {
	ab := b.Sub(a)
	ap := p.Sub(a)
	l2 := ab.Dot(ab)
	if l2 == 0 {
		return ap.Length()
	}
	t := ap.Dot(ab) / l2
	switch {
	case t <= 0:
		return ap.Length()
	case t >= 1:
		return p.Distance(b)
	}
	return math.Abs(ab.Cross(ap)) / math.Sqrt(l2)
}

// Flatten returns the points of a polyline which approximates q to within
// tol. The first point is P0 and the last point is P2. A curve whose
// control points coincide yields the single point P0.
//
// The returned sequence can be iterated any number of times and always
// produces the same points.
func (q Quadratic) Flatten(tol float64) (iter.Seq[affine.Point], error) {
	if err := CheckTolerance("bezier.Quadratic.Flatten", tol); err != nil {
		return nil, err
	}
	if !q.IsFinite() {
		return nil, geomerr.New("bezier.Quadratic.Flatten", geomerr.InvalidGeometry,
			"non-finite control point")
	}
	return func(yield func(affine.Point) bool) {
		if !yield(q.P0) || q.P0 == q.P1 && q.P1 == q.P2 {
			return
		}
		flattenQuad(q, tol, MaxDepth, yield)
	}, nil
}

// Flatten returns the points of a polyline which approximates c to within
// tol. The first point is P0 and the last point is P3. A curve whose
// control points coincide yields the single point P0.
//
// The returned sequence can be iterated any number of times and always
// produces the same points.
func (c Cubic) Flatten(tol float64) (iter.Seq[affine.Point], error) {
	if err := CheckTolerance("bezier.Cubic.Flatten", tol); err != nil {
		return nil, err
	}
	if !c.IsFinite() {
		return nil, geomerr.New("bezier.Cubic.Flatten", geomerr.InvalidGeometry,
			"non-finite control point")
	}
	return func(yield func(affine.Point) bool) {
		if !yield(c.P0) || c.P0 == c.P1 && c.P1 == c.P2 && c.P2 == c.P3 {
			return
		}
		flattenCubic(c, tol, MaxDepth, yield)
	}, nil
}

// AppendFlatten appends the points of a polyline approximating q to dst,
// omitting the start point P0. The tolerance must be positive; this is not
// checked. The second return value reports whether the depth limit was
// reached for some part of the curve.
func (q Quadratic) AppendFlatten(dst []affine.Point, tol float64) ([]affine.Point, bool) {
	capped := flattenQuad(q, tol, MaxDepth, func(p affine.Point) bool {
		dst = append(dst, p)
		return true
	})
	return dst, capped
}

// AppendFlatten appends the points of a polyline approximating c to dst,
// omitting the start point P0. The tolerance must be positive; this is not
// checked. The second return value reports whether the depth limit was
// reached for some part of the curve.
func (c Cubic) AppendFlatten(dst []affine.Point, tol float64) ([]affine.Point, bool) {
	capped := flattenCubic(c, tol, MaxDepth, func(p affine.Point) bool {
		dst = append(dst, p)
		return true
	})
	return dst, capped
}

// flattenQuad emits the end points of the pieces of q in order.
// Every split replaces one stack entry by two, so the stack never holds
// more than maxDepth+1 entries.  maxDepth must not exceed MaxDepth.
func flattenQuad(q Quadratic, tol float64, maxDepth int, emit func(affine.Point) bool) bool {
	type item struct {
		q     Quadratic
		depth int
	}
	var stack [MaxDepth + 1]item
	stack[0] = item{q, 0}
	n := 1

	capped := false
	for n > 0 {
		n--
		it := stack[n]

		// NaN measures count as flat, so that the loop terminates.
		if !(it.q.Flatness() > tol) || it.depth >= maxDepth {
			if it.depth >= maxDepth {
				capped = true
			}
			if !emit(it.q.P2) {
				return capped
			}
			continue
		}

		left, right := it.q.Split(0.5)
		stack[n] = item{right, it.depth + 1}
		stack[n+1] = item{left, it.depth + 1}
		n += 2
	}
	return capped
}

// flattenCubic is the cubic version of flattenQuad.
func flattenCubic(c Cubic, tol float64, maxDepth int, emit func(affine.Point) bool) bool {
	type item struct {
		c     Cubic
		depth int
	}
	var stack [MaxDepth + 1]item
	stack[0] = item{c, 0}
	n := 1

	capped := false
	for n > 0 {
		n--
		it := stack[n]

		if !(it.c.Flatness() > tol) || it.depth >= maxDepth {
			if it.depth >= maxDepth {
				capped = true
			}
			if !emit(it.c.P3) {
				return capped
			}
			continue
		}

		left, right := it.c.Split(0.5)
		stack[n] = item{right, it.depth + 1}
		stack[n+1] = item{left, it.depth + 1}
		n += 2
	}
	return capped
}
