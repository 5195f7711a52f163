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

// Package bezier implements quadratic and cubic Bézier curves and their
// approximation by polylines.
package bezier

import (
	"math"

	"seehuhn.de/go/coverage/affine"
	"seehuhn.de/go/coverage/geomerr"
)

// Quadratic is a quadratic Bézier curve from P0 to P2 with control point P1.
type Quadratic struct {
	P0, P1, P2 affine.Point
}

// Cubic is a cubic Bézier curve from P0 to P3 with control points P1 and P2.
type Cubic struct {
	P0, P1, P2, P3 affine.Point
}

// NewQuadratic returns the quadratic curve with the given control points.
// It fails with [geomerr.InvalidGeometry] if a coordinate is not finite.
func NewQuadratic(p0, p1, p2 affine.Point) (Quadratic, error) {
	q := Quadratic{P0: p0, P1: p1, P2: p2}
	if !q.IsFinite() {
		return Quadratic{}, geomerr.New("bezier.NewQuadratic", geomerr.InvalidGeometry,
			"non-finite control point")
	}
	return q, nil
}

// NewCubic returns the cubic curve with the given control points.
// It fails with [geomerr.InvalidGeometry] if a coordinate is not finite.
func NewCubic(p0, p1, p2, p3 affine.Point) (Cubic, error) {
	c := Cubic{P0: p0, P1: p1, P2: p2, P3: p3}
	if !c.IsFinite() {
		return Cubic{}, geomerr.New("bezier.NewCubic", geomerr.InvalidGeometry,
			"non-finite control point")
	}
	return c, nil
}

// IsFinite reports whether all control points have finite coordinates.
func (q Quadratic) IsFinite() bool {
	return q.P0.IsFinite() && q.P1.IsFinite() && q.P2.IsFinite()
}

// IsFinite reports whether all control points have finite coordinates.
func (c Cubic) IsFinite() bool {
	return c.P0.IsFinite() && c.P1.IsFinite() && c.P2.IsFinite() && c.P3.IsFinite()
}

// Eval returns the point on the curve at parameter t.
func (q Quadratic) Eval(t float64) affine.Point {
	// B(t) = (1-t)²P0 + 2(1-t)tP1 + t²P2
	omt := 1 - t
	a, b, c := omt*omt, 2*omt*t, t*t
	return affine.Point{
		X: a*q.P0.X + b*q.P1.X + c*q.P2.X,
		Y: a*q.P0.Y + b*q.P1.Y + c*q.P2.Y,
	}
}

// Eval returns the point on the curve at parameter t.
func (c Cubic) Eval(t float64) affine.Point {
	// B(t) = (1-t)³P0 + 3(1-t)²tP1 + 3(1-t)t²P2 + t³P3
	omt := 1 - t
	omt2 := omt * omt
	t2 := t * t
	a, b, d, e := omt2*omt, 3*omt2*t, 3*omt*t2, t2*t
	return affine.Point{
		X: a*c.P0.X + b*c.P1.X + d*c.P2.X + e*c.P3.X,
		Y: a*c.P0.Y + b*c.P1.Y + d*c.P2.Y + e*c.P3.Y,
	}
}

// Derivative returns the tangent vector B'(t).
func (q Quadratic) Derivative(t float64) affine.Vector {
	d0 := q.P1.Sub(q.P0)
	d1 := q.P2.Sub(q.P1)
	return d0.Mul(2 * (1 - t)).Add(d1.Mul(2 * t))
}

// Derivative returns the tangent vector B'(t).
func (c Cubic) Derivative(t float64) affine.Vector {
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	omt := 1 - t
	return d0.Mul(3 * omt * omt).Add(d1.Mul(6 * omt * t)).Add(d2.Mul(3 * t * t))
}

// Split divides the curve at parameter t into two curves covering
// [0, t] and [t, 1].
func (q Quadratic) Split(t float64) (Quadratic, Quadratic) {
	a := q.P0.Lerp(q.P1, t)
	b := q.P1.Lerp(q.P2, t)
	m := a.Lerp(b, t)
	return Quadratic{q.P0, a, m}, Quadratic{m, b, q.P2}
}

// Split divides the curve at parameter t into two curves covering
// [0, t] and [t, 1].
func (c Cubic) Split(t float64) (Cubic, Cubic) {
	ab := c.P0.Lerp(c.P1, t)
	bc := c.P1.Lerp(c.P2, t)
	cd := c.P2.Lerp(c.P3, t)
	abc := ab.Lerp(bc, t)
	bcd := bc.Lerp(cd, t)
	m := abc.Lerp(bcd, t)
	return Cubic{c.P0, ab, abc, m}, Cubic{m, bcd, cd, c.P3}
}

// Subsection returns the part of the curve between parameters t0 and t1.
func (q Quadratic) Subsection(t0, t1 float64) Quadratic {
	if t1 == 0 {
		p := q.P0
		return Quadratic{p, p, p}
	}
	left, _ := q.Split(t1)
	_, sub := left.Split(t0 / t1)
	return sub
}

// Subsection returns the part of the curve between parameters t0 and t1.
func (c Cubic) Subsection(t0, t1 float64) Cubic {
	if t1 == 0 {
		p := c.P0
		return Cubic{p, p, p, p}
	}
	left, _ := c.Split(t1)
	_, sub := left.Split(t0 / t1)
	return sub
}

// Elevate returns the cubic curve which traces the same path as q.
func (q Quadratic) Elevate() Cubic {
	return Cubic{
		P0: q.P0,
		P1: q.P0.Add(q.P1.Sub(q.P0).Mul(2.0 / 3)),
		P2: q.P2.Add(q.P1.Sub(q.P2).Mul(2.0 / 3)),
		P3: q.P2,
	}
}

// ControlBounds returns the bounding box of the control points.
// The curve lies inside this box.
func (q Quadratic) ControlBounds() affine.Rect {
	return affine.NewRect(q.P0, q.P2).Extend(q.P1)
}

// ControlBounds returns the bounding box of the control points.
// The curve lies inside this box.
func (c Cubic) ControlBounds() affine.Rect {
	return affine.NewRect(c.P0, c.P3).Extend(c.P1).Extend(c.P2)
}

// Bounds returns the tight bounding box of the curve.
func (q Quadratic) Bounds() affine.Rect {
	r := affine.NewRect(q.P0, q.P2)
	// B'(t) = 0  ⇔  t = (P0 - P1) / (P0 - 2P1 + P2), per axis
	for _, t := range []float64{
		quadExtremum(q.P0.X, q.P1.X, q.P2.X),
		quadExtremum(q.P0.Y, q.P1.Y, q.P2.Y),
	} {
		if t > 0 && t < 1 {
			r = r.Extend(q.Eval(t))
		}
	}
	return r
}

func quadExtremum(p0, p1, p2 float64) float64 {
	den := p0 - 2*p1 + p2
	if den == 0 {
		return -1
	}
	return (p0 - p1) / den
}

// Bounds returns the tight bounding box of the curve.
func (c Cubic) Bounds() affine.Rect {
	r := affine.NewRect(c.P0, c.P3)
	var roots [4]float64
	ts := cubicExtrema(roots[:0], c.P0.X, c.P1.X, c.P2.X, c.P3.X)
	ts = cubicExtrema(ts, c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y)
	for _, t := range ts {
		r = r.Extend(c.Eval(t))
	}
	return r
}

// cubicExtrema appends the parameters in (0, 1) where the derivative of
// the one-dimensional cubic with the given control values vanishes.
func cubicExtrema(dst []float64, p0, p1, p2, p3 float64) []float64 {
	// B'(t)/3 = a t² + b t + c
	a := -p0 + 3*p1 - 3*p2 + p3
	b := 2 * (p0 - 2*p1 + p2)
	c := p1 - p0

	add := func(t float64) {
		if t > 0 && t < 1 {
			dst = append(dst, t)
		}
	}

	if math.Abs(a) < 1e-12 {
		if b != 0 {
			add(-c / b)
		}
		return dst
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return dst
	}
	sq := math.Sqrt(disc)
	add((-b + sq) / (2 * a))
	add((-b - sq) / (2 * a))
	return dst
}

// lengthMaxDepth limits the subdivision used by Length.
const lengthMaxDepth = 16

// Length returns the arc length of the curve, accurate to roughly the
// given accuracy.
func (q Quadratic) Length(accuracy float64) float64 {
	return q.Elevate().Length(accuracy)
}

// Length returns the arc length of the curve, accurate to roughly the
// given accuracy.
func (c Cubic) Length(accuracy float64) float64 {
	type item struct {
		c     Cubic
		acc   float64
		depth int
	}
	var stack [lengthMaxDepth + 1]item
	stack[0] = item{c, accuracy, 0}
	n := 1

	total := 0.0
	for n > 0 {
		n--
		it := stack[n]
		cur := it.c

		chord := cur.P0.Distance(cur.P3)
		poly := cur.P0.Distance(cur.P1) + cur.P1.Distance(cur.P2) + cur.P2.Distance(cur.P3)
		if poly-chord <= it.acc || it.depth >= lengthMaxDepth {
			// Gravesen's estimate for degree 3
			total += (chord + poly) / 2
			continue
		}

		left, right := cur.Split(0.5)
		stack[n] = item{right, it.acc / 2, it.depth + 1}
		stack[n+1] = item{left, it.acc / 2, it.depth + 1}
		n += 2
	}
	return total
}
