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

// Package affine implements points, vectors, rectangles and affine
// transformation matrices in the plane.
//
// The types are thin wrappers around the [seehuhn.de/go/geom] types and
// convert to them without copying. Points and vectors are distinct types:
// a [Matrix] applied to a [Point] includes the translation, applied to a
// [Vector] it does not.
package affine

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/coverage/geomerr"
)

// Point is an absolute location in the plane.
type Point vec.Vec2

// Vector is a displacement in the plane.
type Vector vec.Vec2

// NewPoint returns the point (x, y).
// It fails with [geomerr.InvalidGeometry] if a coordinate is NaN or infinite.
func NewPoint(x, y float64) (Point, error) {
	p := Point{X: x, Y: y}
	if !p.IsFinite() {
		return Point{}, geomerr.New("affine.NewPoint", geomerr.InvalidGeometry,
			"non-finite coordinate (%g, %g)", x, y)
	}
	return p, nil
}

// NewVector returns the vector (x, y).
// It fails with [geomerr.InvalidGeometry] if a component is NaN or infinite.
func NewVector(x, y float64) (Vector, error) {
	v := Vector{X: x, Y: y}
	if !v.IsFinite() {
		return Vector{}, geomerr.New("affine.NewVector", geomerr.InvalidGeometry,
			"non-finite component (%g, %g)", x, y)
	}
	return v, nil
}

// Add returns the point p displaced by v.
func (p Point) Add(v Vector) Point {
	return Point(vec.Vec2(p).Add(vec.Vec2(v)))
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Vector {
	return Vector(vec.Vec2(p).Sub(vec.Vec2(q)))
}

// Lerp interpolates linearly between p (t=0) and q (t=1).
func (p Point) Lerp(q Point, t float64) Point {
	return p.Add(q.Sub(p).Mul(t))
}

// Mid returns the midpoint between p and q.
func (p Point) Mid(q Point) Point {
	return Point(vec.Vec2(p).Add(vec.Vec2(q)).Mul(0.5))
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// IsFinite reports whether both coordinates are neither NaN nor infinite.
func (p Point) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

// Vec2 converts p to a [vec.Vec2].
func (p Point) Vec2() vec.Vec2 {
	return vec.Vec2(p)
}

// PointFromVec2 converts a [vec.Vec2] to a Point.
func PointFromVec2(v vec.Vec2) Point {
	return Point(v)
}

// Add returns v + w.
func (v Vector) Add(w Vector) Vector {
	return Vector(vec.Vec2(v).Add(vec.Vec2(w)))
}

// Sub returns v - w.
func (v Vector) Sub(w Vector) Vector {
	return Vector(vec.Vec2(v).Sub(vec.Vec2(w)))
}

// Mul returns v scaled by s.
func (v Vector) Mul(s float64) Vector {
	return Vector(vec.Vec2(v).Mul(s))
}

// Neg returns -v.
func (v Vector) Neg() Vector {
	return v.Mul(-1)
}

// Dot returns the scalar product of v and w.
func (v Vector) Dot(w Vector) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the z-component of the cross product v × w.
// The explicit conversions keep the two products from being fused, so
// that v.Cross(v) is exactly zero.
func (v Vector) Cross(w Vector) float64 {
	return float64(v.X*w.Y) - float64(v.Y*w.X)
}

// Length returns the Euclidean length of v.
func (v Vector) Length() float64 {
	return vec.Vec2(v).Length()
}

// IsFinite reports whether both components are neither NaN nor infinite.
func (v Vector) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y)
}

// Vec2 converts v to a [vec.Vec2].
func (v Vector) Vec2() vec.Vec2 {
	return vec.Vec2(v)
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
