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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/coverage/geomerr"
)

// Matrix is an affine transformation with coefficients [a b c d e f].
// It maps (x, y) to
//
//	x' = a*x + c*y + e
//	y' = b*x + d*y + f
//
// This is the layout used by PDF. Composition, application and inversion
// are delegated to [matrix.Matrix].
type Matrix matrix.Matrix

// Identity is the identity transformation.
var Identity = Matrix(matrix.Identity)

// DegenerateThreshold is the smallest absolute determinant for which a
// matrix is considered invertible.
const DegenerateThreshold = 1e-12

// NewMatrix returns the matrix with the given coefficients.
// It fails with [geomerr.InvalidGeometry] if a coefficient is NaN or infinite.
func NewMatrix(a, b, c, d, e, f float64) (Matrix, error) {
	m := Matrix{a, b, c, d, e, f}
	if !m.IsFinite() {
		return Matrix{}, geomerr.New("affine.NewMatrix", geomerr.InvalidGeometry,
			"non-finite coefficient in %v", [6]float64(m))
	}
	return m, nil
}

// Translate returns a translation by (dx, dy).
func Translate(dx, dy float64) Matrix {
	return Matrix(matrix.Identity.Translate(dx, dy))
}

// Scale returns a scaling by sx horizontally and sy vertically.
func Scale(sx, sy float64) Matrix {
	return Matrix(matrix.Scale(sx, sy))
}

// Rotate returns a rotation by phi radians. With the y-axis pointing
// down, positive angles turn clockwise on screen.
func Rotate(phi float64) Matrix {
	s, c := math.Sincos(phi)
	return Matrix{c, s, -s, c, 0, 0}
}

// RotateDeg returns a rotation by phi degrees.
func RotateDeg(phi float64) Matrix {
	return Matrix(matrix.RotateDeg(phi))
}

// Skew returns a shear which moves x by kx*y and y by ky*x.
func Skew(kx, ky float64) Matrix {
	return Matrix{1, ky, kx, 1, 0, 0}
}

// Mul returns the transformation which first applies m and then n.
func (m Matrix) Mul(n Matrix) Matrix {
	return Matrix(matrix.Matrix(m).Mul(matrix.Matrix(n)))
}

// Translate returns m followed by a translation.
func (m Matrix) Translate(dx, dy float64) Matrix {
	return Matrix(matrix.Matrix(m).Translate(dx, dy))
}

// Scale returns m followed by a scaling.
func (m Matrix) Scale(sx, sy float64) Matrix {
	return m.Mul(Scale(sx, sy))
}

// Rotate returns m followed by a rotation by phi radians.
func (m Matrix) Rotate(phi float64) Matrix {
	return m.Mul(Rotate(phi))
}

// Apply transforms the point p, including the translation.
func (m Matrix) Apply(p Point) Point {
	return Point(matrix.Matrix(m).Apply(vec.Vec2(p)))
}

// ApplyVector transforms the vector v using only the linear part of m.
func (m Matrix) ApplyVector(v Vector) Vector {
	linear := matrix.Matrix{m[0], m[1], m[2], m[3], 0, 0}
	return Vector(linear.Apply(vec.Vec2(v)))
}

// Det returns the determinant of the linear part of m.
func (m Matrix) Det() float64 {
	return m[0]*m[3] - m[1]*m[2]
}

// IsFinite reports whether all coefficients are neither NaN nor infinite.
func (m Matrix) IsFinite() bool {
	for _, x := range m {
		if !isFinite(x) {
			return false
		}
	}
	return true
}

// IsInvertible reports whether m can be inverted.
func (m Matrix) IsInvertible() bool {
	return m.IsFinite() && math.Abs(m.Det()) >= DegenerateThreshold
}

// Invert returns the inverse of m.
// It fails with [geomerr.DegenerateMatrix] if |det m| is below
// [DegenerateThreshold].
func (m Matrix) Invert() (Matrix, error) {
	det := m.Det()
	if !(math.Abs(det) >= DegenerateThreshold) {
		return Matrix{}, geomerr.New("affine.Matrix.Invert", geomerr.DegenerateMatrix,
			"determinant %g", det)
	}
	return Matrix(matrix.Matrix(m).Inv()), nil
}

// MaxScale returns the largest factor by which m stretches any vector,
// i.e. the larger singular value of the linear part.
func (m Matrix) MaxScale() float64 {
	t := m[0]*m[0] + m[1]*m[1] + m[2]*m[2] + m[3]*m[3]
	det := m.Det()
	disc := t*t - 4*det*det
	if disc < 0 {
		disc = 0
	}
	return math.Sqrt((t + math.Sqrt(disc)) / 2)
}

// Decomposition describes an affine transformation as
// translate · rotate · scale · skew, where the skew moves x by Skew*y.
type Decomposition struct {
	TranslateX, TranslateY float64
	Rotation               float64 // radians
	ScaleX, ScaleY         float64
	Skew                   float64
}

// Decompose splits m into translation, rotation, scale and skew.
// The result is intended for diagnostics. ScaleY is negative if m
// mirrors the plane.
func (m Matrix) Decompose() Decomposition {
	d := Decomposition{TranslateX: m[4], TranslateY: m[5]}

	sx := math.Hypot(m[0], m[1])
	if sx == 0 {
		d.ScaleY = math.Hypot(m[2], m[3])
		return d
	}
	d.ScaleX = sx
	d.Rotation = math.Atan2(m[1], m[0])

	// second column expressed in the rotated frame
	shear := (m[0]*m[2] + m[1]*m[3]) / sx
	d.ScaleY = m.Det() / sx
	d.Skew = shear / sx
	return d
}

// Compose builds the matrix described by d. It is the inverse of
// [Matrix.Decompose].
func (d Decomposition) Compose() Matrix {
	linear := Matrix{d.ScaleX, 0, d.ScaleX * d.Skew, d.ScaleY, 0, 0}
	return linear.Rotate(d.Rotation).Translate(d.TranslateX, d.TranslateY)
}

// Geom converts m to a [matrix.Matrix].
func (m Matrix) Geom() matrix.Matrix {
	return matrix.Matrix(m)
}

// FromGeom converts a [matrix.Matrix] to a Matrix.
func FromGeom(m matrix.Matrix) Matrix {
	return Matrix(m)
}
