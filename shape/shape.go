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

// Package shape converts common closed figures into paths.
//
// All shapes are traced in the same rotational direction (from the +x axis
// towards the +y axis), so that overlapping shapes add up under the
// nonzero winding rule. Shapes of zero size produce an empty path.
package shape

import (
	"math"

	"seehuhn.de/go/coverage/affine"
	"seehuhn.de/go/coverage/geomerr"
	"seehuhn.de/go/coverage/outline"
)

// Kappa is the distance of the control points from the end points, relative
// to the radius, when a quarter circle is approximated by a cubic Bézier
// curve. The maximal radial error of this approximation is about 0.027%.
const Kappa = 0.5522847498307936

// Shape is a closed figure which can be converted into a path.
//
// The set of shapes is fixed; the implementations are the types in this
// package.
type Shape interface {
	Path() (*outline.Path, error)
	isShape()
}

// Rectangle is an axis-aligned rectangle.
type Rectangle struct {
	Rect affine.Rect
}

// Ellipse is an axis-aligned ellipse.
type Ellipse struct {
	Center affine.Point
	RX, RY float64
}

// Circle returns the circle with the given center and radius.
func Circle(center affine.Point, r float64) Ellipse {
	return Ellipse{Center: center, RX: r, RY: r}
}

// RoundedRectangle is an axis-aligned rectangle with quarter-circle
// corners. Radii larger than half the width or height are reduced.
type RoundedRectangle struct {
	Rect   affine.Rect
	Radius float64
}

// Polygon is a closed polygon with the given vertices.
type Polygon struct {
	Points []affine.Point
}

// RegularPolygon is a regular polygon inscribed in a circle.
// With Rotation 0, the first vertex is straight above the center
// (in a y-down coordinate system).
type RegularPolygon struct {
	Center   affine.Point
	Radius   float64
	Sides    int
	Rotation float64 // radians
}

// Triangle is the triangle with corners A, B and C.
// Unlike the other shapes, it is traced in the order of its corners.
type Triangle struct {
	A, B, C affine.Point
}

// Trapezoid has a horizontal top edge at y = Top, running from x = TopLeft
// to x = TopRight, and a horizontal bottom edge at y = Bottom, from
// x = BottomLeft to x = BottomRight.
type Trapezoid struct {
	Top, Bottom             float64
	TopLeft, TopRight       float64
	BottomLeft, BottomRight float64
}

// PathShape wraps an arbitrary path. Open subpaths are filled as if they
// were closed.
type PathShape struct {
	Outline *outline.Path
}

func (Rectangle) isShape()        {}
func (Ellipse) isShape()          {}
func (RoundedRectangle) isShape() {}
func (Polygon) isShape()          {}
func (RegularPolygon) isShape()   {}
func (Triangle) isShape()         {}
func (Trapezoid) isShape()        {}
func (PathShape) isShape()        {}

// tracer feeds a Builder and keeps the first error.
type tracer struct {
	b   *outline.Builder
	err error
}

func newTracer() *tracer {
	return &tracer{b: outline.NewBuilder()}
}

func (t *tracer) moveTo(p affine.Point) {
	if t.err == nil {
		t.err = t.b.MoveTo(p)
	}
}

func (t *tracer) lineTo(p affine.Point) {
	if t.err == nil {
		t.err = t.b.LineTo(p)
	}
}

func (t *tracer) cubicTo(c1, c2, p affine.Point) {
	if t.err == nil {
		t.err = t.b.CubicTo(c1, c2, p)
	}
}

func (t *tracer) close() {
	if t.err == nil {
		t.err = t.b.Close()
	}
}

func (t *tracer) path() (*outline.Path, error) {
	if t.err != nil {
		return nil, t.err
	}
	return t.b.Path(), nil
}

// Path implements the [Shape] interface.
func (s Rectangle) Path() (*outline.Path, error) {
	r := affine.NewRect(s.Rect.Min(), s.Rect.Max())
	if err := checkFinite("shape.Rectangle", r.LLx, r.LLy, r.URx, r.URy); err != nil {
		return nil, err
	}
	t := newTracer()
	if !r.IsEmpty() {
		t.rectangle(r)
	}
	return t.path()
}

func (t *tracer) rectangle(r affine.Rect) {
	t.moveTo(pt(r.LLx, r.LLy))
	t.lineTo(pt(r.URx, r.LLy))
	t.lineTo(pt(r.URx, r.URy))
	t.lineTo(pt(r.LLx, r.URy))
	t.close()
}

// Path implements the [Shape] interface.
func (s Ellipse) Path() (*outline.Path, error) {
	if err := checkFinite("shape.Ellipse", s.Center.X, s.Center.Y, s.RX, s.RY); err != nil {
		return nil, err
	}
	if s.RX < 0 || s.RY < 0 {
		return nil, geomerr.New("shape.Ellipse", geomerr.InvalidGeometry,
			"negative radius (%g, %g)", s.RX, s.RY)
	}
	t := newTracer()
	if s.RX == 0 || s.RY == 0 {
		return t.path()
	}

	cx, cy := s.Center.X, s.Center.Y
	rx, ry := s.RX, s.RY
	kx, ky := Kappa*rx, Kappa*ry
	t.moveTo(pt(cx+rx, cy))
	t.cubicTo(pt(cx+rx, cy+ky), pt(cx+kx, cy+ry), pt(cx, cy+ry))
	t.cubicTo(pt(cx-kx, cy+ry), pt(cx-rx, cy+ky), pt(cx-rx, cy))
	t.cubicTo(pt(cx-rx, cy-ky), pt(cx-kx, cy-ry), pt(cx, cy-ry))
	t.cubicTo(pt(cx+kx, cy-ry), pt(cx+rx, cy-ky), pt(cx+rx, cy))
	t.close()
	return t.path()
}

// Path implements the [Shape] interface.
func (s RoundedRectangle) Path() (*outline.Path, error) {
	r := affine.NewRect(s.Rect.Min(), s.Rect.Max())
	if err := checkFinite("shape.RoundedRectangle", r.LLx, r.LLy, r.URx, r.URy, s.Radius); err != nil {
		return nil, err
	}
	if s.Radius < 0 {
		return nil, geomerr.New("shape.RoundedRectangle", geomerr.InvalidGeometry,
			"negative radius %g", s.Radius)
	}
	t := newTracer()
	if r.IsEmpty() {
		return t.path()
	}
	rad := min(s.Radius, r.Width()/2, r.Height()/2)
	if rad == 0 {
		t.rectangle(r)
		return t.path()
	}

	x0, y0, x1, y1 := r.LLx, r.LLy, r.URx, r.URy
	k := Kappa * rad
	t.moveTo(pt(x0+rad, y0))
	t.lineTo(pt(x1-rad, y0))
	t.cubicTo(pt(x1-rad+k, y0), pt(x1, y0+rad-k), pt(x1, y0+rad))
	t.lineTo(pt(x1, y1-rad))
	t.cubicTo(pt(x1, y1-rad+k), pt(x1-rad+k, y1), pt(x1-rad, y1))
	t.lineTo(pt(x0+rad, y1))
	t.cubicTo(pt(x0+rad-k, y1), pt(x0, y1-rad+k), pt(x0, y1-rad))
	t.lineTo(pt(x0, y0+rad))
	t.cubicTo(pt(x0, y0+rad-k), pt(x0+rad-k, y0), pt(x0+rad, y0))
	t.close()
	return t.path()
}

// Path implements the [Shape] interface.
// Polygons with fewer than three vertices give an empty path.
func (s Polygon) Path() (*outline.Path, error) {
	for _, p := range s.Points {
		if !p.IsFinite() {
			return nil, geomerr.New("shape.Polygon", geomerr.InvalidGeometry,
				"non-finite vertex (%g, %g)", p.X, p.Y)
		}
	}
	t := newTracer()
	if len(s.Points) < 3 {
		return t.path()
	}
	t.moveTo(s.Points[0])
	for _, p := range s.Points[1:] {
		t.lineTo(p)
	}
	t.close()
	return t.path()
}

// Vertices returns the corners of the polygon.
func (s RegularPolygon) Vertices() []affine.Point {
	res := make([]affine.Point, s.Sides)
	for i := range res {
		phi := s.Rotation - math.Pi/2 + 2*math.Pi*float64(i)/float64(s.Sides)
		sin, cos := math.Sincos(phi)
		res[i] = pt(s.Center.X+s.Radius*cos, s.Center.Y+s.Radius*sin)
	}
	return res
}

// Path implements the [Shape] interface.
func (s RegularPolygon) Path() (*outline.Path, error) {
	if err := checkFinite("shape.RegularPolygon", s.Center.X, s.Center.Y, s.Radius, s.Rotation); err != nil {
		return nil, err
	}
	if s.Sides < 3 || s.Radius < 0 {
		return nil, geomerr.New("shape.RegularPolygon", geomerr.InvalidGeometry,
			"%d sides, radius %g", s.Sides, s.Radius)
	}
	if s.Radius == 0 {
		return newTracer().path()
	}
	return Polygon{Points: s.Vertices()}.Path()
}

// Path implements the [Shape] interface.
// Collinear corners give an empty path.
func (s Triangle) Path() (*outline.Path, error) {
	if err := checkFinite("shape.Triangle", s.A.X, s.A.Y, s.B.X, s.B.Y, s.C.X, s.C.Y); err != nil {
		return nil, err
	}
	if s.Area() == 0 {
		return newTracer().path()
	}
	return Polygon{Points: []affine.Point{s.A, s.B, s.C}}.Path()
}

// Area returns the area of the triangle.
func (s Triangle) Area() float64 {
	return math.Abs(s.B.Sub(s.A).Cross(s.C.Sub(s.A))) / 2
}

// Edges returns the three sides AB, BC and CA.
func (s Triangle) Edges() [3]affine.Segment {
	return [3]affine.Segment{{A: s.A, B: s.B}, {A: s.B, B: s.C}, {A: s.C, B: s.A}}
}

// Path implements the [Shape] interface.
// The corners are visited as top-left, top-right, bottom-right,
// bottom-left. A trapezoid of zero height gives an empty path.
func (s Trapezoid) Path() (*outline.Path, error) {
	err := checkFinite("shape.Trapezoid",
		s.Top, s.Bottom, s.TopLeft, s.TopRight, s.BottomLeft, s.BottomRight)
	if err != nil {
		return nil, err
	}
	if s.TopLeft > s.TopRight || s.BottomLeft > s.BottomRight {
		return nil, geomerr.New("shape.Trapezoid", geomerr.InvalidGeometry,
			"left side right of right side")
	}
	t := newTracer()
	if s.Top == s.Bottom || (s.TopLeft == s.TopRight && s.BottomLeft == s.BottomRight) {
		return t.path()
	}
	t.moveTo(pt(s.TopLeft, s.Top))
	t.lineTo(pt(s.TopRight, s.Top))
	t.lineTo(pt(s.BottomRight, s.Bottom))
	t.lineTo(pt(s.BottomLeft, s.Bottom))
	t.close()
	return t.path()
}

// Area returns the area of the trapezoid: the mean width times the height.
func (s Trapezoid) Area() float64 {
	return (s.TopRight - s.TopLeft + s.BottomRight - s.BottomLeft) / 2 *
		math.Abs(s.Bottom-s.Top)
}

// Perimeter returns the total length of the four sides.
func (s Trapezoid) Perimeter() float64 {
	var total float64
	for _, e := range s.Edges() {
		total += e.Length()
	}
	return total
}

// Edges returns the top, right, bottom and left sides, in this order.
func (s Trapezoid) Edges() [4]affine.Segment {
	tl, tr := pt(s.TopLeft, s.Top), pt(s.TopRight, s.Top)
	br, bl := pt(s.BottomRight, s.Bottom), pt(s.BottomLeft, s.Bottom)
	return [4]affine.Segment{{A: tl, B: tr}, {A: tr, B: br}, {A: br, B: bl}, {A: bl, B: tl}}
}

// Path implements the [Shape] interface.
func (s PathShape) Path() (*outline.Path, error) {
	if s.Outline == nil {
		return newTracer().path()
	}
	if err := s.Outline.Validate(); err != nil {
		return nil, err
	}
	return s.Outline, nil
}

func checkFinite(op string, xx ...float64) error {
	for _, x := range xx {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return geomerr.New(op, geomerr.InvalidGeometry, "non-finite parameter %g", x)
		}
	}
	return nil
}

func pt(x, y float64) affine.Point {
	return affine.Point{X: x, Y: y}
}
