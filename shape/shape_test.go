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
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/coverage/affine"
	"seehuhn.de/go/coverage/geomerr"
	"seehuhn.de/go/coverage/outline"
)

func rect(x0, y0, x1, y1 float64) affine.Rect {
	return affine.NewRect(pt(x0, y0), pt(x1, y1))
}

// signedArea returns the shoelace area without taking the absolute value.
func signedArea(t *testing.T, s Shape) float64 {
	t.Helper()
	p, err := s.Path()
	require.NoError(t, err)
	subpaths, err := p.Subpaths(0.01)
	require.NoError(t, err)
	var a float64
	for sp := range subpaths {
		pts := sp.Points
		for i := range pts {
			j := (i + 1) % len(pts)
			a += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
		}
	}
	return a / 2
}

func TestAreas(t *testing.T) {
	cases := []struct {
		name  string
		shape Shape
		area  float64
		delta float64
	}{
		{"rectangle", Rectangle{Rect: rect(1, 2, 5, 8)}, 24, 1e-12},
		{"circle", Circle(pt(10, 10), 5), math.Pi * 25, 0.05},
		{"ellipse", Ellipse{Center: pt(0, 0), RX: 4, RY: 2}, math.Pi * 8, 0.05},
		{"rounded", RoundedRectangle{Rect: rect(0, 0, 10, 6), Radius: 2}, 60 - (4-math.Pi)*4, 0.05},
		{"rounded_clamped", RoundedRectangle{Rect: rect(0, 0, 4, 4), Radius: 10}, math.Pi * 4, 0.05},
		{"triangle", Polygon{Points: []affine.Point{pt(0, 0), pt(4, 0), pt(0, 3)}}, 6, 1e-12},
		{"hexagon", RegularPolygon{Center: pt(0, 0), Radius: 2, Sides: 6}, 3 * math.Sqrt(3) / 2 * 4, 1e-9},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := Area(c.shape, 0.001)
			require.NoError(t, err)
			assert.InDelta(t, c.area, a, c.delta)
		})
	}
}

func TestOrientation(t *testing.T) {
	shapes := []Shape{
		Rectangle{Rect: rect(0, 0, 3, 3)},
		Circle(pt(5, 5), 2),
		RoundedRectangle{Rect: rect(0, 0, 10, 6), Radius: 1},
		RegularPolygon{Center: pt(0, 0), Radius: 3, Sides: 5},
		Trapezoid{Top: 0, Bottom: 2, TopLeft: 1, TopRight: 3, BottomLeft: 0, BottomRight: 4},
	}
	for _, s := range shapes {
		assert.Greater(t, signedArea(t, s), 0.0, "%T", s)
	}
}

func TestPerimeter(t *testing.T) {
	l, err := Perimeter(Circle(pt(0, 0), 1), 1e-9)
	require.NoError(t, err)
	assert.InDelta(t, 2*math.Pi, l, 2e-3)

	l, err = Perimeter(Rectangle{Rect: rect(0, 0, 2, 3)}, 1e-9)
	require.NoError(t, err)
	assert.InDelta(t, 10, l, 1e-12)

	// open subpaths count as closed
	b := outline.NewBuilder()
	require.NoError(t, b.MoveTo(pt(0, 0)))
	require.NoError(t, b.LineTo(pt(3, 0)))
	require.NoError(t, b.LineTo(pt(3, 4)))
	require.NoError(t, b.MoveTo(pt(10, 10)))
	require.NoError(t, b.LineTo(pt(11, 10)))
	l, err = Perimeter(PathShape{Outline: b.Path()}, 1e-9)
	require.NoError(t, err)
	assert.InDelta(t, 12+2, l, 1e-12)
}

func TestBounds(t *testing.T) {
	r, ok := Bounds(Circle(pt(10, 20), 5))
	require.True(t, ok)
	assert.InDelta(t, 5, r.LLx, 1e-12)
	assert.InDelta(t, 15, r.LLy, 1e-12)
	assert.InDelta(t, 15, r.URx, 1e-12)
	assert.InDelta(t, 25, r.URy, 1e-12)

	_, ok = Bounds(Rectangle{})
	assert.False(t, ok)
}

func TestDegenerate(t *testing.T) {
	empty := []Shape{
		Rectangle{Rect: rect(1, 1, 1, 5)},
		Circle(pt(0, 0), 0),
		RoundedRectangle{Rect: rect(0, 0, 0, 0), Radius: 1},
		Polygon{Points: []affine.Point{pt(0, 0), pt(1, 1)}},
		RegularPolygon{Center: pt(1, 1), Radius: 0, Sides: 4},
		PathShape{},
		Triangle{A: pt(0, 0), B: pt(1, 1), C: pt(3, 3)},
		Trapezoid{Top: 2, Bottom: 2, TopRight: 1, BottomRight: 4},
		Trapezoid{Top: 0, Bottom: 2, TopLeft: 1, TopRight: 1, BottomLeft: 1, BottomRight: 1},
	}
	for _, s := range empty {
		p, err := s.Path()
		require.NoError(t, err, "%T", s)
		assert.True(t, p.IsEmpty(), "%T", s)
	}

	// zero radius gives the plain rectangle
	p, err := RoundedRectangle{Rect: rect(0, 0, 2, 2)}.Path()
	require.NoError(t, err)
	assert.Equal(t, 5, p.Len())
}

func TestInvalid(t *testing.T) {
	invalid := []Shape{
		Circle(pt(0, 0), -1),
		Ellipse{Center: pt(math.NaN(), 0), RX: 1, RY: 1},
		RoundedRectangle{Rect: rect(0, 0, 1, 1), Radius: -1},
		Rectangle{Rect: affine.Rect{URx: math.Inf(1), URy: 1}},
		Polygon{Points: []affine.Point{pt(0, 0), pt(1, math.NaN()), pt(1, 1)}},
		RegularPolygon{Center: pt(0, 0), Radius: 1, Sides: 2},
		Triangle{A: pt(0, 0), B: pt(math.Inf(-1), 1), C: pt(1, 1)},
		Trapezoid{Top: 0, Bottom: 1, TopLeft: 2, TopRight: 1, BottomLeft: 0, BottomRight: 3},
		Trapezoid{Top: math.NaN(), Bottom: 1, TopRight: 1, BottomRight: 1},

		// finite parameters, but the control points overflow
		Ellipse{Center: pt(1e308, 0), RX: 1e308, RY: 1},
	}
	for _, s := range invalid {
		_, err := s.Path()
		assert.True(t, errors.Is(err, geomerr.ErrInvalidGeometry), "%T: %v", s, err)
	}
}

func TestTriangle(t *testing.T) {
	cases := []struct {
		name string
		tri  Triangle
		area float64
	}{
		{"ccw", Triangle{A: pt(0, 0), B: pt(4, 0), C: pt(0, 3)}, 6},
		{"cw", Triangle{A: pt(0, 0), B: pt(0, 3), C: pt(4, 0)}, 6},
		{"obtuse", Triangle{A: pt(1, 1), B: pt(9, 1), C: pt(-3, 2)}, 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.InDelta(t, c.area, c.tri.Area(), 1e-12)
			a, err := Area(c.tri, 0.01)
			require.NoError(t, err)
			assert.InDelta(t, c.area, a, 1e-12)

			var edges float64
			for _, e := range c.tri.Edges() {
				edges += e.Length()
			}
			l, err := Perimeter(c.tri, 1e-9)
			require.NoError(t, err)
			assert.InDelta(t, edges, l, 1e-12)
		})
	}

	// corners are traced in the given order
	assert.Greater(t, signedArea(t, cases[0].tri), 0.0)
	assert.Less(t, signedArea(t, cases[1].tri), 0.0)
}

func TestTrapezoid(t *testing.T) {
	cases := []struct {
		name string
		trap Trapezoid
		area float64
	}{
		{"rectangle", Trapezoid{Top: 1, Bottom: 3, TopLeft: 0, TopRight: 5, BottomLeft: 0, BottomRight: 5}, 10},
		{"symmetric", Trapezoid{Top: 0, Bottom: 4, TopLeft: 1, TopRight: 3, BottomLeft: 0, BottomRight: 4}, 12},
		{"triangle", Trapezoid{Top: 0, Bottom: 2, TopLeft: 2, TopRight: 2, BottomLeft: 0, BottomRight: 4}, 4},
		{"sheared", Trapezoid{Top: 0, Bottom: 1, TopLeft: 5, TopRight: 7, BottomLeft: 0, BottomRight: 2}, 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.InDelta(t, c.area, c.trap.Area(), 1e-12)
			a, err := Area(c.trap, 0.01)
			require.NoError(t, err)
			assert.InDelta(t, c.area, a, 1e-12)

			l, err := Perimeter(c.trap, 1e-9)
			require.NoError(t, err)
			assert.InDelta(t, c.trap.Perimeter(), l, 1e-12)
		})
	}

	e := cases[1].trap.Edges()
	assert.Equal(t, affine.Segment{A: pt(1, 0), B: pt(3, 0)}, e[0])
	assert.Equal(t, affine.Segment{A: pt(0, 4), B: pt(1, 0)}, e[3])
	assert.InDelta(t, 2+4+2*math.Sqrt(17), cases[1].trap.Perimeter(), 1e-12)
}

func TestTracerKeepsFirstError(t *testing.T) {
	tr := newTracer()
	tr.lineTo(pt(1, 1))
	tr.moveTo(pt(math.NaN(), 0))
	_, err := tr.path()
	assert.True(t, errors.Is(err, geomerr.ErrPathNotStarted), "%v", err)
}

func TestOnlyLinesAndCubics(t *testing.T) {
	p, err := RoundedRectangle{Rect: rect(0, 0, 10, 10), Radius: 3}.Path()
	require.NoError(t, err)
	for s := range p.Segments() {
		assert.NotEqual(t, outline.QuadTo, s.Op)
	}
}

func TestRegularPolygonVertices(t *testing.T) {
	v := RegularPolygon{Center: pt(0, 0), Radius: 1, Sides: 4}.Vertices()
	require.Len(t, v, 4)
	assert.InDelta(t, 0, v[0].X, 1e-15)
	assert.InDelta(t, -1, v[0].Y, 1e-15)
	assert.InDelta(t, 1, v[1].X, 1e-15)
	assert.InDelta(t, 0, v[1].Y, 1e-15)
}
