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
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/coverage/affine"
	"seehuhn.de/go/coverage/geomerr"
)

func pt(x, y float64) affine.Point {
	return affine.Point{X: x, Y: y}
}

// polylineDistance returns the distance from p to the nearest point of
// the polyline.
func polylineDistance(p affine.Point, poly []affine.Point) float64 {
	if len(poly) == 1 {
		return p.Distance(poly[0])
	}
	best := math.Inf(1)
	for i := 1; i < len(poly); i++ {
		best = min(best, segmentDistance(p, poly[i-1], poly[i]))
	}
	return best
}

var testCubics = []Cubic{
	{pt(0, 0), pt(0, 100), pt(100, 100), pt(100, 0)},
	{pt(10, 10), pt(90, 90), pt(10, 90), pt(90, 10)}, // self-intersecting
	{pt(0, 0), pt(300, 10), pt(-200, 10), pt(100, 0)}, // cusp-like
	{pt(5, 5), pt(5.001, 5), pt(5.002, 5), pt(5.003, 5)},
	{pt(0, 0), pt(1e4, 0), pt(1e4, 1e4), pt(0, 1e4)},
}

var testQuads = []Quadratic{
	{pt(0, 0), pt(50, 100), pt(100, 0)},
	{pt(0, 0), pt(200, 0), pt(100, 0)}, // turns back on itself
	{pt(-3, 7), pt(4, 4), pt(8, -2)},
}

func TestFlattenDeviation(t *testing.T) {
	for _, tol := range []float64{1, 0.25, 0.1, 0.01} {
		for i, c := range testCubics {
			seq, err := c.Flatten(tol)
			require.NoError(t, err)
			poly := slices.Collect(seq)
			require.NotEmpty(t, poly)
			assert.Equal(t, c.P0, poly[0])
			assert.Equal(t, c.P3, poly[len(poly)-1])

			for k := 0; k <= 1000; k++ {
				p := c.Eval(float64(k) / 1000)
				d := polylineDistance(p, poly)
				if d > tol+1e-9 {
					t.Errorf("cubic %d, tol %g: deviation %g at t=%g", i, tol, d, float64(k)/1000)
					break
				}
			}
		}

		for i, q := range testQuads {
			seq, err := q.Flatten(tol)
			require.NoError(t, err)
			poly := slices.Collect(seq)
			assert.Equal(t, q.P0, poly[0])
			assert.Equal(t, q.P2, poly[len(poly)-1])

			for k := 0; k <= 1000; k++ {
				p := q.Eval(float64(k) / 1000)
				d := polylineDistance(p, poly)
				if d > tol+1e-9 {
					t.Errorf("quadratic %d, tol %g: deviation %g at t=%g", i, tol, d, float64(k)/1000)
					break
				}
			}
		}
	}
}

func TestFlattenDeterministic(t *testing.T) {
	c := testCubics[1]
	seq, err := c.Flatten(0.05)
	require.NoError(t, err)

	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Equal(t, first, second)

	again, err := c.Flatten(0.05)
	require.NoError(t, err)
	assert.Equal(t, first, slices.Collect(again))
}

func TestFlattenEarlyStop(t *testing.T) {
	seq, err := testCubics[0].Flatten(0.01)
	require.NoError(t, err)

	n := 0
	for range seq {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

func TestFlattenDegenerate(t *testing.T) {
	c := Cubic{pt(3, 4), pt(3, 4), pt(3, 4), pt(3, 4)}
	seq, err := c.Flatten(0.1)
	require.NoError(t, err)
	assert.Equal(t, []affine.Point{pt(3, 4)}, slices.Collect(seq))

	q := Quadratic{pt(1, 1), pt(1, 1), pt(1, 1)}
	qs, err := q.Flatten(0.1)
	require.NoError(t, err)
	assert.Equal(t, []affine.Point{pt(1, 1)}, slices.Collect(qs))

	// collinear control points flatten to the chord
	line := Cubic{pt(0, 0), pt(1, 0), pt(2, 0), pt(3, 0)}
	ls, err := line.Flatten(0.1)
	require.NoError(t, err)
	assert.Equal(t, []affine.Point{pt(0, 0), pt(3, 0)}, slices.Collect(ls))
}

func TestFlattenInvalid(t *testing.T) {
	c := testCubics[0]
	for _, tol := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := c.Flatten(tol)
		assert.True(t, errors.Is(err, geomerr.ErrInvalidGeometry), "tolerance %g", tol)
		_, err = testQuads[0].Flatten(tol)
		assert.True(t, errors.Is(err, geomerr.ErrInvalidGeometry), "tolerance %g", tol)
	}

	bad := Cubic{pt(0, 0), pt(math.NaN(), 0), pt(1, 1), pt(2, 2)}
	_, err := bad.Flatten(0.1)
	assert.True(t, errors.Is(err, geomerr.ErrInvalidGeometry))

	_, err = NewCubic(pt(0, 0), pt(0, 0), pt(0, math.Inf(1)), pt(0, 0))
	assert.True(t, errors.Is(err, geomerr.ErrInvalidGeometry))
	_, err = NewQuadratic(pt(math.NaN(), 0), pt(0, 0), pt(0, 0))
	assert.True(t, errors.Is(err, geomerr.ErrInvalidGeometry))
}

func TestFlattenDepthCap(t *testing.T) {
	// the tolerance cannot be reached within four halvings
	c := Cubic{pt(0, 0), pt(0, 1e6), pt(1e6, 1e6), pt(1e6, 0)}
	var pts []affine.Point
	capped := flattenCubic(c, 1e-3, 4, func(p affine.Point) bool {
		pts = append(pts, p)
		return true
	})
	assert.True(t, capped)
	assert.Len(t, pts, 1<<4)
	assert.Equal(t, c.P3, pts[len(pts)-1])

	// the full depth is only explored on demand
	seq, err := c.Flatten(1e-12)
	require.NoError(t, err)
	n := 0
	for range seq {
		n++
		if n == 100 {
			break
		}
	}
	assert.Equal(t, 100, n)

	// NaN control points terminate immediately with the chord
	bad := Cubic{pt(0, 0), pt(math.NaN(), 0), pt(1, 1), pt(2, 2)}
	pts, capped = bad.AppendFlatten(nil, 0.1)
	assert.False(t, capped)
	assert.Len(t, pts, 1)
}

func TestAppendFlattenMatchesFlatten(t *testing.T) {
	q := testQuads[0]
	seq, err := q.Flatten(0.1)
	require.NoError(t, err)
	want := slices.Collect(seq)

	got, capped := q.AppendFlatten([]affine.Point{q.P0}, 0.1)
	assert.False(t, capped)
	assert.Equal(t, want, got)
}

func TestSplitEval(t *testing.T) {
	c := testCubics[1]
	left, right := c.Split(0.3)
	assert.Equal(t, c.P0, left.P0)
	assert.Equal(t, c.P3, right.P3)
	assert.Equal(t, left.P3, right.P0)

	for _, s := range []float64{0, 0.25, 0.5, 1} {
		p := left.Eval(s)
		q := c.Eval(0.3 * s)
		assert.InDelta(t, q.X, p.X, 1e-9)
		assert.InDelta(t, q.Y, p.Y, 1e-9)

		p = right.Eval(s)
		q = c.Eval(0.3 + 0.7*s)
		assert.InDelta(t, q.X, p.X, 1e-9)
		assert.InDelta(t, q.Y, p.Y, 1e-9)
	}

	sub := testQuads[2].Subsection(0.2, 0.6)
	for _, s := range []float64{0, 0.5, 1} {
		p := sub.Eval(s)
		q := testQuads[2].Eval(0.2 + 0.4*s)
		assert.InDelta(t, q.X, p.X, 1e-9)
		assert.InDelta(t, q.Y, p.Y, 1e-9)
	}

	zero := c.Subsection(0, 0)
	assert.Equal(t, Cubic{c.P0, c.P0, c.P0, c.P0}, zero)
}

func TestDerivative(t *testing.T) {
	c := testCubics[0]
	assert.Equal(t, c.P1.Sub(c.P0).Mul(3), c.Derivative(0))
	assert.Equal(t, c.P3.Sub(c.P2).Mul(3), c.Derivative(1))

	q := testQuads[0]
	const h = 1e-6
	d := q.Derivative(0.4)
	num := q.Eval(0.4 + h).Sub(q.Eval(0.4 - h)).Mul(1 / (2 * h))
	assert.InDelta(t, num.X, d.X, 1e-4)
	assert.InDelta(t, num.Y, d.Y, 1e-4)
}

func TestElevate(t *testing.T) {
	for _, q := range testQuads {
		c := q.Elevate()
		for k := 0; k <= 10; k++ {
			s := float64(k) / 10
			p, r := q.Eval(s), c.Eval(s)
			assert.InDelta(t, p.X, r.X, 1e-9)
			assert.InDelta(t, p.Y, r.Y, 1e-9)
		}
	}
}

func TestBounds(t *testing.T) {
	c := testCubics[0]
	b := c.Bounds()
	assert.InDelta(t, 0, b.LLx, 1e-12)
	assert.InDelta(t, 0, b.LLy, 1e-12)
	assert.InDelta(t, 100, b.URx, 1e-12)
	assert.InDelta(t, 75, b.URy, 1e-12)

	q := testQuads[0]
	qb := q.Bounds()
	assert.InDelta(t, 50, qb.URy, 1e-12)
	assert.True(t, q.ControlBounds().Contains(qb.Max()))

	// the bounds contain every sampled point
	for _, c := range testCubics {
		b := c.Bounds()
		for k := 0; k <= 100; k++ {
			p := c.Eval(float64(k) / 100)
			assert.GreaterOrEqual(t, p.X, b.LLx-1e-9)
			assert.LessOrEqual(t, p.X, b.URx+1e-9)
			assert.GreaterOrEqual(t, p.Y, b.LLy-1e-9)
			assert.LessOrEqual(t, p.Y, b.URy+1e-9)
		}
	}
}

func TestLength(t *testing.T) {
	line := Cubic{pt(0, 0), pt(1, 1), pt(2, 2), pt(3, 3)}
	assert.InDelta(t, 3*math.Sqrt2, line.Length(1e-9), 1e-9)

	// quarter circle of radius 1
	const k = 0.5522847498307936
	arc := Cubic{pt(1, 0), pt(1, k), pt(k, 1), pt(0, 1)}
	assert.InDelta(t, math.Pi/2, arc.Length(1e-6), 1e-3)

	q := Quadratic{pt(0, 0), pt(1, 0), pt(2, 0)}
	assert.InDelta(t, 2, q.Length(1e-9), 1e-9)
}

func TestIsLinear(t *testing.T) {
	assert.True(t, Cubic{pt(0, 0), pt(1, 0), pt(2, 0), pt(3, 0)}.IsLinear(1e-12))
	assert.False(t, testCubics[0].IsLinear(1))
	assert.True(t, Quadratic{pt(0, 0), pt(1, 0.1), pt(2, 0)}.IsLinear(0.05))
	assert.False(t, Quadratic{pt(0, 0), pt(1, 0.1), pt(2, 0)}.IsLinear(0.04))
}

func BenchmarkFlattenCubic(b *testing.B) {
	c := testCubics[0]
	var buf []affine.Point
	for b.Loop() {
		buf, _ = c.AppendFlatten(buf[:0], 0.1)
	}
}
