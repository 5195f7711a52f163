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

package coverage

import (
	"bytes"
	"errors"
	"image"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/coverage/affine"
	"seehuhn.de/go/coverage/geomerr"
	"seehuhn.de/go/coverage/outline"
	"seehuhn.de/go/coverage/shape"
)

func pt(x, y float64) affine.Point {
	return affine.Point{X: x, Y: y}
}

// polygonPath builds a closed polygon through the given coordinate pairs.
func polygonPath(t testing.TB, coords ...float64) *outline.Path {
	t.Helper()
	b := outline.NewBuilder()
	require.NoError(t, b.MoveTo(pt(coords[0], coords[1])))
	for i := 2; i < len(coords); i += 2 {
		require.NoError(t, b.LineTo(pt(coords[i], coords[i+1])))
	}
	require.NoError(t, b.Close())
	return b.Path()
}

func rectPath(t testing.TB, x0, y0, x1, y1 float64) *outline.Path {
	return polygonPath(t, x0, y0, x1, y0, x1, y1, x0, y1)
}

// filled returns a buffer where every pixel has the value v.
func filled(w, h int, v float32) *Buffer {
	buf := NewBuffer(w, h)
	for i := range buf.Pix {
		buf.Pix[i] = v
	}
	return buf
}

// TestTriangleCoverage verifies exact coverage values for a simple triangle.
// The triangle (0,0)→(10,0)→(10,1)→close has a diagonal edge y = x/10.
// Each pixel X should have coverage (2X+1)/20: 0.05, 0.15, ..., 0.95.
func TestTriangleCoverage(t *testing.T) {
	p := polygonPath(t, 0, 0, 10, 0, 10, 1)

	coverage := make([]float32, 10)
	emit := func(y, xMin int, cov []float32) {
		if y == 0 {
			copy(coverage[xMin:], cov)
		}
	}
	r := NewRasterizer()
	err := r.Fill([]*outline.Path{p}, affine.Identity, NonZero, DefaultTolerance,
		image.Rect(0, 0, 10, 1), emit)
	require.NoError(t, err)

	for x := range 10 {
		expected := float32(2*x+1) / 20.0
		assert.InDelta(t, expected, coverage[x], 1e-6, "pixel %d", x)
	}
}

func TestExactRectangle(t *testing.T) {
	buf := NewBuffer(4, 4)
	err := Rasterize([]*outline.Path{rectPath(t, 0, 0, 4, 4)}, affine.Identity,
		NonZero, DefaultTolerance, buf)
	require.NoError(t, err)
	for i, v := range buf.Pix {
		assert.Equal(t, float32(1), v, "pixel %d", i)
	}

	// the same square traced in the opposite direction
	buf = NewBuffer(4, 4)
	p := polygonPath(t, 0, 0, 0, 4, 4, 4, 4, 0)
	require.NoError(t, Rasterize([]*outline.Path{p}, affine.Identity, EvenOdd, DefaultTolerance, buf))
	for i, v := range buf.Pix {
		assert.Equal(t, float32(1), v, "pixel %d", i)
	}
}

func TestHalfPixelRectangle(t *testing.T) {
	buf := NewBuffer(4, 1)
	err := Rasterize([]*outline.Path{rectPath(t, 0.5, 0, 2.5, 1)}, affine.Identity,
		NonZero, DefaultTolerance, buf)
	require.NoError(t, err)
	assert.Equal(t, []float32{0.5, 1, 0.5, 0}, buf.Pix)
}

// TestWindingRules fills a single subpath which traces two overlapping
// squares in the same direction. The overlap has winding number 2.
func TestWindingRules(t *testing.T) {
	p := polygonPath(t,
		2, 2, 10, 2, 10, 10, 2, 10, 2, 2,
		6, 6, 14, 6, 14, 14, 6, 14, 6, 6)

	for _, rule := range []FillRule{NonZero, EvenOdd} {
		t.Run(rule.String(), func(t *testing.T) {
			buf := NewBuffer(16, 16)
			require.NoError(t, Rasterize([]*outline.Path{p}, affine.Identity, rule, DefaultTolerance, buf))
			for y := range 16 {
				for x := range 16 {
					inA := x >= 2 && x < 10 && y >= 2 && y < 10
					inB := x >= 6 && x < 14 && y >= 6 && y < 14
					want := inA || inB
					if rule == EvenOdd {
						want = inA != inB
					}
					var expected float32
					if want {
						expected = 1
					}
					assert.Equal(t, expected, buf.At(x, y), "pixel (%d,%d)", x, y)
				}
			}
		})
	}
}

func TestMultiplePathsFormOneRegion(t *testing.T) {
	a := rectPath(t, 0, 0, 4, 4)
	b := rectPath(t, 2, 0, 6, 4)

	buf := NewBuffer(6, 4)
	require.NoError(t, Rasterize([]*outline.Path{a, b}, affine.Identity, EvenOdd, DefaultTolerance, buf))
	for x := range 6 {
		expected := float32(1)
		if x == 2 || x == 3 {
			expected = 0
		}
		assert.Equal(t, expected, buf.At(x, 1), "column %d", x)
	}
}

func TestDeterministic(t *testing.T) {
	c, err := shape.Circle(pt(13.3, 11.7), 9.1).Path()
	require.NoError(t, err)
	paths := []*outline.Path{c, rectPath(t, 3.3, 4.4, 20.1, 9.7)}
	m := affine.RotateDeg(17).Mul(affine.Translate(4, 2))

	render := func(workers int) []float32 {
		r := NewRasterizer()
		r.Workers = workers
		buf := NewBuffer(32, 24)
		require.NoError(t, r.Rasterize(paths, m, EvenOdd, 0.05, buf))
		return buf.Pix
	}
	want := render(1)
	assert.Equal(t, want, render(1))
	for _, workers := range []int{2, 3, 7, 100} {
		assert.Equal(t, want, render(workers), "%d workers", workers)
	}
}

func TestEmptyInput(t *testing.T) {
	b := outline.NewBuilder()
	require.NoError(t, b.MoveTo(pt(1, 1)))
	onlyMove := b.Path()

	cases := map[string][]*outline.Path{
		"nil":       nil,
		"empty":     {outline.NewBuilder().Path()},
		"move_only": {onlyMove},
		"flat":      {polygonPath(t, 0, 1, 4, 1, 2, 1)},
		"outside":   {rectPath(t, 10, 10, 20, 20)},
		"above":     {rectPath(t, 0, -5, 4, -1)},
	}
	for name, paths := range cases {
		t.Run(name, func(t *testing.T) {
			buf := filled(4, 4, 0.25)
			require.NoError(t, Rasterize(paths, affine.Identity, NonZero, DefaultTolerance, buf))
			for _, v := range buf.Pix {
				assert.Equal(t, float32(0.25), v)
			}
		})
	}
}

// TestRowsOutsideShapeUntouched checks that only the trimmed row spans
// covered by the fill are written.
func TestRowsOutsideShapeUntouched(t *testing.T) {
	buf := filled(6, 4, 0.25)
	require.NoError(t, Rasterize([]*outline.Path{rectPath(t, 1, 1, 3, 2)},
		affine.Identity, NonZero, DefaultTolerance, buf))
	for y := range 4 {
		for x := range 6 {
			expected := float32(0.25)
			if y == 1 && (x == 1 || x == 2) {
				expected = 1
			}
			assert.Equal(t, expected, buf.At(x, y), "pixel (%d,%d)", x, y)
		}
	}
}

func TestErrors(t *testing.T) {
	valid := rectPath(t, 0, 0, 2, 2)

	// 0·∞ gives NaN coordinates
	nanPath := rectPath(t, 0, 0, 1, 1).Transform(affine.Scale(math.Inf(1), 1))

	huge := rectPath(t, 0, 0, 1e300, 1e300)

	// finite end points, but x1-x0 overflows
	steep := polygonPath(t, -1e308, 0, 1e308, 10, -1e308, 10)

	type call struct {
		paths []*outline.Path
		m     affine.Matrix
		rule  FillRule
		tol   float64
		buf   *Buffer
	}
	ok := func() call {
		return call{[]*outline.Path{valid}, affine.Identity, NonZero, DefaultTolerance, filled(4, 4, 0.25)}
	}
	cases := []struct {
		name   string
		modify func(c *call)
		want   error
	}{
		{"rule", func(c *call) { c.rule = FillRule(7) }, geomerr.ErrUnsupportedFillRule},
		{"nil_buffer", func(c *call) { c.buf = nil }, geomerr.ErrBufferSizeMismatch},
		{"short_buffer", func(c *call) { c.buf.Pix = c.buf.Pix[:15] }, geomerr.ErrBufferSizeMismatch},
		{"zero_size", func(c *call) { c.buf = &Buffer{} }, geomerr.ErrBufferSizeMismatch},
		{"nan_matrix", func(c *call) { c.m[4] = math.NaN() }, geomerr.ErrInvalidGeometry},
		{"singular_matrix", func(c *call) { c.m = affine.Scale(0, 1) }, geomerr.ErrDegenerateMatrix},
		{"zero_tolerance", func(c *call) { c.tol = 0 }, geomerr.ErrInvalidGeometry},
		{"negative_tolerance", func(c *call) { c.tol = -1 }, geomerr.ErrInvalidGeometry},
		{"nan_tolerance", func(c *call) { c.tol = math.NaN() }, geomerr.ErrInvalidGeometry},
		{"nan_coordinate", func(c *call) { c.paths = append(c.paths, nanPath) }, geomerr.ErrInvalidGeometry},
		{"overflow", func(c *call) {
			c.paths = append(c.paths, huge)
			c.m = affine.Scale(1e10, 1e10)
		}, geomerr.ErrInvalidGeometry},
		{"slope_overflow", func(c *call) { c.paths = append(c.paths, steep) }, geomerr.ErrInvalidGeometry},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := ok()
			tc.modify(&c)
			var before []float32
			if c.buf != nil {
				before = append([]float32(nil), c.buf.Pix...)
			}

			err := Rasterize(c.paths, c.m, c.rule, c.tol, c.buf)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)

			if c.buf != nil {
				assert.Equal(t, before, c.buf.Pix, "buffer was modified")
			}
		})
	}
}

func TestShapeLeftOfCanvas(t *testing.T) {
	// A rectangle which starts left of the canvas
	buf := NewBuffer(6, 2)
	require.NoError(t, Rasterize([]*outline.Path{rectPath(t, -5, 0, 3, 2)},
		affine.Identity, NonZero, DefaultTolerance, buf))
	assert.Equal(t, []float32{1, 1, 1, 0, 0, 0}, buf.Pix[:6])

	// A curve entirely left of the canvas only contributes through
	// its winding.
	b := outline.NewBuilder()
	require.NoError(t, b.MoveTo(pt(-10, 0)))
	require.NoError(t, b.CubicTo(pt(-40, 4), pt(-2, 12), pt(-10, 16)))
	require.NoError(t, b.LineTo(pt(8, 16)))
	require.NoError(t, b.LineTo(pt(8, 0)))
	require.NoError(t, b.Close())
	buf = NewBuffer(12, 16)
	require.NoError(t, Rasterize([]*outline.Path{b.Path()}, affine.Identity, NonZero, DefaultTolerance, buf))
	for y := range 16 {
		for x := range 12 {
			expected := float32(0)
			if x < 8 {
				expected = 1
			}
			assert.Equal(t, expected, buf.At(x, y), "pixel (%d,%d)", x, y)
		}
	}
}

func TestCircleArea(t *testing.T) {
	c, err := shape.Circle(pt(16, 16), 10).Path()
	require.NoError(t, err)

	for _, tol := range []float64{0.2, 0.01} {
		buf := NewBuffer(32, 32)
		require.NoError(t, Rasterize([]*outline.Path{c}, affine.Identity, NonZero, tol, buf))
		var sum float64
		for _, v := range buf.Pix {
			sum += float64(v)
		}
		// flattened polygons are inscribed, so they lose at most 2/3 tol
		// times the perimeter
		area := math.Pi * 100
		assert.InDelta(t, area, sum, 2.0/3.0*tol*2*math.Pi*10+0.01, "tol=%g", tol)
	}
}

func TestTranslation(t *testing.T) {
	p := polygonPath(t, 1.3, 0.2, 6.7, 2.9, 2.1, 5.5)

	a := NewBuffer(16, 16)
	require.NoError(t, Rasterize([]*outline.Path{p}, affine.Identity, NonZero, DefaultTolerance, a))
	b := NewBuffer(16, 16)
	require.NoError(t, Rasterize([]*outline.Path{p}, affine.Translate(3, 4), NonZero, DefaultTolerance, b))

	for y := range 12 {
		for x := range 13 {
			assert.InDelta(t, a.At(x, y), b.At(x+3, y+4), 1e-5, "pixel (%d,%d)", x, y)
		}
	}
}

func TestFillClip(t *testing.T) {
	p := rectPath(t, 0, 0, 10, 10)
	clip := image.Rect(3, 2, 7, 5)

	rows := map[int]bool{}
	r := NewRasterizer()
	err := r.Fill([]*outline.Path{p}, affine.Identity, NonZero, DefaultTolerance, clip,
		func(y, xMin int, coverage []float32) {
			assert.False(t, rows[y], "row %d emitted twice", y)
			rows[y] = true
			assert.Equal(t, 3, xMin)
			assert.Equal(t, []float32{1, 1, 1, 1}, coverage)
		})
	require.NoError(t, err)
	assert.Equal(t, map[int]bool{2: true, 3: true, 4: true}, rows)

	err = r.Fill([]*outline.Path{p}, affine.Identity, FillRule(-1), DefaultTolerance, clip, nil)
	assert.ErrorIs(t, err, geomerr.ErrUnsupportedFillRule)
}

func TestRasterizerReuse(t *testing.T) {
	r := NewRasterizer()
	big := NewBuffer(64, 64)
	require.NoError(t, r.Rasterize([]*outline.Path{rectPath(t, 0, 0, 64, 64)}, affine.Identity, NonZero, DefaultTolerance, big))

	small := NewBuffer(4, 4)
	require.NoError(t, r.Rasterize([]*outline.Path{rectPath(t, 1, 1, 3, 3)}, affine.Identity, NonZero, DefaultTolerance, small))
	assert.Equal(t, []float32{
		0, 0, 0, 0,
		0, 1, 1, 0,
		0, 1, 1, 0,
		0, 0, 0, 0,
	}, small.Pix)
}

func TestLogging(t *testing.T) {
	out := &bytes.Buffer{}
	r := NewRasterizer()
	r.Logger = slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}))

	buf := NewBuffer(8, 8)
	require.NoError(t, r.Rasterize([]*outline.Path{rectPath(t, 1, 1, 5, 5)}, affine.Identity, NonZero, DefaultTolerance, buf))
	assert.Contains(t, out.String(), "msg=rasterize")
	assert.Contains(t, out.String(), "edges=2")
}

func TestIntegrateEvenOdd(t *testing.T) {
	// cover is zero, so that raw = area
	area := []float32{0.5, 1.5, 2, 2.5, 3, -1.25}
	cover := make([]float32, len(area))
	integrateScanlineEvenOdd(cover, area)
	assert.Equal(t, []float32{0.5, 0.5, 0, 0.5, 1, 0.75}, cover)
}

func TestIntegrateNonZero(t *testing.T) {
	area := []float32{0.5, 1.5, -2.5, -0.25, 1e-8, 1 - 1e-8}
	cover := make([]float32, len(area))
	integrateScanlineNonZero(cover, area)
	assert.Equal(t, []float32{0.5, 1, 1, 0.25, 0, 1}, cover)
}

func TestTrimZeros(t *testing.T) {
	trimmed, offset := trimZeros([]float32{0, 0, 0.5, 0, 1, 0})
	assert.Equal(t, []float32{0.5, 0, 1}, trimmed)
	assert.Equal(t, 2, offset)

	trimmed, offset = trimZeros([]float32{0, 0})
	assert.Nil(t, trimmed)
	assert.Equal(t, 0, offset)
}

func TestClampFloor(t *testing.T) {
	assert.Equal(t, 3, clampFloor(3.7, 0, 10))
	assert.Equal(t, 0, clampFloor(-1e300, 0, 10))
	assert.Equal(t, 10, clampFloor(1e300, 0, 10))
	assert.Equal(t, 0, clampFloor(math.NaN(), 0, 10))
}
