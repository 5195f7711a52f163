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

package coverage_test

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/coverage"
	"seehuhn.de/go/coverage/affine"
	"seehuhn.de/go/coverage/outline"
	"seehuhn.de/go/coverage/shape"
)

var benchSizes = []int{20, 200, 2000}

// BenchmarkRasterizerO fills an "O" shape (two concentric circles, even-odd).
func BenchmarkRasterizerO(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := coverage.NewRasterizer()
			buf := coverage.NewBuffer(size, size)
			paths := makeOPaths(b, size)

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				err := r.Rasterize(paths, affine.Identity, coverage.EvenOdd, coverage.DefaultTolerance, buf)
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkRasterizerOWorkers measures the banded parallel sweep.
func BenchmarkRasterizerOWorkers(b *testing.B) {
	const size = 2000
	for _, workers := range []int{1, 2, 4, 8} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			r := coverage.NewRasterizer()
			r.Workers = workers
			buf := coverage.NewBuffer(size, size)
			paths := makeOPaths(b, size)

			b.ResetTimer()
			for b.Loop() {
				err := r.Rasterize(paths, affine.Identity, coverage.EvenOdd, coverage.DefaultTolerance, buf)
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkVectorO benchmarks x/image/vector drawing the same "O" shape.
func BenchmarkVectorO(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)

			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			center := float32(size) / 2
			outerR := float32(size) * 0.45
			innerR := float32(size) * 0.30

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.Reset(size, size)

				// vector only implements the nonzero rule, so the inner
				// circle runs the other way
				addCircleToVector(r, center, center, outerR, false)
				addCircleToVector(r, center, center, innerR, true)

				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// makeOPaths creates the two circles of an "O" shape.
func makeOPaths(b *testing.B, size int) []*outline.Path {
	center := affine.Point{X: float64(size) / 2, Y: float64(size) / 2}
	outer, err := shape.Circle(center, float64(size)*0.45).Path()
	if err != nil {
		b.Fatal(err)
	}
	inner, err := shape.Circle(center, float64(size)*0.30).Path()
	if err != nil {
		b.Fatal(err)
	}
	return []*outline.Path{outer, inner}
}

// addCircleToVector adds a circle to a vector.Rasterizer using cubic Bézier curves.
func addCircleToVector(r *vector.Rasterizer, cx, cy, radius float32, clockwise bool) {
	const k = float32(shape.Kappa)
	kr := k * radius

	if clockwise {
		r.MoveTo(cx, cy-radius)
		r.CubeTo(cx-kr, cy-radius, cx-radius, cy-kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy+kr, cx-kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx+kr, cy+radius, cx+radius, cy+kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy-kr, cx+kr, cy-radius, cx, cy-radius)
	} else {
		r.MoveTo(cx, cy-radius)
		r.CubeTo(cx+kr, cy-radius, cx+radius, cy-kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy+kr, cx+kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx-kr, cy+radius, cx-radius, cy+kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy-kr, cx-kr, cy-radius, cx, cy-radius)
	}
	r.ClosePath()
}
