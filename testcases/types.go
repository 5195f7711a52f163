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

// Package testcases holds the fixture paths used to test and benchmark
// the rasterizer, and to generate reference images.
package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/coverage"
	"seehuhn.de/go/coverage/affine"
	"seehuhn.de/go/coverage/outline"
	"seehuhn.de/go/coverage/shape"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name   string            // lowercase a-z, 0-9 and _ only
	Path   *path.Data        // the geometry to fill
	Width  int               // canvas width in pixels
	Height int               // canvas height in pixels
	Rule   coverage.FillRule // fill rule
	CTM    matrix.Matrix     // transformation matrix (zero-value means no transform)
}

// Outline converts the fixture geometry to an outline path.
func (tc *TestCase) Outline() (*outline.Path, error) {
	return outline.FromData(tc.Path)
}

// Matrix returns the user-to-device transformation of the test case.
func (tc *TestCase) Matrix() affine.Matrix {
	if tc.CTM == (matrix.Matrix{}) {
		return affine.Identity
	}
	return affine.FromGeom(tc.CTM)
}

// Render fills the test case into a freshly allocated buffer.
func (tc *TestCase) Render(r *coverage.Rasterizer) (*coverage.Buffer, error) {
	p, err := tc.Outline()
	if err != nil {
		return nil, err
	}
	buf := coverage.NewBuffer(tc.Width, tc.Height)
	err = r.Rasterize([]*outline.Path{p}, tc.Matrix(), tc.Rule, coverage.DefaultTolerance, buf)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func at(x, y float64) affine.Point {
	return affine.Point{X: x, Y: y}
}

// fromShape returns the outline of s. It panics if s is invalid, since
// fixtures are fixed at compile time.
func fromShape(s shape.Shape) *path.Data {
	p, err := s.Path()
	if err != nil {
		panic(err)
	}
	return p.Data()
}

// polygon builds a closed polygon through the given points.
func polygon(pts ...vec.Vec2) *path.Data {
	p := (&path.Data{}).MoveTo(pts[0])
	for _, q := range pts[1:] {
		p = p.LineTo(q)
	}
	return p.Close()
}

// join concatenates the commands of several paths.
func join(parts ...*path.Data) *path.Data {
	res := &path.Data{}
	for _, p := range parts {
		res.Cmds = append(res.Cmds, p.Cmds...)
		res.Coords = append(res.Coords, p.Coords...)
	}
	return res
}
