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

package outline

import (
	"slices"

	"seehuhn.de/go/coverage/affine"
	"seehuhn.de/go/coverage/geomerr"
)

// Builder accumulates path segments.
//
// Every drawing command requires an open subpath, started by MoveTo.
// Close ends the current subpath; afterwards a new MoveTo is needed
// before the next drawing command. Points must have finite coordinates.
// A failed call leaves the Builder unchanged.
//
// The zero value is an empty Builder ready to use.
type Builder struct {
	segs []Segment
	open bool
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// MoveTo starts a new subpath at p.
func (b *Builder) MoveTo(p affine.Point) error {
	if err := checkFinite("outline.Builder.MoveTo", p); err != nil {
		return err
	}
	b.segs = append(b.segs, Segment{Op: MoveTo, Pts: [3]affine.Point{p}})
	b.open = true
	return nil
}

// LineTo appends a straight line to p.
func (b *Builder) LineTo(p affine.Point) error {
	if err := b.check("outline.Builder.LineTo", p); err != nil {
		return err
	}
	b.segs = append(b.segs, Segment{Op: LineTo, Pts: [3]affine.Point{p}})
	return nil
}

// QuadTo appends a quadratic Bézier curve with control point c, ending at p.
func (b *Builder) QuadTo(c, p affine.Point) error {
	if err := b.check("outline.Builder.QuadTo", c, p); err != nil {
		return err
	}
	b.segs = append(b.segs, Segment{Op: QuadTo, Pts: [3]affine.Point{c, p}})
	return nil
}

// CubicTo appends a cubic Bézier curve with control points c1 and c2,
// ending at p.
func (b *Builder) CubicTo(c1, c2, p affine.Point) error {
	if err := b.check("outline.Builder.CubicTo", c1, c2, p); err != nil {
		return err
	}
	b.segs = append(b.segs, Segment{Op: CubicTo, Pts: [3]affine.Point{c1, c2, p}})
	return nil
}

// Close closes the current subpath with a straight line back to its
// start point.
func (b *Builder) Close() error {
	if err := b.check("outline.Builder.Close"); err != nil {
		return err
	}
	b.segs = append(b.segs, Segment{Op: Close})
	b.open = false
	return nil
}

// check verifies that a subpath is open and that all points are finite.
func (b *Builder) check(op string, pts ...affine.Point) error {
	if !b.open {
		return geomerr.New(op, geomerr.PathNotStarted, "no current subpath")
	}
	return checkFinite(op, pts...)
}

func checkFinite(op string, pts ...affine.Point) error {
	for _, p := range pts {
		if !p.IsFinite() {
			return geomerr.New(op, geomerr.InvalidGeometry,
				"non-finite point (%g, %g)", p.X, p.Y)
		}
	}
	return nil
}

// Path returns the path built so far. The Builder can be used further;
// later changes do not affect the returned Path.
func (b *Builder) Path() *Path {
	return &Path{segs: slices.Clone(b.segs)}
}

// Reset discards all segments.
func (b *Builder) Reset() {
	b.segs = b.segs[:0]
	b.open = false
}
