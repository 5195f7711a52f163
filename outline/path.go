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

// Package outline implements paths made of lines and Bézier curves.
//
// A [Path] stores its segments exactly as they were given to the
// [Builder]. Curves are only approximated by polylines when the path is
// read with [Path.Subpaths], using the tolerance given there. This allows
// the same path to be used at different resolutions.
package outline

import (
	"fmt"
	"iter"

	"seehuhn.de/go/coverage/affine"
	"seehuhn.de/go/coverage/bezier"
	"seehuhn.de/go/coverage/geomerr"
)

// Op identifies the kind of a path segment.
type Op uint8

// These are the path segment kinds.
const (
	MoveTo Op = iota
	LineTo
	QuadTo
	CubicTo
	Close
)

func (op Op) String() string {
	switch op {
	case MoveTo:
		return "MoveTo"
	case LineTo:
		return "LineTo"
	case QuadTo:
		return "QuadTo"
	case CubicTo:
		return "CubicTo"
	case Close:
		return "Close"
	default:
		return fmt.Sprintf("Op(%d)", uint8(op))
	}
}

// NumPoints returns the number of points used by segments of this kind.
func (op Op) NumPoints() int {
	switch op {
	case MoveTo, LineTo:
		return 1
	case QuadTo:
		return 2
	case CubicTo:
		return 3
	default:
		return 0
	}
}

// Segment is a single path command. Only the first Op.NumPoints()
// entries of Pts are used; the last of these is the end point.
type Segment struct {
	Op  Op
	Pts [3]affine.Point
}

// Points returns the points used by the segment.
func (s Segment) Points() []affine.Point {
	return s.Pts[:s.Op.NumPoints()]
}

// Path is an immutable sequence of segments.
// Every subpath starts with a MoveTo segment.
type Path struct {
	segs []Segment
}

// Len returns the number of segments.
func (p *Path) Len() int {
	if p == nil {
		return 0
	}
	return len(p.segs)
}

// IsEmpty reports whether the path has no segments.
func (p *Path) IsEmpty() bool {
	return p.Len() == 0
}

// Segments iterates over the segments of the path.
func (p *Path) Segments() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		if p == nil {
			return
		}
		for _, s := range p.segs {
			if !yield(s) {
				return
			}
		}
	}
}

// Validate checks that all coordinates are finite.
func (p *Path) Validate() error {
	for i := range p.Len() {
		s := &p.segs[i]
		for _, pt := range s.Pts[:s.Op.NumPoints()] {
			if !pt.IsFinite() {
				return geomerr.New("outline.Path.Validate", geomerr.InvalidGeometry,
					"segment %d (%s): non-finite point (%g, %g)", i, s.Op, pt.X, pt.Y)
			}
		}
	}
	return nil
}

// Transform returns a new path with m applied to all points.
// Since Bézier curves are invariant under affine maps, this transforms the
// curves exactly.
func (p *Path) Transform(m affine.Matrix) *Path {
	res := &Path{segs: make([]Segment, p.Len())}
	for i := range res.segs {
		s := p.segs[i]
		for j := range s.Op.NumPoints() {
			s.Pts[j] = m.Apply(s.Pts[j])
		}
		res.segs[i] = s
	}
	return res
}

// Subpath is a flattened subpath.
type Subpath struct {
	// Points are the vertices of the polyline, starting with the point
	// given to MoveTo.
	Points []affine.Point

	// Closed indicates that the subpath has an implicit line from the last
	// point back to the first.
	Closed bool
}

// Edges iterates over the line segments of the subpath, including the
// closing line of a closed subpath.
func (sp Subpath) Edges() iter.Seq[affine.Segment] {
	return affine.Polyline(sp.Points, sp.Closed)
}

// Subpaths returns the subpaths of p, with curves replaced by polylines
// which deviate from the curves by at most tol.
//
// The sequence is computed lazily, one subpath at a time. It can be
// iterated multiple times, and each iteration produces the same result.
// The Points slices are not reused between subpaths.
func (p *Path) Subpaths(tol float64) (iter.Seq[Subpath], error) {
	if err := bezier.CheckTolerance("outline.Path.Subpaths", tol); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return func(yield func(Subpath) bool) {
		var pts []affine.Point
		for s := range p.Segments() {
			switch s.Op {
			case MoveTo:
				if len(pts) > 0 && !yield(Subpath{Points: pts}) {
					return
				}
				pts = []affine.Point{s.Pts[0]}
			case LineTo:
				pts = append(pts, s.Pts[0])
			case QuadTo:
				q := bezier.Quadratic{P0: pts[len(pts)-1], P1: s.Pts[0], P2: s.Pts[1]}
				pts, _ = q.AppendFlatten(pts, tol)
			case CubicTo:
				c := bezier.Cubic{P0: pts[len(pts)-1], P1: s.Pts[0], P2: s.Pts[1], P3: s.Pts[2]}
				pts, _ = c.AppendFlatten(pts, tol)
			case Close:
				if !yield(Subpath{Points: pts, Closed: true}) {
					return
				}
				pts = nil
			}
		}
		if len(pts) > 0 {
			yield(Subpath{Points: pts})
		}
	}, nil
}

// ControlBounds returns the bounding box of all points of the path,
// including curve control points. The second return value is false for
// an empty path.
func (p *Path) ControlBounds() (affine.Rect, bool) {
	var r affine.Rect
	first := true
	for s := range p.Segments() {
		for _, pt := range s.Points() {
			if first {
				r = affine.NewRect(pt, pt)
				first = false
			} else {
				r = r.Extend(pt)
			}
		}
	}
	return r, !first
}

// Bounds returns the tight bounding box of the path. The second return
// value is false for an empty path.
func (p *Path) Bounds() (affine.Rect, bool) {
	var r affine.Rect
	var current affine.Point
	first := true
	extend := func(b affine.Rect) {
		if first {
			r = b
			first = false
		} else {
			r = r.Union(b)
		}
	}
	for s := range p.Segments() {
		switch s.Op {
		case MoveTo, LineTo:
			extend(affine.NewRect(s.Pts[0], s.Pts[0]))
			current = s.Pts[0]
		case QuadTo:
			extend(bezier.Quadratic{P0: current, P1: s.Pts[0], P2: s.Pts[1]}.Bounds())
			current = s.Pts[1]
		case CubicTo:
			extend(bezier.Cubic{P0: current, P1: s.Pts[0], P2: s.Pts[1], P3: s.Pts[2]}.Bounds())
			current = s.Pts[2]
		}
	}
	return r, !first
}

// Length returns the total arc length of the path, including the closing
// lines of closed subpaths. Curve lengths are accurate to roughly the
// given accuracy.
func (p *Path) Length(accuracy float64) float64 {
	var total float64
	var start, current affine.Point
	for s := range p.Segments() {
		switch s.Op {
		case MoveTo:
			start = s.Pts[0]
			current = start
		case LineTo:
			total += current.Distance(s.Pts[0])
			current = s.Pts[0]
		case QuadTo:
			total += bezier.Quadratic{P0: current, P1: s.Pts[0], P2: s.Pts[1]}.Length(accuracy)
			current = s.Pts[1]
		case CubicTo:
			total += bezier.Cubic{P0: current, P1: s.Pts[0], P2: s.Pts[1], P3: s.Pts[2]}.Length(accuracy)
			current = s.Pts[2]
		case Close:
			total += current.Distance(start)
			current = start
		}
	}
	return total
}
