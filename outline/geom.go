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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/coverage/affine"
	"seehuhn.de/go/coverage/geomerr"
)

// FromData converts a [path.Data] to a Path.
//
// As in PDF, a drawing command directly following ClosePath continues
// from the start point of the closed subpath.
func FromData(d *path.Data) (*Path, error) {
	b := NewBuilder()
	coordIdx := 0
	next := func(n int) ([]vec.Vec2, error) {
		if coordIdx+n > len(d.Coords) {
			return nil, geomerr.New("outline.FromData", geomerr.InvalidGeometry,
				"missing coordinates")
		}
		pts := d.Coords[coordIdx : coordIdx+n]
		coordIdx += n
		return pts, nil
	}
	if err := fromCommands(b, func(yield func(path.Command, []vec.Vec2, error) bool) {
		for _, cmd := range d.Cmds {
			var pts []vec.Vec2
			var err error
			switch cmd {
			case path.CmdMoveTo, path.CmdLineTo:
				pts, err = next(1)
			case path.CmdQuadTo:
				pts, err = next(2)
			case path.CmdCubeTo:
				pts, err = next(3)
			}
			if !yield(cmd, pts, err) {
				return
			}
		}
	}); err != nil {
		return nil, err
	}
	return b.Path(), nil
}

// FromPath converts a [path.Path] iterator to a Path.
func FromPath(p path.Path) (*Path, error) {
	b := NewBuilder()
	err := fromCommands(b, func(yield func(path.Command, []vec.Vec2, error) bool) {
		for cmd, pts := range p {
			if !yield(cmd, pts, nil) {
				return
			}
		}
	})
	if err != nil {
		return nil, err
	}
	return b.Path(), nil
}

func fromCommands(b *Builder, cmds func(yield func(path.Command, []vec.Vec2, error) bool)) error {
	var start affine.Point
	var closed bool
	var err error
	cmds(func(cmd path.Command, pts []vec.Vec2, e error) bool {
		if e != nil {
			err = e
			return false
		}
		if closed && cmd != path.CmdMoveTo {
			if err = b.MoveTo(start); err != nil {
				return false
			}
		}
		closed = false

		switch cmd {
		case path.CmdMoveTo:
			start = affine.PointFromVec2(pts[0])
			err = b.MoveTo(start)
		case path.CmdLineTo:
			err = b.LineTo(affine.PointFromVec2(pts[0]))
		case path.CmdQuadTo:
			err = b.QuadTo(affine.PointFromVec2(pts[0]), affine.PointFromVec2(pts[1]))
		case path.CmdCubeTo:
			err = b.CubicTo(affine.PointFromVec2(pts[0]), affine.PointFromVec2(pts[1]),
				affine.PointFromVec2(pts[2]))
		case path.CmdClose:
			err = b.Close()
			closed = true
		default:
			err = geomerr.New("outline.FromData", geomerr.InvalidGeometry,
				"unknown path command %d", cmd)
		}
		return err == nil
	})
	return err
}

// Data converts p to a [path.Data].
func (p *Path) Data() *path.Data {
	d := &path.Data{}
	for s := range p.Segments() {
		switch s.Op {
		case MoveTo:
			d = d.MoveTo(s.Pts[0].Vec2())
		case LineTo:
			d = d.LineTo(s.Pts[0].Vec2())
		case QuadTo:
			d = d.QuadTo(s.Pts[0].Vec2(), s.Pts[1].Vec2())
		case CubicTo:
			d = d.CubeTo(s.Pts[0].Vec2(), s.Pts[1].Vec2(), s.Pts[2].Vec2())
		case Close:
			d = d.Close()
		}
	}
	return d
}
