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

package scene

import (
	"fmt"
	"strconv"
	"strings"

	"seehuhn.de/go/coverage/affine"
	"seehuhn.de/go/coverage/outline"
)

var commandOps = map[string]outline.Op{
	"M": outline.MoveTo,
	"L": outline.LineTo,
	"Q": outline.QuadTo,
	"C": outline.CubicTo,
	"Z": outline.Close,
}

var opNames = map[outline.Op]string{
	outline.MoveTo:  "M",
	outline.LineTo:  "L",
	outline.QuadTo:  "Q",
	outline.CubicTo: "C",
	outline.Close:   "Z",
}

// ParseCommands builds a path from a list of commands like "M 1 2",
// "L 3 4", "Q x1 y1 x y", "C x1 y1 x2 y2 x y" and "Z".
// Numbers may be separated by spaces or commas.
func ParseCommands(cmds []string) (*outline.Path, error) {
	b := outline.NewBuilder()
	for i, cmd := range cmds {
		fields := strings.FieldsFunc(cmd, func(r rune) bool {
			return r == ' ' || r == ',' || r == '\t'
		})
		if len(fields) == 0 {
			return nil, fmt.Errorf("command %d: empty", i)
		}
		op, ok := commandOps[fields[0]]
		if !ok {
			return nil, fmt.Errorf("command %d: unknown operator %q", i, fields[0])
		}
		args := fields[1:]
		if len(args) != 2*op.NumPoints() {
			return nil, fmt.Errorf("command %d: %s needs %d numbers, got %d",
				i, fields[0], 2*op.NumPoints(), len(args))
		}

		var pts [3]affine.Point
		for j := range op.NumPoints() {
			x, err := strconv.ParseFloat(args[2*j], 64)
			if err != nil {
				return nil, fmt.Errorf("command %d: %w", i, err)
			}
			y, err := strconv.ParseFloat(args[2*j+1], 64)
			if err != nil {
				return nil, fmt.Errorf("command %d: %w", i, err)
			}
			pts[j] = affine.Point{X: x, Y: y}
		}

		var err error
		switch op {
		case outline.MoveTo:
			err = b.MoveTo(pts[0])
		case outline.LineTo:
			err = b.LineTo(pts[0])
		case outline.QuadTo:
			err = b.QuadTo(pts[0], pts[1])
		case outline.CubicTo:
			err = b.CubicTo(pts[0], pts[1], pts[2])
		case outline.Close:
			err = b.Close()
		}
		if err != nil {
			return nil, fmt.Errorf("command %d: %w", i, err)
		}
	}
	return b.Path(), nil
}

// FormatCommands is the inverse of [ParseCommands].
func FormatCommands(p *outline.Path) []string {
	var res []string
	var sb strings.Builder
	for seg := range p.Segments() {
		sb.Reset()
		sb.WriteString(opNames[seg.Op])
		for _, q := range seg.Points() {
			sb.WriteByte(' ')
			sb.WriteString(strconv.FormatFloat(q.X, 'g', -1, 64))
			sb.WriteByte(' ')
			sb.WriteString(strconv.FormatFloat(q.Y, 'g', -1, 64))
		}
		res = append(res, sb.String())
	}
	return res
}
