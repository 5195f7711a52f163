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
	"fmt"
	"strings"

	"seehuhn.de/go/coverage/geomerr"
)

// FillRule decides which points are inside a path, based on the winding
// number of the path around the point.
type FillRule int

const (
	// NonZero treats points with non-zero winding number as inside.
	NonZero FillRule = iota

	// EvenOdd treats points with odd winding number as inside.
	EvenOdd
)

func (r FillRule) String() string {
	switch r {
	case NonZero:
		return "nonzero"
	case EvenOdd:
		return "evenodd"
	default:
		return fmt.Sprintf("FillRule(%d)", int(r))
	}
}

func (r FillRule) check(op string) error {
	if r != NonZero && r != EvenOdd {
		return geomerr.New(op, geomerr.UnsupportedFillRule, "%s", r)
	}
	return nil
}

// ParseFillRule converts a name like "nonzero" or "even-odd" to a FillRule.
func ParseFillRule(s string) (FillRule, error) {
	switch strings.ToLower(strings.ReplaceAll(strings.ReplaceAll(s, "-", ""), "_", "")) {
	case "nonzero", "winding":
		return NonZero, nil
	case "evenodd":
		return EvenOdd, nil
	}
	return 0, geomerr.New("coverage.ParseFillRule", geomerr.UnsupportedFillRule,
		"unknown fill rule %q", s)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (r FillRule) MarshalText() ([]byte, error) {
	if err := r.check("coverage.FillRule.MarshalText"); err != nil {
		return nil, err
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (r *FillRule) UnmarshalText(text []byte) error {
	rule, err := ParseFillRule(string(text))
	if err != nil {
		return err
	}
	*r = rule
	return nil
}
