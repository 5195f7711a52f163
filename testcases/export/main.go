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

// Command export writes every test case as a YAML scene, so that the
// fixtures can be rendered with covrender or by other tools.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/coverage/affine"
	"seehuhn.de/go/coverage/scene"
	"seehuhn.de/go/coverage/testcases"
)

const sceneDir = "testdata/scenes"

func main() {
	if err := os.MkdirAll(sceneDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := export(&tc, filepath.Join(sceneDir, name+".yaml")); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func export(tc *testcases.TestCase, fname string) error {
	p, err := tc.Outline()
	if err != nil {
		return err
	}

	s := &scene.Scene{
		Width:    tc.Width,
		Height:   tc.Height,
		FillRule: tc.Rule,
		Shapes:   []scene.Item{scene.PathItem(p)},
	}
	if m := tc.Matrix(); m != affine.Identity {
		s.Transform = m[:]
	}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := s.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
