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

// Package scene reads and writes YAML descriptions of fill jobs.
//
// A scene lists shapes in user space, together with the canvas size, the
// user-to-device transformation, the fill rule and the flattening
// tolerance:
//
//	width: 64
//	height: 64
//	fill_rule: evenodd
//	transform: [2, 0, 0, 2, 0, 0]
//	shapes:
//	  - type: circle
//	    center: [16, 16]
//	    radius: 10
//	  - type: path
//	    commands: ["M 4 4", "L 28 4", "Q 28 28 4 28", "Z"]
package scene

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/coverage"
	"seehuhn.de/go/coverage/affine"
	"seehuhn.de/go/coverage/crossing"
	"seehuhn.de/go/coverage/outline"
	"seehuhn.de/go/coverage/shape"
)

// Scene describes a set of shapes to be filled into a coverage buffer.
type Scene struct {
	Width     int               `yaml:"width"`
	Height    int               `yaml:"height"`
	Tolerance float64           `yaml:"tolerance,omitempty"`
	FillRule  coverage.FillRule `yaml:"fill_rule"`
	Transform []float64         `yaml:"transform,omitempty,flow"`
	Shapes    []Item            `yaml:"shapes"`
}

// Point is a point in user space, written as a two-element list.
type Point [2]float64

// IsZero reports whether p is the origin. Zero points are omitted when
// encoding.
func (p Point) IsZero() bool {
	return p == Point{}
}

func (p Point) affine() affine.Point {
	return affine.Point{X: p[0], Y: p[1]}
}

// Item is a single shape in a scene. Type selects which of the other
// fields are used:
//
//   - rectangle: Min, Max
//   - rounded_rectangle: Min, Max, Radius
//   - ellipse: Center, RX, RY
//   - circle: Center, Radius
//   - polygon: Points
//   - triangle: Points, which must have three elements
//   - regular_polygon: Center, Radius, Sides, Rotation (radians)
//   - path: Commands
type Item struct {
	Type     string   `yaml:"type"`
	Min      Point    `yaml:"min,omitempty,flow"`
	Max      Point    `yaml:"max,omitempty,flow"`
	Center   Point    `yaml:"center,omitempty,flow"`
	Radius   float64  `yaml:"radius,omitempty"`
	RX       float64  `yaml:"rx,omitempty"`
	RY       float64  `yaml:"ry,omitempty"`
	Sides    int      `yaml:"sides,omitempty"`
	Rotation float64  `yaml:"rotation,omitempty"`
	Points   []Point  `yaml:"points,omitempty,flow"`
	Commands []string `yaml:"commands,omitempty"`
}

// Load reads a scene from a YAML file.
func Load(fname string) (*Scene, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}
	s, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return s, nil
}

// Decode reads a scene from YAML. Unknown fields are rejected.
func Decode(r io.Reader) (*Scene, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	s := &Scene{}
	if err := dec.Decode(s); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Encode writes the scene as YAML.
func (s *Scene) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("failed to encode scene: %w", err)
	}
	return enc.Close()
}

// Validate checks the scene-level settings. Shape geometry is checked
// when the shapes are converted to paths.
func (s *Scene) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("invalid canvas size %dx%d", s.Width, s.Height)
	}
	if s.Tolerance < 0 || math.IsNaN(s.Tolerance) || math.IsInf(s.Tolerance, 0) {
		return fmt.Errorf("invalid tolerance %g", s.Tolerance)
	}
	if n := len(s.Transform); n != 0 && n != 6 {
		return fmt.Errorf("transform needs 6 numbers, got %d", n)
	}
	if _, err := s.FillRule.MarshalText(); err != nil {
		return err
	}
	return nil
}

// Matrix returns the user-to-device transformation of the scene.
// An empty transform means the identity.
func (s *Scene) Matrix() (affine.Matrix, error) {
	if len(s.Transform) == 0 {
		return affine.Identity, nil
	}
	if len(s.Transform) != 6 {
		return affine.Matrix{}, fmt.Errorf("transform needs 6 numbers, got %d", len(s.Transform))
	}
	t := s.Transform
	return affine.NewMatrix(t[0], t[1], t[2], t[3], t[4], t[5])
}

// Tol returns the flattening tolerance, falling back to
// [coverage.DefaultTolerance] when none is set.
func (s *Scene) Tol() float64 {
	if s.Tolerance == 0 {
		return coverage.DefaultTolerance
	}
	return s.Tolerance
}

// Paths converts all shapes of the scene to outline paths.
func (s *Scene) Paths() ([]*outline.Path, error) {
	paths := make([]*outline.Path, 0, len(s.Shapes))
	for i := range s.Shapes {
		item := &s.Shapes[i]
		sh, err := item.Shape()
		if err != nil {
			return nil, fmt.Errorf("shape %d (%s): %w", i, item.Type, err)
		}
		p, err := sh.Path()
		if err != nil {
			return nil, fmt.Errorf("shape %d (%s): %w", i, item.Type, err)
		}
		paths = append(paths, p)
	}
	return paths, nil
}

// Crossings returns, for each shape, the points in user space where its
// outline crosses itself.
func (s *Scene) Crossings() ([][]affine.Point, error) {
	paths, err := s.Paths()
	if err != nil {
		return nil, err
	}
	res := make([][]affine.Point, len(paths))
	for i, p := range paths {
		res[i], err = crossing.Path(p, s.Tol())
		if err != nil {
			return nil, fmt.Errorf("shape %d (%s): %w", i, s.Shapes[i].Type, err)
		}
	}
	return res, nil
}

// Render fills the scene into a new buffer. If r is nil, a default
// rasterizer is used.
func (s *Scene) Render(r *coverage.Rasterizer) (*coverage.Buffer, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	m, err := s.Matrix()
	if err != nil {
		return nil, err
	}
	paths, err := s.Paths()
	if err != nil {
		return nil, err
	}
	if r == nil {
		r = coverage.NewRasterizer()
	}
	buf := coverage.NewBuffer(s.Width, s.Height)
	if err := r.Rasterize(paths, m, s.FillRule, s.Tol(), buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// Shape converts the item to a shape.
func (it *Item) Shape() (shape.Shape, error) {
	switch it.Type {
	case "rectangle":
		return shape.Rectangle{Rect: affine.NewRect(it.Min.affine(), it.Max.affine())}, nil
	case "rounded_rectangle":
		return shape.RoundedRectangle{
			Rect:   affine.NewRect(it.Min.affine(), it.Max.affine()),
			Radius: it.Radius,
		}, nil
	case "ellipse":
		return shape.Ellipse{Center: it.Center.affine(), RX: it.RX, RY: it.RY}, nil
	case "circle":
		return shape.Circle(it.Center.affine(), it.Radius), nil
	case "polygon":
		pts := make([]affine.Point, len(it.Points))
		for i, p := range it.Points {
			pts[i] = p.affine()
		}
		return shape.Polygon{Points: pts}, nil
	case "triangle":
		if len(it.Points) != 3 {
			return nil, fmt.Errorf("triangle needs 3 points, got %d", len(it.Points))
		}
		return shape.Triangle{
			A: it.Points[0].affine(),
			B: it.Points[1].affine(),
			C: it.Points[2].affine(),
		}, nil
	case "regular_polygon":
		return shape.RegularPolygon{
			Center:   it.Center.affine(),
			Radius:   it.Radius,
			Sides:    it.Sides,
			Rotation: it.Rotation,
		}, nil
	case "path":
		p, err := ParseCommands(it.Commands)
		if err != nil {
			return nil, err
		}
		return shape.PathShape{Outline: p}, nil
	default:
		return nil, fmt.Errorf("unknown shape type %q", it.Type)
	}
}

// PathItem returns a scene item which describes the given path.
func PathItem(p *outline.Path) Item {
	return Item{Type: "path", Commands: FormatCommands(p)}
}
