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
	"image"

	"seehuhn.de/go/coverage/geomerr"
)

// Buffer holds one coverage value per pixel, in row-major order.
// Values range from 0 (pixel outside the fill) to 1 (pixel fully covered).
//
// The pixel (x, y) covers the square [x, x+1) × [y, y+1) in device space.
type Buffer struct {
	Width, Height int
	Pix           []float32
}

// NewBuffer allocates a zeroed buffer of the given size.
func NewBuffer(width, height int) *Buffer {
	return &Buffer{
		Width:  width,
		Height: height,
		Pix:    make([]float32, width*height),
	}
}

// check verifies that the declared size of b matches its pixel slice.
func (b *Buffer) check(op string) error {
	if b == nil {
		return geomerr.New(op, geomerr.BufferSizeMismatch, "nil buffer")
	}
	if b.Width <= 0 || b.Height <= 0 {
		return geomerr.New(op, geomerr.BufferSizeMismatch,
			"invalid size %dx%d", b.Width, b.Height)
	}
	if len(b.Pix) != b.Width*b.Height {
		return geomerr.New(op, geomerr.BufferSizeMismatch,
			"%dx%d buffer has %d pixels", b.Width, b.Height, len(b.Pix))
	}
	return nil
}

// Bounds returns the pixel rectangle covered by b.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

// At returns the coverage of pixel (x, y), or 0 outside the buffer.
func (b *Buffer) At(x, y int) float32 {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return 0
	}
	return b.Pix[y*b.Width+x]
}

// Clear sets all coverage values to 0.
func (b *Buffer) Clear() {
	clear(b.Pix)
}

// Alpha converts the coverage values to an alpha mask.
func (b *Buffer) Alpha() *image.Alpha {
	img := image.NewAlpha(b.Bounds())
	for i, v := range b.Pix {
		img.Pix[i] = toByte(v)
	}
	return img
}

// Gray converts the coverage values to a grayscale image with black
// shapes on a white background.
func (b *Buffer) Gray() *image.Gray {
	img := image.NewGray(b.Bounds())
	for i, v := range b.Pix {
		img.Pix[i] = 255 - toByte(v)
	}
	return img
}

func toByte(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}
