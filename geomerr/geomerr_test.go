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

package geomerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMatchesKind(t *testing.T) {
	err := New("outline.LineTo", PathNotStarted, "no current point")

	assert.True(t, errors.Is(err, ErrPathNotStarted))
	assert.False(t, errors.Is(err, ErrInvalidGeometry))

	wrapped := fmt.Errorf("loading scene: %w", err)
	assert.True(t, errors.Is(wrapped, ErrPathNotStarted))
	assert.Equal(t, PathNotStarted, KindOf(wrapped))
}

func TestKindOfForeignError(t *testing.T) {
	assert.Equal(t, KindUnknown, KindOf(errors.New("boom")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestErrorMessage(t *testing.T) {
	err := New("affine.Matrix.Invert", DegenerateMatrix, "determinant %g", 0.0)
	assert.Equal(t, "affine.Matrix.Invert [degenerate matrix]: determinant 0", err.Error())

	assert.Equal(t, "geomerr: buffer size mismatch", ErrBufferSizeMismatch.Error())
}
