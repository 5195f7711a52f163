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

// Package geomerr defines the error kinds reported by the geometry and
// rasterization packages.
//
// Every error returned by this module is an [*Error] carrying one of the
// [Kind] values. Callers test for a kind with [errors.Is] and one of the
// sentinel values:
//
//	if errors.Is(err, geomerr.ErrDegenerateMatrix) {
//		...
//	}
package geomerr

import (
	"errors"
	"fmt"
)

// Kind identifies the category of an error.
type Kind int

const (
	// KindUnknown is never produced by this module.
	KindUnknown Kind = iota

	// PathNotStarted means a drawing command was issued without an open
	// subpath.
	PathNotStarted

	// InvalidGeometry means a coordinate, coefficient or tolerance was NaN,
	// infinite or otherwise outside its valid range.
	InvalidGeometry

	// DegenerateMatrix means a transform that must be invertible is not.
	DegenerateMatrix

	// BufferSizeMismatch means a coverage buffer does not match its declared
	// dimensions.
	BufferSizeMismatch

	// UnsupportedFillRule means a fill rule outside the defined set was used.
	UnsupportedFillRule
)

func (k Kind) String() string {
	switch k {
	case PathNotStarted:
		return "path not started"
	case InvalidGeometry:
		return "invalid geometry"
	case DegenerateMatrix:
		return "degenerate matrix"
	case BufferSizeMismatch:
		return "buffer size mismatch"
	case UnsupportedFillRule:
		return "unsupported fill rule"
	default:
		return "unknown"
	}
}

// Error is a structured error from one of the geometry packages.
type Error struct {
	// Op is the operation that failed (e.g. "outline.LineTo").
	Op string

	// Kind categorizes the error.
	Kind Kind

	// Err is the underlying error, if any.
	Err error
}

// New returns an error of the given kind for operation op.
// The message is formatted with [fmt.Sprintf].
func New(op string, kind Kind, format string, args ...any) *Error {
	return &Error{
		Op:   op,
		Kind: kind,
		Err:  fmt.Errorf(format, args...),
	}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind. This makes the
// sentinel values below usable with [errors.Is].
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinel values for use with [errors.Is].
var (
	ErrPathNotStarted      = &Error{Op: "geomerr", Kind: PathNotStarted}
	ErrInvalidGeometry     = &Error{Op: "geomerr", Kind: InvalidGeometry}
	ErrDegenerateMatrix    = &Error{Op: "geomerr", Kind: DegenerateMatrix}
	ErrBufferSizeMismatch  = &Error{Op: "geomerr", Kind: BufferSizeMismatch}
	ErrUnsupportedFillRule = &Error{Op: "geomerr", Kind: UnsupportedFillRule}
)

// KindOf returns the kind of err, or KindUnknown if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
