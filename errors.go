// Copyright 2025 The Vgmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgmath

import "errors"

var (
	// ErrOutOfBounds is returned by View constructors when the requested
	// region does not fit inside the supplied buffer.
	ErrOutOfBounds = errors.New("vgmath: buffer region out of bounds")

	// ErrBadLength is returned when a slice or JSON array does not hold
	// exactly the number of components the target type requires.
	ErrBadLength = errors.New("vgmath: wrong number of components")

	// ErrNotAffine is returned when a general matrix cannot be reduced to
	// an affine transform because its implicit-row constraint does not hold.
	ErrNotAffine = errors.New("vgmath: matrix is not an affine 2D transform")

	// ErrNot2D is returned by 2D-only conversions given a source that uses
	// the third dimension.
	ErrNot2D = errors.New("vgmath: source transform is not 2D")

	// ErrBadTransformString is returned by SetTransformString for input
	// that is not a recognized transform function list.
	ErrBadTransformString = errors.New("vgmath: invalid transform string")
)
