// Copyright 2025 The Vgmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewAliasing(t *testing.T) {
	buf := make([]float32, 8)

	v, err := Vector2View(buf, 2)
	assert.NoError(t, err)
	v.Set(3, 4)
	assert.Equal(t, []float32{0, 0, 3, 4, 0, 0, 0, 0}, buf)

	// writes through the buffer are visible through the view
	buf[2] = 7
	assert.Equal(t, float32(7), v.X())

	// overlapping views alias the same storage
	w, err := Vector2View(buf, 3)
	assert.NoError(t, err)
	assert.Equal(t, float32(4), w.X())
	w.SetX(9)
	assert.Equal(t, float32(9), v.Y())
}

func TestViewBounds(t *testing.T) {
	buf := make([]float32, 8)

	_, err := Vector2View(buf, 7)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = Vector2View(buf, -1)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = Matrix4View(buf, 0)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	m, err := Matrix2View(buf, 4)
	assert.NoError(t, err)
	m.SetIdentity()
	assert.Equal(t, []float32{0, 0, 0, 0, 1, 0, 0, 1}, buf)

	// a view never grows past its region
	assert.Equal(t, 4, cap(m))
}

func TestViewVersusCopy(t *testing.T) {
	buf := []float32{1, 2, 3, 4}

	v, err := Vector2FromSlice(buf, 1)
	assert.NoError(t, err)
	v.SetX(50)
	assert.Equal(t, float32(2), buf[1]) // copy, not a view

	_, err = Vector2FromSlice(buf, 3)
	assert.ErrorIs(t, err, ErrBadLength)
}

func TestString(t *testing.T) {
	assert.Equal(t, "[ 1, 2.5 ]", Vec2(1, 2.5).String())
	assert.Equal(t, "[ 1, 0, 0, 1 ]", Identity2().String())
	assert.Equal(t, "[ 0.33333, 0, 0, 0 ]", Mat2(1.0/3.0, 0, 0, 0).String())
}

func TestStringRounded(t *testing.T) {
	third := float32(1.0 / 3.0)
	assert.Equal(t, "[ 0.33, 0 ]", Vec2(third, 0).StringRounded(2))
	assert.Equal(t, "[ 0.3, 0 ]", Vec2(third, 0).StringRounded(1))
	assert.Equal(t, "[ 1.5, 0, 0, 1.5 ]", Mat2(1.46, 0, 0, 1.54).StringRounded(1))
	assert.Equal(t, "[ 1, 2, 3, 4, 5, 6 ]", Affine(1.0001, 2, 3, 4, 5, 6).StringRounded(3))
}
