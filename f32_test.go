// Copyright 2025 The Vgmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
)

func TestF32Vectors(t *testing.T) {
	assert.Equal(t, f32.Vec2{1, 2}, Vec2(1, 2).F32())
	assert.Equal(t, Vec2(1, 2), Vector2FromF32(f32.Vec2{1, 2}))

	assert.Equal(t, f32.Vec3{1, 2, 3}, Vec3(1, 2, 3).F32())
	assert.Equal(t, Vec3(1, 2, 3), Vector3FromF32(f32.Vec3{1, 2, 3}))

	assert.Equal(t, f32.Vec4{1, 2, 3, 4}, Vec4(1, 2, 3, 4).F32())
	assert.Equal(t, Vec4(1, 2, 3, 4), Vector4FromF32(f32.Vec4{1, 2, 3, 4}))
}

func TestF32Matrices(t *testing.T) {
	m := Mat3(1, 2, 3, 4, 5, 6, 7, 8, 9)
	f := m.F32()

	// ours is column-major, f32.Mat3 is row-major
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			assert.Equal(t, m.At(x, y), f[3*y+x])
		}
	}
	assert.Equal(t, m, Matrix3FromF32(f))

	m4 := Identity4()
	m4.Translate(1, 2, 3)
	f4 := m4.F32()
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			assert.Equal(t, m4.At(x, y), f4[4*y+x])
		}
	}
	assert.Equal(t, m4, Matrix4FromF32(f4))
}

func TestF32Affine(t *testing.T) {
	a := Affine(1, 2, 3, 4, 5, 6)
	aff := a.Aff3()

	// f64.Aff3 is the row-major top two rows
	assert.Equal(t, f64.Aff3{1, 3, 5, 2, 4, 6}, aff)
	assert.Equal(t, a, AffineFromAff3(aff))
}
