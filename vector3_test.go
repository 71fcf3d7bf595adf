// Copyright 2025 The Vgmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgmath

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector3(t *testing.T) {
	assert.Equal(t, Vector3{1, 2, 3}, Vec3(1, 2, 3))
	assert.Equal(t, Vector3{4, 4, 4}, Vector3Scalar(4))
	assert.Equal(t, Vector3{10, 20, 3}, Vector3FromVector2(Vec2(10, 20), 3))
	assert.Equal(t, Vector3{1, 2, 3}, Vector3FromVector4(Vec4(1, 2, 3, 4)))

	v := NewVector3()
	v.Set(5, 6, 7)
	assert.Equal(t, Vector3{5, 6, 7}, v)
	assert.Equal(t, float32(7), v.Z())

	v.SetZero()
	assert.Equal(t, Vector3{0, 0, 0}, v)
}

func TestVector3Geometry(t *testing.T) {
	assert.Equal(t, float32(3), Vec3(1, 1, 1).Dot(Vec3(1, 1, 1)))
	assert.Equal(t, float32(13), Vec3(3, 4, 12).Length())
	assert.Equal(t, float32(169), Vec3(3, 4, 12).LengthSquared())

	// right-handed basis
	assert.Equal(t, Vec3(0, 0, 1), Vec3(1, 0, 0).Cross(Vec3(0, 1, 0)))
	assert.Equal(t, Vec3(1, 0, 0), Vec3(0, 1, 0).Cross(Vec3(0, 0, 1)))
	assert.Equal(t, Vec3(0, 1, 0), Vec3(0, 0, 1).Cross(Vec3(1, 0, 0)))

	tolAssertEqual(t, standardTol, Vec3(1, 0, 0), Vec3(25, 0, 0).Normal())

	n := Vec3(0, 0, 0).Normal()
	assert.True(t, IsNaN(n[0]))

	assert.Equal(t, Vec3(1, 2, 3), Vec3(0, 0, 0).Lerp(Vec3(2, 4, 6), 0.5))
}

func TestVector3Matrix(t *testing.T) {
	m := Mat3(
		2, 0, 0,
		0, 3, 0,
		0, 0, 4,
	)
	v := Vec3(1, 1, 1)

	assert.Equal(t, Vec3(2, 3, 4), v.MulMatrix3(m))
	tolAssertEqual(t, standardTol, v, v.MulMatrix3(m).DivMatrix3(m))

	// rotation about Z by 90 degrees
	r := Identity3()
	r.Rotate(DegToRad(90))
	tolAssertEqual(t, standardTol, Vec3(0, 1, 0), Vec3(1, 0, 0).MulMatrix3(r))
	tolAssertEqual(t, standardTol, Vec3(1, 0, 0), Vec3(0, 1, 0).MulMatrix3Transpose(r))
	tolAssertEqual(t, standardTol, Vec3(1, 0, 0), Vec3(0, 1, 0).DivMatrix3(r))
}

func TestVector3JSON(t *testing.T) {
	b, err := json.Marshal(Vec3(1, 2, 3))
	assert.NoError(t, err)
	assert.Equal(t, "[1,2,3]", string(b))

	var v Vector3
	assert.NoError(t, json.Unmarshal(b, &v))
	assert.Equal(t, Vec3(1, 2, 3), v)

	assert.ErrorIs(t, json.Unmarshal([]byte("[1]"), &v), ErrBadLength)
}
