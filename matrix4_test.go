// Copyright 2025 The Vgmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgmath

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix4(t *testing.T) {
	assert.True(t, Identity4().IsIdentity())
	assert.False(t, NewMatrix4().IsIdentity())

	// dimension widening pads from the identity
	assert.Equal(t, Mat4(
		1, 2, 0, 0,
		3, 4, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	), Matrix4FromMatrix2(Mat2(1, 2, 3, 4)))

	assert.Equal(t, Mat4(
		1, 2, 3, 0,
		4, 5, 6, 0,
		7, 8, 9, 0,
		0, 0, 0, 1,
	), Matrix4FromMatrix3(Mat3(1, 2, 3, 4, 5, 6, 7, 8, 9)))

	m := NewMatrix4()
	m.SetAt(3, 1, 42)
	assert.Equal(t, float32(42), m.At(3, 1))
	assert.Equal(t, float32(42), m[13])
}

func TestMatrix4Determinant(t *testing.T) {
	m := Mat4(
		6, 3, 1, 7,
		20, -3, 5, 8,
		30, 12, -10, 4,
		9, -5, -9, 2,
	)
	assert.InDelta(t, float64(28346), float64(m.Determinant()), 1)

	inv := m.Inverse()
	tolAssertEqual(t, 1e-4, Identity4(), m.Mul(inv))
	tolAssertEqual(t, 1e-4, Identity4(), inv.Mul(m))
}

func TestMatrix4Algebra(t *testing.T) {
	a := Identity4()
	a.Translate(1, 2, 3)
	a.Scale(2, 2, 2)

	b := Identity4()
	b.RotateY(DegToRad(30))

	assert.InDelta(t, float64(a.Determinant()*b.Determinant()),
		float64(a.Mul(b).Determinant()), 1e-3)

	tolAssertEqual(t, 1e-5, a, a.Inverse().Inverse())
	tolAssertEqual(t, 1e-5, a, a.Div(b).Mul(b))

	adj := a.Adjugate()
	tolAssertEqual(t, 1e-5, a.Inverse(), adj.DivScalar(a.Determinant()))

	assert.Equal(t, a, a.Transpose().Transpose())
	c := a.Clone()
	c.SetTranspose()
	assert.Equal(t, a.Transpose(), c)

	d := a.Clone()
	d.SetMul(b)
	assert.Equal(t, a.Mul(b), d)
}

func TestMatrix4Transforms(t *testing.T) {
	vx := Vec3(1, 0, 0)
	vy := Vec3(0, 1, 0)
	vz := Vec3(0, 0, 1)

	m := Identity4()
	m.Translate(1, 2, 3)
	assert.Equal(t, Vec3(1, 2, 3), m.MulVector3AsPoint(Vec3(0, 0, 0)))
	assert.Equal(t, vx, m.MulVector3AsVector(vx))

	m.SetIdentity()
	m.Scale(2, 3, 4)
	assert.Equal(t, Vec3(2, 3, 4), m.MulVector3AsPoint(Vec3(1, 1, 1)))

	rz := Identity4()
	rz.RotateZ(DegToRad(90))
	tolAssertEqual(t, standardTol, vy, rz.MulVector3AsPoint(vx))

	rx := Identity4()
	rx.RotateX(DegToRad(90))
	tolAssertEqual(t, standardTol, vz, rx.MulVector3AsPoint(vy))

	ry := Identity4()
	ry.RotateY(DegToRad(90))
	tolAssertEqual(t, standardTol, vx, ry.MulVector3AsPoint(vz))

	// axis-angle agrees with the fixed-axis forms
	ra := Identity4()
	ra.Rotate(DegToRad(90), vz)
	tolAssertEqual(t, standardTol, rz, ra)
}

func TestMatrix4Singular(t *testing.T) {
	s := NewMatrix4() // all zero
	assert.Equal(t, float32(0), s.Determinant())
	inv := s.Inverse()
	assert.True(t, IsNaN(inv[0]))
}

func TestMatrix4JSON(t *testing.T) {
	m := Identity4()
	m.Translate(1, 2, 3)
	b, err := json.Marshal(m)
	assert.NoError(t, err)

	var got Matrix4
	assert.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, m, got)

	assert.ErrorIs(t, json.Unmarshal([]byte("[1,2,3,4]"), &got), ErrBadLength)
}
