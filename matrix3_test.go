// Copyright 2025 The Vgmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgmath

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix3(t *testing.T) {
	assert.True(t, Identity3().IsIdentity())
	assert.False(t, NewMatrix3().IsIdentity())

	m := Matrix3FromMatrix2(Mat2(1, 2, 3, 4))
	assert.Equal(t, Mat3(1, 2, 0, 3, 4, 0, 0, 0, 1), m)

	m4 := Identity4()
	m4.Scale(2, 3, 4)
	assert.Equal(t, Mat3(2, 0, 0, 0, 3, 0, 0, 0, 4), Matrix3FromMatrix4(m4))

	assert.Equal(t, float32(4), m.At(1, 1))
	m.SetAt(2, 0, 9)
	assert.Equal(t, float32(9), m[6])
}

func TestMatrix3Transforms(t *testing.T) {
	v0 := Vec2(0, 0)
	vx := Vec2(1, 0)
	vy := Vec2(0, 1)
	vxy := Vec2(1, 1)

	assert.Equal(t, vx, Identity3().MulVector2AsPoint(vx))
	assert.Equal(t, vy, Identity3().MulVector2AsPoint(vy))

	tr := Identity3()
	tr.Translate(1, 1)
	assert.Equal(t, vxy, tr.MulVector2AsPoint(v0))
	// translation does not affect vectors
	assert.Equal(t, vx, tr.MulVector2AsVector(vx))

	sc := Identity3()
	sc.Scale(2, 2)
	assert.Equal(t, vxy.MulScalar(2), sc.MulVector2AsPoint(vxy))

	rot := Identity3()
	rot.Rotate(DegToRad(90))
	tolAssertEqual(t, standardTol, vy, rot.MulVector2AsPoint(vx))
	rot45 := Identity3()
	rot45.Rotate(DegToRad(45))
	tolAssertEqual(t, standardTol, vxy.Normal(), rot45.MulVector2AsPoint(vx))

	// 1,0 -> scale(2) = 2,0 -> rotate 90 = 0,2 -> trans 1,1 -> 1,3
	// multiplication order is *reverse* of "logical" order:
	m := Identity3()
	m.Translate(1, 1)
	m.Rotate(DegToRad(90))
	m.Scale(2, 2)
	tolAssertEqual(t, standardTol, Vec2(1, 3), m.MulVector2AsPoint(vx))
}

func TestMatrix3Algebra(t *testing.T) {
	a := Mat3(2, 0, 1, 0, 3, 0, 1, 0, 4)
	b := Mat3(1, 2, 0, 0, 1, 0, 3, 0, 1)

	assert.InDelta(t, float64(21), float64(a.Determinant()), 1e-5)
	assert.InDelta(t, float64(a.Determinant()*b.Determinant()),
		float64(a.Mul(b).Determinant()), 1e-3)

	inv := a.Inverse()
	tolAssertEqual(t, standardTol, Identity3(), a.Mul(inv))
	tolAssertEqual(t, 1e-5, a, inv.Inverse())

	// adjugate over determinant is the inverse
	adj := a.Adjugate()
	tolAssertEqual(t, standardTol, inv, adj.DivScalar(a.Determinant()))

	tolAssertEqual(t, 1e-5, a, a.Div(b).Mul(b))

	c := a.Clone()
	c.Invert()
	assert.Equal(t, inv, c)

	assert.Equal(t, a, a.Transpose().Transpose())
	ct := a.Clone()
	ct.SetTranspose()
	assert.Equal(t, a.Transpose(), ct)
}

func TestMatrix3Singular(t *testing.T) {
	s := Mat3(1, 2, 3, 2, 4, 6, 0, 0, 1) // first two columns dependent
	assert.Equal(t, float32(0), s.Determinant())
	inv := s.Inverse()
	nan := false
	for i := range inv {
		if IsNaN(inv[i]) || IsInf(inv[i], 0) {
			nan = true
		}
	}
	assert.True(t, nan)
}

func TestMatrix3JSON(t *testing.T) {
	m := Mat3(1, 2, 3, 4, 5, 6, 7, 8, 9)
	b, err := json.Marshal(m)
	assert.NoError(t, err)
	assert.Equal(t, "[1,2,3,4,5,6,7,8,9]", string(b))

	var got Matrix3
	assert.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, m, got)

	assert.ErrorIs(t, json.Unmarshal([]byte("[1,2,3]"), &got), ErrBadLength)
}
