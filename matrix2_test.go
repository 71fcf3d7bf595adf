// Copyright 2025 The Vgmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgmath

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix2(t *testing.T) {
	assert.True(t, Identity2().IsIdentity())
	assert.False(t, Mat2(1, 0, 0, 2).IsIdentity())

	m := NewMatrix2()
	assert.Equal(t, Matrix2{0, 0, 0, 0}, m)
	m.SetIdentity()
	assert.Equal(t, Identity2(), m)

	m.SetAt(1, 0, 5)
	assert.Equal(t, float32(5), m.At(1, 0))
	assert.Equal(t, float32(5), m[2]) // column-major: y + x*rows

	assert.Equal(t, Matrix2{1, 2, 3, 4}, Matrix2FromMatrix3(Mat3(1, 2, 0, 3, 4, 0, 0, 0, 1)))
}

func TestMatrix2Algebra(t *testing.T) {
	a := Mat2(1, 2, 3, 4)
	b := Mat2(5, 6, 7, 8)

	// column-major product checked by hand
	assert.Equal(t, Mat2(23, 34, 31, 46), a.Mul(b))

	assert.Equal(t, float32(-2), a.Determinant())
	assert.Equal(t, Mat2(4, -2, -3, 1), a.Adjugate())

	inv := a.Inverse()
	tolAssertEqual(t, standardTol, Identity2(), a.Mul(inv))
	tolAssertEqual(t, standardTol, a, inv.Inverse())

	// det(A·B) = det(A)·det(B)
	assert.InDelta(t, float64(a.Determinant()*b.Determinant()),
		float64(a.Mul(b).Determinant()), 1e-4)

	// A.Div(B).Mul(B) = A
	tolAssertEqual(t, 1e-5, a, a.Div(b).Mul(b))

	// receiver may alias the product operands
	c := a.Clone()
	c.SetMul(b)
	assert.Equal(t, a.Mul(b), c)
}

func TestMatrix2Transforms(t *testing.T) {
	m := Identity2()
	m.Rotate(DegToRad(90))
	tolAssertEqual(t, standardTol, Vec2(0, 1), m.MulVector2(Vec2(1, 0)))

	m.SetIdentity()
	m.Scale(2, 3)
	assert.Equal(t, Vec2(2, 3), m.MulVector2(Vec2(1, 1)))

	assert.Equal(t, Mat2(1, 3, 2, 4), Mat2(1, 2, 3, 4).Transpose())
	assert.Equal(t, Mat2(1, 2, 3, 4), Mat2(1, 2, 3, 4).Transpose().Transpose())
}

func TestMatrix2Singular(t *testing.T) {
	s := Mat2(1, 2, 2, 4) // det 0
	inv := s.Inverse()
	for i := range inv {
		assert.True(t, IsNaN(inv[i]) || IsInf(inv[i], 0), "component %d", i)
	}
}

func TestMatrix2JSON(t *testing.T) {
	b, err := json.Marshal(Mat2(1, 2, 3, 4))
	assert.NoError(t, err)
	assert.Equal(t, "[1,2,3,4]", string(b))

	var m Matrix2
	assert.NoError(t, json.Unmarshal(b, &m))
	assert.Equal(t, Mat2(1, 2, 3, 4), m)

	assert.ErrorIs(t, json.Unmarshal([]byte("[1,2]"), &m), ErrBadLength)
}
