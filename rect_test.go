// Copyright 2025 The Vgmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgmath

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix2x3(t *testing.T) {
	m := Mat2x3(1, 2, 3, 4, 5, 6)
	assert.Equal(t, 2, m.Columns())
	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, float32(5), m.At(1, 1))
	m.SetAt(0, 2, 9)
	assert.Equal(t, float32(9), m[2])

	assert.Equal(t, Mat2x3(1, 2, 0, 3, 4, 0), Matrix2x3FromMatrix2(Mat2(1, 2, 3, 4)))
	assert.Equal(t, Mat2x3(1, 2, 3, 4, 5, 6), Matrix2x3FromMatrix3(Mat3(1, 2, 3, 4, 5, 6, 7, 8, 9)))

	// rectangular transpose swaps shape, and is an involution
	assert.Equal(t, Mat3x2(1, 4, 2, 5, 3, 6), Mat2x3(1, 2, 3, 4, 5, 6).Transpose())
	assert.Equal(t, m, m.Transpose().Transpose())

	assert.Equal(t, Vec3(1*1+2*4, 2*1+2*5, 3+2*6), Mat2x3(1, 2, 3, 4, 5, 6).MulVector2(Vec2(1, 2)))
}

func TestMatrix3x2(t *testing.T) {
	m := Mat3x2(1, 2, 3, 4, 5, 6)
	assert.Equal(t, 3, m.Columns())
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, float32(4), m.At(1, 1))

	assert.Equal(t, Mat3x2(1, 2, 3, 4, 0, 0), Matrix3x2FromMatrix2(Mat2(1, 2, 3, 4)))
	assert.Equal(t, Mat3x2(1, 2, 4, 5, 7, 8), Matrix3x2FromMatrix3(Mat3(1, 2, 3, 4, 5, 6, 7, 8, 9)))

	// shares its layout with AffineTransform
	a := Affine(1, 2, 3, 4, 5, 6)
	assert.Equal(t, Mat3x2(1, 2, 3, 4, 5, 6), Matrix3x2FromAffine(a))
	assert.Equal(t, a, Matrix3x2FromAffine(a).ToAffine())

	assert.Equal(t, Vec2(1+3*2+5*3, 2+4*2+6*3), m.MulVector3(Vec3(1, 2, 3)))
}

func TestRectPadding(t *testing.T) {
	// widening a rectangular matrix back to square pads from the identity
	assert.Equal(t, Mat3(1, 2, 3, 4, 5, 6, 0, 0, 1), Matrix3FromMatrix2x3(Mat2x3(1, 2, 3, 4, 5, 6)))
	assert.Equal(t, Mat3(1, 2, 0, 3, 4, 0, 5, 6, 1), Matrix3FromMatrix3x2(Mat3x2(1, 2, 3, 4, 5, 6)))

	// narrowing from a 4x4 keeps the overlapping block
	m4 := Mat4(
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	)
	assert.Equal(t, Mat2x3(1, 2, 3, 5, 6, 7), Matrix2x3FromMatrix4(m4))
	assert.Equal(t, Mat3x2(1, 2, 5, 6, 9, 10), Matrix3x2FromMatrix4(m4))

	// cross-rectangular conversion pads the non-overlapping row or
	// column from the identity, unlike Transpose which reorders
	assert.Equal(t, Mat2x3(1, 2, 0, 3, 4, 0), Matrix2x3FromMatrix3x2(Mat3x2(1, 2, 3, 4, 5, 6)))
	assert.Equal(t, Mat3x2(1, 2, 4, 5, 0, 0), Matrix3x2FromMatrix2x3(Mat2x3(1, 2, 3, 4, 5, 6)))
	assert.NotEqual(t, Mat2x3(1, 2, 3, 4, 5, 6).Transpose(), Matrix3x2FromMatrix2x3(Mat2x3(1, 2, 3, 4, 5, 6)))
}

func TestRectArithmetic(t *testing.T) {
	a := Mat2x3(1, 2, 3, 4, 5, 6)
	assert.Equal(t, Mat2x3(2, 4, 6, 8, 10, 12), a.Add(a))
	assert.Equal(t, NewMatrix2x3(), a.Sub(a))
	assert.Equal(t, Mat2x3(2, 4, 6, 8, 10, 12), a.MulScalar(2))

	b := a.Clone()
	b.SetMulScalar(3)
	assert.Equal(t, a.MulScalar(3), b)
	assert.Equal(t, a.Negate(), a.MulScalar(-1))
}

func TestRectJSON(t *testing.T) {
	b, err := json.Marshal(Mat3x2(1, 2, 3, 4, 5, 6))
	assert.NoError(t, err)
	assert.Equal(t, "[1,2,3,4,5,6]", string(b))

	var m Matrix3x2
	assert.NoError(t, json.Unmarshal(b, &m))
	assert.Equal(t, Mat3x2(1, 2, 3, 4, 5, 6), m)

	var r Matrix2x3
	assert.ErrorIs(t, json.Unmarshal([]byte("[1,2]"), &r), ErrBadLength)
}
