// Copyright 2025 The Vgmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgmath

import (
	"encoding/json"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/fixed"
)

func TestVector2(t *testing.T) {
	assert.Equal(t, Vector2{5, 10}, Vec2(5, 10))
	assert.Equal(t, Vector2{20, 20}, Vector2Scalar(20))
	assert.Equal(t, Vector2{15, -5}, Vector2FromPoint(image.Pt(15, -5)))
	assert.Equal(t, Vector2{8, 3}, Vector2FromFixed(fixed.P(8, 3)))
	assert.Equal(t, Vector2{1, 2}, Vector2FromVector3(Vec3(1, 2, 3)))

	v := NewVector2()
	v.Set(-1, 7)
	assert.Equal(t, Vector2{-1, 7}, v)

	v.SetScalar(8.12)
	assert.Equal(t, Vector2{8.12, 8.12}, v)

	v.SetFromVector3(Vec3(8, 9, 10))
	assert.Equal(t, Vector2{8, 9}, v)

	assert.Equal(t, float32(8), v.At(0))
	v.SetAt(1, 4)
	assert.Equal(t, float32(4), v.Y())

	assert.Equal(t, image.Pt(8, 4), v.ToPoint())
	assert.Equal(t, fixed.P(8, 4), v.ToFixed())
}

func TestVector2Arithmetic(t *testing.T) {
	v := Vec2(3, 4)

	assert.Equal(t, Vec2(5, 7), v.Add(Vec2(2, 3)))
	assert.Equal(t, Vec2(1, 1), v.Sub(Vec2(2, 3)))
	assert.Equal(t, Vec2(6, 12), v.Mul(Vec2(2, 3)))
	assert.Equal(t, Vec2(1.5, 2), v.Div(Vec2(2, 2)))
	assert.Equal(t, Vec2(6, 8), v.MulScalar(2))
	assert.Equal(t, Vec2(-3, -4), v.Negate())

	// in-place twins mutate the receiver
	w := v.Clone()
	w.SetAdd(Vec2(1, 1))
	assert.Equal(t, Vec2(4, 5), w)
	w.SetSubScalar(1)
	assert.Equal(t, Vec2(3, 4), w)

	// the value-returning form leaves the receiver untouched
	assert.Equal(t, Vec2(3, 4), v)
}

func TestVector2Geometry(t *testing.T) {
	v := Vec2(3, 4)

	assert.Equal(t, float32(25), v.LengthSquared())
	assert.Equal(t, float32(5), v.Length())
	assert.Equal(t, float32(11), v.Dot(Vec2(1, 2)))
	assert.Equal(t, float32(2), Vec2(1, 0).Cross(Vec2(0, 2)))

	tolAssertEqual(t, standardTol, Vec2(0.6, 0.8), v.Normal())
	assert.Equal(t, float32(5), Vec2(3, 0).DistanceTo(Vec2(0, 4)))
	assert.Equal(t, float32(25), Vec2(3, 0).DistanceToSquared(Vec2(0, 4)))

	tolAssertEqual(t, standardTol, Vec2(0, 1), Vec2(1, 0).Rotate(DegToRad(90)))
	assert.InDelta(t, DegToRad(90), Vec2(1, 0).Angle(Vec2(0, 1)), float64(standardTol))

	assert.Equal(t, Vec2(2.5, 5), Vec2(0, 0).Lerp(Vec2(5, 10), 0.5))

	// reflection off a vertical mirror
	tolAssertEqual(t, standardTol, Vec2(-1, 1), Vec2(1, 1).Reflect(Vec2(1, 0)))
}

func TestVector2Degeneracy(t *testing.T) {
	n := Vec2(0, 0).Normal()
	assert.True(t, IsNaN(n[0]))
	assert.True(t, IsNaN(n[1]))

	d := Vec2(1, 2).DivScalar(0)
	assert.True(t, IsInf(d[0], 1))
	assert.True(t, IsInf(d[1], 1))

	// negative discriminant yields the zero vector
	assert.Equal(t, Vec2(0, 0), Vec2(-9, -10).Refract(Vec2(-0.784046, 0.620703), -18))
}

func TestVector2Matrix(t *testing.T) {
	m := Mat2(2, 0, 0, 4)
	v := Vec2(3, 5)

	assert.Equal(t, Vec2(6, 20), v.MulMatrix2(m))
	tolAssertEqual(t, standardTol, v, v.MulMatrix2(m).DivMatrix2(m))

	r := Rotate2D(DegToRad(90))
	rm := Mat2(r[0], r[1], r[2], r[3])
	tolAssertEqual(t, standardTol, Vec2(0, 1), Vec2(1, 0).MulMatrix2(rm))
	tolAssertEqual(t, standardTol, Vec2(1, 0), Vec2(0, 1).MulMatrix2(rm.Transpose()))
	tolAssertEqual(t, standardTol, Vec2(1, 0), Vec2(0, 1).MulMatrix2Transpose(rm))
}

func TestVector2Rounded(t *testing.T) {
	assert.True(t, Vec2(1.004, 2).EqualsRounded(Vec2(1.006, 2), 2))
	assert.False(t, Vec2(1.004, 2).EqualsRounded(Vec2(1.006, 2), 3))
	assert.True(t, Vec2(1, 2).Equals(Vec2(1, 2)))
	assert.False(t, Vec2(1, 2).Equals(Vec2(1, 2.1)))

	assert.Equal(t, Vec2(1.01, 2), Vec2(1.006, 2).Rounded(2))
}

func TestVector2JSON(t *testing.T) {
	b, err := json.Marshal(Vec2(1, 2.5))
	assert.NoError(t, err)
	assert.Equal(t, "[1,2.5]", string(b))

	var v Vector2
	assert.NoError(t, json.Unmarshal([]byte("[3,4]"), &v))
	assert.Equal(t, Vec2(3, 4), v)

	assert.ErrorIs(t, json.Unmarshal([]byte("[1,2,3]"), &v), ErrBadLength)
	assert.Error(t, json.Unmarshal([]byte(`"nope"`), &v))
}
