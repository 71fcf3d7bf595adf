// Copyright 2025 The Vgmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgmath

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAffine(t *testing.T) {
	v0 := Vec2(0, 0)
	vx := Vec2(1, 0)
	vy := Vec2(0, 1)
	vxy := Vec2(1, 1)

	assert.True(t, AffineIdentity().IsIdentity())
	assert.Equal(t, vx, AffineIdentity().MulVector2AsPoint(vx))

	assert.Equal(t, vxy, Translate2D(1, 1).MulVector2AsPoint(v0))
	assert.Equal(t, vxy.MulScalar(2), Scale2D(2, 2).MulVector2AsPoint(vxy))

	tolAssertEqual(t, standardTol, vy, Rotate2D(DegToRad(90)).MulVector2AsPoint(vx))
	tolAssertEqual(t, standardTol, vx, Rotate2D(DegToRad(-90)).MulVector2AsPoint(vy))
	tolAssertEqual(t, standardTol, vxy.Normal(), Rotate2D(DegToRad(45)).MulVector2AsPoint(vx))

	tolAssertEqual(t, standardTol, vy, Rotate2D(DegToRad(-90)).Inverse().MulVector2AsPoint(vx))

	tolAssertEqual(t, standardTol, vxy, Rotate2D(DegToRad(-45)).Mul(Rotate2D(DegToRad(45))).MulVector2AsPoint(vxy))

	// 1,0 -> scale(2) = 2,0 -> rotate 90 = 0,2 -> trans 1,1 -> 1,3
	// multiplication order is *reverse* of "logical" order:
	tolAssertEqual(t, standardTol, Vec2(1, 3),
		Translate2D(1, 1).Mul(Rotate2D(DegToRad(90))).Mul(Scale2D(2, 2)).MulVector2AsPoint(vx))

	// translation is ignored for vectors
	assert.Equal(t, vx, Translate2D(5, 5).MulVector2AsVector(vx))
}

func TestAffineAccessors(t *testing.T) {
	a := Affine(1, 2, 3, 4, 5, 6)
	assert.Equal(t, float32(1), a.A())
	assert.Equal(t, float32(2), a.B())
	assert.Equal(t, float32(3), a.C())
	assert.Equal(t, float32(4), a.D())
	assert.Equal(t, float32(5), a.E())
	assert.Equal(t, float32(6), a.F())

	a.SetE(50)
	assert.Equal(t, float32(50), a[4])
}

func TestAffineDeterminantInverse(t *testing.T) {
	assert.Equal(t, float32(-2), Affine(5, 6, 7, 8, 9, 10).Determinant())

	a := Translate2D(3, 4).Mul(Rotate2D(DegToRad(30))).Mul(Scale2D(2, 0.5))
	inv := a.Inverse()
	tolAssertEqual(t, standardTol, AffineIdentity(), a.Mul(inv))
	tolAssertEqual(t, 1e-5, a, inv.Inverse())
	tolAssertEqual(t, 1e-5, a, a.Div(inv.Inverse()).Mul(a))

	// singular transform propagates NaN/Inf
	s := Affine(1, 2, 2, 4, 0, 0)
	sInv := s.Inverse()
	bad := false
	for i := range sInv {
		if IsNaN(sInv[i]) || IsInf(sInv[i], 0) {
			bad = true
		}
	}
	assert.True(t, bad)
}

func TestAffineInPlaceTransforms(t *testing.T) {
	a := AffineIdentity()
	a.Translate(1, 1)
	a.Rotate(DegToRad(90))
	a.Scale(2, 2)
	want := Translate2D(1, 1).Mul(Rotate2D(DegToRad(90))).Mul(Scale2D(2, 2))
	tolAssertEqual(t, standardTol, want, a)

	sh := AffineIdentity()
	sh.Shear(1, 0)
	assert.Equal(t, Shear2D(1, 0), sh)
	assert.Equal(t, Vec2(2, 1), sh.MulVector2AsPoint(Vec2(1, 1)))
}

func TestAffineSetMulAliasing(t *testing.T) {
	// squaring in place must read both operands before writing
	a := Affine(1, 2, 3, 4, 5, 6)
	want := a.Mul(a)
	a.SetMul(a)
	assert.Equal(t, want, a)

	// the same holds for two views over the same buffer region
	buf := []float32{1, 2, 3, 4, 5, 6}
	v1, err := AffineView(buf, 0)
	assert.NoError(t, err)
	v2, err := AffineView(buf, 0)
	assert.NoError(t, err)
	v1.SetMul(v2)
	assert.Equal(t, want, v1)
}

func TestAffineExtract(t *testing.T) {
	a := Translate2D(7, 8).Mul(Rotate2D(DegToRad(45))).Mul(Scale2D(2, 3))
	assert.InDelta(t, DegToRad(45), a.ExtractRotation(), float64(standardTol))
	tolAssertEqual(t, standardTol, Vec2(2, 3), a.ExtractScale())
	tolAssertEqual(t, standardTol, Vec2(7, 8), a.ExtractTranslation())
}

func TestAffineMatrixConversions(t *testing.T) {
	a := Affine(1, 2, 3, 4, 5, 6)

	m3 := a.ToMatrix3()
	assert.Equal(t, Mat3(1, 2, 0, 3, 4, 0, 5, 6, 1), m3)
	back, err := AffineFromMatrix3(m3)
	assert.NoError(t, err)
	assert.Equal(t, a, back)

	_, err = AffineFromMatrix3(Mat3(1, 2, 0.5, 3, 4, 0, 5, 6, 1))
	assert.ErrorIs(t, err, ErrNotAffine)

	m4 := a.ToMatrix4()
	back4, err := AffineFromMatrix4(m4)
	assert.NoError(t, err)
	assert.Equal(t, a, back4)

	z := Identity4()
	z.Translate(0, 0, 5)
	_, err = AffineFromMatrix4(z)
	assert.ErrorIs(t, err, ErrNot2D)

	rx := Identity4()
	rx.RotateX(DegToRad(30))
	_, err = AffineFromMatrix4(rx)
	assert.ErrorIs(t, err, ErrNot2D)

	// transforming through the widened matrix matches the affine map
	p := Vec2(3, -2)
	tolAssertEqual(t, standardTol, a.MulVector2AsPoint(p), m3.MulVector2AsPoint(p))
}

func TestAffineTransformString(t *testing.T) {
	tests := []struct {
		str     string
		wantErr bool
		want    AffineTransform
	}{
		{str: "none", want: AffineIdentity()},
		{str: "matrix(1, 2, 3, 4, 5, 6)", want: Affine(1, 2, 3, 4, 5, 6)},
		{str: "translate(1, 2)", want: Translate2D(1, 2)},
		{str: "translateX(3)", want: Translate2D(3, 0)},
		{str: "scale(2)", want: Scale2D(2, 2)},
		{str: "scaleY(4)", want: Scale2D(1, 4)},
		{str: "translate(1, 1) scale(2, 2)", want: Translate2D(1, 1).Mul(Scale2D(2, 2))},
		{str: "invalid(1, 2)", wantErr: true, want: AffineIdentity()},
		{str: "scale(1, 2, 3)", wantErr: true, want: AffineIdentity()},
		{str: "rotate(bad)", wantErr: true, want: AffineIdentity()},
	}

	for _, tt := range tests {
		a := AffineIdentity()
		err := a.SetTransformString(tt.str)
		if tt.wantErr {
			assert.Error(t, err, tt.str)
			assert.ErrorIs(t, err, ErrBadTransformString, tt.str)
		} else {
			assert.NoError(t, err, tt.str)
			assert.Equal(t, tt.want, a, tt.str)
		}
	}

	r := AffineIdentity()
	assert.NoError(t, r.SetTransformString("rotate(90)"))
	tolAssertEqual(t, standardTol, Rotate2D(DegToRad(90)), r)
}

func TestAffineTransformStringRender(t *testing.T) {
	tests := []struct {
		a    AffineTransform
		want string
	}{
		{AffineIdentity(), "none"},
		{Affine(1, 2, 3, 4, 5, 6), "matrix(1,2,3,4,5,6)"},
		{Scale2D(2, 2), "scale(2,2)"},
		{Translate2D(1, 2), "translate(1,2)"},
		{Translate2D(1, 2).Mul(Scale2D(2, 2)), "translate(1,2) scale(2,2)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.a.TransformString())
	}
}

func TestAffineJSON(t *testing.T) {
	a := Affine(1, 2, 3, 4, 5, 6)
	b, err := json.Marshal(a)
	assert.NoError(t, err)
	assert.Equal(t, "[1,2,3,4,5,6]", string(b))

	var got AffineTransform
	assert.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, a, got)

	assert.ErrorIs(t, json.Unmarshal([]byte("[1,2,3,4]"), &got), ErrBadLength)
}
