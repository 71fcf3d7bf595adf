// Copyright 2025 The Vgmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const standardTol = float32(1.0e-6)

// tolAssertEqual asserts component-wise equality within tol for any of
// the buffer-backed types.
func tolAssertEqual(t *testing.T, tol float32, want, got []float32) {
	t.Helper()
	if !assert.Equal(t, len(want), len(got)) {
		return
	}
	for i := range want {
		assert.InDelta(t, want[i], got[i], float64(tol))
	}
}

func TestDegRad(t *testing.T) {
	assert.InDelta(t, Pi, DegToRad(180), float64(standardTol))
	assert.InDelta(t, float32(180), RadToDeg(Pi), float64(standardTol))
	assert.InDelta(t, Pi/4, DegToRad(45), float64(standardTol))
}

func TestRoundTo(t *testing.T) {
	assert.Equal(t, float32(1.0), RoundTo(1.004, 2))
	assert.Equal(t, float32(1.01), RoundTo(1.006, 2))
	assert.Equal(t, float32(1.006), RoundTo(1.006, 3))
	assert.Equal(t, float32(-1.01), RoundTo(-1.006, 2))
	assert.Equal(t, float32(120), RoundTo(123.4, -1))
	assert.Equal(t, float32(5), RoundTo(5, 0))
}

func TestClampLerp(t *testing.T) {
	assert.Equal(t, float32(5), Clamp(10, 0, 5))
	assert.Equal(t, float32(0), Clamp(-1, 0, 5))
	assert.Equal(t, float32(3), Clamp(3, 0, 5))

	assert.Equal(t, float32(2.5), Lerp(0, 5, 0.5))
	assert.Equal(t, float32(0), Lerp(0, 5, 0))
	assert.Equal(t, float32(5), Lerp(0, 5, 1))
}

func TestShaderFuncs(t *testing.T) {
	assert.InDelta(t, float32(0.5), InverseSqrt(4), float64(standardTol))
	assert.InDelta(t, float32(0.25), Fract(3.25), float64(standardTol))
	assert.InDelta(t, float32(0.75), Fract(-3.25), float64(standardTol))

	assert.Equal(t, float32(0), Step(2, 1))
	assert.Equal(t, float32(1), Step(2, 2))

	assert.Equal(t, float32(0), SmoothStep(0, 1, -1))
	assert.Equal(t, float32(1), SmoothStep(0, 1, 2))
	assert.InDelta(t, float32(0.5), SmoothStep(0, 1, 0.5), float64(standardTol))
}

func TestDegeneracy(t *testing.T) {
	zero := float32(0)
	assert.True(t, IsNaN(Sqrt(-1)))
	assert.True(t, IsInf(1/zero, 1))
	assert.True(t, IsInf(-1/zero, -1))
	assert.True(t, IsNaN(zero/zero))
}
