// Copyright 2025 The Vgmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ebitenx

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/veclab/vgmath"
)

func TestGeoMRoundTrip(t *testing.T) {
	a := vgmath.Translate2D(3, 4).Mul(vgmath.Rotate2D(vgmath.DegToRad(30))).Mul(vgmath.Scale2D(2, 0.5))
	got := FromGeoM(GeoM(a))
	for i := range a {
		assert.InDelta(t, a[i], got[i], 1e-6)
	}
}

func TestGeoMApply(t *testing.T) {
	a := vgmath.Translate2D(1, 2).Mul(vgmath.Scale2D(3, 4))
	g := GeoM(a)

	x, y := g.Apply(5, 6)
	want := a.MulVector2AsPoint(vgmath.Vec2(5, 6))
	assert.InDelta(t, float64(want.X()), x, 1e-5)
	assert.InDelta(t, float64(want.Y()), y, 1e-5)
}

func TestConcat(t *testing.T) {
	first := vgmath.Scale2D(2, 2)
	second := vgmath.Translate2D(1, 1)

	g := GeoM(first)
	Concat(&g, second)

	// Concat applies the given transform after the existing one
	want := second.Mul(first)
	got := FromGeoM(g)
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-6)
	}
}

func TestSetTransform(t *testing.T) {
	a := vgmath.Rotate2D(vgmath.DegToRad(90))
	op := &ebiten.DrawImageOptions{}
	SetTransform(op, a)

	x, y := op.GeoM.Apply(1, 0)
	assert.InDelta(t, 0, x, 1e-6)
	assert.InDelta(t, 1, y, 1e-6)
}
