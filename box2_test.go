// Copyright 2025 The Vgmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgmath

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBox2(t *testing.T) {
	b := B2(0, 0, 2, 2)
	assert.Equal(t, Vec2(1, 1), b.Center())
	assert.Equal(t, Vec2(2, 2), b.Size())
	assert.False(t, b.IsEmpty())
	assert.True(t, B2Empty().IsEmpty())

	assert.True(t, b.ContainsPoint(Vec2(1, 1)))
	assert.True(t, b.ContainsPoint(Vec2(0, 2)))
	assert.False(t, b.ContainsPoint(Vec2(3, 1)))

	assert.True(t, b.ContainsBox(B2(0.5, 0.5, 1.5, 1.5)))
	assert.False(t, b.ContainsBox(B2(1, 1, 3, 3)))
	assert.True(t, b.IntersectsBox(B2(1, 1, 3, 3)))
	assert.False(t, b.IntersectsBox(B2(3, 3, 4, 4)))

	assert.Equal(t, B2(1, 1, 2, 2), b.Intersect(B2(1, 1, 3, 3)))
	assert.Equal(t, B2(0, 0, 3, 3), b.Union(B2(1, 1, 3, 3)))
	assert.Equal(t, B2(1, 1, 3, 3), b.Translate(Vec2(1, 1)))

	assert.Equal(t, Vec2(2, 1), b.ClampPoint(Vec2(5, 1)))
	assert.Equal(t, float32(3), b.DistanceToPoint(Vec2(5, 2)))

	assert.Equal(t, float32(1), b.ProjectX(0.5))
	assert.Equal(t, float32(2), b.ProjectY(1))
}

func TestBox2Expand(t *testing.T) {
	b := B2Empty()
	b.ExpandByPoint(Vec2(1, 2))
	b.ExpandByPoint(Vec2(-1, 0))
	assert.Equal(t, B2(-1, 0, 1, 2), b)

	b.ExpandByScalar(1)
	assert.Equal(t, B2(-2, -1, 2, 3), b)

	b.ExpandByVector(Vec2(1, 0))
	assert.Equal(t, B2(-3, -1, 3, 3), b)

	var pts Box2
	pts.SetFromPoints([]Vector2{Vec2(3, 1), Vec2(0, 5), Vec2(-2, 2)})
	assert.Equal(t, B2(-2, 1, 3, 5), pts)

	assert.Equal(t, B2(0, 0, 1, 1), B2(1, 1, 0, 0).Canon())
}

func TestBox2Rect(t *testing.T) {
	b := B2FromRect(image.Rect(1, 2, 3, 4))
	assert.Equal(t, B2(1, 2, 3, 4), b)
	assert.Equal(t, image.Rect(1, 2, 3, 4), b.ToRect())

	// floor min, ceil max
	assert.Equal(t, image.Rect(0, 0, 2, 2), B2(0.5, 0.9, 1.1, 1.5).ToRect())

	fx := B2(1, 2, 3, 4).ToFixed()
	assert.Equal(t, B2(1, 2, 3, 4), B2FromFixed(fx))
}

func TestBox2Transform(t *testing.T) {
	b := B2(0, 0, 1, 1)

	moved := b.MulAffine(Translate2D(2, 3))
	assert.Equal(t, B2(2, 3, 3, 4), moved)

	// rotated corners re-span the box
	rot := b.MulAffine(Rotate2D(DegToRad(90)))
	tolAssertEqual(t, standardTol, Vec2(-1, 0), rot.Min)
	tolAssertEqual(t, standardTol, Vec2(0, 1), rot.Max)

	m := Identity2()
	m.Scale(2, 3)
	assert.Equal(t, B2(0, 0, 2, 3), b.MulMatrix2(m))
}
