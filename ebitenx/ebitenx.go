// Copyright 2025 The Vgmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ebitenx bridges [vgmath.AffineTransform] and the Ebitengine
// geometry matrix. [ebiten.GeoM] is row-major with float64 elements;
// both sides describe the same 2D affine map, so the conversions only
// reorder and convert components.
package ebitenx

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/veclab/vgmath"
)

// GeoM returns the [ebiten.GeoM] equivalent of the given transform.
func GeoM(a vgmath.AffineTransform) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, float64(a[0]))
	g.SetElement(0, 1, float64(a[2]))
	g.SetElement(0, 2, float64(a[4]))
	g.SetElement(1, 0, float64(a[1]))
	g.SetElement(1, 1, float64(a[3]))
	g.SetElement(1, 2, float64(a[5]))
	return g
}

// FromGeoM returns a new [vgmath.AffineTransform] equivalent to the
// given geometry matrix.
func FromGeoM(g ebiten.GeoM) vgmath.AffineTransform {
	return vgmath.Affine(
		float32(g.Element(0, 0)),
		float32(g.Element(1, 0)),
		float32(g.Element(0, 1)),
		float32(g.Element(1, 1)),
		float32(g.Element(0, 2)),
		float32(g.Element(1, 2)),
	)
}

// Concat concatenates the given transform onto g, so that the transform
// applies after g's current map.
func Concat(g *ebiten.GeoM, a vgmath.AffineTransform) {
	g.Concat(GeoM(a))
}

// SetTransform replaces the geometry matrix of the given draw options
// with the given transform.
func SetTransform(op *ebiten.DrawImageOptions, a vgmath.AffineTransform) {
	op.GeoM = GeoM(a)
}
