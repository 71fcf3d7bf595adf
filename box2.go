// Copyright 2025 The Vgmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgmath

import (
	"image"

	"golang.org/x/image/math/fixed"
)

// Box2 represents a 2D bounding box defined by two points:
// the point with minimum coordinates and the point with maximum coordinates.
type Box2 struct {
	Min Vector2
	Max Vector2
}

// B2 returns a new [Box2] from the given minimum and maximum x and y coordinates.
func B2(x0, y0, x1, y1 float32) Box2 {
	return Box2{Vec2(x0, y0), Vec2(x1, y1)}
}

// B2Empty returns a new [Box2] with empty minimum and maximum values.
func B2Empty() Box2 {
	return Box2{Vector2Scalar(Infinity), Vector2Scalar(-Infinity)}
}

// B2FromRect returns a new [Box2] from the given [image.Rectangle].
func B2FromRect(rect image.Rectangle) Box2 {
	return Box2{Vector2FromPoint(rect.Min), Vector2FromPoint(rect.Max)}
}

// B2FromFixed returns a new [Box2] from the given [fixed.Rectangle26_6].
func B2FromFixed(rect fixed.Rectangle26_6) Box2 {
	return Box2{Vector2FromFixed(rect.Min), Vector2FromFixed(rect.Max)}
}

// SetEmpty sets this bounding box to empty (min / max +/- Infinity).
func (b *Box2) SetEmpty() {
	b.Min = Vector2Scalar(Infinity)
	b.Max = Vector2Scalar(-Infinity)
}

// IsEmpty returns if this bounding box is empty (max < min on any coord).
func (b Box2) IsEmpty() bool {
	return b.Max[0] < b.Min[0] || b.Max[1] < b.Min[1]
}

// SetFromPoints sets this bounding box from the specified array of points.
func (b *Box2) SetFromPoints(points []Vector2) {
	b.SetEmpty()
	for _, p := range points {
		b.ExpandByPoint(p)
	}
}

// SetFromRect sets this bounding box from an [image.Rectangle].
func (b *Box2) SetFromRect(rect image.Rectangle) {
	b.Min = Vector2FromPoint(rect.Min)
	b.Max = Vector2FromPoint(rect.Max)
}

// SetFromCenterAndSize sets this bounding box from a center point and size.
// Size is a vector from the minimum point to the maximum point.
func (b *Box2) SetFromCenterAndSize(center, size Vector2) {
	halfSize := size.MulScalar(0.5)
	b.Min = center.Sub(halfSize)
	b.Max = center.Add(halfSize)
}

// ToRect returns the [image.Rectangle] version of this box, using floor
// for min and ceil for max.
func (b Box2) ToRect() image.Rectangle {
	return image.Rectangle{Min: b.Min.ToPointFloor(), Max: b.Max.ToPointCeil()}
}

// ToFixed returns the [fixed.Rectangle26_6] version of this box.
func (b Box2) ToFixed() fixed.Rectangle26_6 {
	return fixed.Rectangle26_6{Min: b.Min.ToFixed(), Max: b.Max.ToFixed()}
}

// Canon returns the canonical version of the box, with minimum and
// maximum coordinates swapped if necessary so that it is well-formed.
func (b Box2) Canon() Box2 {
	n := Box2{b.Min.Clone(), b.Max.Clone()}
	if n.Max[0] < n.Min[0] {
		n.Min[0], n.Max[0] = n.Max[0], n.Min[0]
	}
	if n.Max[1] < n.Min[1] {
		n.Min[1], n.Max[1] = n.Max[1], n.Min[1]
	}
	return n
}

// ExpandByPoint may expand this bounding box to include the specified point.
func (b *Box2) ExpandByPoint(point Vector2) {
	b.Min.SetMin(point)
	b.Max.SetMax(point)
}

// ExpandByVector expands this bounding box by the specified vector.
func (b *Box2) ExpandByVector(vector Vector2) {
	b.Min.SetSub(vector)
	b.Max.SetAdd(vector)
}

// ExpandByScalar expands this bounding box by the specified scalar.
func (b *Box2) ExpandByScalar(scalar float32) {
	b.Min.SetSubScalar(scalar)
	b.Max.SetAddScalar(scalar)
}

// ExpandByBox may expand this bounding box to include the specified box.
func (b *Box2) ExpandByBox(box Box2) {
	b.ExpandByPoint(box.Min)
	b.ExpandByPoint(box.Max)
}

// Center calculates the center point of this bounding box.
func (b Box2) Center() Vector2 {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// Size calculates the size of this bounding box: the vector from
// its minimum point to its maximum point.
func (b Box2) Size() Vector2 {
	return b.Max.Sub(b.Min)
}

// ContainsPoint returns if this bounding box contains the specified point.
func (b Box2) ContainsPoint(point Vector2) bool {
	if point[0] < b.Min[0] || point[0] > b.Max[0] ||
		point[1] < b.Min[1] || point[1] > b.Max[1] {
		return false
	}
	return true
}

// ContainsBox returns if this bounding box contains other box.
func (b Box2) ContainsBox(box Box2) bool {
	return b.Min[0] <= box.Min[0] && box.Max[0] <= b.Max[0] &&
		b.Min[1] <= box.Min[1] && box.Max[1] <= b.Max[1]
}

// IntersectsBox returns if other box intersects this one.
func (b Box2) IntersectsBox(other Box2) bool {
	if other.Max[0] < b.Min[0] || other.Min[0] > b.Max[0] ||
		other.Max[1] < b.Min[1] || other.Min[1] > b.Max[1] {
		return false
	}
	return true
}

// ClampPoint calculates a new point which is the specified point clamped
// inside this box.
func (b Box2) ClampPoint(point Vector2) Vector2 {
	return point.Clamp(b.Min, b.Max)
}

// DistanceToPoint returns the distance from this box to the specified point.
func (b Box2) DistanceToPoint(point Vector2) float32 {
	return b.ClampPoint(point).Sub(point).Length()
}

// Intersect returns the intersection with other box.
func (b Box2) Intersect(other Box2) Box2 {
	return Box2{other.Min.Max(b.Min), other.Max.Min(b.Max)}
}

// Union returns the union with other box.
func (b Box2) Union(other Box2) Box2 {
	return Box2{other.Min.Min(b.Min), other.Max.Max(b.Max)}
}

// Translate returns the translated position of this box by offset.
func (b Box2) Translate(offset Vector2) Box2 {
	return Box2{b.Min.Add(offset), b.Max.Add(offset)}
}

// MulMatrix2 multiplies the specified matrix with the vertices of this
// bounding box and computes the resulting spanning Box2 of the
// transformed points.
func (b Box2) MulMatrix2(m Matrix2) Box2 {
	cs := [4]Vector2{
		m.MulVector2(Vec2(b.Min[0], b.Min[1])),
		m.MulVector2(Vec2(b.Min[0], b.Max[1])),
		m.MulVector2(Vec2(b.Max[0], b.Min[1])),
		m.MulVector2(Vec2(b.Max[0], b.Max[1])),
	}
	nb := B2Empty()
	for _, c := range cs {
		nb.ExpandByPoint(c)
	}
	return nb
}

// MulAffine transforms the four corners of this bounding box by the
// given affine transform and computes the resulting spanning Box2.
func (b Box2) MulAffine(a AffineTransform) Box2 {
	cs := [4]Vector2{
		a.MulVector2AsPoint(Vec2(b.Min[0], b.Min[1])),
		a.MulVector2AsPoint(Vec2(b.Min[0], b.Max[1])),
		a.MulVector2AsPoint(Vec2(b.Max[0], b.Min[1])),
		a.MulVector2AsPoint(Vec2(b.Max[0], b.Max[1])),
	}
	nb := B2Empty()
	for _, c := range cs {
		nb.ExpandByPoint(c)
	}
	return nb
}

// ProjectX projects a normalized value along the X dimension of this box.
func (b Box2) ProjectX(v float32) float32 {
	return b.Min[0] + v*(b.Max[0]-b.Min[0])
}

// ProjectY projects a normalized value along the Y dimension of this box.
func (b Box2) ProjectY(v float32) float32 {
	return b.Min[1] + v*(b.Max[1]-b.Min[1])
}
