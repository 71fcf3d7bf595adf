// Copyright 2025 The Vgmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgmath

import (
	"image"

	"golang.org/x/image/math/fixed"
)

// Vector2 is a 2D vector/point with X and Y components, backed by a
// contiguous float32 buffer of length 2. The value either owns its buffer
// exclusively (New/Vec2 constructors) or aliases a region of a
// caller-supplied buffer ([Vector2View]).
type Vector2 []float32

// Vector2Size is the number of components in a [Vector2].
const Vector2Size = 2

// NewVector2 returns a new zero [Vector2] with an exclusively owned buffer.
func NewVector2() Vector2 {
	return make(Vector2, Vector2Size)
}

// Vec2 returns a new [Vector2] with the given x and y components.
func Vec2(x, y float32) Vector2 {
	return Vector2{x, y}
}

// Vector2Scalar returns a new [Vector2] with all components set to the
// given scalar value.
func Vector2Scalar(scalar float32) Vector2 {
	return Vector2{scalar, scalar}
}

// Vector2View returns a [Vector2] aliasing the two floats of buf starting
// at offset. Mutations through the view are observable through buf and any
// other view of the same region. Returns [ErrOutOfBounds] if the region
// does not fit in buf.
func Vector2View(buf []float32, offset int) (Vector2, error) {
	s, err := view(buf, offset, Vector2Size)
	if err != nil {
		return nil, err
	}
	return Vector2(s), nil
}

// Vector2FromSlice returns a new [Vector2] copying two components from
// vals starting at offset.
func Vector2FromSlice(vals []float32, offset int) (Vector2, error) {
	if err := sliceCheck(vals, offset, Vector2Size); err != nil {
		return nil, err
	}
	return Vector2{vals[offset], vals[offset+1]}, nil
}

// Vector2FromVector3 returns a new [Vector2] from the X and Y components
// of the given [Vector3].
func Vector2FromVector3(o Vector3) Vector2 {
	return Vector2{o[0], o[1]}
}

// Vector2FromPoint returns a new [Vector2] from the given [image.Point].
func Vector2FromPoint(p image.Point) Vector2 {
	return Vector2{float32(p.X), float32(p.Y)}
}

// Vector2FromFixed returns a new [Vector2] from the given [fixed.Point26_6].
func Vector2FromFixed(p fixed.Point26_6) Vector2 {
	return Vector2{float32(p.X) / 64, float32(p.Y) / 64}
}

// X returns the first component.
func (v Vector2) X() float32 { return v[0] }

// Y returns the second component.
func (v Vector2) Y() float32 { return v[1] }

// SetX sets the first component.
func (v Vector2) SetX(x float32) { v[0] = x }

// SetY sets the second component.
func (v Vector2) SetY(y float32) { v[1] = y }

// At returns the component at index i.
func (v Vector2) At(i int) float32 { return v[i] }

// SetAt sets the component at index i.
func (v Vector2) SetAt(i int, value float32) { v[i] = value }

// Set sets the X and Y components.
func (v Vector2) Set(x, y float32) {
	v[0] = x
	v[1] = y
}

// SetScalar sets all components to the same scalar value.
func (v Vector2) SetScalar(scalar float32) {
	v[0] = scalar
	v[1] = scalar
}

// SetZero sets all components to zero.
func (v Vector2) SetZero() {
	v[0] = 0
	v[1] = 0
}

// SetFromVector2 copies the components of other into this vector.
func (v Vector2) SetFromVector2(other Vector2) {
	v[0] = other[0]
	v[1] = other[1]
}

// SetFromVector3 sets this vector from the X and Y components of a [Vector3].
func (v Vector2) SetFromVector3(other Vector3) {
	v[0] = other[0]
	v[1] = other[1]
}

// Clone returns a copy of this vector with a freshly owned buffer.
func (v Vector2) Clone() Vector2 {
	return Vector2{v[0], v[1]}
}

// FromSlice sets this vector's components from the given slice, starting at offset.
func (v Vector2) FromSlice(vals []float32, offset int) error {
	if err := sliceCheck(vals, offset, Vector2Size); err != nil {
		return err
	}
	v[0] = vals[offset]
	v[1] = vals[offset+1]
	return nil
}

// ToSlice copies this vector's components to the given slice, starting at offset.
func (v Vector2) ToSlice(vals []float32, offset int) {
	vals[offset] = v[0]
	vals[offset+1] = v[1]
}

// ToPoint returns an [image.Point] version of this vector, using Round.
func (v Vector2) ToPoint() image.Point {
	return image.Pt(int(Round(v[0])), int(Round(v[1])))
}

// ToPointFloor returns an [image.Point] version of this vector, using Floor.
func (v Vector2) ToPointFloor() image.Point {
	return image.Pt(int(Floor(v[0])), int(Floor(v[1])))
}

// ToPointCeil returns an [image.Point] version of this vector, using Ceil.
func (v Vector2) ToPointCeil() image.Point {
	return image.Pt(int(Ceil(v[0])), int(Ceil(v[1])))
}

// ToFixed returns a [fixed.Point26_6] version of this vector.
func (v Vector2) ToFixed() fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(v[0] * 64), Y: fixed.Int26_6(v[1] * 64)}
}

func (v Vector2) String() string {
	return formatComponents(v, DefaultFractionDigits)
}

// StringRounded is like String with the given number of fraction digits.
func (v Vector2) StringRounded(digits int) string {
	return formatComponents(v, digits)
}

// Basic math operations:

// Add adds the other given vector to this one and returns the result as a new vector.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{v[0] + other[0], v[1] + other[1]}
}

// AddScalar adds scalar s to each component of this vector and returns a new vector.
func (v Vector2) AddScalar(s float32) Vector2 {
	return Vector2{v[0] + s, v[1] + s}
}

// SetAdd sets this to addition with the other vector (i.e., += or plus-equals).
func (v Vector2) SetAdd(other Vector2) {
	v[0] += other[0]
	v[1] += other[1]
}

// SetAddScalar sets this to addition with scalar.
func (v Vector2) SetAddScalar(s float32) {
	v[0] += s
	v[1] += s
}

// Sub subtracts the other vector from this one and returns the result in a new vector.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{v[0] - other[0], v[1] - other[1]}
}

// SubScalar subtracts scalar s from each component of this vector and returns a new vector.
func (v Vector2) SubScalar(s float32) Vector2 {
	return Vector2{v[0] - s, v[1] - s}
}

// SetSub sets this to subtraction with the other vector (i.e., -= or minus-equals).
func (v Vector2) SetSub(other Vector2) {
	v[0] -= other[0]
	v[1] -= other[1]
}

// SetSubScalar sets this to subtraction of scalar.
func (v Vector2) SetSubScalar(s float32) {
	v[0] -= s
	v[1] -= s
}

// Mul multiplies each component of this vector by the corresponding one
// from other and returns the resulting vector.
func (v Vector2) Mul(other Vector2) Vector2 {
	return Vector2{v[0] * other[0], v[1] * other[1]}
}

// MulScalar multiplies each component of this vector by the scalar s and
// returns the resulting vector.
func (v Vector2) MulScalar(s float32) Vector2 {
	return Vector2{v[0] * s, v[1] * s}
}

// SetMul sets this to component-wise multiplication with the other vector.
func (v Vector2) SetMul(other Vector2) {
	v[0] *= other[0]
	v[1] *= other[1]
}

// SetMulScalar sets this to multiplication by scalar.
func (v Vector2) SetMulScalar(s float32) {
	v[0] *= s
	v[1] *= s
}

// Div divides each component of this vector by the corresponding one from
// the other vector and returns the resulting vector.
func (v Vector2) Div(other Vector2) Vector2 {
	return Vector2{v[0] / other[0], v[1] / other[1]}
}

// DivScalar divides each component of this vector by the scalar s and
// returns the resulting vector. Division by zero produces Inf/NaN
// components, which propagate to the caller.
func (v Vector2) DivScalar(s float32) Vector2 {
	return Vector2{v[0] / s, v[1] / s}
}

// SetDiv sets this to component-wise division by the other vector.
func (v Vector2) SetDiv(other Vector2) {
	v[0] /= other[0]
	v[1] /= other[1]
}

// SetDivScalar sets this to division by scalar.
func (v Vector2) SetDivScalar(s float32) {
	v[0] /= s
	v[1] /= s
}

// Negate returns the vector with each component negated.
func (v Vector2) Negate() Vector2 {
	return Vector2{-v[0], -v[1]}
}

// SetNegate negates each component of this vector in place.
func (v Vector2) SetNegate() {
	v[0] = -v[0]
	v[1] = -v[1]
}

// Distance, Normal:

// Dot returns the dot product of this vector with the given other vector.
func (v Vector2) Dot(other Vector2) float32 {
	return v[0]*other[0] + v[1]*other[1]
}

// Cross returns the 2D cross product (the Z component of the 3D cross
// product with Z=0).
func (v Vector2) Cross(other Vector2) float32 {
	return v[0]*other[1] - v[1]*other[0]
}

// Length returns the length (magnitude) of this vector.
func (v Vector2) Length() float32 {
	return Sqrt(v[0]*v[0] + v[1]*v[1])
}

// LengthSquared returns the length squared of this vector, which can be
// used to compare lengths without a square root.
func (v Vector2) LengthSquared() float32 {
	return v[0]*v[0] + v[1]*v[1]
}

// Normal returns this vector divided by its length (its unit vector).
// A zero-length vector produces NaN components; guarding against that is
// the caller's responsibility.
func (v Vector2) Normal() Vector2 {
	return v.DivScalar(v.Length())
}

// SetNormal normalizes this vector in place so its length will be 1.
func (v Vector2) SetNormal() {
	v.SetDivScalar(v.Length())
}

// DistanceTo returns the distance of this point to the other point.
func (v Vector2) DistanceTo(other Vector2) float32 {
	return Sqrt(v.DistanceToSquared(other))
}

// DistanceToSquared returns the squared distance of this point to the other point.
func (v Vector2) DistanceToSquared(other Vector2) float32 {
	dx := v[0] - other[0]
	dy := v[1] - other[1]
	return dx*dx + dy*dy
}

// Lerp returns a vector with each component as the linear interpolated
// value of alpha between itself and the corresponding other component.
func (v Vector2) Lerp(other Vector2, alpha float32) Vector2 {
	return Vector2{v[0] + (other[0]-v[0])*alpha, v[1] + (other[1]-v[1])*alpha}
}

// LerpVector is like [Vector2.Lerp] with a per-component alpha.
func (v Vector2) LerpVector(other, alphas Vector2) Vector2 {
	return Vector2{v[0] + (other[0]-v[0])*alphas[0], v[1] + (other[1]-v[1])*alphas[1]}
}

// Reflect returns the reflection of this vector off the plane defined by
// the given normal: v - 2*(n·v)*n. The normal is assumed to be of unit length.
func (v Vector2) Reflect(normal Vector2) Vector2 {
	d := 2 * normal.Dot(v)
	return Vector2{v[0] - d*normal[0], v[1] - d*normal[1]}
}

// Refract returns the refraction of this vector through the surface with
// the given unit normal and ratio of indices of refraction eta. When the
// discriminant k = 1 - eta²(1 - (n·v)²) is negative (total internal
// reflection), the zero vector is returned; this is a defined result, not
// an error.
func (v Vector2) Refract(normal Vector2, eta float32) Vector2 {
	d := normal.Dot(v)
	k := 1 - eta*eta*(1-d*d)
	if k < 0 {
		return NewVector2()
	}
	f := eta*d + Sqrt(k)
	return Vector2{eta*v[0] - f*normal[0], eta*v[1] - f*normal[1]}
}

// Rotate returns this vector rotated by angle radians.
func (v Vector2) Rotate(angle float32) Vector2 {
	sin, cos := Sincos(angle)
	return Vector2{v[0]*cos - v[1]*sin, v[0]*sin + v[1]*cos}
}

// Angle returns the signed angle between this vector and other in radians.
func (v Vector2) Angle(other Vector2) float32 {
	return Atan2(v.Cross(other), v.Dot(other))
}

// Matrix operations:

// MulMatrix2 returns this vector multiplied by the given 2x2 matrix:
// result i = Σ_j v[j]*m[i+j*2].
func (v Vector2) MulMatrix2(m Matrix2) Vector2 {
	return Vector2{
		m[0]*v[0] + m[2]*v[1],
		m[1]*v[0] + m[3]*v[1],
	}
}

// SetMulMatrix2 multiplies this vector by the given 2x2 matrix in place.
func (v Vector2) SetMulMatrix2(m Matrix2) {
	x := m[0]*v[0] + m[2]*v[1]
	y := m[1]*v[0] + m[3]*v[1]
	v[0], v[1] = x, y
}

// MulMatrix2Transpose returns this vector multiplied by the transpose of
// the given 2x2 matrix.
func (v Vector2) MulMatrix2Transpose(m Matrix2) Vector2 {
	return Vector2{
		m[0]*v[0] + m[1]*v[1],
		m[2]*v[0] + m[3]*v[1],
	}
}

// DivMatrix2 returns this vector multiplied by the inverse of the given
// 2x2 matrix, substituting the cofactor terms directly rather than
// materializing the inverse. A singular matrix produces NaN/Inf components.
func (v Vector2) DivMatrix2(m Matrix2) Vector2 {
	det := m[0]*m[3] - m[2]*m[1]
	return Vector2{
		(m[3]*v[0] - m[2]*v[1]) / det,
		(m[0]*v[1] - m[1]*v[0]) / det,
	}
}

// DivMatrix2Transpose returns this vector multiplied by the inverse of the
// transpose of the given 2x2 matrix.
func (v Vector2) DivMatrix2Transpose(m Matrix2) Vector2 {
	det := m[0]*m[3] - m[2]*m[1]
	return Vector2{
		(m[3]*v[0] - m[1]*v[1]) / det,
		(m[0]*v[1] - m[2]*v[0]) / det,
	}
}

// Shader-style elementwise math:

// Abs returns this vector with [Abs] applied to each component.
func (v Vector2) Abs() Vector2 {
	return Vector2{Abs(v[0]), Abs(v[1])}
}

// Floor returns this vector with [Floor] applied to each component.
func (v Vector2) Floor() Vector2 {
	return Vector2{Floor(v[0]), Floor(v[1])}
}

// Ceil returns this vector with [Ceil] applied to each component.
func (v Vector2) Ceil() Vector2 {
	return Vector2{Ceil(v[0]), Ceil(v[1])}
}

// Round returns this vector with [Round] applied to each component.
func (v Vector2) Round() Vector2 {
	return Vector2{Round(v[0]), Round(v[1])}
}

// RoundToEven returns this vector with [RoundToEven] applied to each
// component, rounding ties to the nearest even integer.
func (v Vector2) RoundToEven() Vector2 {
	return Vector2{RoundToEven(v[0]), RoundToEven(v[1])}
}

// Trunc returns this vector with [Trunc] applied to each component.
func (v Vector2) Trunc() Vector2 {
	return Vector2{Trunc(v[0]), Trunc(v[1])}
}

// Fract returns this vector with [Fract] applied to each component.
func (v Vector2) Fract() Vector2 {
	return Vector2{Fract(v[0]), Fract(v[1])}
}

// Modf returns the per-component integer and fractional parts of this vector.
func (v Vector2) Modf() (it, frac Vector2) {
	ix, fx := Modf(v[0])
	iy, fy := Modf(v[1])
	return Vector2{ix, iy}, Vector2{fx, fy}
}

// Sin returns this vector with [Sin] applied to each component.
func (v Vector2) Sin() Vector2 {
	return Vector2{Sin(v[0]), Sin(v[1])}
}

// Cos returns this vector with [Cos] applied to each component.
func (v Vector2) Cos() Vector2 {
	return Vector2{Cos(v[0]), Cos(v[1])}
}

// Tan returns this vector with [Tan] applied to each component.
func (v Vector2) Tan() Vector2 {
	return Vector2{Tan(v[0]), Tan(v[1])}
}

// Asin returns this vector with [Asin] applied to each component.
func (v Vector2) Asin() Vector2 {
	return Vector2{Asin(v[0]), Asin(v[1])}
}

// Acos returns this vector with [Acos] applied to each component.
func (v Vector2) Acos() Vector2 {
	return Vector2{Acos(v[0]), Acos(v[1])}
}

// Atan returns this vector with [Atan] applied to each component.
func (v Vector2) Atan() Vector2 {
	return Vector2{Atan(v[0]), Atan(v[1])}
}

// Atan2 returns the per-component arc tangent of v/other, using signs to
// determine the quadrant.
func (v Vector2) Atan2(other Vector2) Vector2 {
	return Vector2{Atan2(v[0], other[0]), Atan2(v[1], other[1])}
}

// Sinh returns this vector with [Sinh] applied to each component.
func (v Vector2) Sinh() Vector2 {
	return Vector2{Sinh(v[0]), Sinh(v[1])}
}

// Cosh returns this vector with [Cosh] applied to each component.
func (v Vector2) Cosh() Vector2 {
	return Vector2{Cosh(v[0]), Cosh(v[1])}
}

// Tanh returns this vector with [Tanh] applied to each component.
func (v Vector2) Tanh() Vector2 {
	return Vector2{Tanh(v[0]), Tanh(v[1])}
}

// Asinh returns this vector with [Asinh] applied to each component.
func (v Vector2) Asinh() Vector2 {
	return Vector2{Asinh(v[0]), Asinh(v[1])}
}

// Acosh returns this vector with [Acosh] applied to each component.
func (v Vector2) Acosh() Vector2 {
	return Vector2{Acosh(v[0]), Acosh(v[1])}
}

// Atanh returns this vector with [Atanh] applied to each component.
func (v Vector2) Atanh() Vector2 {
	return Vector2{Atanh(v[0]), Atanh(v[1])}
}

// Exp returns this vector with [Exp] applied to each component.
func (v Vector2) Exp() Vector2 {
	return Vector2{Exp(v[0]), Exp(v[1])}
}

// Exp2 returns this vector with [Exp2] applied to each component.
func (v Vector2) Exp2() Vector2 {
	return Vector2{Exp2(v[0]), Exp2(v[1])}
}

// Log returns this vector with [Log] applied to each component.
func (v Vector2) Log() Vector2 {
	return Vector2{Log(v[0]), Log(v[1])}
}

// Log2 returns this vector with [Log2] applied to each component.
func (v Vector2) Log2() Vector2 {
	return Vector2{Log2(v[0]), Log2(v[1])}
}

// Sqrt returns this vector with [Sqrt] applied to each component.
func (v Vector2) Sqrt() Vector2 {
	return Vector2{Sqrt(v[0]), Sqrt(v[1])}
}

// InverseSqrt returns this vector with [InverseSqrt] applied to each component.
func (v Vector2) InverseSqrt() Vector2 {
	return Vector2{InverseSqrt(v[0]), InverseSqrt(v[1])}
}

// Pow returns this vector with each component raised to the corresponding
// component of other.
func (v Vector2) Pow(other Vector2) Vector2 {
	return Vector2{Pow(v[0], other[0]), Pow(v[1], other[1])}
}

// PowScalar returns this vector with each component raised to s.
func (v Vector2) PowScalar(s float32) Vector2 {
	return Vector2{Pow(v[0], s), Pow(v[1], s)}
}

// Min returns the component-wise minimum of this vector and other.
func (v Vector2) Min(other Vector2) Vector2 {
	return Vector2{Min(v[0], other[0]), Min(v[1], other[1])}
}

// SetMin sets this vector's components to the minimum of itself and other.
func (v Vector2) SetMin(other Vector2) {
	v[0] = Min(v[0], other[0])
	v[1] = Min(v[1], other[1])
}

// Max returns the component-wise maximum of this vector and other.
func (v Vector2) Max(other Vector2) Vector2 {
	return Vector2{Max(v[0], other[0]), Max(v[1], other[1])}
}

// SetMax sets this vector's components to the maximum of itself and other.
func (v Vector2) SetMax(other Vector2) {
	v[0] = Max(v[0], other[0])
	v[1] = Max(v[1], other[1])
}

// Clamp returns this vector with each component clamped to the
// corresponding components of lo and hi. Assumes lo < hi.
func (v Vector2) Clamp(lo, hi Vector2) Vector2 {
	return Vector2{Clamp(v[0], lo[0], hi[0]), Clamp(v[1], lo[1], hi[1])}
}

// ClampScalar returns this vector with each component clamped to [lo, hi].
func (v Vector2) ClampScalar(lo, hi float32) Vector2 {
	return Vector2{Clamp(v[0], lo, hi), Clamp(v[1], lo, hi)}
}

// Step returns the per-component [Step] of this vector across the
// corresponding edge components.
func (v Vector2) Step(edges Vector2) Vector2 {
	return Vector2{Step(edges[0], v[0]), Step(edges[1], v[1])}
}

// StepScalar returns the per-component [Step] of this vector across edge.
func (v Vector2) StepScalar(edge float32) Vector2 {
	return Vector2{Step(edge, v[0]), Step(edge, v[1])}
}

// SmoothStep returns the per-component [SmoothStep] of this vector across
// the corresponding lo/hi components.
func (v Vector2) SmoothStep(lo, hi Vector2) Vector2 {
	return Vector2{SmoothStep(lo[0], hi[0], v[0]), SmoothStep(lo[1], hi[1], v[1])}
}

// SmoothStepScalar returns the per-component [SmoothStep] of this vector
// across [lo, hi].
func (v Vector2) SmoothStepScalar(lo, hi float32) Vector2 {
	return Vector2{SmoothStep(lo, hi, v[0]), SmoothStep(lo, hi, v[1])}
}

// Equality and serialization:

// Equals reports whether this vector is exactly component-wise equal to other.
func (v Vector2) Equals(other Vector2) bool {
	return v[0] == other[0] && v[1] == other[1]
}

// EqualsRounded reports whether this vector equals other after rounding
// each per-component difference to the given number of decimal fraction
// digits: components compare equal iff their difference rounds to zero.
func (v Vector2) EqualsRounded(other Vector2, digits int) bool {
	return equalsRounded(v, other, digits)
}

// Rounded returns this vector with each component rounded to the given
// number of decimal fraction digits.
func (v Vector2) Rounded(digits int) Vector2 {
	n := NewVector2()
	roundedInto(n, v, digits)
	return n
}

// MarshalJSON encodes this vector as a flat JSON array [x, y].
func (v Vector2) MarshalJSON() ([]byte, error) {
	return marshalComponents(v)
}

// UnmarshalJSON decodes a flat JSON array of exactly two numbers into this
// vector, returning [ErrBadLength] otherwise. A nil vector is allocated.
func (v *Vector2) UnmarshalJSON(data []byte) error {
	if *v == nil {
		*v = NewVector2()
	}
	return unmarshalComponents(*v, data, Vector2Size)
}
