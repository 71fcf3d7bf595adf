// Copyright 2025 The Vgmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgmath

// Vector3 is a 3D vector/point with X, Y and Z components, backed by a
// contiguous float32 buffer of length 3. The value either owns its buffer
// exclusively or aliases a region of a caller-supplied buffer ([Vector3View]).
type Vector3 []float32

// Vector3Size is the number of components in a [Vector3].
const Vector3Size = 3

// NewVector3 returns a new zero [Vector3] with an exclusively owned buffer.
func NewVector3() Vector3 {
	return make(Vector3, Vector3Size)
}

// Vec3 returns a new [Vector3] with the given x, y and z components.
func Vec3(x, y, z float32) Vector3 {
	return Vector3{x, y, z}
}

// Vector3Scalar returns a new [Vector3] with all components set to the
// given scalar value.
func Vector3Scalar(scalar float32) Vector3 {
	return Vector3{scalar, scalar, scalar}
}

// Vector3View returns a [Vector3] aliasing the three floats of buf
// starting at offset. Returns [ErrOutOfBounds] if the region does not fit.
func Vector3View(buf []float32, offset int) (Vector3, error) {
	s, err := view(buf, offset, Vector3Size)
	if err != nil {
		return nil, err
	}
	return Vector3(s), nil
}

// Vector3FromSlice returns a new [Vector3] copying three components from
// vals starting at offset.
func Vector3FromSlice(vals []float32, offset int) (Vector3, error) {
	if err := sliceCheck(vals, offset, Vector3Size); err != nil {
		return nil, err
	}
	return Vector3{vals[offset], vals[offset+1], vals[offset+2]}, nil
}

// Vector3FromVector2 returns a new [Vector3] from the given [Vector2] and
// z component.
func Vector3FromVector2(o Vector2, z float32) Vector3 {
	return Vector3{o[0], o[1], z}
}

// Vector3FromVector4 returns a new [Vector3] from the X, Y and Z
// components of the given [Vector4].
func Vector3FromVector4(o Vector4) Vector3 {
	return Vector3{o[0], o[1], o[2]}
}

// X returns the first component.
func (v Vector3) X() float32 { return v[0] }

// Y returns the second component.
func (v Vector3) Y() float32 { return v[1] }

// Z returns the third component.
func (v Vector3) Z() float32 { return v[2] }

// SetX sets the first component.
func (v Vector3) SetX(x float32) { v[0] = x }

// SetY sets the second component.
func (v Vector3) SetY(y float32) { v[1] = y }

// SetZ sets the third component.
func (v Vector3) SetZ(z float32) { v[2] = z }

// At returns the component at index i.
func (v Vector3) At(i int) float32 { return v[i] }

// SetAt sets the component at index i.
func (v Vector3) SetAt(i int, value float32) { v[i] = value }

// Set sets the X, Y and Z components.
func (v Vector3) Set(x, y, z float32) {
	v[0] = x
	v[1] = y
	v[2] = z
}

// SetScalar sets all components to the same scalar value.
func (v Vector3) SetScalar(scalar float32) {
	v[0] = scalar
	v[1] = scalar
	v[2] = scalar
}

// SetZero sets all components to zero.
func (v Vector3) SetZero() {
	v[0] = 0
	v[1] = 0
	v[2] = 0
}

// SetFromVector3 copies the components of other into this vector.
func (v Vector3) SetFromVector3(other Vector3) {
	copy(v, other)
}

// SetFromVector2 sets this vector from a [Vector2] and z; the z component
// keeps its previous value when the argument list leaves it unresolved.
func (v Vector3) SetFromVector2(other Vector2) {
	v[0] = other[0]
	v[1] = other[1]
}

// Clone returns a copy of this vector with a freshly owned buffer.
func (v Vector3) Clone() Vector3 {
	return Vector3{v[0], v[1], v[2]}
}

// FromSlice sets this vector's components from the given slice, starting at offset.
func (v Vector3) FromSlice(vals []float32, offset int) error {
	if err := sliceCheck(vals, offset, Vector3Size); err != nil {
		return err
	}
	copy(v, vals[offset:offset+Vector3Size])
	return nil
}

// ToSlice copies this vector's components to the given slice, starting at offset.
func (v Vector3) ToSlice(vals []float32, offset int) {
	copy(vals[offset:], v)
}

func (v Vector3) String() string {
	return formatComponents(v, DefaultFractionDigits)
}

// StringRounded is like String with the given number of fraction digits.
func (v Vector3) StringRounded(digits int) string {
	return formatComponents(v, digits)
}

// Basic math operations:

// Add adds the other given vector to this one and returns the result as a new vector.
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{v[0] + other[0], v[1] + other[1], v[2] + other[2]}
}

// AddScalar adds scalar s to each component of this vector and returns a new vector.
func (v Vector3) AddScalar(s float32) Vector3 {
	return Vector3{v[0] + s, v[1] + s, v[2] + s}
}

// SetAdd sets this to addition with the other vector (i.e., += or plus-equals).
func (v Vector3) SetAdd(other Vector3) {
	v[0] += other[0]
	v[1] += other[1]
	v[2] += other[2]
}

// SetAddScalar sets this to addition with scalar.
func (v Vector3) SetAddScalar(s float32) {
	v[0] += s
	v[1] += s
	v[2] += s
}

// Sub subtracts the other vector from this one and returns the result in a new vector.
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{v[0] - other[0], v[1] - other[1], v[2] - other[2]}
}

// SubScalar subtracts scalar s from each component of this vector and returns a new vector.
func (v Vector3) SubScalar(s float32) Vector3 {
	return Vector3{v[0] - s, v[1] - s, v[2] - s}
}

// SetSub sets this to subtraction with the other vector (i.e., -= or minus-equals).
func (v Vector3) SetSub(other Vector3) {
	v[0] -= other[0]
	v[1] -= other[1]
	v[2] -= other[2]
}

// SetSubScalar sets this to subtraction of scalar.
func (v Vector3) SetSubScalar(s float32) {
	v[0] -= s
	v[1] -= s
	v[2] -= s
}

// Mul multiplies each component of this vector by the corresponding one
// from other and returns the resulting vector.
func (v Vector3) Mul(other Vector3) Vector3 {
	return Vector3{v[0] * other[0], v[1] * other[1], v[2] * other[2]}
}

// MulScalar multiplies each component of this vector by the scalar s and
// returns the resulting vector.
func (v Vector3) MulScalar(s float32) Vector3 {
	return Vector3{v[0] * s, v[1] * s, v[2] * s}
}

// SetMul sets this to component-wise multiplication with the other vector.
func (v Vector3) SetMul(other Vector3) {
	v[0] *= other[0]
	v[1] *= other[1]
	v[2] *= other[2]
}

// SetMulScalar sets this to multiplication by scalar.
func (v Vector3) SetMulScalar(s float32) {
	v[0] *= s
	v[1] *= s
	v[2] *= s
}

// Div divides each component of this vector by the corresponding one from
// the other vector and returns the resulting vector.
func (v Vector3) Div(other Vector3) Vector3 {
	return Vector3{v[0] / other[0], v[1] / other[1], v[2] / other[2]}
}

// DivScalar divides each component of this vector by the scalar s and
// returns the resulting vector. Division by zero produces Inf/NaN
// components, which propagate to the caller.
func (v Vector3) DivScalar(s float32) Vector3 {
	return Vector3{v[0] / s, v[1] / s, v[2] / s}
}

// SetDiv sets this to component-wise division by the other vector.
func (v Vector3) SetDiv(other Vector3) {
	v[0] /= other[0]
	v[1] /= other[1]
	v[2] /= other[2]
}

// SetDivScalar sets this to division by scalar.
func (v Vector3) SetDivScalar(s float32) {
	v[0] /= s
	v[1] /= s
	v[2] /= s
}

// Negate returns the vector with each component negated.
func (v Vector3) Negate() Vector3 {
	return Vector3{-v[0], -v[1], -v[2]}
}

// SetNegate negates each component of this vector in place.
func (v Vector3) SetNegate() {
	v[0] = -v[0]
	v[1] = -v[1]
	v[2] = -v[2]
}

// Distance, Normal:

// Dot returns the dot product of this vector with the given other vector.
func (v Vector3) Dot(other Vector3) float32 {
	return v[0]*other[0] + v[1]*other[1] + v[2]*other[2]
}

// Cross returns the right-handed cross product of this vector with other.
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		v[1]*other[2] - v[2]*other[1],
		v[2]*other[0] - v[0]*other[2],
		v[0]*other[1] - v[1]*other[0],
	}
}

// SetCross sets this vector to the cross product of itself with other.
func (v Vector3) SetCross(other Vector3) {
	x := v[1]*other[2] - v[2]*other[1]
	y := v[2]*other[0] - v[0]*other[2]
	z := v[0]*other[1] - v[1]*other[0]
	v[0], v[1], v[2] = x, y, z
}

// Length returns the length (magnitude) of this vector.
func (v Vector3) Length() float32 {
	return Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// LengthSquared returns the length squared of this vector, which can be
// used to compare lengths without a square root.
func (v Vector3) LengthSquared() float32 {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
}

// Normal returns this vector divided by its length (its unit vector).
// A zero-length vector produces NaN components; guarding against that is
// the caller's responsibility.
func (v Vector3) Normal() Vector3 {
	return v.DivScalar(v.Length())
}

// SetNormal normalizes this vector in place so its length will be 1.
func (v Vector3) SetNormal() {
	v.SetDivScalar(v.Length())
}

// DistanceTo returns the distance of this point to the other point.
func (v Vector3) DistanceTo(other Vector3) float32 {
	return Sqrt(v.DistanceToSquared(other))
}

// DistanceToSquared returns the squared distance of this point to the other point.
func (v Vector3) DistanceToSquared(other Vector3) float32 {
	dx := v[0] - other[0]
	dy := v[1] - other[1]
	dz := v[2] - other[2]
	return dx*dx + dy*dy + dz*dz
}

// Lerp returns a vector with each component as the linear interpolated
// value of alpha between itself and the corresponding other component.
func (v Vector3) Lerp(other Vector3, alpha float32) Vector3 {
	return Vector3{
		v[0] + (other[0]-v[0])*alpha,
		v[1] + (other[1]-v[1])*alpha,
		v[2] + (other[2]-v[2])*alpha,
	}
}

// LerpVector is like [Vector3.Lerp] with a per-component alpha.
func (v Vector3) LerpVector(other, alphas Vector3) Vector3 {
	return Vector3{
		v[0] + (other[0]-v[0])*alphas[0],
		v[1] + (other[1]-v[1])*alphas[1],
		v[2] + (other[2]-v[2])*alphas[2],
	}
}

// Reflect returns the reflection of this vector off the plane defined by
// the given normal: v - 2*(n·v)*n. The normal is assumed to be of unit length.
func (v Vector3) Reflect(normal Vector3) Vector3 {
	d := 2 * normal.Dot(v)
	return Vector3{v[0] - d*normal[0], v[1] - d*normal[1], v[2] - d*normal[2]}
}

// Refract returns the refraction of this vector through the surface with
// the given unit normal and ratio of indices of refraction eta. When the
// discriminant k = 1 - eta²(1 - (n·v)²) is negative (total internal
// reflection), the zero vector is returned; this is a defined result, not
// an error.
func (v Vector3) Refract(normal Vector3, eta float32) Vector3 {
	d := normal.Dot(v)
	k := 1 - eta*eta*(1-d*d)
	if k < 0 {
		return NewVector3()
	}
	f := eta*d + Sqrt(k)
	return Vector3{eta*v[0] - f*normal[0], eta*v[1] - f*normal[1], eta*v[2] - f*normal[2]}
}

// Matrix operations:

// MulMatrix3 returns this vector multiplied by the given 3x3 matrix:
// result i = Σ_j v[j]*m[i+j*3].
func (v Vector3) MulMatrix3(m Matrix3) Vector3 {
	return Vector3{
		m[0]*v[0] + m[3]*v[1] + m[6]*v[2],
		m[1]*v[0] + m[4]*v[1] + m[7]*v[2],
		m[2]*v[0] + m[5]*v[1] + m[8]*v[2],
	}
}

// SetMulMatrix3 multiplies this vector by the given 3x3 matrix in place.
func (v Vector3) SetMulMatrix3(m Matrix3) {
	x := m[0]*v[0] + m[3]*v[1] + m[6]*v[2]
	y := m[1]*v[0] + m[4]*v[1] + m[7]*v[2]
	z := m[2]*v[0] + m[5]*v[1] + m[8]*v[2]
	v[0], v[1], v[2] = x, y, z
}

// MulMatrix3Transpose returns this vector multiplied by the transpose of
// the given 3x3 matrix.
func (v Vector3) MulMatrix3Transpose(m Matrix3) Vector3 {
	return Vector3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}

// DivMatrix3 returns this vector multiplied by the inverse of the given
// 3x3 matrix, substituting the cofactor terms directly rather than
// materializing the inverse. A singular matrix produces NaN/Inf components.
func (v Vector3) DivMatrix3(m Matrix3) Vector3 {
	i := m.inverseTerms()
	return Vector3{
		i[0]*v[0] + i[3]*v[1] + i[6]*v[2],
		i[1]*v[0] + i[4]*v[1] + i[7]*v[2],
		i[2]*v[0] + i[5]*v[1] + i[8]*v[2],
	}
}

// DivMatrix3Transpose returns this vector multiplied by the inverse of the
// transpose of the given 3x3 matrix.
func (v Vector3) DivMatrix3Transpose(m Matrix3) Vector3 {
	i := m.inverseTerms()
	return Vector3{
		i[0]*v[0] + i[1]*v[1] + i[2]*v[2],
		i[3]*v[0] + i[4]*v[1] + i[5]*v[2],
		i[6]*v[0] + i[7]*v[1] + i[8]*v[2],
	}
}

// Shader-style elementwise math:

// Abs returns this vector with [Abs] applied to each component.
func (v Vector3) Abs() Vector3 {
	return Vector3{Abs(v[0]), Abs(v[1]), Abs(v[2])}
}

// Floor returns this vector with [Floor] applied to each component.
func (v Vector3) Floor() Vector3 {
	return Vector3{Floor(v[0]), Floor(v[1]), Floor(v[2])}
}

// Ceil returns this vector with [Ceil] applied to each component.
func (v Vector3) Ceil() Vector3 {
	return Vector3{Ceil(v[0]), Ceil(v[1]), Ceil(v[2])}
}

// Round returns this vector with [Round] applied to each component.
func (v Vector3) Round() Vector3 {
	return Vector3{Round(v[0]), Round(v[1]), Round(v[2])}
}

// RoundToEven returns this vector with [RoundToEven] applied to each
// component, rounding ties to the nearest even integer.
func (v Vector3) RoundToEven() Vector3 {
	return Vector3{RoundToEven(v[0]), RoundToEven(v[1]), RoundToEven(v[2])}
}

// Trunc returns this vector with [Trunc] applied to each component.
func (v Vector3) Trunc() Vector3 {
	return Vector3{Trunc(v[0]), Trunc(v[1]), Trunc(v[2])}
}

// Fract returns this vector with [Fract] applied to each component.
func (v Vector3) Fract() Vector3 {
	return Vector3{Fract(v[0]), Fract(v[1]), Fract(v[2])}
}

// Modf returns the per-component integer and fractional parts of this vector.
func (v Vector3) Modf() (it, frac Vector3) {
	ix, fx := Modf(v[0])
	iy, fy := Modf(v[1])
	iz, fz := Modf(v[2])
	return Vector3{ix, iy, iz}, Vector3{fx, fy, fz}
}

// Sin returns this vector with [Sin] applied to each component.
func (v Vector3) Sin() Vector3 {
	return Vector3{Sin(v[0]), Sin(v[1]), Sin(v[2])}
}

// Cos returns this vector with [Cos] applied to each component.
func (v Vector3) Cos() Vector3 {
	return Vector3{Cos(v[0]), Cos(v[1]), Cos(v[2])}
}

// Tan returns this vector with [Tan] applied to each component.
func (v Vector3) Tan() Vector3 {
	return Vector3{Tan(v[0]), Tan(v[1]), Tan(v[2])}
}

// Asin returns this vector with [Asin] applied to each component.
func (v Vector3) Asin() Vector3 {
	return Vector3{Asin(v[0]), Asin(v[1]), Asin(v[2])}
}

// Acos returns this vector with [Acos] applied to each component.
func (v Vector3) Acos() Vector3 {
	return Vector3{Acos(v[0]), Acos(v[1]), Acos(v[2])}
}

// Atan returns this vector with [Atan] applied to each component.
func (v Vector3) Atan() Vector3 {
	return Vector3{Atan(v[0]), Atan(v[1]), Atan(v[2])}
}

// Atan2 returns the per-component arc tangent of v/other, using signs to
// determine the quadrant.
func (v Vector3) Atan2(other Vector3) Vector3 {
	return Vector3{Atan2(v[0], other[0]), Atan2(v[1], other[1]), Atan2(v[2], other[2])}
}

// Sinh returns this vector with [Sinh] applied to each component.
func (v Vector3) Sinh() Vector3 {
	return Vector3{Sinh(v[0]), Sinh(v[1]), Sinh(v[2])}
}

// Cosh returns this vector with [Cosh] applied to each component.
func (v Vector3) Cosh() Vector3 {
	return Vector3{Cosh(v[0]), Cosh(v[1]), Cosh(v[2])}
}

// Tanh returns this vector with [Tanh] applied to each component.
func (v Vector3) Tanh() Vector3 {
	return Vector3{Tanh(v[0]), Tanh(v[1]), Tanh(v[2])}
}

// Asinh returns this vector with [Asinh] applied to each component.
func (v Vector3) Asinh() Vector3 {
	return Vector3{Asinh(v[0]), Asinh(v[1]), Asinh(v[2])}
}

// Acosh returns this vector with [Acosh] applied to each component.
func (v Vector3) Acosh() Vector3 {
	return Vector3{Acosh(v[0]), Acosh(v[1]), Acosh(v[2])}
}

// Atanh returns this vector with [Atanh] applied to each component.
func (v Vector3) Atanh() Vector3 {
	return Vector3{Atanh(v[0]), Atanh(v[1]), Atanh(v[2])}
}

// Exp returns this vector with [Exp] applied to each component.
func (v Vector3) Exp() Vector3 {
	return Vector3{Exp(v[0]), Exp(v[1]), Exp(v[2])}
}

// Exp2 returns this vector with [Exp2] applied to each component.
func (v Vector3) Exp2() Vector3 {
	return Vector3{Exp2(v[0]), Exp2(v[1]), Exp2(v[2])}
}

// Log returns this vector with [Log] applied to each component.
func (v Vector3) Log() Vector3 {
	return Vector3{Log(v[0]), Log(v[1]), Log(v[2])}
}

// Log2 returns this vector with [Log2] applied to each component.
func (v Vector3) Log2() Vector3 {
	return Vector3{Log2(v[0]), Log2(v[1]), Log2(v[2])}
}

// Sqrt returns this vector with [Sqrt] applied to each component.
func (v Vector3) Sqrt() Vector3 {
	return Vector3{Sqrt(v[0]), Sqrt(v[1]), Sqrt(v[2])}
}

// InverseSqrt returns this vector with [InverseSqrt] applied to each component.
func (v Vector3) InverseSqrt() Vector3 {
	return Vector3{InverseSqrt(v[0]), InverseSqrt(v[1]), InverseSqrt(v[2])}
}

// Pow returns this vector with each component raised to the corresponding
// component of other.
func (v Vector3) Pow(other Vector3) Vector3 {
	return Vector3{Pow(v[0], other[0]), Pow(v[1], other[1]), Pow(v[2], other[2])}
}

// PowScalar returns this vector with each component raised to s.
func (v Vector3) PowScalar(s float32) Vector3 {
	return Vector3{Pow(v[0], s), Pow(v[1], s), Pow(v[2], s)}
}

// Min returns the component-wise minimum of this vector and other.
func (v Vector3) Min(other Vector3) Vector3 {
	return Vector3{Min(v[0], other[0]), Min(v[1], other[1]), Min(v[2], other[2])}
}

// SetMin sets this vector's components to the minimum of itself and other.
func (v Vector3) SetMin(other Vector3) {
	v[0] = Min(v[0], other[0])
	v[1] = Min(v[1], other[1])
	v[2] = Min(v[2], other[2])
}

// Max returns the component-wise maximum of this vector and other.
func (v Vector3) Max(other Vector3) Vector3 {
	return Vector3{Max(v[0], other[0]), Max(v[1], other[1]), Max(v[2], other[2])}
}

// SetMax sets this vector's components to the maximum of itself and other.
func (v Vector3) SetMax(other Vector3) {
	v[0] = Max(v[0], other[0])
	v[1] = Max(v[1], other[1])
	v[2] = Max(v[2], other[2])
}

// Clamp returns this vector with each component clamped to the
// corresponding components of lo and hi. Assumes lo < hi.
func (v Vector3) Clamp(lo, hi Vector3) Vector3 {
	return Vector3{Clamp(v[0], lo[0], hi[0]), Clamp(v[1], lo[1], hi[1]), Clamp(v[2], lo[2], hi[2])}
}

// ClampScalar returns this vector with each component clamped to [lo, hi].
func (v Vector3) ClampScalar(lo, hi float32) Vector3 {
	return Vector3{Clamp(v[0], lo, hi), Clamp(v[1], lo, hi), Clamp(v[2], lo, hi)}
}

// Step returns the per-component [Step] of this vector across the
// corresponding edge components.
func (v Vector3) Step(edges Vector3) Vector3 {
	return Vector3{Step(edges[0], v[0]), Step(edges[1], v[1]), Step(edges[2], v[2])}
}

// StepScalar returns the per-component [Step] of this vector across edge.
func (v Vector3) StepScalar(edge float32) Vector3 {
	return Vector3{Step(edge, v[0]), Step(edge, v[1]), Step(edge, v[2])}
}

// SmoothStep returns the per-component [SmoothStep] of this vector across
// the corresponding lo/hi components.
func (v Vector3) SmoothStep(lo, hi Vector3) Vector3 {
	return Vector3{
		SmoothStep(lo[0], hi[0], v[0]),
		SmoothStep(lo[1], hi[1], v[1]),
		SmoothStep(lo[2], hi[2], v[2]),
	}
}

// SmoothStepScalar returns the per-component [SmoothStep] of this vector
// across [lo, hi].
func (v Vector3) SmoothStepScalar(lo, hi float32) Vector3 {
	return Vector3{SmoothStep(lo, hi, v[0]), SmoothStep(lo, hi, v[1]), SmoothStep(lo, hi, v[2])}
}

// Equality and serialization:

// Equals reports whether this vector is exactly component-wise equal to other.
func (v Vector3) Equals(other Vector3) bool {
	return v[0] == other[0] && v[1] == other[1] && v[2] == other[2]
}

// EqualsRounded reports whether this vector equals other after rounding
// each per-component difference to the given number of decimal fraction
// digits: components compare equal iff their difference rounds to zero.
func (v Vector3) EqualsRounded(other Vector3, digits int) bool {
	return equalsRounded(v, other, digits)
}

// Rounded returns this vector with each component rounded to the given
// number of decimal fraction digits.
func (v Vector3) Rounded(digits int) Vector3 {
	n := NewVector3()
	roundedInto(n, v, digits)
	return n
}

// MarshalJSON encodes this vector as a flat JSON array [x, y, z].
func (v Vector3) MarshalJSON() ([]byte, error) {
	return marshalComponents(v)
}

// UnmarshalJSON decodes a flat JSON array of exactly three numbers into
// this vector, returning [ErrBadLength] otherwise. A nil vector is allocated.
func (v *Vector3) UnmarshalJSON(data []byte) error {
	if *v == nil {
		*v = NewVector3()
	}
	return unmarshalComponents(*v, data, Vector3Size)
}
