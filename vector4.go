// Copyright 2025 The Vgmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgmath

// Vector4 is a vector/point in homogeneous coordinates with X, Y, Z and W
// components, backed by a contiguous float32 buffer of length 4. The value
// either owns its buffer exclusively or aliases a region of a
// caller-supplied buffer ([Vector4View]).
type Vector4 []float32

// Vector4Size is the number of components in a [Vector4].
const Vector4Size = 4

// NewVector4 returns a new zero [Vector4] with an exclusively owned buffer.
func NewVector4() Vector4 {
	return make(Vector4, Vector4Size)
}

// Vec4 returns a new [Vector4] with the given x, y, z and w components.
func Vec4(x, y, z, w float32) Vector4 {
	return Vector4{x, y, z, w}
}

// Vector4Scalar returns a new [Vector4] with all components set to the
// given scalar value.
func Vector4Scalar(scalar float32) Vector4 {
	return Vector4{scalar, scalar, scalar, scalar}
}

// Vector4View returns a [Vector4] aliasing the four floats of buf
// starting at offset. Returns [ErrOutOfBounds] if the region does not fit.
func Vector4View(buf []float32, offset int) (Vector4, error) {
	s, err := view(buf, offset, Vector4Size)
	if err != nil {
		return nil, err
	}
	return Vector4(s), nil
}

// Vector4FromSlice returns a new [Vector4] copying four components from
// vals starting at offset.
func Vector4FromSlice(vals []float32, offset int) (Vector4, error) {
	if err := sliceCheck(vals, offset, Vector4Size); err != nil {
		return nil, err
	}
	return Vector4{vals[offset], vals[offset+1], vals[offset+2], vals[offset+3]}, nil
}

// Vector4FromVector3 returns a new [Vector4] from the given [Vector3] and
// w component.
func Vector4FromVector3(o Vector3, w float32) Vector4 {
	return Vector4{o[0], o[1], o[2], w}
}

// Vector4FromVector2 returns a new [Vector4] from the given [Vector2]
// followed by the z and w components.
func Vector4FromVector2(o Vector2, z, w float32) Vector4 {
	return Vector4{o[0], o[1], z, w}
}

// Vector4FromScalarVector2 returns a new [Vector4] from an x component
// followed by the given [Vector2] and a w component.
func Vector4FromScalarVector2(x float32, o Vector2, w float32) Vector4 {
	return Vector4{x, o[0], o[1], w}
}

// Vector4FromVector2s returns a new [Vector4] from two [Vector2] values
// filling X,Y and Z,W respectively.
func Vector4FromVector2s(xy, zw Vector2) Vector4 {
	return Vector4{xy[0], xy[1], zw[0], zw[1]}
}

// X returns the first component.
func (v Vector4) X() float32 { return v[0] }

// Y returns the second component.
func (v Vector4) Y() float32 { return v[1] }

// Z returns the third component.
func (v Vector4) Z() float32 { return v[2] }

// W returns the fourth component.
func (v Vector4) W() float32 { return v[3] }

// SetX sets the first component.
func (v Vector4) SetX(x float32) { v[0] = x }

// SetY sets the second component.
func (v Vector4) SetY(y float32) { v[1] = y }

// SetZ sets the third component.
func (v Vector4) SetZ(z float32) { v[2] = z }

// SetW sets the fourth component.
func (v Vector4) SetW(w float32) { v[3] = w }

// At returns the component at index i.
func (v Vector4) At(i int) float32 { return v[i] }

// SetAt sets the component at index i.
func (v Vector4) SetAt(i int, value float32) { v[i] = value }

// Set sets the X, Y, Z and W components.
func (v Vector4) Set(x, y, z, w float32) {
	v[0] = x
	v[1] = y
	v[2] = z
	v[3] = w
}

// SetScalar sets all components to the same scalar value.
func (v Vector4) SetScalar(scalar float32) {
	v[0] = scalar
	v[1] = scalar
	v[2] = scalar
	v[3] = scalar
}

// SetZero sets all components to zero.
func (v Vector4) SetZero() {
	v[0] = 0
	v[1] = 0
	v[2] = 0
	v[3] = 0
}

// SetFromVector4 copies the components of other into this vector.
func (v Vector4) SetFromVector4(other Vector4) {
	copy(v, other)
}

// SetFromVector3 sets this vector from a [Vector3] and w.
func (v Vector4) SetFromVector3(other Vector3, w float32) {
	v[0] = other[0]
	v[1] = other[1]
	v[2] = other[2]
	v[3] = w
}

// SetFromVector2 sets the X and Y components from a [Vector2]; the Z and W
// components keep their previous values.
func (v Vector4) SetFromVector2(other Vector2) {
	v[0] = other[0]
	v[1] = other[1]
}

// Clone returns a copy of this vector with a freshly owned buffer.
func (v Vector4) Clone() Vector4 {
	return Vector4{v[0], v[1], v[2], v[3]}
}

// FromSlice sets this vector's components from the given slice, starting at offset.
func (v Vector4) FromSlice(vals []float32, offset int) error {
	if err := sliceCheck(vals, offset, Vector4Size); err != nil {
		return err
	}
	copy(v, vals[offset:offset+Vector4Size])
	return nil
}

// ToSlice copies this vector's components to the given slice, starting at offset.
func (v Vector4) ToSlice(vals []float32, offset int) {
	copy(vals[offset:], v)
}

func (v Vector4) String() string {
	return formatComponents(v, DefaultFractionDigits)
}

// StringRounded is like String with the given number of fraction digits.
func (v Vector4) StringRounded(digits int) string {
	return formatComponents(v, digits)
}

// Basic math operations:

// Add adds the other given vector to this one and returns the result as a new vector.
func (v Vector4) Add(other Vector4) Vector4 {
	return Vector4{v[0] + other[0], v[1] + other[1], v[2] + other[2], v[3] + other[3]}
}

// AddScalar adds scalar s to each component of this vector and returns a new vector.
func (v Vector4) AddScalar(s float32) Vector4 {
	return Vector4{v[0] + s, v[1] + s, v[2] + s, v[3] + s}
}

// SetAdd sets this to addition with the other vector (i.e., += or plus-equals).
func (v Vector4) SetAdd(other Vector4) {
	v[0] += other[0]
	v[1] += other[1]
	v[2] += other[2]
	v[3] += other[3]
}

// SetAddScalar sets this to addition with scalar.
func (v Vector4) SetAddScalar(s float32) {
	v[0] += s
	v[1] += s
	v[2] += s
	v[3] += s
}

// Sub subtracts the other vector from this one and returns the result in a new vector.
func (v Vector4) Sub(other Vector4) Vector4 {
	return Vector4{v[0] - other[0], v[1] - other[1], v[2] - other[2], v[3] - other[3]}
}

// SubScalar subtracts scalar s from each component of this vector and returns a new vector.
func (v Vector4) SubScalar(s float32) Vector4 {
	return Vector4{v[0] - s, v[1] - s, v[2] - s, v[3] - s}
}

// SetSub sets this to subtraction with the other vector (i.e., -= or minus-equals).
func (v Vector4) SetSub(other Vector4) {
	v[0] -= other[0]
	v[1] -= other[1]
	v[2] -= other[2]
	v[3] -= other[3]
}

// SetSubScalar sets this to subtraction of scalar.
func (v Vector4) SetSubScalar(s float32) {
	v[0] -= s
	v[1] -= s
	v[2] -= s
	v[3] -= s
}

// Mul multiplies each component of this vector by the corresponding one
// from other and returns the resulting vector.
func (v Vector4) Mul(other Vector4) Vector4 {
	return Vector4{v[0] * other[0], v[1] * other[1], v[2] * other[2], v[3] * other[3]}
}

// MulScalar multiplies each component of this vector by the scalar s and
// returns the resulting vector.
func (v Vector4) MulScalar(s float32) Vector4 {
	return Vector4{v[0] * s, v[1] * s, v[2] * s, v[3] * s}
}

// SetMul sets this to component-wise multiplication with the other vector.
func (v Vector4) SetMul(other Vector4) {
	v[0] *= other[0]
	v[1] *= other[1]
	v[2] *= other[2]
	v[3] *= other[3]
}

// SetMulScalar sets this to multiplication by scalar.
func (v Vector4) SetMulScalar(s float32) {
	v[0] *= s
	v[1] *= s
	v[2] *= s
	v[3] *= s
}

// Div divides each component of this vector by the corresponding one from
// the other vector and returns the resulting vector.
func (v Vector4) Div(other Vector4) Vector4 {
	return Vector4{v[0] / other[0], v[1] / other[1], v[2] / other[2], v[3] / other[3]}
}

// DivScalar divides each component of this vector by the scalar s and
// returns the resulting vector. Division by zero produces Inf/NaN
// components, which propagate to the caller.
func (v Vector4) DivScalar(s float32) Vector4 {
	return Vector4{v[0] / s, v[1] / s, v[2] / s, v[3] / s}
}

// SetDiv sets this to component-wise division by the other vector.
func (v Vector4) SetDiv(other Vector4) {
	v[0] /= other[0]
	v[1] /= other[1]
	v[2] /= other[2]
	v[3] /= other[3]
}

// SetDivScalar sets this to division by scalar.
func (v Vector4) SetDivScalar(s float32) {
	v[0] /= s
	v[1] /= s
	v[2] /= s
	v[3] /= s
}

// Negate returns the vector with each component negated.
func (v Vector4) Negate() Vector4 {
	return Vector4{-v[0], -v[1], -v[2], -v[3]}
}

// SetNegate negates each component of this vector in place.
func (v Vector4) SetNegate() {
	v[0] = -v[0]
	v[1] = -v[1]
	v[2] = -v[2]
	v[3] = -v[3]
}

// Distance, Normal:

// Dot returns the dot product of this vector with the given other vector.
func (v Vector4) Dot(other Vector4) float32 {
	return v[0]*other[0] + v[1]*other[1] + v[2]*other[2] + v[3]*other[3]
}

// Length returns the length (magnitude) of this vector.
func (v Vector4) Length() float32 {
	return Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2] + v[3]*v[3])
}

// LengthSquared returns the length squared of this vector, which can be
// used to compare lengths without a square root.
func (v Vector4) LengthSquared() float32 {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2] + v[3]*v[3]
}

// Normal returns this vector divided by its length (its unit vector).
// A zero-length vector produces NaN components; guarding against that is
// the caller's responsibility.
func (v Vector4) Normal() Vector4 {
	return v.DivScalar(v.Length())
}

// SetNormal normalizes this vector in place so its length will be 1.
func (v Vector4) SetNormal() {
	v.SetDivScalar(v.Length())
}

// Lerp returns a vector with each component as the linear interpolated
// value of alpha between itself and the corresponding other component.
func (v Vector4) Lerp(other Vector4, alpha float32) Vector4 {
	return Vector4{
		v[0] + (other[0]-v[0])*alpha,
		v[1] + (other[1]-v[1])*alpha,
		v[2] + (other[2]-v[2])*alpha,
		v[3] + (other[3]-v[3])*alpha,
	}
}

// LerpVector is like [Vector4.Lerp] with a per-component alpha.
func (v Vector4) LerpVector(other, alphas Vector4) Vector4 {
	return Vector4{
		v[0] + (other[0]-v[0])*alphas[0],
		v[1] + (other[1]-v[1])*alphas[1],
		v[2] + (other[2]-v[2])*alphas[2],
		v[3] + (other[3]-v[3])*alphas[3],
	}
}

// Reflect returns the reflection of this vector off the plane defined by
// the given normal: v - 2*(n·v)*n. The normal is assumed to be of unit length.
func (v Vector4) Reflect(normal Vector4) Vector4 {
	d := 2 * normal.Dot(v)
	return Vector4{v[0] - d*normal[0], v[1] - d*normal[1], v[2] - d*normal[2], v[3] - d*normal[3]}
}

// Refract returns the refraction of this vector through the surface with
// the given unit normal and ratio of indices of refraction eta. When the
// discriminant k = 1 - eta²(1 - (n·v)²) is negative (total internal
// reflection), the zero vector is returned; this is a defined result, not
// an error.
func (v Vector4) Refract(normal Vector4, eta float32) Vector4 {
	d := normal.Dot(v)
	k := 1 - eta*eta*(1-d*d)
	if k < 0 {
		return NewVector4()
	}
	f := eta*d + Sqrt(k)
	return Vector4{
		eta*v[0] - f*normal[0],
		eta*v[1] - f*normal[1],
		eta*v[2] - f*normal[2],
		eta*v[3] - f*normal[3],
	}
}

// PerspDiv returns the 3-vector of normalized display coordinates (NDC)
// from this 4-vector by dividing by the fourth W component.
func (v Vector4) PerspDiv() Vector3 {
	return Vec3(v[0]/v[3], v[1]/v[3], v[2]/v[3])
}

// Matrix operations:

// MulMatrix4 returns this vector multiplied by the given 4x4 matrix:
// result i = Σ_j v[j]*m[i+j*4].
func (v Vector4) MulMatrix4(m Matrix4) Vector4 {
	return Vector4{
		m[0]*v[0] + m[4]*v[1] + m[8]*v[2] + m[12]*v[3],
		m[1]*v[0] + m[5]*v[1] + m[9]*v[2] + m[13]*v[3],
		m[2]*v[0] + m[6]*v[1] + m[10]*v[2] + m[14]*v[3],
		m[3]*v[0] + m[7]*v[1] + m[11]*v[2] + m[15]*v[3],
	}
}

// SetMulMatrix4 multiplies this vector by the given 4x4 matrix in place.
func (v Vector4) SetMulMatrix4(m Matrix4) {
	x := m[0]*v[0] + m[4]*v[1] + m[8]*v[2] + m[12]*v[3]
	y := m[1]*v[0] + m[5]*v[1] + m[9]*v[2] + m[13]*v[3]
	z := m[2]*v[0] + m[6]*v[1] + m[10]*v[2] + m[14]*v[3]
	w := m[3]*v[0] + m[7]*v[1] + m[11]*v[2] + m[15]*v[3]
	v[0], v[1], v[2], v[3] = x, y, z, w
}

// MulMatrix4Transpose returns this vector multiplied by the transpose of
// the given 4x4 matrix.
func (v Vector4) MulMatrix4Transpose(m Matrix4) Vector4 {
	return Vector4{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2] + m[3]*v[3],
		m[4]*v[0] + m[5]*v[1] + m[6]*v[2] + m[7]*v[3],
		m[8]*v[0] + m[9]*v[1] + m[10]*v[2] + m[11]*v[3],
		m[12]*v[0] + m[13]*v[1] + m[14]*v[2] + m[15]*v[3],
	}
}

// DivMatrix4 returns this vector multiplied by the inverse of the given
// 4x4 matrix, using the matrix's shared cofactor terms rather than
// materializing an inverse matrix. A singular matrix produces NaN/Inf
// components.
func (v Vector4) DivMatrix4(m Matrix4) Vector4 {
	i := m.inverseTerms()
	return Vector4{
		i[0]*v[0] + i[4]*v[1] + i[8]*v[2] + i[12]*v[3],
		i[1]*v[0] + i[5]*v[1] + i[9]*v[2] + i[13]*v[3],
		i[2]*v[0] + i[6]*v[1] + i[10]*v[2] + i[14]*v[3],
		i[3]*v[0] + i[7]*v[1] + i[11]*v[2] + i[15]*v[3],
	}
}

// DivMatrix4Transpose returns this vector multiplied by the inverse of the
// transpose of the given 4x4 matrix.
func (v Vector4) DivMatrix4Transpose(m Matrix4) Vector4 {
	i := m.inverseTerms()
	return Vector4{
		i[0]*v[0] + i[1]*v[1] + i[2]*v[2] + i[3]*v[3],
		i[4]*v[0] + i[5]*v[1] + i[6]*v[2] + i[7]*v[3],
		i[8]*v[0] + i[9]*v[1] + i[10]*v[2] + i[11]*v[3],
		i[12]*v[0] + i[13]*v[1] + i[14]*v[2] + i[15]*v[3],
	}
}

// Shader-style elementwise math:

// Abs returns this vector with [Abs] applied to each component.
func (v Vector4) Abs() Vector4 {
	return Vector4{Abs(v[0]), Abs(v[1]), Abs(v[2]), Abs(v[3])}
}

// Floor returns this vector with [Floor] applied to each component.
func (v Vector4) Floor() Vector4 {
	return Vector4{Floor(v[0]), Floor(v[1]), Floor(v[2]), Floor(v[3])}
}

// Ceil returns this vector with [Ceil] applied to each component.
func (v Vector4) Ceil() Vector4 {
	return Vector4{Ceil(v[0]), Ceil(v[1]), Ceil(v[2]), Ceil(v[3])}
}

// Round returns this vector with [Round] applied to each component.
func (v Vector4) Round() Vector4 {
	return Vector4{Round(v[0]), Round(v[1]), Round(v[2]), Round(v[3])}
}

// RoundToEven returns this vector with [RoundToEven] applied to each
// component, rounding ties to the nearest even integer.
func (v Vector4) RoundToEven() Vector4 {
	return Vector4{RoundToEven(v[0]), RoundToEven(v[1]), RoundToEven(v[2]), RoundToEven(v[3])}
}

// Trunc returns this vector with [Trunc] applied to each component.
func (v Vector4) Trunc() Vector4 {
	return Vector4{Trunc(v[0]), Trunc(v[1]), Trunc(v[2]), Trunc(v[3])}
}

// Fract returns this vector with [Fract] applied to each component.
func (v Vector4) Fract() Vector4 {
	return Vector4{Fract(v[0]), Fract(v[1]), Fract(v[2]), Fract(v[3])}
}

// Modf returns the per-component integer and fractional parts of this vector.
func (v Vector4) Modf() (it, frac Vector4) {
	ix, fx := Modf(v[0])
	iy, fy := Modf(v[1])
	iz, fz := Modf(v[2])
	iw, fw := Modf(v[3])
	return Vector4{ix, iy, iz, iw}, Vector4{fx, fy, fz, fw}
}

// Sin returns this vector with [Sin] applied to each component.
func (v Vector4) Sin() Vector4 {
	return Vector4{Sin(v[0]), Sin(v[1]), Sin(v[2]), Sin(v[3])}
}

// Cos returns this vector with [Cos] applied to each component.
func (v Vector4) Cos() Vector4 {
	return Vector4{Cos(v[0]), Cos(v[1]), Cos(v[2]), Cos(v[3])}
}

// Tan returns this vector with [Tan] applied to each component.
func (v Vector4) Tan() Vector4 {
	return Vector4{Tan(v[0]), Tan(v[1]), Tan(v[2]), Tan(v[3])}
}

// Asin returns this vector with [Asin] applied to each component.
func (v Vector4) Asin() Vector4 {
	return Vector4{Asin(v[0]), Asin(v[1]), Asin(v[2]), Asin(v[3])}
}

// Acos returns this vector with [Acos] applied to each component.
func (v Vector4) Acos() Vector4 {
	return Vector4{Acos(v[0]), Acos(v[1]), Acos(v[2]), Acos(v[3])}
}

// Atan returns this vector with [Atan] applied to each component.
func (v Vector4) Atan() Vector4 {
	return Vector4{Atan(v[0]), Atan(v[1]), Atan(v[2]), Atan(v[3])}
}

// Atan2 returns the per-component arc tangent of v/other, using signs to
// determine the quadrant.
func (v Vector4) Atan2(other Vector4) Vector4 {
	return Vector4{
		Atan2(v[0], other[0]),
		Atan2(v[1], other[1]),
		Atan2(v[2], other[2]),
		Atan2(v[3], other[3]),
	}
}

// Sinh returns this vector with [Sinh] applied to each component.
func (v Vector4) Sinh() Vector4 {
	return Vector4{Sinh(v[0]), Sinh(v[1]), Sinh(v[2]), Sinh(v[3])}
}

// Cosh returns this vector with [Cosh] applied to each component.
func (v Vector4) Cosh() Vector4 {
	return Vector4{Cosh(v[0]), Cosh(v[1]), Cosh(v[2]), Cosh(v[3])}
}

// Tanh returns this vector with [Tanh] applied to each component.
func (v Vector4) Tanh() Vector4 {
	return Vector4{Tanh(v[0]), Tanh(v[1]), Tanh(v[2]), Tanh(v[3])}
}

// Asinh returns this vector with [Asinh] applied to each component.
func (v Vector4) Asinh() Vector4 {
	return Vector4{Asinh(v[0]), Asinh(v[1]), Asinh(v[2]), Asinh(v[3])}
}

// Acosh returns this vector with [Acosh] applied to each component.
func (v Vector4) Acosh() Vector4 {
	return Vector4{Acosh(v[0]), Acosh(v[1]), Acosh(v[2]), Acosh(v[3])}
}

// Atanh returns this vector with [Atanh] applied to each component.
func (v Vector4) Atanh() Vector4 {
	return Vector4{Atanh(v[0]), Atanh(v[1]), Atanh(v[2]), Atanh(v[3])}
}

// Exp returns this vector with [Exp] applied to each component.
func (v Vector4) Exp() Vector4 {
	return Vector4{Exp(v[0]), Exp(v[1]), Exp(v[2]), Exp(v[3])}
}

// Exp2 returns this vector with [Exp2] applied to each component.
func (v Vector4) Exp2() Vector4 {
	return Vector4{Exp2(v[0]), Exp2(v[1]), Exp2(v[2]), Exp2(v[3])}
}

// Log returns this vector with [Log] applied to each component.
func (v Vector4) Log() Vector4 {
	return Vector4{Log(v[0]), Log(v[1]), Log(v[2]), Log(v[3])}
}

// Log2 returns this vector with [Log2] applied to each component.
func (v Vector4) Log2() Vector4 {
	return Vector4{Log2(v[0]), Log2(v[1]), Log2(v[2]), Log2(v[3])}
}

// Sqrt returns this vector with [Sqrt] applied to each component.
func (v Vector4) Sqrt() Vector4 {
	return Vector4{Sqrt(v[0]), Sqrt(v[1]), Sqrt(v[2]), Sqrt(v[3])}
}

// InverseSqrt returns this vector with [InverseSqrt] applied to each component.
func (v Vector4) InverseSqrt() Vector4 {
	return Vector4{InverseSqrt(v[0]), InverseSqrt(v[1]), InverseSqrt(v[2]), InverseSqrt(v[3])}
}

// Pow returns this vector with each component raised to the corresponding
// component of other.
func (v Vector4) Pow(other Vector4) Vector4 {
	return Vector4{
		Pow(v[0], other[0]),
		Pow(v[1], other[1]),
		Pow(v[2], other[2]),
		Pow(v[3], other[3]),
	}
}

// PowScalar returns this vector with each component raised to s.
func (v Vector4) PowScalar(s float32) Vector4 {
	return Vector4{Pow(v[0], s), Pow(v[1], s), Pow(v[2], s), Pow(v[3], s)}
}

// Min returns the component-wise minimum of this vector and other.
func (v Vector4) Min(other Vector4) Vector4 {
	return Vector4{
		Min(v[0], other[0]),
		Min(v[1], other[1]),
		Min(v[2], other[2]),
		Min(v[3], other[3]),
	}
}

// SetMin sets this vector's components to the minimum of itself and other.
func (v Vector4) SetMin(other Vector4) {
	v[0] = Min(v[0], other[0])
	v[1] = Min(v[1], other[1])
	v[2] = Min(v[2], other[2])
	v[3] = Min(v[3], other[3])
}

// Max returns the component-wise maximum of this vector and other.
func (v Vector4) Max(other Vector4) Vector4 {
	return Vector4{
		Max(v[0], other[0]),
		Max(v[1], other[1]),
		Max(v[2], other[2]),
		Max(v[3], other[3]),
	}
}

// SetMax sets this vector's components to the maximum of itself and other.
func (v Vector4) SetMax(other Vector4) {
	v[0] = Max(v[0], other[0])
	v[1] = Max(v[1], other[1])
	v[2] = Max(v[2], other[2])
	v[3] = Max(v[3], other[3])
}

// Clamp returns this vector with each component clamped to the
// corresponding components of lo and hi. Assumes lo < hi.
func (v Vector4) Clamp(lo, hi Vector4) Vector4 {
	return Vector4{
		Clamp(v[0], lo[0], hi[0]),
		Clamp(v[1], lo[1], hi[1]),
		Clamp(v[2], lo[2], hi[2]),
		Clamp(v[3], lo[3], hi[3]),
	}
}

// ClampScalar returns this vector with each component clamped to [lo, hi].
func (v Vector4) ClampScalar(lo, hi float32) Vector4 {
	return Vector4{
		Clamp(v[0], lo, hi),
		Clamp(v[1], lo, hi),
		Clamp(v[2], lo, hi),
		Clamp(v[3], lo, hi),
	}
}

// Step returns the per-component [Step] of this vector across the
// corresponding edge components.
func (v Vector4) Step(edges Vector4) Vector4 {
	return Vector4{
		Step(edges[0], v[0]),
		Step(edges[1], v[1]),
		Step(edges[2], v[2]),
		Step(edges[3], v[3]),
	}
}

// StepScalar returns the per-component [Step] of this vector across edge.
func (v Vector4) StepScalar(edge float32) Vector4 {
	return Vector4{Step(edge, v[0]), Step(edge, v[1]), Step(edge, v[2]), Step(edge, v[3])}
}

// SmoothStep returns the per-component [SmoothStep] of this vector across
// the corresponding lo/hi components.
func (v Vector4) SmoothStep(lo, hi Vector4) Vector4 {
	return Vector4{
		SmoothStep(lo[0], hi[0], v[0]),
		SmoothStep(lo[1], hi[1], v[1]),
		SmoothStep(lo[2], hi[2], v[2]),
		SmoothStep(lo[3], hi[3], v[3]),
	}
}

// SmoothStepScalar returns the per-component [SmoothStep] of this vector
// across [lo, hi].
func (v Vector4) SmoothStepScalar(lo, hi float32) Vector4 {
	return Vector4{
		SmoothStep(lo, hi, v[0]),
		SmoothStep(lo, hi, v[1]),
		SmoothStep(lo, hi, v[2]),
		SmoothStep(lo, hi, v[3]),
	}
}

// Equality and serialization:

// Equals reports whether this vector is exactly component-wise equal to other.
func (v Vector4) Equals(other Vector4) bool {
	return v[0] == other[0] && v[1] == other[1] && v[2] == other[2] && v[3] == other[3]
}

// EqualsRounded reports whether this vector equals other after rounding
// each per-component difference to the given number of decimal fraction
// digits: components compare equal iff their difference rounds to zero.
func (v Vector4) EqualsRounded(other Vector4, digits int) bool {
	return equalsRounded(v, other, digits)
}

// Rounded returns this vector with each component rounded to the given
// number of decimal fraction digits.
func (v Vector4) Rounded(digits int) Vector4 {
	n := NewVector4()
	roundedInto(n, v, digits)
	return n
}

// MarshalJSON encodes this vector as a flat JSON array [x, y, z, w].
func (v Vector4) MarshalJSON() ([]byte, error) {
	return marshalComponents(v)
}

// UnmarshalJSON decodes a flat JSON array of exactly four numbers into
// this vector, returning [ErrBadLength] otherwise. A nil vector is allocated.
func (v *Vector4) UnmarshalJSON(data []byte) error {
	if *v == nil {
		*v = NewVector4()
	}
	return unmarshalComponents(*v, data, Vector4Size)
}
