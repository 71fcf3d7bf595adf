// Copyright 2025 The Vgmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgmath

// Matrix4 is a 4x4 matrix backed by a contiguous float32 buffer of length
// 16 in column-major order: the element at column x and row y is at index
// y + x*4. It is the homogeneous matrix for 3D transforms. The value
// either owns its buffer exclusively or aliases a region of a
// caller-supplied buffer ([Matrix4View]).
type Matrix4 []float32

// Matrix4 dimensions.
const (
	Matrix4Columns = 4
	Matrix4Rows    = 4
	Matrix4Size    = Matrix4Columns * Matrix4Rows
)

// NewMatrix4 returns a new zero-filled [Matrix4] with an exclusively
// owned buffer.
func NewMatrix4() Matrix4 {
	return make(Matrix4, Matrix4Size)
}

// Identity4 returns a new [Matrix4] set to the identity matrix.
func Identity4() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mat4 returns a new [Matrix4] with the given components in column-major
// order.
func Mat4(v0, v1, v2, v3, v4, v5, v6, v7, v8, v9, v10, v11, v12, v13, v14, v15 float32) Matrix4 {
	return Matrix4{v0, v1, v2, v3, v4, v5, v6, v7, v8, v9, v10, v11, v12, v13, v14, v15}
}

// Matrix4View returns a [Matrix4] aliasing the sixteen floats of buf
// starting at offset. Returns [ErrOutOfBounds] if the region does not fit.
func Matrix4View(buf []float32, offset int) (Matrix4, error) {
	s, err := view(buf, offset, Matrix4Size)
	if err != nil {
		return nil, err
	}
	return Matrix4(s), nil
}

// Matrix4FromSlice returns a new [Matrix4] copying sixteen components
// from vals starting at offset.
func Matrix4FromSlice(vals []float32, offset int) (Matrix4, error) {
	if err := sliceCheck(vals, offset, Matrix4Size); err != nil {
		return nil, err
	}
	m := NewMatrix4()
	copy(m, vals[offset:offset+Matrix4Size])
	return m, nil
}

// Matrix4FromMatrix2 returns a new [Matrix4] with the upper-left block
// taken from the given 2x2 matrix and the missing rows and columns
// padded from the identity matrix.
func Matrix4FromMatrix2(o Matrix2) Matrix4 {
	return Matrix4{
		o[0], o[1], 0, 0,
		o[2], o[3], 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Matrix4FromMatrix3 returns a new [Matrix4] with the upper-left block
// taken from the given 3x3 matrix and the missing row and column padded
// from the identity matrix.
func Matrix4FromMatrix3(o Matrix3) Matrix4 {
	return Matrix4{
		o[0], o[1], o[2], 0,
		o[3], o[4], o[5], 0,
		o[6], o[7], o[8], 0,
		0, 0, 0, 1,
	}
}

// Columns returns the number of columns (4).
func (m Matrix4) Columns() int { return Matrix4Columns }

// Rows returns the number of rows (4).
func (m Matrix4) Rows() int { return Matrix4Rows }

// At returns the element at column x and row y.
func (m Matrix4) At(x, y int) float32 {
	return m[y+x*Matrix4Rows]
}

// SetAt sets the element at column x and row y.
func (m Matrix4) SetAt(x, y int, value float32) {
	m[y+x*Matrix4Rows] = value
}

// Set sets all components in column-major order.
func (m Matrix4) Set(v0, v1, v2, v3, v4, v5, v6, v7, v8, v9, v10, v11, v12, v13, v14, v15 float32) {
	m[0] = v0
	m[1] = v1
	m[2] = v2
	m[3] = v3
	m[4] = v4
	m[5] = v5
	m[6] = v6
	m[7] = v7
	m[8] = v8
	m[9] = v9
	m[10] = v10
	m[11] = v11
	m[12] = v12
	m[13] = v13
	m[14] = v14
	m[15] = v15
}

// SetIdentity overwrites this matrix with the identity matrix in place.
func (m Matrix4) SetIdentity() {
	m.Set(
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// IsIdentity reports whether this matrix exactly matches the identity
// pattern. The comparison is exact, not tolerance-based.
func (m Matrix4) IsIdentity() bool {
	for x := 0; x < Matrix4Columns; x++ {
		for y := 0; y < Matrix4Rows; y++ {
			want := float32(0)
			if x == y {
				want = 1
			}
			if m.At(x, y) != want {
				return false
			}
		}
	}
	return true
}

// Clone returns a copy of this matrix with a freshly owned buffer.
func (m Matrix4) Clone() Matrix4 {
	n := NewMatrix4()
	copy(n, m)
	return n
}

// FromSlice sets this matrix's components from the given slice, starting at offset.
func (m Matrix4) FromSlice(vals []float32, offset int) error {
	if err := sliceCheck(vals, offset, Matrix4Size); err != nil {
		return err
	}
	copy(m, vals[offset:offset+Matrix4Size])
	return nil
}

// ToSlice copies this matrix's components to the given slice, starting at offset.
func (m Matrix4) ToSlice(vals []float32, offset int) {
	copy(vals[offset:], m)
}

func (m Matrix4) String() string {
	return formatComponents(m, DefaultFractionDigits)
}

// StringRounded is like String with the given number of fraction digits.
func (m Matrix4) StringRounded(digits int) string {
	return formatComponents(m, digits)
}

// Component arithmetic:

// Add adds the other matrix component-wise and returns a new matrix.
func (m Matrix4) Add(other Matrix4) Matrix4 {
	n := NewMatrix4()
	for i := range m {
		n[i] = m[i] + other[i]
	}
	return n
}

// AddScalar adds scalar s to each component and returns a new matrix.
func (m Matrix4) AddScalar(s float32) Matrix4 {
	n := NewMatrix4()
	for i := range m {
		n[i] = m[i] + s
	}
	return n
}

// SetAdd adds the other matrix component-wise in place.
func (m Matrix4) SetAdd(other Matrix4) {
	for i := range m {
		m[i] += other[i]
	}
}

// SetAddScalar adds scalar s to each component in place.
func (m Matrix4) SetAddScalar(s float32) {
	for i := range m {
		m[i] += s
	}
}

// Sub subtracts the other matrix component-wise and returns a new matrix.
func (m Matrix4) Sub(other Matrix4) Matrix4 {
	n := NewMatrix4()
	for i := range m {
		n[i] = m[i] - other[i]
	}
	return n
}

// SubScalar subtracts scalar s from each component and returns a new matrix.
func (m Matrix4) SubScalar(s float32) Matrix4 {
	n := NewMatrix4()
	for i := range m {
		n[i] = m[i] - s
	}
	return n
}

// SetSub subtracts the other matrix component-wise in place.
func (m Matrix4) SetSub(other Matrix4) {
	for i := range m {
		m[i] -= other[i]
	}
}

// SetSubScalar subtracts scalar s from each component in place.
func (m Matrix4) SetSubScalar(s float32) {
	for i := range m {
		m[i] -= s
	}
}

// MulComponents multiplies the matrices component-wise and returns a new
// matrix. This is not the matrix product; see [Matrix4.Mul].
func (m Matrix4) MulComponents(other Matrix4) Matrix4 {
	n := NewMatrix4()
	for i := range m {
		n[i] = m[i] * other[i]
	}
	return n
}

// MulScalar multiplies each component by scalar s and returns a new matrix.
func (m Matrix4) MulScalar(s float32) Matrix4 {
	n := NewMatrix4()
	for i := range m {
		n[i] = m[i] * s
	}
	return n
}

// SetMulComponents multiplies the matrices component-wise in place.
func (m Matrix4) SetMulComponents(other Matrix4) {
	for i := range m {
		m[i] *= other[i]
	}
}

// SetMulScalar multiplies each component by scalar s in place.
func (m Matrix4) SetMulScalar(s float32) {
	for i := range m {
		m[i] *= s
	}
}

// DivComponents divides the matrices component-wise and returns a new matrix.
func (m Matrix4) DivComponents(other Matrix4) Matrix4 {
	n := NewMatrix4()
	for i := range m {
		n[i] = m[i] / other[i]
	}
	return n
}

// DivScalar divides each component by scalar s and returns a new matrix.
func (m Matrix4) DivScalar(s float32) Matrix4 {
	n := NewMatrix4()
	for i := range m {
		n[i] = m[i] / s
	}
	return n
}

// SetDivComponents divides the matrices component-wise in place.
func (m Matrix4) SetDivComponents(other Matrix4) {
	for i := range m {
		m[i] /= other[i]
	}
}

// SetDivScalar divides each component by scalar s in place.
func (m Matrix4) SetDivScalar(s float32) {
	for i := range m {
		m[i] /= s
	}
}

// Negate returns the matrix with each component negated.
func (m Matrix4) Negate() Matrix4 {
	n := NewMatrix4()
	for i := range m {
		n[i] = -m[i]
	}
	return n
}

// SetNegate negates each component in place.
func (m Matrix4) SetNegate() {
	for i := range m {
		m[i] = -m[i]
	}
}

// Linear algebra:

// Mul returns the matrix product m × other as a new matrix.
func (m Matrix4) Mul(other Matrix4) Matrix4 {
	n := NewMatrix4()
	n.MulMatrices(m, other)
	return n
}

// SetMul sets this matrix to the product m × other in place.
func (m Matrix4) SetMul(other Matrix4) {
	m.MulMatrices(m, other)
}

// MulMatrices sets this matrix to the product a × b, avoiding allocation.
// The receiver may alias a or b.
func (m Matrix4) MulMatrices(a, b Matrix4) {
	a0, a1, a2, a3 := a[0], a[1], a[2], a[3]
	a4, a5, a6, a7 := a[4], a[5], a[6], a[7]
	a8, a9, a10, a11 := a[8], a[9], a[10], a[11]
	a12, a13, a14, a15 := a[12], a[13], a[14], a[15]

	for x := 0; x < Matrix4Columns; x++ {
		b0, b1, b2, b3 := b[x*4], b[x*4+1], b[x*4+2], b[x*4+3]
		m[x*4] = a0*b0 + a4*b1 + a8*b2 + a12*b3
		m[x*4+1] = a1*b0 + a5*b1 + a9*b2 + a13*b3
		m[x*4+2] = a2*b0 + a6*b1 + a10*b2 + a14*b3
		m[x*4+3] = a3*b0 + a7*b1 + a11*b2 + a15*b3
	}
}

// MulVector4 returns the given vector multiplied by this matrix.
func (m Matrix4) MulVector4(v Vector4) Vector4 {
	return v.MulMatrix4(m)
}

// MulVector3AsPoint returns the given 3D point transformed by this matrix
// as a homogeneous transform with an implicit w of 1, including the
// translation column.
func (m Matrix4) MulVector3AsPoint(v Vector3) Vector3 {
	return Vector3{
		m[0]*v[0] + m[4]*v[1] + m[8]*v[2] + m[12],
		m[1]*v[0] + m[5]*v[1] + m[9]*v[2] + m[13],
		m[2]*v[0] + m[6]*v[1] + m[10]*v[2] + m[14],
	}
}

// MulVector3AsVector returns the given 3D vector transformed by this
// matrix without translation (implicit w of 0).
func (m Matrix4) MulVector3AsVector(v Vector3) Vector3 {
	return Vector3{
		m[0]*v[0] + m[4]*v[1] + m[8]*v[2],
		m[1]*v[0] + m[5]*v[1] + m[9]*v[2],
		m[2]*v[0] + m[6]*v[1] + m[10]*v[2],
	}
}

// subDeterminants returns the twelve 2x2 sub-determinants shared by the
// determinant and the inverse: s from the top two rows, c from the
// bottom two.
func (m Matrix4) subDeterminants() (s0, s1, s2, s3, s4, s5, c0, c1, c2, c3, c4, c5 float32) {
	s0 = m[0]*m[5] - m[1]*m[4]
	s1 = m[0]*m[9] - m[1]*m[8]
	s2 = m[0]*m[13] - m[1]*m[12]
	s3 = m[4]*m[9] - m[5]*m[8]
	s4 = m[4]*m[13] - m[5]*m[12]
	s5 = m[8]*m[13] - m[9]*m[12]

	c0 = m[2]*m[7] - m[3]*m[6]
	c1 = m[2]*m[11] - m[3]*m[10]
	c2 = m[2]*m[15] - m[3]*m[14]
	c3 = m[6]*m[11] - m[7]*m[10]
	c4 = m[6]*m[15] - m[7]*m[14]
	c5 = m[10]*m[15] - m[11]*m[14]
	return
}

// Determinant returns the determinant of this matrix, pairing the 2x2
// sub-determinants of the top and bottom row pairs.
func (m Matrix4) Determinant() float32 {
	s0, s1, s2, s3, s4, s5, c0, c1, c2, c3, c4, c5 := m.subDeterminants()
	return s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0
}

// inverseTerms returns the components of the inverse in column-major
// order, sharing the 2x2 sub-determinants across all sixteen cofactors.
// A zero determinant yields NaN/Inf terms.
func (m Matrix4) inverseTerms() [Matrix4Size]float32 {
	s0, s1, s2, s3, s4, s5, c0, c1, c2, c3, c4, c5 := m.subDeterminants()
	det := s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0

	return [Matrix4Size]float32{
		(m[5]*c5 - m[9]*c4 + m[13]*c3) / det,
		(-m[1]*c5 + m[9]*c2 - m[13]*c1) / det,
		(m[1]*c4 - m[5]*c2 + m[13]*c0) / det,
		(-m[1]*c3 + m[5]*c1 - m[9]*c0) / det,

		(-m[4]*c5 + m[8]*c4 - m[12]*c3) / det,
		(m[0]*c5 - m[8]*c2 + m[12]*c1) / det,
		(-m[0]*c4 + m[4]*c2 - m[12]*c0) / det,
		(m[0]*c3 - m[4]*c1 + m[8]*c0) / det,

		(m[7]*s5 - m[11]*s4 + m[15]*s3) / det,
		(-m[3]*s5 + m[11]*s2 - m[15]*s1) / det,
		(m[3]*s4 - m[7]*s2 + m[15]*s0) / det,
		(-m[3]*s3 + m[7]*s1 - m[11]*s0) / det,

		(-m[6]*s5 + m[10]*s4 - m[14]*s3) / det,
		(m[2]*s5 - m[10]*s2 + m[14]*s1) / det,
		(-m[2]*s4 + m[6]*s2 - m[14]*s0) / det,
		(m[2]*s3 - m[6]*s1 + m[10]*s0) / det,
	}
}

// Adjugate returns the adjugate (transpose of the cofactor matrix) as a
// new matrix. Dividing it by the determinant yields the inverse.
func (m Matrix4) Adjugate() Matrix4 {
	s0, s1, s2, s3, s4, s5, c0, c1, c2, c3, c4, c5 := m.subDeterminants()

	return Matrix4{
		m[5]*c5 - m[9]*c4 + m[13]*c3,
		-m[1]*c5 + m[9]*c2 - m[13]*c1,
		m[1]*c4 - m[5]*c2 + m[13]*c0,
		-m[1]*c3 + m[5]*c1 - m[9]*c0,

		-m[4]*c5 + m[8]*c4 - m[12]*c3,
		m[0]*c5 - m[8]*c2 + m[12]*c1,
		-m[0]*c4 + m[4]*c2 - m[12]*c0,
		m[0]*c3 - m[4]*c1 + m[8]*c0,

		m[7]*s5 - m[11]*s4 + m[15]*s3,
		-m[3]*s5 + m[11]*s2 - m[15]*s1,
		m[3]*s4 - m[7]*s2 + m[15]*s0,
		-m[3]*s3 + m[7]*s1 - m[11]*s0,

		-m[6]*s5 + m[10]*s4 - m[14]*s3,
		m[2]*s5 - m[10]*s2 + m[14]*s1,
		-m[2]*s4 + m[6]*s2 - m[14]*s0,
		m[2]*s3 - m[6]*s1 + m[10]*s0,
	}
}

// SetAdjugate sets this matrix to its adjugate in place.
func (m Matrix4) SetAdjugate() {
	copy(m, m.Adjugate())
}

// Inverse returns the inverse of this matrix as a new matrix. A singular
// matrix produces NaN/Inf components rather than an error.
func (m Matrix4) Inverse() Matrix4 {
	i := m.inverseTerms()
	n := NewMatrix4()
	copy(n, i[:])
	return n
}

// Invert inverts this matrix in place by dividing the adjugate by the
// determinant, sharing the 2x2 sub-determinants. A singular matrix
// produces NaN/Inf components rather than an error.
func (m Matrix4) Invert() {
	i := m.inverseTerms()
	copy(m, i[:])
}

// Div returns the product m × other⁻¹ as a new matrix, substituting the
// other matrix's cofactor-based inverse terms directly rather than
// materializing a separate inverse matrix.
func (m Matrix4) Div(other Matrix4) Matrix4 {
	n := m.Clone()
	n.SetDiv(other)
	return n
}

// SetDiv sets this matrix to the product m × other⁻¹ in place.
func (m Matrix4) SetDiv(other Matrix4) {
	i := other.inverseTerms()
	m.MulMatrices(m, i[:])
}

// Transpose returns the transpose of this matrix as a new matrix.
func (m Matrix4) Transpose() Matrix4 {
	return Matrix4{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

// SetTranspose transposes this matrix in place by swapping all
// off-diagonal pairs.
func (m Matrix4) SetTranspose() {
	m[1], m[4] = m[4], m[1]
	m[2], m[8] = m[8], m[2]
	m[3], m[12] = m[12], m[3]
	m[6], m[9] = m[9], m[6]
	m[7], m[13] = m[13], m[7]
	m[11], m[14] = m[14], m[11]
}

// Transforms (3D homogeneous):

// Translate translates this matrix in place by the given 3D offset:
// m = m × translation(x, y, z).
func (m Matrix4) Translate(x, y, z float32) {
	m[12] += x*m[0] + y*m[4] + z*m[8]
	m[13] += x*m[1] + y*m[5] + z*m[9]
	m[14] += x*m[2] + y*m[6] + z*m[10]
	m[15] += x*m[3] + y*m[7] + z*m[11]
}

// Scale scales this matrix in place by the given per-axis factors:
// m = m × scaling(x, y, z).
func (m Matrix4) Scale(x, y, z float32) {
	m[0] *= x
	m[1] *= x
	m[2] *= x
	m[3] *= x
	m[4] *= y
	m[5] *= y
	m[6] *= y
	m[7] *= y
	m[8] *= z
	m[9] *= z
	m[10] *= z
	m[11] *= z
}

// Rotate rotates this matrix in place by the given angle in radians
// around the given axis, which must be normalized:
// m = m × rotation(angle, axis).
func (m Matrix4) Rotate(angle float32, axis Vector3) {
	sin, cos := Sincos(angle)
	t := 1 - cos
	x, y, z := axis[0], axis[1], axis[2]

	r := Matrix4{
		t*x*x + cos, t*x*y + sin*z, t*x*z - sin*y, 0,
		t*x*y - sin*z, t*y*y + cos, t*y*z + sin*x, 0,
		t*x*z + sin*y, t*y*z - sin*x, t*z*z + cos, 0,
		0, 0, 0, 1,
	}
	m.MulMatrices(m, r)
}

// RotateX rotates this matrix in place by the given angle in radians
// around the X axis.
func (m Matrix4) RotateX(angle float32) {
	sin, cos := Sincos(angle)
	m4, m5, m6, m7 := m[4], m[5], m[6], m[7]
	m[4] = m4*cos + m[8]*sin
	m[5] = m5*cos + m[9]*sin
	m[6] = m6*cos + m[10]*sin
	m[7] = m7*cos + m[11]*sin
	m[8] = m[8]*cos - m4*sin
	m[9] = m[9]*cos - m5*sin
	m[10] = m[10]*cos - m6*sin
	m[11] = m[11]*cos - m7*sin
}

// RotateY rotates this matrix in place by the given angle in radians
// around the Y axis.
func (m Matrix4) RotateY(angle float32) {
	sin, cos := Sincos(angle)
	m0, m1, m2, m3 := m[0], m[1], m[2], m[3]
	m[0] = m0*cos - m[8]*sin
	m[1] = m1*cos - m[9]*sin
	m[2] = m2*cos - m[10]*sin
	m[3] = m3*cos - m[11]*sin
	m[8] = m[8]*cos + m0*sin
	m[9] = m[9]*cos + m1*sin
	m[10] = m[10]*cos + m2*sin
	m[11] = m[11]*cos + m3*sin
}

// RotateZ rotates this matrix in place by the given angle in radians
// around the Z axis.
func (m Matrix4) RotateZ(angle float32) {
	sin, cos := Sincos(angle)
	m0, m1, m2, m3 := m[0], m[1], m[2], m[3]
	m[0] = m0*cos + m[4]*sin
	m[1] = m1*cos + m[5]*sin
	m[2] = m2*cos + m[6]*sin
	m[3] = m3*cos + m[7]*sin
	m[4] = m[4]*cos - m0*sin
	m[5] = m[5]*cos - m1*sin
	m[6] = m[6]*cos - m2*sin
	m[7] = m[7]*cos - m3*sin
}

// Equality and serialization:

// Equals reports whether this matrix is exactly component-wise equal to other.
func (m Matrix4) Equals(other Matrix4) bool {
	for i := range m {
		if m[i] != other[i] {
			return false
		}
	}
	return true
}

// EqualsRounded reports whether this matrix equals other after rounding
// each per-component difference to the given number of decimal fraction
// digits.
func (m Matrix4) EqualsRounded(other Matrix4, digits int) bool {
	return equalsRounded(m, other, digits)
}

// Rounded returns this matrix with each component rounded to the given
// number of decimal fraction digits.
func (m Matrix4) Rounded(digits int) Matrix4 {
	n := NewMatrix4()
	roundedInto(n, m, digits)
	return n
}

// MarshalJSON encodes this matrix as a flat JSON array in column-major order.
func (m Matrix4) MarshalJSON() ([]byte, error) {
	return marshalComponents(m)
}

// UnmarshalJSON decodes a flat JSON array of exactly sixteen numbers
// into this matrix, returning [ErrBadLength] otherwise. A nil matrix is
// allocated.
func (m *Matrix4) UnmarshalJSON(data []byte) error {
	if *m == nil {
		*m = NewMatrix4()
	}
	return unmarshalComponents(*m, data, Matrix4Size)
}
