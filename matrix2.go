// Copyright 2025 The Vgmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgmath

// Matrix2 is a 2x2 matrix backed by a contiguous float32 buffer of length
// 4 in column-major order: the element at column x and row y is at index
// y + x*2. The value either owns its buffer exclusively or aliases a
// region of a caller-supplied buffer ([Matrix2View]).
type Matrix2 []float32

// Matrix2 dimensions.
const (
	Matrix2Columns = 2
	Matrix2Rows    = 2
	Matrix2Size    = Matrix2Columns * Matrix2Rows
)

// NewMatrix2 returns a new zero-filled [Matrix2] with an exclusively
// owned buffer.
func NewMatrix2() Matrix2 {
	return make(Matrix2, Matrix2Size)
}

// Identity2 returns a new [Matrix2] set to the identity matrix.
func Identity2() Matrix2 {
	return Matrix2{
		1, 0,
		0, 1,
	}
}

// Mat2 returns a new [Matrix2] with the given components in column-major
// order.
func Mat2(v0, v1, v2, v3 float32) Matrix2 {
	return Matrix2{v0, v1, v2, v3}
}

// Matrix2View returns a [Matrix2] aliasing the four floats of buf
// starting at offset. Returns [ErrOutOfBounds] if the region does not fit.
func Matrix2View(buf []float32, offset int) (Matrix2, error) {
	s, err := view(buf, offset, Matrix2Size)
	if err != nil {
		return nil, err
	}
	return Matrix2(s), nil
}

// Matrix2FromSlice returns a new [Matrix2] copying four components from
// vals starting at offset.
func Matrix2FromSlice(vals []float32, offset int) (Matrix2, error) {
	if err := sliceCheck(vals, offset, Matrix2Size); err != nil {
		return nil, err
	}
	m := NewMatrix2()
	copy(m, vals[offset:offset+Matrix2Size])
	return m, nil
}

// Matrix2FromMatrix3 returns a new [Matrix2] keeping the upper-left 2x2
// block of the given 3x3 matrix.
func Matrix2FromMatrix3(o Matrix3) Matrix2 {
	return Matrix2{
		o[0], o[1],
		o[3], o[4],
	}
}

// Matrix2FromMatrix4 returns a new [Matrix2] keeping the upper-left 2x2
// block of the given 4x4 matrix.
func Matrix2FromMatrix4(o Matrix4) Matrix2 {
	return Matrix2{
		o[0], o[1],
		o[4], o[5],
	}
}

// Columns returns the number of columns (2).
func (m Matrix2) Columns() int { return Matrix2Columns }

// Rows returns the number of rows (2).
func (m Matrix2) Rows() int { return Matrix2Rows }

// At returns the element at column x and row y.
func (m Matrix2) At(x, y int) float32 {
	return m[y+x*Matrix2Rows]
}

// SetAt sets the element at column x and row y.
func (m Matrix2) SetAt(x, y int, value float32) {
	m[y+x*Matrix2Rows] = value
}

// Set sets all components in column-major order.
func (m Matrix2) Set(v0, v1, v2, v3 float32) {
	m[0] = v0
	m[1] = v1
	m[2] = v2
	m[3] = v3
}

// SetIdentity overwrites this matrix with the identity matrix in place.
func (m Matrix2) SetIdentity() {
	m.Set(
		1, 0,
		0, 1,
	)
}

// IsIdentity reports whether this matrix exactly matches the identity
// pattern. The comparison is exact, not tolerance-based.
func (m Matrix2) IsIdentity() bool {
	return m[0] == 1 && m[1] == 0 &&
		m[2] == 0 && m[3] == 1
}

// Clone returns a copy of this matrix with a freshly owned buffer.
func (m Matrix2) Clone() Matrix2 {
	n := NewMatrix2()
	copy(n, m)
	return n
}

// FromSlice sets this matrix's components from the given slice, starting at offset.
func (m Matrix2) FromSlice(vals []float32, offset int) error {
	if err := sliceCheck(vals, offset, Matrix2Size); err != nil {
		return err
	}
	copy(m, vals[offset:offset+Matrix2Size])
	return nil
}

// ToSlice copies this matrix's components to the given slice, starting at offset.
func (m Matrix2) ToSlice(vals []float32, offset int) {
	copy(vals[offset:], m)
}

func (m Matrix2) String() string {
	return formatComponents(m, DefaultFractionDigits)
}

// StringRounded is like String with the given number of fraction digits.
func (m Matrix2) StringRounded(digits int) string {
	return formatComponents(m, digits)
}

// Component arithmetic:

// Add adds the other matrix component-wise and returns a new matrix.
func (m Matrix2) Add(other Matrix2) Matrix2 {
	return Matrix2{m[0] + other[0], m[1] + other[1], m[2] + other[2], m[3] + other[3]}
}

// AddScalar adds scalar s to each component and returns a new matrix.
func (m Matrix2) AddScalar(s float32) Matrix2 {
	return Matrix2{m[0] + s, m[1] + s, m[2] + s, m[3] + s}
}

// SetAdd adds the other matrix component-wise in place.
func (m Matrix2) SetAdd(other Matrix2) {
	m[0] += other[0]
	m[1] += other[1]
	m[2] += other[2]
	m[3] += other[3]
}

// SetAddScalar adds scalar s to each component in place.
func (m Matrix2) SetAddScalar(s float32) {
	m[0] += s
	m[1] += s
	m[2] += s
	m[3] += s
}

// Sub subtracts the other matrix component-wise and returns a new matrix.
func (m Matrix2) Sub(other Matrix2) Matrix2 {
	return Matrix2{m[0] - other[0], m[1] - other[1], m[2] - other[2], m[3] - other[3]}
}

// SubScalar subtracts scalar s from each component and returns a new matrix.
func (m Matrix2) SubScalar(s float32) Matrix2 {
	return Matrix2{m[0] - s, m[1] - s, m[2] - s, m[3] - s}
}

// SetSub subtracts the other matrix component-wise in place.
func (m Matrix2) SetSub(other Matrix2) {
	m[0] -= other[0]
	m[1] -= other[1]
	m[2] -= other[2]
	m[3] -= other[3]
}

// SetSubScalar subtracts scalar s from each component in place.
func (m Matrix2) SetSubScalar(s float32) {
	m[0] -= s
	m[1] -= s
	m[2] -= s
	m[3] -= s
}

// MulComponents multiplies the matrices component-wise and returns a new
// matrix. This is not the matrix product; see [Matrix2.Mul].
func (m Matrix2) MulComponents(other Matrix2) Matrix2 {
	return Matrix2{m[0] * other[0], m[1] * other[1], m[2] * other[2], m[3] * other[3]}
}

// MulScalar multiplies each component by scalar s and returns a new matrix.
func (m Matrix2) MulScalar(s float32) Matrix2 {
	return Matrix2{m[0] * s, m[1] * s, m[2] * s, m[3] * s}
}

// SetMulComponents multiplies the matrices component-wise in place.
func (m Matrix2) SetMulComponents(other Matrix2) {
	m[0] *= other[0]
	m[1] *= other[1]
	m[2] *= other[2]
	m[3] *= other[3]
}

// SetMulScalar multiplies each component by scalar s in place.
func (m Matrix2) SetMulScalar(s float32) {
	m[0] *= s
	m[1] *= s
	m[2] *= s
	m[3] *= s
}

// DivComponents divides the matrices component-wise and returns a new matrix.
func (m Matrix2) DivComponents(other Matrix2) Matrix2 {
	return Matrix2{m[0] / other[0], m[1] / other[1], m[2] / other[2], m[3] / other[3]}
}

// DivScalar divides each component by scalar s and returns a new matrix.
func (m Matrix2) DivScalar(s float32) Matrix2 {
	return Matrix2{m[0] / s, m[1] / s, m[2] / s, m[3] / s}
}

// SetDivComponents divides the matrices component-wise in place.
func (m Matrix2) SetDivComponents(other Matrix2) {
	m[0] /= other[0]
	m[1] /= other[1]
	m[2] /= other[2]
	m[3] /= other[3]
}

// SetDivScalar divides each component by scalar s in place.
func (m Matrix2) SetDivScalar(s float32) {
	m[0] /= s
	m[1] /= s
	m[2] /= s
	m[3] /= s
}

// Negate returns the matrix with each component negated.
func (m Matrix2) Negate() Matrix2 {
	return Matrix2{-m[0], -m[1], -m[2], -m[3]}
}

// SetNegate negates each component in place.
func (m Matrix2) SetNegate() {
	m[0] = -m[0]
	m[1] = -m[1]
	m[2] = -m[2]
	m[3] = -m[3]
}

// Linear algebra:

// Mul returns the matrix product m × other as a new matrix.
func (m Matrix2) Mul(other Matrix2) Matrix2 {
	n := NewMatrix2()
	n.MulMatrices(m, other)
	return n
}

// SetMul sets this matrix to the product m × other in place.
func (m Matrix2) SetMul(other Matrix2) {
	m.MulMatrices(m, other)
}

// MulMatrices sets this matrix to the product a × b, avoiding allocation.
// The receiver may alias a or b.
func (m Matrix2) MulMatrices(a, b Matrix2) {
	a0, a1, a2, a3 := a[0], a[1], a[2], a[3]
	b0, b1, b2, b3 := b[0], b[1], b[2], b[3]
	m[0] = a0*b0 + a2*b1
	m[1] = a1*b0 + a3*b1
	m[2] = a0*b2 + a2*b3
	m[3] = a1*b2 + a3*b3
}

// MulVector2 returns the given vector multiplied by this matrix.
func (m Matrix2) MulVector2(v Vector2) Vector2 {
	return v.MulMatrix2(m)
}

// Determinant returns the determinant of this matrix.
func (m Matrix2) Determinant() float32 {
	return m[0]*m[3] - m[2]*m[1]
}

// Adjugate returns the adjugate (transpose of the cofactor matrix) as a
// new matrix. Dividing it by the determinant yields the inverse.
func (m Matrix2) Adjugate() Matrix2 {
	return Matrix2{m[3], -m[1], -m[2], m[0]}
}

// SetAdjugate sets this matrix to its adjugate in place.
func (m Matrix2) SetAdjugate() {
	m[0], m[1], m[2], m[3] = m[3], -m[1], -m[2], m[0]
}

// Inverse returns the inverse of this matrix as a new matrix. A singular
// matrix produces NaN/Inf components rather than an error.
func (m Matrix2) Inverse() Matrix2 {
	n := m.Clone()
	n.Invert()
	return n
}

// Invert inverts this matrix in place by dividing the adjugate by the
// determinant. A singular matrix produces NaN/Inf components rather than
// an error.
func (m Matrix2) Invert() {
	det := m[0]*m[3] - m[2]*m[1]
	m[0], m[1], m[2], m[3] = m[3]/det, -m[1]/det, -m[2]/det, m[0]/det
}

// Div returns the product m × other⁻¹ as a new matrix, substituting the
// other matrix's cofactor terms directly rather than materializing a
// separate inverse.
func (m Matrix2) Div(other Matrix2) Matrix2 {
	n := m.Clone()
	n.SetDiv(other)
	return n
}

// SetDiv sets this matrix to the product m × other⁻¹ in place.
func (m Matrix2) SetDiv(other Matrix2) {
	det := other[0]*other[3] - other[2]*other[1]
	a0, a1, a2, a3 := m[0], m[1], m[2], m[3]
	m[0] = (a0*other[3] - a2*other[1]) / det
	m[1] = (a1*other[3] - a3*other[1]) / det
	m[2] = (a2*other[0] - a0*other[2]) / det
	m[3] = (a3*other[0] - a1*other[2]) / det
}

// Transpose returns the transpose of this matrix as a new matrix.
func (m Matrix2) Transpose() Matrix2 {
	return Matrix2{m[0], m[2], m[1], m[3]}
}

// SetTranspose transposes this matrix in place.
func (m Matrix2) SetTranspose() {
	m[1], m[2] = m[2], m[1]
}

// Transforms:

// Rotate rotates this matrix in place by the given angle in radians:
// m = m × rotation(angle).
func (m Matrix2) Rotate(angle float32) {
	sin, cos := Sincos(angle)
	m0, m1, m2, m3 := m[0], m[1], m[2], m[3]
	m[0] = m0*cos + m2*sin
	m[1] = m1*cos + m3*sin
	m[2] = m2*cos - m0*sin
	m[3] = m3*cos - m1*sin
}

// Scale scales this matrix in place by the given per-axis factors:
// m = m × scaling(x, y).
func (m Matrix2) Scale(x, y float32) {
	m[0] *= x
	m[1] *= x
	m[2] *= y
	m[3] *= y
}

// Equality and serialization:

// Equals reports whether this matrix is exactly component-wise equal to other.
func (m Matrix2) Equals(other Matrix2) bool {
	return m[0] == other[0] && m[1] == other[1] && m[2] == other[2] && m[3] == other[3]
}

// EqualsRounded reports whether this matrix equals other after rounding
// each per-component difference to the given number of decimal fraction
// digits.
func (m Matrix2) EqualsRounded(other Matrix2, digits int) bool {
	return equalsRounded(m, other, digits)
}

// Rounded returns this matrix with each component rounded to the given
// number of decimal fraction digits.
func (m Matrix2) Rounded(digits int) Matrix2 {
	n := NewMatrix2()
	roundedInto(n, m, digits)
	return n
}

// MarshalJSON encodes this matrix as a flat JSON array in column-major order.
func (m Matrix2) MarshalJSON() ([]byte, error) {
	return marshalComponents(m)
}

// UnmarshalJSON decodes a flat JSON array of exactly four numbers into
// this matrix, returning [ErrBadLength] otherwise. A nil matrix is allocated.
func (m *Matrix2) UnmarshalJSON(data []byte) error {
	if *m == nil {
		*m = NewMatrix2()
	}
	return unmarshalComponents(*m, data, Matrix2Size)
}
