// Copyright 2025 The Vgmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgmath

// Matrix2x3 is a rectangular matrix with 2 columns and 3 rows, backed by
// a contiguous float32 buffer of length 6 in column-major order: the
// element at column x and row y is at index y + x*3. Being non-square
// it carries no determinant or inverse.
type Matrix2x3 []float32

// Matrix2x3 dimensions.
const (
	Matrix2x3Columns = 2
	Matrix2x3Rows    = 3
	Matrix2x3Size    = Matrix2x3Columns * Matrix2x3Rows
)

// NewMatrix2x3 returns a new zero-filled [Matrix2x3] with an exclusively
// owned buffer.
func NewMatrix2x3() Matrix2x3 {
	return make(Matrix2x3, Matrix2x3Size)
}

// Mat2x3 returns a new [Matrix2x3] with the given components in
// column-major order.
func Mat2x3(v0, v1, v2, v3, v4, v5 float32) Matrix2x3 {
	return Matrix2x3{v0, v1, v2, v3, v4, v5}
}

// Matrix2x3View returns a [Matrix2x3] aliasing the six floats of buf
// starting at offset. Returns [ErrOutOfBounds] if the region does not fit.
func Matrix2x3View(buf []float32, offset int) (Matrix2x3, error) {
	s, err := view(buf, offset, Matrix2x3Size)
	if err != nil {
		return nil, err
	}
	return Matrix2x3(s), nil
}

// Matrix2x3FromSlice returns a new [Matrix2x3] copying six components
// from vals starting at offset.
func Matrix2x3FromSlice(vals []float32, offset int) (Matrix2x3, error) {
	if err := sliceCheck(vals, offset, Matrix2x3Size); err != nil {
		return nil, err
	}
	m := NewMatrix2x3()
	copy(m, vals[offset:offset+Matrix2x3Size])
	return m, nil
}

// Matrix2x3FromMatrix2 returns a new [Matrix2x3] with the top 2x2 block
// taken from the given matrix and the extra row padded from the identity
// matrix (zeros).
func Matrix2x3FromMatrix2(o Matrix2) Matrix2x3 {
	return Matrix2x3{
		o[0], o[1], 0,
		o[2], o[3], 0,
	}
}

// Matrix2x3FromMatrix3 returns a new [Matrix2x3] keeping the first two
// columns of the given 3x3 matrix.
func Matrix2x3FromMatrix3(o Matrix3) Matrix2x3 {
	return Matrix2x3{
		o[0], o[1], o[2],
		o[3], o[4], o[5],
	}
}

// Matrix2x3FromMatrix4 returns a new [Matrix2x3] keeping the first two
// columns and first three rows of the given 4x4 matrix.
func Matrix2x3FromMatrix4(o Matrix4) Matrix2x3 {
	return Matrix2x3{
		o[0], o[1], o[2],
		o[4], o[5], o[6],
	}
}

// Matrix2x3FromMatrix3x2 returns a new [Matrix2x3] keeping the
// overlapping 2x2 block of the given 2-row matrix and padding the
// missing third row from the identity matrix.
func Matrix2x3FromMatrix3x2(o Matrix3x2) Matrix2x3 {
	return Matrix2x3{
		o[0], o[1], 0,
		o[2], o[3], 0,
	}
}

// Columns returns the number of columns (2).
func (m Matrix2x3) Columns() int { return Matrix2x3Columns }

// Rows returns the number of rows (3).
func (m Matrix2x3) Rows() int { return Matrix2x3Rows }

// At returns the element at column x and row y.
func (m Matrix2x3) At(x, y int) float32 {
	return m[y+x*Matrix2x3Rows]
}

// SetAt sets the element at column x and row y.
func (m Matrix2x3) SetAt(x, y int, value float32) {
	m[y+x*Matrix2x3Rows] = value
}

// Set sets all components in column-major order.
func (m Matrix2x3) Set(v0, v1, v2, v3, v4, v5 float32) {
	m[0] = v0
	m[1] = v1
	m[2] = v2
	m[3] = v3
	m[4] = v4
	m[5] = v5
}

// Clone returns a copy of this matrix with a freshly owned buffer.
func (m Matrix2x3) Clone() Matrix2x3 {
	n := NewMatrix2x3()
	copy(n, m)
	return n
}

// FromSlice sets this matrix's components from the given slice, starting at offset.
func (m Matrix2x3) FromSlice(vals []float32, offset int) error {
	if err := sliceCheck(vals, offset, Matrix2x3Size); err != nil {
		return err
	}
	copy(m, vals[offset:offset+Matrix2x3Size])
	return nil
}

// ToSlice copies this matrix's components to the given slice, starting at offset.
func (m Matrix2x3) ToSlice(vals []float32, offset int) {
	copy(vals[offset:], m)
}

func (m Matrix2x3) String() string {
	return formatComponents(m, DefaultFractionDigits)
}

// StringRounded is like String with the given number of fraction digits.
func (m Matrix2x3) StringRounded(digits int) string {
	return formatComponents(m, digits)
}

// Add adds the other matrix component-wise and returns a new matrix.
func (m Matrix2x3) Add(other Matrix2x3) Matrix2x3 {
	n := NewMatrix2x3()
	for i := range m {
		n[i] = m[i] + other[i]
	}
	return n
}

// AddScalar adds scalar s to each component and returns a new matrix.
func (m Matrix2x3) AddScalar(s float32) Matrix2x3 {
	n := NewMatrix2x3()
	for i := range m {
		n[i] = m[i] + s
	}
	return n
}

// SetAdd adds the other matrix component-wise in place.
func (m Matrix2x3) SetAdd(other Matrix2x3) {
	for i := range m {
		m[i] += other[i]
	}
}

// SetAddScalar adds scalar s to each component in place.
func (m Matrix2x3) SetAddScalar(s float32) {
	for i := range m {
		m[i] += s
	}
}

// Sub subtracts the other matrix component-wise and returns a new matrix.
func (m Matrix2x3) Sub(other Matrix2x3) Matrix2x3 {
	n := NewMatrix2x3()
	for i := range m {
		n[i] = m[i] - other[i]
	}
	return n
}

// SubScalar subtracts scalar s from each component and returns a new matrix.
func (m Matrix2x3) SubScalar(s float32) Matrix2x3 {
	n := NewMatrix2x3()
	for i := range m {
		n[i] = m[i] - s
	}
	return n
}

// SetSub subtracts the other matrix component-wise in place.
func (m Matrix2x3) SetSub(other Matrix2x3) {
	for i := range m {
		m[i] -= other[i]
	}
}

// SetSubScalar subtracts scalar s from each component in place.
func (m Matrix2x3) SetSubScalar(s float32) {
	for i := range m {
		m[i] -= s
	}
}

// MulComponents multiplies the matrices component-wise and returns a new matrix.
func (m Matrix2x3) MulComponents(other Matrix2x3) Matrix2x3 {
	n := NewMatrix2x3()
	for i := range m {
		n[i] = m[i] * other[i]
	}
	return n
}

// MulScalar multiplies each component by scalar s and returns a new matrix.
func (m Matrix2x3) MulScalar(s float32) Matrix2x3 {
	n := NewMatrix2x3()
	for i := range m {
		n[i] = m[i] * s
	}
	return n
}

// SetMulComponents multiplies the matrices component-wise in place.
func (m Matrix2x3) SetMulComponents(other Matrix2x3) {
	for i := range m {
		m[i] *= other[i]
	}
}

// SetMulScalar multiplies each component by scalar s in place.
func (m Matrix2x3) SetMulScalar(s float32) {
	for i := range m {
		m[i] *= s
	}
}

// DivComponents divides the matrices component-wise and returns a new matrix.
func (m Matrix2x3) DivComponents(other Matrix2x3) Matrix2x3 {
	n := NewMatrix2x3()
	for i := range m {
		n[i] = m[i] / other[i]
	}
	return n
}

// DivScalar divides each component by scalar s and returns a new matrix.
func (m Matrix2x3) DivScalar(s float32) Matrix2x3 {
	n := NewMatrix2x3()
	for i := range m {
		n[i] = m[i] / s
	}
	return n
}

// SetDivComponents divides the matrices component-wise in place.
func (m Matrix2x3) SetDivComponents(other Matrix2x3) {
	for i := range m {
		m[i] /= other[i]
	}
}

// SetDivScalar divides each component by scalar s in place.
func (m Matrix2x3) SetDivScalar(s float32) {
	for i := range m {
		m[i] /= s
	}
}

// Negate returns the matrix with each component negated.
func (m Matrix2x3) Negate() Matrix2x3 {
	n := NewMatrix2x3()
	for i := range m {
		n[i] = -m[i]
	}
	return n
}

// SetNegate negates each component in place.
func (m Matrix2x3) SetNegate() {
	for i := range m {
		m[i] = -m[i]
	}
}

// MulVector2 returns the given 2D vector multiplied by this matrix,
// yielding a 3D vector.
func (m Matrix2x3) MulVector2(v Vector2) Vector3 {
	return Vector3{
		m[0]*v[0] + m[3]*v[1],
		m[1]*v[0] + m[4]*v[1],
		m[2]*v[0] + m[5]*v[1],
	}
}

// Transpose returns the transpose of this matrix as a new [Matrix3x2].
func (m Matrix2x3) Transpose() Matrix3x2 {
	return Matrix3x2{
		m[0], m[3],
		m[1], m[4],
		m[2], m[5],
	}
}

// Equals reports whether this matrix is exactly component-wise equal to other.
func (m Matrix2x3) Equals(other Matrix2x3) bool {
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
func (m Matrix2x3) EqualsRounded(other Matrix2x3, digits int) bool {
	return equalsRounded(m, other, digits)
}

// Rounded returns this matrix with each component rounded to the given
// number of decimal fraction digits.
func (m Matrix2x3) Rounded(digits int) Matrix2x3 {
	n := NewMatrix2x3()
	roundedInto(n, m, digits)
	return n
}

// MarshalJSON encodes this matrix as a flat JSON array in column-major order.
func (m Matrix2x3) MarshalJSON() ([]byte, error) {
	return marshalComponents(m)
}

// UnmarshalJSON decodes a flat JSON array of exactly six numbers into
// this matrix, returning [ErrBadLength] otherwise. A nil matrix is allocated.
func (m *Matrix2x3) UnmarshalJSON(data []byte) error {
	if *m == nil {
		*m = NewMatrix2x3()
	}
	return unmarshalComponents(*m, data, Matrix2x3Size)
}
