// Copyright 2025 The Vgmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgmath

// Matrix3x2 is a rectangular matrix with 3 columns and 2 rows, backed by
// a contiguous float32 buffer of length 6 in column-major order: the
// element at column x and row y is at index y + x*2. It shares its
// layout with [AffineTransform], which adds the implicit third row.
// Being non-square it carries no determinant or inverse.
type Matrix3x2 []float32

// Matrix3x2 dimensions.
const (
	Matrix3x2Columns = 3
	Matrix3x2Rows    = 2
	Matrix3x2Size    = Matrix3x2Columns * Matrix3x2Rows
)

// NewMatrix3x2 returns a new zero-filled [Matrix3x2] with an exclusively
// owned buffer.
func NewMatrix3x2() Matrix3x2 {
	return make(Matrix3x2, Matrix3x2Size)
}

// Mat3x2 returns a new [Matrix3x2] with the given components in
// column-major order.
func Mat3x2(v0, v1, v2, v3, v4, v5 float32) Matrix3x2 {
	return Matrix3x2{v0, v1, v2, v3, v4, v5}
}

// Matrix3x2View returns a [Matrix3x2] aliasing the six floats of buf
// starting at offset. Returns [ErrOutOfBounds] if the region does not fit.
func Matrix3x2View(buf []float32, offset int) (Matrix3x2, error) {
	s, err := view(buf, offset, Matrix3x2Size)
	if err != nil {
		return nil, err
	}
	return Matrix3x2(s), nil
}

// Matrix3x2FromSlice returns a new [Matrix3x2] copying six components
// from vals starting at offset.
func Matrix3x2FromSlice(vals []float32, offset int) (Matrix3x2, error) {
	if err := sliceCheck(vals, offset, Matrix3x2Size); err != nil {
		return nil, err
	}
	m := NewMatrix3x2()
	copy(m, vals[offset:offset+Matrix3x2Size])
	return m, nil
}

// Matrix3x2FromMatrix2 returns a new [Matrix3x2] with the left 2x2 block
// taken from the given matrix and the extra column padded from the
// identity matrix (zeros).
func Matrix3x2FromMatrix2(o Matrix2) Matrix3x2 {
	return Matrix3x2{
		o[0], o[1],
		o[2], o[3],
		0, 0,
	}
}

// Matrix3x2FromMatrix3 returns a new [Matrix3x2] keeping the first two
// rows of the given 3x3 matrix.
func Matrix3x2FromMatrix3(o Matrix3) Matrix3x2 {
	return Matrix3x2{
		o[0], o[1],
		o[3], o[4],
		o[6], o[7],
	}
}

// Matrix3x2FromMatrix4 returns a new [Matrix3x2] keeping the first three
// columns and first two rows of the given 4x4 matrix.
func Matrix3x2FromMatrix4(o Matrix4) Matrix3x2 {
	return Matrix3x2{
		o[0], o[1],
		o[4], o[5],
		o[8], o[9],
	}
}

// Matrix3x2FromMatrix2x3 returns a new [Matrix3x2] keeping the
// overlapping 2x2 block of the given 2-column matrix and padding the
// missing third column from the identity matrix.
func Matrix3x2FromMatrix2x3(o Matrix2x3) Matrix3x2 {
	return Matrix3x2{
		o[0], o[1],
		o[3], o[4],
		0, 0,
	}
}

// Matrix3x2FromAffine returns a new [Matrix3x2] with the same six
// components as the given affine transform.
func Matrix3x2FromAffine(o AffineTransform) Matrix3x2 {
	m := NewMatrix3x2()
	copy(m, o)
	return m
}

// Columns returns the number of columns (3).
func (m Matrix3x2) Columns() int { return Matrix3x2Columns }

// Rows returns the number of rows (2).
func (m Matrix3x2) Rows() int { return Matrix3x2Rows }

// At returns the element at column x and row y.
func (m Matrix3x2) At(x, y int) float32 {
	return m[y+x*Matrix3x2Rows]
}

// SetAt sets the element at column x and row y.
func (m Matrix3x2) SetAt(x, y int, value float32) {
	m[y+x*Matrix3x2Rows] = value
}

// Set sets all components in column-major order.
func (m Matrix3x2) Set(v0, v1, v2, v3, v4, v5 float32) {
	m[0] = v0
	m[1] = v1
	m[2] = v2
	m[3] = v3
	m[4] = v4
	m[5] = v5
}

// Clone returns a copy of this matrix with a freshly owned buffer.
func (m Matrix3x2) Clone() Matrix3x2 {
	n := NewMatrix3x2()
	copy(n, m)
	return n
}

// FromSlice sets this matrix's components from the given slice, starting at offset.
func (m Matrix3x2) FromSlice(vals []float32, offset int) error {
	if err := sliceCheck(vals, offset, Matrix3x2Size); err != nil {
		return err
	}
	copy(m, vals[offset:offset+Matrix3x2Size])
	return nil
}

// ToSlice copies this matrix's components to the given slice, starting at offset.
func (m Matrix3x2) ToSlice(vals []float32, offset int) {
	copy(vals[offset:], m)
}

func (m Matrix3x2) String() string {
	return formatComponents(m, DefaultFractionDigits)
}

// StringRounded is like String with the given number of fraction digits.
func (m Matrix3x2) StringRounded(digits int) string {
	return formatComponents(m, digits)
}

// Add adds the other matrix component-wise and returns a new matrix.
func (m Matrix3x2) Add(other Matrix3x2) Matrix3x2 {
	n := NewMatrix3x2()
	for i := range m {
		n[i] = m[i] + other[i]
	}
	return n
}

// AddScalar adds scalar s to each component and returns a new matrix.
func (m Matrix3x2) AddScalar(s float32) Matrix3x2 {
	n := NewMatrix3x2()
	for i := range m {
		n[i] = m[i] + s
	}
	return n
}

// SetAdd adds the other matrix component-wise in place.
func (m Matrix3x2) SetAdd(other Matrix3x2) {
	for i := range m {
		m[i] += other[i]
	}
}

// SetAddScalar adds scalar s to each component in place.
func (m Matrix3x2) SetAddScalar(s float32) {
	for i := range m {
		m[i] += s
	}
}

// Sub subtracts the other matrix component-wise and returns a new matrix.
func (m Matrix3x2) Sub(other Matrix3x2) Matrix3x2 {
	n := NewMatrix3x2()
	for i := range m {
		n[i] = m[i] - other[i]
	}
	return n
}

// SubScalar subtracts scalar s from each component and returns a new matrix.
func (m Matrix3x2) SubScalar(s float32) Matrix3x2 {
	n := NewMatrix3x2()
	for i := range m {
		n[i] = m[i] - s
	}
	return n
}

// SetSub subtracts the other matrix component-wise in place.
func (m Matrix3x2) SetSub(other Matrix3x2) {
	for i := range m {
		m[i] -= other[i]
	}
}

// SetSubScalar subtracts scalar s from each component in place.
func (m Matrix3x2) SetSubScalar(s float32) {
	for i := range m {
		m[i] -= s
	}
}

// MulComponents multiplies the matrices component-wise and returns a new matrix.
func (m Matrix3x2) MulComponents(other Matrix3x2) Matrix3x2 {
	n := NewMatrix3x2()
	for i := range m {
		n[i] = m[i] * other[i]
	}
	return n
}

// MulScalar multiplies each component by scalar s and returns a new matrix.
func (m Matrix3x2) MulScalar(s float32) Matrix3x2 {
	n := NewMatrix3x2()
	for i := range m {
		n[i] = m[i] * s
	}
	return n
}

// SetMulComponents multiplies the matrices component-wise in place.
func (m Matrix3x2) SetMulComponents(other Matrix3x2) {
	for i := range m {
		m[i] *= other[i]
	}
}

// SetMulScalar multiplies each component by scalar s in place.
func (m Matrix3x2) SetMulScalar(s float32) {
	for i := range m {
		m[i] *= s
	}
}

// DivComponents divides the matrices component-wise and returns a new matrix.
func (m Matrix3x2) DivComponents(other Matrix3x2) Matrix3x2 {
	n := NewMatrix3x2()
	for i := range m {
		n[i] = m[i] / other[i]
	}
	return n
}

// DivScalar divides each component by scalar s and returns a new matrix.
func (m Matrix3x2) DivScalar(s float32) Matrix3x2 {
	n := NewMatrix3x2()
	for i := range m {
		n[i] = m[i] / s
	}
	return n
}

// SetDivComponents divides the matrices component-wise in place.
func (m Matrix3x2) SetDivComponents(other Matrix3x2) {
	for i := range m {
		m[i] /= other[i]
	}
}

// SetDivScalar divides each component by scalar s in place.
func (m Matrix3x2) SetDivScalar(s float32) {
	for i := range m {
		m[i] /= s
	}
}

// Negate returns the matrix with each component negated.
func (m Matrix3x2) Negate() Matrix3x2 {
	n := NewMatrix3x2()
	for i := range m {
		n[i] = -m[i]
	}
	return n
}

// SetNegate negates each component in place.
func (m Matrix3x2) SetNegate() {
	for i := range m {
		m[i] = -m[i]
	}
}

// MulVector3 returns the given 3D vector multiplied by this matrix,
// yielding a 2D vector.
func (m Matrix3x2) MulVector3(v Vector3) Vector2 {
	return Vector2{
		m[0]*v[0] + m[2]*v[1] + m[4]*v[2],
		m[1]*v[0] + m[3]*v[1] + m[5]*v[2],
	}
}

// Transpose returns the transpose of this matrix as a new [Matrix2x3].
func (m Matrix3x2) Transpose() Matrix2x3 {
	return Matrix2x3{
		m[0], m[2], m[4],
		m[1], m[3], m[5],
	}
}

// ToAffine returns a new [AffineTransform] with the same six components.
func (m Matrix3x2) ToAffine() AffineTransform {
	a := NewAffineTransform()
	copy(a, m)
	return a
}

// Equals reports whether this matrix is exactly component-wise equal to other.
func (m Matrix3x2) Equals(other Matrix3x2) bool {
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
func (m Matrix3x2) EqualsRounded(other Matrix3x2, digits int) bool {
	return equalsRounded(m, other, digits)
}

// Rounded returns this matrix with each component rounded to the given
// number of decimal fraction digits.
func (m Matrix3x2) Rounded(digits int) Matrix3x2 {
	n := NewMatrix3x2()
	roundedInto(n, m, digits)
	return n
}

// MarshalJSON encodes this matrix as a flat JSON array in column-major order.
func (m Matrix3x2) MarshalJSON() ([]byte, error) {
	return marshalComponents(m)
}

// UnmarshalJSON decodes a flat JSON array of exactly six numbers into
// this matrix, returning [ErrBadLength] otherwise. A nil matrix is allocated.
func (m *Matrix3x2) UnmarshalJSON(data []byte) error {
	if *m == nil {
		*m = NewMatrix3x2()
	}
	return unmarshalComponents(*m, data, Matrix3x2Size)
}
