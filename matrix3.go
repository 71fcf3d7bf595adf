// Copyright 2025 The Vgmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgmath

// Matrix3 is a 3x3 matrix backed by a contiguous float32 buffer of length
// 9 in column-major order: the element at column x and row y is at index
// y + x*3. It doubles as the homogeneous matrix for 2D transforms, with
// the third row carrying the projective terms. The value either owns its
// buffer exclusively or aliases a region of a caller-supplied buffer
// ([Matrix3View]).
type Matrix3 []float32

// Matrix3 dimensions.
const (
	Matrix3Columns = 3
	Matrix3Rows    = 3
	Matrix3Size    = Matrix3Columns * Matrix3Rows
)

// NewMatrix3 returns a new zero-filled [Matrix3] with an exclusively
// owned buffer.
func NewMatrix3() Matrix3 {
	return make(Matrix3, Matrix3Size)
}

// Identity3 returns a new [Matrix3] set to the identity matrix.
func Identity3() Matrix3 {
	return Matrix3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Mat3 returns a new [Matrix3] with the given components in column-major
// order.
func Mat3(v0, v1, v2, v3, v4, v5, v6, v7, v8 float32) Matrix3 {
	return Matrix3{v0, v1, v2, v3, v4, v5, v6, v7, v8}
}

// Matrix3View returns a [Matrix3] aliasing the nine floats of buf
// starting at offset. Returns [ErrOutOfBounds] if the region does not fit.
func Matrix3View(buf []float32, offset int) (Matrix3, error) {
	s, err := view(buf, offset, Matrix3Size)
	if err != nil {
		return nil, err
	}
	return Matrix3(s), nil
}

// Matrix3FromSlice returns a new [Matrix3] copying nine components from
// vals starting at offset.
func Matrix3FromSlice(vals []float32, offset int) (Matrix3, error) {
	if err := sliceCheck(vals, offset, Matrix3Size); err != nil {
		return nil, err
	}
	m := NewMatrix3()
	copy(m, vals[offset:offset+Matrix3Size])
	return m, nil
}

// Matrix3FromMatrix2 returns a new [Matrix3] with the upper-left block
// taken from the given 2x2 matrix and the missing row and column padded
// from the identity matrix.
func Matrix3FromMatrix2(o Matrix2) Matrix3 {
	return Matrix3{
		o[0], o[1], 0,
		o[2], o[3], 0,
		0, 0, 1,
	}
}

// Matrix3FromMatrix4 returns a new [Matrix3] keeping the upper-left 3x3
// block of the given 4x4 matrix.
func Matrix3FromMatrix4(o Matrix4) Matrix3 {
	return Matrix3{
		o[0], o[1], o[2],
		o[4], o[5], o[6],
		o[8], o[9], o[10],
	}
}

// Matrix3FromMatrix2x3 returns a new [Matrix3] from a 2-column matrix,
// padding the missing third column from the identity matrix.
func Matrix3FromMatrix2x3(o Matrix2x3) Matrix3 {
	return Matrix3{
		o[0], o[1], o[2],
		o[3], o[4], o[5],
		0, 0, 1,
	}
}

// Matrix3FromMatrix3x2 returns a new [Matrix3] from a 2-row matrix,
// padding the missing third row from the identity matrix.
func Matrix3FromMatrix3x2(o Matrix3x2) Matrix3 {
	return Matrix3{
		o[0], o[1], 0,
		o[2], o[3], 0,
		o[4], o[5], 1,
	}
}

// Columns returns the number of columns (3).
func (m Matrix3) Columns() int { return Matrix3Columns }

// Rows returns the number of rows (3).
func (m Matrix3) Rows() int { return Matrix3Rows }

// At returns the element at column x and row y.
func (m Matrix3) At(x, y int) float32 {
	return m[y+x*Matrix3Rows]
}

// SetAt sets the element at column x and row y.
func (m Matrix3) SetAt(x, y int, value float32) {
	m[y+x*Matrix3Rows] = value
}

// Set sets all components in column-major order.
func (m Matrix3) Set(v0, v1, v2, v3, v4, v5, v6, v7, v8 float32) {
	m[0] = v0
	m[1] = v1
	m[2] = v2
	m[3] = v3
	m[4] = v4
	m[5] = v5
	m[6] = v6
	m[7] = v7
	m[8] = v8
}

// SetIdentity overwrites this matrix with the identity matrix in place.
func (m Matrix3) SetIdentity() {
	m.Set(
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	)
}

// IsIdentity reports whether this matrix exactly matches the identity
// pattern. The comparison is exact, not tolerance-based.
func (m Matrix3) IsIdentity() bool {
	return m[0] == 1 && m[1] == 0 && m[2] == 0 &&
		m[3] == 0 && m[4] == 1 && m[5] == 0 &&
		m[6] == 0 && m[7] == 0 && m[8] == 1
}

// Clone returns a copy of this matrix with a freshly owned buffer.
func (m Matrix3) Clone() Matrix3 {
	n := NewMatrix3()
	copy(n, m)
	return n
}

// FromSlice sets this matrix's components from the given slice, starting at offset.
func (m Matrix3) FromSlice(vals []float32, offset int) error {
	if err := sliceCheck(vals, offset, Matrix3Size); err != nil {
		return err
	}
	copy(m, vals[offset:offset+Matrix3Size])
	return nil
}

// ToSlice copies this matrix's components to the given slice, starting at offset.
func (m Matrix3) ToSlice(vals []float32, offset int) {
	copy(vals[offset:], m)
}

func (m Matrix3) String() string {
	return formatComponents(m, DefaultFractionDigits)
}

// StringRounded is like String with the given number of fraction digits.
func (m Matrix3) StringRounded(digits int) string {
	return formatComponents(m, digits)
}

// Component arithmetic:

// Add adds the other matrix component-wise and returns a new matrix.
func (m Matrix3) Add(other Matrix3) Matrix3 {
	n := NewMatrix3()
	for i := range m {
		n[i] = m[i] + other[i]
	}
	return n
}

// AddScalar adds scalar s to each component and returns a new matrix.
func (m Matrix3) AddScalar(s float32) Matrix3 {
	n := NewMatrix3()
	for i := range m {
		n[i] = m[i] + s
	}
	return n
}

// SetAdd adds the other matrix component-wise in place.
func (m Matrix3) SetAdd(other Matrix3) {
	for i := range m {
		m[i] += other[i]
	}
}

// SetAddScalar adds scalar s to each component in place.
func (m Matrix3) SetAddScalar(s float32) {
	for i := range m {
		m[i] += s
	}
}

// Sub subtracts the other matrix component-wise and returns a new matrix.
func (m Matrix3) Sub(other Matrix3) Matrix3 {
	n := NewMatrix3()
	for i := range m {
		n[i] = m[i] - other[i]
	}
	return n
}

// SubScalar subtracts scalar s from each component and returns a new matrix.
func (m Matrix3) SubScalar(s float32) Matrix3 {
	n := NewMatrix3()
	for i := range m {
		n[i] = m[i] - s
	}
	return n
}

// SetSub subtracts the other matrix component-wise in place.
func (m Matrix3) SetSub(other Matrix3) {
	for i := range m {
		m[i] -= other[i]
	}
}

// SetSubScalar subtracts scalar s from each component in place.
func (m Matrix3) SetSubScalar(s float32) {
	for i := range m {
		m[i] -= s
	}
}

// MulComponents multiplies the matrices component-wise and returns a new
// matrix. This is not the matrix product; see [Matrix3.Mul].
func (m Matrix3) MulComponents(other Matrix3) Matrix3 {
	n := NewMatrix3()
	for i := range m {
		n[i] = m[i] * other[i]
	}
	return n
}

// MulScalar multiplies each component by scalar s and returns a new matrix.
func (m Matrix3) MulScalar(s float32) Matrix3 {
	n := NewMatrix3()
	for i := range m {
		n[i] = m[i] * s
	}
	return n
}

// SetMulComponents multiplies the matrices component-wise in place.
func (m Matrix3) SetMulComponents(other Matrix3) {
	for i := range m {
		m[i] *= other[i]
	}
}

// SetMulScalar multiplies each component by scalar s in place.
func (m Matrix3) SetMulScalar(s float32) {
	for i := range m {
		m[i] *= s
	}
}

// DivComponents divides the matrices component-wise and returns a new matrix.
func (m Matrix3) DivComponents(other Matrix3) Matrix3 {
	n := NewMatrix3()
	for i := range m {
		n[i] = m[i] / other[i]
	}
	return n
}

// DivScalar divides each component by scalar s and returns a new matrix.
func (m Matrix3) DivScalar(s float32) Matrix3 {
	n := NewMatrix3()
	for i := range m {
		n[i] = m[i] / s
	}
	return n
}

// SetDivComponents divides the matrices component-wise in place.
func (m Matrix3) SetDivComponents(other Matrix3) {
	for i := range m {
		m[i] /= other[i]
	}
}

// SetDivScalar divides each component by scalar s in place.
func (m Matrix3) SetDivScalar(s float32) {
	for i := range m {
		m[i] /= s
	}
}

// Negate returns the matrix with each component negated.
func (m Matrix3) Negate() Matrix3 {
	n := NewMatrix3()
	for i := range m {
		n[i] = -m[i]
	}
	return n
}

// SetNegate negates each component in place.
func (m Matrix3) SetNegate() {
	for i := range m {
		m[i] = -m[i]
	}
}

// Linear algebra:

// Mul returns the matrix product m × other as a new matrix.
func (m Matrix3) Mul(other Matrix3) Matrix3 {
	n := NewMatrix3()
	n.MulMatrices(m, other)
	return n
}

// SetMul sets this matrix to the product m × other in place.
func (m Matrix3) SetMul(other Matrix3) {
	m.MulMatrices(m, other)
}

// MulMatrices sets this matrix to the product a × b, avoiding allocation.
// The receiver may alias a or b.
func (m Matrix3) MulMatrices(a, b Matrix3) {
	a0, a1, a2, a3, a4, a5, a6, a7, a8 := a[0], a[1], a[2], a[3], a[4], a[5], a[6], a[7], a[8]
	b0, b1, b2, b3, b4, b5, b6, b7, b8 := b[0], b[1], b[2], b[3], b[4], b[5], b[6], b[7], b[8]

	m[0] = a0*b0 + a3*b1 + a6*b2
	m[1] = a1*b0 + a4*b1 + a7*b2
	m[2] = a2*b0 + a5*b1 + a8*b2

	m[3] = a0*b3 + a3*b4 + a6*b5
	m[4] = a1*b3 + a4*b4 + a7*b5
	m[5] = a2*b3 + a5*b4 + a8*b5

	m[6] = a0*b6 + a3*b7 + a6*b8
	m[7] = a1*b6 + a4*b7 + a7*b8
	m[8] = a2*b6 + a5*b7 + a8*b8
}

// MulVector3 returns the given vector multiplied by this matrix.
func (m Matrix3) MulVector3(v Vector3) Vector3 {
	return v.MulMatrix3(m)
}

// MulVector2AsPoint returns the given 2D point transformed by this matrix
// as a homogeneous 2D transform, including the translation column.
func (m Matrix3) MulVector2AsPoint(v Vector2) Vector2 {
	return Vector2{
		m[0]*v[0] + m[3]*v[1] + m[6],
		m[1]*v[0] + m[4]*v[1] + m[7],
	}
}

// MulVector2AsVector returns the given 2D vector transformed by this
// matrix without translation.
func (m Matrix3) MulVector2AsVector(v Vector2) Vector2 {
	return Vector2{
		m[0]*v[0] + m[3]*v[1],
		m[1]*v[0] + m[4]*v[1],
	}
}

// Determinant returns the determinant of this matrix using the six-term
// closed-form expansion.
func (m Matrix3) Determinant() float32 {
	return m[0]*(m[8]*m[4]-m[5]*m[7]) +
		m[1]*(m[5]*m[6]-m[8]*m[3]) +
		m[2]*(m[7]*m[3]-m[4]*m[6])
}

// inverseTerms returns the components of the inverse in column-major
// order, sharing the cofactor sub-products. A zero determinant yields
// NaN/Inf terms.
func (m Matrix3) inverseTerms() [Matrix3Size]float32 {
	t11 := m[8]*m[4] - m[5]*m[7]
	t12 := m[5]*m[6] - m[8]*m[3]
	t13 := m[7]*m[3] - m[4]*m[6]
	det := m[0]*t11 + m[1]*t12 + m[2]*t13

	return [Matrix3Size]float32{
		t11 / det,
		(m[2]*m[7] - m[8]*m[1]) / det,
		(m[5]*m[1] - m[2]*m[4]) / det,
		t12 / det,
		(m[8]*m[0] - m[2]*m[6]) / det,
		(m[2]*m[3] - m[5]*m[0]) / det,
		t13 / det,
		(m[1]*m[6] - m[7]*m[0]) / det,
		(m[4]*m[0] - m[1]*m[3]) / det,
	}
}

// Adjugate returns the adjugate (transpose of the cofactor matrix) as a
// new matrix. Dividing it by the determinant yields the inverse.
func (m Matrix3) Adjugate() Matrix3 {
	return Matrix3{
		m[8]*m[4] - m[5]*m[7],
		m[2]*m[7] - m[8]*m[1],
		m[5]*m[1] - m[2]*m[4],
		m[5]*m[6] - m[8]*m[3],
		m[8]*m[0] - m[2]*m[6],
		m[2]*m[3] - m[5]*m[0],
		m[7]*m[3] - m[4]*m[6],
		m[1]*m[6] - m[7]*m[0],
		m[4]*m[0] - m[1]*m[3],
	}
}

// SetAdjugate sets this matrix to its adjugate in place.
func (m Matrix3) SetAdjugate() {
	copy(m, m.Adjugate())
}

// Inverse returns the inverse of this matrix as a new matrix. A singular
// matrix produces NaN/Inf components rather than an error.
func (m Matrix3) Inverse() Matrix3 {
	i := m.inverseTerms()
	n := NewMatrix3()
	copy(n, i[:])
	return n
}

// Invert inverts this matrix in place by dividing the adjugate by the
// determinant, sharing the cofactor sub-products. A singular matrix
// produces NaN/Inf components rather than an error.
func (m Matrix3) Invert() {
	i := m.inverseTerms()
	copy(m, i[:])
}

// Div returns the product m × other⁻¹ as a new matrix, substituting the
// other matrix's cofactor-based inverse terms directly rather than
// materializing a separate inverse matrix.
func (m Matrix3) Div(other Matrix3) Matrix3 {
	n := m.Clone()
	n.SetDiv(other)
	return n
}

// SetDiv sets this matrix to the product m × other⁻¹ in place.
func (m Matrix3) SetDiv(other Matrix3) {
	i := other.inverseTerms()
	m.MulMatrices(m, i[:])
}

// Transpose returns the transpose of this matrix as a new matrix.
func (m Matrix3) Transpose() Matrix3 {
	return Matrix3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// SetTranspose transposes this matrix in place by swapping all
// off-diagonal pairs.
func (m Matrix3) SetTranspose() {
	m[1], m[3] = m[3], m[1]
	m[2], m[6] = m[6], m[2]
	m[5], m[7] = m[7], m[5]
}

// Transforms (2D homogeneous):

// Translate translates this matrix in place by the given 2D offset:
// m = m × translation(x, y).
func (m Matrix3) Translate(x, y float32) {
	m[6] += x*m[0] + y*m[3]
	m[7] += x*m[1] + y*m[4]
	m[8] += x*m[2] + y*m[5]
}

// Rotate rotates this matrix in place by the given angle in radians:
// m = m × rotation(angle).
func (m Matrix3) Rotate(angle float32) {
	sin, cos := Sincos(angle)
	m0, m1, m2 := m[0], m[1], m[2]
	m[0] = m0*cos + m[3]*sin
	m[1] = m1*cos + m[4]*sin
	m[2] = m2*cos + m[5]*sin
	m[3] = m[3]*cos - m0*sin
	m[4] = m[4]*cos - m1*sin
	m[5] = m[5]*cos - m2*sin
}

// Scale scales this matrix in place by the given per-axis factors:
// m = m × scaling(x, y).
func (m Matrix3) Scale(x, y float32) {
	m[0] *= x
	m[1] *= x
	m[2] *= x
	m[3] *= y
	m[4] *= y
	m[5] *= y
}

// Equality and serialization:

// Equals reports whether this matrix is exactly component-wise equal to other.
func (m Matrix3) Equals(other Matrix3) bool {
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
func (m Matrix3) EqualsRounded(other Matrix3, digits int) bool {
	return equalsRounded(m, other, digits)
}

// Rounded returns this matrix with each component rounded to the given
// number of decimal fraction digits.
func (m Matrix3) Rounded(digits int) Matrix3 {
	n := NewMatrix3()
	roundedInto(n, m, digits)
	return n
}

// MarshalJSON encodes this matrix as a flat JSON array in column-major order.
func (m Matrix3) MarshalJSON() ([]byte, error) {
	return marshalComponents(m)
}

// UnmarshalJSON decodes a flat JSON array of exactly nine numbers into
// this matrix, returning [ErrBadLength] otherwise. A nil matrix is allocated.
func (m *Matrix3) UnmarshalJSON(data []byte) error {
	if *m == nil {
		*m = NewMatrix3()
	}
	return unmarshalComponents(*m, data, Matrix3Size)
}
