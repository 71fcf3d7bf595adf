// Copyright 2025 The Vgmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgmath

import (
	"fmt"
	"strconv"
	"strings"
)

// AffineTransform is a 2D affine transform backed by a contiguous float32
// buffer of length 6 holding [a, b, c, d, e, f]: the first two rows of a
// 3x3 homogeneous matrix in column-major order, with the implicit third
// row [0, 0, 1]. Column 0 is (a, b), column 1 is (c, d) and the
// translation column is (e, f). The value either owns its buffer
// exclusively or aliases a region of a caller-supplied buffer
// ([AffineView]).
type AffineTransform []float32

// AffineTransform dimensions.
const (
	AffineColumns = 3
	AffineRows    = 2
	AffineSize    = AffineColumns * AffineRows
)

// NewAffineTransform returns a new zero-filled [AffineTransform] with an
// exclusively owned buffer.
func NewAffineTransform() AffineTransform {
	return make(AffineTransform, AffineSize)
}

// AffineIdentity returns a new identity [AffineTransform].
func AffineIdentity() AffineTransform {
	return AffineTransform{1, 0, 0, 1, 0, 0}
}

// Affine returns a new [AffineTransform] with the given components.
func Affine(a, b, c, d, e, f float32) AffineTransform {
	return AffineTransform{a, b, c, d, e, f}
}

// AffineView returns an [AffineTransform] aliasing the six floats of buf
// starting at offset. Returns [ErrOutOfBounds] if the region does not fit.
func AffineView(buf []float32, offset int) (AffineTransform, error) {
	s, err := view(buf, offset, AffineSize)
	if err != nil {
		return nil, err
	}
	return AffineTransform(s), nil
}

// AffineFromSlice returns a new [AffineTransform] copying six components
// from vals starting at offset.
func AffineFromSlice(vals []float32, offset int) (AffineTransform, error) {
	if err := sliceCheck(vals, offset, AffineSize); err != nil {
		return nil, err
	}
	a := NewAffineTransform()
	copy(a, vals[offset:offset+AffineSize])
	return a, nil
}

// AffineFromMatrix3 returns a new [AffineTransform] from the given 3x3
// matrix. Returns [ErrNotAffine] unless the matrix's third row is exactly
// [0, 0, 1].
func AffineFromMatrix3(m Matrix3) (AffineTransform, error) {
	if m[2] != 0 || m[5] != 0 || m[8] != 1 {
		return nil, ErrNotAffine
	}
	return AffineTransform{m[0], m[1], m[3], m[4], m[6], m[7]}, nil
}

// AffineFromMatrix4 returns a new [AffineTransform] from the given 4x4
// matrix. Returns [ErrNot2D] unless the matrix is a 2D affine embedding:
// the Z row and column and the projective row match the identity matrix
// and there is no Z translation.
func AffineFromMatrix4(m Matrix4) (AffineTransform, error) {
	if m[2] != 0 || m[3] != 0 || m[6] != 0 || m[7] != 0 ||
		m[8] != 0 || m[9] != 0 || m[10] != 1 || m[11] != 0 ||
		m[14] != 0 || m[15] != 1 {
		return nil, ErrNot2D
	}
	return AffineTransform{m[0], m[1], m[4], m[5], m[12], m[13]}, nil
}

// Translate2D returns a new [AffineTransform] translating by the given offset.
func Translate2D(x, y float32) AffineTransform {
	return AffineTransform{1, 0, 0, 1, x, y}
}

// Scale2D returns a new [AffineTransform] scaling by the given per-axis
// factors.
func Scale2D(x, y float32) AffineTransform {
	return AffineTransform{x, 0, 0, y, 0, 0}
}

// Rotate2D returns a new [AffineTransform] rotating by the given angle in
// radians.
func Rotate2D(angle float32) AffineTransform {
	sin, cos := Sincos(angle)
	return AffineTransform{cos, sin, -sin, cos, 0, 0}
}

// Shear2D returns a new [AffineTransform] shearing by the given per-axis
// factors.
func Shear2D(x, y float32) AffineTransform {
	return AffineTransform{1, y, x, 1, 0, 0}
}

// A returns the a (column 0, row 0) component.
func (a AffineTransform) A() float32 { return a[0] }

// B returns the b (column 0, row 1) component.
func (a AffineTransform) B() float32 { return a[1] }

// C returns the c (column 1, row 0) component.
func (a AffineTransform) C() float32 { return a[2] }

// D returns the d (column 1, row 1) component.
func (a AffineTransform) D() float32 { return a[3] }

// E returns the e (X translation) component.
func (a AffineTransform) E() float32 { return a[4] }

// F returns the f (Y translation) component.
func (a AffineTransform) F() float32 { return a[5] }

// SetA sets the a (column 0, row 0) component.
func (a AffineTransform) SetA(v float32) { a[0] = v }

// SetB sets the b (column 0, row 1) component.
func (a AffineTransform) SetB(v float32) { a[1] = v }

// SetC sets the c (column 1, row 0) component.
func (a AffineTransform) SetC(v float32) { a[2] = v }

// SetD sets the d (column 1, row 1) component.
func (a AffineTransform) SetD(v float32) { a[3] = v }

// SetE sets the e (X translation) component.
func (a AffineTransform) SetE(v float32) { a[4] = v }

// SetF sets the f (Y translation) component.
func (a AffineTransform) SetF(v float32) { a[5] = v }

// Set sets all six components.
func (a AffineTransform) Set(av, bv, cv, dv, ev, fv float32) {
	a[0] = av
	a[1] = bv
	a[2] = cv
	a[3] = dv
	a[4] = ev
	a[5] = fv
}

// SetIdentity overwrites this transform with the identity in place.
func (a AffineTransform) SetIdentity() {
	a.Set(1, 0, 0, 1, 0, 0)
}

// IsIdentity reports whether this transform exactly matches the identity
// pattern. The comparison is exact, not tolerance-based.
func (a AffineTransform) IsIdentity() bool {
	return a[0] == 1 && a[1] == 0 && a[2] == 0 &&
		a[3] == 1 && a[4] == 0 && a[5] == 0
}

// Clone returns a copy of this transform with a freshly owned buffer.
func (a AffineTransform) Clone() AffineTransform {
	n := NewAffineTransform()
	copy(n, a)
	return n
}

// FromSlice sets this transform's components from the given slice, starting at offset.
func (a AffineTransform) FromSlice(vals []float32, offset int) error {
	if err := sliceCheck(vals, offset, AffineSize); err != nil {
		return err
	}
	copy(a, vals[offset:offset+AffineSize])
	return nil
}

// ToSlice copies this transform's components to the given slice, starting at offset.
func (a AffineTransform) ToSlice(vals []float32, offset int) {
	copy(vals[offset:], a)
}

// ToMatrix3 returns this transform widened to a full 3x3 matrix, adding
// the implicit [0, 0, 1] row.
func (a AffineTransform) ToMatrix3() Matrix3 {
	return Matrix3{
		a[0], a[1], 0,
		a[2], a[3], 0,
		a[4], a[5], 1,
	}
}

// ToMatrix4 returns this transform widened to a full 4x4 matrix, padding
// the Z row and column from the identity matrix.
func (a AffineTransform) ToMatrix4() Matrix4 {
	return Matrix4{
		a[0], a[1], 0, 0,
		a[2], a[3], 0, 0,
		0, 0, 1, 0,
		a[4], a[5], 0, 1,
	}
}

// Mul returns the transform product a × other as a new transform,
// carrying the implicit third rows through the product.
func (a AffineTransform) Mul(other AffineTransform) AffineTransform {
	n := a.Clone()
	n.SetMul(other)
	return n
}

// SetMul sets this transform to the product a × other in place. The
// receiver may alias other.
func (a AffineTransform) SetMul(other AffineTransform) {
	a0, a1, a2, a3, a4, a5 := a[0], a[1], a[2], a[3], a[4], a[5]
	o0, o1, o2, o3, o4, o5 := other[0], other[1], other[2], other[3], other[4], other[5]
	a[0] = a0*o0 + a2*o1
	a[1] = a1*o0 + a3*o1
	a[2] = a0*o2 + a2*o3
	a[3] = a1*o2 + a3*o3
	a[4] = a0*o4 + a2*o5 + a4
	a[5] = a1*o4 + a3*o5 + a5
}

// Determinant returns the determinant of this transform's linear part:
// a·d − c·b. The implicit row contributes a unit factor.
func (a AffineTransform) Determinant() float32 {
	return a[0]*a[3] - a[2]*a[1]
}

// Inverse returns the inverse of this transform as a new transform. A
// singular transform produces NaN/Inf components rather than an error.
func (a AffineTransform) Inverse() AffineTransform {
	n := a.Clone()
	n.Invert()
	return n
}

// Invert inverts this transform in place using the closed 2x2 form plus
// back-solved translation. A singular transform produces NaN/Inf
// components rather than an error.
func (a AffineTransform) Invert() {
	det := a[0]*a[3] - a[2]*a[1]
	a0, a1, a2, a3, a4, a5 := a[0], a[1], a[2], a[3], a[4], a[5]
	a[0] = a3 / det
	a[1] = -a1 / det
	a[2] = -a2 / det
	a[3] = a0 / det
	a[4] = (a2*a5 - a3*a4) / det
	a[5] = (a1*a4 - a0*a5) / det
}

// Div returns the product a × other⁻¹ as a new transform.
func (a AffineTransform) Div(other AffineTransform) AffineTransform {
	return a.Mul(other.Inverse())
}

// SetDiv sets this transform to the product a × other⁻¹ in place.
func (a AffineTransform) SetDiv(other AffineTransform) {
	a.SetMul(other.Inverse())
}

// MulVector2AsPoint returns the given 2D point transformed by this
// transform, including translation.
func (a AffineTransform) MulVector2AsPoint(v Vector2) Vector2 {
	return Vector2{
		a[0]*v[0] + a[2]*v[1] + a[4],
		a[1]*v[0] + a[3]*v[1] + a[5],
	}
}

// MulVector2AsVector returns the given 2D vector transformed by this
// transform without translation.
func (a AffineTransform) MulVector2AsVector(v Vector2) Vector2 {
	return Vector2{
		a[0]*v[0] + a[2]*v[1],
		a[1]*v[0] + a[3]*v[1],
	}
}

// Translate translates this transform in place by the given 2D offset:
// a = a × translation(x, y).
func (a AffineTransform) Translate(x, y float32) {
	a[4] += a[0]*x + a[2]*y
	a[5] += a[1]*x + a[3]*y
}

// Scale scales this transform in place by the given per-axis factors:
// a = a × scaling(x, y).
func (a AffineTransform) Scale(x, y float32) {
	a[0] *= x
	a[1] *= x
	a[2] *= y
	a[3] *= y
}

// Rotate rotates this transform in place by the given angle in radians:
// a = a × rotation(angle).
func (a AffineTransform) Rotate(angle float32) {
	sin, cos := Sincos(angle)
	a0, a1 := a[0], a[1]
	a[0] = a0*cos + a[2]*sin
	a[1] = a1*cos + a[3]*sin
	a[2] = a[2]*cos - a0*sin
	a[3] = a[3]*cos - a1*sin
}

// Shear shears this transform in place by the given per-axis factors:
// a = a × shear(x, y).
func (a AffineTransform) Shear(x, y float32) {
	a0, a1 := a[0], a[1]
	a[0] = a0 + a[2]*y
	a[1] = a1 + a[3]*y
	a[2] = a0*x + a[2]
	a[3] = a1*x + a[3]
}

// ExtractRotation returns the rotation angle in radians encoded in this
// transform's first column.
func (a AffineTransform) ExtractRotation() float32 {
	return Atan2(a[1], a[0])
}

// ExtractScale returns the per-axis scale factors as the lengths of the
// two basis columns.
func (a AffineTransform) ExtractScale() Vector2 {
	return Vector2{Hypot(a[0], a[1]), Hypot(a[2], a[3])}
}

// ExtractTranslation returns the translation column as a 2D vector.
func (a AffineTransform) ExtractTranslation() Vector2 {
	return Vector2{a[4], a[5]}
}

func (a AffineTransform) String() string {
	return formatComponents(a, DefaultFractionDigits)
}

// StringRounded is like String with the given number of fraction digits.
func (a AffineTransform) StringRounded(digits int) string {
	return formatComponents(a, digits)
}

// TransformString returns the CSS-style transform representation of this
// transform: "none" for the identity, "translate(x,y)" and "scale(x,y)"
// for pure forms and "matrix(a,b,c,d,e,f)" in general.
func (a AffineTransform) TransformString() string {
	if a.IsIdentity() {
		return "none"
	}
	if a[1] == 0 && a[2] == 0 { // no rotation or shear
		if a[4] == 0 && a[5] == 0 {
			return "scale(" + fstr(a[0]) + "," + fstr(a[3]) + ")"
		}
		if a[0] == 1 && a[3] == 1 {
			return "translate(" + fstr(a[4]) + "," + fstr(a[5]) + ")"
		}
		return "translate(" + fstr(a[4]) + "," + fstr(a[5]) + ") scale(" + fstr(a[0]) + "," + fstr(a[3]) + ")"
	}
	return "matrix(" + fstr(a[0]) + "," + fstr(a[1]) + "," + fstr(a[2]) + "," + fstr(a[3]) + "," + fstr(a[4]) + "," + fstr(a[5]) + ")"
}

// fstr formats a component for transform strings in shortest form.
func fstr(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

// SetTransformString sets this transform from a CSS-style transform
// string: a space-separated sequence of commands from "none", "matrix",
// "translate", "translateX", "translateY", "scale", "scaleX", "scaleY",
// "rotate", "skew", "skewX" and "skewY", applied left-to-right by
// post-multiplication onto the identity. Angles are in degrees. Returns
// [ErrBadTransformString] for unknown commands or malformed arguments.
func (a AffineTransform) SetTransformString(str string) error {
	str = strings.TrimSpace(str)
	a.SetIdentity()
	if str == "" || str == "none" {
		return nil
	}
	for _, cmd := range strings.Split(str, ")") {
		cmd = strings.TrimLeft(strings.TrimSpace(cmd), ",")
		if cmd == "" {
			continue
		}
		name, rest, found := strings.Cut(cmd, "(")
		if !found {
			return fmt.Errorf("%w: %q", ErrBadTransformString, cmd)
		}
		name = strings.TrimSpace(name)
		args, err := parseTransformArgs(rest)
		if err != nil {
			return err
		}
		prim, err := transformPrimitive(name, args)
		if err != nil {
			return err
		}
		a.SetMul(prim)
	}
	return nil
}

func parseTransformArgs(s string) ([]float32, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	args := make([]float32, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrBadTransformString, f, err)
		}
		args[i] = float32(v)
	}
	return args, nil
}

func transformPrimitive(name string, args []float32) (AffineTransform, error) {
	bad := func() (AffineTransform, error) {
		return nil, fmt.Errorf("%w: %s with %d args", ErrBadTransformString, name, len(args))
	}
	switch name {
	case "matrix":
		if len(args) != 6 {
			return bad()
		}
		return AffineTransform(args), nil
	case "translate":
		switch len(args) {
		case 1:
			return Translate2D(args[0], 0), nil
		case 2:
			return Translate2D(args[0], args[1]), nil
		}
		return bad()
	case "translateX":
		if len(args) != 1 {
			return bad()
		}
		return Translate2D(args[0], 0), nil
	case "translateY":
		if len(args) != 1 {
			return bad()
		}
		return Translate2D(0, args[0]), nil
	case "scale":
		switch len(args) {
		case 1:
			return Scale2D(args[0], args[0]), nil
		case 2:
			return Scale2D(args[0], args[1]), nil
		}
		return bad()
	case "scaleX":
		if len(args) != 1 {
			return bad()
		}
		return Scale2D(args[0], 1), nil
	case "scaleY":
		if len(args) != 1 {
			return bad()
		}
		return Scale2D(1, args[0]), nil
	case "rotate":
		if len(args) != 1 {
			return bad()
		}
		return Rotate2D(DegToRad(args[0])), nil
	case "skew":
		if len(args) != 2 {
			return bad()
		}
		return Shear2D(Tan(DegToRad(args[0])), Tan(DegToRad(args[1]))), nil
	case "skewX":
		if len(args) != 1 {
			return bad()
		}
		return Shear2D(Tan(DegToRad(args[0])), 0), nil
	case "skewY":
		if len(args) != 1 {
			return bad()
		}
		return Shear2D(0, Tan(DegToRad(args[0]))), nil
	}
	return nil, fmt.Errorf("%w: unknown command %q", ErrBadTransformString, name)
}

// Equals reports whether this transform is exactly component-wise equal
// to other.
func (a AffineTransform) Equals(other AffineTransform) bool {
	for i := range a {
		if a[i] != other[i] {
			return false
		}
	}
	return true
}

// EqualsRounded reports whether this transform equals other after
// rounding each per-component difference to the given number of decimal
// fraction digits.
func (a AffineTransform) EqualsRounded(other AffineTransform, digits int) bool {
	return equalsRounded(a, other, digits)
}

// Rounded returns this transform with each component rounded to the
// given number of decimal fraction digits.
func (a AffineTransform) Rounded(digits int) AffineTransform {
	n := NewAffineTransform()
	roundedInto(n, a, digits)
	return n
}

// MarshalJSON encodes this transform as a flat JSON array [a,b,c,d,e,f].
func (a AffineTransform) MarshalJSON() ([]byte, error) {
	return marshalComponents(a)
}

// UnmarshalJSON decodes a flat JSON array of exactly six numbers into
// this transform, returning [ErrBadLength] otherwise. A nil transform is
// allocated.
func (a *AffineTransform) UnmarshalJSON(data []byte) error {
	if *a == nil {
		*a = NewAffineTransform()
	}
	return unmarshalComponents(*a, data, AffineSize)
}
