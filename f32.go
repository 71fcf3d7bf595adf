// Copyright 2025 The Vgmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgmath

import (
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
)

// Conversions to and from the golang.org/x/image/math flat array types,
// which is the form graphics APIs typically consume. The f32 matrix
// types are row-major, so matrix conversions transpose.

// F32 returns this vector as an [f32.Vec2].
func (v Vector2) F32() f32.Vec2 {
	return f32.Vec2{v[0], v[1]}
}

// Vector2FromF32 returns a new [Vector2] from the given [f32.Vec2].
func Vector2FromF32(f f32.Vec2) Vector2 {
	return Vector2{f[0], f[1]}
}

// F32 returns this vector as an [f32.Vec3].
func (v Vector3) F32() f32.Vec3 {
	return f32.Vec3{v[0], v[1], v[2]}
}

// Vector3FromF32 returns a new [Vector3] from the given [f32.Vec3].
func Vector3FromF32(f f32.Vec3) Vector3 {
	return Vector3{f[0], f[1], f[2]}
}

// F32 returns this vector as an [f32.Vec4].
func (v Vector4) F32() f32.Vec4 {
	return f32.Vec4{v[0], v[1], v[2], v[3]}
}

// Vector4FromF32 returns a new [Vector4] from the given [f32.Vec4].
func Vector4FromF32(f f32.Vec4) Vector4 {
	return Vector4{f[0], f[1], f[2], f[3]}
}

// F32 returns this matrix as a row-major [f32.Mat3].
func (m Matrix3) F32() f32.Mat3 {
	return f32.Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Matrix3FromF32 returns a new [Matrix3] from the given row-major [f32.Mat3].
func Matrix3FromF32(f f32.Mat3) Matrix3 {
	return Matrix3{
		f[0], f[3], f[6],
		f[1], f[4], f[7],
		f[2], f[5], f[8],
	}
}

// F32 returns this matrix as a row-major [f32.Mat4].
func (m Matrix4) F32() f32.Mat4 {
	return f32.Mat4{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

// Matrix4FromF32 returns a new [Matrix4] from the given row-major [f32.Mat4].
func Matrix4FromF32(f f32.Mat4) Matrix4 {
	return Matrix4{
		f[0], f[4], f[8], f[12],
		f[1], f[5], f[9], f[13],
		f[2], f[6], f[10], f[14],
		f[3], f[7], f[11], f[15],
	}
}

// Aff3 returns this transform as a row-major [f64.Aff3], the form
// consumed by golang.org/x/image/draw transformers.
func (a AffineTransform) Aff3() f64.Aff3 {
	return f64.Aff3{
		float64(a[0]), float64(a[2]), float64(a[4]),
		float64(a[1]), float64(a[3]), float64(a[5]),
	}
}

// AffineFromAff3 returns a new [AffineTransform] from the given
// row-major [f64.Aff3].
func AffineFromAff3(f f64.Aff3) AffineTransform {
	return AffineTransform{
		float32(f[0]), float32(f[3]),
		float32(f[1]), float32(f[4]),
		float32(f[2]), float32(f[5]),
	}
}
