// Copyright 2025 The Vgmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vgmath is a float32 based small-vector and small-matrix algebra
// package for 2D and 3D graphics. Vectors (2/3/4 components) and matrices
// (2x2 through 4x4, plus rectangular 2x3/3x2 shapes and a reduced 2x3
// affine transform) are named slice types over contiguous float32 buffers,
// so instances can be handed directly to graphics APIs without copying,
// and can alias caller-supplied buffers through View constructors.
package vgmath

import (
	"math"

	"github.com/chewxy/math32"
)

// These are mostly just wrappers around chewxy/math32, which has
// some optimized implementations.

// Mathematical constants.
const (
	E  = math.E
	Pi = math.Pi

	Sqrt2 = math.Sqrt2
	Ln2   = math.Ln2
	Log2E = math.Log2E
)

const (
	// DegToRadFactor is the number of radians per degree.
	DegToRadFactor = Pi / 180

	// RadToDegFactor is the number of degrees per radian.
	RadToDegFactor = 180 / Pi
)

// Infinity is positive infinity.
var Infinity = float32(math.Inf(1))

// DegToRad converts a number from degrees to radians.
func DegToRad(degrees float32) float32 {
	return degrees * DegToRadFactor
}

// RadToDeg converts a number from radians to degrees.
func RadToDeg(radians float32) float32 {
	return radians * RadToDegFactor
}

// Abs returns the absolute value of x.
func Abs(x float32) float32 {
	return math32.Abs(x)
}

// Sign returns -1 if x < 0 and 1 otherwise.
func Sign(x float32) float32 {
	if x < 0 {
		return -1
	}
	return 1
}

// Acos returns the arccosine, in radians, of x.
func Acos(x float32) float32 {
	return math32.Acos(x)
}

// Acosh returns the inverse hyperbolic cosine of x.
func Acosh(x float32) float32 {
	return math32.Acosh(x)
}

// Asin returns the arcsine, in radians, of x.
func Asin(x float32) float32 {
	return math32.Asin(x)
}

// Asinh returns the inverse hyperbolic sine of x.
func Asinh(x float32) float32 {
	return math32.Asinh(x)
}

// Atan returns the arctangent, in radians, of x.
func Atan(x float32) float32 {
	return math32.Atan(x)
}

// Atan2 returns the arc tangent of y/x, using the signs of the two to
// determine the quadrant of the return value.
func Atan2(y, x float32) float32 {
	return math32.Atan2(y, x)
}

// Atanh returns the inverse hyperbolic tangent of x.
func Atanh(x float32) float32 {
	return math32.Atanh(x)
}

// Ceil returns the least integer value greater than or equal to x.
func Ceil(x float32) float32 {
	return math32.Ceil(x)
}

// Cos returns the cosine of the radian argument x.
func Cos(x float32) float32 {
	return math32.Cos(x)
}

// Cosh returns the hyperbolic cosine of x.
func Cosh(x float32) float32 {
	return math32.Cosh(x)
}

// Exp returns e**x, the base-e exponential of x.
func Exp(x float32) float32 {
	return math32.Exp(x)
}

// Exp2 returns 2**x, the base-2 exponential of x.
func Exp2(x float32) float32 {
	return math32.Exp2(x)
}

// Floor returns the greatest integer value less than or equal to x.
func Floor(x float32) float32 {
	return math32.Floor(x)
}

// Hypot returns Sqrt(p*p + q*q), taking care to avoid
// unnecessary overflow and underflow.
func Hypot(p, q float32) float32 {
	return math32.Hypot(p, q)
}

// Inf returns positive infinity if sign >= 0, negative infinity if sign < 0.
func Inf(sign int) float32 {
	return math32.Inf(sign)
}

// IsInf reports whether f is an infinity, according to sign.
func IsInf(x float32, sign int) bool {
	return math32.IsInf(x, sign)
}

// IsNaN reports whether f is an IEEE 754 “not-a-number” value.
func IsNaN(x float32) bool {
	return math32.IsNaN(x)
}

// Log returns the natural logarithm of x.
func Log(x float32) float32 {
	return math32.Log(x)
}

// Log2 returns the binary logarithm of x.
func Log2(x float32) float32 {
	return math32.Log2(x)
}

// Max returns the larger of x or y.
func Max(x, y float32) float32 {
	return math32.Max(x, y)
}

// Min returns the smaller of x or y.
func Min(x, y float32) float32 {
	return math32.Min(x, y)
}

// Mod returns the floating-point remainder of x/y.
func Mod(x, y float32) float32 {
	return math32.Mod(x, y)
}

// Modf returns integer and fractional floating-point numbers
// that sum to f. Both values have the same sign as f.
func Modf(f float32) (it float32, frac float32) {
	return math32.Modf(f)
}

// NaN returns an IEEE 754 “not-a-number” value.
func NaN() float32 {
	return math32.NaN()
}

// Pow returns x**y, the base-x exponential of y.
func Pow(x, y float32) float32 {
	return math32.Pow(x, y)
}

// Round returns the nearest integer, rounding half away from zero.
func Round(x float32) float32 {
	return math32.Round(x)
}

// RoundToEven returns the nearest integer, rounding ties to even,
// matching IEEE 754 round-half-to-even.
func RoundToEven(x float32) float32 {
	return float32(math.RoundToEven(float64(x)))
}

// Sin returns the sine of the radian argument x.
func Sin(x float32) float32 {
	return math32.Sin(x)
}

// Sincos returns Sin(x), Cos(x).
func Sincos(x float32) (sin, cos float32) {
	return math32.Sincos(x)
}

// Sinh returns the hyperbolic sine of x.
func Sinh(x float32) float32 {
	return math32.Sinh(x)
}

// Sqrt returns the square root of x.
func Sqrt(x float32) float32 {
	return math32.Sqrt(x)
}

// Tan returns the tangent of the radian argument x.
func Tan(x float32) float32 {
	return math32.Tan(x)
}

// Tanh returns the hyperbolic tangent of x.
func Tanh(x float32) float32 {
	return math32.Tanh(x)
}

// Trunc returns the integer value of x.
func Trunc(x float32) float32 {
	return math32.Trunc(x)
}

//////// Shader-style additions

// InverseSqrt returns 1/Sqrt(x).
func InverseSqrt(x float32) float32 {
	return 1 / math32.Sqrt(x)
}

// Fract returns the fractional part of x: x - Floor(x).
func Fract(x float32) float32 {
	return x - math32.Floor(x)
}

// Clamp clamps x to the provided closed interval [lo, hi].
func Clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Lerp returns the linear interpolation between start and stop in
// proportion to amount (the GLSL mix function).
func Lerp(start, stop, amount float32) float32 {
	return (1-amount)*start + amount*stop
}

// Step returns 0 if x < edge and 1 otherwise.
func Step(edge, x float32) float32 {
	if x < edge {
		return 0
	}
	return 1
}

// SmoothStep performs smooth Hermite interpolation between 0 and 1
// as x moves across [lo, hi].
func SmoothStep(lo, hi, x float32) float32 {
	t := Clamp((x-lo)/(hi-lo), 0, 1)
	return t * t * (3 - 2*t)
}

// RoundTo rounds x to the given number of decimal fraction digits.
// The rounding is performed in float64 so that boundary behavior matches
// decimal rounding rather than binary truncation.
func RoundTo(x float32, digits int) float32 {
	pow := math.Pow(10, float64(digits))
	return float32(math.Round(float64(x)*pow) / pow)
}
