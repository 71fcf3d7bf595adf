// Copyright 2025 The Vgmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgmath

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// view returns a full-capacity subslice of size elements of buf starting at
// offset. The result aliases buf: mutations through the view are observable
// through buf and any other view of the same region.
func view(buf []float32, offset, size int) ([]float32, error) {
	if offset < 0 || offset+size > len(buf) {
		return nil, fmt.Errorf("%w: need %d floats at offset %d in buffer of %d", ErrOutOfBounds, size, offset, len(buf))
	}
	return buf[offset : offset+size : offset+size], nil
}

// sliceCheck validates that vals holds size components starting at offset.
func sliceCheck(vals []float32, offset, size int) error {
	if offset < 0 || offset+size > len(vals) {
		return fmt.Errorf("%w: need %d floats at offset %d, have %d", ErrBadLength, size, offset, len(vals))
	}
	return nil
}

// DefaultFractionDigits is the maximum number of fraction digits used when
// formatting components as strings.
const DefaultFractionDigits = 5

// formatComponents renders vals as "[ v0, v1, ... ]" with each value rounded
// to at most digits fraction digits and printed in shortest form.
func formatComponents(vals []float32, digits int) string {
	var b strings.Builder
	b.WriteString("[ ")
	for i, v := range vals {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatFloat(float64(RoundTo(v, digits)), 'g', -1, 32))
	}
	b.WriteString(" ]")
	return b.String()
}

// equalsRounded reports whether a and b are equal after rounding each
// per-component difference to the given number of decimal fraction digits.
// Two components compare equal iff their difference rounds to zero.
func equalsRounded(a, b []float32, digits int) bool {
	for i := range a {
		if RoundTo(a[i]-b[i], digits) != 0 {
			return false
		}
	}
	return true
}

// roundedInto writes RoundTo of each src component into dst.
func roundedInto(dst, src []float32, digits int) {
	for i, v := range src {
		dst[i] = RoundTo(v, digits)
	}
}

// marshalComponents renders vals as a flat JSON number array.
func marshalComponents(vals []float32) ([]byte, error) {
	return json.Marshal(vals)
}

// unmarshalComponents parses a flat JSON number array of exactly size
// elements into dst.
func unmarshalComponents(dst []float32, data []byte, size int) error {
	var vals []float32
	if err := json.Unmarshal(data, &vals); err != nil {
		return fmt.Errorf("vgmath: %w", err)
	}
	if len(vals) != size {
		return fmt.Errorf("%w: need %d components, have %d", ErrBadLength, size, len(vals))
	}
	copy(dst, vals)
	return nil
}
