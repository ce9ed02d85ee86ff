// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene

import (
	"fmt"
	"strconv"

	"github.com/gogpu/uikit"
)

// PropKind discriminates the open tagged PropValue.
type PropKind uint8

const (
	// PropNil is the zero PropValue, produced by failed lookups.
	PropNil PropKind = iota
	// PropBool holds a boolean.
	PropBool
	// PropInt holds a 64-bit integer.
	PropInt
	// PropFloat holds a 64-bit float.
	PropFloat
	// PropString holds a string.
	PropString
	// PropColor holds a linear-space color specifier.
	PropColor
)

// PropValue is an open tagged value attached to a scene node prop.
// The zero value is PropNil. Values are immutable.
type PropValue struct {
	kind PropKind
	b    bool
	i    int64
	f    float64
	s    string
	c    uikit.Color
}

// Bool wraps a boolean prop value.
func Bool(v bool) PropValue { return PropValue{kind: PropBool, b: v} }

// Int wraps an integer prop value.
func Int(v int64) PropValue { return PropValue{kind: PropInt, i: v} }

// Float wraps a float prop value.
func Float(v float64) PropValue { return PropValue{kind: PropFloat, f: v} }

// String wraps a string prop value.
func String(v string) PropValue { return PropValue{kind: PropString, s: v} }

// ColorValue wraps an already-parsed linear-space color.
func ColorValue(c uikit.Color) PropValue { return PropValue{kind: PropColor, c: c} }

// ColorString parses a hex color specifier into a color prop value.
// Invalid input parses to transparent black, matching uikit.Hex.
func ColorString(hex string) PropValue { return ColorValue(uikit.Hex(hex)) }

// Kind returns the value's variant tag.
func (v PropValue) Kind() PropKind { return v.kind }

// AsBool returns the boolean payload.
func (v PropValue) AsBool() (bool, bool) {
	if v.kind != PropBool {
		return false, false
	}
	return v.b, true
}

// AsFloat returns the numeric payload. Integer values convert.
func (v PropValue) AsFloat() (float64, bool) {
	switch v.kind {
	case PropInt:
		return float64(v.i), true
	case PropFloat:
		return v.f, true
	default:
		return 0, false
	}
}

// AsString returns the string payload.
func (v PropValue) AsString() (string, bool) {
	if v.kind != PropString {
		return "", false
	}
	return v.s, true
}

// AsColor returns the color payload. String values are parsed as hex
// specifiers, so "#4cc9f0" works wherever a color prop is expected.
func (v PropValue) AsColor() (uikit.Color, bool) {
	switch v.kind {
	case PropColor:
		return v.c, true
	case PropString:
		return uikit.Hex(v.s), true
	default:
		return uikit.Color{}, false
	}
}

// Equal reports structural equality of two prop values.
func (v PropValue) Equal(o PropValue) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case PropBool:
		return v.b == o.b
	case PropInt:
		return v.i == o.i
	case PropFloat:
		return v.f == o.f
	case PropString:
		return v.s == o.s
	case PropColor:
		return v.c == o.c
	default:
		return true
	}
}

// String renders the value for error messages and debug logs.
func (v PropValue) String() string {
	switch v.kind {
	case PropBool:
		return strconv.FormatBool(v.b)
	case PropInt:
		return strconv.FormatInt(v.i, 10)
	case PropFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case PropString:
		return strconv.Quote(v.s)
	case PropColor:
		return fmt.Sprintf("color(%.3f, %.3f, %.3f, %.3f)", v.c.R, v.c.G, v.c.B, v.c.A)
	default:
		return "nil"
	}
}
