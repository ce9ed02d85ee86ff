// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene

import (
	"testing"

	"github.com/gogpu/uikit"
)

func TestPropAccessors(t *testing.T) {
	if v, ok := Bool(true).AsBool(); !ok || !v {
		t.Error("bool round trip failed")
	}
	if _, ok := Bool(true).AsFloat(); ok {
		t.Error("bool reported a float payload")
	}
	if v, ok := Int(42).AsFloat(); !ok || v != 42 {
		t.Error("int should convert through AsFloat")
	}
	if v, ok := Float(1.5).AsFloat(); !ok || v != 1.5 {
		t.Error("float round trip failed")
	}
	if v, ok := String("hi").AsString(); !ok || v != "hi" {
		t.Error("string round trip failed")
	}
	c := uikit.Hex("#ff0000")
	if v, ok := ColorValue(c).AsColor(); !ok || v != c {
		t.Error("color round trip failed")
	}
}

func TestStringPropParsesAsColor(t *testing.T) {
	v, ok := String("#ff0000").AsColor()
	if !ok {
		t.Fatal("string prop did not parse as color")
	}
	if v != uikit.Hex("#ff0000") {
		t.Errorf("parsed color = %+v", v)
	}
	// Invalid specifiers follow uikit.Hex and come back transparent.
	if v, ok := String("nope").AsColor(); !ok || v != uikit.Transparent {
		t.Errorf("invalid specifier = %+v, ok %v", v, ok)
	}
}

func TestPropEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b PropValue
		want bool
	}{
		{"same float", Float(1), Float(1), true},
		{"different float", Float(1), Float(2), false},
		{"int vs float of same magnitude", Int(1), Float(1), false},
		{"same string", String("a"), String("a"), true},
		{"same color", ColorString("#fff"), ColorString("#ffffff"), true},
		{"zero values", PropValue{}, PropValue{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPropString(t *testing.T) {
	tests := []struct {
		in   PropValue
		want string
	}{
		{Bool(true), "true"},
		{Int(-3), "-3"},
		{Float(1.5), "1.5"},
		{String("hi"), `"hi"`},
		{PropValue{}, "nil"},
	}
	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
