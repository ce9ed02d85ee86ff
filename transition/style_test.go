// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package transition

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/uikit"
)

func newStyleFixture() (*Engine, *StylePlugin) {
	e := NewEngine()
	p := NewStylePlugin(nil)
	e.RegisterPlugin(p, StyleChannels...)
	return e, p
}

func TestStyleOpacityTrack(t *testing.T) {
	e, p := newStyleFixture()
	p.SetValue(1, ChannelStyleOpacity, ScalarValue(1))
	err := p.AnimateScalar(e, 1, ChannelStyleOpacity, 0, Spec{DurationSeconds: 1})
	if err != nil {
		t.Fatal(err)
	}

	res := e.RunFrame(0.25)
	if !res.NeedsPaint {
		t.Error("opacity sample should request paint")
	}
	if res.NeedsLayout {
		t.Error("opacity is paint-only, layout requested")
	}
	v, _ := p.Value(1, ChannelStyleOpacity)
	if math.Abs(float64(v.Scalar-0.75)) > 1e-6 {
		t.Errorf("opacity = %v, want 0.75", v.Scalar)
	}
}

func TestStyleGeometryRequestsLayout(t *testing.T) {
	e, p := newStyleFixture()
	p.SetValue(1, ChannelStyleWidth, ScalarValue(100))
	err := p.AnimateScalar(e, 1, ChannelStyleWidth, 200, Spec{DurationSeconds: 1})
	if err != nil {
		t.Fatal(err)
	}
	if res := e.RunFrame(0.1); !res.NeedsLayout {
		t.Error("width sample should request layout")
	}
}

func TestStyleColorLerp(t *testing.T) {
	e, p := newStyleFixture()
	from := uikit.Color{R: 1, A: 1}
	to := uikit.Color{B: 1, A: 1}
	p.SetValue(1, ChannelStyleBackground, ColorValue(from))
	err := p.AnimateColor(e, 1, ChannelStyleBackground, to, Spec{DurationSeconds: 1})
	if err != nil {
		t.Fatal(err)
	}

	e.RunFrame(0.5)
	v, _ := p.Value(1, ChannelStyleBackground)
	if !v.IsColor {
		t.Fatal("sample is not a color")
	}
	want := uikit.Color{R: 0.5, B: 0.5, A: 1}
	if v.Color != want {
		t.Errorf("color = %+v, want %+v", v.Color, want)
	}
}

func TestStyleChannelKindValidation(t *testing.T) {
	e, p := newStyleFixture()

	var ierr *InvalidInputError
	if err := p.AnimateScalar(e, 1, ChannelStyleBackground, 1, Spec{}); !errors.As(err, &ierr) {
		t.Errorf("scalar on color channel: err = %v, want InvalidInputError", err)
	}
	if err := p.AnimateColor(e, 1, ChannelStyleOpacity, uikit.Transparent, Spec{}); !errors.As(err, &ierr) {
		t.Errorf("color on scalar channel: err = %v, want InvalidInputError", err)
	}
	if err := p.AnimateScalar(e, 1, ChannelVisualX, 1, Spec{}); !errors.As(err, &ierr) {
		t.Errorf("visual channel on style plugin: err = %v, want InvalidInputError", err)
	}
}

func TestStyleUnseededColorStartsTransparent(t *testing.T) {
	e, p := newStyleFixture()
	to := uikit.Color{R: 1, A: 1}
	err := p.AnimateColor(e, 1, ChannelStyleBorderColor, to, Spec{DurationSeconds: 1})
	if err != nil {
		t.Fatal(err)
	}
	e.RunFrame(0.5)
	v, _ := p.Value(1, ChannelStyleBorderColor)
	want := uikit.Color{R: 0.5, A: 0.5}
	if v.Color != want {
		t.Errorf("color = %+v, want %+v", v.Color, want)
	}
}
