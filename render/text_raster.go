// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/uikit"
)

var (
	uiFontOnce sync.Once
	uiFontFace *opentype.Font
	uiFontErr  error
)

// uiFont parses the bundled fallback font once.
func uiFont() (*opentype.Font, error) {
	uiFontOnce.Do(func() {
		uiFontFace, uiFontErr = opentype.Parse(goregular.TTF)
	})
	return uiFontFace, uiFontErr
}

// rasterizeText draws one text run into a premultiplied RGBA image.
// The text color arrives in linear space and is converted to sRGB for
// the rasterizer; opacity scales alpha. Returns nil for runs that
// produce no pixels.
func rasterizeText(content string, size float32, c uikit.Color, opacity float32) (*image.RGBA, error) {
	if content == "" || size <= 0 {
		return nil, nil
	}
	parsed, err := uiFont()
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create face: %w", err)
	}
	defer face.Close()

	d := &font.Drawer{Face: face}
	width := d.MeasureString(content).Ceil()
	metrics := face.Metrics()
	height := metrics.Height.Ceil()
	if width <= 0 || height <= 0 {
		return nil, nil
	}

	a := c.A * opacity
	src := color.NRGBA{
		R: uint8(uikit.LinearToSRGB(c.R)*255 + 0.5),
		G: uint8(uikit.LinearToSRGB(c.G)*255 + 0.5),
		B: uint8(uikit.LinearToSRGB(c.B)*255 + 0.5),
		A: uint8(clampUnit(a)*255 + 0.5),
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	d.Dst = img
	d.Src = image.NewUniform(src)
	d.Dot = fixed.P(0, metrics.Ascent.Ceil())
	d.DrawString(content)
	return img, nil
}

func clampUnit(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
