// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

// ScissorRect is a clip rectangle in surface pixels.
type ScissorRect struct {
	X      uint32
	Y      uint32
	Width  uint32
	Height uint32
}

// SurfaceScissor returns the rect covering the whole surface.
func SurfaceScissor(width, height uint32) ScissorRect {
	return ScissorRect{Width: width, Height: height}
}

// Empty reports whether the rect clips everything away.
func (r ScissorRect) Empty() bool {
	return r.Width == 0 || r.Height == 0
}

// Intersect returns the overlap of two rects. Arithmetic saturates:
// disjoint rects yield an empty result, never an underflowed one.
func (r ScissorRect) Intersect(o ScissorRect) ScissorRect {
	x := max(r.X, o.X)
	y := max(r.Y, o.Y)
	rx := min(r.X+r.Width, o.X+o.Width)
	by := min(r.Y+r.Height, o.Y+o.Height)

	var out ScissorRect
	out.X, out.Y = x, y
	if rx > x {
		out.Width = rx - x
	}
	if by > y {
		out.Height = by - y
	}
	return out
}
