// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"testing"

	"github.com/gogpu/uikit"
)

func TestTessellatePlainRect(t *testing.T) {
	cmds := []RectCommand{{
		X: 10, Y: 10, Width: 20, Height: 20,
		Fill:    uikit.Color{R: 1, A: 1},
		Opacity: 1,
	}}
	verts, ranges := tessellateRects(cmds, 100, 100)

	if len(ranges) != 1 {
		t.Fatalf("got %d ranges, want 1", len(ranges))
	}
	// Two triangles, six vertices, six floats each.
	if ranges[0].count != 6 {
		t.Errorf("vertex count = %d, want 6", ranges[0].count)
	}
	if len(verts) != 36 {
		t.Errorf("float count = %d, want 36", len(verts))
	}
	// First vertex is the top-left corner in clip space.
	wantX := float32(10)/100*2 - 1
	wantY := 1 - float32(10)/100*2
	if verts[0] != wantX || verts[1] != wantY {
		t.Errorf("first vertex = (%v, %v), want (%v, %v)", verts[0], verts[1], wantX, wantY)
	}
}

func TestTessellateRoundedRectIsFan(t *testing.T) {
	cmds := []RectCommand{{
		X: 0, Y: 0, Width: 40, Height: 40, Radius: 8,
		Fill:    uikit.Color{B: 1, A: 1},
		Opacity: 1,
	}}
	_, ranges := tessellateRects(cmds, 100, 100)
	if len(ranges) != 1 {
		t.Fatalf("got %d ranges, want 1", len(ranges))
	}
	// Four corners, cornerSegments+1 points each, one triangle per
	// perimeter edge, three vertices per triangle.
	wantVerts := uint32(4*(cornerSegments+1)) * 3
	if ranges[0].count != wantVerts {
		t.Errorf("vertex count = %d, want %d", ranges[0].count, wantVerts)
	}
}

func TestTessellateBorderStrips(t *testing.T) {
	cmds := []RectCommand{{
		X: 0, Y: 0, Width: 40, Height: 40,
		BorderColor: uikit.Color{A: 1},
		BorderWidth: 2,
		Opacity:     1,
	}}
	_, ranges := tessellateRects(cmds, 100, 100)
	if len(ranges) != 1 {
		t.Fatalf("got %d ranges, want 1", len(ranges))
	}
	// No fill, four border strips of two triangles each.
	if ranges[0].count != 24 {
		t.Errorf("vertex count = %d, want 24", ranges[0].count)
	}
}

func TestTessellateSkipsInvisible(t *testing.T) {
	cmds := []RectCommand{
		{X: 0, Y: 0, Width: 10, Height: 10, Fill: uikit.Color{R: 1, A: 1}, Opacity: 0},
		{X: 0, Y: 0, Width: 0, Height: 10, Fill: uikit.Color{R: 1, A: 1}, Opacity: 1},
		{X: 0, Y: 0, Width: 10, Height: 10, Fill: uikit.Transparent, Opacity: 1},
	}
	verts, ranges := tessellateRects(cmds, 100, 100)
	if len(ranges) != 0 || len(verts) != 0 {
		t.Errorf("invisible commands produced %d ranges, %d floats", len(ranges), len(verts))
	}
}

func TestTessellateClipResolvesScissor(t *testing.T) {
	clip := ScissorRect{X: 0, Y: 0, Width: 15, Height: 15}
	cmds := []RectCommand{{
		X: 10, Y: 10, Width: 20, Height: 20,
		Fill:    uikit.Color{G: 1, A: 1},
		Opacity: 1,
		Clip:    &clip,
	}}
	_, ranges := tessellateRects(cmds, 100, 100)
	if len(ranges) != 1 {
		t.Fatalf("got %d ranges, want 1", len(ranges))
	}
	want := ScissorRect{X: 0, Y: 0, Width: 15, Height: 15}
	if ranges[0].scissor != want {
		t.Errorf("scissor = %+v, want %+v", ranges[0].scissor, want)
	}
}

func TestTessellateOffSurfaceClipDropsCommand(t *testing.T) {
	clip := ScissorRect{X: 500, Y: 500, Width: 10, Height: 10}
	cmds := []RectCommand{{
		X: 0, Y: 0, Width: 20, Height: 20,
		Fill:    uikit.Color{G: 1, A: 1},
		Opacity: 1,
		Clip:    &clip,
	}}
	_, ranges := tessellateRects(cmds, 100, 100)
	if len(ranges) != 0 {
		t.Errorf("clipped-away command produced %d ranges", len(ranges))
	}
}

func TestPaintColorPremultiplies(t *testing.T) {
	got := paintColor(uikit.Color{R: 1, G: 0.5, B: 0, A: 0.8}, 0.5)
	// Alpha = 0.8 * 0.5 = 0.4; RGB scaled by alpha.
	want := [4]float32{0.4, 0.2, 0, 0.4}
	for i := range want {
		if diff := got[i] - want[i]; diff > 1e-6 || diff < -1e-6 {
			t.Errorf("component %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFloatBytes(t *testing.T) {
	b := floatBytes([]float32{1})
	// 1.0 is 0x3F800000 little-endian.
	want := []byte{0x00, 0x00, 0x80, 0x3F}
	if len(b) != 4 {
		t.Fatalf("len = %d, want 4", len(b))
	}
	for i := range want {
		if b[i] != want[i] {
			t.Errorf("byte %d = %#x, want %#x", i, b[i], want[i])
		}
	}
}
