// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/uikit"
)

// tessellateRects turns rect commands into a clip-space triangle list.
// Returns the interleaved vertex floats (x, y, r, g, b, a per vertex)
// and the per-command draw ranges with resolved scissors. Commands
// that resolve to no visible geometry produce no range.
func tessellateRects(commands []RectCommand, surfaceW, surfaceH uint32) ([]float32, []drawRange) {
	t := &rectTessellator{
		invW: 1 / float32(surfaceW),
		invH: 1 / float32(surfaceH),
	}
	surface := SurfaceScissor(surfaceW, surfaceH)

	var ranges []drawRange
	for i := range commands {
		cmd := &commands[i]
		if cmd.Width <= 0 || cmd.Height <= 0 {
			continue
		}
		scissor := surface
		if cmd.Clip != nil {
			scissor = surface.Intersect(*cmd.Clip)
		}
		if scissor.Empty() {
			continue
		}

		first := t.vertexCount()
		t.addCommand(cmd)
		count := t.vertexCount() - first
		if count == 0 {
			continue
		}
		ranges = append(ranges, drawRange{first: first, count: count, scissor: scissor})
	}
	return t.verts, ranges
}

type rectTessellator struct {
	verts []float32
	invW  float32
	invH  float32
}

func (t *rectTessellator) vertexCount() uint32 {
	return uint32(len(t.verts) / 6)
}

func (t *rectTessellator) addCommand(cmd *RectCommand) {
	opacity := cmd.Opacity
	if opacity <= 0 {
		return
	}
	if opacity > 1 {
		opacity = 1
	}

	radius := cmd.Radius
	if m := min(cmd.Width, cmd.Height) / 2; radius > m {
		radius = m
	}

	fill := paintColor(cmd.Fill, opacity)
	if fill[3] > 0 {
		if radius > 0 {
			t.addRoundedRect(cmd.X, cmd.Y, cmd.Width, cmd.Height, radius, fill)
		} else {
			t.addQuad(cmd.X, cmd.Y, cmd.Width, cmd.Height, fill)
		}
	}

	bw := cmd.BorderWidth
	border := paintColor(cmd.BorderColor, opacity)
	if bw > 0 && border[3] > 0 {
		if bw*2 >= cmd.Width || bw*2 >= cmd.Height {
			// Border swallows the whole rect.
			t.addQuad(cmd.X, cmd.Y, cmd.Width, cmd.Height, border)
			return
		}
		// Four side strips between the outer rect and the inset rect.
		t.addQuad(cmd.X, cmd.Y, cmd.Width, bw, border)
		t.addQuad(cmd.X, cmd.Y+cmd.Height-bw, cmd.Width, bw, border)
		t.addQuad(cmd.X, cmd.Y+bw, bw, cmd.Height-2*bw, border)
		t.addQuad(cmd.X+cmd.Width-bw, cmd.Y+bw, bw, cmd.Height-2*bw, border)
	}
}

// paintColor premultiplies a straight-alpha color after applying the
// command opacity.
func paintColor(c uikit.Color, opacity float32) [4]float32 {
	c.A *= opacity
	p := c.Premultiply()
	return [4]float32{p.R, p.G, p.B, p.A}
}

func (t *rectTessellator) addQuad(x, y, w, h float32, color [4]float32) {
	x0, y0 := x, y
	x1, y1 := x+w, y+h
	t.addTri(x0, y0, x1, y0, x1, y1, color)
	t.addTri(x0, y0, x1, y1, x0, y1, color)
}

// addRoundedRect fans a convex rounded-rect outline around its center.
func (t *rectTessellator) addRoundedRect(x, y, w, h, radius float32, color [4]float32) {
	cx := x + w/2
	cy := y + h/2

	// Corner arc centers, in fan order starting top-left.
	corners := [4][2]float32{
		{x + radius, y + radius},
		{x + w - radius, y + radius},
		{x + w - radius, y + h - radius},
		{x + radius, y + h - radius},
	}
	// Arc start angles per corner (top-left sweeps from 180° to 270°).
	starts := [4]float32{math.Pi, math.Pi * 1.5, 0, math.Pi * 0.5}

	var perimeter [][2]float32
	for c := 0; c < 4; c++ {
		for s := 0; s <= cornerSegments; s++ {
			a := starts[c] + float32(s)/float32(cornerSegments)*math.Pi/2
			px := corners[c][0] + radius*float32(math.Cos(float64(a)))
			py := corners[c][1] + radius*float32(math.Sin(float64(a)))
			perimeter = append(perimeter, [2]float32{px, py})
		}
	}
	for i := range perimeter {
		p0 := perimeter[i]
		p1 := perimeter[(i+1)%len(perimeter)]
		t.addTri(cx, cy, p0[0], p0[1], p1[0], p1[1], color)
	}
}

func (t *rectTessellator) addTri(x0, y0, x1, y1, x2, y2 float32, color [4]float32) {
	t.addVertex(x0, y0, color)
	t.addVertex(x1, y1, color)
	t.addVertex(x2, y2, color)
}

func (t *rectTessellator) addVertex(x, y float32, color [4]float32) {
	ndcX := x*t.invW*2 - 1
	ndcY := 1 - y*t.invH*2
	t.verts = append(t.verts, ndcX, ndcY, color[0], color[1], color[2], color[3])
}

// floatBytes reinterprets a float32 slice as little-endian bytes for
// buffer upload.
func floatBytes(data []float32) []byte {
	out := make([]byte, len(data)*4)
	for i, f := range data {
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(f))
	}
	return out
}
