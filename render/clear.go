// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/uikit"
	"github.com/gogpu/uikit/framegraph"
)

// ClearPass opens the frame: it clears the surface to a solid color
// and the depth/stencil buffer to their reset values, and publishes
// the backbuffer slot later passes draw over.
type ClearPass struct {
	color uikit.Color
	desc  framegraph.TextureDesc
	out   framegraph.OutTexture
}

var _ framegraph.Pass = (*ClearPass)(nil)

// NewClearPass creates the pass for one frame of the given surface.
func NewClearPass(color uikit.Color, width, height uint32, format gputypes.TextureFormat) *ClearPass {
	p := &ClearPass{color: color}
	p.desc = framegraph.TextureDesc{
		Label:     "backbuffer",
		Width:     width,
		Height:    height,
		Format:    format,
		Dimension: gputypes.TextureDimension2D,
		Usage:     gputypes.TextureUsageRenderAttachment,
	}
	return p
}

// Output is the backbuffer slot for downstream passes to read.
func (p *ClearPass) Output() *framegraph.OutTexture { return &p.out }

// Name implements framegraph.Pass.
func (p *ClearPass) Name() string { return "clear" }

// Build implements framegraph.Pass.
func (p *ClearPass) Build(b *framegraph.BuildContext) {
	p.out = b.CreateTexture("backbuffer", p.desc)
}

// Execute implements framegraph.Pass.
func (p *ClearPass) Execute(ctx *framegraph.PassContext) {
	parts := ctx.Viewport.FrameParts()
	if parts == nil {
		return
	}
	c := p.color.Premultiply()
	rp := parts.Encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "uikit_clear",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:       parts.View,
			LoadOp:     gputypes.LoadOpClear,
			StoreOp:    gputypes.StoreOpStore,
			ClearValue: c.GPU(),
		}},
		DepthStencilAttachment: parts.DepthStencilAttachment(gputypes.LoadOpClear, gputypes.LoadOpClear),
	})
	rp.End()
}
