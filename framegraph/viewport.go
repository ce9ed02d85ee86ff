// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package framegraph

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Viewport is the surface a graph renders into. Device may return nil
// (no GPU available); resource materialization is skipped then.
// FrameParts may return nil (no frame acquired this tick); passes must
// record no commands then.
type Viewport interface {
	Device() hal.Device
	Queue() hal.Queue
	SurfaceFormat() gputypes.TextureFormat
	SurfaceSize() (width, height uint32)
	FrameParts() *FrameParts
}

// FrameParts bundles the per-frame handles a pass records against: the
// open command encoder, the swapchain view, and the optional depth
// view. Valid only between a viewport's frame begin and end.
type FrameParts struct {
	Encoder   hal.CommandEncoder
	View      hal.TextureView
	DepthView hal.TextureView
}

// DepthStencilAttachment returns an attachment over the depth view
// with the given load ops, or nil when the viewport has no depth
// buffer. Cleared depth is 1.0 and cleared stencil is 0.
func (p *FrameParts) DepthStencilAttachment(depthLoad, stencilLoad gputypes.LoadOp) *hal.RenderPassDepthStencilAttachment {
	if p.DepthView == nil {
		return nil
	}
	return &hal.RenderPassDepthStencilAttachment{
		View:              p.DepthView,
		DepthLoadOp:       depthLoad,
		DepthStoreOp:      gputypes.StoreOpStore,
		DepthClearValue:   1.0,
		StencilLoadOp:     stencilLoad,
		StencilStoreOp:    gputypes.StoreOpStore,
		StencilClearValue: 0,
	}
}
