// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/uikit/framegraph"
)

// renderTargetStoreKey is the store's slot in the viewport cache.
const renderTargetStoreKey uint64 = 200

// RenderTarget is one offscreen color target, materialized lazily.
type RenderTarget struct {
	Texture hal.Texture
	View    hal.TextureView
}

// RenderTargetStore keeps offscreen targets across frames, keyed by a
// caller-chosen id. All entries share the surface format and size; a
// change to either invalidates the whole store, not single entries.
type RenderTargetStore struct {
	format  gputypes.TextureFormat
	width   uint32
	height  uint32
	targets map[uint64]*RenderTarget
}

// RenderTargets returns the viewport's target store from the cache,
// creating it on first use and flushing it when the surface format or
// size no longer matches.
func RenderTargets(cache *framegraph.ResourceCache, device hal.Device, format gputypes.TextureFormat, width, height uint32) *RenderTargetStore {
	s := framegraph.GetOrInsertWith(cache, renderTargetStoreKey, func() *RenderTargetStore {
		return &RenderTargetStore{
			format:  format,
			width:   width,
			height:  height,
			targets: make(map[uint64]*RenderTarget),
		}
	})
	if s.format != format || s.width != width || s.height != height {
		s.Invalidate(device)
		s.format = format
		s.width = width
		s.height = height
	}
	return s
}

// Acquire returns the target for id, creating its texture on first
// access.
func (s *RenderTargetStore) Acquire(device hal.Device, id uint64) (*RenderTarget, error) {
	if t, ok := s.targets[id]; ok {
		return t, nil
	}
	if device == nil {
		return nil, fmt.Errorf("render target store: no device")
	}
	tex, err := device.CreateTexture(&hal.TextureDescriptor{
		Label:         "uikit_offscreen",
		Size:          hal.Extent3D{Width: s.width, Height: s.height, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        s.format,
		Usage:         gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageTextureBinding,
	})
	if err != nil {
		return nil, fmt.Errorf("create offscreen texture: %w", err)
	}
	view, err := device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label: "uikit_offscreen_view",
	})
	if err != nil {
		device.DestroyTexture(tex)
		return nil, fmt.Errorf("create offscreen view: %w", err)
	}
	t := &RenderTarget{Texture: tex, View: view}
	s.targets[id] = t
	return t, nil
}

// Len returns the number of live targets.
func (s *RenderTargetStore) Len() int { return len(s.targets) }

// Invalidate destroys every target. Called on format or size change;
// entries are re-materialized on next Acquire.
func (s *RenderTargetStore) Invalidate(device hal.Device) {
	for id, t := range s.targets {
		if device != nil {
			if t.View != nil {
				device.DestroyTextureView(t.View)
			}
			if t.Texture != nil {
				device.DestroyTexture(t.Texture)
			}
		}
		delete(s.targets, id)
	}
}
