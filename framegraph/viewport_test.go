// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package framegraph

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// nopViewport is a headless viewport: no device, no frame. Passes see
// it exactly like a real viewport whose frame acquisition failed.
type nopViewport struct{}

func (nopViewport) Device() hal.Device { return nil }
func (nopViewport) Queue() hal.Queue   { return nil }
func (nopViewport) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}
func (nopViewport) SurfaceSize() (uint32, uint32) { return 64, 64 }
func (nopViewport) FrameParts() *FrameParts       { return nil }

var _ Viewport = nopViewport{}
