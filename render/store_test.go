// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/uikit/framegraph"
)

func TestRenderTargetsSurvivesMatchingFrames(t *testing.T) {
	cache := framegraph.NewResourceCache()
	s1 := RenderTargets(cache, nil, gputypes.TextureFormatBGRA8Unorm, 800, 600)
	s2 := RenderTargets(cache, nil, gputypes.TextureFormatBGRA8Unorm, 800, 600)
	if s1 != s2 {
		t.Error("matching frames returned different stores")
	}
}

func TestRenderTargetsInvalidatesOnResize(t *testing.T) {
	cache := framegraph.NewResourceCache()
	s := RenderTargets(cache, nil, gputypes.TextureFormatBGRA8Unorm, 800, 600)
	s.targets[7] = &RenderTarget{}
	s.targets[8] = &RenderTarget{}

	// Same store object, but all entries flushed.
	s2 := RenderTargets(cache, nil, gputypes.TextureFormatBGRA8Unorm, 1024, 768)
	if s2 != s {
		t.Fatal("resize replaced the store instead of invalidating it")
	}
	if s2.Len() != 0 {
		t.Errorf("store has %d targets after resize, want 0", s2.Len())
	}
}

func TestRenderTargetsInvalidatesOnFormatChange(t *testing.T) {
	cache := framegraph.NewResourceCache()
	s := RenderTargets(cache, nil, gputypes.TextureFormatBGRA8Unorm, 800, 600)
	s.targets[1] = &RenderTarget{}

	RenderTargets(cache, nil, gputypes.TextureFormatRGBA8Unorm, 800, 600)
	if s.Len() != 0 {
		t.Errorf("store has %d targets after format change, want 0", s.Len())
	}
}

func TestAcquireWithoutDeviceFails(t *testing.T) {
	cache := framegraph.NewResourceCache()
	s := RenderTargets(cache, nil, gputypes.TextureFormatBGRA8Unorm, 800, 600)
	if _, err := s.Acquire(nil, 1); err == nil {
		t.Error("Acquire without a device succeeded")
	}
}
