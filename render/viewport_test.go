// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

type mockDevice struct{}

func (m *mockDevice) Poll(wait bool) {}
func (m *mockDevice) Destroy()       {}

type mockQueue struct{}

type mockAdapter struct{}

// mockProvider implements gpucontext.DeviceProvider without the hal
// handle accessors, so sharing must degrade to headless.
type mockProvider struct {
	format gputypes.TextureFormat
}

func (m *mockProvider) Device() gpucontext.Device             { return &mockDevice{} }
func (m *mockProvider) Queue() gpucontext.Queue               { return &mockQueue{} }
func (m *mockProvider) Adapter() gpucontext.Adapter           { return &mockAdapter{} }
func (m *mockProvider) SurfaceFormat() gputypes.TextureFormat { return m.format }

func TestViewportAdoptsProviderFormat(t *testing.T) {
	provider := &mockProvider{format: gputypes.TextureFormatRGBA8Unorm}
	vp := NewViewport(640, 480, WithDeviceProvider(provider))
	defer vp.Close()

	if vp.SurfaceFormat() != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("format = %v, want provider's", vp.SurfaceFormat())
	}
	// No hal handles on the provider: the viewport stays headless.
	if vp.Device() != nil {
		t.Error("viewport acquired a device from a hal-less provider")
	}
}

func TestViewportHeadlessFrameLifecycle(t *testing.T) {
	vp := NewViewport(320, 240)
	defer vp.Close()

	if err := vp.BeginFrame(); err != nil {
		t.Fatalf("BeginFrame: %v", err)
	}
	if vp.FrameParts() != nil {
		t.Error("headless frame published frame parts")
	}
	if err := vp.EndFrame(); err != nil {
		t.Fatalf("EndFrame: %v", err)
	}
}

func TestViewportResize(t *testing.T) {
	vp := NewViewport(320, 240)
	defer vp.Close()

	vp.Resize(800, 600)
	w, h := vp.SurfaceSize()
	if w != 800 || h != 600 {
		t.Errorf("size = (%d, %d), want (800, 600)", w, h)
	}
}

func TestViewportCloseIsIdempotent(t *testing.T) {
	vp := NewViewport(320, 240)
	vp.Close()
	vp.Close()
}
