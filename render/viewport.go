// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render hosts the GPU-facing half of uikit: the viewport that
// owns device, surface target and per-frame encoder, the render passes
// the frame graph executes, and the backend that turns a scene tree
// into those passes.
package render

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/uikit"
	"github.com/gogpu/uikit/framegraph"
)

// halProvider is the shape a host device provider must have to share
// its hal handles: HalDevice() any and HalQueue() any returning
// hal.Device and hal.Queue. Providers from the gogpu stack expose
// these alongside the gpucontext.DeviceProvider surface.
type halProvider interface {
	HalDevice() any
	HalQueue() any
}

// Viewport owns the render target a uikit tree draws into: the GPU
// device and queue, the offscreen color and depth textures, the
// per-frame command encoder, and the cross-frame resource cache.
//
// A viewport without a device is valid and renders nothing; every
// frame-graph pass sees nil FrameParts and no-ops. This keeps
// headless environments and tests on the same code path.
type Viewport struct {
	device     hal.Device
	queue      hal.Queue
	instance   hal.Instance
	ownsDevice bool

	format gputypes.TextureFormat
	width  uint32
	height uint32

	colorTex  hal.Texture
	colorView hal.TextureView
	depthTex  hal.Texture
	depthView hal.TextureView

	encoder hal.CommandEncoder
	parts   *framegraph.FrameParts
	cache   *framegraph.ResourceCache

	// Transient resources handed over by passes, destroyed after the
	// frame's fence signals.
	deferredBuffers    []hal.Buffer
	deferredTextures   []hal.Texture
	deferredViews      []hal.TextureView
	deferredBindGroups []hal.BindGroup
}

var _ framegraph.Viewport = (*Viewport)(nil)

// ViewportOption configures NewViewport.
type ViewportOption func(*Viewport)

// WithDeviceProvider shares the host application's GPU device instead
// of opening one, and adopts the host's surface format. The provider
// must additionally expose HalDevice() any and HalQueue() any
// returning hal.Device and hal.Queue.
func WithDeviceProvider(provider gpucontext.DeviceProvider) ViewportOption {
	return func(v *Viewport) {
		if provider == nil {
			return
		}
		v.format = provider.SurfaceFormat()
		hp, ok := provider.(halProvider)
		if !ok {
			uikit.Logger().Warn("device provider does not expose hal handles")
			return
		}
		device, ok := hp.HalDevice().(hal.Device)
		if !ok {
			uikit.Logger().Warn("provider HalDevice is not hal.Device")
			return
		}
		queue, ok := hp.HalQueue().(hal.Queue)
		if !ok {
			uikit.Logger().Warn("provider HalQueue is not hal.Queue")
			return
		}
		v.device = device
		v.queue = queue
	}
}

// WithSurfaceFormat overrides the color target format. Default is
// BGRA8Unorm, matching common swapchains.
func WithSurfaceFormat(format gputypes.TextureFormat) ViewportOption {
	return func(v *Viewport) { v.format = format }
}

// WithOwnDevice makes the viewport open its own Vulkan device when no
// provider is configured. Failure to open one is not an error; the
// viewport stays headless.
func WithOwnDevice() ViewportOption {
	return func(v *Viewport) {
		if v.device != nil {
			return
		}
		if err := v.initDevice(); err != nil {
			uikit.Logger().Info("no GPU device, rendering disabled",
				slog.String("reason", err.Error()))
		}
	}
}

// NewViewport creates a viewport with the given surface size. Without
// WithDeviceProvider or WithOwnDevice the viewport is headless.
func NewViewport(width, height uint32, opts ...ViewportOption) *Viewport {
	v := &Viewport{
		format: gputypes.TextureFormatBGRA8Unorm,
		width:  width,
		height: height,
		cache:  framegraph.NewResourceCache(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func (v *Viewport) initDevice() error {
	backend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return fmt.Errorf("vulkan backend not available")
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return fmt.Errorf("create instance: %w", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		return fmt.Errorf("no GPU adapters found")
	}
	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}
	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		return fmt.Errorf("open device: %w", err)
	}
	v.instance = instance
	v.device = openDev.Device
	v.queue = openDev.Queue
	v.ownsDevice = true
	uikit.Logger().Info("GPU device acquired", slog.String("adapter", selected.Info.Name))
	return nil
}

// Device implements framegraph.Viewport. Nil when headless.
func (v *Viewport) Device() hal.Device { return v.device }

// Queue implements framegraph.Viewport.
func (v *Viewport) Queue() hal.Queue { return v.queue }

// SurfaceFormat implements framegraph.Viewport.
func (v *Viewport) SurfaceFormat() gputypes.TextureFormat { return v.format }

// SurfaceSize implements framegraph.Viewport.
func (v *Viewport) SurfaceSize() (uint32, uint32) { return v.width, v.height }

// FrameParts implements framegraph.Viewport. Nil outside BeginFrame/
// EndFrame or when headless.
func (v *Viewport) FrameParts() *framegraph.FrameParts { return v.parts }

// Cache returns the viewport's cross-frame resource cache.
func (v *Viewport) Cache() *framegraph.ResourceCache { return v.cache }

// Resize updates the surface size. Target textures are recreated on
// the next BeginFrame; render-target stores notice the change through
// their own size checks.
func (v *Viewport) Resize(width, height uint32) {
	if width == v.width && height == v.height {
		return
	}
	v.width = width
	v.height = height
	v.destroyTargets()
}

// BeginFrame opens the frame: target textures are (re)created if
// needed and a command encoder starts recording. Headless viewports
// succeed with nil FrameParts.
func (v *Viewport) BeginFrame() error {
	if v.device == nil {
		return nil
	}
	if err := v.ensureTargets(); err != nil {
		return fmt.Errorf("ensure targets: %w", err)
	}
	encoder, err := v.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "uikit_frame",
	})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("uikit_frame"); err != nil {
		return fmt.Errorf("begin encoding: %w", err)
	}
	v.encoder = encoder
	v.parts = &framegraph.FrameParts{
		Encoder:   encoder,
		View:      v.colorView,
		DepthView: v.depthView,
	}
	return nil
}

// EndFrame closes the encoder, submits, and waits for the GPU.
// Transient resources deferred by passes are destroyed afterwards.
// A no-op on headless viewports.
func (v *Viewport) EndFrame() error {
	if v.parts == nil {
		return nil
	}
	encoder := v.encoder
	v.encoder = nil
	v.parts = nil
	defer v.destroyDeferred()

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("end encoding: %w", err)
	}
	defer v.device.FreeCommandBuffer(cmdBuf)

	fence, err := v.device.CreateFence()
	if err != nil {
		return fmt.Errorf("create fence: %w", err)
	}
	defer v.device.DestroyFence(fence)

	if err := v.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	fenceOK, err := v.device.Wait(fence, 1, 5*time.Second)
	if err != nil || !fenceOK {
		return fmt.Errorf("wait for GPU: ok=%v err=%w", fenceOK, err)
	}
	return nil
}

// DeferDestroyBuffer schedules a transient buffer for destruction
// after the current frame's fence signals.
func (v *Viewport) DeferDestroyBuffer(buf hal.Buffer) {
	v.deferredBuffers = append(v.deferredBuffers, buf)
}

// DeferDestroyTexture schedules a transient texture and its view for
// destruction after the current frame's fence signals.
func (v *Viewport) DeferDestroyTexture(tex hal.Texture, view hal.TextureView) {
	if view != nil {
		v.deferredViews = append(v.deferredViews, view)
	}
	if tex != nil {
		v.deferredTextures = append(v.deferredTextures, tex)
	}
}

// DeferDestroyBindGroup schedules a transient bind group for
// destruction after the current frame's fence signals.
func (v *Viewport) DeferDestroyBindGroup(bg hal.BindGroup) {
	v.deferredBindGroups = append(v.deferredBindGroups, bg)
}

func (v *Viewport) destroyDeferred() {
	for _, bg := range v.deferredBindGroups {
		v.device.DestroyBindGroup(bg)
	}
	for _, view := range v.deferredViews {
		v.device.DestroyTextureView(view)
	}
	for _, tex := range v.deferredTextures {
		v.device.DestroyTexture(tex)
	}
	for _, buf := range v.deferredBuffers {
		v.device.DestroyBuffer(buf)
	}
	v.deferredBindGroups = v.deferredBindGroups[:0]
	v.deferredViews = v.deferredViews[:0]
	v.deferredTextures = v.deferredTextures[:0]
	v.deferredBuffers = v.deferredBuffers[:0]
}

func (v *Viewport) ensureTargets() error {
	if v.colorTex != nil {
		return nil
	}
	size := hal.Extent3D{Width: v.width, Height: v.height, DepthOrArrayLayers: 1}

	colorTex, err := v.device.CreateTexture(&hal.TextureDescriptor{
		Label:         "uikit_color",
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        v.format,
		Usage:         gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageCopySrc,
	})
	if err != nil {
		return fmt.Errorf("create color texture: %w", err)
	}
	v.colorTex = colorTex

	colorView, err := v.device.CreateTextureView(colorTex, &hal.TextureViewDescriptor{
		Label: "uikit_color_view",
	})
	if err != nil {
		v.destroyTargets()
		return fmt.Errorf("create color view: %w", err)
	}
	v.colorView = colorView

	depthTex, err := v.device.CreateTexture(&hal.TextureDescriptor{
		Label:         "uikit_depth",
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatDepth24PlusStencil8,
		Usage:         gputypes.TextureUsageRenderAttachment,
	})
	if err != nil {
		v.destroyTargets()
		return fmt.Errorf("create depth texture: %w", err)
	}
	v.depthTex = depthTex

	depthView, err := v.device.CreateTextureView(depthTex, &hal.TextureViewDescriptor{
		Label: "uikit_depth_view",
	})
	if err != nil {
		v.destroyTargets()
		return fmt.Errorf("create depth view: %w", err)
	}
	v.depthView = depthView
	return nil
}

func (v *Viewport) destroyTargets() {
	if v.device == nil {
		return
	}
	if v.depthView != nil {
		v.device.DestroyTextureView(v.depthView)
		v.depthView = nil
	}
	if v.depthTex != nil {
		v.device.DestroyTexture(v.depthTex)
		v.depthTex = nil
	}
	if v.colorView != nil {
		v.device.DestroyTextureView(v.colorView)
		v.colorView = nil
	}
	if v.colorTex != nil {
		v.device.DestroyTexture(v.colorTex)
		v.colorTex = nil
	}
}

// Close releases every GPU resource the viewport holds. Safe to call
// more than once.
func (v *Viewport) Close() {
	if v.device == nil {
		return
	}
	v.destroyDeferred()
	v.destroyTargets()
	if v.ownsDevice {
		v.device.Destroy()
	}
	v.device = nil
	v.queue = nil
	v.instance = nil
}
