// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	_ "embed"
	"fmt"
	"log/slog"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/uikit"
	"github.com/gogpu/uikit/framegraph"
)

//go:embed shaders/text.wgsl
var textShaderSource string

// textPipelineKey is the text pipeline's slot in the viewport cache.
const textPipelineKey uint64 = 2

// textVertexStride is bytes per vertex: position vec2 + uv vec2.
const textVertexStride = 16

// TextCommand is one text run to draw. X/Y is the top-left of the
// run's box in surface pixels.
type TextCommand struct {
	X        float32
	Y        float32
	Content  string
	FontSize float32
	Color    uikit.Color
	Opacity  float32
	Clip     *ScissorRect
}

// textPipeline is the cached GPU state for text quads.
type textPipeline struct {
	format     gputypes.TextureFormat
	shader     hal.ShaderModule
	bindLayout hal.BindGroupLayout
	layout     hal.PipelineLayout
	pipeline   hal.RenderPipeline
	sampler    hal.Sampler
}

func (p *textPipeline) destroy(device hal.Device) {
	if p.pipeline != nil {
		device.DestroyRenderPipeline(p.pipeline)
		p.pipeline = nil
	}
	if p.layout != nil {
		device.DestroyPipelineLayout(p.layout)
		p.layout = nil
	}
	if p.bindLayout != nil {
		device.DestroyBindGroupLayout(p.bindLayout)
		p.bindLayout = nil
	}
	if p.sampler != nil {
		device.DestroySampler(p.sampler)
		p.sampler = nil
	}
	if p.shader != nil {
		device.DestroyShaderModule(p.shader)
		p.shader = nil
	}
}

func (p *textPipeline) ensure(device hal.Device, format gputypes.TextureFormat) error {
	if p.pipeline != nil && p.format == format {
		return nil
	}
	p.destroy(device)

	shader, err := newShaderModule(device, "uikit_text_shader", textShaderSource)
	if err != nil {
		return fmt.Errorf("compile text shader: %w", err)
	}
	p.shader = shader

	bindLayout, err := device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "uikit_text_bind_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageFragment,
				Texture: &gputypes.TextureBindingLayout{
					SampleType:    gputypes.TextureSampleTypeFloat,
					ViewDimension: gputypes.TextureViewDimension2D,
				},
			},
			{
				Binding:    1,
				Visibility: gputypes.ShaderStageFragment,
				Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
			},
		},
	})
	if err != nil {
		p.destroy(device)
		return fmt.Errorf("create text bind layout: %w", err)
	}
	p.bindLayout = bindLayout

	layout, err := device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "uikit_text_layout",
		BindGroupLayouts: []hal.BindGroupLayout{p.bindLayout},
	})
	if err != nil {
		p.destroy(device)
		return fmt.Errorf("create text pipeline layout: %w", err)
	}
	p.layout = layout

	sampler, err := device.CreateSampler(&hal.SamplerDescriptor{
		Label:        "uikit_text_sampler",
		AddressModeU: gputypes.AddressModeClampToEdge,
		AddressModeV: gputypes.AddressModeClampToEdge,
		AddressModeW: gputypes.AddressModeClampToEdge,
		MagFilter:    gputypes.FilterModeLinear,
		MinFilter:    gputypes.FilterModeLinear,
		MipmapFilter: gputypes.FilterModeLinear,
	})
	if err != nil {
		p.destroy(device)
		return fmt.Errorf("create text sampler: %w", err)
	}
	p.sampler = sampler

	premulBlend := gputypes.BlendStatePremultiplied()
	pipeline, err := device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "uikit_text_pipeline",
		Layout: p.layout,
		Vertex: hal.VertexState{
			Module:     p.shader,
			EntryPoint: "vs_main",
			Buffers: []gputypes.VertexBufferLayout{{
				ArrayStride: textVertexStride,
				StepMode:    gputypes.VertexStepModeVertex,
				Attributes: []gputypes.VertexAttribute{
					{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
					{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1},
				},
			}},
		},
		Fragment: &hal.FragmentState{
			Module:     p.shader,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{{
				Format:    format,
				Blend:     &premulBlend,
				WriteMask: gputypes.ColorWriteMaskAll,
			}},
		},
		DepthStencil: &hal.DepthStencilState{
			Format:            gputypes.TextureFormatDepth24PlusStencil8,
			DepthWriteEnabled: false,
			DepthCompare:      gputypes.CompareFunctionAlways,
			StencilFront: hal.StencilFaceState{
				Compare:     gputypes.CompareFunctionAlways,
				FailOp:      hal.StencilOperationKeep,
				DepthFailOp: hal.StencilOperationKeep,
				PassOp:      hal.StencilOperationKeep,
			},
			StencilBack: hal.StencilFaceState{
				Compare:     gputypes.CompareFunctionAlways,
				FailOp:      hal.StencilOperationKeep,
				DepthFailOp: hal.StencilOperationKeep,
				PassOp:      hal.StencilOperationKeep,
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		p.destroy(device)
		return fmt.Errorf("create text pipeline: %w", err)
	}
	p.pipeline = pipeline
	p.format = format
	return nil
}

// textRecycler defers transient resource destruction past the frame's
// fence. The render.Viewport implements it.
type textRecycler interface {
	bufferRecycler
	DeferDestroyTexture(tex hal.Texture, view hal.TextureView)
	DeferDestroyBindGroup(bg hal.BindGroup)
}

// TextPass draws text runs over the backbuffer. Each run is
// rasterized on the CPU with the bundled font, uploaded as a
// premultiplied RGBA texture, and drawn as a single textured quad.
type TextPass struct {
	commands []TextCommand
	src      *framegraph.OutTexture
	in       framegraph.InTexture
}

var _ framegraph.Pass = (*TextPass)(nil)

// NewTextPass creates the pass for one frame. src is the clear pass's
// backbuffer output.
func NewTextPass(commands []TextCommand, src *framegraph.OutTexture) *TextPass {
	return &TextPass{commands: commands, src: src}
}

// Name implements framegraph.Pass.
func (p *TextPass) Name() string { return "text" }

// Build implements framegraph.Pass.
func (p *TextPass) Build(b *framegraph.BuildContext) {
	p.in = framegraph.NewInTexture("backbuffer")
	b.ReadTexture(&p.in, p.src)
}

// Execute implements framegraph.Pass.
func (p *TextPass) Execute(ctx *framegraph.PassContext) {
	parts := ctx.Viewport.FrameParts()
	device := ctx.Viewport.Device()
	if parts == nil || device == nil || len(p.commands) == 0 {
		return
	}
	if _, ok := p.in.Handle(); !ok {
		return
	}
	width, height := ctx.Viewport.SurfaceSize()
	if width == 0 || height == 0 {
		return
	}

	pipe := framegraph.GetOrInsertWith(ctx.Cache, textPipelineKey, func() *textPipeline {
		return &textPipeline{}
	})
	if err := pipe.ensure(device, ctx.Viewport.SurfaceFormat()); err != nil {
		uikit.Logger().Warn("text pipeline unavailable", slog.String("error", err.Error()))
		return
	}

	recycler, _ := ctx.Viewport.(textRecycler)
	surface := SurfaceScissor(width, height)

	rp := parts.Encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "uikit_text",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:    parts.View,
			LoadOp:  gputypes.LoadOpLoad,
			StoreOp: gputypes.StoreOpStore,
		}},
		DepthStencilAttachment: parts.DepthStencilAttachment(gputypes.LoadOpLoad, gputypes.LoadOpLoad),
	})
	rp.SetPipeline(pipe.pipeline)

	for i := range p.commands {
		cmd := &p.commands[i]
		scissor := surface
		if cmd.Clip != nil {
			scissor = surface.Intersect(*cmd.Clip)
		}
		if scissor.Empty() {
			continue
		}
		if err := p.drawRun(ctx, rp, pipe, recycler, cmd, scissor, width, height); err != nil {
			uikit.Logger().Warn("text run skipped",
				slog.String("error", err.Error()))
		}
	}
	rp.End()
}

func (p *TextPass) drawRun(
	ctx *framegraph.PassContext,
	rp hal.RenderPassEncoder,
	pipe *textPipeline,
	recycler textRecycler,
	cmd *TextCommand,
	scissor ScissorRect,
	surfaceW, surfaceH uint32,
) error {
	img, err := rasterizeText(cmd.Content, cmd.FontSize, cmd.Color, cmd.Opacity)
	if err != nil {
		return err
	}
	if img == nil {
		return nil
	}
	device := ctx.Viewport.Device()
	queue := ctx.Viewport.Queue()
	w := uint32(img.Rect.Dx())
	h := uint32(img.Rect.Dy())

	tex, err := device.CreateTexture(&hal.TextureDescriptor{
		Label:         "uikit_text_run",
		Size:          hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create run texture: %w", err)
	}
	view, err := device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label: "uikit_text_run_view",
	})
	if err != nil {
		device.DestroyTexture(tex)
		return fmt.Errorf("create run view: %w", err)
	}
	if recycler != nil {
		defer recycler.DeferDestroyTexture(tex, view)
	}

	queue.WriteTexture(
		&hal.ImageCopyTexture{Texture: tex, MipLevel: 0},
		img.Pix,
		&hal.ImageDataLayout{
			Offset:       0,
			BytesPerRow:  uint32(img.Stride),
			RowsPerImage: h,
		},
		&hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
	)

	bindGroup, err := device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "uikit_text_run_bind",
		Layout: pipe.bindLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.TextureViewBinding{TextureView: view.NativeHandle()}},
			{Binding: 1, Resource: gputypes.SamplerBinding{Sampler: pipe.sampler.NativeHandle()}},
		},
	})
	if err != nil {
		return fmt.Errorf("create run bind group: %w", err)
	}
	if recycler != nil {
		defer recycler.DeferDestroyBindGroup(bindGroup)
	}

	verts := textQuad(cmd.X, cmd.Y, float32(w), float32(h), surfaceW, surfaceH)
	buf, err := device.CreateBuffer(&hal.BufferDescriptor{
		Label: "uikit_text_verts",
		Size:  uint64(len(verts)) * 4,
		Usage: gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create run vertex buffer: %w", err)
	}
	queue.WriteBuffer(buf, 0, floatBytes(verts))
	if recycler != nil {
		defer recycler.DeferDestroyBuffer(buf)
	}

	rp.SetScissorRect(scissor.X, scissor.Y, scissor.Width, scissor.Height)
	rp.SetBindGroup(0, bindGroup, nil)
	rp.SetVertexBuffer(0, buf, 0)
	rp.Draw(6, 1, 0, 0)
	return nil
}

// textQuad builds two clip-space triangles covering the run's box,
// with texture coordinates spanning the whole glyph texture.
func textQuad(x, y, w, h float32, surfaceW, surfaceH uint32) []float32 {
	invW := 1 / float32(surfaceW)
	invH := 1 / float32(surfaceH)
	x0 := x*invW*2 - 1
	y0 := 1 - y*invH*2
	x1 := (x+w)*invW*2 - 1
	y1 := 1 - (y+h)*invH*2
	return []float32{
		x0, y0, 0, 0,
		x1, y0, 1, 0,
		x1, y1, 1, 1,
		x0, y0, 0, 0,
		x1, y1, 1, 1,
		x0, y1, 0, 1,
	}
}
