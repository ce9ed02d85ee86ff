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

//go:embed shaders/rect.wgsl
var rectShaderSource string

// rectPipelineKey is the rect pipeline's slot in the viewport cache.
const rectPipelineKey uint64 = 1

// rectVertexStride is bytes per vertex: position vec2 + color vec4.
const rectVertexStride = 24

// cornerSegments is the tessellation density per rounded corner.
const cornerSegments = 8

// RectCommand is one rectangle to draw: fill, optional border, corner
// radius, opacity, and an optional clip rect.
type RectCommand struct {
	X      float32
	Y      float32
	Width  float32
	Height float32

	Radius      float32
	Fill        uikit.Color
	BorderColor uikit.Color
	BorderWidth float32

	// Opacity multiplies both fill and border alpha. 1 = opaque.
	Opacity float32

	// Clip restricts the command to a surface-space rect. Nil means
	// the whole surface.
	Clip *ScissorRect
}

// rectPipeline is the cached GPU state for rect drawing. Rebuilt when
// the surface format changes.
type rectPipeline struct {
	format   gputypes.TextureFormat
	shader   hal.ShaderModule
	layout   hal.PipelineLayout
	pipeline hal.RenderPipeline
}

func (p *rectPipeline) destroy(device hal.Device) {
	if p.pipeline != nil {
		device.DestroyRenderPipeline(p.pipeline)
		p.pipeline = nil
	}
	if p.layout != nil {
		device.DestroyPipelineLayout(p.layout)
		p.layout = nil
	}
	if p.shader != nil {
		device.DestroyShaderModule(p.shader)
		p.shader = nil
	}
}

func (p *rectPipeline) ensure(device hal.Device, format gputypes.TextureFormat) error {
	if p.pipeline != nil && p.format == format {
		return nil
	}
	p.destroy(device)

	shader, err := newShaderModule(device, "uikit_rect_shader", rectShaderSource)
	if err != nil {
		return fmt.Errorf("compile rect shader: %w", err)
	}
	p.shader = shader

	layout, err := device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label: "uikit_rect_layout",
	})
	if err != nil {
		p.destroy(device)
		return fmt.Errorf("create rect pipeline layout: %w", err)
	}
	p.layout = layout

	premulBlend := gputypes.BlendStatePremultiplied()
	pipeline, err := device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "uikit_rect_pipeline",
		Layout: p.layout,
		Vertex: hal.VertexState{
			Module:     p.shader,
			EntryPoint: "vs_main",
			Buffers: []gputypes.VertexBufferLayout{{
				ArrayStride: rectVertexStride,
				StepMode:    gputypes.VertexStepModeVertex,
				Attributes: []gputypes.VertexAttribute{
					{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
					{Format: gputypes.VertexFormatFloat32x4, Offset: 8, ShaderLocation: 1},
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
		return fmt.Errorf("create rect pipeline: %w", err)
	}
	p.pipeline = pipeline
	p.format = format
	return nil
}

// RectPass draws UI rectangles over the backbuffer the clear pass
// published. Geometry is tessellated on the CPU each frame; only the
// pipeline survives in the viewport cache.
type RectPass struct {
	commands []RectCommand
	src      *framegraph.OutTexture
	in       framegraph.InTexture
}

var _ framegraph.Pass = (*RectPass)(nil)

// NewRectPass creates the pass for one frame. src is the clear pass's
// backbuffer output.
func NewRectPass(commands []RectCommand, src *framegraph.OutTexture) *RectPass {
	return &RectPass{commands: commands, src: src}
}

// Name implements framegraph.Pass.
func (p *RectPass) Name() string { return "rects" }

// Build implements framegraph.Pass.
func (p *RectPass) Build(b *framegraph.BuildContext) {
	p.in = framegraph.NewInTexture("backbuffer")
	b.ReadTexture(&p.in, p.src)
}

// bufferRecycler defers transient buffer destruction past the frame's
// fence. The render.Viewport implements it.
type bufferRecycler interface {
	DeferDestroyBuffer(hal.Buffer)
}

type drawRange struct {
	first   uint32
	count   uint32
	scissor ScissorRect
}

// Execute implements framegraph.Pass.
func (p *RectPass) Execute(ctx *framegraph.PassContext) {
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

	pipe := framegraph.GetOrInsertWith(ctx.Cache, rectPipelineKey, func() *rectPipeline {
		return &rectPipeline{}
	})
	if err := pipe.ensure(device, ctx.Viewport.SurfaceFormat()); err != nil {
		uikit.Logger().Warn("rect pipeline unavailable", slog.String("error", err.Error()))
		return
	}

	verts, ranges := tessellateRects(p.commands, width, height)
	if len(verts) == 0 {
		return
	}

	buf, err := device.CreateBuffer(&hal.BufferDescriptor{
		Label: "uikit_rect_verts",
		Size:  uint64(len(verts)) * 4,
		Usage: gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		uikit.Logger().Warn("rect vertex buffer", slog.String("error", err.Error()))
		return
	}
	ctx.Viewport.Queue().WriteBuffer(buf, 0, floatBytes(verts))
	if r, ok := ctx.Viewport.(bufferRecycler); ok {
		defer r.DeferDestroyBuffer(buf)
	}

	rp := parts.Encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "uikit_rects",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:    parts.View,
			LoadOp:  gputypes.LoadOpLoad,
			StoreOp: gputypes.StoreOpStore,
		}},
		DepthStencilAttachment: parts.DepthStencilAttachment(gputypes.LoadOpLoad, gputypes.LoadOpLoad),
	})
	rp.SetPipeline(pipe.pipeline)
	rp.SetVertexBuffer(0, buf, 0)
	for _, dr := range ranges {
		if dr.scissor.Empty() {
			continue
		}
		rp.SetScissorRect(dr.scissor.X, dr.scissor.Y, dr.scissor.Width, dr.scissor.Height)
		rp.Draw(dr.count, 1, dr.first, 0)
	}
	rp.End()
}
