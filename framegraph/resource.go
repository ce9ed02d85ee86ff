// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package framegraph declares, validates, and executes per-frame GPU
// work as an ordered list of passes with tagged resource slots.
//
// A graph is rebuilt each frame: passes are appended with AddPass, the
// build phase walks them in order handing each a BuildContext to
// declare the textures and buffers it creates, reads, and writes, and
// the execute phase walks them again with a PassContext giving access
// to the viewport and the per-viewport resource cache. Validation
// problems (a read from a slot nothing wrote, a write through an empty
// slot, mismatched slot roles) are recorded as build errors and never
// abort the frame; passes are expected to no-op when their inputs are
// missing.
package framegraph

import (
	"github.com/gogpu/gputypes"
)

// TextureHandle indexes a texture description created during build.
// The zero handle is valid; use slot validity to detect "no texture".
type TextureHandle uint32

// BufferHandle indexes a buffer description created during build.
type BufferHandle uint32

// TextureDesc describes a transient or cross-frame texture resource.
type TextureDesc struct {
	Label     string
	Width     uint32
	Height    uint32
	Format    gputypes.TextureFormat
	Dimension gputypes.TextureDimension
	Usage     gputypes.TextureUsage
}

// BufferDesc describes a transient buffer resource.
type BufferDesc struct {
	Label string
	Size  uint64
	Usage gputypes.BufferUsage
}

// resourceKind discriminates handles in a pass's read/write sets.
type resourceKind uint8

const (
	resourceTexture resourceKind = iota
	resourceBuffer
)

// resourceRef is one entry in a pass's recorded reads or writes.
type resourceRef struct {
	kind  resourceKind
	index uint32
}

func textureRef(h TextureHandle) resourceRef {
	return resourceRef{kind: resourceTexture, index: uint32(h)}
}

func bufferRef(h BufferHandle) resourceRef {
	return resourceRef{kind: resourceBuffer, index: uint32(h)}
}
