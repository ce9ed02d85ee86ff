// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package framegraph

// BuildContext is handed to each pass's build hook. It creates
// resource descriptions and wires slots, recording the pass's reads
// and writes on the graph as it goes. Handles are assigned
// monotonically within one build cycle.
type BuildContext struct {
	graph *Graph
	node  *passNode
}

// CreateTexture registers a texture description and returns a filled
// output slot with the given role.
func (b *BuildContext) CreateTexture(role string, desc TextureDesc) OutTexture {
	h := TextureHandle(len(b.graph.textures))
	b.graph.textures = append(b.graph.textures, desc)
	b.node.writes = append(b.node.writes, textureRef(h))
	return OutTexture{Role: role, handle: h, valid: true}
}

// CreateBuffer registers a buffer description and returns a filled
// output slot with the given role.
func (b *BuildContext) CreateBuffer(role string, desc BufferDesc) OutBuffer {
	h := BufferHandle(len(b.graph.buffers))
	b.graph.buffers = append(b.graph.buffers, desc)
	b.node.writes = append(b.node.writes, bufferRef(h))
	return OutBuffer{Role: role, handle: h, valid: true}
}

// ReadTexture connects a producer's output slot to this pass's input
// slot. An unfilled source records MissingInput and leaves dst empty;
// differing roles record RoleMismatch. Either way the build continues.
func (b *BuildContext) ReadTexture(dst *InTexture, src *OutTexture) {
	if !src.valid {
		b.recordError(MissingInput, "texture slot "+dst.Role+" has no producer")
		return
	}
	if dst.Role != src.Role {
		b.recordError(RoleMismatch, "reading slot "+src.Role+" into slot "+dst.Role)
		return
	}
	dst.handle, dst.valid = src.handle, true
	b.node.reads = append(b.node.reads, textureRef(src.handle))
}

// ReadBuffer is ReadTexture for buffer slots.
func (b *BuildContext) ReadBuffer(dst *InBuffer, src *OutBuffer) {
	if !src.valid {
		b.recordError(MissingInput, "buffer slot "+dst.Role+" has no producer")
		return
	}
	if dst.Role != src.Role {
		b.recordError(RoleMismatch, "reading slot "+src.Role+" into slot "+dst.Role)
		return
	}
	dst.handle, dst.valid = src.handle, true
	b.node.reads = append(b.node.reads, bufferRef(src.handle))
}

// WriteTexture declares a write through an already-filled output slot,
// for passes mutating a resource another pass created. An empty slot
// records MissingOutput.
func (b *BuildContext) WriteTexture(slot *OutTexture) {
	if !slot.valid {
		b.recordError(MissingOutput, "texture slot "+slot.Role+" is empty")
		return
	}
	b.node.writes = append(b.node.writes, textureRef(slot.handle))
}

// WriteBuffer is WriteTexture for buffer slots.
func (b *BuildContext) WriteBuffer(slot *OutBuffer) {
	if !slot.valid {
		b.recordError(MissingOutput, "buffer slot "+slot.Role+" is empty")
		return
	}
	b.node.writes = append(b.node.writes, bufferRef(slot.handle))
}

func (b *BuildContext) recordError(kind BuildErrorKind, detail string) {
	b.graph.errors = append(b.graph.errors, &BuildError{
		Kind:   kind,
		Pass:   b.node.pass.Name(),
		Detail: detail,
	})
}
