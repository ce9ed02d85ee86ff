// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package framegraph

// PassContext is handed to each pass's Execute. It carries the
// viewport being rendered, the viewport's cross-frame resource cache,
// and read access to the descriptions registered during build.
type PassContext struct {
	Viewport Viewport
	Cache    *ResourceCache

	graph *Graph
}

// TextureDesc resolves a texture handle declared during build.
func (c *PassContext) TextureDesc(h TextureHandle) (TextureDesc, bool) {
	return c.graph.TextureDesc(h)
}

// BufferDesc resolves a buffer handle declared during build.
func (c *PassContext) BufferDesc(h BufferHandle) (BufferDesc, bool) {
	return c.graph.BufferDesc(h)
}
