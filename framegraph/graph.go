// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package framegraph

import (
	"log/slog"

	"github.com/gogpu/uikit"
)

// Pass is one unit of per-frame GPU work. Build declares the pass's
// resources and dataflow; Execute records commands. A pass must handle
// Execute with missing inputs or an absent frame by doing nothing.
type Pass interface {
	Name() string
	Build(b *BuildContext)
	Execute(ctx *PassContext)
}

// passNode pairs a pass with the dataflow its build hook recorded.
type passNode struct {
	pass   Pass
	reads  []resourceRef
	writes []resourceRef
}

// Graph is an ordered list of passes plus the resource descriptions
// their build hooks create. Lifecycle per frame: AddPass for each
// pass, one Build, one Execute, then the graph is discarded. Passes
// themselves usually live longer and are re-added each frame.
//
// Not safe for concurrent use; the frame loop owns it.
type Graph struct {
	passes   []passNode
	textures []TextureDesc
	buffers  []BufferDesc
	errors   []*BuildError
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{}
}

// AddPass appends a pass. Passes execute strictly in insertion order;
// Build validates dataflow but never reorders.
func (g *Graph) AddPass(p Pass) {
	g.passes = append(g.passes, passNode{pass: p})
}

// PassCount returns the number of passes added so far.
func (g *Graph) PassCount() int { return len(g.passes) }

// Build runs every pass's build hook in insertion order. Structural
// problems (reads from unfilled slots, writes through empty slots,
// role mismatches, duplicate writers) are accumulated and retrievable
// via TakeErrors; they do not abort the build.
func (g *Graph) Build() {
	for i := range g.passes {
		node := &g.passes[i]
		node.reads = node.reads[:0]
		node.writes = node.writes[:0]
		bc := &BuildContext{graph: g, node: node}
		node.pass.Build(bc)
	}
	g.checkWriteConflicts()
	if len(g.errors) > 0 {
		uikit.Logger().Warn("frame graph build recorded errors",
			slog.Int("count", len(g.errors)))
	}
}

// checkWriteConflicts records an error for every handle written by
// more than one pass. First writer wins nothing; all duplicates are
// reported so the author sees the full picture.
func (g *Graph) checkWriteConflicts() {
	writers := make(map[resourceRef]string)
	for i := range g.passes {
		node := &g.passes[i]
		for _, ref := range node.writes {
			prev, ok := writers[ref]
			if !ok {
				writers[ref] = node.pass.Name()
				continue
			}
			g.errors = append(g.errors, &BuildError{
				Kind:   WriteConflict,
				Pass:   node.pass.Name(),
				Detail: "resource already written by pass " + prev,
			})
		}
	}
}

// Execute runs passes in insertion order against the viewport, giving
// each a PassContext over the shared cache. Execute is best-effort:
// it runs even when Build recorded errors, and a nil device or absent
// frame makes each pass a no-op rather than a failure.
func (g *Graph) Execute(vp Viewport, cache *ResourceCache) {
	ctx := &PassContext{
		Viewport: vp,
		Cache:    cache,
		graph:    g,
	}
	for i := range g.passes {
		g.passes[i].pass.Execute(ctx)
	}
}

// TakeErrors returns the accumulated build errors and clears the list.
func (g *Graph) TakeErrors() []*BuildError {
	errs := g.errors
	g.errors = nil
	return errs
}

// TextureDesc returns the description behind a texture handle.
func (g *Graph) TextureDesc(h TextureHandle) (TextureDesc, bool) {
	if int(h) >= len(g.textures) {
		return TextureDesc{}, false
	}
	return g.textures[h], true
}

// BufferDesc returns the description behind a buffer handle.
func (g *Graph) BufferDesc(h BufferHandle) (BufferDesc, bool) {
	if int(h) >= len(g.buffers) {
		return BufferDesc{}, false
	}
	return g.buffers[h], true
}
