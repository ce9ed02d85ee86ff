// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/gogpu/uikit"
	"github.com/gogpu/uikit/framegraph"
	"github.com/gogpu/uikit/layout"
	"github.com/gogpu/uikit/scene"
	"github.com/gogpu/uikit/ui"
)

// Backend renders a scene tree through the frame graph. It retains
// the committed tree, resolves layout, lowers elements and text runs
// to render-pass commands, and drives the viewport's frame lifecycle.
//
// Node identity across frames is positional: each tree path maps to a
// stable 64-bit id on first sight. The transition layer keys its
// tracks by these ids; animated offsets are pushed in through
// SetOffsetX/SetOffsetY and applied during layout.
type Backend struct {
	viewport *Viewport
	clear    uikit.Color

	root    *scene.Node
	rootID  uint64
	hasRoot bool

	layout  *layout.Tree
	ids     map[string]uint64
	offsets map[uint64][2]float32
}

var _ ui.RenderBackend[uint64] = (*Backend)(nil)

// NewBackend creates a backend over the viewport. clear is the frame
// background color.
func NewBackend(viewport *Viewport, clear uikit.Color) *Backend {
	return &Backend{
		viewport: viewport,
		clear:    clear,
		layout:   layout.NewTree(),
		ids:      make(map[string]uint64),
		offsets:  make(map[uint64][2]float32),
	}
}

// Viewport returns the backend's viewport.
func (b *Backend) Viewport() *Viewport { return b.viewport }

// Layout returns the resolved layout tree from the last DrawFrame.
func (b *Backend) Layout() *layout.Tree { return b.layout }

// CreateRoot implements ui.RenderBackend.
func (b *Backend) CreateRoot(node *scene.Node) (uint64, error) {
	validated, err := scene.BuildTree(node)
	if err != nil {
		return 0, fmt.Errorf("create root: %w", err)
	}
	b.root = validated
	b.rootID = scene.NextNodeID()
	b.hasRoot = true
	return b.rootID, nil
}

// ReplaceRoot implements ui.RenderBackend.
func (b *Backend) ReplaceRoot(root uint64, node *scene.Node) error {
	if err := b.checkRoot(root); err != nil {
		return err
	}
	validated, err := scene.BuildTree(node)
	if err != nil {
		return fmt.Errorf("replace root: %w", err)
	}
	b.root = validated
	return nil
}

// UpdateRootProps implements ui.RenderBackend.
func (b *Backend) UpdateRootProps(root uint64, props []scene.PropEntry) error {
	if err := b.checkRoot(root); err != nil {
		return err
	}
	next := *b.root
	next.Props = props
	if _, err := scene.Build(&next); err != nil {
		return fmt.Errorf("update root props: %w", err)
	}
	b.root = &next
	return nil
}

// ReplaceRootChildren implements ui.RenderBackend.
func (b *Backend) ReplaceRootChildren(root uint64, children []*scene.Node) error {
	if err := b.checkRoot(root); err != nil {
		return err
	}
	for _, child := range children {
		if _, err := scene.BuildTree(child); err != nil {
			return fmt.Errorf("replace root children: %w", err)
		}
	}
	next := *b.root
	next.Children = children
	b.root = &next
	return nil
}

func (b *Backend) checkRoot(root uint64) error {
	if !b.hasRoot {
		return fmt.Errorf("no root mounted")
	}
	if root != b.rootID {
		return fmt.Errorf("unknown root id %d", root)
	}
	return nil
}

// SetOffsetX sets an animated horizontal offset for a node id.
func (b *Backend) SetOffsetX(id uint64, v float32) {
	off := b.offsets[id]
	off[0] = v
	b.offsets[id] = off
}

// SetOffsetY sets an animated vertical offset for a node id.
func (b *Backend) SetOffsetY(id uint64, v float32) {
	off := b.offsets[id]
	off[1] = v
	b.offsets[id] = off
}

// NodeID resolves a tree path (child indexes from the root) to the
// node's stable id, if that path has been drawn before.
func (b *Backend) NodeID(path ...int) (uint64, bool) {
	id, ok := b.ids[pathKey(path)]
	return id, ok
}

// DrawFrame implements ui.RenderBackend: resolve layout, lower the
// tree to passes, and run one frame-graph cycle against the viewport.
func (b *Backend) DrawFrame() error {
	if !b.hasRoot {
		return nil
	}
	width, height := b.viewport.SurfaceSize()

	var rects []RectCommand
	var texts []TextCommand
	b.collect(b.root, 0, 0, 1, "r", &rects, &texts)

	graph := framegraph.New()
	clearPass := NewClearPass(b.clear, width, height, b.viewport.SurfaceFormat())
	graph.AddPass(clearPass)
	graph.AddPass(NewRectPass(rects, clearPass.Output()))
	graph.AddPass(NewTextPass(texts, clearPass.Output()))
	graph.Build()
	for _, buildErr := range graph.TakeErrors() {
		uikit.Logger().Warn("frame graph", slog.String("error", buildErr.Error()))
	}

	if err := b.viewport.BeginFrame(); err != nil {
		return fmt.Errorf("begin frame: %w", err)
	}
	graph.Execute(b.viewport, b.viewport.Cache())
	if err := b.viewport.EndFrame(); err != nil {
		return fmt.Errorf("end frame: %w", err)
	}
	return nil
}

// collect walks the tree, resolving layout and lowering each node to
// draw commands. parentOpacity accumulates multiplicatively.
func (b *Backend) collect(n *scene.Node, parentX, parentY, parentOpacity float32, path string, rects *[]RectCommand, texts *[]TextCommand) {
	if n == nil {
		return
	}
	switch n.Kind {
	case scene.KindFragment:
		for i, child := range n.Children {
			b.collect(child, parentX, parentY, parentOpacity, childKey(path, i), rects, texts)
		}

	case scene.KindElement:
		id := b.nodeID(path)
		box := layout.BoxFromNode(id, n)
		off := b.offsets[id]
		box.X += off[0]
		box.Y += off[1]
		state := b.layout.Resolve(parentX, parentY, box)

		opacity := parentOpacity * propFloat(n, "opacity", 1)
		fill, hasFill := propColor(n, "background_color")
		if !hasFill {
			fill, hasFill = propColor(n, "background")
		}
		borderColor, hasBorder := propColor(n, "border_color")
		borderWidth := propFloat(n, "border_width", 0)
		if hasFill || (hasBorder && borderWidth > 0) {
			*rects = append(*rects, RectCommand{
				X:           state.X,
				Y:           state.Y,
				Width:       state.Width,
				Height:      state.Height,
				Radius:      propFloat(n, "border_radius", 0),
				Fill:        fill,
				BorderColor: borderColor,
				BorderWidth: borderWidth,
				Opacity:     opacity,
			})
		}
		for i, child := range n.Children {
			b.collect(child, state.X, state.Y, opacity, childKey(path, i), rects, texts)
		}

	case scene.KindText:
		id := b.nodeID(path)
		box := layout.BoxFromNode(id, n)
		state := b.layout.Resolve(parentX, parentY, box)

		textColor, ok := propColor(n, "color")
		if !ok {
			textColor = uikit.Color{A: 1} // opaque black
		}
		*texts = append(*texts, TextCommand{
			X:        state.X,
			Y:        state.Y,
			Content:  n.Text,
			FontSize: propFloat(n, "font_size", 14),
			Color:    textColor,
			Opacity:  parentOpacity * propFloat(n, "opacity", 1),
		})
	}
}

// nodeID returns the stable id for a tree path, assigning one on
// first sight.
func (b *Backend) nodeID(path string) uint64 {
	if id, ok := b.ids[path]; ok {
		return id
	}
	id := scene.NextNodeID()
	b.ids[path] = id
	return id
}

func pathKey(path []int) string {
	key := "r"
	for _, i := range path {
		key = childKey(key, i)
	}
	return key
}

func childKey(path string, index int) string {
	return path + "/" + strconv.Itoa(index)
}

func propFloat(n *scene.Node, name string, fallback float32) float32 {
	v, ok := n.Prop(name)
	if !ok {
		return fallback
	}
	f, ok := v.AsFloat()
	if !ok {
		return fallback
	}
	return float32(f)
}

func propColor(n *scene.Node, name string) (uikit.Color, bool) {
	v, ok := n.Prop(name)
	if !ok {
		return uikit.Color{}, false
	}
	return v.AsColor()
}
