// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package layout

import "github.com/gogpu/uikit/scene"

// Box is the input to Resolve for one node: the node's id, its position
// props relative to its parent, and its declared size.
type Box struct {
	NodeID uint64
	X      float32
	Y      float32
	Width  float32
	Height float32
}

// BoxFromNode extracts a Box from a scene node's x/y/width/height props.
// Missing props default to zero; negative sizes saturate at zero.
func BoxFromNode(nodeID uint64, n *scene.Node) Box {
	b := Box{NodeID: nodeID}
	b.X = floatProp(n, "x")
	b.Y = floatProp(n, "y")
	b.Width = max(floatProp(n, "width"), 0)
	b.Height = max(floatProp(n, "height"), 0)
	return b
}

func floatProp(n *scene.Node, name string) float32 {
	v, ok := n.Prop(name)
	if !ok {
		return 0
	}
	f, ok := v.AsFloat()
	if !ok {
		return 0
	}
	return float32(f)
}

// Resolve places a box relative to its parent origin and records the
// result in the tree. Returns the absolute state so callers can resolve
// children against it.
func (t *Tree) Resolve(parentX, parentY float32, box Box) State {
	s := NewState(parentX+box.X, parentY+box.Y, box.Width, box.Height)
	t.Set(box.NodeID, s)
	return s
}
