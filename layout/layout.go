// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package layout stores per-node layout results and computes the simple
// nested absolute-position box model used by the default uikit host.
package layout

// State is the resolved layout of one node. Coordinates are absolute in
// surface space. ContentWidth/ContentHeight default to the box size and
// differ only when a node's content overflows (scrollable hosts).
type State struct {
	X             float32
	Y             float32
	Width         float32
	Height        float32
	ContentWidth  float32
	ContentHeight float32

	// Baseline is the distance from the top of the box to the text
	// baseline. Meaningful only when HasBaseline is set.
	Baseline    float32
	HasBaseline bool
}

// NewState creates a State with content size equal to the box size.
func NewState(x, y, width, height float32) State {
	return State{
		X:             x,
		Y:             y,
		Width:         width,
		Height:        height,
		ContentWidth:  width,
		ContentHeight: height,
	}
}

// Tree is a flat mapping from 64-bit node id to layout state. Node ids
// are the cross-frame identity used by the transition layer; the tree
// persists across frames and entries are overwritten in place.
type Tree struct {
	states map[uint64]State
}

// NewTree creates an empty layout tree.
func NewTree() *Tree {
	return &Tree{states: make(map[uint64]State)}
}

// Set records the layout state for a node id.
func (t *Tree) Set(nodeID uint64, s State) {
	t.states[nodeID] = s
}

// Get returns the layout state for a node id.
func (t *Tree) Get(nodeID uint64) (State, bool) {
	s, ok := t.states[nodeID]
	return s, ok
}

// Delete removes a node's layout state. Removing an unknown id is a
// no-op.
func (t *Tree) Delete(nodeID uint64) {
	delete(t.states, nodeID)
}

// Len returns the number of stored states.
func (t *Tree) Len() int { return len(t.states) }

// Clear removes all states, keeping the allocation.
func (t *Tree) Clear() {
	clear(t.states)
}

// Walk calls fn for every (id, state) pair in unspecified order.
func (t *Tree) Walk(fn func(nodeID uint64, s State)) {
	for id, s := range t.states {
		fn(id, s)
	}
}
