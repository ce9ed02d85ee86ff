// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ui

import "github.com/gogpu/uikit/scene"

// RenderBackend is the surface the runtime mutates. The node id domain
// is backend-chosen; ids are opaque to the runtime and only compared
// and copied. All operations are fallible and errors propagate to the
// runtime's caller unchanged.
type RenderBackend[ID comparable] interface {
	// CreateRoot instantiates the tree in the backend and returns the
	// root's id.
	CreateRoot(node *scene.Node) (ID, error)

	// ReplaceRoot discards the backend tree under root and rebuilds it
	// from node.
	ReplaceRoot(root ID, node *scene.Node) error

	// UpdateRootProps replaces the root element's props with the given
	// full list.
	UpdateRootProps(root ID, props []scene.PropEntry) error

	// ReplaceRootChildren replaces the root's child list.
	ReplaceRootChildren(root ID, children []*scene.Node) error

	// DrawFrame renders the current backend state.
	DrawFrame() error
}
