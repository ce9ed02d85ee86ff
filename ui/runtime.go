// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ui

import "github.com/gogpu/uikit/scene"

// Runtime owns the committed scene tree and the backend handle. It is
// single-threaded: all calls happen on the frame loop's goroutine.
//
// The runtime is a two-state machine. Unmounted, Mount installs a tree
// and draws; mounted, Update diffs against the committed tree, applies
// the patches, commits the new tree, and draws. Update on an unmounted
// runtime routes to Mount.
type Runtime[ID comparable] struct {
	backend RenderBackend[ID]
	current *scene.Node
	rootID  ID
	mounted bool
}

// NewRuntime creates an unmounted runtime over the given backend.
func NewRuntime[ID comparable](backend RenderBackend[ID]) *Runtime[ID] {
	return &Runtime[ID]{backend: backend}
}

// Mounted reports whether a tree has been committed.
func (r *Runtime[ID]) Mounted() bool { return r.mounted }

// Current returns the committed tree, or nil when unmounted.
func (r *Runtime[ID]) Current() *scene.Node { return r.current }

// Backend returns the backend handle.
func (r *Runtime[ID]) Backend() RenderBackend[ID] { return r.backend }

// Mount installs root as the committed tree and draws a frame.
func (r *Runtime[ID]) Mount(root *scene.Node) error {
	rootID, err := r.backend.CreateRoot(root)
	if err != nil {
		return err
	}
	r.current = root
	r.rootID = rootID
	r.mounted = true
	return r.backend.DrawFrame()
}

// Update reconciles next against the committed tree, applies the
// resulting patches in order, commits next, and draws a frame. All
// patches for a frame are applied before the next Update is accepted.
func (r *Runtime[ID]) Update(next *scene.Node) error {
	if !r.mounted {
		return r.Mount(next)
	}
	patches := Reconcile(r.current, next)
	if err := r.applyPatches(patches, next); err != nil {
		return err
	}
	r.current = next
	return r.backend.DrawFrame()
}

func (r *Runtime[ID]) applyPatches(patches []Patch, next *scene.Node) error {
	for _, patch := range patches {
		var err error
		switch patch.Kind {
		case PatchReplaceRoot:
			err = r.backend.ReplaceRoot(r.rootID, patch.Node)
		case PatchUpdateProps:
			err = r.backend.UpdateRootProps(r.rootID, patch.Props)
		case PatchReplaceChildren:
			err = r.backend.ReplaceRootChildren(r.rootID, patch.Children)
		}
		if err != nil {
			return err
		}
	}

	// A backend may hold state the diff cannot see. If the diff found
	// nothing but the trees differ, force a full replace rather than
	// silently drifting.
	if len(patches) == 0 && !scene.Equal(r.current, next) {
		return r.backend.ReplaceRoot(r.rootID, next)
	}
	return nil
}
