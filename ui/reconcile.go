// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package ui owns the committed scene tree and synchronizes a render
// backend to it with a minimal sequence of patches.
package ui

import "github.com/gogpu/uikit/scene"

// PatchKind discriminates the three mutations the reconciler emits.
type PatchKind uint8

const (
	// PatchReplaceRoot replaces the whole backend tree with Patch.Node.
	PatchReplaceRoot PatchKind = iota
	// PatchUpdateProps replaces the root element's props with
	// Patch.Props (the full new list, not a diff).
	PatchUpdateProps
	// PatchReplaceChildren replaces the root's children with
	// Patch.Children.
	PatchReplaceChildren
)

// String returns the patch kind name.
func (k PatchKind) String() string {
	switch k {
	case PatchReplaceRoot:
		return "ReplaceRoot"
	case PatchUpdateProps:
		return "UpdateProps"
	case PatchReplaceChildren:
		return "ReplaceChildren"
	default:
		return "Unknown"
	}
}

// Patch is one mutation against a backend-held root. Exactly one of
// Node, Props, Children is meaningful, selected by Kind.
type Patch struct {
	Kind     PatchKind
	Node     *scene.Node
	Props    []scene.PropEntry
	Children []*scene.Node
}

// Reconcile diffs the committed tree against the next tree and returns
// the patches that bring a backend from old to new. A nil old means no
// prior tree exists and always yields a single ReplaceRoot.
//
// The algebra is deliberately coarse:
//
//   - Different variants, or elements with different tags: ReplaceRoot.
//   - Same-tag elements: UpdateProps if props differ, then
//     ReplaceChildren if children differ (in that order).
//   - Text vs text: equal content yields nothing, otherwise ReplaceRoot.
//   - Fragment vs fragment: equal children yield nothing, otherwise
//     ReplaceChildren.
//
// Structurally equal trees yield an empty patch list.
func Reconcile(old, next *scene.Node) []Patch {
	if old == nil {
		return []Patch{{Kind: PatchReplaceRoot, Node: next}}
	}
	if old.Kind != next.Kind {
		return []Patch{{Kind: PatchReplaceRoot, Node: next}}
	}
	switch old.Kind {
	case scene.KindElement:
		return reconcileElement(old, next)
	case scene.KindText:
		if scene.Equal(old, next) {
			return nil
		}
		return []Patch{{Kind: PatchReplaceRoot, Node: next}}
	case scene.KindFragment:
		if scene.ChildrenEqual(old.Children, next.Children) {
			return nil
		}
		return []Patch{{Kind: PatchReplaceChildren, Children: next.Children}}
	default:
		return []Patch{{Kind: PatchReplaceRoot, Node: next}}
	}
}

func reconcileElement(old, next *scene.Node) []Patch {
	if old.Tag != next.Tag {
		return []Patch{{Kind: PatchReplaceRoot, Node: next}}
	}
	var patches []Patch
	if !scene.PropsEqual(old.Props, next.Props) {
		patches = append(patches, Patch{Kind: PatchUpdateProps, Props: next.Props})
	}
	if !scene.ChildrenEqual(old.Children, next.Children) {
		patches = append(patches, Patch{Kind: PatchReplaceChildren, Children: next.Children})
	}
	return patches
}
