// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ui

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/uikit/scene"
)

// propCmp lets cmp.Diff compare scene.PropValue, which is opaque.
var propCmp = cmp.Comparer(scene.PropValue.Equal)

func patchKinds(patches []Patch) []PatchKind {
	kinds := make([]PatchKind, len(patches))
	for i, p := range patches {
		kinds[i] = p.Kind
	}
	return kinds
}

func TestReconcileNilOldReplacesRoot(t *testing.T) {
	next := scene.NewText("hello")
	patches := Reconcile(nil, next)
	if len(patches) != 1 || patches[0].Kind != PatchReplaceRoot {
		t.Fatalf("patches = %v", patchKinds(patches))
	}
	if patches[0].Node != next {
		t.Error("ReplaceRoot does not carry the next tree")
	}
}

func TestReconcileKindMismatchReplacesRoot(t *testing.T) {
	patches := Reconcile(scene.NewText("hi"), scene.NewElement("Element"))
	if len(patches) != 1 || patches[0].Kind != PatchReplaceRoot {
		t.Errorf("patches = %v", patchKinds(patches))
	}
}

func TestReconcileTagMismatchReplacesRoot(t *testing.T) {
	patches := Reconcile(scene.NewElement("A"), scene.NewElement("B"))
	if len(patches) != 1 || patches[0].Kind != PatchReplaceRoot {
		t.Errorf("patches = %v", patchKinds(patches))
	}
}

func TestReconcileEqualTreesYieldNothing(t *testing.T) {
	tree := func() *scene.Node {
		return scene.NewElement("Element").
			WithProp("x", scene.Float(1)).
			WithChild(scene.NewText("hi"))
	}
	if patches := Reconcile(tree(), tree()); len(patches) != 0 {
		t.Errorf("patches = %v", patchKinds(patches))
	}
}

func TestReconcileSameTagPropsThenChildren(t *testing.T) {
	old := scene.NewElement("Element").
		WithProp("x", scene.Float(1)).
		WithChild(scene.NewText("a"))
	next := scene.NewElement("Element").
		WithProp("x", scene.Float(2)).
		WithChild(scene.NewText("b"))

	patches := Reconcile(old, next)
	wantKinds := []PatchKind{PatchUpdateProps, PatchReplaceChildren}
	if diff := cmp.Diff(wantKinds, patchKinds(patches)); diff != "" {
		t.Fatalf("patch order (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(next.Props, patches[0].Props, propCmp); diff != "" {
		t.Errorf("props payload (-want +got):\n%s", diff)
	}
	if len(patches[1].Children) != 1 || patches[1].Children[0].Text != "b" {
		t.Errorf("children payload = %+v", patches[1].Children)
	}
}

func TestReconcilePropsOnly(t *testing.T) {
	old := scene.NewElement("Element").WithProp("x", scene.Float(1))
	next := scene.NewElement("Element").WithProp("x", scene.Float(2))
	patches := Reconcile(old, next)
	if len(patches) != 1 || patches[0].Kind != PatchUpdateProps {
		t.Errorf("patches = %v", patchKinds(patches))
	}
}

func TestReconcileChildrenOnly(t *testing.T) {
	old := scene.NewElement("Element").WithChild(scene.NewText("a"))
	next := scene.NewElement("Element").WithChild(scene.NewText("b"))
	patches := Reconcile(old, next)
	if len(patches) != 1 || patches[0].Kind != PatchReplaceChildren {
		t.Errorf("patches = %v", patchKinds(patches))
	}
}

func TestReconcileText(t *testing.T) {
	if patches := Reconcile(scene.NewText("a"), scene.NewText("a")); len(patches) != 0 {
		t.Errorf("equal text patches = %v", patchKinds(patches))
	}
	patches := Reconcile(scene.NewText("a"), scene.NewText("b"))
	if len(patches) != 1 || patches[0].Kind != PatchReplaceRoot {
		t.Errorf("changed text patches = %v", patchKinds(patches))
	}
}

func TestReconcileFragment(t *testing.T) {
	same := Reconcile(
		scene.NewFragment(scene.NewText("a")),
		scene.NewFragment(scene.NewText("a")),
	)
	if len(same) != 0 {
		t.Errorf("equal fragment patches = %v", patchKinds(same))
	}
	changed := Reconcile(
		scene.NewFragment(scene.NewText("a")),
		scene.NewFragment(scene.NewText("a"), scene.NewText("b")),
	)
	if len(changed) != 1 || changed[0].Kind != PatchReplaceChildren {
		t.Errorf("changed fragment patches = %v", patchKinds(changed))
	}
}
