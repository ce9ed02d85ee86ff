// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"testing"

	"github.com/gogpu/uikit"
	"github.com/gogpu/uikit/scene"
)

// Headless viewport: no device, every frame is a layout-only no-op.
func newHeadlessBackend() *Backend {
	vp := NewViewport(800, 600)
	return NewBackend(vp, uikit.Hex("#202020"))
}

func testTree() *scene.Node {
	return scene.NewElement("Element").
		WithProp("x", scene.Float(10)).
		WithProp("y", scene.Float(20)).
		WithProp("width", scene.Float(200)).
		WithProp("height", scene.Float(100)).
		WithProp("background_color", scene.ColorString("#4cc9f0")).
		WithChild(scene.NewText("hello").
			WithProp("x", scene.Float(4)).
			WithProp("y", scene.Float(4)).
			WithProp("font_size", scene.Float(16)))
}

func TestBackendCreateRootAndDraw(t *testing.T) {
	b := newHeadlessBackend()
	rootID, err := b.CreateRoot(testTree())
	if err != nil {
		t.Fatal(err)
	}
	if rootID == 0 {
		t.Error("root id is zero")
	}
	if err := b.DrawFrame(); err != nil {
		t.Fatalf("DrawFrame: %v", err)
	}

	// Layout was resolved for root and text child.
	id, ok := b.NodeID()
	if !ok {
		t.Fatal("root path has no node id")
	}
	state, ok := b.Layout().Get(id)
	if !ok {
		t.Fatal("root has no layout state")
	}
	if state.X != 10 || state.Y != 20 || state.Width != 200 || state.Height != 100 {
		t.Errorf("root layout = %+v", state)
	}

	childID, ok := b.NodeID(0)
	if !ok {
		t.Fatal("child path has no node id")
	}
	childState, ok := b.Layout().Get(childID)
	if !ok {
		t.Fatal("child has no layout state")
	}
	// Child position is parent-relative.
	if childState.X != 14 || childState.Y != 24 {
		t.Errorf("child at (%v, %v), want (14, 24)", childState.X, childState.Y)
	}
}

func TestBackendNodeIDsStableAcrossFrames(t *testing.T) {
	b := newHeadlessBackend()
	if _, err := b.CreateRoot(testTree()); err != nil {
		t.Fatal(err)
	}
	if err := b.DrawFrame(); err != nil {
		t.Fatal(err)
	}
	first, _ := b.NodeID(0)
	if err := b.DrawFrame(); err != nil {
		t.Fatal(err)
	}
	second, _ := b.NodeID(0)
	if first != second {
		t.Errorf("node id changed across frames: %d then %d", first, second)
	}
}

func TestBackendRejectsUnknownRoot(t *testing.T) {
	b := newHeadlessBackend()
	rootID, err := b.CreateRoot(testTree())
	if err != nil {
		t.Fatal(err)
	}
	if err := b.ReplaceRoot(rootID+1, testTree()); err == nil {
		t.Error("ReplaceRoot with wrong id succeeded")
	}
	if err := b.UpdateRootProps(rootID+1, nil); err == nil {
		t.Error("UpdateRootProps with wrong id succeeded")
	}
}

func TestBackendRejectsUnknownProp(t *testing.T) {
	b := newHeadlessBackend()
	bad := scene.NewElement("Element").WithProp("bogus", scene.Float(1))
	if _, err := b.CreateRoot(bad); err == nil {
		t.Error("CreateRoot with unknown prop succeeded")
	}

	rootID, err := b.CreateRoot(testTree())
	if err != nil {
		t.Fatal(err)
	}
	err = b.UpdateRootProps(rootID, []scene.PropEntry{
		{Name: "bogus", Value: scene.Float(1)},
	})
	if err == nil {
		t.Error("UpdateRootProps with unknown prop succeeded")
	}
}

func TestBackendOffsetsApplyToLayout(t *testing.T) {
	b := newHeadlessBackend()
	if _, err := b.CreateRoot(testTree()); err != nil {
		t.Fatal(err)
	}
	if err := b.DrawFrame(); err != nil {
		t.Fatal(err)
	}
	id, _ := b.NodeID()
	b.SetOffsetX(id, 5)
	b.SetOffsetY(id, -5)
	if err := b.DrawFrame(); err != nil {
		t.Fatal(err)
	}
	state, _ := b.Layout().Get(id)
	if state.X != 15 || state.Y != 15 {
		t.Errorf("offset layout = (%v, %v), want (15, 15)", state.X, state.Y)
	}
}

func TestBackendDrawWithoutRootIsNoop(t *testing.T) {
	b := newHeadlessBackend()
	if err := b.DrawFrame(); err != nil {
		t.Errorf("DrawFrame without root: %v", err)
	}
}
