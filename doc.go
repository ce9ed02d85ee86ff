// Package uikit provides the core of a retained-mode, GPU-accelerated
// 2D user-interface framework for Go.
//
// # Overview
//
// uikit is organized around three cooperating pieces:
//
//   - A declarative scene tree (package scene) describing the UI as
//     immutable Element / Text / Fragment nodes.
//   - A reconciler and runtime (package ui) that diff successive scene
//     trees into minimal patches applied against a render backend.
//   - A frame graph (package framegraph) declaring per-frame GPU work as
//     passes with tag-checked resource slots, executed against a viewport.
//
// Animations are driven frame-by-frame by package transition, which
// arbitrates channel ownership between competing animator plugins.
//
// # Quick Start
//
//	viewport := render.NewViewport(800, 600, render.WithOwnDevice())
//	backend := render.NewBackend(viewport, uikit.Hex("#1a1a2e"))
//	rt := ui.NewRuntime[uint64](backend)
//
//	root := scene.NewElement("Element").
//	    WithProp("width", scene.Float(200)).
//	    WithProp("height", scene.Float(100)).
//	    WithProp("background_color", scene.ColorString("#4cc9f0"))
//	if err := rt.Mount(root); err != nil {
//	    log.Fatal(err)
//	}
//
// # Integration
//
// uikit receives its GPU device from the host application. A host
// implementing gpucontext.DeviceProvider (and exposing wgpu/hal types)
// shares its device with the uikit viewport; without a device the whole
// pipeline degrades to validated no-ops, which keeps every layer testable
// on machines without a GPU.
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down. Colors
// are converted to linear-space RGBA floats before reaching the GPU.
package uikit
