// Command uikitdemo drives the uikit stack end to end: it mounts a
// small scene tree, animates a card across the surface, and renders a
// fixed number of frames. Without -gpu it runs headless, exercising
// reconciliation, layout and the frame graph with rendering disabled.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gogpu/uikit"
	"github.com/gogpu/uikit/render"
	"github.com/gogpu/uikit/scene"
	"github.com/gogpu/uikit/transition"
	"github.com/gogpu/uikit/ui"
)

func main() {
	var (
		width   = flag.Int("width", 800, "surface width")
		height  = flag.Int("height", 600, "surface height")
		frames  = flag.Int("frames", 120, "number of frames to render")
		fps     = flag.Int("fps", 60, "simulated frame rate")
		useGPU  = flag.Bool("gpu", false, "acquire a GPU device (falls back to headless)")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	uikit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	var opts []render.ViewportOption
	if *useGPU {
		opts = append(opts, render.WithOwnDevice())
	}
	viewport := render.NewViewport(uint32(*width), uint32(*height), opts...)
	defer viewport.Close()

	backend := render.NewBackend(viewport, uikit.Hex("#1a1a2e"))
	runtime := ui.NewRuntime[uint64](backend)

	if err := runtime.Mount(demoTree("#4cc9f0")); err != nil {
		log.Fatalf("mount: %v", err)
	}

	// The visual plugin feeds animated offsets back into layout.
	engine := transition.NewEngine()
	engine.RegisterChannel(transition.ChannelVisualX)
	engine.RegisterChannel(transition.ChannelVisualY)
	visual := transition.NewVisualPlugin(func(target uint64, channel transition.ChannelID, value float32) {
		switch channel {
		case transition.ChannelVisualX:
			backend.SetOffsetX(target, value)
		case transition.ChannelVisualY:
			backend.SetOffsetY(target, value)
		}
	})
	engine.RegisterPlugin(visual, transition.ChannelVisualX, transition.ChannelVisualY)
	defer visual.Shutdown(engine)

	cardID, ok := backend.NodeID(0)
	if !ok {
		log.Fatal("card node was not drawn")
	}
	spec := transition.Spec{
		DurationSeconds: 1.2,
		Function:        transition.EaseInOut,
	}
	if err := visual.Animate(engine, cardID, transition.ChannelVisualX, 360, spec); err != nil {
		log.Fatalf("animate x: %v", err)
	}
	if err := visual.Animate(engine, cardID, transition.ChannelVisualY, 180, spec); err != nil {
		log.Fatalf("animate y: %v", err)
	}

	dt := 1 / float32(*fps)
	start := time.Now()
	for frame := 0; frame < *frames; frame++ {
		result := engine.RunFrame(dt)
		if result.NeedsPaint || result.NeedsLayout {
			if err := backend.DrawFrame(); err != nil {
				log.Fatalf("frame %d: %v", frame, err)
			}
		}

		// Halfway through, retarget the card and restyle it in the
		// same update to exercise the reconciler's patch path.
		if frame == *frames/2 {
			if err := runtime.Update(demoTree("#f72585")); err != nil {
				log.Fatalf("update: %v", err)
			}
			if err := visual.Animate(engine, cardID, transition.ChannelVisualX, 40, spec); err != nil {
				log.Fatalf("retarget: %v", err)
			}
		}

		if !result.KeepRunning && frame > *frames/2 {
			break
		}
	}

	x, _ := visual.Value(cardID, transition.ChannelVisualX)
	y, _ := visual.Value(cardID, transition.ChannelVisualY)
	fmt.Printf("rendered %d frames in %v, card settled at (%.1f, %.1f)\n",
		*frames, time.Since(start).Round(time.Millisecond), x, y)
}

// demoTree builds the scene: a full-surface panel holding one colored
// card with a text label.
func demoTree(cardColor string) *scene.Node {
	return scene.NewElement("Element").
		WithProp("x", scene.Float(0)).
		WithProp("y", scene.Float(0)).
		WithProp("width", scene.Float(800)).
		WithProp("height", scene.Float(600)).
		WithProp("background_color", scene.ColorString("#16213e")).
		WithChild(scene.NewElement("Element").
			WithProp("x", scene.Float(40)).
			WithProp("y", scene.Float(40)).
			WithProp("width", scene.Float(240)).
			WithProp("height", scene.Float(140)).
			WithProp("border_radius", scene.Float(12)).
			WithProp("background_color", scene.ColorString(cardColor)).
			WithChild(scene.NewText("uikit demo").
				WithProp("x", scene.Float(16)).
				WithProp("y", scene.Float(16)).
				WithProp("font_size", scene.Float(18)).
				WithProp("color", scene.ColorString("#ffffff"))))
}
