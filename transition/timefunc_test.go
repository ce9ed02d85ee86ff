// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package transition

import (
	"math"
	"testing"
)

func TestTimeFunctionSample(t *testing.T) {
	tests := []struct {
		name string
		fn   TimeFunction
		in   float32
		want float32
	}{
		{"linear start", Linear, 0, 0},
		{"linear mid", Linear, 0.5, 0.5},
		{"linear end", Linear, 1, 1},
		{"ease-in mid", EaseIn, 0.5, 0.25},
		{"ease-out mid", EaseOut, 0.5, 0.75},
		{"ease-in-out mid", EaseInOut, 0.5, 0.5},
		{"ease-in-out quarter", EaseInOut, 0.25, 0.125},
		{"ease-in-out three-quarter", EaseInOut, 0.75, 0.875},
		{"clamped below", EaseIn, -0.5, 0},
		{"clamped above", EaseOut, 1.5, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.fn.Sample(tt.in)
			if math.Abs(float64(got-tt.want)) > 1e-6 {
				t.Errorf("%v.Sample(%v) = %v, want %v", tt.fn, tt.in, got, tt.want)
			}
		})
	}
}

func TestTimeFunctionMonotonic(t *testing.T) {
	for _, fn := range []TimeFunction{Linear, EaseIn, EaseOut, EaseInOut} {
		prev := float32(-1)
		for i := 0; i <= 100; i++ {
			y := fn.Sample(float32(i) / 100)
			if y < prev {
				t.Fatalf("%v not monotonic at t=%d/100: %v < %v", fn, i, y, prev)
			}
			prev = y
		}
		if got := fn.Sample(0); got != 0 {
			t.Errorf("%v.Sample(0) = %v, want 0", fn, got)
		}
		if got := fn.Sample(1); got != 1 {
			t.Errorf("%v.Sample(1) = %v, want 1", fn, got)
		}
	}
}

func TestProgress(t *testing.T) {
	tests := []struct {
		name     string
		elapsed  float32
		delay    float32
		duration float32
		want     float32
		started  bool
	}{
		{"inside delay", 0.1, 0.5, 1, 0, false},
		{"delay boundary", 0.5, 0.5, 1, 0, true},
		{"halfway", 1.0, 0.5, 1, 0.5, true},
		{"complete", 1.5, 0.5, 1, 1, true},
		{"overrun clamps", 9, 0.5, 1, 1, true},
		{"zero duration completes", 0.5, 0.5, 0, 1, true},
		{"no delay halfway", 0.25, 0, 0.5, 0.5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, started := Progress(tt.elapsed, tt.delay, tt.duration)
			if started != tt.started {
				t.Fatalf("started = %v, want %v", started, tt.started)
			}
			if math.Abs(float64(got-tt.want)) > 1e-6 {
				t.Errorf("Progress(%v, %v, %v) = %v, want %v",
					tt.elapsed, tt.delay, tt.duration, got, tt.want)
			}
		})
	}
}

func TestRunResultMerge(t *testing.T) {
	a := RunResult{NeedsLayout: true}
	b := RunResult{NeedsPaint: true}
	c := RunResult{KeepRunning: true}

	got := a.Merge(b).Merge(c)
	want := RunResult{NeedsLayout: true, NeedsPaint: true, KeepRunning: true}
	if got != want {
		t.Errorf("merge = %+v, want %+v", got, want)
	}
	if ab, ba := a.Merge(b), b.Merge(a); ab != ba {
		t.Errorf("merge not commutative: %+v vs %+v", ab, ba)
	}
	if got := a.Merge(RunResult{}); got != a {
		t.Errorf("merge with zero = %+v, want %+v", got, a)
	}
}
