// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package transition

// durationEpsilon is the duration below which a track completes
// immediately.
const durationEpsilon = 1e-6

// TimeFunction is an easing curve over normalized progress.
type TimeFunction uint8

const (
	Linear TimeFunction = iota
	EaseIn
	EaseOut
	EaseInOut
)

// String returns the curve name.
func (f TimeFunction) String() string {
	switch f {
	case Linear:
		return "linear"
	case EaseIn:
		return "ease-in"
	case EaseOut:
		return "ease-out"
	case EaseInOut:
		return "ease-in-out"
	default:
		return "unknown"
	}
}

// Sample evaluates the curve at t. Input is clamped to [0, 1] before
// sampling so callers never see out-of-range output.
func (f TimeFunction) Sample(t float32) float32 {
	t = clamp01(t)
	switch f {
	case EaseIn:
		return t * t
	case EaseOut:
		u := 1 - t
		return 1 - u*u
	case EaseInOut:
		if t < 0.5 {
			return 2 * t * t
		}
		u := -2*t + 2
		return 1 - u*u*0.5
	default:
		return t
	}
}

// Progress converts elapsed time into normalized progress. The second
// return is false while the track is still inside its delay. A
// duration at or below epsilon completes immediately.
func Progress(elapsed, delay, duration float32) (float32, bool) {
	if elapsed < delay {
		return 0, false
	}
	if duration <= durationEpsilon {
		return 1, true
	}
	return clamp01((elapsed - delay) / duration), true
}

func clamp01(t float32) float32 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

func lerp(from, to, t float32) float32 {
	return from + (to-from)*t
}
