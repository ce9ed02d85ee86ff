// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package transition drives frame-by-frame animations. Plugins own
// tracks keyed by (target node, channel); the engine arbitrates
// ownership so two plugins never animate the same property at once.
package transition

// ChannelID names one animatable property. Each plugin publishes the
// channel ids it serves; the ids are stable across processes so hosts
// can persist or log them.
type ChannelID uint32

// PluginID identifies a registered plugin.
type PluginID uint32

// TrackKey identifies one animation track: which node, which property.
type TrackKey struct {
	Target  uint64
	Channel ChannelID
}

// ClaimMode selects the arbitration policy for ClaimTrack.
type ClaimMode uint8

const (
	// IfUnclaimed succeeds only when no other plugin owns the track.
	IfUnclaimed ClaimMode = iota
	// Replace preempts the prior owner. The preempted plugin receives
	// CancelTrack for the key before its next RunTracks.
	Replace
)

// TransitionFrame carries per-tick timing to RunTracks.
type TransitionFrame struct {
	DTSeconds float32
}

// RunResult is what one plugin's tick asks of the frame loop.
type RunResult struct {
	NeedsLayout bool
	NeedsPaint  bool
	KeepRunning bool
}

// Merge combines two results by boolean OR.
func (r RunResult) Merge(other RunResult) RunResult {
	return RunResult{
		NeedsLayout: r.NeedsLayout || other.NeedsLayout,
		NeedsPaint:  r.NeedsPaint || other.NeedsPaint,
		KeepRunning: r.KeepRunning || other.KeepRunning,
	}
}

// Plugin animates a family of channels. The engine calls RunTracks
// once per frame; StartTrack and CancelTrack are invoked by the
// application (via typed helpers on concrete plugins) and by the
// engine when a Replace claim preempts.
type Plugin interface {
	PluginID() PluginID

	// ObservedChannels lists the channels this plugin currently
	// animates on the given target.
	ObservedChannels(target uint64) []ChannelID

	// StartTrack begins or retargets the track for key. The plugin
	// must claim the track through the host first and must not
	// produce frames for a key whose claim was rejected.
	StartTrack(key TrackKey, host Host) error

	// CancelTrack finalizes the track for key and releases its claim.
	// Cancelling an unknown key is a no-op.
	CancelTrack(key TrackKey, host Host)

	// RunTracks advances all live tracks by one frame.
	RunTracks(frame TransitionFrame, host Host) RunResult
}

// Host is the engine surface plugins arbitrate through.
type Host interface {
	IsChannelRegistered(ch ChannelID) bool
	ClaimTrack(plugin PluginID, key TrackKey, mode ClaimMode) bool
	ReleaseTrackClaim(plugin PluginID, key TrackKey)
	ReleaseAllClaims(plugin PluginID)
}
