// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package transition

import (
	"log/slog"

	"github.com/gogpu/uikit"
)

// maxFrameDelta caps the per-frame time step. A stall (debugger,
// suspended window) otherwise makes every running track jump to its
// end on the next tick.
const maxFrameDelta float32 = 0.25

// Engine owns the channel registry, the claim registry, and the
// plugin list, and ticks every plugin once per frame. It implements
// Host. Single-threaded: the frame loop owns it.
type Engine struct {
	channels map[ChannelID]struct{}
	plugins  []Plugin

	claims map[TrackKey]PluginID
	owned  map[PluginID]map[TrackKey]struct{}

	// pendingCancel holds keys preempted by a Replace claim, delivered
	// to the losing plugin before its next RunTracks.
	pendingCancel map[PluginID][]TrackKey
}

var _ Host = (*Engine)(nil)

// NewEngine creates an engine with no channels or plugins.
func NewEngine() *Engine {
	return &Engine{
		channels:      make(map[ChannelID]struct{}),
		claims:        make(map[TrackKey]PluginID),
		owned:         make(map[PluginID]map[TrackKey]struct{}),
		pendingCancel: make(map[PluginID][]TrackKey),
	}
}

// RegisterChannel adds a channel to the registry. Registering twice
// is a no-op.
func (e *Engine) RegisterChannel(ch ChannelID) {
	e.channels[ch] = struct{}{}
}

// RegisterPlugin adds a plugin to the tick list and registers the
// channels it serves.
func (e *Engine) RegisterPlugin(p Plugin, channels ...ChannelID) {
	e.plugins = append(e.plugins, p)
	for _, ch := range channels {
		e.RegisterChannel(ch)
	}
}

// IsChannelRegistered reports whether ch is in the registry.
func (e *Engine) IsChannelRegistered(ch ChannelID) bool {
	_, ok := e.channels[ch]
	return ok
}

// ClaimTrack attempts to give plugin ownership of key. IfUnclaimed
// fails when another plugin owns the track; Replace preempts it and
// queues a cancel for the prior owner. Claiming an already-owned
// track succeeds trivially.
func (e *Engine) ClaimTrack(plugin PluginID, key TrackKey, mode ClaimMode) bool {
	owner, claimed := e.claims[key]
	if claimed {
		if owner == plugin {
			return true
		}
		if mode == IfUnclaimed {
			return false
		}
		// Replace: the loser hears about it before its next tick.
		delete(e.owned[owner], key)
		e.pendingCancel[owner] = append(e.pendingCancel[owner], key)
		uikit.Logger().Debug("transition claim preempted",
			slog.Uint64("target", key.Target),
			slog.Uint64("channel", uint64(key.Channel)),
			slog.Uint64("prev_owner", uint64(owner)),
			slog.Uint64("new_owner", uint64(plugin)))
	}
	e.claims[key] = plugin
	set, ok := e.owned[plugin]
	if !ok {
		set = make(map[TrackKey]struct{})
		e.owned[plugin] = set
	}
	set[key] = struct{}{}
	return true
}

// ReleaseTrackClaim removes plugin's claim on key. A release by a
// non-owner is ignored.
func (e *Engine) ReleaseTrackClaim(plugin PluginID, key TrackKey) {
	if owner, ok := e.claims[key]; !ok || owner != plugin {
		return
	}
	delete(e.claims, key)
	delete(e.owned[plugin], key)
}

// ReleaseAllClaims removes every claim held by plugin. Claims held by
// other plugins are untouched. Pending cancels for the plugin are
// dropped: a plugin that released everything has nothing to finalize.
func (e *Engine) ReleaseAllClaims(plugin PluginID) {
	for key := range e.owned[plugin] {
		delete(e.claims, key)
	}
	delete(e.owned, plugin)
	delete(e.pendingCancel, plugin)
}

// Owner returns the plugin owning key, if any.
func (e *Engine) Owner(key TrackKey) (PluginID, bool) {
	owner, ok := e.claims[key]
	return owner, ok
}

// RunFrame ticks every registered plugin once with the given time
// step and merges their results. Negative steps count as zero; large
// steps are clamped so stalled frames do not teleport animations.
// Preempted tracks are cancelled on the losing plugin before it runs.
func (e *Engine) RunFrame(dtSeconds float32) RunResult {
	if dtSeconds < 0 {
		dtSeconds = 0
	}
	if dtSeconds > maxFrameDelta {
		dtSeconds = maxFrameDelta
	}
	frame := TransitionFrame{DTSeconds: dtSeconds}

	var result RunResult
	for _, p := range e.plugins {
		e.flushPendingCancels(p)
		result = result.Merge(p.RunTracks(frame, e))
	}
	return result
}

func (e *Engine) flushPendingCancels(p Plugin) {
	id := p.PluginID()
	pending := e.pendingCancel[id]
	if len(pending) == 0 {
		return
	}
	delete(e.pendingCancel, id)
	for _, key := range pending {
		p.CancelTrack(key, e)
	}
}
