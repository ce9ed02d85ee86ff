// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package transition

// Visual channels animate a node's position on the surface.
const (
	ChannelVisualX ChannelID = 21001
	ChannelVisualY ChannelID = 21002
)

// PluginVisual is the VisualPlugin's registered id.
const PluginVisual PluginID = 1

// Spec describes one track's timing.
type Spec struct {
	DelaySeconds    float32
	DurationSeconds float32
	Function        TimeFunction
}

type visualTrack struct {
	from    float32
	to      float32
	elapsed float32
	spec    Spec
}

func (t *visualTrack) current() float32 {
	progress, ok := Progress(t.elapsed, t.spec.DelaySeconds, t.spec.DurationSeconds)
	if !ok {
		return t.from
	}
	return lerp(t.from, t.to, t.spec.Function.Sample(progress))
}

type visualStart struct {
	to   float32
	spec Spec
}

// VisualPlugin animates node positions on the X and Y channels. Each
// sampled value is stored per key and, if a sink is installed,
// forwarded to it; the render backend reads either to offset nodes.
type VisualPlugin struct {
	tracks   map[TrackKey]*visualTrack
	values   map[TrackKey]float32
	pending  map[TrackKey]visualStart
	sink     func(target uint64, channel ChannelID, value float32)
	shutdown bool
}

var _ Plugin = (*VisualPlugin)(nil)

// NewVisualPlugin creates the plugin. sink may be nil; sampled values
// are then available only through Value.
func NewVisualPlugin(sink func(target uint64, channel ChannelID, value float32)) *VisualPlugin {
	return &VisualPlugin{
		tracks:  make(map[TrackKey]*visualTrack),
		values:  make(map[TrackKey]float32),
		pending: make(map[TrackKey]visualStart),
		sink:    sink,
	}
}

// PluginID implements Plugin.
func (p *VisualPlugin) PluginID() PluginID { return PluginVisual }

// ObservedChannels lists the visual channels with a live track on
// target.
func (p *VisualPlugin) ObservedChannels(target uint64) []ChannelID {
	var channels []ChannelID
	for _, ch := range [...]ChannelID{ChannelVisualX, ChannelVisualY} {
		if _, ok := p.tracks[TrackKey{Target: target, Channel: ch}]; ok {
			channels = append(channels, ch)
		}
	}
	return channels
}

// Value returns the last sampled (or seeded) value for a key.
func (p *VisualPlugin) Value(target uint64, channel ChannelID) (float32, bool) {
	v, ok := p.values[TrackKey{Target: target, Channel: channel}]
	return v, ok
}

// SetValue seeds the resting value a future track animates from.
func (p *VisualPlugin) SetValue(target uint64, channel ChannelID, v float32) {
	p.values[TrackKey{Target: target, Channel: channel}] = v
}

// Animate starts (or retargets) a position track. A track already
// heading to the same destination is left alone. A running track is
// retargeted from its current sampled value, so direction changes
// never jump.
func (p *VisualPlugin) Animate(host Host, target uint64, channel ChannelID, to float32, spec Spec) error {
	if channel != ChannelVisualX && channel != ChannelVisualY {
		return &InvalidInputError{Reason: "channel is not a visual channel"}
	}
	key := TrackKey{Target: target, Channel: channel}
	p.pending[key] = visualStart{to: to, spec: spec}
	return p.StartTrack(key, host)
}

// StartTrack implements Plugin. Parameters must have been staged by
// Animate for this key.
func (p *VisualPlugin) StartTrack(key TrackKey, host Host) error {
	start, ok := p.pending[key]
	if !ok {
		return &InvalidInputError{Reason: "no staged parameters for track"}
	}
	delete(p.pending, key)

	if !host.IsChannelRegistered(key.Channel) {
		return &ChannelNotRegisteredError{Channel: key.Channel}
	}
	if tr, ok := p.tracks[key]; ok && tr.to == start.to {
		return nil
	}
	if !host.ClaimTrack(PluginVisual, key, Replace) {
		return &ClaimRejectedError{Key: key}
	}

	from := p.values[key]
	if tr, ok := p.tracks[key]; ok {
		from = tr.current()
	}
	p.tracks[key] = &visualTrack{from: from, to: start.to, spec: start.spec}
	return nil
}

// CancelTrack implements Plugin. The track freezes at its current
// value and its claim is released.
func (p *VisualPlugin) CancelTrack(key TrackKey, host Host) {
	tr, ok := p.tracks[key]
	if !ok {
		return
	}
	p.values[key] = tr.current()
	delete(p.tracks, key)
	host.ReleaseTrackClaim(PluginVisual, key)
}

// RunTracks implements Plugin.
func (p *VisualPlugin) RunTracks(frame TransitionFrame, host Host) RunResult {
	var res RunResult
	for key, tr := range p.tracks {
		tr.elapsed += frame.DTSeconds
		progress, ok := Progress(tr.elapsed, tr.spec.DelaySeconds, tr.spec.DurationSeconds)
		if !ok {
			res.KeepRunning = true
			continue
		}
		v := lerp(tr.from, tr.to, tr.spec.Function.Sample(progress))
		p.values[key] = v
		if p.sink != nil {
			p.sink(key.Target, key.Channel, v)
		}
		res.NeedsLayout = true
		res.NeedsPaint = true
		if progress >= 1 {
			delete(p.tracks, key)
			host.ReleaseTrackClaim(PluginVisual, key)
		} else {
			res.KeepRunning = true
		}
	}
	return res
}

// Shutdown releases every claim the plugin holds. Safe to call more
// than once; only the first call reaches the host.
func (p *VisualPlugin) Shutdown(host Host) {
	if p.shutdown {
		return
	}
	p.shutdown = true
	host.ReleaseAllClaims(PluginVisual)
	clear(p.tracks)
}
