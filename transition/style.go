// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package transition

import "github.com/gogpu/uikit"

// Style channels animate paint and box properties. Color channels
// interpolate in linear color space; the rest are scalars.
const (
	ChannelStyleOpacity      ChannelID = 30001
	ChannelStyleBackground   ChannelID = 30002
	ChannelStyleBorderColor  ChannelID = 30003
	ChannelStyleBorderWidth  ChannelID = 30004
	ChannelStyleBorderRadius ChannelID = 30005
	ChannelStyleWidth        ChannelID = 30006
	ChannelStyleHeight       ChannelID = 30007
	ChannelStyleFontSize     ChannelID = 30008
)

// PluginStyle is the StylePlugin's registered id.
const PluginStyle PluginID = 2

// StyleChannels lists every channel the style plugin serves, for
// engine registration.
var StyleChannels = []ChannelID{
	ChannelStyleOpacity,
	ChannelStyleBackground,
	ChannelStyleBorderColor,
	ChannelStyleBorderWidth,
	ChannelStyleBorderRadius,
	ChannelStyleWidth,
	ChannelStyleHeight,
	ChannelStyleFontSize,
}

func isStyleChannel(ch ChannelID) bool {
	return ch >= ChannelStyleOpacity && ch <= ChannelStyleFontSize
}

func isColorChannel(ch ChannelID) bool {
	return ch == ChannelStyleBackground || ch == ChannelStyleBorderColor
}

// affectsLayout reports whether a channel changes box geometry.
func affectsLayout(ch ChannelID) bool {
	switch ch {
	case ChannelStyleWidth, ChannelStyleHeight, ChannelStyleBorderWidth, ChannelStyleFontSize:
		return true
	default:
		return false
	}
}

// StyleValue is a sampled style property: a scalar or a color,
// depending on the channel.
type StyleValue struct {
	IsColor bool
	Scalar  float32
	Color   uikit.Color
}

// ScalarValue wraps a scalar sample.
func ScalarValue(v float32) StyleValue { return StyleValue{Scalar: v} }

// ColorValue wraps a color sample.
func ColorValue(c uikit.Color) StyleValue { return StyleValue{IsColor: true, Color: c} }

func (v StyleValue) lerp(to StyleValue, t float32) StyleValue {
	if v.IsColor {
		return ColorValue(v.Color.Lerp(to.Color, t))
	}
	return ScalarValue(lerp(v.Scalar, to.Scalar, t))
}

func (v StyleValue) equal(o StyleValue) bool {
	if v.IsColor != o.IsColor {
		return false
	}
	if v.IsColor {
		return v.Color == o.Color
	}
	return v.Scalar == o.Scalar
}

type styleTrack struct {
	from    StyleValue
	to      StyleValue
	elapsed float32
	spec    Spec
}

func (t *styleTrack) current() StyleValue {
	progress, ok := Progress(t.elapsed, t.spec.DelaySeconds, t.spec.DurationSeconds)
	if !ok {
		return t.from
	}
	return t.from.lerp(t.to, t.spec.Function.Sample(progress))
}

type styleStart struct {
	to   StyleValue
	spec Spec
}

// StylePlugin animates opacity, colors, and box metrics. Same start
// semantics as the visual plugin: same-destination starts dedupe,
// running tracks retarget from their current sample, claims use
// Replace.
type StylePlugin struct {
	tracks   map[TrackKey]*styleTrack
	values   map[TrackKey]StyleValue
	pending  map[TrackKey]styleStart
	sink     func(target uint64, channel ChannelID, value StyleValue)
	shutdown bool
}

var _ Plugin = (*StylePlugin)(nil)

// NewStylePlugin creates the plugin. sink may be nil.
func NewStylePlugin(sink func(target uint64, channel ChannelID, value StyleValue)) *StylePlugin {
	return &StylePlugin{
		tracks:  make(map[TrackKey]*styleTrack),
		values:  make(map[TrackKey]StyleValue),
		pending: make(map[TrackKey]styleStart),
		sink:    sink,
	}
}

// PluginID implements Plugin.
func (p *StylePlugin) PluginID() PluginID { return PluginStyle }

// ObservedChannels lists the style channels with a live track on
// target.
func (p *StylePlugin) ObservedChannels(target uint64) []ChannelID {
	var channels []ChannelID
	for _, ch := range StyleChannels {
		if _, ok := p.tracks[TrackKey{Target: target, Channel: ch}]; ok {
			channels = append(channels, ch)
		}
	}
	return channels
}

// Value returns the last sampled (or seeded) value for a key.
func (p *StylePlugin) Value(target uint64, channel ChannelID) (StyleValue, bool) {
	v, ok := p.values[TrackKey{Target: target, Channel: channel}]
	return v, ok
}

// SetValue seeds the resting value a future track animates from.
func (p *StylePlugin) SetValue(target uint64, channel ChannelID, v StyleValue) {
	p.values[TrackKey{Target: target, Channel: channel}] = v
}

// AnimateScalar starts a track on a scalar style channel.
func (p *StylePlugin) AnimateScalar(host Host, target uint64, channel ChannelID, to float32, spec Spec) error {
	if !isStyleChannel(channel) || isColorChannel(channel) {
		return &InvalidInputError{Reason: "channel is not a scalar style channel"}
	}
	return p.animate(host, target, channel, ScalarValue(to), spec)
}

// AnimateColor starts a track on a color style channel.
func (p *StylePlugin) AnimateColor(host Host, target uint64, channel ChannelID, to uikit.Color, spec Spec) error {
	if !isColorChannel(channel) {
		return &InvalidInputError{Reason: "channel is not a color style channel"}
	}
	return p.animate(host, target, channel, ColorValue(to), spec)
}

func (p *StylePlugin) animate(host Host, target uint64, channel ChannelID, to StyleValue, spec Spec) error {
	key := TrackKey{Target: target, Channel: channel}
	p.pending[key] = styleStart{to: to, spec: spec}
	return p.StartTrack(key, host)
}

// StartTrack implements Plugin. Parameters must have been staged by
// AnimateScalar or AnimateColor for this key.
func (p *StylePlugin) StartTrack(key TrackKey, host Host) error {
	start, ok := p.pending[key]
	if !ok {
		return &InvalidInputError{Reason: "no staged parameters for track"}
	}
	delete(p.pending, key)

	if !host.IsChannelRegistered(key.Channel) {
		return &ChannelNotRegisteredError{Channel: key.Channel}
	}
	if tr, ok := p.tracks[key]; ok && tr.to.equal(start.to) {
		return nil
	}
	if !host.ClaimTrack(PluginStyle, key, Replace) {
		return &ClaimRejectedError{Key: key}
	}

	from, seeded := p.values[key]
	if tr, ok := p.tracks[key]; ok {
		from = tr.current()
	} else if !seeded && start.to.IsColor {
		from = ColorValue(uikit.Transparent)
	}
	p.tracks[key] = &styleTrack{from: from, to: start.to, spec: start.spec}
	return nil
}

// CancelTrack implements Plugin.
func (p *StylePlugin) CancelTrack(key TrackKey, host Host) {
	tr, ok := p.tracks[key]
	if !ok {
		return
	}
	p.values[key] = tr.current()
	delete(p.tracks, key)
	host.ReleaseTrackClaim(PluginStyle, key)
}

// RunTracks implements Plugin.
func (p *StylePlugin) RunTracks(frame TransitionFrame, host Host) RunResult {
	var res RunResult
	for key, tr := range p.tracks {
		tr.elapsed += frame.DTSeconds
		progress, ok := Progress(tr.elapsed, tr.spec.DelaySeconds, tr.spec.DurationSeconds)
		if !ok {
			res.KeepRunning = true
			continue
		}
		v := tr.from.lerp(tr.to, tr.spec.Function.Sample(progress))
		p.values[key] = v
		if p.sink != nil {
			p.sink(key.Target, key.Channel, v)
		}
		res.NeedsPaint = true
		if affectsLayout(key.Channel) {
			res.NeedsLayout = true
		}
		if progress >= 1 {
			delete(p.tracks, key)
			host.ReleaseTrackClaim(PluginStyle, key)
		} else {
			res.KeepRunning = true
		}
	}
	return res
}

// Shutdown releases every claim the plugin holds. Safe to call more
// than once; only the first call reaches the host.
func (p *StylePlugin) Shutdown(host Host) {
	if p.shutdown {
		return
	}
	p.shutdown = true
	host.ReleaseAllClaims(PluginStyle)
	clear(p.tracks)
}
