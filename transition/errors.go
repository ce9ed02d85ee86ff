// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package transition

import "fmt"

// ChannelNotRegisteredError reports a StartTrack on a channel the
// engine does not know.
type ChannelNotRegisteredError struct {
	Channel ChannelID
}

func (e *ChannelNotRegisteredError) Error() string {
	return fmt.Sprintf("transition: channel %d is not registered", e.Channel)
}

// ClaimRejectedError reports a StartTrack whose claim lost arbitration.
type ClaimRejectedError struct {
	Key TrackKey
}

func (e *ClaimRejectedError) Error() string {
	return fmt.Sprintf("transition: claim rejected for track (target=%d, channel=%d)",
		e.Key.Target, e.Key.Channel)
}

// InvalidInputError reports a StartTrack with unusable parameters.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "transition: invalid input: " + e.Reason
}
