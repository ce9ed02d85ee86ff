// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene

import "sync/atomic"

// nextNodeID is the process-wide allocator for node identities. Scene
// nodes themselves are positional; the 64-bit id gives the layout and
// transition layers a stable identity across frames. Initialized on
// first use, never reset.
var nextNodeID atomic.Uint64

// NextNodeID returns a fresh, process-unique 64-bit node id. The first
// returned id is 1; zero is reserved as "no node".
func NextNodeID() uint64 {
	return nextNodeID.Add(1)
}
