// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package framegraph

import "fmt"

// BuildErrorKind classifies the structural problems Build can record.
type BuildErrorKind uint8

const (
	// MissingInput: a pass read from an output slot that no earlier
	// pass filled.
	MissingInput BuildErrorKind = iota
	// MissingOutput: a pass declared a write through an empty slot.
	MissingOutput
	// RoleMismatch: a read connected two slots with different roles.
	RoleMismatch
	// WriteConflict: two passes declared writes to the same handle.
	WriteConflict
)

// String returns the kind name.
func (k BuildErrorKind) String() string {
	switch k {
	case MissingInput:
		return "missing input"
	case MissingOutput:
		return "missing output"
	case RoleMismatch:
		return "role mismatch"
	case WriteConflict:
		return "write conflict"
	default:
		return "unknown"
	}
}

// BuildError is one structural problem found during Build. Build
// errors are non-fatal: Execute proceeds best-effort and passes with
// missing inputs are expected to no-op.
type BuildError struct {
	Kind BuildErrorKind
	// Pass is the name of the pass whose build hook recorded the error.
	Pass string
	// Detail names the slot or resource involved.
	Detail string
}

// Error implements error.
func (e *BuildError) Error() string {
	return fmt.Sprintf("framegraph: %s in pass %q: %s", e.Kind, e.Pass, e.Detail)
}
