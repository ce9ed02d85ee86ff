// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package framegraph

// Slots connect passes without sharing pass internals. An output slot
// is filled by the producing pass during its build hook; the consuming
// pass reads it into its own input slot. Every slot carries a role
// string ("color target", "glyph atlas", ...) and a read only succeeds
// when both roles agree, so wiring mistakes surface as build errors
// instead of silently binding the wrong resource.

// OutTexture is a texture output slot.
type OutTexture struct {
	Role   string
	handle TextureHandle
	valid  bool
}

// NewOutTexture returns an empty output slot with the given role.
func NewOutTexture(role string) OutTexture {
	return OutTexture{Role: role}
}

// Handle returns the slot's handle and whether it has been assigned.
func (s *OutTexture) Handle() (TextureHandle, bool) {
	return s.handle, s.valid
}

// Reset clears the slot for the next build cycle.
func (s *OutTexture) Reset() {
	s.handle, s.valid = 0, false
}

// InTexture is a texture input slot.
type InTexture struct {
	Role   string
	handle TextureHandle
	valid  bool
}

// NewInTexture returns an empty input slot with the given role.
func NewInTexture(role string) InTexture {
	return InTexture{Role: role}
}

// Handle returns the slot's handle and whether it has been assigned.
func (s *InTexture) Handle() (TextureHandle, bool) {
	return s.handle, s.valid
}

// Reset clears the slot for the next build cycle.
func (s *InTexture) Reset() {
	s.handle, s.valid = 0, false
}

// OutBuffer is a buffer output slot.
type OutBuffer struct {
	Role   string
	handle BufferHandle
	valid  bool
}

// NewOutBuffer returns an empty output slot with the given role.
func NewOutBuffer(role string) OutBuffer {
	return OutBuffer{Role: role}
}

// Handle returns the slot's handle and whether it has been assigned.
func (s *OutBuffer) Handle() (BufferHandle, bool) {
	return s.handle, s.valid
}

// Reset clears the slot for the next build cycle.
func (s *OutBuffer) Reset() {
	s.handle, s.valid = 0, false
}

// InBuffer is a buffer input slot.
type InBuffer struct {
	Role   string
	handle BufferHandle
	valid  bool
}

// NewInBuffer returns an empty input slot with the given role.
func NewInBuffer(role string) InBuffer {
	return InBuffer{Role: role}
}

// Handle returns the slot's handle and whether it has been assigned.
func (s *InBuffer) Handle() (BufferHandle, bool) {
	return s.handle, s.valid
}

// Reset clears the slot for the next build cycle.
func (s *InBuffer) Reset() {
	s.handle, s.valid = 0, false
}
