// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package framegraph

// ResourceCache holds typed values keyed by a caller-chosen uint64.
// It outlives the graph: the graph is rebuilt every frame while the
// cache belongs to the viewport and carries render-target stores and
// pipeline caches across frames. Invalidation policy is the owner's
// business; the cache only stores and hands back.
type ResourceCache struct {
	entries map[uint64]any
}

// NewResourceCache creates an empty cache.
func NewResourceCache() *ResourceCache {
	return &ResourceCache{entries: make(map[uint64]any)}
}

// Remove drops the entry under key, if any.
func (c *ResourceCache) Remove(key uint64) {
	delete(c.entries, key)
}

// Len returns the number of cached entries.
func (c *ResourceCache) Len() int { return len(c.entries) }

// CacheGet returns the entry under key if it exists and has type *T.
func CacheGet[T any](c *ResourceCache, key uint64) (*T, bool) {
	v, ok := c.entries[key].(*T)
	return v, ok
}

// GetOrInsertWith returns the entry under key, calling create to
// populate it on first access. An existing entry of a different type
// is replaced.
func GetOrInsertWith[T any](c *ResourceCache, key uint64, create func() *T) *T {
	if v, ok := c.entries[key].(*T); ok {
		return v
	}
	v := create()
	c.entries[key] = v
	return v
}
