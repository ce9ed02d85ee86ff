// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "testing"

func TestScissorIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b ScissorRect
		want ScissorRect
	}{
		{
			name: "identical",
			a:    ScissorRect{0, 0, 100, 100},
			b:    ScissorRect{0, 0, 100, 100},
			want: ScissorRect{0, 0, 100, 100},
		},
		{
			name: "overlap",
			a:    ScissorRect{0, 0, 100, 100},
			b:    ScissorRect{50, 50, 100, 100},
			want: ScissorRect{50, 50, 50, 50},
		},
		{
			name: "contained",
			a:    ScissorRect{0, 0, 100, 100},
			b:    ScissorRect{10, 20, 30, 40},
			want: ScissorRect{10, 20, 30, 40},
		},
		{
			name: "disjoint saturates to empty",
			a:    ScissorRect{0, 0, 10, 10},
			b:    ScissorRect{50, 50, 10, 10},
			want: ScissorRect{X: 50, Y: 50},
		},
		{
			name: "touching edges are empty",
			a:    ScissorRect{0, 0, 10, 10},
			b:    ScissorRect{10, 0, 10, 10},
			want: ScissorRect{X: 10},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Intersect(tt.b)
			if got != tt.want {
				t.Errorf("Intersect = %+v, want %+v", got, tt.want)
			}
			// Intersection is commutative.
			if rev := tt.b.Intersect(tt.a); rev != got {
				t.Errorf("not commutative: %+v vs %+v", got, rev)
			}
		})
	}
}

func TestScissorEmpty(t *testing.T) {
	if (ScissorRect{0, 0, 10, 10}).Empty() {
		t.Error("non-empty rect reported empty")
	}
	if !(ScissorRect{5, 5, 0, 10}).Empty() {
		t.Error("zero-width rect reported non-empty")
	}
	if !(ScissorRect{5, 5, 10, 0}).Empty() {
		t.Error("zero-height rect reported non-empty")
	}
}
