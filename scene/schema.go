// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene

import "fmt"

// elementProps is the recognized prop set for the <Element> tag.
var elementProps = map[string]bool{
	"x":                true,
	"y":                true,
	"width":            true,
	"height":           true,
	"opacity":          true,
	"border_width":     true,
	"border_radius":    true,
	"background":       true,
	"background_color": true,
	"border_color":     true,
}

// textProps is the recognized prop set for the <Text> tag.
var textProps = map[string]bool{
	"content":   true,
	"x":         true,
	"y":         true,
	"width":     true,
	"height":    true,
	"font_size": true,
	"font":      true,
	"color":     true,
	"opacity":   true,
}

// tagSchemas maps the default host tag set to its recognized props.
// Tags outside this map are passed through without validation; hosts
// registering custom tags validate their own props.
var tagSchemas = map[string]map[string]bool{
	"Element": elementProps,
	"Text":    textProps,
}

// Build validates an element node's props against the tag's schema and
// returns the node unchanged on success. An unknown prop on a known tag
// produces an error naming the tag; the caller decides whether to abort
// mounting.
//
// Validation applies to the node itself, not its children; callers
// validate each node as they construct it.
func Build(n *Node) (*Node, error) {
	if n == nil || n.Kind != KindElement {
		return n, nil
	}
	schema, known := tagSchemas[n.Tag]
	if !known {
		return n, nil
	}
	for _, p := range n.Props {
		if !schema[p.Name] {
			return nil, fmt.Errorf("unknown prop %q on <%s>", p.Name, n.Tag)
		}
	}
	return n, nil
}

// BuildTree validates a whole tree with Build, depth-first. The first
// offending node aborts the walk.
func BuildTree(n *Node) (*Node, error) {
	if n == nil {
		return nil, nil
	}
	if _, err := Build(n); err != nil {
		return nil, err
	}
	for _, child := range n.Children {
		if _, err := BuildTree(child); err != nil {
			return nil, err
		}
	}
	return n, nil
}
