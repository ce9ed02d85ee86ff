// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package scene defines the declarative scene tree consumed by the uikit
// runtime: immutable Element / Text / Fragment nodes with ordered props
// and children, compared structurally.
package scene

// Kind discriminates the three node variants.
type Kind uint8

const (
	// KindElement is a tagged node with props and children.
	KindElement Kind = iota
	// KindText is a text node. It carries content and, structurally,
	// may also carry props and children.
	KindText
	// KindFragment is an untagged grouping of child nodes.
	KindFragment
)

// String returns the variant name, for error messages and logs.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	default:
		return "Unknown"
	}
}

// Node is one node of a declarative scene tree.
//
// Nodes are treated as immutable values once handed to the runtime: the
// builder methods (WithProp, WithChild) are for construction only and
// must not be called on a committed tree. Equality is structural.
type Node struct {
	// Kind selects the variant. The zero value is an Element with an
	// empty tag; use the constructors instead of struct literals.
	Kind Kind

	// Tag is the element tag name. Meaningful only for KindElement.
	Tag string

	// Text is the content string. Meaningful only for KindText.
	Text string

	// Props is the ordered prop list. Order is significant for equality.
	Props []PropEntry

	// Children is the ordered child list.
	Children []*Node
}

// PropEntry is one (name, value) pair in a node's ordered prop list.
type PropEntry struct {
	Name  string
	Value PropValue
}

// NewElement creates an element node with the given tag.
func NewElement(tag string) *Node {
	return &Node{Kind: KindElement, Tag: tag}
}

// NewText creates a text node with the given content.
func NewText(content string) *Node {
	return &Node{Kind: KindText, Text: content}
}

// NewFragment creates a fragment node grouping the given children.
func NewFragment(children ...*Node) *Node {
	return &Node{Kind: KindFragment, Children: children}
}

// WithProp appends a prop and returns the node for chaining.
func (n *Node) WithProp(name string, value PropValue) *Node {
	n.Props = append(n.Props, PropEntry{Name: name, Value: value})
	return n
}

// WithChild appends a child and returns the node for chaining.
func (n *Node) WithChild(child *Node) *Node {
	n.Children = append(n.Children, child)
	return n
}

// Prop returns the value of the first prop with the given name.
func (n *Node) Prop(name string) (PropValue, bool) {
	for _, p := range n.Props {
		if p.Name == name {
			return p.Value, true
		}
	}
	return PropValue{}, false
}

// Equal reports whether two trees are structurally equal. Nil nodes are
// equal only to nil nodes.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind || a.Tag != b.Tag || a.Text != b.Text {
		return false
	}
	if !PropsEqual(a.Props, b.Props) {
		return false
	}
	return ChildrenEqual(a.Children, b.Children)
}

// PropsEqual reports whether two ordered prop lists are equal.
func PropsEqual(a, b []PropEntry) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Name != b[i].Name || !a[i].Value.Equal(b[i].Value) {
			return false
		}
	}
	return true
}

// ChildrenEqual reports whether two ordered child lists are structurally
// equal.
func ChildrenEqual(a, b []*Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
