package dsl

import (
	"github.com/aretw0/canopy/pkg/codec"
	"github.com/aretw0/canopy/pkg/domain"
)

// Tree is a declarative description of a subtree. Values are immutable;
// modifiers return copies, so partial trees can be shared and reused.
type Tree struct {
	spec codec.NodeSpec
}

// Decision declares an internal node with the given children.
func Decision(name string, children ...Tree) Tree {
	spec := codec.NodeSpec{Name: name, Kind: domain.KindDecision}
	for _, child := range children {
		spec.Children = append(spec.Children, child.spec)
	}
	return Tree{spec: spec}
}

// Leaf declares a terminal node.
func Leaf(name string) Tree {
	return Tree{spec: codec.NodeSpec{Name: name, Kind: domain.KindLeaf}}
}

// Payload returns a copy of the tree with the payload attached.
// Payloads are meaningful on leaves only; decision nodes ignore them.
func (t Tree) Payload(p any) Tree {
	t.spec.Payload = p
	return t
}

// Spec exposes the underlying snapshot, e.g. for encoding without building.
func (t Tree) Spec() codec.NodeSpec {
	return t.spec
}

// Build materializes the declared tree into domain nodes. The options are
// applied to every node, so WithHooks wires the whole tree at once.
func (t Tree) Build(opts ...domain.NodeOption) (domain.Node, error) {
	return codec.Restore(t.spec, opts...)
}
