package domain

import "errors"

// ErrLeafChildren is returned when Add is called on a LeafNode.
// Leaves are terminal; the operation is unsupported by definition.
var ErrLeafChildren = errors.New("leaf nodes cannot have children")

// ErrAlreadyAttached is returned when a node that already has a parent is
// added somewhere else. Every node has at most one parent.
var ErrAlreadyAttached = errors.New("node already has a parent")

// ErrWouldCycle is returned when an attachment would make a node its own
// ancestor. The node graph must remain a finite rooted tree.
var ErrWouldCycle = errors.New("attachment would create a cycle")

// ErrNotAChild is returned by Remove when the given node is not a direct
// child of the receiver.
var ErrNotAChild = errors.New("node is not a child of this parent")
