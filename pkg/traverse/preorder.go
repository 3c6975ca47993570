package traverse

import "github.com/aretw0/canopy/pkg/domain"

// PreOrder iterates a tree in pre-order: a node is yielded before its
// children, children in insertion order, left to right.
//
// The iterator is lazy. Children are pushed onto the internal stack only when
// their parent is popped, so subtrees attached after construction are still
// observed as long as their parent has not been yielded yet. A PreOrder is
// single-pass; create a new one to restart.
type PreOrder struct {
	stack []domain.Node
}

// NewPreOrder creates an iterator rooted at root. A nil root produces an
// empty sequence; a leaf root produces a sequence of exactly one element.
func NewPreOrder(root domain.Node) *PreOrder {
	it := &PreOrder{}
	if root != nil {
		it.stack = append(it.stack, root)
	}
	return it
}

// HasNext reports whether another node remains.
func (it *PreOrder) HasNext() bool { return len(it.stack) > 0 }

// Next yields the next node in pre-order. The second return value is false
// when the sequence is exhausted.
func (it *PreOrder) Next() (domain.Node, bool) {
	if len(it.stack) == 0 {
		return nil, false
	}
	// LIFO: pop the most recently pushed node.
	n := len(it.stack) - 1
	node := it.stack[n]
	it.stack = it.stack[:n]

	// Push children in reverse so the leftmost child is popped first.
	children := node.Children()
	for i := len(children) - 1; i >= 0; i-- {
		it.stack = append(it.stack, children[i])
	}
	return node, true
}

// Walk drains a fresh pre-order iterator over root, calling fn for each node.
// It stops early and returns the first error fn reports.
func Walk(root domain.Node, fn func(domain.Node) error) error {
	it := NewPreOrder(root)
	for it.HasNext() {
		node, _ := it.Next()
		if err := fn(node); err != nil {
			return err
		}
	}
	return nil
}
