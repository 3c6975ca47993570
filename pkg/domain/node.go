package domain

import (
	"fmt"
	"time"
)

// Kind identifies the concrete variant of a Node.
type Kind string

const (
	// KindDecision marks an internal node that routes between children.
	KindDecision Kind = "decision"
	// KindLeaf marks a terminal node.
	KindLeaf Kind = "leaf"
)

// Node is the common surface of every tree node.
//
// The variant set is closed: DecisionNode and LeafNode are the only
// implementations. Consumers switch on Kind or, preferably, use Accept to
// dispatch on the concrete variant.
type Node interface {
	// Name returns the node identity.
	Name() string
	// Kind returns the concrete variant tag.
	Kind() Kind
	// Parent returns the owning node, or nil for the root.
	Parent() Node
	// Children returns the ordered sequence of direct children.
	// The returned slice is owned by the node and must not be modified.
	Children() []Node
	// Add appends a child. Only DecisionNode supports this; LeafNode
	// returns ErrLeafChildren.
	Add(child Node) error
	// Accept dispatches to the visitor handler matching this node's variant.
	Accept(v Visitor) (int, error)

	// attach/detach seal the interface to this package and keep the
	// single-parent invariant enforceable in one place.
	attach(parent Node, hooks *TreeHooks)
	detach()
}

// NodeOption configures a node at construction time.
type NodeOption func(*nodeConfig)

type nodeConfig struct {
	hooks   *TreeHooks
	payload any
}

// WithHooks binds lifecycle hooks to the node. Children without hooks of
// their own inherit the parent's hooks when attached.
func WithHooks(h *TreeHooks) NodeOption {
	return func(c *nodeConfig) {
		c.hooks = h
	}
}

// WithPayload attaches an opaque payload. Only leaves carry payloads;
// the option is ignored by NewDecision.
func WithPayload(p any) NodeOption {
	return func(c *nodeConfig) {
		c.payload = p
	}
}

// nodeBase holds the state shared by both variants.
type nodeBase struct {
	name   string
	parent Node
	hooks  *TreeHooks
}

func (b *nodeBase) Name() string { return b.name }

func (b *nodeBase) Parent() Node { return b.parent }

func (b *nodeBase) attach(parent Node, hooks *TreeHooks) {
	b.parent = parent
	if b.hooks == nil {
		b.hooks = hooks
	}
}

func (b *nodeBase) detach() { b.parent = nil }

// DecisionNode is an internal node holding an ordered sequence of children.
type DecisionNode struct {
	nodeBase
	children []Node
}

// NewDecision creates an internal node with the given name.
func NewDecision(name string, opts ...NodeOption) *DecisionNode {
	var cfg nodeConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return &DecisionNode{nodeBase: nodeBase{name: name, hooks: cfg.hooks}}
}

// Kind returns KindDecision.
func (d *DecisionNode) Kind() Kind { return KindDecision }

// Children returns the ordered direct children, in insertion order.
func (d *DecisionNode) Children() []Node { return d.children }

// Add appends child to the end of the child sequence and fires OnAttach.
// The child must not already belong to a parent, and the attachment must not
// make d a descendant of itself.
func (d *DecisionNode) Add(child Node) error {
	if child == nil {
		return fmt.Errorf("add to %q: nil child", d.name)
	}
	if child.Parent() != nil {
		return fmt.Errorf("add %q to %q: %w", child.Name(), d.name, ErrAlreadyAttached)
	}
	for a := Node(d); a != nil; a = a.Parent() {
		if a == child {
			return fmt.Errorf("add %q to %q: %w", child.Name(), d.name, ErrWouldCycle)
		}
	}

	child.attach(d, d.hooks)
	d.children = append(d.children, child)

	if d.hooks != nil && d.hooks.OnAttach != nil {
		d.hooks.OnAttach(&ChildEvent{
			Timestamp: time.Now(),
			Parent:    d.name,
			Child:     child.Name(),
			ChildKind: child.Kind(),
		})
	}
	return nil
}

// Remove detaches a direct child and fires OnDetach. Order of the remaining
// children is preserved.
func (d *DecisionNode) Remove(child Node) error {
	for i, c := range d.children {
		if c != child {
			continue
		}
		d.children = append(d.children[:i], d.children[i+1:]...)
		child.detach()

		if d.hooks != nil && d.hooks.OnDetach != nil {
			d.hooks.OnDetach(&ChildEvent{
				Timestamp: time.Now(),
				Parent:    d.name,
				Child:     child.Name(),
				ChildKind: child.Kind(),
			})
		}
		return nil
	}
	return fmt.Errorf("remove %q from %q: %w", child.Name(), d.name, ErrNotAChild)
}

// Accept dispatches to VisitDecision.
func (d *DecisionNode) Accept(v Visitor) (int, error) { return v.VisitDecision(d) }

func (d *DecisionNode) String() string { return fmt.Sprintf("decision %q", d.name) }

// LeafNode is a terminal node. It owns no children and may carry an opaque
// payload (a class label, an outcome value, etc).
type LeafNode struct {
	nodeBase
	payload any
}

// NewLeaf creates a terminal node with the given name.
func NewLeaf(name string, opts ...NodeOption) *LeafNode {
	var cfg nodeConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return &LeafNode{nodeBase: nodeBase{name: name, hooks: cfg.hooks}, payload: cfg.payload}
}

// Kind returns KindLeaf.
func (l *LeafNode) Kind() Kind { return KindLeaf }

// Children returns nil; leaves are terminal.
func (l *LeafNode) Children() []Node { return nil }

// Add always fails with ErrLeafChildren and leaves the node untouched.
func (l *LeafNode) Add(child Node) error {
	name := "<nil>"
	if child != nil {
		name = child.Name()
	}
	return fmt.Errorf("add %q to %q: %w", name, l.name, ErrLeafChildren)
}

// Payload returns the opaque payload attached at construction, or nil.
func (l *LeafNode) Payload() any { return l.payload }

// Accept dispatches to VisitLeaf.
func (l *LeafNode) Accept(v Visitor) (int, error) { return v.VisitLeaf(l) }

func (l *LeafNode) String() string { return fmt.Sprintf("leaf %q", l.name) }
