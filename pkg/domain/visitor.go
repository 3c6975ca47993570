package domain

// Visitor defines one handling operation per Node variant. Node.Accept calls
// the method matching the node's concrete type (double dispatch), so new
// operations can be added without touching the node types.
//
// Visitors must treat the tree as read-only.
type Visitor interface {
	VisitDecision(*DecisionNode) (int, error)
	VisitLeaf(*LeafNode) (int, error)
}
