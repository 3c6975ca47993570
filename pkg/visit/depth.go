package visit

import (
	"fmt"

	"github.com/aretw0/canopy/pkg/domain"
)

// DepthVisitor computes the maximum path length from the visited node down to
// any descendant leaf. A leaf has depth 0; a childless decision node also has
// depth 0; otherwise a decision node's depth is 1 + the maximum child depth.
type DepthVisitor struct{}

// VisitDecision recurses into the children and folds their depths.
func (v DepthVisitor) VisitDecision(d *domain.DecisionNode) (int, error) {
	depth := 0
	for _, child := range d.Children() {
		childDepth, err := child.Accept(v)
		if err != nil {
			return 0, fmt.Errorf("depth of %q: %w", child.Name(), err)
		}
		if childDepth+1 > depth {
			depth = childDepth + 1
		}
	}
	return depth, nil
}

// VisitLeaf reports depth 0.
func (v DepthVisitor) VisitLeaf(*domain.LeafNode) (int, error) {
	return 0, nil
}

// Depth is shorthand for applying a DepthVisitor to n.
func Depth(n domain.Node) (int, error) {
	return n.Accept(DepthVisitor{})
}
