package visit

import (
	"fmt"

	"github.com/aretw0/canopy/pkg/domain"
)

// CountLeavesVisitor counts the LeafNode descendants reachable from the
// visited node. A leaf counts itself as 1; a childless decision node counts 0.
type CountLeavesVisitor struct{}

// VisitDecision sums the leaf counts of the children.
func (v CountLeavesVisitor) VisitDecision(d *domain.DecisionNode) (int, error) {
	total := 0
	for _, child := range d.Children() {
		n, err := child.Accept(v)
		if err != nil {
			return 0, fmt.Errorf("leaves of %q: %w", child.Name(), err)
		}
		total += n
	}
	return total, nil
}

// VisitLeaf counts the leaf itself.
func (v CountLeavesVisitor) VisitLeaf(*domain.LeafNode) (int, error) {
	return 1, nil
}

// Leaves is shorthand for applying a CountLeavesVisitor to n.
func Leaves(n domain.Node) (int, error) {
	return n.Accept(CountLeavesVisitor{})
}
