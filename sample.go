package canopy

import (
	"fmt"

	"github.com/aretw0/canopy/pkg/domain"
)

// SampleTree builds the fixed demonstration tree:
//
//	RootDecision
//	├── LeftDecision
//	│   ├── LeafA
//	│   └── LeafB
//	└── RightDecision
//	    └── LeafC
//
// The hooks (may be nil) are bound to the root and inherited by every node
// attached below it.
func SampleTree(hooks *domain.TreeHooks) (*domain.DecisionNode, error) {
	root := domain.NewDecision("RootDecision", domain.WithHooks(hooks))
	left := domain.NewDecision("LeftDecision")
	right := domain.NewDecision("RightDecision")
	leafA := domain.NewLeaf("LeafA")
	leafB := domain.NewLeaf("LeafB")
	leafC := domain.NewLeaf("LeafC")

	for _, link := range []struct {
		parent *domain.DecisionNode
		child  domain.Node
	}{
		{root, left},
		{root, right},
		{left, leafA},
		{left, leafB},
		{right, leafC},
	} {
		if err := link.parent.Add(link.child); err != nil {
			return nil, fmt.Errorf("sample tree: %w", err)
		}
	}
	return root, nil
}
