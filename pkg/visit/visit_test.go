package visit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/canopy/pkg/domain"
	"github.com/aretw0/canopy/pkg/visit"
)

// sampleTree returns root -> [a -> [leaf1, leaf2], b -> [leaf3]].
func sampleTree(t *testing.T) *domain.DecisionNode {
	t.Helper()
	root := domain.NewDecision("root")
	a := domain.NewDecision("a")
	b := domain.NewDecision("b")

	require.NoError(t, root.Add(a))
	require.NoError(t, root.Add(b))
	require.NoError(t, a.Add(domain.NewLeaf("leaf1")))
	require.NoError(t, a.Add(domain.NewLeaf("leaf2")))
	require.NoError(t, b.Add(domain.NewLeaf("leaf3")))
	return root
}

func TestDepth_SingleLeaf(t *testing.T) {
	depth, err := visit.Depth(domain.NewLeaf("only"))
	require.NoError(t, err)
	assert.Equal(t, 0, depth)
}

func TestDepth_SampleTree(t *testing.T) {
	root := sampleTree(t)

	depth, err := visit.Depth(root)
	require.NoError(t, err)
	assert.Equal(t, 2, depth)
}

func TestDepth_EmptyDecision(t *testing.T) {
	depth, err := visit.Depth(domain.NewDecision("empty"))
	require.NoError(t, err)
	assert.Equal(t, 0, depth)
}

func TestDepth_Asymmetric(t *testing.T) {
	// root -> deep -> deeper -> leaf, plus a shallow leaf on root.
	root := domain.NewDecision("root")
	deep := domain.NewDecision("deep")
	deeper := domain.NewDecision("deeper")
	require.NoError(t, root.Add(deep))
	require.NoError(t, root.Add(domain.NewLeaf("shallow")))
	require.NoError(t, deep.Add(deeper))
	require.NoError(t, deeper.Add(domain.NewLeaf("bottom")))

	depth, err := visit.Depth(root)
	require.NoError(t, err)
	assert.Equal(t, 3, depth)

	// Depth is relative to the visited node, not the tree root.
	subDepth, err := visit.Depth(deep)
	require.NoError(t, err)
	assert.Equal(t, 2, subDepth)
}

func TestCountLeaves_SampleTree(t *testing.T) {
	root := sampleTree(t)

	leaves, err := visit.Leaves(root)
	require.NoError(t, err)
	assert.Equal(t, 3, leaves)
}

func TestCountLeaves_SingleLeaf(t *testing.T) {
	leaves, err := visit.Leaves(domain.NewLeaf("only"))
	require.NoError(t, err)
	assert.Equal(t, 1, leaves)
}

func TestCountLeaves_EmptyDecision(t *testing.T) {
	leaves, err := visit.Leaves(domain.NewDecision("empty"))
	require.NoError(t, err)
	assert.Equal(t, 0, leaves)
}

func TestVisitors_DoNotMutate(t *testing.T) {
	root := sampleTree(t)

	_, err := visit.Depth(root)
	require.NoError(t, err)
	_, err = visit.Leaves(root)
	require.NoError(t, err)

	require.Len(t, root.Children(), 2)
	assert.Len(t, root.Children()[0].Children(), 2)
	assert.Len(t, root.Children()[1].Children(), 1)
}

func TestAccept_DispatchesByVariant(t *testing.T) {
	// A visitor that tags each variant differently.
	root := sampleTree(t)

	decisions, err := root.Accept(countDecisions{})
	require.NoError(t, err)
	assert.Equal(t, 3, decisions)
}

// countDecisions counts decision nodes, exercising double dispatch from the
// consumer side.
type countDecisions struct{}

func (v countDecisions) VisitDecision(d *domain.DecisionNode) (int, error) {
	total := 1
	for _, child := range d.Children() {
		n, err := child.Accept(v)
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}

func (v countDecisions) VisitLeaf(*domain.LeafNode) (int, error) { return 0, nil }
