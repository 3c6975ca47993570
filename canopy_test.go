package canopy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/canopy"
	"github.com/aretw0/canopy/pkg/domain"
	"github.com/aretw0/canopy/pkg/visit"
)

func TestNewBuilder_Defaults(t *testing.T) {
	b, err := canopy.NewBuilder("test")
	require.NoError(t, err)

	assert.Equal(t, "test", b.Name())
	assert.Equal(t, canopy.StateSplitting, b.State().Name())
	assert.Equal(t, "root", b.Root().Name())
	assert.Empty(t, b.Root().Children())
	assert.Same(t, domain.Node(b.Root()), b.Target())
}

func TestNewBuilder_InitialState(t *testing.T) {
	b, err := canopy.NewBuilder("test", canopy.WithInitialState(canopy.StatePruning))
	require.NoError(t, err)
	assert.Equal(t, canopy.StatePruning, b.State().Name())

	_, err = canopy.NewBuilder("test", canopy.WithInitialState("learning"))
	assert.ErrorIs(t, err, canopy.ErrUnknownState)
}

func TestSetState_UnknownName(t *testing.T) {
	b, err := canopy.NewBuilder("test")
	require.NoError(t, err)

	err = b.SetState("winning")
	assert.ErrorIs(t, err, canopy.ErrUnknownState)
	// The active state is unchanged after a failed transition.
	assert.Equal(t, canopy.StateSplitting, b.State().Name())
}

func TestSplitting_AttachesPair(t *testing.T) {
	b, err := canopy.NewBuilder("test")
	require.NoError(t, err)

	require.NoError(t, b.Handle())

	children := b.Root().Children()
	require.Len(t, children, 2)
	assert.Equal(t, domain.KindDecision, children[0].Kind())
	assert.Equal(t, domain.KindLeaf, children[1].Kind())
	assert.Equal(t, "split_left_of_root", children[0].Name())
	assert.Equal(t, "split_right_of_root", children[1].Name())
}

func TestStopping_AttachesTerminalLeaf(t *testing.T) {
	b, err := canopy.NewBuilder("test")
	require.NoError(t, err)
	require.NoError(t, b.Handle())

	first := b.Root().Children()[0]
	b.SetTarget(first)
	require.NoError(t, b.SetState(canopy.StateStopping))
	require.NoError(t, b.Handle())

	kids := first.Children()
	require.Len(t, kids, 1)
	assert.Equal(t, "stopped_leaf_of_split_left_of_root", kids[0].Name())
	assert.Equal(t, domain.KindLeaf, kids[0].Kind())
}

func TestStopping_OnLeafTargetFails(t *testing.T) {
	b, err := canopy.NewBuilder("test")
	require.NoError(t, err)
	require.NoError(t, b.Handle())

	// Second child of the split is a leaf; stopping there must fail.
	b.SetTarget(b.Root().Children()[1])
	require.NoError(t, b.SetState(canopy.StateStopping))

	err = b.Handle()
	assert.ErrorIs(t, err, domain.ErrLeafChildren)
}

func TestPruning_RemovesLastChild(t *testing.T) {
	b, err := canopy.NewBuilder("test")
	require.NoError(t, err)
	require.NoError(t, b.Handle())
	require.Len(t, b.Root().Children(), 2)

	require.NoError(t, b.SetState(canopy.StatePruning))
	require.NoError(t, b.Handle())

	children := b.Root().Children()
	require.Len(t, children, 1)
	assert.Equal(t, "split_left_of_root", children[0].Name())
}

func TestPruning_NothingToPrune(t *testing.T) {
	var handled []string
	hooks := &domain.TreeHooks{
		OnStateHandle: func(e *domain.StateEvent) {
			handled = append(handled, e.Detail)
		},
	}

	b, err := canopy.NewBuilder("test",
		canopy.WithHooks(hooks),
		canopy.WithInitialState(canopy.StatePruning),
	)
	require.NoError(t, err)

	require.NoError(t, b.Handle())
	assert.Empty(t, b.Root().Children())
	require.Len(t, handled, 1)
	assert.Equal(t, "nothing to prune", handled[0])
}

func TestSetState_ReplacesUnconditionally(t *testing.T) {
	// Any state may follow any other; only the newly set handler runs.
	b, err := canopy.NewBuilder("test")
	require.NoError(t, err)
	require.NoError(t, b.Handle()) // splitting: 2 children

	require.NoError(t, b.SetState(canopy.StatePruning))
	require.NoError(t, b.SetState(canopy.StateStopping))
	require.NoError(t, b.Handle()) // stopping, not pruning

	// 2 from the split + 1 stopped leaf, nothing removed.
	assert.Len(t, b.Root().Children(), 3)
}

func TestSetTarget_NilResetsToRoot(t *testing.T) {
	b, err := canopy.NewBuilder("test")
	require.NoError(t, err)
	require.NoError(t, b.Handle())

	b.SetTarget(b.Root().Children()[0])
	assert.Equal(t, "split_left_of_root", b.Target().Name())

	b.SetTarget(nil)
	assert.Same(t, domain.Node(b.Root()), b.Target())
}

func TestBuilder_HookEvents(t *testing.T) {
	var changes, handles []string
	hooks := &domain.TreeHooks{
		OnStateChange: func(e *domain.StateEvent) {
			changes = append(changes, e.State)
		},
		OnStateHandle: func(e *domain.StateEvent) {
			handles = append(handles, e.State+"@"+e.Target)
		},
	}

	b, err := canopy.NewBuilder("evt", canopy.WithHooks(hooks))
	require.NoError(t, err)

	require.NoError(t, b.Handle())
	require.NoError(t, b.SetState(canopy.StateStopping))
	require.NoError(t, b.Handle())

	assert.Equal(t, []string{canopy.StateStopping}, changes)
	assert.Equal(t, []string{"splitting@root", "stopping@root"}, handles)
}

func TestBuilder_TreeIsObservable(t *testing.T) {
	// Structural changes made by states surface through the same hooks.
	var attached, detached int
	hooks := &domain.TreeHooks{
		OnAttach: func(*domain.ChildEvent) { attached++ },
		OnDetach: func(*domain.ChildEvent) { detached++ },
	}

	b, err := canopy.NewBuilder("obs", canopy.WithHooks(hooks))
	require.NoError(t, err)

	require.NoError(t, b.Handle()) // split: +2
	require.NoError(t, b.SetState(canopy.StatePruning))
	require.NoError(t, b.Handle()) // prune: -1

	assert.Equal(t, 2, attached)
	assert.Equal(t, 1, detached)
}

func TestSampleTree(t *testing.T) {
	root, err := canopy.SampleTree(nil)
	require.NoError(t, err)

	depth, err := visit.Depth(root)
	require.NoError(t, err)
	assert.Equal(t, 2, depth)

	leaves, err := visit.Leaves(root)
	require.NoError(t, err)
	assert.Equal(t, 3, leaves)

	require.Len(t, root.Children(), 2)
	assert.Equal(t, "LeftDecision", root.Children()[0].Name())
	assert.Equal(t, "RightDecision", root.Children()[1].Name())
}

func TestBuilder_WithCustomRoot(t *testing.T) {
	root := domain.NewDecision("orchard")
	b, err := canopy.NewBuilder("custom", canopy.WithRoot(root))
	require.NoError(t, err)

	require.NoError(t, b.Handle())
	require.Len(t, root.Children(), 2)
	assert.Equal(t, "split_left_of_orchard", root.Children()[0].Name())
}
