package canopy

import (
	"fmt"

	"github.com/aretw0/canopy/pkg/domain"
)

// Registry names of the built-in states.
const (
	StateSplitting = "splitting"
	StateStopping  = "stopping"
	StatePruning   = "pruning"
)

// splittingState expands the target by attaching a decision/leaf pair,
// the structural shape a real split would produce.
type splittingState struct{}

func (splittingState) Name() string { return StateSplitting }

func (s splittingState) Handle(b *TreeBuilder) error {
	target := b.Target()
	left := domain.NewDecision("split_left_of_" + target.Name())
	right := domain.NewLeaf("split_right_of_" + target.Name())

	if err := target.Add(left); err != nil {
		return fmt.Errorf("splitting %q: %w", target.Name(), err)
	}
	if err := target.Add(right); err != nil {
		return fmt.Errorf("splitting %q: %w", target.Name(), err)
	}

	b.logger.Info("split performed", "target", target.Name())
	b.emitHandle(fmt.Sprintf("attached %q and %q", left.Name(), right.Name()))
	return nil
}

// stoppingState caps the target with a single terminal leaf, marking the end
// of growth at that point.
type stoppingState struct{}

func (stoppingState) Name() string { return StateStopping }

func (s stoppingState) Handle(b *TreeBuilder) error {
	target := b.Target()
	leaf := domain.NewLeaf("stopped_leaf_of_" + target.Name())

	if err := target.Add(leaf); err != nil {
		return fmt.Errorf("stopping %q: %w", target.Name(), err)
	}

	b.logger.Info("growth stopped", "target", target.Name())
	b.emitHandle(fmt.Sprintf("attached %q", leaf.Name()))
	return nil
}

// pruningState removes the target's last child. When the target is a leaf or
// has no children there is nothing to prune; that outcome is still reported
// through the hooks rather than treated as an error.
type pruningState struct{}

func (pruningState) Name() string { return StatePruning }

func (s pruningState) Handle(b *TreeBuilder) error {
	target, ok := b.Target().(*domain.DecisionNode)
	if !ok || len(target.Children()) == 0 {
		b.logger.Info("nothing to prune", "target", b.Target().Name())
		b.emitHandle("nothing to prune")
		return nil
	}

	children := target.Children()
	last := children[len(children)-1]
	if err := target.Remove(last); err != nil {
		return fmt.Errorf("pruning %q: %w", target.Name(), err)
	}

	b.logger.Info("pruned", "target", target.Name(), "removed", last.Name())
	b.emitHandle(fmt.Sprintf("removed %q", last.Name()))
	return nil
}
