package canopy

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/canopy/pkg/domain"
)

// Version is the canopy release version.
var Version = "0.1.0"

// ErrUnknownState is returned by SetState for a name with no registered state.
var ErrUnknownState = errors.New("unknown state")

// State is a swappable behavior of the TreeBuilder. Implementations are
// stateless; the builder they act on is passed to Handle per call.
type State interface {
	// Name returns the registry name of the state.
	Name() string
	// Handle performs the state's action against the builder's current target.
	Handle(b *TreeBuilder) error
}

// TreeBuilder grows and shrinks a decision tree by delegating Handle to its
// current State. Exactly one state is active at any time; SetState replaces
// it unconditionally, so any state may follow any other.
type TreeBuilder struct {
	name    string
	root    *domain.DecisionNode
	target  domain.Node
	state   State
	states  map[string]State
	hooks   *domain.TreeHooks
	logger  *slog.Logger
	initial string
}

// Option defines a functional option for configuring the TreeBuilder.
type Option func(*TreeBuilder)

// WithRoot injects a custom root node. The root should be constructed with
// the same hooks passed to WithHooks so its subtree stays observable.
func WithRoot(root *domain.DecisionNode) Option {
	return func(b *TreeBuilder) {
		b.root = root
	}
}

// WithLogger sets a custom structured logger for the builder.
func WithLogger(logger *slog.Logger) Option {
	return func(b *TreeBuilder) {
		b.logger = logger
	}
}

// WithHooks registers observability hooks for builder and tree events.
func WithHooks(hooks *domain.TreeHooks) Option {
	return func(b *TreeBuilder) {
		b.hooks = hooks
	}
}

// WithInitialState selects the state the builder starts in
// (default: StateSplitting).
func WithInitialState(name string) Option {
	return func(b *TreeBuilder) {
		b.initial = name
	}
}

// NewBuilder creates a TreeBuilder with the three built-in states registered
// (splitting, stopping, pruning). Without WithRoot, a fresh decision node
// named "root" is created and wired to the builder's hooks.
func NewBuilder(name string, opts ...Option) (*TreeBuilder, error) {
	b := &TreeBuilder{
		name:    name,
		initial: StateSplitting,
	}
	for _, opt := range opts {
		opt(b)
	}

	if b.logger == nil {
		b.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if b.root == nil {
		b.root = domain.NewDecision("root", domain.WithHooks(b.hooks))
	}

	b.states = map[string]State{
		StateSplitting: splittingState{},
		StateStopping:  stoppingState{},
		StatePruning:   pruningState{},
	}
	initial, ok := b.states[b.initial]
	if !ok {
		return nil, fmt.Errorf("initial state %q: %w", b.initial, ErrUnknownState)
	}
	b.state = initial

	b.logger = b.logger.With("builder", b.name)
	b.logger.Debug("builder created", "root", b.root.Name(), "state", b.state.Name())
	return b, nil
}

// Name returns the builder identity.
func (b *TreeBuilder) Name() string { return b.name }

// Root returns the tree root.
func (b *TreeBuilder) Root() *domain.DecisionNode { return b.root }

// State returns the active state.
func (b *TreeBuilder) State() State { return b.state }

// Target returns the node the next Handle call acts on; it falls back to the
// root when no explicit target is set.
func (b *TreeBuilder) Target() domain.Node {
	if b.target != nil {
		return b.target
	}
	return b.root
}

// SetTarget selects the node affected by subsequent Handle calls.
// A nil node resets the target to the root.
func (b *TreeBuilder) SetTarget(node domain.Node) {
	b.target = node
	b.logger.Debug("target set", "target", b.Target().Name())
}

// SetState replaces the active state with the named one. The replacement is
// unconditional: there are no transition guards, so any state may follow any
// other. Unknown names are rejected with ErrUnknownState.
func (b *TreeBuilder) SetState(name string) error {
	next, ok := b.states[name]
	if !ok {
		return fmt.Errorf("set state %q: %w", name, ErrUnknownState)
	}
	b.state = next
	b.logger.Debug("state changed", "state", name)

	if b.hooks != nil && b.hooks.OnStateChange != nil {
		b.hooks.OnStateChange(b.stateEvent(""))
	}
	return nil
}

// Handle delegates to the active state against the current target.
func (b *TreeBuilder) Handle() error {
	b.logger.Debug("handle", "state", b.state.Name(), "target", b.Target().Name())
	return b.state.Handle(b)
}

// emitHandle reports a completed state action through the hooks.
func (b *TreeBuilder) emitHandle(detail string) {
	if b.hooks != nil && b.hooks.OnStateHandle != nil {
		b.hooks.OnStateHandle(b.stateEvent(detail))
	}
}

func (b *TreeBuilder) stateEvent(detail string) *domain.StateEvent {
	return &domain.StateEvent{
		Timestamp: time.Now(),
		Builder:   b.name,
		State:     b.state.Name(),
		Target:    b.Target().Name(),
		Detail:    detail,
	}
}
