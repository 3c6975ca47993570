package domain

import "time"

// ChildEvent describes a structural change: a child attached to or detached
// from a parent node.
type ChildEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Parent    string    `json:"parent"`
	Child     string    `json:"child"`
	ChildKind Kind      `json:"child_kind"`
}

// StateEvent describes a builder state transition or a state handling pass.
type StateEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Builder   string    `json:"builder"`
	State     string    `json:"state"`
	Target    string    `json:"target,omitempty"`
	Detail    string    `json:"detail,omitempty"`
}

// TreeHooks defines callbacks for tree and builder observability.
// All callbacks are optional and invoked synchronously; nil entries are
// skipped. Domain code never writes output itself. Hosts translate these
// events into logs, narration or metrics.
type TreeHooks struct {
	OnAttach      func(*ChildEvent)
	OnDetach      func(*ChildEvent)
	OnStateChange func(*StateEvent)
	OnStateHandle func(*StateEvent)
}
