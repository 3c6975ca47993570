/*
Package domain contains the core object model for the canopy decision tree.

It defines the fundamental entities of the tree: the Node contract and its two
concrete variants (DecisionNode, LeafNode), the Visitor contract used for
double dispatch, and the lifecycle hooks that make structural changes
observable. This package is kept pure and free of external dependencies like
I/O or rendering, following Hexagonal Architecture principles.

# Key Entities

  - Node: Common surface of every tree node (name, kind, children, Accept).
  - DecisionNode: Internal node owning an ordered sequence of children.
  - LeafNode: Terminal node, optionally carrying an opaque payload.
  - Visitor: Per-variant handlers invoked through Node.Accept.
  - TreeHooks: Callbacks fired on structural and builder events.
*/
package domain
