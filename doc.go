/*
Package canopy is a small decision-tree object model built around four
classic structural patterns: a Composite node hierarchy, an external
pre-order Iterator, double-dispatch Visitors, and a State-driven TreeBuilder.

There is no learning algorithm here. Splitting, stopping and pruning are
structural operations on a toy tree; the point of the library is the object
model and its observability, not statistics.

# Concept

A tree is built from domain.DecisionNode and domain.LeafNode values. The
traverse package walks it, the visit package aggregates over it, and the
TreeBuilder in this package mutates it through swappable named states.
Every structural change and builder action is reported through
domain.TreeHooks, so hosts decide how (and whether) to narrate.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/canopy"
		"github.com/aretw0/canopy/pkg/visit"
	)

	func main() {
		builder, err := canopy.NewBuilder("demo")
		if err != nil {
			log.Fatal(err)
		}

		// Grow the tree: split the root, then cap the first child.
		if err := builder.Handle(); err != nil {
			log.Fatal(err)
		}
		builder.SetTarget(builder.Root().Children()[0])
		if err := builder.SetState(canopy.StateStopping); err != nil {
			log.Fatal(err)
		}
		if err := builder.Handle(); err != nil {
			log.Fatal(err)
		}

		leaves, _ := visit.Leaves(builder.Root())
		fmt.Println("leaves:", leaves)
	}
*/
package canopy
