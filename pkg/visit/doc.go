// Package visit provides the built-in read-only visitors: DepthVisitor for
// the maximum root-to-leaf path length and CountLeavesVisitor for the number
// of reachable leaves. Both recurse through Node.Accept and never mutate the
// tree.
package visit
