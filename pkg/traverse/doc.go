// Package traverse provides tree iteration utilities.
//
// The central type is PreOrder, an external iterator with has-next/next
// semantics so callers can interleave traversal with other work. Walk wraps
// it for the common drain-the-whole-tree case.
package traverse
