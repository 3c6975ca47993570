// Package dsl provides a compact declarative API for building trees in code,
// as an alternative to wiring domain nodes together by hand.
//
//	root, err := dsl.Decision("root",
//		dsl.Decision("left", dsl.Leaf("a"), dsl.Leaf("b")),
//		dsl.Leaf("c").Payload("class-c"),
//	).Build()
package dsl
