// Package codec converts trees to and from declarative NodeSpec snapshots,
// with YAML and JSON encodings on top. Nothing here touches the filesystem;
// encoding targets are plain byte slices so hosts decide where they go
// (stdout, a test fixture, a wire).
package codec
