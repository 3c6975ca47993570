package codec

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/canopy/pkg/domain"
)

// ErrUnknownKind is returned by Restore for a spec whose kind is neither
// decision nor leaf.
var ErrUnknownKind = errors.New("unknown node kind")

// ErrNoPayload is returned by DecodePayload when the leaf carries none.
var ErrNoPayload = errors.New("leaf has no payload")

// NodeSpec is a declarative mirror of a subtree.
type NodeSpec struct {
	Name     string      `json:"name" yaml:"name"`
	Kind     domain.Kind `json:"kind" yaml:"kind"`
	Payload  any         `json:"payload,omitempty" yaml:"payload,omitempty"`
	Children []NodeSpec  `json:"children,omitempty" yaml:"children,omitempty"`
}

// Snapshot captures the shape of the tree rooted at node.
func Snapshot(node domain.Node) NodeSpec {
	spec := NodeSpec{Name: node.Name(), Kind: node.Kind()}
	if leaf, ok := node.(*domain.LeafNode); ok {
		spec.Payload = leaf.Payload()
	}
	for _, child := range node.Children() {
		spec.Children = append(spec.Children, Snapshot(child))
	}
	return spec
}

// Restore builds a fresh tree from a snapshot. The options are applied to
// every node, so WithHooks wires the whole restored tree at once.
// A leaf spec with children is rejected with ErrLeafChildren.
func Restore(spec NodeSpec, opts ...domain.NodeOption) (domain.Node, error) {
	switch spec.Kind {
	case domain.KindLeaf:
		if len(spec.Children) > 0 {
			return nil, fmt.Errorf("restore %q: %w", spec.Name, domain.ErrLeafChildren)
		}
		leafOpts := opts
		if spec.Payload != nil {
			leafOpts = append(append([]domain.NodeOption(nil), opts...), domain.WithPayload(spec.Payload))
		}
		return domain.NewLeaf(spec.Name, leafOpts...), nil

	case domain.KindDecision:
		node := domain.NewDecision(spec.Name, opts...)
		for _, childSpec := range spec.Children {
			child, err := Restore(childSpec, opts...)
			if err != nil {
				return nil, err
			}
			if err := node.Add(child); err != nil {
				return nil, fmt.Errorf("restore %q: %w", spec.Name, err)
			}
		}
		return node, nil

	default:
		return nil, fmt.Errorf("restore %q: %w %q", spec.Name, ErrUnknownKind, spec.Kind)
	}
}

// EncodeYAML renders the tree rooted at node as YAML.
func EncodeYAML(node domain.Node) ([]byte, error) {
	out, err := yaml.Marshal(Snapshot(node))
	if err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	return out, nil
}

// DecodeYAML parses a YAML snapshot and restores the tree.
func DecodeYAML(data []byte, opts ...domain.NodeOption) (domain.Node, error) {
	var spec NodeSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return Restore(spec, opts...)
}

// EncodeJSON renders the tree rooted at node as indented JSON.
func EncodeJSON(node domain.Node) ([]byte, error) {
	out, err := json.MarshalIndent(Snapshot(node), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return out, nil
}

// DecodeJSON parses a JSON snapshot and restores the tree.
func DecodeJSON(data []byte, opts ...domain.NodeOption) (domain.Node, error) {
	var spec NodeSpec
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return Restore(spec, opts...)
}

// DecodePayload decodes a leaf payload (typically a map restored from YAML
// or JSON) into out, which must be a pointer to a struct or map.
func DecodePayload(leaf *domain.LeafNode, out any) error {
	payload := leaf.Payload()
	if payload == nil {
		return fmt.Errorf("decode payload of %q: %w", leaf.Name(), ErrNoPayload)
	}
	if err := mapstructure.Decode(payload, out); err != nil {
		return fmt.Errorf("decode payload of %q: %w", leaf.Name(), err)
	}
	return nil
}
