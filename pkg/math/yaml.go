package math

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Vectors are written as flow sequences ([x, y, z]) and read from either
// a sequence or an {x, y, z} mapping.

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *Vec3) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		c, err := decodeComponents(node, 3)
		if err != nil {
			return err
		}
		*v = Vec3{c[0], c[1], c[2]}
		return nil
	}
	var m struct {
		X float32 `yaml:"x"`
		Y float32 `yaml:"y"`
		Z float32 `yaml:"z"`
	}
	if err := node.Decode(&m); err != nil {
		return err
	}
	*v = Vec3{m.X, m.Y, m.Z}
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (v Vec3) MarshalYAML() (any, error) {
	return flowSequence(v.X, v.Y, v.Z), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *Vec2) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		c, err := decodeComponents(node, 2)
		if err != nil {
			return err
		}
		*v = Vec2{c[0], c[1]}
		return nil
	}
	var m struct {
		X float32 `yaml:"x"`
		Y float32 `yaml:"y"`
	}
	if err := node.Decode(&m); err != nil {
		return err
	}
	*v = Vec2{m.X, m.Y}
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (v Vec2) MarshalYAML() (any, error) {
	return flowSequence(v.X, v.Y), nil
}

func decodeComponents(node *yaml.Node, n int) ([]float32, error) {
	var c []float32
	if err := node.Decode(&c); err != nil {
		return nil, err
	}
	if len(c) != n {
		return nil, fmt.Errorf("line %d: expected %d components, got %d", node.Line, n, len(c))
	}
	return c, nil
}

func flowSequence(c ...float32) *yaml.Node {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, f := range c {
		node.Content = append(node.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Value: strconv.FormatFloat(float64(f), 'g', -1, 32),
		})
	}
	return node
}
