package gen

import (
	"errors"

	"github.com/goliatone/go-enfgen/pkg/node"
)

// ErrMissingClassName is returned when a config has no root class name.
var ErrMissingClassName = errors.New("gen: config class name is required")

// Config describes a .conf document: a root class, an optional instance name
// on the header line, and whatever ordered properties and nested component
// blocks the caller assembled.
type Config struct {
	ClassName    string
	InstanceName string
	Properties   []node.Property
	Children     []*node.Node
}

// BuildConfigTree assembles the config document tree. The returned tree is
// caller-owned; producers typically append component blocks before
// serializing.
func BuildConfigTree(c Config) (*node.Node, error) {
	if c.ClassName == "" {
		return nil, ErrMissingClassName
	}

	opts := make([]node.Option, 0, 3)
	if c.InstanceName != "" {
		opts = append(opts, node.WithID(c.InstanceName))
	}
	if len(c.Properties) > 0 {
		opts = append(opts, node.WithProperties(c.Properties...))
	}
	if len(c.Children) > 0 {
		opts = append(opts, node.WithChildren(c.Children...))
	}
	return node.New(c.ClassName, opts...), nil
}

// GenerateConfig builds the config tree and serializes it into the final
// .conf text.
func GenerateConfig(c Config) (string, error) {
	root, err := BuildConfigTree(c)
	if err != nil {
		return "", err
	}
	return node.Serialize(root)
}
