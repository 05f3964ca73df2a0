package enfgen

import (
	"github.com/goliatone/go-enfgen/pkg/gen"
	"github.com/goliatone/go-enfgen/pkg/guid"
	"github.com/goliatone/go-enfgen/pkg/node"
	"github.com/goliatone/go-enfgen/pkg/stringtable"
)

// Node is one block in the engine class syntax; alias exported via the root
// package for convenience.
type Node = node.Node

// Property is a key/value pair rendered inside a block.
type Property = node.Property

// NodeOption configures a Node during construction.
type NodeOption = node.Option

// Project describes the inputs for a .gproj document.
type Project = gen.Project

// Config describes the root block of a .conf document.
type Config = gen.Config

// Table is a stringtable payload with its keys and translations.
type Table = stringtable.Table

// Key is a single stringtable entry.
type Key = stringtable.Key

// Translation localizes one key into one language.
type Translation = stringtable.Translation

// BaseGameGUID identifies the base game dependency every generated project
// depends on.
const BaseGameGUID = gen.BaseGameGUID

// NewNode constructs a block of the given kind. Construction never fails;
// Serialize rejects malformed trees.
func NewNode(kind string, options ...NodeOption) *Node {
	return node.New(kind, options...)
}

// WithID sets the instance identifier rendered after the kind on the header
// line.
func WithID(id string) NodeOption {
	return node.WithID(id)
}

// WithProperty appends a single key/value property.
func WithProperty(key, value string) NodeOption {
	return node.WithProperty(key, value)
}

// WithChildren appends nested blocks preserving the given order.
func WithChildren(children ...*Node) NodeOption {
	return node.WithChildren(children...)
}

// WithValues appends bare quoted values preserving the given order.
func WithValues(values ...string) NodeOption {
	return node.WithValues(values...)
}

// Serialize renders a node tree into the engine text form.
func Serialize(n *Node) (string, error) {
	return node.Serialize(n)
}

// GenerateProject builds and serializes a .gproj document, seeding the base
// game dependency and the default configuration blocks. It is the simplest
// entry point for callers that just want project output.
func GenerateProject(p Project) (string, error) {
	return gen.GenerateProject(p)
}

// GenerateConfig builds and serializes a .conf document.
func GenerateConfig(c Config) (string, error) {
	return gen.GenerateConfig(c)
}

// GenerateStringtable renders a stringtable XML document from the table
// payload.
func GenerateStringtable(t Table) (string, error) {
	return stringtable.Generate(t)
}

// ParseStringtable decodes a JSON or YAML table document.
func ParseStringtable(data []byte) (Table, error) {
	return stringtable.Parse(data)
}

// NewGUID returns a fresh 16 character uppercase hex identifier.
func NewGUID() (string, error) {
	return guid.New()
}

// ValidGUID reports whether s is a well-formed identifier.
func ValidGUID(s string) bool {
	return guid.Valid(s)
}
