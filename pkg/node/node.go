package node

// Property is a single key/value pair inside a block. Properties keep their
// insertion order when serialized; duplicate keys pass through untouched, and
// uniqueness, where the engine demands it, is the producer's responsibility.
type Property struct {
	Key   string
	Value string
}

// Node represents one block in the class syntax. Fields are exported so
// producers can iterate them directly, but growth should go through the
// append helpers so every node keeps exclusive ownership of its sequences.
type Node struct {
	// Kind is the block's type name, e.g. "GameProject". Never empty in a
	// serializable tree.
	Kind string
	// InstanceID optionally follows the kind on the header line, e.g. the
	// configuration name in "GameProjectConfig PC".
	InstanceID string
	// Properties render as `Key "value"` lines in insertion order.
	Properties []Property
	// Children render as nested blocks, one indent level deeper.
	Children []*Node
	// Values render as bare quoted strings with no key, one per line.
	Values []string
}

// Option configures a Node during construction.
type Option func(*Node)

// WithID sets the instance identifier rendered after the kind on the header
// line.
func WithID(id string) Option {
	return func(n *Node) {
		n.InstanceID = id
	}
}

// WithProperty appends a single key/value property.
func WithProperty(key, value string) Option {
	return func(n *Node) {
		n.Properties = append(n.Properties, Property{Key: key, Value: value})
	}
}

// WithProperties appends properties preserving the given order.
func WithProperties(props ...Property) Option {
	return func(n *Node) {
		n.Properties = append(n.Properties, props...)
	}
}

// WithChildren appends child blocks preserving the given order.
func WithChildren(children ...*Node) Option {
	return func(n *Node) {
		n.Children = append(n.Children, children...)
	}
}

// WithValues appends bare values preserving the given order.
func WithValues(values ...string) Option {
	return func(n *Node) {
		n.Values = append(n.Values, values...)
	}
}

// New creates a Node of the given kind. Sequences supplied through options are
// copied into node-owned storage, so later caller-side mutation of the
// originals never leaks into the tree. New performs no validation; Serialize
// rejects malformed trees.
func New(kind string, opts ...Option) *Node {
	n := &Node{Kind: kind}
	for _, opt := range opts {
		if opt != nil {
			opt(n)
		}
	}
	return n
}

// AppendChild adds child to the end of the child list. Children appended
// after construction appear in subsequent Serialize output; the serializer
// always reads the current tree state.
func (n *Node) AppendChild(child *Node) *Node {
	n.Children = append(n.Children, child)
	return child
}

// AddProperty appends a key/value property to the end of the property list.
func (n *Node) AddProperty(key, value string) {
	n.Properties = append(n.Properties, Property{Key: key, Value: value})
}

// AppendValue adds a bare value to the end of the value list.
func (n *Node) AppendValue(value string) {
	n.Values = append(n.Values, value)
}
