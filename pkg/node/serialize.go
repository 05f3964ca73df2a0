package node

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
)

// Class-syntax tokens. Header lines and property keys are unquoted, so their
// text is validated instead of escaped; everything inside a quoted slot goes
// through escapeString.
const (
	blockOpen  = "{"
	blockClose = "}"

	quote   = `"`
	indent  = "\t"
	space   = " "
	newline = "\n"

	backslash        = `\`
	carriageReturn   = "\r"
	escapedBackslash = `\\`
	escapedQuote     = `\"`
	escapedNewline   = `\n`
	escapedReturn    = `\r`
)

// Characters that would corrupt an unquoted slot. A kind additionally rejects
// the space because the header separator is a single space before the
// instance identifier.
const unquotedUnsafe = newline + carriageReturn + indent + blockOpen + blockClose + quote

var (
	// ErrNilNode is returned when the root or any child in the tree is nil.
	ErrNilNode = errors.New("node: nil node")
	// ErrEmptyKind is returned when a block has no kind; every block needs a
	// type name on its header line.
	ErrEmptyKind = errors.New("node: empty kind")
	// ErrInvalidKind is returned when a kind carries characters that cannot
	// appear in the unquoted header line.
	ErrInvalidKind = errors.New("node: invalid kind")
	// ErrInvalidInstanceID is returned when an instance identifier carries
	// characters that cannot appear in the unquoted header line.
	ErrInvalidInstanceID = errors.New("node: invalid instance id")
	// ErrInvalidPropertyKey is returned when a property key is empty or
	// carries characters that cannot appear in the unquoted key slot.
	ErrInvalidPropertyKey = errors.New("node: invalid property key")
)

// Serialize renders the tree rooted at root into the engine's class syntax
// and returns the complete document, terminated by a trailing newline. The
// walk is depth-first preorder: each block emits its header, an opening brace
// on its own line, properties, children, then bare values, and a closing
// brace, everything indented one tab per nesting depth. Output is
// deterministic for an unmutated tree.
//
// Serialize fails on input it cannot render faithfully instead of emitting
// corrupt text: nil nodes, an empty kind, and unquoted slots containing
// structural characters all surface as errors that name the offending block.
func Serialize(root *Node) (string, error) {
	if root == nil {
		return "", ErrNilNode
	}
	var buf bytes.Buffer
	if err := writeNode(&buf, root, 0); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func writeNode(buf *bytes.Buffer, n *Node, depth int) error {
	if err := checkHeader(n, depth); err != nil {
		return err
	}

	pad := strings.Repeat(indent, depth)

	buf.WriteString(pad)
	buf.WriteString(n.Kind)
	if n.InstanceID != "" {
		buf.WriteString(space)
		buf.WriteString(n.InstanceID)
	}
	buf.WriteString(newline)

	buf.WriteString(pad)
	buf.WriteString(blockOpen)
	buf.WriteString(newline)

	inner := pad + indent
	for _, prop := range n.Properties {
		if err := checkPropertyKey(n, prop.Key); err != nil {
			return err
		}
		buf.WriteString(inner)
		buf.WriteString(prop.Key)
		buf.WriteString(space)
		buf.WriteString(quote)
		buf.WriteString(escapeString(prop.Value))
		buf.WriteString(quote)
		buf.WriteString(newline)
	}
	for i, child := range n.Children {
		if child == nil {
			return fmt.Errorf("%w: child %d of block %q", ErrNilNode, i, n.Kind)
		}
		if err := writeNode(buf, child, depth+1); err != nil {
			return err
		}
	}
	for _, value := range n.Values {
		buf.WriteString(inner)
		buf.WriteString(quote)
		buf.WriteString(escapeString(value))
		buf.WriteString(quote)
		buf.WriteString(newline)
	}

	buf.WriteString(pad)
	buf.WriteString(blockClose)
	buf.WriteString(newline)
	return nil
}

func checkHeader(n *Node, depth int) error {
	if n.Kind == "" {
		return fmt.Errorf("%w: block at depth %d", ErrEmptyKind, depth)
	}
	if strings.ContainsAny(n.Kind, unquotedUnsafe+space) {
		return fmt.Errorf("%w: %q", ErrInvalidKind, n.Kind)
	}
	if n.InstanceID != "" && strings.ContainsAny(n.InstanceID, unquotedUnsafe) {
		return fmt.Errorf("%w: %q in block %q", ErrInvalidInstanceID, n.InstanceID, n.Kind)
	}
	return nil
}

func checkPropertyKey(n *Node, key string) error {
	if key == "" {
		return fmt.Errorf("%w: empty key in block %q", ErrInvalidPropertyKey, n.Kind)
	}
	if strings.ContainsAny(key, unquotedUnsafe) {
		return fmt.Errorf("%w: %q in block %q", ErrInvalidPropertyKey, key, n.Kind)
	}
	return nil
}

// escapeString makes a value safe for a quoted slot. Backslash and double
// quote get backslash escapes so the literal cannot terminate early; line
// breaks are rewritten to their escape sequences because a raw newline would
// break the one-entry-per-line block structure.
func escapeString(s string) string {
	s = strings.ReplaceAll(s, backslash, escapedBackslash)
	s = strings.ReplaceAll(s, quote, escapedQuote)
	s = strings.ReplaceAll(s, newline, escapedNewline)
	s = strings.ReplaceAll(s, carriageReturn, escapedReturn)
	return s
}
