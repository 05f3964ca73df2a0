// Package node models the Enfusion class syntax as an ordered in-memory tree
// and renders it back out as text. A Node is one block: a kind (the type name
// on the header line), an optional instance identifier after the kind, ordered
// key/value properties, ordered child blocks, and ordered bare values for
// array-style blocks such as dependency lists. Producers build a tree with New
// and the append helpers, mutate it freely, then hand the root to Serialize,
// which walks the current state and emits tab-indented blocks with every
// quoted slot escaped. Serialization is deterministic: the same tree always
// produces byte-identical text, so downstream diffing and checksum tooling can
// rely on stable output.
package node
