// Package index loads the static class and wiki indexes that back the search
// tools. Both documents are plain JSON: a class table listing engine and
// script classes, and a wiki table listing community documentation pages plus
// the URL pattern that turns a page slug into a link. Load never fails the
// caller; a missing or malformed document degrades to an empty table with a
// logged warning so lookups simply return no results. The bundled defaults
// ship inside the binary and are used when no override filesystem is given.
// A Store is immutable after Load and safe for concurrent readers.
package index
