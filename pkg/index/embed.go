package index

import (
	"embed"
	"io/fs"
)

//go:embed data/*.json
var embeddedData embed.FS

// EmbeddedFS returns the bundled index documents. Callers may pass this
// filesystem to Load via WithFS to restore the defaults.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedData, "data")
	if err != nil {
		// data is guaranteed by the embed directive.
		panic(err)
	}
	return sub
}
