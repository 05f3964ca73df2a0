package stringtable

import (
	"bytes"
	"errors"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

var (
	// ErrEmptyDocument is returned when a table document has no content.
	ErrEmptyDocument = errors.New("stringtable: empty table document")
	// ErrMalformedDocument is returned when a table document is neither
	// valid JSON nor valid YAML.
	ErrMalformedDocument = errors.New("stringtable: table document is not valid JSON or YAML")
)

// Parse decodes a table document from JSON or YAML bytes. JSON is tried
// first so JSON documents never depend on YAML's more permissive scalar
// handling.
func Parse(data []byte) (Table, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Table{}, ErrEmptyDocument
	}

	var t Table
	if err := json.Unmarshal(data, &t); err == nil {
		return t, nil
	}

	t = Table{}
	if err := yaml.Unmarshal(data, &t); err == nil {
		return t, nil
	}

	return Table{}, ErrMalformedDocument
}
