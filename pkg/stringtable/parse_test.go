package stringtable_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-enfgen/pkg/stringtable"
)

func TestParseJSONDocument(t *testing.T) {
	data := []byte(`{
  "project": "MyAddon",
  "keys": [
    {"id": "STR_a", "original": "A", "translations": [{"language": "French", "text": "Ah"}]}
  ]
}`)

	table, err := stringtable.Parse(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if table.ProjectName != "MyAddon" {
		t.Fatalf("project = %q, want %q", table.ProjectName, "MyAddon")
	}
	if len(table.Keys) != 1 || table.Keys[0].ID != "STR_a" {
		t.Fatalf("keys = %+v", table.Keys)
	}
	if len(table.Keys[0].Translations) != 1 || table.Keys[0].Translations[0].Language != "French" {
		t.Fatalf("translations = %+v", table.Keys[0].Translations)
	}
}

func TestParseYAMLDocument(t *testing.T) {
	data := []byte(`project: MyAddon
package: Core
keys:
  - id: STR_a
    original: A
  - id: STR_b
    original: B
    translations:
      - language: German
        text: Bee
`)

	table, err := stringtable.Parse(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if table.PackageName != "Core" {
		t.Fatalf("package = %q, want %q", table.PackageName, "Core")
	}
	if len(table.Keys) != 2 {
		t.Fatalf("expected 2 keys, got %d", len(table.Keys))
	}
	if table.Keys[1].Translations[0].Language != "German" {
		t.Fatalf("translations = %+v", table.Keys[1].Translations)
	}
}

func TestParseEmptyDocument(t *testing.T) {
	if _, err := stringtable.Parse([]byte("  \n\t")); !errors.Is(err, stringtable.ErrEmptyDocument) {
		t.Fatalf("expected ErrEmptyDocument, got %v", err)
	}
}

func TestParseMalformedDocument(t *testing.T) {
	if _, err := stringtable.Parse([]byte("{not json: [and not yaml")); !errors.Is(err, stringtable.ErrMalformedDocument) {
		t.Fatalf("expected ErrMalformedDocument, got %v", err)
	}
}

func TestParsedDocumentGenerates(t *testing.T) {
	data := []byte("project: MyAddon\nkeys:\n  - id: STR_hello\n    original: Hello\n")

	table, err := stringtable.Parse(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	out, err := stringtable.Generate(table)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if want := `<Key ID="STR_hello">`; !strings.Contains(out, want) {
		t.Fatalf("output missing %q:\n%s", want, out)
	}
}
