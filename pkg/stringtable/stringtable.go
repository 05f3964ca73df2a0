// Package stringtable renders localization tables in the engine's
// Stringtable.xml layout: a project wrapping one package, each key carrying
// the original text plus one element per translated language. Rendering goes
// through the shared template engine with XML escaping applied to every
// interpolated value, so arbitrary mod text cannot break the document.
package stringtable

import (
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/goliatone/go-enfgen/internal/ordered"
	"github.com/goliatone/go-enfgen/internal/template"
)

//go:embed templates/*.tpl
var templates embed.FS

const templateName = "templates/stringtable"

var (
	// ErrMissingProject is returned when a table has no project name.
	ErrMissingProject = errors.New("stringtable: project name is required")
	// ErrMissingKeyID is returned when a key has no identifier.
	ErrMissingKeyID = errors.New("stringtable: key id is required")
	// ErrDuplicateKeyID is returned when two keys share an identifier.
	ErrDuplicateKeyID = errors.New("stringtable: duplicate key id")
	// ErrUnknownLanguage is returned when a translation names a language
	// outside the engine's known set.
	ErrUnknownLanguage = errors.New("stringtable: unknown language")
)

// knownLanguages is the engine's supported translation element set. The
// element name doubles as the XML tag, so membership is checked before any
// rendering happens.
var knownLanguages = map[string]struct{}{
	"English": {}, "Czech": {}, "French": {}, "Spanish": {}, "Italian": {},
	"Polish": {}, "Portuguese": {}, "Russian": {}, "German": {}, "Korean": {},
	"Japanese": {}, "Chinese": {}, "Chinesesimp": {}, "Turkish": {},
	"Swedish": {}, "Slovak": {}, "SerboCroatian": {}, "Norwegian": {},
	"Icelandic": {}, "Hungarian": {}, "Greek": {}, "Finnish": {},
	"Dutch": {}, "Danish": {},
}

// Translation is one localized text for a key. Language must be a member of
// the engine's known language set.
type Translation struct {
	Language string `json:"language" yaml:"language"`
	Text     string `json:"text" yaml:"text"`
}

// Key is one localization entry: the identifier referenced from configs and
// layouts, the original text, and the ordered translations.
type Key struct {
	ID           string        `json:"id" yaml:"id"`
	Original     string        `json:"original" yaml:"original"`
	Translations []Translation `json:"translations,omitempty" yaml:"translations,omitempty"`
}

// Table describes one Stringtable.xml document. PackageName defaults to
// ProjectName when empty.
type Table struct {
	ProjectName string `json:"project" yaml:"project"`
	PackageName string `json:"package" yaml:"package"`
	Keys        []Key  `json:"keys" yaml:"keys"`
}

// Option configures Generate.
type Option func(*config)

type config struct {
	templateContent string
}

// WithTemplate renders through caller-supplied template content instead of
// the bundled layout. The data context is identical, so custom layouts can
// reuse the project/package/keys names and the xmlescape filter.
func WithTemplate(content string) Option {
	return func(cfg *config) {
		cfg.templateContent = content
	}
}

// defaultEngine parses the bundled layout once; the engine caches templates
// and is safe for concurrent generation.
var defaultEngine = sync.OnceValues(func() (*template.Engine, error) {
	return template.New(template.WithFS(templates))
})

// Generate validates the table and renders the XML document, terminated by a
// trailing newline. Output is deterministic for identical input.
func Generate(t Table, opts ...Option) (string, error) {
	cfg := config{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if err := validate(t); err != nil {
		return "", err
	}
	if t.PackageName == "" {
		t.PackageName = t.ProjectName
	}

	engine, err := defaultEngine()
	if err != nil {
		return "", fmt.Errorf("stringtable: template engine: %w", err)
	}

	if cfg.templateContent != "" {
		return engine.RenderString(cfg.templateContent, t)
	}
	return engine.RenderTemplate(templateName, t)
}

// KnownLanguage reports whether name is in the engine's known language set.
func KnownLanguage(name string) bool {
	_, ok := knownLanguages[name]
	return ok
}

func validate(t Table) error {
	if t.ProjectName == "" {
		return ErrMissingProject
	}

	seen := ordered.NewSet()
	for _, key := range t.Keys {
		if key.ID == "" {
			return ErrMissingKeyID
		}
		if !seen.Add(key.ID) {
			return fmt.Errorf("%w: %q", ErrDuplicateKeyID, key.ID)
		}
		for _, tr := range key.Translations {
			if _, ok := knownLanguages[tr.Language]; !ok {
				return fmt.Errorf("%w: %q in key %q", ErrUnknownLanguage, tr.Language, key.ID)
			}
		}
	}
	return nil
}
