package index

import (
	"io/fs"
	"log/slog"
	"strings"

	json "github.com/goccy/go-json"
)

const (
	defaultClassesPath = "classes.json"
	defaultWikiPath    = "wiki.json"

	// defaultWikiBaseURL covers wiki documents that omit their URL pattern.
	defaultWikiBaseURL = "https://community.bistudio.com/wiki/{slug}"
)

// Option configures Load before the documents are read.
type Option func(*config)

type config struct {
	fsys        fs.FS
	classesPath string
	wikiPath    string
	logger      *slog.Logger
}

// WithFS overrides the filesystem the index documents are read from. Pass
// os.DirFS to load operator-maintained tables from disk.
func WithFS(fsys fs.FS) Option {
	return func(cfg *config) {
		if fsys != nil {
			cfg.fsys = fsys
		}
	}
}

// WithClassesPath overrides the class table path within the filesystem.
func WithClassesPath(path string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(path); trimmed != "" {
			cfg.classesPath = trimmed
		}
	}
}

// WithWikiPath overrides the wiki table path within the filesystem.
func WithWikiPath(path string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(path); trimmed != "" {
			cfg.wikiPath = trimmed
		}
	}
}

// WithLogger routes load-time warnings to the given logger.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// Store holds the loaded index tables. It is read-only after Load and safe
// for concurrent readers.
type Store struct {
	classes []Class
	byName  map[string]int
	pages   []Page
	baseURL string
}

// Load reads both index documents and builds the lookup tables. Load never
// fails: a document that cannot be read or parsed leaves its table empty and
// logs a warning, so a broken operator override degrades search results
// instead of taking the server down.
func Load(opts ...Option) *Store {
	cfg := config{
		fsys:        EmbeddedFS(),
		classesPath: defaultClassesPath,
		wikiPath:    defaultWikiPath,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	store := &Store{
		byName:  make(map[string]int),
		baseURL: defaultWikiBaseURL,
	}
	store.loadClasses(cfg)
	store.loadWiki(cfg)
	return store
}

func (s *Store) loadClasses(cfg config) {
	data, err := fs.ReadFile(cfg.fsys, cfg.classesPath)
	if err != nil {
		cfg.logger.Warn("class table unavailable, continuing with empty table",
			"path", cfg.classesPath, "error", err)
		return
	}

	var classes []Class
	if err := json.Unmarshal(data, &classes); err != nil {
		cfg.logger.Warn("class table malformed, continuing with empty table",
			"path", cfg.classesPath, "error", err)
		return
	}

	s.classes = classes
	for i, class := range classes {
		key := strings.ToLower(class.Name)
		if _, exists := s.byName[key]; exists {
			continue
		}
		s.byName[key] = i
	}
}

func (s *Store) loadWiki(cfg config) {
	data, err := fs.ReadFile(cfg.fsys, cfg.wikiPath)
	if err != nil {
		cfg.logger.Warn("wiki table unavailable, continuing with empty table",
			"path", cfg.wikiPath, "error", err)
		return
	}

	var doc wikiDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		cfg.logger.Warn("wiki table malformed, continuing with empty table",
			"path", cfg.wikiPath, "error", err)
		return
	}

	s.pages = doc.Pages
	if doc.BaseURL != "" {
		s.baseURL = doc.BaseURL
	}
}

// ClassCount returns the number of loaded class entries.
func (s *Store) ClassCount() int {
	return len(s.classes)
}

// PageCount returns the number of loaded wiki entries.
func (s *Store) PageCount() int {
	return len(s.pages)
}
