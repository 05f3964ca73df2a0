package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/goliatone/go-enfgen/pkg/index"
)

// wikiFile mirrors the on-disk wiki document shape.
type wikiFile struct {
	BaseURL string       `json:"baseURL"`
	Pages   []index.Page `json:"pages"`
}

func main() {
	var (
		classesPath = flag.String("classes", "pkg/index/data/classes.json", "class table path")
		wikiPath    = flag.String("wiki", "pkg/index/data/wiki.json", "wiki table path")
		checkFlag   = flag.Bool("check", false, "verify canonical formatting without rewriting")
	)
	flag.Parse()

	classesDrift, err := normalizeClasses(*classesPath, *checkFlag)
	if err != nil {
		log.Fatalf("classes: %v", err)
	}

	wikiDrift, err := normalizeWiki(*wikiPath, *checkFlag)
	if err != nil {
		log.Fatalf("wiki: %v", err)
	}

	if *checkFlag && (classesDrift || wikiDrift) {
		log.Fatal("index data is not canonical; rerun without -check to rewrite")
	}
}

func normalizeClasses(path string, check bool) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", path, err)
	}

	var classes []index.Class
	if err := json.Unmarshal(data, &classes); err != nil {
		return false, fmt.Errorf("parse %s: %w", path, err)
	}

	seen := map[string]struct{}{}
	for i, class := range classes {
		name := strings.TrimSpace(class.Name)
		if name == "" {
			return false, fmt.Errorf("%s: entry %d has no name", path, i)
		}
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			return false, fmt.Errorf("%s: duplicate class %q", path, name)
		}
		seen[key] = struct{}{}
	}

	return rewrite(path, data, classes, check)
}

func normalizeWiki(path string, check bool) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", path, err)
	}

	var doc wikiFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return false, fmt.Errorf("parse %s: %w", path, err)
	}

	seen := map[string]struct{}{}
	for i, page := range doc.Pages {
		if strings.TrimSpace(page.Title) == "" {
			return false, fmt.Errorf("%s: page %d has no title", path, i)
		}
		slug := strings.TrimSpace(page.Slug)
		if slug == "" {
			return false, fmt.Errorf("%s: page %q has no slug", path, page.Title)
		}
		if _, dup := seen[slug]; dup {
			return false, fmt.Errorf("%s: duplicate slug %q", path, slug)
		}
		seen[slug] = struct{}{}
	}

	return rewrite(path, data, doc, check)
}

// rewrite re-encodes payload in canonical form and reports whether the file
// drifted from it. Entry order is preserved; it feeds search ranking.
func rewrite(path string, current []byte, payload any, check bool) (bool, error) {
	canonical, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return false, fmt.Errorf("encode %s: %w", path, err)
	}
	canonical = append(canonical, '\n')

	if bytes.Equal(current, canonical) {
		return false, nil
	}
	if check {
		log.Printf("%s is not canonical", path)
		return true, nil
	}

	if err := os.WriteFile(path, canonical, 0o644); err != nil {
		return false, fmt.Errorf("write %s: %w", path, err)
	}
	log.Printf("rewrote %s", path)
	return true, nil
}
