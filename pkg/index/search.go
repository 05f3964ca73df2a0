package index

import (
	"sort"
	"strings"

	"github.com/valyala/fasttemplate"
)

// SearchClasses returns classes whose name contains query, case-insensitive.
// Name-prefix matches rank before other matches; ties break alphabetically so
// repeated searches return identical orderings. A limit of zero or less means
// no cap.
func (s *Store) SearchClasses(query string, limit int) []Class {
	needle := strings.ToLower(strings.TrimSpace(query))

	var matches []Class
	for _, class := range s.classes {
		if strings.Contains(strings.ToLower(class.Name), needle) {
			matches = append(matches, class)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		a := strings.ToLower(matches[i].Name)
		b := strings.ToLower(matches[j].Name)
		aPrefix := strings.HasPrefix(a, needle)
		bPrefix := strings.HasPrefix(b, needle)
		if aPrefix != bPrefix {
			return aPrefix
		}
		return a < b
	})

	return clamp(matches, limit)
}

// Class looks up a single class by exact name, case-insensitive.
func (s *Store) Class(name string) (Class, bool) {
	i, ok := s.byName[strings.ToLower(name)]
	if !ok {
		return Class{}, false
	}
	return s.classes[i], true
}

// SearchWiki returns pages whose title or slug contains query,
// case-insensitive. Title-prefix matches rank first, then titles
// alphabetically. A limit of zero or less means no cap.
func (s *Store) SearchWiki(query string, limit int) []Page {
	needle := strings.ToLower(strings.TrimSpace(query))

	var matches []Page
	for _, page := range s.pages {
		title := strings.ToLower(page.Title)
		slug := strings.ToLower(page.Slug)
		if strings.Contains(title, needle) || strings.Contains(slug, needle) {
			matches = append(matches, page)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		a := strings.ToLower(matches[i].Title)
		b := strings.ToLower(matches[j].Title)
		aPrefix := strings.HasPrefix(a, needle)
		bPrefix := strings.HasPrefix(b, needle)
		if aPrefix != bPrefix {
			return aPrefix
		}
		return a < b
	})

	return clamp(matches, limit)
}

// PageURL expands the configured URL pattern for a page. The pattern uses
// single-brace placeholders; {slug} is the only variable.
func (s *Store) PageURL(p Page) string {
	return fasttemplate.ExecuteStringStd(s.baseURL, "{", "}", map[string]any{
		"slug": p.Slug,
	})
}

func clamp[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
