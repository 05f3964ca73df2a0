package index

// Class describes one entry in the static class table.
type Class struct {
	Name        string `json:"name"`
	Base        string `json:"base,omitempty"`
	Module      string `json:"module,omitempty"`
	Description string `json:"description,omitempty"`
}

// Page describes one entry in the static wiki table.
type Page struct {
	Title    string `json:"title"`
	Slug     string `json:"slug"`
	Category string `json:"category,omitempty"`
}

// wikiDocument is the on-disk shape of the wiki table. BaseURL is a URL
// pattern; the {slug} placeholder is expanded per page.
type wikiDocument struct {
	BaseURL string `json:"baseURL"`
	Pages   []Page `json:"pages"`
}
