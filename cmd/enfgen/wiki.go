package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-enfgen/pkg/index"
)

var (
	wikiLimit int
	wikiJSON  bool
)

func init() {
	cmd := newWikiCmd()
	cmd.Flags().IntVar(&wikiLimit, "limit", 5, "Maximum number of results")
	cmd.Flags().BoolVar(&wikiJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(cmd)
}

func newWikiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wiki <query>",
		Short: "Search the modding wiki page table",
		Long: `The wiki command searches the bundled modding wiki table and prints
page titles with their links.

Example:
  enfgen wiki weapon
  enfgen wiki localization --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWiki(args)
		},
	}
}

func runWiki(args []string) error {
	store := index.Load()
	matches := store.SearchWiki(args[0], wikiLimit)
	if len(matches) == 0 {
		fmt.Printf("no wiki pages match %q\n", args[0])
		return nil
	}

	if wikiJSON {
		type page struct {
			Title    string `json:"title"`
			Category string `json:"category,omitempty"`
			URL      string `json:"url"`
		}
		pages := make([]page, 0, len(matches))
		for _, p := range matches {
			pages = append(pages, page{Title: p.Title, Category: p.Category, URL: store.PageURL(p)})
		}
		payload, err := json.MarshalIndent(pages, "", "  ")
		if err != nil {
			return fmt.Errorf("encode pages: %w", err)
		}
		fmt.Println(string(payload))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, p := range matches {
		fmt.Fprintf(w, "%s\t%s\n", p.Title, store.PageURL(p))
	}
	return w.Flush()
}
