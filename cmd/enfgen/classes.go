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
	classesLimit int
	classesJSON  bool
)

func init() {
	cmd := newClassesCmd()
	cmd.Flags().IntVar(&classesLimit, "limit", 10, "Maximum number of results")
	cmd.Flags().BoolVar(&classesJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(cmd)
}

func newClassesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classes <query>",
		Short: "Search the Enfusion class reference",
		Long: `The classes command searches the bundled class reference by name
fragment. Name prefix matches rank first.

Example:
  enfgen classes Weapon
  enfgen classes SCR_ --limit 20
  enfgen classes Character --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClasses(args)
		},
	}
}

func runClasses(args []string) error {
	store := index.Load()
	matches := store.SearchClasses(args[0], classesLimit)
	if len(matches) == 0 {
		fmt.Printf("no classes match %q\n", args[0])
		return nil
	}

	if classesJSON {
		payload, err := json.MarshalIndent(matches, "", "  ")
		if err != nil {
			return fmt.Errorf("encode classes: %w", err)
		}
		fmt.Println(string(payload))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, c := range matches {
		fmt.Fprintf(w, "%s\t%s\t%s\n", c.Name, c.Base, c.Description)
	}
	return w.Flush()
}
