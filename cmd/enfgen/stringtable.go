package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-enfgen/pkg/stringtable"
)

var stringtableOutput string

func init() {
	cmd := newStringtableCmd()
	cmd.Flags().StringVarP(&stringtableOutput, "output", "o", "", "Output file (stdout if empty)")
	rootCmd.AddCommand(cmd)
}

func newStringtableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stringtable <table-file>",
		Short: "Generate a localization stringtable XML document",
		Long: `The stringtable command renders a table description file (JSON or
YAML) into the engine's stringtable XML layout.

Example table file:
  project: MyAddon
  keys:
    - id: STR_myaddon_greeting
      original: Welcome to Everon
      translations:
        - language: French
          text: Bienvenue

Example:
  enfgen stringtable table.yaml -o Stringtable.xml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStringtable(args)
		},
	}
}

func runStringtable(args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read table: %w", err)
	}

	table, err := stringtable.Parse(data)
	if err != nil {
		return err
	}

	doc, err := stringtable.Generate(table)
	if err != nil {
		return err
	}
	return writeDocument(stringtableOutput, doc)
}
