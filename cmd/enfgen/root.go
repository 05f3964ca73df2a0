package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "enfgen",
	Short: "Generate Enfusion engine text artifacts",
	Long: `enfgen generates the text artifacts used by Enfusion engine mods:
.gproj project definitions, .conf class definitions, localization
stringtables, and engine compatible GUIDs. It also searches the bundled
class reference and modding wiki tables, and can serve all generators as
MCP tools over stdio.`,
	Version: version,
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// writeDocument sends a generated document to the output file, or stdout
// when no file was requested. Confirmation goes to stderr so piped
// output holds nothing but the document.
func writeDocument(path, doc string) error {
	if path == "" {
		_, err := fmt.Print(doc)
		return err
	}
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Fprintf(os.Stderr, "written to %s\n", path)
	return nil
}
