package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-enfgen/pkg/guid"
)

var guidCount int

func init() {
	cmd := newGUIDCmd()
	cmd.Flags().IntVarP(&guidCount, "count", "n", 1, "How many GUIDs to generate")
	rootCmd.AddCommand(cmd)
}

func newGUIDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guid",
		Short: "Generate engine compatible GUIDs",
		Long: `The guid command prints freshly generated GUIDs, 16 uppercase hex
characters each, one per line.

Example:
  enfgen guid
  enfgen guid -n 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUID()
		},
	}
}

func runGUID() error {
	if guidCount < 1 {
		return fmt.Errorf("count must be at least 1")
	}
	for i := 0; i < guidCount; i++ {
		id, err := guid.New()
		if err != nil {
			return err
		}
		fmt.Println(id)
	}
	return nil
}
