package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-enfgen/internal/wizard"
	"github.com/goliatone/go-enfgen/pkg/gen"
)

var (
	projectTitle          string
	projectGUID           string
	projectDeps           []string
	projectConfigurations []string
	projectInteractive    bool
	projectOutput         string
)

func init() {
	cmd := newProjectCmd()
	cmd.Flags().StringVar(&projectTitle, "title", "", "Human readable title (defaults to the name)")
	cmd.Flags().StringVar(&projectGUID, "guid", "", "Project GUID (generated when empty)")
	cmd.Flags().StringSliceVar(&projectDeps, "dependency", nil, "Extra dependency GUID, repeatable")
	cmd.Flags().StringSliceVar(&projectConfigurations, "configuration", nil, "Configuration name, repeatable (defaults to PC and HEADLESS)")
	cmd.Flags().BoolVarP(&projectInteractive, "interactive", "i", false, "Prompt for the project settings")
	cmd.Flags().StringVarP(&projectOutput, "output", "o", "", "Output file (stdout if empty)")
	rootCmd.AddCommand(cmd)
}

func newProjectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "project [name]",
		Short: "Generate a .gproj project definition",
		Long: `The project command generates a complete project definition. The base
game dependency and the PC and HEADLESS configurations are included
automatically.

Example:
  enfgen project MyAddon
  enfgen project MyAddon --title "My Addon" --guid 6156F2F771D5D73D
  enfgen project MyAddon --dependency BBBBBBBBBBBBBBBB -o MyAddon.gproj
  enfgen project --interactive`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProject(cmd.Context(), args)
		},
	}
}

func runProject(ctx context.Context, args []string) error {
	var p gen.Project

	if projectInteractive {
		var err error
		p, err = wizard.RunProject(ctx, wizard.NewSurveyDriver())
		if err != nil {
			return err
		}
	} else {
		if len(args) == 0 {
			return errors.New("a project name is required unless --interactive is set")
		}
		p = gen.Project{
			Name:           args[0],
			Title:          projectTitle,
			GUID:           projectGUID,
			Dependencies:   projectDeps,
			Configurations: projectConfigurations,
		}
	}

	doc, err := gen.GenerateProject(p)
	if err != nil {
		return fmt.Errorf("generate project: %w", err)
	}
	return writeDocument(projectOutput, doc)
}
