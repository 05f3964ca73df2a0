package wizard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-enfgen/pkg/gen"
	"github.com/goliatone/go-enfgen/pkg/guid"
)

// knownConfigurations are the configuration names offered during setup.
// PC and HEADLESS are preselected to match the generator defaults.
var knownConfigurations = []string{"PC", "HEADLESS", "LINUX"}

// RunProject walks the user through assembling a project definition. The
// returned project has not been generated yet; callers hand it to
// gen.GenerateProject.
func RunProject(ctx context.Context, driver PromptDriver) (gen.Project, error) {
	var p gen.Project

	name, err := driver.Input(ctx, InputConfig{
		Message:   "Project name",
		Help:      "Identifier written to the ID property, for example MyAddon.",
		Validator: requireValue("a project name is required"),
	})
	if err != nil {
		return gen.Project{}, err
	}
	p.Name = strings.TrimSpace(name)

	title, err := driver.Input(ctx, InputConfig{
		Message: "Title",
		Default: p.Name,
		Help:    "Human readable title shown in the workbench.",
	})
	if err != nil {
		return gen.Project{}, err
	}
	p.Title = strings.TrimSpace(title)

	id, err := driver.Input(ctx, InputConfig{
		Message:   "Project GUID",
		Help:      "Leave empty to generate a fresh GUID.",
		Validator: optionalGUID,
	})
	if err != nil {
		return gen.Project{}, err
	}
	p.GUID = strings.TrimSpace(id)

	for {
		more, err := driver.Confirm(ctx, ConfirmConfig{
			Message: "Add an extra dependency GUID?",
			Help:    "The base game dependency is always included.",
		})
		if err != nil {
			return gen.Project{}, err
		}
		if !more {
			break
		}

		dep, err := driver.Input(ctx, InputConfig{
			Message:   "Dependency GUID",
			Validator: requireGUID,
		})
		if err != nil {
			return gen.Project{}, err
		}
		p.Dependencies = append(p.Dependencies, strings.TrimSpace(dep))
	}

	selected, err := driver.MultiSelect(ctx, SelectConfig{
		Message:  "Configurations",
		Options:  knownConfigurations,
		Defaults: []int{0, 1},
		Help:     "Configuration blocks emitted under Configurations.",
	})
	if err != nil {
		return gen.Project{}, err
	}
	for _, idx := range selected {
		if idx >= 0 && idx < len(knownConfigurations) {
			p.Configurations = append(p.Configurations, knownConfigurations[idx])
		}
	}

	summary := fmt.Sprintf("Generating %s with %d extra dependencies.", p.Name, len(p.Dependencies))
	if err := driver.Info(ctx, summary); err != nil {
		return gen.Project{}, err
	}
	return p, nil
}

func requireValue(msg string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(msg)
		}
		return nil
	}
}

func requireGUID(s string) error {
	if !guid.Valid(strings.TrimSpace(s)) {
		return errors.New("expected 16 uppercase hex characters")
	}
	return nil
}

func optionalGUID(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return requireGUID(s)
}
