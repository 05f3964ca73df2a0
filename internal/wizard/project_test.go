package wizard_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/goliatone/go-enfgen/internal/wizard"
	"github.com/goliatone/go-enfgen/pkg/gen"
)

// scriptDriver replays queued answers and runs the same validators the
// terminal driver would.
type scriptDriver struct {
	inputs   []string
	confirms []bool
	selects  [][]int
	fail     error

	infos []string
}

func (d *scriptDriver) Input(_ context.Context, cfg wizard.InputConfig) (string, error) {
	if d.fail != nil {
		return "", d.fail
	}
	if len(d.inputs) == 0 {
		return "", fmt.Errorf("unexpected input prompt %q", cfg.Message)
	}
	out := d.inputs[0]
	d.inputs = d.inputs[1:]
	if cfg.Validator != nil {
		if err := cfg.Validator(out); err != nil {
			return "", err
		}
	}
	if out == "" {
		return cfg.Default, nil
	}
	return out, nil
}

func (d *scriptDriver) Confirm(_ context.Context, cfg wizard.ConfirmConfig) (bool, error) {
	if d.fail != nil {
		return false, d.fail
	}
	if len(d.confirms) == 0 {
		return false, fmt.Errorf("unexpected confirm prompt %q", cfg.Message)
	}
	out := d.confirms[0]
	d.confirms = d.confirms[1:]
	return out, nil
}

func (d *scriptDriver) MultiSelect(_ context.Context, cfg wizard.SelectConfig) ([]int, error) {
	if d.fail != nil {
		return nil, d.fail
	}
	if len(d.selects) == 0 {
		return nil, fmt.Errorf("unexpected select prompt %q", cfg.Message)
	}
	out := d.selects[0]
	d.selects = d.selects[1:]
	return out, nil
}

func (d *scriptDriver) Info(_ context.Context, msg string) error {
	d.infos = append(d.infos, msg)
	return nil
}

func TestRunProjectCollectsAnswers(t *testing.T) {
	driver := &scriptDriver{
		inputs:   []string{"MyAddon", "My Addon", "6156F2F771D5D73D", "BBBBBBBBBBBBBBBB"},
		confirms: []bool{true, false},
		selects:  [][]int{{0, 1}},
	}

	p, err := wizard.RunProject(context.Background(), driver)
	if err != nil {
		t.Fatalf("run project: %v", err)
	}

	want := gen.Project{
		Name:           "MyAddon",
		Title:          "My Addon",
		GUID:           "6156F2F771D5D73D",
		Dependencies:   []string{"BBBBBBBBBBBBBBBB"},
		Configurations: []string{"PC", "HEADLESS"},
	}
	if p.Name != want.Name || p.Title != want.Title || p.GUID != want.GUID {
		t.Fatalf("project = %+v, want %+v", p, want)
	}
	if len(p.Dependencies) != 1 || p.Dependencies[0] != "BBBBBBBBBBBBBBBB" {
		t.Fatalf("dependencies = %v", p.Dependencies)
	}
	if len(p.Configurations) != 2 || p.Configurations[0] != "PC" || p.Configurations[1] != "HEADLESS" {
		t.Fatalf("configurations = %v", p.Configurations)
	}
	if len(driver.infos) != 1 {
		t.Fatalf("expected one summary message, got %v", driver.infos)
	}
}

func TestRunProjectDefaultsTitleToName(t *testing.T) {
	driver := &scriptDriver{
		inputs:   []string{"MyAddon", "", ""},
		confirms: []bool{false},
		selects:  [][]int{{0, 1}},
	}

	p, err := wizard.RunProject(context.Background(), driver)
	if err != nil {
		t.Fatalf("run project: %v", err)
	}
	if p.Title != "MyAddon" {
		t.Fatalf("title = %q, want %q", p.Title, "MyAddon")
	}
	if p.GUID != "" {
		t.Fatalf("guid = %q, want empty", p.GUID)
	}
}

func TestRunProjectRejectsEmptyName(t *testing.T) {
	driver := &scriptDriver{inputs: []string{"   "}}

	if _, err := wizard.RunProject(context.Background(), driver); err == nil {
		t.Fatal("expected a validation error")
	}
}

func TestRunProjectRejectsBadDependency(t *testing.T) {
	driver := &scriptDriver{
		inputs:   []string{"MyAddon", "", "", "nope"},
		confirms: []bool{true},
	}

	if _, err := wizard.RunProject(context.Background(), driver); err == nil {
		t.Fatal("expected a validation error")
	}
}

func TestRunProjectPropagatesAbort(t *testing.T) {
	driver := &scriptDriver{fail: wizard.ErrAborted}

	_, err := wizard.RunProject(context.Background(), driver)
	if !errors.Is(err, wizard.ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}
