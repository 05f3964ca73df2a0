package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStringtableCommandYAML(t *testing.T) {
	stringtableOutput = ""
	path := writeTableFile(t, "table.yaml", `project: MyAddon
keys:
  - id: STR_myaddon_greeting
    original: Welcome to Everon
    translations:
      - language: French
        text: Bienvenue
`)

	output, err := captureOutput(t, func() error {
		return runStringtable([]string{path})
	})
	if err != nil {
		t.Fatalf("runStringtable() error = %v", err)
	}
	assertContains(t, output, []string{
		`<?xml version="1.0" encoding="utf-8" ?>`,
		`<Project name="MyAddon">`,
		`<Key ID="STR_myaddon_greeting">`,
		"<French>Bienvenue</French>",
	})
}

func TestStringtableCommandJSON(t *testing.T) {
	stringtableOutput = ""
	path := writeTableFile(t, "table.json", `{"project": "MyAddon", "keys": [{"id": "STR_a", "original": "A"}]}`)

	output, err := captureOutput(t, func() error {
		return runStringtable([]string{path})
	})
	if err != nil {
		t.Fatalf("runStringtable() error = %v", err)
	}
	assertContains(t, output, []string{`<Key ID="STR_a">`})
}

func TestStringtableCommandMissingFile(t *testing.T) {
	stringtableOutput = ""

	_, err := captureOutput(t, func() error {
		return runStringtable([]string{filepath.Join(t.TempDir(), "absent.yaml")})
	})
	if err == nil || !strings.Contains(err.Error(), "read table") {
		t.Fatalf("expected read error, got %v", err)
	}
}

func TestStringtableCommandUnknownLanguage(t *testing.T) {
	stringtableOutput = ""
	path := writeTableFile(t, "bad.yaml", `project: MyAddon
keys:
  - id: STR_a
    original: A
    translations:
      - language: Klingon
        text: nuqneH
`)

	_, err := captureOutput(t, func() error {
		return runStringtable([]string{path})
	})
	if err == nil || !strings.Contains(err.Error(), "unknown language") {
		t.Fatalf("expected unknown language error, got %v", err)
	}
}

func writeTableFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}
