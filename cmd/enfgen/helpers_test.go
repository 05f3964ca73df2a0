package main

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

// captureOutput captures stdout while running a function.
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	os.Stdout = w
	fnErr := fn()
	w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	return buf.String(), fnErr
}

// assertContains checks that output contains all expected strings.
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}

// resetProjectFlags restores the project command globals between tests.
func resetProjectFlags() {
	projectTitle = ""
	projectGUID = ""
	projectDeps = nil
	projectConfigurations = nil
	projectInteractive = false
	projectOutput = ""
}

// resetConfigFlags restores the config command globals between tests.
func resetConfigFlags() {
	configInstance = ""
	configProperties = nil
	configValues = nil
	configOutput = ""
}
