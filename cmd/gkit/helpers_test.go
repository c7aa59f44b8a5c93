package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"
)

// captureOutput captures stdout while running a function
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

// withStdin feeds input to commands that read stdin for the rest of the test.
func withStdin(t *testing.T, input string) {
	t.Helper()
	prev := stdin
	stdin = strings.NewReader(input)
	t.Cleanup(func() { stdin = prev })
}

// decodeJSON unmarshals command output into v
func decodeJSON(t *testing.T, output string, v any) {
	t.Helper()
	if err := json.Unmarshal([]byte(output), v); err != nil {
		t.Fatalf("invalid JSON output: %v\nOutput: %s", err, output)
	}
}

// resetFlags restores every command flag to its default
func resetFlags() {
	verbose, quiet, jsonOut = false, false, false
	logLevel, logFormat = "", "text"
	writeConsistent, writeDurable, writeOnlyExisting = true, false, true
	writeMode, writeDryRun = "0666", false
	mktempDir = false
	mkdirMode = "0755"
	sortReverse, sortKeyField, sortOutput = false, 0, ""
	searchSort, searchKeyField = false, 0
	stdin = io.Reader(os.Stdin)
}
