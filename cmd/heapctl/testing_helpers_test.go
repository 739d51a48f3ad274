package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

const sampleScenario = `
arena_size: 1000
strategy: first_fit
steps:
  - {op: alloc, name: a, size: 100}
  - {op: alloc, name: b, size: 200}
  - {op: free, name: a}
  - {op: resize, name: b, size: 300, strategy: best_fit}
  - {op: free, name: a}
  - {op: alloc, name: big, size: 5000}
  - {op: check}
  - {op: free, name: missing}
`

// resetGlobals restores flag variables and the filesystem after a test.
func resetGlobals(t *testing.T) afero.Fs {
	t.Helper()

	origFs := appFs
	fs := afero.NewMemMapFs()
	appFs = fs

	t.Cleanup(func() {
		appFs = origFs
		verbose, quiet, jsonOut, noColor, logDir = false, false, false, false, ""
		demoSize = 1000
		runVisualize, runExport, runMetrics, runStrict = false, "", false, false
	})
	noColor = true
	return fs
}

// writeScenario stores content at path on fs.
func writeScenario(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	if err := afero.WriteFile(fs, path, []byte(content), 0o644); err != nil {
		t.Fatalf("write scenario: %v", err)
	}
}

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

// assertJSON checks that output is valid JSON
func assertJSON(t *testing.T, output string) {
	t.Helper()
	var result any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Errorf("invalid JSON output: %v\nOutput: %s", err, output)
	}
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}

// assertNotContains checks that output doesn't contain unwanted strings
func assertNotContains(t *testing.T, output string, unwanted []string) {
	t.Helper()
	for _, dont := range unwanted {
		if strings.Contains(output, dont) {
			t.Errorf("output contains unwanted string %q\nGot: %s", dont, output)
		}
	}
}
