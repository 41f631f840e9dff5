package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	petstore31JSONPath = "../../testdata/petstore-3.1.json"
	petstore31YAMLPath = "../../testdata/petstore-3.1.yaml"
	petstore20YAMLPath = "../../testdata/petstore-2.0.yaml"
)

func TestSetupFlagsDefaults(t *testing.T) {
	fs, flags := setupFlags()
	require.NoError(t, fs.Parse([]string{"openapi.json"}))

	assert.Empty(t, flags.outputFile)
	assert.Empty(t, flags.format)
	assert.False(t, flags.write)
	assert.False(t, flags.strict)
	assert.False(t, flags.noInfo)
	assert.False(t, flags.quiet)
	assert.False(t, flags.verbose)
	assert.Equal(t, []string{"openapi.json"}, fs.Args())
}

func TestSetupFlagsLongAndShortNames(t *testing.T) {
	fs, flags := setupFlags()
	require.NoError(t, fs.Parse([]string{"-o", "out.json", "--format", "yaml", "-q", "openapi.json"}))

	assert.Equal(t, "out.json", flags.outputFile)
	assert.Equal(t, "yaml", flags.format)
	assert.True(t, flags.quiet)
}

func TestRunStdout(t *testing.T) {
	var stdout bytes.Buffer
	err := run([]string{"-q", petstore31JSONPath}, strings.NewReader(""), &stdout)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &doc))
	assert.Equal(t, "3.0.3", doc["openapi"])
}

func TestRunOutputFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "out.json")

	var stdout bytes.Buffer
	err := run([]string{"-q", "-o", outPath, petstore31YAMLPath}, strings.NewReader(""), &stdout)
	require.NoError(t, err)
	assert.Empty(t, stdout.Bytes(), "document must not also go to stdout")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "3.0.3", doc["openapi"])
}

func TestRunWriteDerivedName(t *testing.T) {
	// Resolve the fixture before changing the working directory
	specPath := fixtureAbs(t, petstore31YAMLPath)
	chdir(t, t.TempDir())

	var stdout bytes.Buffer
	err := run([]string{"-q", "-w", "-f", "yaml", specPath}, strings.NewReader(""), &stdout)
	require.NoError(t, err)

	_, err = os.Stat("petstore-3.1.3.0.3.yaml")
	require.NoError(t, err)
}

// chdir is the equivalent of t.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

// fixtureAbs resolves a fixture path relative to this test file's package dir,
// for tests that change the working directory.
func fixtureAbs(t *testing.T, rel string) string {
	t.Helper()
	abs, err := filepath.Abs(rel)
	require.NoError(t, err)
	return abs
}

func TestRunStdin(t *testing.T) {
	input := `{"openapi": "3.1.0", "info": {"title": "t"}, "components": {"schemas": {"S": {"const": "x"}}}}`

	var stdout bytes.Buffer
	err := run([]string{"-q", "-"}, strings.NewReader(input), &stdout)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &doc))
	assert.Equal(t, "3.0.3", doc["openapi"])

	schema := doc["components"].(map[string]any)["schemas"].(map[string]any)["S"].(map[string]any)
	assert.Equal(t, []any{"x"}, schema["enum"])
}

func TestRunRedocOutput(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "docs.html")

	var stdout bytes.Buffer
	err := run([]string{"-q", "-f", "redoc", "-o", outPath, petstore31JSONPath}, strings.NewReader(""), &stdout)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Redoc.init(spec")
	assert.Contains(t, string(data), `"openapi":"3.0.3"`)
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{name: "no arguments", args: []string{}, wantMsg: "exactly one file path"},
		{name: "too many arguments", args: []string{"a.json", "b.json"}, wantMsg: "exactly one file path"},
		{name: "invalid format", args: []string{"-f", "xml", "a.json"}, wantMsg: "invalid format"},
		{name: "missing file", args: []string{"-q", "does-not-exist.yaml"}, wantMsg: "downgrading file"},
		{name: "oas2 source", args: []string{"-q", petstore20YAMLPath}, wantMsg: "critical issue"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout bytes.Buffer
			err := run(tt.args, strings.NewReader(""), &stdout)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Empty(t, stdout.Bytes(), "no partial output on failure")
		})
	}
}

func TestRunStrictModeOnNon31Source(t *testing.T) {
	input := `{"openapi": "3.0.3", "info": {"title": "t"}}`

	var stdout bytes.Buffer
	err := run([]string{"-q", "--strict", "-"}, strings.NewReader(input), &stdout)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "strict mode")
}
