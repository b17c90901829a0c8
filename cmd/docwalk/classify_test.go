// cmd/docwalk/classify_test.go
package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyKnownSuffixes(t *testing.T) {
	c := NewClassifier(nil)

	testCases := []struct {
		name     string
		expected string
	}{
		{name: "main.py", expected: "python"},
		{name: "app.js", expected: "javascript"},
		{name: "app.ts", expected: "typescript"},
		{name: "view.jsx", expected: "react"},
		{name: "view.tsx", expected: "react"},
		{name: "Main.java", expected: "java"},
		{name: "run.sh", expected: "shell"},
		{name: "run.bash", expected: "shell"},
		{name: "data.yml", expected: "yaml"},
		{name: "data.yaml", expected: "yaml"},
		{name: "notes.md", expected: "markdown"},
		{name: "base.dockerfile", expected: "docker"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, c.Classify(tc.name))
		})
	}

	// Every table entry must resolve through Classify.
	for suffix, lang := range languageTable {
		assert.Equal(t, lang, c.Classify("sample"+suffix), "suffix %s", suffix)
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	c := NewClassifier(nil)
	assert.Equal(t, "python", c.Classify("MAIN.PY"))
	assert.Equal(t, "markdown", c.Classify("Readme.MD"))
}

func TestClassifyUnknown(t *testing.T) {
	c := NewClassifier(nil)
	assert.Equal(t, "unknown", c.Classify("archive.xyz"))
	assert.Equal(t, "unknown", c.Classify("Makefile"))
	assert.Equal(t, "unknown", c.Classify("noext"))
}

func TestClassifyOverrides(t *testing.T) {
	c := NewClassifier(map[string]string{".zig": "zig", ".py": "python3"})

	assert.Equal(t, "zig", c.Classify("build.zig"))
	// An override replaces the built-in mapping for the same suffix.
	assert.Equal(t, "python3", c.Classify("main.py"))
	// Unrelated built-ins are untouched.
	assert.Equal(t, "go", c.Classify("main.go"))
}

func TestLoadLanguageOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "languages.yaml")
	content := `zig:
  extensions: [".zig"]
gleam:
  extensions: ["gleam", " .GLM "]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	overrides, err := loadLanguageOverrides(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		".zig":   "zig",
		".gleam": "gleam",
		".glm":   "gleam",
	}, overrides)
}

func TestLoadLanguageOverridesConflict(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "languages.yaml")
	content := `beta:
  extensions: [".x"]
alpha:
  extensions: [".x"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	overrides, err := loadLanguageOverrides(path)
	require.NoError(t, err)
	// Conflicting claims resolve to the alphabetically first language.
	assert.Equal(t, map[string]string{".x": "alpha"}, overrides)
}

func TestLoadLanguageOverridesMissingFile(t *testing.T) {
	_, err := loadLanguageOverrides(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadLanguageOverridesInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("zig: [unbalanced"), 0644))

	_, err := loadLanguageOverrides(path)
	assert.Error(t, err)
}
