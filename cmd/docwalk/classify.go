// cmd/docwalk/classify.go
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// unknownLanguage is the label for suffixes the table does not cover.
const unknownLanguage = "unknown"

// languageTable maps lowercased file suffixes to language labels. It covers
// common source, markup, data, and script extensions; anything else is
// classified as unknown.
var languageTable = map[string]string{
	".py":         "python",
	".js":         "javascript",
	".ts":         "typescript",
	".jsx":        "react",
	".tsx":        "react",
	".java":       "java",
	".cpp":        "cpp",
	".c":          "c",
	".cs":         "csharp",
	".go":         "go",
	".rs":         "rust",
	".php":        "php",
	".rb":         "ruby",
	".swift":      "swift",
	".kt":         "kotlin",
	".scala":      "scala",
	".html":       "html",
	".css":        "css",
	".scss":       "scss",
	".sass":       "sass",
	".sql":        "sql",
	".sh":         "shell",
	".bash":       "shell",
	".json":       "json",
	".yaml":       "yaml",
	".yml":        "yaml",
	".xml":        "xml",
	".md":         "markdown",
	".txt":        "text",
	".dockerfile": "docker",
}

// Classifier resolves file names to language labels. The table is fixed at
// construction; lookups are pure.
type Classifier struct {
	table map[string]string
}

// NewClassifier builds a classifier from the built-in table plus optional
// overrides. Override entries win over built-in ones for the same suffix.
func NewClassifier(overrides map[string]string) *Classifier {
	table := make(map[string]string, len(languageTable)+len(overrides))
	for suffix, lang := range languageTable {
		table[suffix] = lang
	}
	for suffix, lang := range overrides {
		table[suffix] = lang
	}
	return &Classifier{table: table}
}

// Classify returns the language label for a file name, based on its
// lowercased suffix.
func (c *Classifier) Classify(name string) string {
	suffix := strings.ToLower(filepath.Ext(name))
	if lang, ok := c.table[suffix]; ok {
		return lang
	}
	return unknownLanguage
}

// languageDefinition mirrors one entry of a language override file:
//
//	python:
//	  extensions: [".py", ".pyi"]
type languageDefinition struct {
	Extensions []string `yaml:"extensions"`
}

// loadLanguageOverrides reads a YAML language definition file and flattens it
// into a suffix→language map. Languages are applied in sorted name order, so
// when two languages claim the same suffix the alphabetically first one wins
// deterministically.
func loadLanguageOverrides(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read language definitions: %w", err)
	}

	var defs map[string]languageDefinition
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("cannot parse language definitions: %w", err)
	}

	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}
	sort.Strings(names)

	overrides := make(map[string]string)
	for _, name := range names {
		for _, ext := range defs[name].Extensions {
			cleaned := strings.ToLower(strings.TrimSpace(ext))
			if cleaned == "" {
				continue
			}
			if !strings.HasPrefix(cleaned, ".") {
				cleaned = "." + cleaned
			}
			if _, taken := overrides[cleaned]; !taken {
				overrides[cleaned] = name
			}
		}
	}
	return overrides, nil
}
