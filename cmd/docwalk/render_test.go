// cmd/docwalk/render_test.go
package main

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFixedRenderer() *Renderer {
	r := NewRenderer()
	r.Clock = func() time.Time {
		return time.Date(2024, 5, 17, 10, 30, 0, 0, time.UTC)
	}
	return r
}

// assertOrdered checks that every part appears in doc, in the given order.
func assertOrdered(t *testing.T, doc string, parts ...string) {
	t.Helper()
	last := -1
	for _, part := range parts {
		idx := strings.Index(doc, part)
		require.GreaterOrEqual(t, idx, 0, "missing %q in document:\n%s", part, doc)
		assert.Greater(t, idx, last, "%q appears out of order", part)
		last = idx
	}
}

func TestRenderDocumentStructure(t *testing.T) {
	snap := &DirectorySnapshot{
		Name: "tools",
		Path: "tools",
		Dirs: []DirHandle{
			{Name: "fixtures", Path: "/x/fixtures"},
			{Name: "scripts", Path: "/x/scripts"},
		},
		Files: []FileRecord{
			{Name: "blob.bin", Kind: RecordBinary, Language: "binary", Size: 9},
			{Name: "broken.py", Kind: RecordError, Err: "stat failed"},
			{
				Name: "parse.py", Kind: RecordSource, Language: "python",
				Lines: 40, Description: "Parses raw export bundles.",
				Functions: []string{"parse", "load"},
				Classes:   []string{"Bundle"},
				Imports:   []string{"os", "json"},
			},
		},
		Stats: DirectoryStats{
			TotalFiles: 3,
			TotalDirs:  2,
			Languages: []LanguageCount{
				{Language: "python", Count: 1},
				{Language: "binary", Count: 1},
				{Language: "unknown", Count: 1},
			},
		},
	}

	doc := newFixedRenderer().Render(snap)

	assertOrdered(t, doc,
		"# tools",
		"## Overview",
		"This directory contains 3 files and 2 subdirectories.",
		"**Path:** `tools`",
		"**Generated:** 2024-05-17 10:30:00",
		"**Main languages:**",
		"- python: 1 files",
		"## Contents",
		"### Subdirectories",
		"- **fixtures/**",
		"- **scripts/**",
		"### File summaries",
		"#### Source files",
		"##### parse.py",
		"**Language:** python",
		"**Lines:** 40",
		"**Description:** Parses raw export bundles.",
		"**Functions:** `parse`, `load`",
		"**Classes:** `Bundle`",
		"**Imports:** `os`, `json`",
		"#### Other files",
		"- **blob.bin** (binary)",
		"- **broken.py** (error)",
		"---",
		documentFooter,
	)

	// Other files carry the type tag only, never the underlying detail.
	assert.NotContains(t, doc, "stat failed")
}

func TestRenderTopLanguagesCap(t *testing.T) {
	langs := make([]LanguageCount, 0, 7)
	for i := 1; i <= 7; i++ {
		langs = append(langs, LanguageCount{Language: fmt.Sprintf("l%d", i), Count: 8 - i})
	}
	snap := &DirectorySnapshot{
		Name:  "root",
		Path:  ".",
		Stats: DirectoryStats{TotalFiles: 28, Languages: langs},
	}

	doc := newFixedRenderer().Render(snap)

	assert.Contains(t, doc, "- l5: 3 files")
	assert.NotContains(t, doc, "- l6:")
	assert.NotContains(t, doc, "- l7:")
}

func TestRenderListLimits(t *testing.T) {
	var funcs, classes, imports []string
	for i := 1; i <= 8; i++ {
		funcs = append(funcs, fmt.Sprintf("f%d", i))
	}
	for i := 1; i <= 7; i++ {
		classes = append(classes, fmt.Sprintf("c%d", i))
	}
	for i := 1; i <= 5; i++ {
		imports = append(imports, fmt.Sprintf("i%d", i))
	}
	snap := &DirectorySnapshot{
		Name: "pkg",
		Path: "pkg",
		Files: []FileRecord{{
			Name: "big.py", Kind: RecordSource, Language: "python",
			Lines: 100, Description: "python source file",
			Functions: funcs, Classes: classes, Imports: imports,
		}},
		Stats: DirectoryStats{TotalFiles: 1, Languages: []LanguageCount{{Language: "python", Count: 1}}},
	}

	doc := newFixedRenderer().Render(snap)

	assert.Contains(t, doc, "**Functions:** `f1`, `f2`, `f3`, `f4`, `f5`")
	assert.NotContains(t, doc, "f6")
	assert.Contains(t, doc, "**Classes:** `c1`, `c2`, `c3`, `c4`, `c5`")
	assert.NotContains(t, doc, "c6")
	assert.Contains(t, doc, "**Imports:** `i1`, `i2`, `i3`")
	assert.NotContains(t, doc, "i4")
}

func TestRenderOmitsEmptySections(t *testing.T) {
	snap := &DirectorySnapshot{Name: "empty", Path: "empty"}

	doc := newFixedRenderer().Render(snap)

	assert.Contains(t, doc, "# empty")
	assert.Contains(t, doc, "This directory contains 0 files and 0 subdirectories.")
	assert.NotContains(t, doc, "### Subdirectories")
	assert.NotContains(t, doc, "### File summaries")
	assert.Contains(t, doc, documentFooter)
}

func TestRenderSourceFileWithoutExtraction(t *testing.T) {
	snap := &DirectorySnapshot{
		Name: "docs",
		Path: "docs",
		Files: []FileRecord{{
			Name: "guide.md", Kind: RecordSource, Language: "markdown",
			Lines: 12, Description: "markdown source file",
		}},
		Stats: DirectoryStats{TotalFiles: 1, Languages: []LanguageCount{{Language: "markdown", Count: 1}}},
	}

	doc := newFixedRenderer().Render(snap)

	assert.Contains(t, doc, "##### guide.md")
	assert.Contains(t, doc, "**Language:** markdown")
	assert.NotContains(t, doc, "**Functions:**")
	assert.NotContains(t, doc, "**Classes:**")
	assert.NotContains(t, doc, "**Imports:**")
}

func TestRenderErrorDocument(t *testing.T) {
	doc := newFixedRenderer().RenderError(errors.New("permission denied"))

	assert.Contains(t, doc, "# Error")
	assert.Contains(t, doc, "This directory could not be analyzed: permission denied")
	assert.NotContains(t, doc, "## Overview")
}

func TestBacktickList(t *testing.T) {
	assert.Equal(t, "`a`, `b`, `c`", backtickList([]string{"a", "b", "c", "d"}, 3))
	assert.Equal(t, "`solo`", backtickList([]string{"solo"}, 5))
}
