// cmd/docwalk/helpers_test.go
package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTern(t *testing.T) {
	assert.Equal(t, "a", tern(true, "a", "b"))
	assert.Equal(t, "b", tern(false, "a", "b"))
	assert.Equal(t, 2, tern(false, 1, 2))
}

func TestMapsKeys(t *testing.T) {
	m := map[string]int{"zeta": 1, "alpha": 2, "mid": 3}
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, mapsKeys(m))
	assert.Empty(t, mapsKeys(map[string]int{}))
}

func TestFormatBytes(t *testing.T) {
	testCases := []struct {
		name     string
		input    int64
		expected string
	}{
		{name: "Zero", input: 0, expected: "0 B"},
		{name: "Below one KiB", input: 512, expected: "512 B"},
		{name: "Exactly one KiB", input: 1024, expected: "1 KiB"},
		{name: "Fractional KiB", input: 1536, expected: "1.5 KiB"},
		{name: "Exactly one MiB", input: 1024 * 1024, expected: "1 MiB"},
		{name: "Fractional MiB", input: 2560 * 1024, expected: "2.5 MiB"},
		{name: "Whole GiB", input: 10 * 1024 * 1024 * 1024, expected: "10 GiB"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, formatBytes(tc.input))
		})
	}
}

func TestGlobToRegex(t *testing.T) {
	testCases := []struct {
		name     string
		glob     string
		expected string
	}{
		{name: "Star", glob: "*.txt", expected: `^.*\.txt$`},
		{name: "Question mark", glob: "a?c", expected: "^a.c$"},
		{name: "Metacharacters escaped", glob: "a[1]+(x)", expected: `^a\[1\]\+\(x\)$`},
		{name: "Plain name", glob: "build", expected: "^build$"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, globToRegex(tc.glob))
		})
	}
}

func TestMatchesGlob(t *testing.T) {
	patterns := []string{"*.log", "build", "data/*"}

	match, pattern := matchesGlob("app.log", patterns)
	assert.True(t, match)
	assert.Equal(t, "*.log", pattern)

	match, pattern = matchesGlob("build", patterns)
	assert.True(t, match)
	assert.Equal(t, "build", pattern)

	// Star crosses path separators, so nested paths match too.
	match, _ = matchesGlob("data/sub/model.bin", patterns)
	assert.True(t, match)

	match, _ = matchesGlob("app.log.txt", patterns)
	assert.False(t, match)

	match, _ = matchesGlob("builder", patterns)
	assert.False(t, match)

	match, pattern = matchesGlob("anything", nil)
	assert.False(t, match)
	assert.Equal(t, "", pattern)

	match, _ = matchesGlob("anything", []string{""})
	assert.False(t, match)
}
