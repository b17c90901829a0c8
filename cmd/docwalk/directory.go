// cmd/docwalk/directory.go
package main

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	gitignorelib "github.com/sabhiram/go-gitignore"
)

// DirHandle points at an immediate child directory. The walker recurses
// through these instead of re-listing the parent.
type DirHandle struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// LanguageCount is one histogram entry.
type LanguageCount struct {
	Language string `json:"language"`
	Count    int    `json:"count"`
}

// DirectoryStats aggregates what one directory contains.
type DirectoryStats struct {
	TotalFiles int             `json:"total_files"`
	TotalDirs  int             `json:"total_dirs"`
	Languages  []LanguageCount `json:"languages"`
}

// DirectorySnapshot describes one directory's immediate children. It embeds
// no recursion; descending is the walker's job.
type DirectorySnapshot struct {
	Name  string         `json:"name"`
	Path  string         `json:"path"`
	Dirs  []DirHandle    `json:"directories"`
	Files []FileRecord   `json:"files"`
	Stats DirectoryStats `json:"stats"`
}

// DirectoryAnalyzer lists a directory, runs the file analyzer on each kept
// entry, and aggregates the results into a snapshot.
type DirectoryAnalyzer struct {
	root     string
	files    *FileAnalyzer
	excludes []string
	ignore   gitignorelib.IgnoreParser
}

// NewDirectoryAnalyzer wires a directory analyzer for one analysis root.
// Exclude patterns are globs matched against both entry names and
// root-relative paths. When useGitignore is set, rules from the root's
// .gitignore are applied on top.
func NewDirectoryAnalyzer(root string, files *FileAnalyzer, excludes []string, useGitignore bool) *DirectoryAnalyzer {
	da := &DirectoryAnalyzer{root: root, files: files, excludes: excludes}
	if useGitignore {
		da.ignore = compileRootGitignore(root)
	}
	return da
}

// compileRootGitignore loads .gitignore from the analysis root. Absence is
// normal; a present but unreadable file only disables the rules.
func compileRootGitignore(root string) gitignorelib.IgnoreParser {
	path := filepath.Join(root, ".gitignore")
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("Cannot stat .gitignore file, ignore rules disabled.", "path", path, "error", err)
		}
		return nil
	}
	matcher, err := gitignorelib.CompileIgnoreFile(path)
	if err != nil {
		slog.Warn("Failed to compile .gitignore file, ignore rules disabled.", "path", path, "error", err)
		return nil
	}
	slog.Debug("Compiled gitignore rules.", "path", path)
	return matcher
}

// Analyze enumerates dir's immediate entries and returns a snapshot. A
// listing failure returns an error instead; per-file failures do not, they
// become Error records inside the snapshot.
func (d *DirectoryAnalyzer) Analyze(dir string) (*DirectorySnapshot, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot list directory %s: %w", dir, err)
	}

	rel, err := filepath.Rel(d.root, dir)
	if err != nil {
		rel = dir
	}
	rel = filepath.ToSlash(rel)

	snap := &DirectorySnapshot{
		Name: filepath.Base(dir),
		Path: rel,
	}

	langCounts := make(map[string]int)
	var langOrder []string

	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if d.skipped(rel, name) {
			continue
		}

		full := filepath.Join(dir, name)
		isDir := entry.IsDir()
		if entry.Type()&fs.ModeSymlink != 0 {
			target, statErr := os.Stat(full)
			if statErr == nil && target.IsDir() {
				slog.Debug("Not following directory symlink.", "path", full)
				continue
			}
		}

		if isDir {
			snap.Dirs = append(snap.Dirs, DirHandle{Name: name, Path: full})
			continue
		}

		record := d.files.Analyze(full)
		if record.Kind == RecordError {
			slog.Warn("File analysis failed.", "file", full, "error", record.Err)
		}
		lang := record.Language
		if lang == "" {
			lang = unknownLanguage
		}
		if _, seen := langCounts[lang]; !seen {
			langOrder = append(langOrder, lang)
		}
		langCounts[lang]++
		snap.Files = append(snap.Files, record)
	}

	sort.SliceStable(snap.Dirs, func(i, j int) bool {
		return strings.ToLower(snap.Dirs[i].Name) < strings.ToLower(snap.Dirs[j].Name)
	})
	sort.SliceStable(snap.Files, func(i, j int) bool {
		return strings.ToLower(snap.Files[i].Name) < strings.ToLower(snap.Files[j].Name)
	})

	snap.Stats = DirectoryStats{
		TotalFiles: len(snap.Files),
		TotalDirs:  len(snap.Dirs),
		Languages:  rankLanguages(langCounts, langOrder),
	}
	return snap, nil
}

// skipped applies exclude globs and gitignore rules to one entry. Globs are
// tried against the bare name first, then the root-relative path.
func (d *DirectoryAnalyzer) skipped(rel, name string) bool {
	entryRel := name
	if rel != "." && rel != "" {
		entryRel = rel + "/" + name
	}

	if match, pattern := matchesGlob(name, d.excludes); match {
		slog.Debug("Excluding entry.", "path", entryRel, "reason", "name match", "pattern", pattern)
		return true
	}
	if match, pattern := matchesGlob(entryRel, d.excludes); match {
		slog.Debug("Excluding entry.", "path", entryRel, "reason", "path match", "pattern", pattern)
		return true
	}
	if d.ignore != nil && d.ignore.MatchesPath(entryRel) {
		slog.Debug("Excluding entry.", "path", entryRel, "reason", "gitignore rule")
		return true
	}
	return false
}

// rankLanguages orders a histogram by descending count. Ties keep the order
// languages were first seen during enumeration.
func rankLanguages(counts map[string]int, order []string) []LanguageCount {
	ranked := make([]LanguageCount, 0, len(order))
	for _, lang := range order {
		ranked = append(ranked, LanguageCount{Language: lang, Count: counts[lang]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	return ranked
}
