// cmd/docwalk/walk.go
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// rootLabel is shown for the analysis root, whose relative path is empty.
const rootLabel = "(root)"

// Analyzer produces one directory's snapshot.
type Analyzer interface {
	Analyze(dir string) (*DirectorySnapshot, error)
}

// RunStats accumulates what one walk did. Failures drive the exit code.
type RunStats struct {
	Directories int
	Documents   int
	Backups     int
	Failures    int
	Bytes       int64
}

// Walker drives the traversal: analyze each directory, render its document,
// persist or preview it, then recurse into the collected subdirectories.
type Walker struct {
	Analyzer     Analyzer
	Renderer     *Renderer
	DocumentName string
	BackupSuffix string
	DryRun       bool
	MaxDepth     int
	Out          io.Writer

	stats RunStats
}

func NewWalker(analyzer Analyzer, renderer *Renderer, documentName, backupSuffix string, dryRun bool, maxDepth int) *Walker {
	return &Walker{
		Analyzer:     analyzer,
		Renderer:     renderer,
		DocumentName: documentName,
		BackupSuffix: backupSuffix,
		DryRun:       dryRun,
		MaxDepth:     maxDepth,
		Out:          os.Stdout,
	}
}

// Run walks the tree rooted at root. Only an unusable root aborts the run;
// every failure below it is contained, counted, and reported.
func (w *Walker) Run(root string) (RunStats, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return w.stats, fmt.Errorf("path %s does not exist", root)
		}
		return w.stats, fmt.Errorf("cannot access path %s: %w", root, err)
	}
	if !info.IsDir() {
		return w.stats, fmt.Errorf("path %s is not a directory", root)
	}

	fmt.Fprintf(w.Out, "Analyzing codebase at %s\n", root)
	w.visit(root, "", 0)
	fmt.Fprintf(w.Out, "\nAnalysis complete.\n")
	w.printSummary()
	return w.stats, nil
}

func (w *Walker) visit(dir, rel string, depth int) {
	fmt.Fprintf(w.Out, "Processing: %s\n", tern(rel == "", rootLabel, rel))
	w.stats.Directories++

	snap, err := w.Analyzer.Analyze(dir)

	var content string
	if err != nil {
		slog.Warn("Directory analysis failed.", "path", tern(rel == "", rootLabel, rel), "error", err)
		content = w.Renderer.RenderError(err)
	} else {
		content = w.Renderer.Render(snap)
	}

	target := filepath.Join(dir, w.DocumentName)
	if w.DryRun {
		fmt.Fprintf(w.Out, "  [preview] would write: %s\n", target)
		fmt.Fprintf(w.Out, "  [preview] content length: %d bytes\n", len(content))
		w.stats.Documents++
		w.stats.Bytes += int64(len(content))
	} else {
		w.persist(target, content)
	}

	if err != nil {
		// Nothing was listed, so there is nothing to descend into.
		return
	}
	if w.MaxDepth > 0 && depth >= w.MaxDepth {
		slog.Warn("Maximum depth reached, not descending further.",
			"path", tern(rel == "", rootLabel, rel), "max_depth", w.MaxDepth)
		return
	}
	for _, sub := range snap.Dirs {
		w.visit(sub.Path, tern(rel == "", sub.Name, rel+"/"+sub.Name), depth+1)
	}
}

// persist renames any existing document to its backup path, then writes the
// new one. A failed backup skips the write entirely so the previous document
// is never lost.
func (w *Walker) persist(target, content string) {
	if _, err := os.Stat(target); err == nil {
		backup := target + w.BackupSuffix
		fmt.Fprintf(w.Out, "  backing up existing document: %s\n", backup)
		if err := os.Rename(target, backup); err != nil {
			fmt.Fprintf(w.Out, "  backup failed, document left untouched: %v\n", err)
			slog.Error("Backup rename failed.", "from", target, "to", backup, "error", err)
			w.stats.Failures++
			return
		}
		w.stats.Backups++
	}

	if err := os.WriteFile(target, []byte(content), 0644); err != nil {
		fmt.Fprintf(w.Out, "  write failed: %v\n", err)
		slog.Error("Document write failed.", "path", target, "error", err)
		w.stats.Failures++
		return
	}
	fmt.Fprintf(w.Out, "  wrote %s\n", target)
	w.stats.Documents++
	w.stats.Bytes += int64(len(content))
}

func (w *Walker) printSummary() {
	fmt.Fprintf(w.Out, "  Directories processed: %d\n", w.stats.Directories)
	fmt.Fprintf(w.Out, "  Documents %s: %d (%s)\n",
		tern(w.DryRun, "previewed", "written"), w.stats.Documents, formatBytes(w.stats.Bytes))
	if w.stats.Backups > 0 {
		fmt.Fprintf(w.Out, "  Backups created: %d\n", w.stats.Backups)
	}
	if w.stats.Failures > 0 {
		fmt.Fprintf(w.Out, "  Failures: %d\n", w.stats.Failures)
	}
}
