// cmd/docwalk/prune.go
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	gocodewalker "github.com/boyter/gocodewalker"
)

// PruneStats describes one backup-pruning pass.
type PruneStats struct {
	Found    int
	Removed  int
	Failures int
	Bytes    int64
}

// PruneBackups scans the tree under root and removes every backup document,
// meaning files named exactly documentName+backupSuffix at any depth.
// Ignore files are deliberately not consulted: a backup inside an ignored
// subtree is still ours to clean up.
func PruneBackups(root, documentName, backupSuffix string, dryRun bool, out io.Writer) PruneStats {
	var stats PruneStats
	backupName := documentName + backupSuffix

	slog.Info("Starting backup scan.", "root", root, "backup_name", backupName)

	fileListQueue := make(chan *gocodewalker.File, 100)
	fileWalker := gocodewalker.NewFileWalker(root, fileListQueue)
	fileWalker.IgnoreGitIgnore = true
	fileWalker.IgnoreIgnoreFile = true

	var walkErr error
	var firstWalkError error
	processingDone := make(chan struct{})

	go func() {
		defer close(processingDone)
		walkerErrorHandler := func(e error) bool {
			slog.Warn("Error reported by file walker.", "root", root, "error", e)
			if firstWalkError == nil {
				firstWalkError = e
			}
			return true
		}
		fileWalker.SetErrorHandler(walkerErrorHandler)
		walkErr = fileWalker.Start()
	}()

	for f := range fileListQueue {
		if filepath.Base(f.Location) != backupName {
			continue
		}
		stats.Found++

		var size int64
		if info, err := os.Stat(f.Location); err == nil {
			size = info.Size()
		}

		if dryRun {
			fmt.Fprintf(out, "  [preview] would remove: %s\n", f.Location)
			stats.Removed++
			stats.Bytes += size
			continue
		}
		if err := os.Remove(f.Location); err != nil {
			fmt.Fprintf(out, "  remove failed: %v\n", err)
			slog.Error("Backup removal failed.", "path", f.Location, "error", err)
			stats.Failures++
			continue
		}
		fmt.Fprintf(out, "  removed %s\n", f.Location)
		stats.Removed++
		stats.Bytes += size
	}
	<-processingDone

	finalWalkError := walkErr
	if finalWalkError == nil && firstWalkError != nil {
		finalWalkError = firstWalkError
	}
	if finalWalkError != nil {
		slog.Error("Backup scan finished with errors.", "root", root, "error", finalWalkError)
		stats.Failures++
	}

	fmt.Fprintf(out, "Backups %s: %d (%s reclaimed)\n",
		tern(dryRun, "to remove", "removed"), stats.Removed, formatBytes(stats.Bytes))
	if stats.Failures > 0 {
		fmt.Fprintf(out, "Failures: %d\n", stats.Failures)
	}
	return stats
}
