// cmd/docwalk/render.go
package main

import (
	"fmt"
	"strings"
	"time"
)

const timestampLayout = "2006-01-02 15:04:05"

// documentFooter closes every generated document.
const documentFooter = "*Generated automatically by docwalk*"

// Renderer turns directory snapshots into markdown documents. The display
// limits are part of the document contract, so they live here rather than as
// scattered literals.
type Renderer struct {
	TopLanguages int
	MaxFunctions int
	MaxClasses   int
	MaxImports   int
	Clock        func() time.Time
}

// NewRenderer returns a renderer with the standard display limits.
func NewRenderer() *Renderer {
	return &Renderer{
		TopLanguages: 5,
		MaxFunctions: 5,
		MaxClasses:   5,
		MaxImports:   3,
		Clock:        time.Now,
	}
}

// Render produces the summary document for one directory snapshot.
func (r *Renderer) Render(snap *DirectorySnapshot) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", snap.Name)
	b.WriteString("## Overview\n\n")
	fmt.Fprintf(&b, "This directory contains %d files and %d subdirectories.\n\n",
		snap.Stats.TotalFiles, snap.Stats.TotalDirs)
	fmt.Fprintf(&b, "**Path:** `%s`\n", snap.Path)
	fmt.Fprintf(&b, "**Generated:** %s\n\n", r.Clock().Format(timestampLayout))

	b.WriteString("**Main languages:**\n")
	top := snap.Stats.Languages
	if len(top) > r.TopLanguages {
		top = top[:r.TopLanguages]
	}
	for _, lc := range top {
		fmt.Fprintf(&b, "- %s: %d files\n", lc.Language, lc.Count)
	}

	b.WriteString("\n## Contents\n\n")

	if len(snap.Dirs) > 0 {
		b.WriteString("### Subdirectories\n\n")
		for _, d := range snap.Dirs {
			fmt.Fprintf(&b, "- **%s/**\n", d.Name)
		}
		b.WriteString("\n")
	}

	if len(snap.Files) > 0 {
		b.WriteString("### File summaries\n\n")

		var source, other []FileRecord
		for _, f := range snap.Files {
			if f.Kind == RecordSource {
				source = append(source, f)
			} else {
				other = append(other, f)
			}
		}

		if len(source) > 0 {
			b.WriteString("#### Source files\n\n")
			for _, f := range source {
				r.writeFileSummary(&b, f)
			}
		}
		if len(other) > 0 {
			b.WriteString("#### Other files\n\n")
			for _, f := range other {
				fmt.Fprintf(&b, "- **%s** (%s)\n", f.Name, f.Kind)
			}
		}
	}

	b.WriteString("\n---\n" + documentFooter + "\n")
	return b.String()
}

// RenderError produces the minimal document written when a directory cannot
// be analyzed at all.
func (r *Renderer) RenderError(err error) string {
	return fmt.Sprintf("# Error\n\nThis directory could not be analyzed: %v\n", err)
}

func (r *Renderer) writeFileSummary(b *strings.Builder, f FileRecord) {
	fmt.Fprintf(b, "##### %s\n\n", f.Name)
	fmt.Fprintf(b, "**Language:** %s  \n", f.Language)
	fmt.Fprintf(b, "**Lines:** %d  \n", f.Lines)
	fmt.Fprintf(b, "**Description:** %s\n\n", f.Description)

	if len(f.Functions) > 0 {
		fmt.Fprintf(b, "**Functions:** %s\n\n", backtickList(f.Functions, r.MaxFunctions))
	}
	if len(f.Classes) > 0 {
		fmt.Fprintf(b, "**Classes:** %s\n\n", backtickList(f.Classes, r.MaxClasses))
	}
	if len(f.Imports) > 0 {
		fmt.Fprintf(b, "**Imports:** %s\n\n", backtickList(f.Imports, r.MaxImports))
	}
}

// backtickList renders up to limit names as `a`, `b`, `c`.
func backtickList(names []string, limit int) string {
	if len(names) > limit {
		names = names[:limit]
	}
	return "`" + strings.Join(names, "`, `") + "`"
}
