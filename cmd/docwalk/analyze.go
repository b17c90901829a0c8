// cmd/docwalk/analyze.go
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"
)

// RecordKind tags the shape of a FileRecord.
type RecordKind string

const (
	// RecordSource marks a decoded text file with full analysis fields.
	RecordSource RecordKind = "source"
	// RecordBinary marks an opaque file described only by name and size.
	RecordBinary RecordKind = "binary"
	// RecordError marks a file whose analysis failed; only the message is kept.
	RecordError RecordKind = "error"
)

// FileRecord is the analysis result for a single file. Kind selects which
// fields carry meaning: Source records have the full set, Binary records
// only Name/Size/Language, Error records only Name/Err.
type FileRecord struct {
	Name        string     `json:"name"`
	Kind        RecordKind `json:"type"`
	Language    string     `json:"language,omitempty"`
	Lines       int        `json:"lines,omitempty"`
	Size        int64      `json:"size,omitempty"`
	Description string     `json:"description,omitempty"`
	Functions   []string   `json:"functions,omitempty"`
	Classes     []string   `json:"classes,omitempty"`
	Imports     []string   `json:"imports,omitempty"`
	Err         string     `json:"error,omitempty"`
}

const (
	// maxExtracted caps every extraction list.
	maxExtracted = 10
	// descriptionScanLines is how many leading lines are searched for a description.
	descriptionScanLines = 20
	// descriptionMinLen and descriptionMaxLen are exclusive bounds on the
	// cleaned description length, in runes.
	descriptionMinLen = 10
	descriptionMaxLen = 200
)

// Extraction patterns. These are deliberately shallow; they may both
// under- and over-match, which is acceptable for summary documents.
var (
	commentLeadRe = regexp.MustCompile(`^[#/*\s]+`)

	pythonFuncRe   = regexp.MustCompile(`def\s+(\w+)\s*\(`)
	pythonClassRe  = regexp.MustCompile(`class\s+(\w+)`)
	pythonImportRe = regexp.MustCompile(`(?m)^(?:from|import)\s+(\S+)`)

	jsFuncRe   = regexp.MustCompile(`(?:function\s+(\w+)|const\s+(\w+)\s*=\s*(?:async\s+)?\()`)
	jsClassRe  = regexp.MustCompile(`class\s+(\w+)`)
	jsImportRe = regexp.MustCompile(`(?m)^(?:import.*from\s+['"](\S+)['"]|const\s+.*=\s*require\(['"](\S+)['"]\))`)

	javaClassRe  = regexp.MustCompile(`(?:public\s+)?class\s+(\w+)`)
	javaMethodRe = regexp.MustCompile(`(?:public|private|protected)?\s*(?:static)?\s*\w+\s+(\w+)\s*\(`)
	javaImportRe = regexp.MustCompile(`import\s+([\w.]+);`)
)

// FileAnalyzer turns file paths into FileRecords.
type FileAnalyzer struct {
	classifier *Classifier
}

func NewFileAnalyzer(classifier *Classifier) *FileAnalyzer {
	return &FileAnalyzer{classifier: classifier}
}

// Analyze produces exactly one record for the file at path. It never
// propagates a failure: I/O errors and unexpected faults are folded into an
// Error record so a single bad file cannot abort the surrounding directory.
func (a *FileAnalyzer) Analyze(path string) (rec FileRecord) {
	name := filepath.Base(path)
	defer func() {
		if r := recover(); r != nil {
			rec = FileRecord{Name: name, Kind: RecordError, Err: fmt.Sprintf("unexpected fault: %v", r)}
		}
	}()

	info, err := os.Stat(path)
	if err != nil {
		return FileRecord{Name: name, Kind: RecordError, Err: err.Error()}
	}

	if isBinaryFile(path) {
		return FileRecord{Name: name, Kind: RecordBinary, Language: "binary", Size: info.Size()}
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return FileRecord{Name: name, Kind: RecordError, Err: err.Error()}
	}
	content := strings.ToValidUTF8(string(raw), "")

	language := a.classifier.Classify(name)
	rec = FileRecord{
		Name:        name,
		Kind:        RecordSource,
		Language:    language,
		Lines:       countLines(content),
		Size:        info.Size(),
		Description: extractDescription(content, language),
	}

	switch language {
	case "python":
		rec.Functions = matchNames(pythonFuncRe, content)
		rec.Classes = matchNames(pythonClassRe, content)
		rec.Imports = matchNames(pythonImportRe, content)
	case "javascript", "typescript":
		rec.Functions = matchAnyGroup(jsFuncRe, content)
		rec.Classes = matchNames(jsClassRe, content)
		rec.Imports = matchAnyGroup(jsImportRe, content)
	case "java":
		rec.Classes = matchNames(javaClassRe, content)
		rec.Functions = matchNames(javaMethodRe, content)
		rec.Imports = matchNames(javaImportRe, content)
	}
	return rec
}

// countLines counts newline-delimited segments. A trailing newline does not
// produce a phantom empty segment.
func countLines(content string) int {
	if content == "" {
		return 0
	}
	n := strings.Count(content, "\n")
	if !strings.HasSuffix(content, "\n") {
		n++
	}
	return n
}

// extractDescription scans the first 20 lines for a comment or docstring
// line whose cleaned text has a plausible one-liner length, and falls back
// to a generic label.
func extractDescription(content, language string) string {
	lines := strings.Split(content, "\n")
	if len(lines) > descriptionScanLines {
		lines = lines[:descriptionScanLines]
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)

		if strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") || strings.HasPrefix(line, "/*") {
			desc := strings.TrimSpace(commentLeadRe.ReplaceAllString(line, ""))
			if plausibleDescription(desc) {
				return desc
			}
		}

		if strings.Contains(line, `"""`) || strings.Contains(line, "'''") {
			desc := strings.TrimSpace(strings.Trim(line, `"'`))
			if plausibleDescription(desc) {
				return desc
			}
		}
	}
	return language + " source file"
}

func plausibleDescription(desc string) bool {
	n := utf8.RuneCountInString(desc)
	return n > descriptionMinLen && n < descriptionMaxLen
}

// matchNames collects the first capture group of each match, up to the
// extraction cap.
func matchNames(re *regexp.Regexp, content string) []string {
	var names []string
	for _, m := range re.FindAllStringSubmatch(content, maxExtracted) {
		names = append(names, m[1])
	}
	return names
}

// matchAnyGroup collects, per match, whichever capture group is populated.
// Alternation patterns leave the untaken branch's group empty; matches with
// no populated group are dropped before the cap is applied.
func matchAnyGroup(re *regexp.Regexp, content string) []string {
	var names []string
	for _, m := range re.FindAllStringSubmatch(content, -1) {
		for _, group := range m[1:] {
			if group != "" {
				names = append(names, group)
				break
			}
		}
		if len(names) == maxExtracted {
			break
		}
	}
	return names
}
