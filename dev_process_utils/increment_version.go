// dev_process_utils/increment_version.go
package main

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// versionLineRe matches `const Version = "x.y.z"` and isolates the patch
// number so it can be bumped in place.
var versionLineRe = regexp.MustCompile(`^(const Version\s*=\s*")(\d+\.\d+\.)(\d+)("\s*.*)$`)

// bumpPatchVersion rewrites versionFile with its patch number incremented by
// one. Everything else in the file, including anything trailing the constant
// on the same line, is left untouched.
func bumpPatchVersion(versionFile string) error {
	content, err := os.ReadFile(versionFile)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", versionFile, err)
	}

	lines := strings.Split(string(content), "\n")
	bumped := false
	for i, line := range lines {
		matches := versionLineRe.FindStringSubmatch(line)
		if matches == nil {
			continue
		}
		patch, err := strconv.Atoi(matches[3])
		if err != nil {
			return fmt.Errorf("invalid patch number %q in %s", matches[3], versionFile)
		}
		lines[i] = fmt.Sprintf("%s%s%d%s", matches[1], matches[2], patch+1, matches[4])
		bumped = true
		break
	}
	if !bumped {
		return fmt.Errorf("no Version constant found in %s", versionFile)
	}

	if err := os.WriteFile(versionFile, []byte(strings.Join(lines, "\n")), 0644); err != nil {
		return fmt.Errorf("cannot write %s: %w", versionFile, err)
	}
	return nil
}

func main() {
	versionFile := "cmd/docwalk/main.go"
	if len(os.Args) > 1 {
		versionFile = os.Args[1]
	}
	if err := bumpPatchVersion(versionFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Version updated in %s\n", versionFile)
}
