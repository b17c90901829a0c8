// cmd/docwalk/detect.go
package main

import (
	"bytes"
	"io"
	"os"
)

// binaryProbeSize is how many leading bytes are inspected for NUL.
const binaryProbeSize = 1024

// isBinaryFile reports whether the file at path should be treated as opaque
// binary content: a NUL byte within the first 1024 bytes. Any I/O failure is
// also reported as binary, so an unreadable file degrades to a one-line
// entry instead of failing the directory.
func isBinaryFile(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return true
	}
	defer f.Close()

	buf := make([]byte, binaryProbeSize)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return true
	}
	return bytes.IndexByte(buf[:n], 0) >= 0
}
