// Package binary detects whether a file's content looks binary.
package binary

import (
	"bytes"
	"errors"
	"io"
	"os"
)

// sniffLen is how many leading bytes are inspected.
const sniffLen = 512

// nonPrintableThreshold is the ratio of non-printable bytes above which
// content is considered binary.
const nonPrintableThreshold = 0.3

// IsBinary reports whether the file at path is likely binary, based on its
// first bytes: a NUL byte or a high ratio of non-printable characters.
func IsBinary(path string) (bool, error) {
	file, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer file.Close()

	buffer := make([]byte, sniffLen)
	n, err := file.Read(buffer)
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	return Sniff(buffer[:n]), nil
}

// Sniff reports whether the given content sample looks binary.
// Empty content is considered text.
func Sniff(sample []byte) bool {
	if len(sample) == 0 {
		return false
	}

	// NUL bytes are a reliable binary marker
	if bytes.IndexByte(sample, 0) >= 0 {
		return true
	}

	nonPrintable := 0
	for _, b := range sample {
		if !isPrintable(b) {
			nonPrintable++
		}
	}
	return float64(nonPrintable)/float64(len(sample)) > nonPrintableThreshold
}

// isPrintable checks if a byte represents a printable ASCII character
func isPrintable(b byte) bool {
	return (b >= 32 && b <= 126) || b == '\n' || b == '\r' || b == '\t' || b >= 128
}
