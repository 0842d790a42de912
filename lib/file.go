package rcs

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/edsrzf/mmap-go"
)

// RcsFile wraps a comma-v file on disk: the mapped bytes plus, after
// Load, the parsed document.
type RcsFile struct {
	Path string
	Data mmap.MMap
	Doc  *RcsData

	text string
}

// checkValidSource tests that a mapped file plausibly is an RCS ,v
// file before committing to a full parse: every document opens with
// the "head" clause.
func checkValidSource(source []byte) error {
	trimmed := strings.TrimLeft(string(source[:min(len(source), 64)]), spaceChars)
	if !strings.HasPrefix(trimmed, "head") {
		return errors.New("missing head clause, not an RCS ,v file?")
	}
	return nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// NewRcsFile maps the given file into memory and sanity-checks it.
// Call Load to parse.
func NewRcsFile(path string) (*RcsFile, error) {
	file, err := os.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := mmap.Map(file, mmap.RDONLY, 0)
	if err != nil {
		return nil, err
	}

	if err := checkValidSource(data); err != nil {
		data.Unmap()
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &RcsFile{Path: path, Data: data, text: string(data)}, nil
}

// Text returns the file contents; parse failures can be rendered
// against it with Verbose.
func (f *RcsFile) Text() string {
	return f.text
}

// Load parses the mapped file and stores the document on the receiver.
func (f *RcsFile) Load() error {
	_, doc, err := ParseRcs(f.text)
	if err != nil {
		return fmt.Errorf("%s: %w", f.Path, err)
	}
	f.Doc = doc
	return nil
}

// Close releases the mapping. The parsed document copies everything it
// needs, so it stays valid after Close.
func (f *RcsFile) Close() error {
	f.Doc = nil
	return f.Data.Unmap()
}
