// Package content turns uploaded files into the plain text the prompt
// builder consumes.
package content

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// UnsupportedFormatError is returned for file extensions the pipeline
// cannot read. It is a user-facing rejection, not a hard failure.
type UnsupportedFormatError struct {
	Filename string
	Ext      string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format %q", e.Ext)
}

// ExtractText returns the text of an uploaded file. Only UTF-8 plain text
// (.txt) is supported; anything else gets UnsupportedFormatError.
func ExtractText(filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".txt" {
		return "", &UnsupportedFormatError{Filename: filename, Ext: ext}
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s is not valid UTF-8", filename)
	}
	return string(data), nil
}
