// Package docconv converts uploaded resume documents into plain text for the
// extraction pipeline.
//
// Plain-text, markdown, and HTML documents are decoded in-process. Binary
// formats (PDF, DOC, DOCX) are outside this service's contract and yield a
// *DecodeError; the screening layer substitutes a filename-based placeholder
// profile for those.
package docconv

import (
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Convert decodes a document into text, dispatching on the file extension.
// Unknown extensions are treated as plain text.
func Convert(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return "", &DecodeError{Filename: filename, Message: "PDF decoding requires the external conversion service"}
	case ".doc", ".docx":
		return "", &DecodeError{Filename: filename, Message: "Word decoding requires the external conversion service"}
	case ".html", ".htm":
		return convertHTML(filename, data)
	default:
		// .txt, .md, and anything else: decode as UTF-8 text.
		return convertText(filename, data)
	}
}

// convertText validates and returns the document as UTF-8 text.
func convertText(filename string, data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", &DecodeError{Filename: filename, Message: "document is not valid UTF-8 text"}
	}
	text := string(data)
	if strings.ContainsRune(text, '\x00') {
		return "", &DecodeError{Filename: filename, Message: "document contains binary content"}
	}
	return text, nil
}
