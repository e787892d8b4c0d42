package docconv

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
	"unicode/utf8"
)

// Metadata describes a converted document.
type Metadata struct {
	Filename    string `json:"filename"`
	Hash        string `json:"hash"`      // SHA256 hex digest of the converted text
	Timestamp   string `json:"timestamp"` // RFC3339, conversion time
	ByteCount   int    `json:"byte_count"`
	CharCount   int    `json:"char_count"`
	LineCount   int    `json:"line_count"`
	ContentType string `json:"content_type,omitempty"`
}

// NewMetadata builds Metadata for converted text.
func NewMetadata(filename, text string) *Metadata {
	hash := sha256.Sum256([]byte(text))

	lines := 0
	if text != "" {
		lines = 1
		for _, c := range text {
			if c == '\n' {
				lines++
			}
		}
	}

	return &Metadata{
		Filename:  filename,
		Hash:      hex.EncodeToString(hash[:]),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		ByteCount: len(text),
		CharCount: utf8.RuneCountInString(text),
		LineCount: lines,
	}
}
