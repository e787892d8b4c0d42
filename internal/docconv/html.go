package docconv

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// blockSelectors are elements whose text becomes its own line, so line-based
// extraction heuristics (name on the first line, title in the first five)
// keep working on HTML resumes.
const blockSelectors = "h1, h2, h3, h4, h5, h6, p, li, td, div"

// convertHTML extracts visible text from an HTML document, one block element
// per line.
func convertHTML(filename string, data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", &DecodeError{Filename: filename, Message: "failed to parse HTML", Cause: err}
	}

	// Drop non-content elements before reading text.
	doc.Find("script, style, noscript").Remove()

	lines := make([]string, 0)
	doc.Find(blockSelectors).Each(func(_ int, s *goquery.Selection) {
		// Skip containers that have block children; their text would duplicate
		// the children's lines.
		if s.ChildrenFiltered(blockSelectors).Length() > 0 {
			return
		}
		text := strings.TrimSpace(s.Text())
		if text != "" {
			lines = append(lines, text)
		}
	})

	if len(lines) == 0 {
		// No block structure at all; fall back to the document's flat text.
		return strings.TrimSpace(doc.Text()), nil
	}
	return strings.Join(lines, "\n"), nil
}
