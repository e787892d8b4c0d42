package scoring

import (
	"regexp"
	"strings"
)

var (
	leadingInteger = regexp.MustCompile(`(\d+)`)
	skillWordSplit = regexp.MustCompile(`[\s-]+`)
)

// resumeIndex holds the lowercased views of a profile that category checks
// match against.
type resumeIndex struct {
	text   string   // full raw resume text, lowercased
	skills []string // extracted skill names, lowercased
	title  string   // extracted title, lowercased
}

// matchesTerm reports whether a required skill or certification term appears
// in the resume. A term matches on exact substring containment in the resume
// text, exact equality with an extracted skill, or any word of the term longer
// than two characters found in the text or inside an extracted skill. The
// word-length floor keeps noise words like "of" from matching; the crude
// substring semantics are deliberate and must not be tightened.
func (idx *resumeIndex) matchesTerm(term string) bool {
	termLower := strings.ToLower(term)

	if strings.Contains(idx.text, termLower) {
		return true
	}
	for _, skill := range idx.skills {
		if skill == termLower {
			return true
		}
	}

	for _, word := range skillWordSplit.Split(termLower, -1) {
		if len(word) <= 2 {
			continue
		}
		if strings.Contains(idx.text, word) {
			return true
		}
		for _, skill := range idx.skills {
			if strings.Contains(skill, word) {
				return true
			}
		}
	}
	return false
}

// containsKeyword reports whether a single keyword appears in the resume title
// or anywhere in the resume text.
func (idx *resumeIndex) containsKeyword(keyword string) bool {
	lower := strings.ToLower(keyword)
	return strings.Contains(idx.title, lower) || strings.Contains(idx.text, lower)
}

// yearsFrom pulls the first integer out of a free-text experience sentence.
// Returns fallback when the sentence encodes no number (e.g. the
// "Experienced professional" default, which degrades to zero years).
func yearsFrom(summary string, fallback int) int {
	match := leadingInteger.FindStringSubmatch(summary)
	if match == nil {
		return fallback
	}
	years := 0
	for _, c := range match[1] {
		years = years*10 + int(c-'0')
		if years > 1000 {
			return 1000 // clamp absurd inputs; scoring caps make the exact value moot
		}
	}
	return years
}
