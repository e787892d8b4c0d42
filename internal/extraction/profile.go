// Package extraction derives a structured candidate profile from decoded resume text.
//
// Every sub-extraction is best-effort with a documented default, so ExtractProfile
// is total: it never fails, for any input including the empty string.
package extraction

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

// Defaults used when a field cannot be resolved from the text.
const (
	DefaultName              = "Candidate"
	DefaultTitle             = "Professional"
	DefaultExperienceSummary = "Experienced professional"
)

// titleKeywords are role words that mark a line as a plausible title.
// Only the first five non-blank lines are considered.
var titleKeywords = []string{
	"engineer", "developer", "manager", "analyst",
	"specialist", "director", "accountant", "designer",
}

// skillVocabulary is the fixed, ordered vocabulary of recognized skills.
// Matches are collected in vocabulary order, capped at maxSkills.
var skillVocabulary = []string{
	"JavaScript", "TypeScript", "React", "Node.js", "Python", "Java", "SQL",
	"AWS", "Docker", "Kubernetes", "Git", "Agile", "Scrum",
	"CPA", "Excel", "QuickBooks", "NetSuite", "SAP",
	"Figma", "Adobe", "Photoshop", "Illustrator",
	"Project Management", "Leadership", "Communication",
	"Month-End Close", "Financial Reporting", "Budgeting",
}

const maxSkills = 6

// fallbackSkills is returned when no vocabulary skill appears in the text.
var fallbackSkills = []string{"Professional Skills", "Industry Experience"}

var (
	nameStartsUppercase = regexp.MustCompile(`^[A-Z]`)

	// Tried in order; the first capture wins.
	experiencePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d+)\s*(?:years?|yrs?)\s*(?:of\s*)?(?:experience|exp)`),
		regexp.MustCompile(`(?i)experience[:\s]+(\d+)\s*(?:years?|yrs?)`),
		regexp.MustCompile(`(?i)(\d+)\+?\s*(?:years?|yrs?)`),
	}

	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// US-style grouped digits first, then loose international form.
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
		regexp.MustCompile(`\+\d{1,3}[-.\s]?\d{1,4}[-.\s]?\d{1,4}[-.\s]?\d{1,9}`),
	}

	// "Denver, CO" / "New York, NY", then "Denver CO", then "San Francisco, California".
	locationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*),\s*([A-Z]{2}|[A-Z][a-z]+)`),
		regexp.MustCompile(`([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)\s+([A-Z]{2})\b`),
		regexp.MustCompile(`([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*),\s*([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`),
	}
)

// ExtractProfile builds a CandidateProfile from decoded resume text.
// Missing fields degrade to defaults or empty strings; the function never fails.
func ExtractProfile(text string) types.CandidateProfile {
	summary, years := extractExperience(text)

	return types.CandidateProfile{
		Name:              extractName(text),
		Title:             extractTitle(text),
		ExperienceSummary: summary,
		ExperienceYears:   years,
		Skills:            extractSkills(text),
		Email:             extractEmail(text),
		Phone:             extractPhone(text),
		Location:          extractLocation(text),
		RawText:           text,
	}
}

// nonBlankLines returns the trimmed non-blank lines of text in order.
func nonBlankLines(text string) []string {
	lines := make([]string, 0)
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

// extractName accepts the first non-blank line as the candidate's name when it
// looks like one: at most four words, starting with an uppercase letter.
func extractName(text string) string {
	lines := nonBlankLines(text)
	if len(lines) > 0 {
		first := lines[0]
		if len(strings.Fields(first)) <= 4 && nameStartsUppercase.MatchString(first) {
			return first
		}
	}
	return DefaultName
}

// extractTitle scans the first five non-blank lines for a role keyword and
// returns the first matching line verbatim.
func extractTitle(text string) string {
	lines := nonBlankLines(text)
	limit := len(lines)
	if limit > 5 {
		limit = 5
	}
	for i := 0; i < limit; i++ {
		lower := strings.ToLower(lines[i])
		for _, keyword := range titleKeywords {
			if strings.Contains(lower, keyword) {
				return lines[i]
			}
		}
	}
	return DefaultTitle
}

// extractExperience returns the experience summary sentence and the year count
// it encodes. Years is 0 when no pattern matched or the number was unusable.
func extractExperience(text string) (string, int) {
	for _, pattern := range experiencePatterns {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		summary := fmt.Sprintf("%s years of experience", match[1])
		years, err := strconv.Atoi(match[1])
		if err != nil {
			years = 0
		}
		return summary, years
	}
	return DefaultExperienceSummary, 0
}

// extractSkills collects vocabulary skills appearing anywhere in the text,
// case-insensitively, preserving vocabulary order and deduplicating by
// construction. Returns fallbackSkills when nothing matched.
func extractSkills(text string) []string {
	textLower := strings.ToLower(text)
	found := make([]string, 0, maxSkills)

	for _, skill := range skillVocabulary {
		if strings.Contains(textLower, strings.ToLower(skill)) {
			found = append(found, skill)
			if len(found) >= maxSkills {
				break
			}
		}
	}

	if len(found) == 0 {
		return append([]string(nil), fallbackSkills...)
	}
	return found
}

// extractEmail returns the first email-shaped token, or "" when absent.
func extractEmail(text string) string {
	return emailPattern.FindString(text)
}

// extractPhone returns the first phone-shaped token, trying the US pattern
// before the international one, or "" when absent.
func extractPhone(text string) string {
	for _, pattern := range phonePatterns {
		if match := pattern.FindString(text); match != "" {
			return match
		}
	}
	return ""
}

// extractLocation scans the first ten raw lines for a "City, ST" shaped token.
// The first matching line wins, trying the patterns in order within each line.
func extractLocation(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) > 10 {
		lines = lines[:10]
	}
	for _, line := range lines {
		for _, pattern := range locationPatterns {
			if match := pattern.FindString(line); match != "" {
				return strings.TrimSpace(match)
			}
		}
	}
	return ""
}
