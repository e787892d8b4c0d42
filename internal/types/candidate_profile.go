// Package types provides type definitions for structured data used throughout the resume-screener system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// CandidateProfile represents structured candidate data extracted from free-text resume content.
// Extraction is best-effort: Name, Title, and ExperienceSummary fall back to placeholder
// values and Skills is never empty, so a profile is always usable by the scoring engine.
type CandidateProfile struct {
	Name              string   `json:"name"`
	Title             string   `json:"title"`
	ExperienceSummary string   `json:"experience"`
	ExperienceYears   int      `json:"experience_years"` // 0 when no year count could be extracted
	Skills            []string `json:"skills"`
	Email             string   `json:"email,omitempty"`
	Phone             string   `json:"phone,omitempty"`
	Location          string   `json:"location,omitempty"`
	RawText           string   `json:"raw_text"`
}

// HasContactInfo reports whether at least one contact channel was extracted.
func (p *CandidateProfile) HasContactInfo() bool {
	return p.Email != "" || p.Phone != ""
}
