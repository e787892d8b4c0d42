// Package screening composes the extraction, requirements, and scoring
// components into the one-way pipeline: raw text -> profile -> (profile,
// requirements) -> qualification result.
//
// Each run is independent and owns no state beyond its outcome; nothing is
// persisted or cached across runs.
package screening

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-screener/internal/docconv"
	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/requirements"
	"github.com/jonathan/resume-screener/internal/scoring"
	"github.com/jonathan/resume-screener/internal/types"
)

// Screen runs the full pipeline over already-decoded resume text.
// sourceName labels the outcome (file name or sample label) and is not used
// by any scoring rule.
func Screen(text, jobTitle, sourceName string) types.ScreeningOutcome {
	profile := extraction.ExtractProfile(text)
	reqs := requirements.Generate(jobTitle)
	result := scoring.Qualify(profile, reqs)

	return types.ScreeningOutcome{
		ScreeningID:  uuid.New().String(),
		SourceName:   sourceName,
		Profile:      profile,
		Requirements: reqs,
		Result:       result,
		ScreenedAt:   time.Now().UTC(),
	}
}

// ScreenDocument converts an uploaded document to text and screens it.
// When conversion fails the returned outcome is built from a filename-only
// placeholder profile and the *docconv.DecodeError is returned alongside it,
// so callers can surface the degradation without losing the verdict.
func ScreenDocument(filename string, data []byte, jobTitle string) (types.ScreeningOutcome, error) {
	text, err := docconv.Convert(filename, data)
	if err != nil {
		profile := FallbackProfile(filename)
		reqs := requirements.Generate(jobTitle)
		outcome := types.ScreeningOutcome{
			ScreeningID:  uuid.New().String(),
			SourceName:   filename,
			Profile:      profile,
			Requirements: reqs,
			Result:       scoring.Qualify(profile, reqs),
			ScreenedAt:   time.Now().UTC(),
		}
		return outcome, err
	}

	return Screen(extraction.CleanText(text), jobTitle, filename), nil
}

var (
	binaryExtension  = regexp.MustCompile(`(?i)\.(pdf|doc|docx)$`)
	fileNameSepChars = strings.NewReplacer("_", " ", "-", " ")
)

// FallbackProfile builds the placeholder profile used when a document cannot
// be decoded: the candidate name is derived from the file name, everything
// else takes the extraction defaults.
func FallbackProfile(filename string) types.CandidateProfile {
	name := binaryExtension.ReplaceAllString(filename, "")
	name = strings.TrimSpace(fileNameSepChars.Replace(name))
	if name == "" {
		name = extraction.DefaultName
	}

	return types.CandidateProfile{
		Name:              name,
		Title:             extraction.DefaultTitle,
		ExperienceSummary: extraction.DefaultExperienceSummary,
		Skills:            []string{"Professional Skills", "Industry Experience"},
		RawText:           "",
	}
}
