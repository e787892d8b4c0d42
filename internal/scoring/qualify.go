// Package scoring implements the rule-based qualification engine: a weighted,
// category-by-category fitness score of a candidate profile against a job's
// generated requirements.
//
// Qualify is a pure, total function. Missing information degrades the score;
// it never produces an error.
package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/types"
)

// QualificationThreshold is the minimum score for a qualified verdict.
const QualificationThreshold = 60

// Per-category point values and caps.
const (
	pointsPerRequiredSkill  = 15
	pointsPerPreferredSkill = 3
	preferredSkillsCap      = 30
	experienceMaxPoints     = 15
	pointsPerCertification  = 20
	missingCertPenalty      = -20
	pointsPerTitleKeyword   = 5
	titleMaxPoints          = 15
	pointsPerPartialWord    = 3
	partialTitleCap         = 10
	pointsPerContactChannel = 2
	contactMaxPoints        = 4

	defaultMinExperience = 3
)

// Breakdown category names.
const (
	CategoryRequiredSkills  = "Required Skills"
	CategoryPreferredSkills = "Preferred Skills"
	CategoryExperience      = "Experience"
	CategoryCertifications  = "Certifications"
	CategoryTitleRelevance  = "Title Relevance"
	CategoryContactInfo     = "Contact Info"
)

// evaluation accumulates score, evidence, and the per-category breakdown
// across the independent category checks.
type evaluation struct {
	idx        resumeIndex
	score      float64
	strengths  []string
	weaknesses []string
	breakdown  []types.ScoreBreakdown
}

// Qualify scores a candidate profile against a job's requirements and returns
// the verdict: total score, per-category breakdown, qualitative evidence, and
// the recommendation/talent-pool labels. Categories are independent and
// additive; the raw sum is rounded and clamped to [0,100] at the end.
func Qualify(profile types.CandidateProfile, reqs types.JobQualifications) types.QualificationResult {
	skillsLower := make([]string, len(profile.Skills))
	for i, s := range profile.Skills {
		skillsLower[i] = strings.ToLower(s)
	}

	ev := &evaluation{
		idx: resumeIndex{
			text:   strings.ToLower(profile.RawText),
			skills: skillsLower,
			title:  strings.ToLower(profile.Title),
		},
	}

	ev.scoreRequiredSkills(reqs.RequiredSkills)
	ev.scorePreferredSkills(reqs.PreferredSkills)
	ev.scoreExperience(profile.ExperienceSummary, reqs.RequiredExperience)
	if len(reqs.RequiredCertifications) > 0 {
		ev.scoreCertifications(reqs.RequiredCertifications)
	}
	ev.scoreTitleRelevance(reqs.Title, profile.Title)
	ev.scoreContactInfo(profile)

	score := int(math.Round(ev.score))
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	isQualified := score >= QualificationThreshold
	recommendation, talentPool := recommend(score, reqs.Title)

	strengths := ev.strengths
	weaknesses := ev.weaknesses
	if len(strengths) == 0 {
		weaknesses = append(weaknesses, "Limited relevant experience")
		strengths = []string{"Professional background"}
	}

	return types.QualificationResult{
		IsQualified:    isQualified,
		Score:          score,
		Strengths:      strengths,
		Weaknesses:     weaknesses,
		Recommendation: recommendation,
		TalentPool:     talentPool,
		ScoreBreakdown: ev.breakdown,
	}
}

// scoreRequiredSkills awards pointsPerRequiredSkill per matched required
// skill, capped by the number of required skills.
func (ev *evaluation) scoreRequiredSkills(required []string) {
	found := make([]string, 0, len(required))
	for _, skill := range required {
		if ev.idx.matchesTerm(skill) {
			found = append(found, skill)
			ev.strengths = append(ev.strengths, fmt.Sprintf("Has %s experience", skill))
		}
	}

	points := float64(len(found) * pointsPerRequiredSkill)
	ev.score += points

	details := []string{fmt.Sprintf("Missing all required skills: %s", strings.Join(required, ", "))}
	if len(found) > 0 {
		details = []string{fmt.Sprintf("Found %d/%d: %s", len(found), len(required), strings.Join(found, ", "))}
	}
	ev.breakdown = append(ev.breakdown, types.ScoreBreakdown{
		Category:  CategoryRequiredSkills,
		Points:    int(math.Round(points)),
		MaxPoints: len(required) * pointsPerRequiredSkill,
		Details:   details,
	})

	if len(found) == 0 {
		shortlist := required
		if len(shortlist) > 3 {
			shortlist = shortlist[:3]
		}
		ev.weaknesses = append(ev.weaknesses, fmt.Sprintf("Missing required skills: %s", strings.Join(shortlist, ", ")))
	}
}

// scorePreferredSkills awards pointsPerPreferredSkill per matched preferred
// skill; the category cap is the lesser of preferredSkillsCap and the table
// maximum. A strength is only added when no earlier strength mentions the
// same skill.
func (ev *evaluation) scorePreferredSkills(preferred []string) {
	found := make([]string, 0, len(preferred))
	for _, skill := range preferred {
		if !ev.idx.matchesTerm(skill) {
			continue
		}
		found = append(found, skill)
		if !ev.mentionsSkill(skill) {
			ev.strengths = append(ev.strengths, fmt.Sprintf("Has %s experience", skill))
		}
	}

	points := float64(len(found) * pointsPerPreferredSkill)
	ev.score += points

	maxPoints := len(preferred) * pointsPerPreferredSkill
	if maxPoints > preferredSkillsCap {
		maxPoints = preferredSkillsCap
	}

	details := []string{"No preferred skills found"}
	if len(found) > 0 {
		listed := found
		ellipsis := ""
		if len(listed) > 4 {
			listed = listed[:4]
			ellipsis = "..."
		}
		details = []string{fmt.Sprintf("Found %d: %s%s", len(found), strings.Join(listed, ", "), ellipsis)}
	}
	ev.breakdown = append(ev.breakdown, types.ScoreBreakdown{
		Category:  CategoryPreferredSkills,
		Points:    int(math.Round(points)),
		MaxPoints: maxPoints,
		Details:   details,
	})
}

// mentionsSkill reports whether an accumulated strength already names a skill.
func (ev *evaluation) mentionsSkill(skill string) bool {
	for _, s := range ev.strengths {
		if strings.Contains(s, skill) {
			return true
		}
	}
	return false
}

// scoreExperience awards up to experienceMaxPoints: full credit when the
// candidate's years meet the requirement, proportional credit below it, and
// nothing when the years are unknown. The years are re-parsed from the
// free-text summary so the check degrades the same way the extractor does.
func (ev *evaluation) scoreExperience(summary, requiredExperience string) {
	years := yearsFrom(summary, 0)
	minYears := yearsFrom(requiredExperience, defaultMinExperience)

	points := 0.0
	var details []string

	switch {
	case years > 0 && years >= minYears:
		points = experienceMaxPoints
		ev.strengths = append(ev.strengths, fmt.Sprintf("%d years of experience", years))
		details = []string{fmt.Sprintf("%d years meets requirement (%d+)", years, minYears)}
	case years > 0:
		points = float64(years) / float64(minYears) * experienceMaxPoints
		if points < 0 {
			points = 0
		}
		ev.weaknesses = append(ev.weaknesses, fmt.Sprintf("Only %d years of experience (requires %d+)", years, minYears))
		details = []string{fmt.Sprintf("%d years is below requirement (%d+)", years, minYears)}
	default:
		ev.weaknesses = append(ev.weaknesses, "Experience level unclear")
		details = []string{"Experience level not found in resume"}
	}

	ev.score += points
	ev.breakdown = append(ev.breakdown, types.ScoreBreakdown{
		Category:  CategoryExperience,
		Points:    int(math.Round(points)),
		MaxPoints: experienceMaxPoints,
		Details:   details,
	})
}

// scoreCertifications awards pointsPerCertification per found certification.
// When none of the required certifications appear, the category is a flat
// penalty: a violated requirement, not a neutral miss. Only called when the
// job requires at least one certification.
func (ev *evaluation) scoreCertifications(required []string) {
	found := make([]string, 0, len(required))
	for _, cert := range required {
		if ev.idx.matchesTerm(cert) {
			found = append(found, cert)
			ev.strengths = append(ev.strengths, fmt.Sprintf("Has %s certification", cert))
		}
	}

	var points float64
	var details []string
	if len(found) == 0 {
		points = missingCertPenalty
		ev.weaknesses = append(ev.weaknesses, fmt.Sprintf("Missing required certification: %s", strings.Join(required, ", ")))
		details = []string{fmt.Sprintf("Missing required: %s", strings.Join(required, ", "))}
	} else {
		points = float64(len(found) * pointsPerCertification)
		details = []string{fmt.Sprintf("Found %d/%d: %s", len(found), len(required), strings.Join(found, ", "))}
	}

	ev.score += points
	ev.breakdown = append(ev.breakdown, types.ScoreBreakdown{
		Category:  CategoryCertifications,
		Points:    int(math.Round(points)),
		MaxPoints: len(required) * pointsPerCertification,
		Details:   details,
	})
}

// scoreTitleRelevance awards pointsPerTitleKeyword per job-title word found in
// the resume title or text, capped at titleMaxPoints. When no keyword matches
// and the resume title is not the generic extraction placeholder, a weaker
// pass runs: job-title words longer than three characters found anywhere earn
// pointsPerPartialWord each, capped at partialTitleCap. Both branches and both
// thresholds are a preserved behavioral contract; do not collapse them.
func (ev *evaluation) scoreTitleRelevance(jobTitle, resumeTitle string) {
	keywords := strings.Fields(strings.ToLower(jobTitle))

	matched := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		if ev.idx.containsKeyword(keyword) {
			matched = append(matched, keyword)
		}
	}

	points := 0.0
	var details []string

	if len(matched) > 0 {
		points = float64(len(matched) * pointsPerTitleKeyword)
		if points > titleMaxPoints {
			points = titleMaxPoints
		}
		ev.strengths = append(ev.strengths, "Relevant job title")
		details = []string{fmt.Sprintf("Title matches %d job keyword(s): %s", len(matched), strings.Join(matched, ", "))}
	} else if !strings.EqualFold(resumeTitle, extraction.DefaultTitle) {
		partial := make([]string, 0, len(keywords))
		for _, word := range keywords {
			if len(word) > 3 && ev.idx.containsKeyword(word) {
				partial = append(partial, word)
			}
		}
		if len(partial) > 0 {
			points = float64(len(partial) * pointsPerPartialWord)
			if points > partialTitleCap {
				points = partialTitleCap
			}
			details = []string{fmt.Sprintf("Partial title match: %s", strings.Join(partial, ", "))}
		}
	}

	if points == 0 {
		details = []string{"Title does not match job requirements"}
	}

	ev.score += points
	ev.breakdown = append(ev.breakdown, types.ScoreBreakdown{
		Category:  CategoryTitleRelevance,
		Points:    int(math.Round(points)),
		MaxPoints: titleMaxPoints,
		Details:   details,
	})
}

// scoreContactInfo awards pointsPerContactChannel each for a present email and
// phone. Presence checks only.
func (ev *evaluation) scoreContactInfo(profile types.CandidateProfile) {
	points := 0
	details := make([]string, 0, 2)

	if profile.Email != "" {
		points += pointsPerContactChannel
		details = append(details, "Email provided")
	}
	if profile.Phone != "" {
		points += pointsPerContactChannel
		details = append(details, "Phone provided")
	}
	if points == 0 {
		details = append(details, "No contact information found")
	}

	ev.score += float64(points)
	ev.breakdown = append(ev.breakdown, types.ScoreBreakdown{
		Category:  CategoryContactInfo,
		Points:    points,
		MaxPoints: contactMaxPoints,
		Details:   details,
	})
}

// recommend maps a final score to the recommendation tier and talent-pool
// label. Tiers are evaluated top-down; first match wins.
func recommend(score int, jobTitle string) (string, string) {
	switch {
	case score >= 85:
		return "Move to interview stage immediately", fmt.Sprintf("%s - Highly Qualified", jobTitle)
	case score >= 70:
		return "Move to interview stage", fmt.Sprintf("%s - Qualified", jobTitle)
	case score >= QualificationThreshold:
		return "Consider for interview, review experience", fmt.Sprintf("%s - Conditional", jobTitle)
	case score >= 40:
		return "Not qualified - missing key requirements", "Do Not Contact"
	default:
		return "Not qualified - insufficient experience/skills", "Do Not Contact"
	}
}
