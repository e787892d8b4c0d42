package types

import "time"

// ScoreBreakdown holds the outcome of one scoring category.
// Points is signed: the Certifications category may carry a penalty.
type ScoreBreakdown struct {
	Category  string   `json:"category"`
	Points    int      `json:"points"`
	MaxPoints int      `json:"max_points"`
	Details   []string `json:"details"`
}

// QualificationResult is the qualification engine's verdict for one candidate
// against one job's requirements.
type QualificationResult struct {
	IsQualified    bool             `json:"is_qualified"`
	Score          int              `json:"score"` // clamped to [0,100]
	Strengths      []string         `json:"strengths"`
	Weaknesses     []string         `json:"weaknesses"`
	Recommendation string           `json:"recommendation"`
	TalentPool     string           `json:"talent_pool"`
	ScoreBreakdown []ScoreBreakdown `json:"score_breakdown"`
}

// ScreeningOutcome is the envelope produced by one screening pipeline run.
// Outcomes are created fresh per request and never persisted.
type ScreeningOutcome struct {
	ScreeningID  string              `json:"screening_id"`
	SourceName   string              `json:"source_name,omitempty"` // file name or label of the screened document
	Profile      CandidateProfile    `json:"profile"`
	Requirements JobQualifications   `json:"requirements"`
	Result       QualificationResult `json:"result"`
	ScreenedAt   time.Time           `json:"screened_at"`
}
