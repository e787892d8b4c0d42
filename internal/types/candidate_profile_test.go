package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidateProfile_HasContactInfo(t *testing.T) {
	assert.False(t, (&CandidateProfile{}).HasContactInfo())
	assert.True(t, (&CandidateProfile{Email: "a@b.co"}).HasContactInfo())
	assert.True(t, (&CandidateProfile{Phone: "555-123-4567"}).HasContactInfo())
}

func TestCandidateProfile_JSONFieldNames(t *testing.T) {
	profile := CandidateProfile{
		Name:              "Jane Doe",
		Title:             "Engineer",
		ExperienceSummary: "5 years of experience",
		ExperienceYears:   5,
		Skills:            []string{"Python"},
		RawText:           "Jane Doe\nEngineer",
	}

	data, err := json.Marshal(profile)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "5 years of experience", decoded["experience"])
	assert.Contains(t, decoded, "experience_years")
	assert.Contains(t, decoded, "raw_text")
	// Empty contact fields are omitted entirely.
	assert.NotContains(t, decoded, "email")
	assert.NotContains(t, decoded, "phone")
	assert.NotContains(t, decoded, "location")
}
