package extraction

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `John Smith
Senior Accountant
Denver, CO
john.smith@example.com
(555) 123-4567

Experienced accounting professional with 7 years of experience.
Skills: CPA, NetSuite, QuickBooks, Excel, Month-End Close, Financial Reporting
Prepared financial statements under GAAP and owned reconciliation.`

func TestExtractProfile_EmptyInput(t *testing.T) {
	profile := ExtractProfile("")

	assert.Equal(t, "Candidate", profile.Name)
	assert.Equal(t, "Professional", profile.Title)
	assert.Equal(t, "Experienced professional", profile.ExperienceSummary)
	assert.Equal(t, 0, profile.ExperienceYears)
	assert.Equal(t, []string{"Professional Skills", "Industry Experience"}, profile.Skills)
	assert.Empty(t, profile.Email)
	assert.Empty(t, profile.Phone)
	assert.Empty(t, profile.Location)
}

func TestExtractProfile_FullResume(t *testing.T) {
	profile := ExtractProfile(sampleResume)

	assert.Equal(t, "John Smith", profile.Name)
	assert.Equal(t, "Senior Accountant", profile.Title)
	assert.Equal(t, "7 years of experience", profile.ExperienceSummary)
	assert.Equal(t, 7, profile.ExperienceYears)
	assert.Equal(t, "john.smith@example.com", profile.Email)
	assert.Equal(t, "(555) 123-4567", profile.Phone)
	assert.Equal(t, "Denver, CO", profile.Location)
	assert.Equal(t, sampleResume, profile.RawText)
}

func TestExtractProfile_NeverEmptyInvariants(t *testing.T) {
	inputs := []string{
		"",
		"\n\n\n",
		"    ",
		"a",
		"12345",
		strings.Repeat("x", 10000),
		"!!!@@@###",
	}

	for _, input := range inputs {
		profile := ExtractProfile(input)
		assert.NotEmpty(t, profile.Name, "input %q", input)
		assert.NotEmpty(t, profile.Title, "input %q", input)
		assert.NotEmpty(t, profile.ExperienceSummary, "input %q", input)
		assert.NotEmpty(t, profile.Skills, "input %q", input)
	}
}

func TestExtractName_FirstLineAccepted(t *testing.T) {
	profile := ExtractProfile("Jane Doe\nSome other line")
	assert.Equal(t, "Jane Doe", profile.Name)
}

func TestExtractName_TooManyWords(t *testing.T) {
	profile := ExtractProfile("This first line has far too many words to be a name\nJane Doe")
	assert.Equal(t, "Candidate", profile.Name)
}

func TestExtractName_LowercaseStart(t *testing.T) {
	profile := ExtractProfile("jane doe\nEngineer")
	assert.Equal(t, "Candidate", profile.Name)
}

func TestExtractName_SkipsBlankLines(t *testing.T) {
	profile := ExtractProfile("\n\n  \nJane Doe\nEngineer")
	assert.Equal(t, "Jane Doe", profile.Name)
}

func TestExtractName_FourWordsAccepted(t *testing.T) {
	profile := ExtractProfile("Mary Jane Watson Parker")
	assert.Equal(t, "Mary Jane Watson Parker", profile.Name)
}

func TestExtractTitle_FirstMatchingLineWins(t *testing.T) {
	text := "Jane Doe\nStaff Software Engineer\nFormer Product Manager"
	profile := ExtractProfile(text)
	assert.Equal(t, "Staff Software Engineer", profile.Title)
}

func TestExtractTitle_CaseInsensitive(t *testing.T) {
	profile := ExtractProfile("Jane Doe\nSENIOR DEVELOPER")
	assert.Equal(t, "SENIOR DEVELOPER", profile.Title)
}

func TestExtractTitle_OnlyFirstFiveLines(t *testing.T) {
	text := "One\nTwo\nThree\nFour\nFive\nStaff Engineer"
	profile := ExtractProfile(text)
	assert.Equal(t, "Professional", profile.Title)
}

func TestExtractExperience_YearsOfExperience(t *testing.T) {
	profile := ExtractProfile("Jane\n10 years of experience in finance")
	assert.Equal(t, "10 years of experience", profile.ExperienceSummary)
	assert.Equal(t, 10, profile.ExperienceYears)
}

func TestExtractExperience_ColonForm(t *testing.T) {
	profile := ExtractProfile("Experience: 4 years")
	assert.Equal(t, "4 years of experience", profile.ExperienceSummary)
	assert.Equal(t, 4, profile.ExperienceYears)
}

func TestExtractExperience_BareYears(t *testing.T) {
	profile := ExtractProfile("Jane\nOver 6+ yrs in the field")
	assert.Equal(t, "6 years of experience", profile.ExperienceSummary)
	assert.Equal(t, 6, profile.ExperienceYears)
}

func TestExtractExperience_NoMatch(t *testing.T) {
	profile := ExtractProfile("Jane\nSeasoned professional")
	assert.Equal(t, "Experienced professional", profile.ExperienceSummary)
	assert.Equal(t, 0, profile.ExperienceYears)
}

func TestExtractSkills_VocabularyOrderPreserved(t *testing.T) {
	// Mentioned in reverse vocabulary order; extraction reports vocabulary order.
	profile := ExtractProfile("Knows Figma and Docker and Python")
	assert.Equal(t, []string{"Python", "Docker", "Figma"}, profile.Skills)
}

func TestExtractSkills_CapAtSix(t *testing.T) {
	text := "JavaScript TypeScript React Node.js Python Java SQL AWS Docker"
	profile := ExtractProfile(text)
	require.Len(t, profile.Skills, 6)
	assert.Equal(t, []string{"JavaScript", "TypeScript", "React", "Node.js", "Python", "Java"}, profile.Skills)
}

func TestExtractSkills_CaseInsensitive(t *testing.T) {
	profile := ExtractProfile("expert in KUBERNETES and quickbooks")
	assert.Equal(t, []string{"Kubernetes", "QuickBooks"}, profile.Skills)
}

func TestExtractSkills_FallbackWhenNoneFound(t *testing.T) {
	profile := ExtractProfile("Paints murals in public spaces")
	assert.Equal(t, []string{"Professional Skills", "Industry Experience"}, profile.Skills)
}

func TestExtractEmail_Found(t *testing.T) {
	profile := ExtractProfile("Contact: first.last+tag@sub.example.co")
	assert.Equal(t, "first.last+tag@sub.example.co", profile.Email)
}

func TestExtractEmail_Absent(t *testing.T) {
	profile := ExtractProfile("no contact details here")
	assert.Empty(t, profile.Email)
}

func TestExtractPhone_USFormat(t *testing.T) {
	profile := ExtractProfile("Call 555-123-4567 anytime")
	assert.Equal(t, "555-123-4567", profile.Phone)
}

func TestExtractPhone_International(t *testing.T) {
	profile := ExtractProfile("Reach me at +44 20 7946 0958")
	assert.Equal(t, "+44 20 7946 0958", profile.Phone)
}

func TestExtractPhone_USPatternTriedFirst(t *testing.T) {
	profile := ExtractProfile("(303) 555-0100 or +1 555 000 1111")
	assert.Equal(t, "(303) 555-0100", profile.Phone)
}

func TestExtractLocation_CityStateAbbrev(t *testing.T) {
	profile := ExtractProfile("Jane Doe\nAustin, TX\nEngineer")
	assert.Equal(t, "Austin, TX", profile.Location)
}

func TestExtractLocation_CityFullState(t *testing.T) {
	profile := ExtractProfile("Jane Doe\nSan Francisco, California")
	assert.Equal(t, "San Francisco, California", profile.Location)
}

func TestExtractLocation_OnlyFirstTenLines(t *testing.T) {
	text := strings.Repeat("filler line\n", 10) + "Austin, TX"
	profile := ExtractProfile(text)
	assert.Empty(t, profile.Location)
}

func TestExtractProfile_Idempotent(t *testing.T) {
	first := ExtractProfile(sampleResume)
	second := ExtractProfile(sampleResume)
	assert.Equal(t, first, second)
}
