package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText_Empty(t *testing.T) {
	assert.Equal(t, "", CleanText(""))
}

func TestCleanText_NormalizesLineEndings(t *testing.T) {
	assert.Equal(t, "a\nb\nc", CleanText("a\r\nb\rc"))
}

func TestCleanText_StripsTrailingWhitespace(t *testing.T) {
	assert.Equal(t, "John Smith\nEngineer", CleanText("John Smith   \nEngineer\t"))
}

func TestCleanText_CollapsesBlankRuns(t *testing.T) {
	assert.Equal(t, "a\n\nb", CleanText("a\n\n\n\n\nb"))
}

func TestCleanText_TrimsDocument(t *testing.T) {
	assert.Equal(t, "resume body", CleanText("\n\n  resume body  \n\n"))
}

func TestCleanText_ExtractionUnchangedByCleaning(t *testing.T) {
	raw := "John Smith\r\nSenior Accountant\r\n\r\n\r\n7 years of experience with NetSuite\r\n"
	cleaned := CleanText(raw)

	fromRaw := ExtractProfile(raw)
	fromCleaned := ExtractProfile(cleaned)

	assert.Equal(t, fromRaw.Name, fromCleaned.Name)
	assert.Equal(t, fromRaw.Title, fromCleaned.Title)
	assert.Equal(t, fromRaw.ExperienceSummary, fromCleaned.ExperienceSummary)
	assert.Equal(t, fromRaw.Skills, fromCleaned.Skills)
}
