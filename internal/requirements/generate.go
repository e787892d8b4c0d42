// Package requirements generates structured job qualifications from a free-text
// job title by classifying it against an ordered rule table.
//
// Generation is total: a catch-all rule guarantees a match for any non-empty
// title, and the empty title maps to a fixed default block.
package requirements

import (
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

// DefaultTitle is the title used when the caller supplies an empty job title.
const DefaultTitle = "Senior Accountant"

// Generate returns the qualification block for a free-text job title.
// The title is trimmed and echoed back case-preserved; an empty trimmed title
// yields Default(). The first matching rule in table order wins.
func Generate(jobTitle string) types.JobQualifications {
	title := strings.TrimSpace(jobTitle)
	if title == "" {
		return Default()
	}

	for _, r := range rules {
		if r.pattern.MatchString(title) {
			return instantiate(r.template, title)
		}
	}

	// Unreachable while the catch-all rule is in place; kept so a table edit
	// cannot make Generate partial.
	return instantiate(rules[len(rules)-1].template, title)
}

// Default returns the qualification block used for an empty job title: the
// first rule's template under the DefaultTitle heading.
func Default() types.JobQualifications {
	return instantiate(rules[0].template, DefaultTitle)
}

// instantiate binds a template to a title, copying slices so callers can
// mutate the result without corrupting the rule table.
func instantiate(template types.JobQualifications, title string) types.JobQualifications {
	q := template
	q.Title = title
	q.RequiredCertifications = append([]string(nil), template.RequiredCertifications...)
	q.RequiredSkills = append([]string(nil), template.RequiredSkills...)
	q.PreferredSkills = append([]string(nil), template.PreferredSkills...)
	return q
}
