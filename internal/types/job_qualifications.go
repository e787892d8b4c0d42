package types

// JobQualifications represents structured job-posting requirements derived from a
// free-text job title by the requirements generator.
type JobQualifications struct {
	Title                  string   `json:"title"`
	RequiredDegree         string   `json:"required_degree,omitempty"`
	RequiredExperience     string   `json:"required_experience"` // free text, always starts with a year count
	RequiredCertifications []string `json:"required_certifications"`
	RequiredSkills         []string `json:"required_skills"`
	PreferredSkills        []string `json:"preferred_skills"`
	Description            string   `json:"description"`
}
