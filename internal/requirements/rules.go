package requirements

import (
	"regexp"

	"github.com/jonathan/resume-screener/internal/types"
)

// rule pairs a case-insensitive title pattern with the qualification template
// it produces. Rules are evaluated strictly in table order: more specific
// patterns come before the catch-all, and overlapping patterns resolve to
// whichever is listed first. That order is a behavioral contract, not just
// categorization.
type rule struct {
	pattern  *regexp.Regexp
	template types.JobQualifications // Title left empty; filled at generation time
}

var rules = []rule{
	// Accounting/Finance
	{
		pattern: regexp.MustCompile(`(?i)accountant|accounting|cpa|finance|financial analyst|controller`),
		template: types.JobQualifications{
			RequiredDegree:         "Bachelor's in Accounting, Finance, or related field",
			RequiredExperience:     "5+ years",
			RequiredCertifications: []string{"CPA"},
			PreferredSkills:        []string{"NetSuite", "QuickBooks", "Excel", "Month-End Close", "Financial Reporting"},
			RequiredSkills:         []string{"GAAP", "Financial Statements", "Reconciliation"},
			Description:            "We're looking for an experienced accounting professional to join our finance team.",
		},
	},
	// Software Engineering
	{
		pattern: regexp.MustCompile(`(?i)software engineer|developer|programmer|software developer|full.?stack|backend|frontend`),
		template: types.JobQualifications{
			RequiredDegree:         "Bachelor's in Computer Science, Software Engineering, or related field",
			RequiredExperience:     "3+ years",
			RequiredCertifications: []string{},
			PreferredSkills:        []string{"JavaScript", "TypeScript", "React", "Node.js", "Python", "AWS"},
			RequiredSkills:         []string{"Software Development", "Version Control", "Problem Solving"},
			Description:            "We're looking for an experienced software engineer to join our development team.",
		},
	},
	// Data Science
	{
		pattern: regexp.MustCompile(`(?i)data scientist|data analyst|machine learning|ml engineer|data engineer`),
		template: types.JobQualifications{
			RequiredDegree:         "Bachelor's in Data Science, Statistics, Computer Science, or related field",
			RequiredExperience:     "3+ years",
			RequiredCertifications: []string{},
			PreferredSkills:        []string{"Python", "SQL", "Machine Learning", "TensorFlow", "Pandas", "Data Visualization"},
			RequiredSkills:         []string{"Data Analysis", "Statistical Modeling", "SQL"},
			Description:            "We're looking for an experienced data professional to join our analytics team.",
		},
	},
	// Product Management
	{
		pattern: regexp.MustCompile(`(?i)product manager|product owner|pm|product lead`),
		template: types.JobQualifications{
			RequiredDegree:         "Bachelor's degree (MBA preferred)",
			RequiredExperience:     "5+ years",
			RequiredCertifications: []string{},
			PreferredSkills:        []string{"Product Strategy", "Agile", "Scrum", "User Research", "Data Analysis", "Roadmapping"},
			RequiredSkills:         []string{"Product Management", "Stakeholder Management", "Strategic Thinking"},
			Description:            "We're looking for an experienced product manager to lead our product initiatives.",
		},
	},
	// Marketing
	{
		pattern: regexp.MustCompile(`(?i)marketing|marketer|marketing manager|digital marketing|content marketing`),
		template: types.JobQualifications{
			RequiredDegree:         "Bachelor's in Marketing, Communications, or related field",
			RequiredExperience:     "3+ years",
			RequiredCertifications: []string{},
			PreferredSkills:        []string{"SEO", "Content Marketing", "Social Media", "Analytics", "Campaign Management"},
			RequiredSkills:         []string{"Marketing Strategy", "Content Creation", "Analytics"},
			Description:            "We're looking for an experienced marketing professional to join our marketing team.",
		},
	},
	// Sales
	{
		pattern: regexp.MustCompile(`(?i)sales|account executive|business development|bd|sales manager`),
		template: types.JobQualifications{
			RequiredDegree:         "Bachelor's degree",
			RequiredExperience:     "3+ years",
			RequiredCertifications: []string{},
			PreferredSkills:        []string{"CRM", "Negotiation", "Relationship Building", "Pipeline Management"},
			RequiredSkills:         []string{"Sales", "Communication", "Customer Relationship Management"},
			Description:            "We're looking for an experienced sales professional to join our sales team.",
		},
	},
	// HR/Recruiting
	{
		pattern: regexp.MustCompile(`(?i)hr|human resources|recruiter|talent acquisition|people ops`),
		template: types.JobQualifications{
			RequiredDegree:         "Bachelor's in Human Resources, Business, or related field",
			RequiredExperience:     "3+ years",
			RequiredCertifications: []string{"SHRM-CP", "PHR"},
			PreferredSkills:        []string{"ATS", "Recruiting", "Employee Relations", "Talent Management"},
			RequiredSkills:         []string{"HR Management", "Recruiting", "Compliance"},
			Description:            "We're looking for an experienced HR professional to join our people team.",
		},
	},
	// Design/UX
	{
		pattern: regexp.MustCompile(`(?i)designer|ux|ui|user experience|product designer|graphic designer`),
		template: types.JobQualifications{
			RequiredDegree:         "Bachelor's in Design, HCI, or related field",
			RequiredExperience:     "3+ years",
			RequiredCertifications: []string{},
			PreferredSkills:        []string{"Figma", "Sketch", "Adobe Creative Suite", "User Research", "Prototyping"},
			RequiredSkills:         []string{"Design", "User Experience", "Prototyping"},
			Description:            "We're looking for an experienced designer to join our design team.",
		},
	},
	// Operations
	{
		pattern: regexp.MustCompile(`(?i)operations|ops|operations manager|operations analyst`),
		template: types.JobQualifications{
			RequiredDegree:         "Bachelor's in Business, Operations, or related field",
			RequiredExperience:     "3+ years",
			RequiredCertifications: []string{},
			PreferredSkills:        []string{"Process Improvement", "Project Management", "Analytics", "Supply Chain"},
			RequiredSkills:         []string{"Operations Management", "Process Optimization", "Analytics"},
			Description:            "We're looking for an experienced operations professional to join our operations team.",
		},
	},
	// Medical - Neurosurgeon
	{
		pattern: regexp.MustCompile(`(?i)neurosurgeon|neurosurgery|neuro.?surgeon`),
		template: types.JobQualifications{
			RequiredDegree:         "MD (Doctor of Medicine) from accredited medical school",
			RequiredExperience:     "7+ years (including residency and fellowship)",
			RequiredCertifications: []string{"Board Certified in Neurological Surgery", "State Medical License"},
			PreferredSkills:        []string{"Spinal Surgery", "Brain Surgery", "Minimally Invasive Techniques", "Stereotactic Surgery", "Neuro-oncology"},
			RequiredSkills:         []string{"Neurosurgery", "Surgical Skills", "Patient Care", "Medical Diagnosis"},
			Description:            "We're looking for a board-certified neurosurgeon to join our neurosurgery department.",
		},
	},
	// Default/General — catch-all, matches any non-empty title
	{
		pattern: regexp.MustCompile(`.`),
		template: types.JobQualifications{
			RequiredDegree:         "Bachelor's degree",
			RequiredExperience:     "3+ years",
			RequiredCertifications: []string{},
			PreferredSkills:        []string{"Communication", "Problem Solving", "Team Collaboration"},
			RequiredSkills:         []string{"Professional Experience", "Communication"},
			Description:            "We're looking for an experienced professional to join our team.",
		},
	},
}
