package models

// SkillDetail is one skill entry inside a JobInsights report.
type SkillDetail struct {
	Name             string `json:"name"`
	Description      string `json:"description"`
	ProficiencyLevel string `json:"proficiency_level"`
	Category         string `json:"category,omitempty"`
}

// JobInsights is a researched summary of the skills a role demands.
type JobInsights struct {
	Summary  string        `json:"summary"`
	Skills   []SkillDetail `json:"skills"`
	Feedback string        `json:"feedback,omitempty"`
	Postings []Posting     `json:"postings,omitempty"`
}
