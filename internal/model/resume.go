package model

// Typed resume records consumed by the LaTeX engine. Every aggregate is a
// read-only snapshot supplied by the persistence layer or directly by the
// caller; unknown JSON keys are ignored on decode. No field is required;
// rendering degrades per field instead of erroring.

type UserInfo struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Location    string `json:"location"`
	LinkedinURL string `json:"linkedin_url,omitempty"`
	GithubURL   string `json:"github_url,omitempty"`
}

type Summary struct {
	GeneratedSummary string `json:"generated_summary"`
	JobDescription   string `json:"job_description,omitempty"`
}

type Project struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Technologies string `json:"technologies,omitempty"`
	StartDate    string `json:"start_date,omitempty"`
	EndDate      string `json:"end_date,omitempty"`
	ProjectURL   string `json:"project_url,omitempty"`
}

type Experience struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	Description string `json:"description"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
}

type Research struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
}

type Collaboration struct {
	ProjectTitle      string `json:"project_title"`
	CollaborationType string `json:"collaboration_type,omitempty"`
	Institution       string `json:"institution,omitempty"`
	Collaborators     string `json:"collaborators,omitempty"`
	Role              string `json:"role,omitempty"`
	Description       string `json:"description,omitempty"`
	StartDate         string `json:"start_date,omitempty"`
	EndDate           string `json:"end_date,omitempty"`
	PublicationURL    string `json:"publication_url,omitempty"`
}

type Education struct {
	Degree         string `json:"degree"`
	Institution    string `json:"institution"`
	GraduationDate string `json:"graduation_date,omitempty"`
	GPAPercentage  string `json:"gpa_percentage,omitempty"`
}

type SkillCategory struct {
	Category string `json:"category"`
	Skills   string `json:"skills"`
}

type Certification struct {
	Title        string `json:"title"`
	Issuer       string `json:"issuer,omitempty"`
	DateObtained string `json:"date_obtained,omitempty"`
}

// Resume is the root aggregate: one user plus the section item lists keyed
// by the section names of the layout engine.
type Resume struct {
	User           UserInfo        `json:"user"`
	Summaries      []Summary       `json:"professional_summaries,omitempty"`
	Projects       []Project       `json:"projects,omitempty"`
	Experience     []Experience    `json:"professional_experience,omitempty"`
	Research       []Research      `json:"research_experience,omitempty"`
	Collaborations []Collaboration `json:"academic_collaborations,omitempty"`
	Education      []Education     `json:"education,omitempty"`
	Skills         []SkillCategory `json:"technical_skills,omitempty"`
	Certifications []Certification `json:"certifications,omitempty"`
}
