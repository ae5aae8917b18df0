package model

// Go models that match resume.schema.json used for validation, rendering
// and storage.

type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin,omitempty"`
	Website  string `json:"website,omitempty"`
}

type Experience struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Current     bool     `json:"current"`
	Description []string `json:"description"`
}

type Education struct {
	ID             string `json:"id"`
	Degree         string `json:"degree"`
	School         string `json:"school"`
	Location       string `json:"location"`
	GraduationDate string `json:"graduationDate"`
	GPA            string `json:"gpa,omitempty"`
}

type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	URL          string   `json:"url,omitempty"`
}

// Resume is the root aggregate. Every field may be empty; renderers treat
// empty collections as absent sections. Entry IDs are opaque, unique within
// their slice and never reused after deletion.
type Resume struct {
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Summary      string       `json:"summary"`
	Experience   []Experience `json:"experience"`
	Education    []Education  `json:"education"`
	Skills       []string     `json:"skills"`
	Projects     []Project    `json:"projects"`
}
