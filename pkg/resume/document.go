// Package resume defines the structured resume document accepted by the
// renderer. Validation of required sections and field shapes happens
// upstream; every field here is independently optional.
package resume

// Document is a caller-supplied structured resume.
type Document struct {
	Basics       Basics        `json:"basics"`
	Work         []Work        `json:"work"`
	Education    []Education   `json:"education"`
	Skills       []Skill       `json:"skills"`
	Projects     []Project     `json:"projects"`
	Languages    []Language    `json:"languages"`
	Certificates []Certificate `json:"certificates"`
}

// Basics holds the header block of a resume.
type Basics struct {
	Name     string    `json:"name"`
	Label    string    `json:"label"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone"`
	URL      string    `json:"url"`
	Summary  string    `json:"summary"`
	Location Location  `json:"location"`
	Profiles []Profile `json:"profiles"`
}

// Location is the place the candidate lists on the resume header.
type Location struct {
	City        string `json:"city"`
	Region      string `json:"region"`
	CountryCode string `json:"countryCode"`
}

// Profile is a social or professional network handle.
type Profile struct {
	Network  string `json:"network"`
	Username string `json:"username"`
	URL      string `json:"url"`
}

// Work is one employment entry. StartDate and EndDate carry the validated
// YYYY-MM shape enforced upstream.
type Work struct {
	Company    string   `json:"company"`
	Position   string   `json:"position"`
	Location   string   `json:"location"`
	Summary    string   `json:"summary"`
	Highlights []string `json:"highlights"`
	StartDate  string   `json:"startDate"`
	EndDate    string   `json:"endDate"`
	Current    bool     `json:"current"`
}

// Education is one study entry.
type Education struct {
	Institution string `json:"institution"`
	Area        string `json:"area"`
	StudyType   string `json:"studyType"`
	Score       string `json:"score"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

// Skill groups keywords under a named competency.
type Skill struct {
	Name     string   `json:"name"`
	Level    string   `json:"level"`
	Keywords []string `json:"keywords"`
}

// Project is one portfolio entry.
type Project struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Keywords    []string `json:"keywords"`
}

// Language is one spoken-language entry.
type Language struct {
	Language string `json:"language"`
	Fluency  string `json:"fluency"`
}

// Certificate is one certification entry.
type Certificate struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
	URL    string `json:"url"`
}
