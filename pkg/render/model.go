package render

// Model is the escaped, flattened projection of a resume document handed to
// the template engine. Every user-controlled text field has passed through
// the LaTeX escaper; structural fields (dates, booleans) are carried
// verbatim. Models are only produced by the mapper, which is the sole path
// from a document to a renderable context.
type Model struct {
	Basics       BasicsModel
	Work         []WorkModel
	Education    []EducationModel
	Skills       []SkillModel
	Projects     []ProjectModel
	Languages    []LanguageModel
	Certificates []CertificateModel
	Locale       string
}

// BasicsModel is the escaped resume header.
type BasicsModel struct {
	Name     string
	Label    string
	Email    string
	Phone    string
	URL      string
	Summary  string
	Location LocationModel
	Profiles []ProfileModel
}

// LocationModel is the escaped header location.
type LocationModel struct {
	City        string
	Region      string
	CountryCode string
}

// ProfileModel is one escaped profile handle.
type ProfileModel struct {
	Network  string
	Username string
	URL      string
}

// WorkModel is one escaped employment entry.
type WorkModel struct {
	Company    string
	Position   string
	Location   string
	Summary    string
	Highlights []string
	StartDate  string
	EndDate    string
	Current    bool
}

// EducationModel is one escaped study entry.
type EducationModel struct {
	Institution string
	Area        string
	StudyType   string
	Score       string
	StartDate   string
	EndDate     string
}

// SkillModel is one escaped competency entry.
type SkillModel struct {
	Name     string
	Level    string
	Keywords []string
}

// ProjectModel is one escaped portfolio entry.
type ProjectModel struct {
	Name        string
	Description string
	URL         string
	Keywords    []string
}

// LanguageModel is one escaped spoken-language entry.
type LanguageModel struct {
	Language string
	Fluency  string
}

// CertificateModel is one escaped certification entry.
type CertificateModel struct {
	Name   string
	Issuer string
	Date   string
	URL    string
}

// Context flattens the model into the template substitution context. Every
// key is always present — absent optional fields appear as empty strings or
// empty lists, never as missing keys — so templates can test presence
// without guarding against undefined lookups.
func (m Model) Context() map[string]any {
	work := make([]map[string]any, 0, len(m.Work))
	for _, job := range m.Work {
		work = append(work, map[string]any{
			"company":    job.Company,
			"position":   job.Position,
			"location":   job.Location,
			"summary":    job.Summary,
			"highlights": emptyIfNil(job.Highlights),
			"start_date": job.StartDate,
			"end_date":   job.EndDate,
			"current":    job.Current,
		})
	}

	education := make([]map[string]any, 0, len(m.Education))
	for _, school := range m.Education {
		education = append(education, map[string]any{
			"institution": school.Institution,
			"area":        school.Area,
			"study_type":  school.StudyType,
			"score":       school.Score,
			"start_date":  school.StartDate,
			"end_date":    school.EndDate,
		})
	}

	skills := make([]map[string]any, 0, len(m.Skills))
	for _, skill := range m.Skills {
		skills = append(skills, map[string]any{
			"name":     skill.Name,
			"level":    skill.Level,
			"keywords": emptyIfNil(skill.Keywords),
		})
	}

	projects := make([]map[string]any, 0, len(m.Projects))
	for _, project := range m.Projects {
		projects = append(projects, map[string]any{
			"name":        project.Name,
			"description": project.Description,
			"url":         project.URL,
			"keywords":    emptyIfNil(project.Keywords),
		})
	}

	languages := make([]map[string]any, 0, len(m.Languages))
	for _, language := range m.Languages {
		languages = append(languages, map[string]any{
			"language": language.Language,
			"fluency":  language.Fluency,
		})
	}

	certificates := make([]map[string]any, 0, len(m.Certificates))
	for _, certificate := range m.Certificates {
		certificates = append(certificates, map[string]any{
			"name":   certificate.Name,
			"issuer": certificate.Issuer,
			"date":   certificate.Date,
			"url":    certificate.URL,
		})
	}

	profiles := make([]map[string]any, 0, len(m.Basics.Profiles))
	for _, profile := range m.Basics.Profiles {
		profiles = append(profiles, map[string]any{
			"network":  profile.Network,
			"username": profile.Username,
			"url":      profile.URL,
		})
	}

	return map[string]any{
		"basics": map[string]any{
			"name":    m.Basics.Name,
			"label":   m.Basics.Label,
			"email":   m.Basics.Email,
			"phone":   m.Basics.Phone,
			"url":     m.Basics.URL,
			"summary": m.Basics.Summary,
			"location": map[string]any{
				"city":         m.Basics.Location.City,
				"region":       m.Basics.Location.Region,
				"country_code": m.Basics.Location.CountryCode,
			},
			"profiles": profiles,
		},
		"work":         work,
		"education":    education,
		"skills":       skills,
		"projects":     projects,
		"languages":    languages,
		"certificates": certificates,
		"locale":       m.Locale,
	}
}

// textFields yields every user-controlled text field for the defensive
// unsafe-content scan. Structural fields (dates, booleans) are excluded.
func (m Model) textFields() []string {
	fields := []string{
		m.Basics.Name, m.Basics.Label, m.Basics.Email, m.Basics.Phone,
		m.Basics.URL, m.Basics.Summary,
		m.Basics.Location.City, m.Basics.Location.Region, m.Basics.Location.CountryCode,
	}
	for _, profile := range m.Basics.Profiles {
		fields = append(fields, profile.Network, profile.Username, profile.URL)
	}
	for _, job := range m.Work {
		fields = append(fields, job.Company, job.Position, job.Location, job.Summary)
		fields = append(fields, job.Highlights...)
	}
	for _, school := range m.Education {
		fields = append(fields, school.Institution, school.Area, school.StudyType, school.Score)
	}
	for _, skill := range m.Skills {
		fields = append(fields, skill.Name, skill.Level)
		fields = append(fields, skill.Keywords...)
	}
	for _, project := range m.Projects {
		fields = append(fields, project.Name, project.Description, project.URL)
		fields = append(fields, project.Keywords...)
	}
	for _, language := range m.Languages {
		fields = append(fields, language.Language, language.Fluency)
	}
	for _, certificate := range m.Certificates {
		fields = append(fields, certificate.Name, certificate.Issuer, certificate.URL)
	}
	return fields
}

func emptyIfNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
