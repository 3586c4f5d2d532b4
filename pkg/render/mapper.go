package render

import (
	"github.com/resumegen/go-resumegen/pkg/render/latex"
	"github.com/resumegen/go-resumegen/pkg/resume"
)

// Mapper is the sole, total path from a resume document to a render model.
// Every leaf text field is escaped exactly once here; structural fields
// (dates, booleans) are carried through verbatim.
type Mapper interface {
	Map(doc resume.Document, locale string) Model
}

// LaTeXMapper maps documents for LaTeX output using the latex escaper.
type LaTeXMapper struct{}

var _ Mapper = LaTeXMapper{}

// Map projects doc into an escaped Model for the given locale.
func (LaTeXMapper) Map(doc resume.Document, locale string) Model {
	model := Model{
		Basics: BasicsModel{
			Name:    latex.Escape(doc.Basics.Name),
			Label:   latex.Escape(doc.Basics.Label),
			Email:   latex.Escape(doc.Basics.Email),
			Phone:   latex.Escape(doc.Basics.Phone),
			URL:     latex.Escape(doc.Basics.URL),
			Summary: latex.Escape(doc.Basics.Summary),
			Location: LocationModel{
				City:        latex.Escape(doc.Basics.Location.City),
				Region:      latex.Escape(doc.Basics.Location.Region),
				CountryCode: latex.Escape(doc.Basics.Location.CountryCode),
			},
		},
		Locale: locale,
	}

	for _, profile := range doc.Basics.Profiles {
		model.Basics.Profiles = append(model.Basics.Profiles, ProfileModel{
			Network:  latex.Escape(profile.Network),
			Username: latex.Escape(profile.Username),
			URL:      latex.Escape(profile.URL),
		})
	}

	for _, job := range doc.Work {
		model.Work = append(model.Work, WorkModel{
			Company:    latex.Escape(job.Company),
			Position:   latex.Escape(job.Position),
			Location:   latex.Escape(job.Location),
			Summary:    latex.Escape(job.Summary),
			Highlights: escapeAll(job.Highlights),
			StartDate:  job.StartDate,
			EndDate:    job.EndDate,
			Current:    job.Current,
		})
	}

	for _, school := range doc.Education {
		model.Education = append(model.Education, EducationModel{
			Institution: latex.Escape(school.Institution),
			Area:        latex.Escape(school.Area),
			StudyType:   latex.Escape(school.StudyType),
			Score:       latex.Escape(school.Score),
			StartDate:   school.StartDate,
			EndDate:     school.EndDate,
		})
	}

	for _, skill := range doc.Skills {
		model.Skills = append(model.Skills, SkillModel{
			Name:     latex.Escape(skill.Name),
			Level:    latex.Escape(skill.Level),
			Keywords: escapeAll(skill.Keywords),
		})
	}

	for _, project := range doc.Projects {
		model.Projects = append(model.Projects, ProjectModel{
			Name:        latex.Escape(project.Name),
			Description: latex.Escape(project.Description),
			URL:         latex.Escape(project.URL),
			Keywords:    escapeAll(project.Keywords),
		})
	}

	for _, language := range doc.Languages {
		model.Languages = append(model.Languages, LanguageModel{
			Language: latex.Escape(language.Language),
			Fluency:  latex.Escape(language.Fluency),
		})
	}

	for _, certificate := range doc.Certificates {
		model.Certificates = append(model.Certificates, CertificateModel{
			Name:   latex.Escape(certificate.Name),
			Issuer: latex.Escape(certificate.Issuer),
			Date:   certificate.Date,
			URL:    latex.Escape(certificate.URL),
		})
	}

	return model
}

func escapeAll(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = latex.Escape(s)
	}
	return out
}
