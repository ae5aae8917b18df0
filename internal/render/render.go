// Package render maps a resume aggregate through the four visual templates.
// Render is pure and deterministic: identical inputs produce structurally
// identical documents, so output trees are safe to snapshot in tests and
// cheap to rebuild on every editor keystroke.
package render

import (
	"strings"

	"resume-builder/internal/model"
)

// Canonical section titles, shared by all four styles. Styles may change
// casing and decoration through CSS but never the text itself.
const (
	titleSummary    = "Summary"
	titleExperience = "Experience"
	titleEducation  = "Education"
	titleSkills     = "Skills"
	titleProjects   = "Projects"
)

// Render projects a resume into a Document for the given template. An
// invalid template selector falls back to modern. A section is emitted if
// and only if its backing collection is non-empty; an all-empty resume
// yields a document containing only the header.
func Render(data *model.Resume, tpl Template, opts Options) *Document {
	if !tpl.IsValid() {
		tpl = TemplateModern
	}

	doc := &Document{
		Template: tpl,
		Theme:    themeFor(tpl, opts),
		Header:   buildHeader(data.PersonalInfo),
	}

	summary, hasSummary := buildSummary(data.Summary)
	experience, hasExperience := buildExperience(data.Experience)
	education, hasEducation := buildEducation(data.Education)
	skills, hasSkills := buildSkills(data.Skills)
	projects, hasProjects := buildProjects(data.Projects)

	appendIf := func(dst *[]Section, s Section, ok bool) {
		if ok {
			*dst = append(*dst, s)
		}
	}

	if tpl == TemplateCreative {
		// creative arranges skills and education into the sidebar column
		appendIf(&doc.Sidebar, skills, hasSkills)
		appendIf(&doc.Sidebar, education, hasEducation)
		appendIf(&doc.Main, summary, hasSummary)
		appendIf(&doc.Main, experience, hasExperience)
		appendIf(&doc.Main, projects, hasProjects)
		return doc
	}

	appendIf(&doc.Main, summary, hasSummary)
	appendIf(&doc.Main, experience, hasExperience)
	appendIf(&doc.Main, education, hasEducation)
	appendIf(&doc.Main, skills, hasSkills)
	appendIf(&doc.Main, projects, hasProjects)
	return doc
}

// DateRange formats an experience period. When the role is current the end
// date is ignored and replaced by "Present" regardless of its value.
func DateRange(start, end string, current bool) string {
	if current {
		end = "Present"
	}
	return start + " - " + end
}

func buildHeader(p model.PersonalInfo) Header {
	h := Header{Name: p.FullName}
	add := func(kind ContactKind, value string) {
		if value != "" {
			h.Contacts = append(h.Contacts, Contact{Kind: kind, Value: value})
		}
	}
	add(ContactEmail, p.Email)
	add(ContactPhone, p.Phone)
	add(ContactLocation, p.Location)
	add(ContactLinkedIn, p.LinkedIn)
	add(ContactWebsite, p.Website)
	return h
}

func buildSummary(summary string) (Section, bool) {
	// empty string alone suppresses the section; no trimming is applied
	if summary == "" {
		return Section{}, false
	}
	return Section{Title: titleSummary, Text: summary}, true
}

func buildExperience(items []model.Experience) (Section, bool) {
	if len(items) == 0 {
		return Section{}, false
	}
	s := Section{Title: titleExperience}
	for _, exp := range items {
		s.Entries = append(s.Entries, Entry{
			Primary:   exp.Title,
			Secondary: joinParts(exp.Company, exp.Location),
			Meta:      DateRange(exp.StartDate, exp.EndDate, exp.Current),
			Bullets:   exp.Description,
		})
	}
	return s, true
}

func buildEducation(items []model.Education) (Section, bool) {
	if len(items) == 0 {
		return Section{}, false
	}
	s := Section{Title: titleEducation}
	for _, edu := range items {
		meta := edu.GraduationDate
		if edu.GPA != "" {
			meta += " • GPA: " + edu.GPA
		}
		s.Entries = append(s.Entries, Entry{
			Primary:   edu.Degree,
			Secondary: joinParts(edu.School, edu.Location),
			Meta:      meta,
		})
	}
	return s, true
}

func buildSkills(skills []string) (Section, bool) {
	if len(skills) == 0 {
		return Section{}, false
	}
	// stored order is meaningful; no reordering and no dedup here
	return Section{Title: titleSkills, Chips: append([]string(nil), skills...)}, true
}

func buildProjects(items []model.Project) (Section, bool) {
	if len(items) == 0 {
		return Section{}, false
	}
	s := Section{Title: titleProjects}
	for _, p := range items {
		s.Entries = append(s.Entries, Entry{
			Primary:  p.Name,
			URL:      p.URL,
			URLLabel: linkLabel(p.URL),
			Body:     p.Description,
			Chips:    append([]string(nil), p.Technologies...),
		})
	}
	return s, true
}

func joinParts(parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " • ")
}
