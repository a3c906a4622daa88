// Package pdf renders the portfolio snapshot into a paginated A4 document.
//
// Rendering happens in two steps: Layout turns a Snapshot into an ordered
// list of styled lines, and Renderer draws those lines with fpdf. Layout is
// pure and keeps the caller's ordering of list items.
package pdf

import (
	"strings"

	"github.com/garnizeh/portfolio/pkg/models"
)

// Snapshot is everything the document is built from. Any part may be empty.
type Snapshot struct {
	Profile     *models.Profile
	Projects    []models.Project
	Skills      []models.Skill
	Experiences []models.Experience
}

// Style selects the font used for a Line.
type Style int

const (
	StyleTitle Style = iota
	StyleSubheading
	StyleHeading
	StyleBody
	StyleStrong
	StyleSpacer
)

// Section headings.
const (
	HeadingContact     = "Contato"
	HeadingSkills      = "Skills"
	HeadingExperiences = "Experiência"
	HeadingProjects    = "Projetos"
)

// Line is one paragraph of the document. Label, when set, is drawn in bold
// immediately before Text. Spacer lines carry only Space, in points.
type Line struct {
	Style Style
	Label string
	Text  string
	Space float64
}

// String is the visible text of the line.
func (l Line) String() string {
	return l.Label + l.Text
}

const sep = " — "

// contact fields in display order
var contactFields = []struct {
	key   string
	value func(p *models.Profile) *string
}{
	{"email", func(p *models.Profile) *string { return p.Email }},
	{"phone", func(p *models.Profile) *string { return p.Phone }},
	{"location", func(p *models.Profile) *string { return p.Location }},
	{"website", func(p *models.Profile) *string { return p.Website }},
	{"linkedin", func(p *models.Profile) *string { return p.LinkedIn }},
	{"github", func(p *models.Profile) *string { return p.GitHub }},
}

func present(s *string) bool { return s != nil && *s != "" }

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func spacer(pt float64) Line { return Line{Style: StyleSpacer, Space: pt} }

// Layout returns the lines of the document for s. Sections without data
// are left out entirely.
func Layout(s Snapshot) []Line {
	var lines []Line

	if p := s.Profile; p != nil {
		var header []Line
		if p.Name != "" {
			header = append(header, Line{Style: StyleTitle, Text: p.Name})
		}
		if present(p.Title) {
			header = append(header, Line{Style: StyleSubheading, Text: *p.Title})
		}
		if present(p.Bio) {
			header = append(header, Line{Style: StyleBody, Text: *p.Bio})
		}
		if len(header) > 0 {
			lines = append(lines, header...)
			lines = append(lines, spacer(12))
		}

		var contacts []Line
		for _, f := range contactFields {
			if v := f.value(p); present(v) {
				contacts = append(contacts, Line{Style: StyleBody, Label: capitalize(f.key), Text: ": " + *v})
			}
		}
		if len(contacts) > 0 {
			lines = append(lines, Line{Style: StyleHeading, Text: HeadingContact})
			lines = append(lines, contacts...)
			lines = append(lines, spacer(12))
		}
	}

	if len(s.Skills) > 0 {
		lines = append(lines, Line{Style: StyleHeading, Text: HeadingSkills})
		for _, sk := range s.Skills {
			lines = append(lines, Line{Style: StyleBody, Text: sk.Name + sep + deref(sk.Level) + " (" + deref(sk.Category) + ")"})
		}
		lines = append(lines, spacer(12))
	}

	if len(s.Experiences) > 0 {
		lines = append(lines, Line{Style: StyleHeading, Text: HeadingExperiences})
		for _, e := range s.Experiences {
			lines = append(lines, Line{Style: StyleBody, Label: e.Role, Text: sep + e.Company + " " + ExperienceDates(e)})
			if present(e.Description) {
				lines = append(lines, Line{Style: StyleBody, Text: *e.Description})
			}
			lines = append(lines, spacer(6))
		}
		lines = append(lines, spacer(12))
	}

	if len(s.Projects) > 0 {
		lines = append(lines, Line{Style: StyleHeading, Text: HeadingProjects})
		for _, p := range s.Projects {
			title := p.Title
			if present(p.Tags) {
				title += sep + *p.Tags
			}
			lines = append(lines, Line{Style: StyleStrong, Text: title})
			if present(p.Description) {
				lines = append(lines, Line{Style: StyleBody, Text: *p.Description})
			}
			if present(p.URL) {
				lines = append(lines, Line{Style: StyleBody, Text: "url: " + *p.URL})
			}
			if present(p.RepoURL) {
				lines = append(lines, Line{Style: StyleBody, Text: "repo_url: " + *p.RepoURL})
			}
			lines = append(lines, spacer(6))
		}
	}

	return lines
}

// ExperienceDates formats the period of e: the start date alone, "start -
// end" when both are known, " - end" when only the end is known and the
// empty string otherwise.
func ExperienceDates(e models.Experience) string {
	dates := ""
	if e.StartDate != nil {
		dates = e.StartDate.String()
	}
	if e.EndDate != nil {
		dates = dates + " - " + e.EndDate.String()
	}
	return dates
}
